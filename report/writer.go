// Package report writes analysis results to JSON or CSV files.
package report

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"sync/atomic"
	"time"

	"code.cloudfoundry.org/lager"
	"github.com/google/uuid"

	"github.com/pivotal-cf/pass-audit/analyzer"
)

const (
	Version = "2.0"
	Hidden  = "[hidden]"

	timestampFormat = "2006-01-02T15:04:05.000000"
)

var csvHeader = []string{"password", "password_length", "score", "is_common", "entropy", "hash", "timestamp"}

// Entry is one result to export. Password is written only when set, for
// callers that have opted into echoing their own input.
type Entry struct {
	Result            analyzer.Result
	Password          string
	SuggestedPassword string
}

type record struct {
	Password          string            `json:"password,omitempty"`
	Length            int               `json:"password_length"`
	Score             int               `json:"score"`
	Strength          string            `json:"strength"`
	IsCommon          bool              `json:"is_common"`
	Entropy           float64           `json:"entropy"`
	Hash              string            `json:"hash"`
	Feedback          []string          `json:"feedback"`
	CrackTimes        map[string]string `json:"crack_times_display"`
	Patterns          []pattern         `json:"patterns"`
	SuggestedPassword string            `json:"suggested_password,omitempty"`
	Timestamp         string            `json:"timestamp"`
	ReportVersion     string            `json:"report_version"`
}

// pattern leaves out the matched token, which is a piece of the password.
type pattern struct {
	Kind           string `json:"pattern"`
	DictionaryName string `json:"dictionary_name,omitempty"`
	Year           int    `json:"year,omitempty"`
}

type batch struct {
	ReportID string   `json:"report_id"`
	Summary  Summary  `json:"summary"`
	Results  []record `json:"results"`
}

type Writer struct {
	logger  lager.Logger
	now     func() time.Time
	reports atomic.Int64
}

func NewWriter(logger lager.Logger) *Writer {
	return &Writer{
		logger: logger.Session("report"),
		now:    time.Now,
	}
}

func (w *Writer) Export(path string, entry Entry) error {
	logger := w.logger.Session("export", lager.Data{"path": path})
	logger.Debug("starting")
	defer logger.Debug("done")

	timestamp := w.timestamp()
	rec := newRecord(entry, timestamp)

	err := w.write(logger, path, func(out io.Writer, asJSON bool) error {
		if asJSON {
			return writeJSON(out, rec)
		}
		return writeCSV(out, []record{rec})
	})
	if err != nil {
		return err
	}

	w.reports.Add(1)
	return nil
}

func (w *Writer) ExportBatch(path string, entries []Entry) error {
	logger := w.logger.Session("export-batch", lager.Data{"path": path, "count": len(entries)})
	logger.Debug("starting")
	defer logger.Debug("done")

	timestamp := w.timestamp()

	records := make([]record, 0, len(entries))
	results := make([]analyzer.Result, 0, len(entries))
	for _, entry := range entries {
		records = append(records, newRecord(entry, timestamp))
		results = append(results, entry.Result)
	}

	err := w.write(logger, path, func(out io.Writer, asJSON bool) error {
		if !asJSON {
			return writeCSV(out, records)
		}

		summary := Summarize(results)
		if summary.TotalAnalyzed > 0 {
			summary.Timestamp = timestamp
		}

		return writeJSON(out, batch{
			ReportID: uuid.NewString(),
			Summary:  summary,
			Results:  records,
		})
	})
	if err != nil {
		return err
	}

	w.reports.Add(1)
	return nil
}

// Reports is the number of reports this writer has written.
func (w *Writer) Reports() int64 {
	return w.reports.Load()
}

func (w *Writer) timestamp() string {
	return w.now().Format(timestampFormat)
}

func (w *Writer) write(logger lager.Logger, path string, encode func(out io.Writer, asJSON bool) error) error {
	var isJSON bool
	switch ext := filepath.Ext(path); ext {
	case ".json":
		isJSON = true
	case ".csv":
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}

	f, err := os.Create(path)
	if err != nil {
		logger.Error("failed-to-create-report", err)
		return err
	}

	if err := encode(f, isJSON); err != nil {
		f.Close()
		logger.Error("failed-to-write-report", err)
		return err
	}

	if err := f.Close(); err != nil {
		logger.Error("failed-to-close-report", err)
		return err
	}

	return nil
}

func newRecord(entry Entry, timestamp string) record {
	r := entry.Result

	patterns := make([]pattern, 0, len(r.Patterns))
	for _, p := range r.Patterns {
		patterns = append(patterns, pattern{
			Kind:           p.Kind,
			DictionaryName: p.DictionaryName,
			Year:           p.Year,
		})
	}

	feedback := r.Feedback
	if feedback == nil {
		feedback = []string{}
	}

	return record{
		Password:          entry.Password,
		Length:            r.Length,
		Score:             int(r.Score),
		Strength:          r.Score.String(),
		IsCommon:          r.IsBreached,
		Entropy:           r.Entropy,
		Hash:              r.Digest.Hex(),
		Feedback:          feedback,
		CrackTimes:        r.CrackTimes,
		Patterns:          patterns,
		SuggestedPassword: entry.SuggestedPassword,
		Timestamp:         timestamp,
		ReportVersion:     Version,
	}
}

func writeJSON(out io.Writer, v interface{}) error {
	encoder := json.NewEncoder(out)
	encoder.SetIndent("", "  ")
	encoder.SetEscapeHTML(false)
	return encoder.Encode(v)
}

func writeCSV(out io.Writer, records []record) error {
	w := csv.NewWriter(out)

	if err := w.Write(csvHeader); err != nil {
		return err
	}

	for _, r := range records {
		password := r.Password
		if password == "" {
			password = Hidden
		}

		err := w.Write([]string{
			password,
			strconv.Itoa(r.Length),
			strconv.Itoa(r.Score),
			strconv.FormatBool(r.IsCommon),
			strconv.FormatFloat(r.Entropy, 'f', 1, 64),
			r.Hash,
			r.Timestamp,
		})
		if err != nil {
			return err
		}
	}

	w.Flush()
	return w.Error()
}
