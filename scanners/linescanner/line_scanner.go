package linescanner

import (
	"bufio"
	"errors"
	"io"

	"code.cloudfoundry.org/lager"
	"golang.org/x/text/encoding"
	"golang.org/x/text/transform"

	"github.com/pivotal-cf/pass-audit/scanners"
)

const MaxLineSize = 1024 * 1024

var errLineTooLong = errors.New("line too long")

type lineScanner struct {
	path       string
	reader     *bufio.Reader
	lineNumber int
	line       string
	err        error
}

// New scans r line by line. The stream must be UTF-8: an invalid byte sequence
// stops the scan and is reported by Err. Lines longer than MaxLineSize are
// skipped and scanning carries on with the next line.
func New(r io.Reader, path string) *lineScanner {
	return &lineScanner{
		path:   path,
		reader: bufio.NewReaderSize(transform.NewReader(r, encoding.UTF8Validator), 64*1024),
	}
}

func (s *lineScanner) Scan(logger lager.Logger) bool {
	if s.err != nil {
		return false
	}

	for {
		line, err := s.readLine()
		if err == io.EOF {
			return false
		}

		if err == errLineTooLong {
			s.lineNumber++
			skipped := scanners.Line{Path: s.path, LineNumber: s.lineNumber}
			logger.Session("line-scanner").Info("skipping-oversize-line", skipped.Location())
			continue
		}

		if err != nil {
			failed := scanners.Line{Path: s.path, LineNumber: s.lineNumber + 1}
			logger.Session("line-scanner").Error("bufio-error", err, failed.Location())
			s.err = err
			return false
		}

		s.lineNumber++
		s.line = line
		return true
	}
}

// readLine returns the next line without its line ending, or errLineTooLong
// once an oversize line has been consumed in full.
func (s *lineScanner) readLine() (string, error) {
	var (
		line    []byte
		tooLong bool
		started bool
	)

	for {
		chunk, isPrefix, err := s.reader.ReadLine()
		if err != nil {
			if err == io.EOF && started {
				break
			}
			return "", err
		}
		started = true

		if !tooLong {
			if len(line)+len(chunk) > MaxLineSize {
				tooLong = true
				line = nil
			} else {
				line = append(line, chunk...)
			}
		}

		if !isPrefix {
			break
		}
	}

	if tooLong {
		return "", errLineTooLong
	}

	return string(line), nil
}

func (s *lineScanner) Line(logger lager.Logger) *scanners.Line {
	return &scanners.Line{
		Path:       s.path,
		LineNumber: s.lineNumber,
		Content:    s.line,
	}
}

func (s *lineScanner) Err() error {
	return s.err
}
