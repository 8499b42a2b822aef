package breach

import (
	"bufio"
	"errors"
	"io"
	"io/ioutil"
	"os"

	"code.cloudfoundry.org/lager"
	"github.com/hashicorp/go-multierror"
	"golang.org/x/text/encoding"

	"github.com/pivotal-cf/pass-audit/inflator"
	"github.com/pivotal-cf/pass-audit/mimetype"
	"github.com/pivotal-cf/pass-audit/scanners"
	"github.com/pivotal-cf/pass-audit/scanners/linescanner"
	"github.com/pivotal-cf/pass-audit/scanners/matchers"
)

// readFunc consumes one readable dictionary stream. Returning an error marks
// the stream as skipped.
type readFunc func(logger lager.Logger, name string, r io.Reader) error

type loader struct {
	inflator inflator.Inflator
}

func newLoader(inflate inflator.Inflator) *loader {
	return &loader{
		inflator: inflate,
	}
}

func (l *loader) each(logger lager.Logger, sources []Source, read readFunc) error {
	var result error

	for _, source := range sources {
		for _, err := range l.visit(logger, source, read) {
			logger.Error("skipping-source", err, lager.Data{"source": source.Name()})
			result = multierror.Append(result, err)
		}
	}

	return result
}

func (l *loader) visit(logger lager.Logger, source Source, read readFunc) []error {
	rc, err := source.Open()
	if err != nil {
		return []error{unavailable(source.Name(), err)}
	}
	defer rc.Close()

	br := bufio.NewReader(rc)

	if fs, ok := source.(*fileSource); ok {
		if mime, isArchive := detectArchive(fs.path, br); isArchive {
			return l.visitArchive(logger, fs.path, mime, read)
		}
	}

	if err := read(logger, source.Name(), br); err != nil {
		return []error{classify(source.Name(), err)}
	}

	return nil
}

func (l *loader) visitArchive(logger lager.Logger, path, mime string, read readFunc) []error {
	dir, err := ioutil.TempDir("", "pass-audit-dictionary")
	if err != nil {
		return []error{unavailable(path, err)}
	}
	defer os.RemoveAll(dir)

	err = l.inflator.Inflate(logger, mime, path, dir)
	if err != nil {
		return []error{unavailable(path, err)}
	}

	files, err := inflator.Files(dir)
	if err != nil {
		return []error{unavailable(path, err)}
	}

	var errs []error
	for _, file := range files {
		errs = append(errs, l.visit(logger, FileSource(file), read)...)
	}

	return errs
}

func detectArchive(path string, br *bufio.Reader) (string, bool) {
	if mime, ok := mimetype.IsArchive(path); ok {
		return mime, true
	}

	return mimetype.Sniff(br)
}

func readLines(logger lager.Logger, name string, r io.Reader, handle func(string)) (int, error) {
	return scanners.Each(logger, linescanner.New(r, name), matchers.Ignorable(), handle)
}

func unavailable(name string, err error) error {
	return &SourceError{Source: name, Kind: ErrSourceUnavailable, Err: err}
}

func classify(name string, err error) error {
	if errors.Is(err, encoding.ErrInvalidUTF8) {
		return &SourceError{Source: name, Kind: ErrEncoding, Err: err}
	}

	return unavailable(name, err)
}
