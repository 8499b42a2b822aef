package breach

import (
	"errors"
	"fmt"
)

var (
	ErrSourceUnavailable = errors.New("dictionary source unavailable")
	ErrEncoding          = errors.New("dictionary source is not valid utf-8")
)

// SourceError records why a dictionary source was skipped. It names the source
// and never carries line content.
type SourceError struct {
	Source string
	Kind   error
	Err    error
}

func (e *SourceError) Error() string {
	return fmt.Sprintf("%s: %s: %s", e.Kind, e.Source, e.Err)
}

func (e *SourceError) Unwrap() []error {
	return []error{e.Kind, e.Err}
}
