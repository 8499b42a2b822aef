package scanners

import "code.cloudfoundry.org/lager"

// Line is one line of a dictionary, wordlist or batch input stream. Content
// may be plaintext password material and must not outlive the scan loop that
// produced it.
type Line struct {
	Path       string
	LineNumber int
	Content    string
}

//go:generate counterfeiter . Scanner

type Scanner interface {
	Scan(lager.Logger) bool
	Line(lager.Logger) *Line
	Err() error
}

// Location identifies a line without its content, for logs and errors.
func (l Line) Location() lager.Data {
	return lager.Data{
		"path": l.Path,
		"line": l.LineNumber,
	}
}
