package breach

import (
	"io"
	"os"
)

type Source interface {
	Name() string
	Open() (io.ReadCloser, error)
}

type fileSource struct {
	path string
}

// FileSource reads a dictionary file. Archives (.zip, .tar, .tar.gz, .tgz, .gz)
// are unpacked and every file inside is loaded.
func FileSource(path string) Source {
	return &fileSource{path: path}
}

func FileSources(paths ...string) []Source {
	sources := make([]Source, 0, len(paths))
	for _, path := range paths {
		sources = append(sources, FileSource(path))
	}
	return sources
}

func (s *fileSource) Name() string {
	return s.path
}

func (s *fileSource) Open() (io.ReadCloser, error) {
	return os.Open(s.path)
}

type readerSource struct {
	name   string
	reader io.Reader
}

func ReaderSource(name string, r io.Reader) Source {
	return &readerSource{
		name:   name,
		reader: r,
	}
}

func (s *readerSource) Name() string {
	return s.name
}

func (s *readerSource) Open() (io.ReadCloser, error) {
	return io.NopCloser(s.reader), nil
}
