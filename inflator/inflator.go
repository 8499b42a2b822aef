package inflator

import (
	"bufio"
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"code.cloudfoundry.org/archiver/extractor"
	"code.cloudfoundry.org/lager"

	"github.com/pivotal-cf/pass-audit/mimetype"
)

type Inflator interface {
	Inflate(logger lager.Logger, mime, archivePath, destination string) error
}

type inflator struct {
	detectable extractor.Extractor
	tar        extractor.Extractor
}

func New() *inflator {
	return &inflator{
		detectable: extractor.NewDetectable(),
		tar:        extractor.NewTar(),
	}
}

// Inflate unpacks archivePath into destination, then keeps unpacking any
// archives found inside it until only plain files remain.
func (i *inflator) Inflate(logger lager.Logger, mime, archivePath, destination string) error {
	logger = logger.Session("inflate", lager.Data{
		"archive": archivePath,
		"mime":    mime,
	})
	logger.Debug("starting")
	defer logger.Debug("done")

	err := i.extractFile(mime, archivePath, destination)
	if err != nil {
		logger.Error("failed-to-extract", err)
		return err
	}

	return i.recursivelyExtractArchivesInDir(logger, destination)
}

func (i *inflator) extractFile(mime, path, destination string) error {
	err := os.MkdirAll(destination, 0755)
	if err != nil {
		return err
	}

	switch mime {
	case mimetype.Zip:
		return i.detectable.Extract(path, destination)
	case mimetype.Tar:
		sniffed, _, err := sniffFile(path)
		if err != nil {
			return err
		}

		// .tar.gz and .tgz are named as tars but start with gzip magic
		if sniffed == mimetype.Gzip {
			return i.detectable.Extract(path, destination)
		}
		return i.tar.Extract(path, destination)
	case mimetype.Gzip:
		return gunzip(path, destination)
	default:
		return fmt.Errorf("don't know how to extract %s", mime)
	}
}

func gunzip(path, destination string) error {
	input, err := os.Open(path)
	if err != nil {
		return err
	}
	defer input.Close()

	gz, err := gzip.NewReader(input)
	if err != nil {
		return err
	}
	defer gz.Close()

	fileName := filepath.Base(path)
	fileNameWithoutExt := strings.TrimSuffix(fileName, filepath.Ext(fileName))

	output, err := os.Create(filepath.Join(destination, fileNameWithoutExt))
	if err != nil {
		return err
	}

	_, err = io.Copy(output, gz)
	if closeErr := output.Close(); err == nil {
		err = closeErr
	}

	return err
}

func (i *inflator) recursivelyExtractArchivesInDir(logger lager.Logger, dir string) error {
	children, err := os.ReadDir(dir)
	if err != nil {
		return err
	}

	for _, child := range children {
		absPath := filepath.Join(dir, child.Name())

		if child.IsDir() {
			err := i.recursivelyExtractArchivesInDir(logger, absPath)
			if err != nil {
				return err
			}
			continue
		}

		if !child.Type().IsRegular() {
			continue
		}

		mime, isArchive, err := sniffFile(absPath)
		if err != nil {
			return err
		}

		if !isArchive {
			continue
		}

		extractDir := filepath.Join(dir, child.Name()+"-contents")
		err = i.extractFile(mime, absPath, extractDir)
		if err != nil {
			logger.Error("failed-to-extract-nested", err, lager.Data{"path": absPath})
			return err
		}

		err = os.RemoveAll(absPath)
		if err != nil {
			return err
		}

		err = i.recursivelyExtractArchivesInDir(logger, extractDir)
		if err != nil {
			return err
		}
	}

	return nil
}

func sniffFile(path string) (string, bool, error) {
	fh, err := os.Open(path)
	if err != nil {
		return "", false, err
	}
	defer fh.Close()

	mime, isArchive := mimetype.Sniff(bufio.NewReader(fh))
	return mime, isArchive, nil
}

// Files lists every regular file below dir in lexical order.
func Files(dir string) ([]string, error) {
	var files []string

	err := filepath.WalkDir(dir, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if d.Type().IsRegular() {
			files = append(files, path)
		}

		return nil
	})

	return files, err
}
