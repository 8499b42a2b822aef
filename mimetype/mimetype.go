package mimetype

import (
	"bufio"
	"strings"

	"bitbucket.org/taruti/mimemagic"
)

const (
	Tar  = "application/x-tar"
	Zip  = "application/zip"
	Gzip = "application/gzip"
)

const sniffLen = 512

func IsArchive(filename string) (string, bool) {
	if strings.HasSuffix(filename, ".tar") ||
		strings.HasSuffix(filename, ".tar.gz") ||
		strings.HasSuffix(filename, ".tgz") {
		return Tar, true
	} else if strings.HasSuffix(filename, ".zip") {
		return Zip, true
	} else if strings.HasSuffix(filename, ".gz") {
		return Gzip, true
	} else {
		return "", false
	}
}

// Sniff looks at the first bytes of br without consuming them and reports
// whether they carry an archive's magic number.
func Sniff(br *bufio.Reader) (string, bool) {
	header, _ := br.Peek(sniffLen)
	if len(header) == 0 {
		return "", false
	}

	switch mime := mimemagic.Match("", header); mime {
	case "application/zip":
		return Zip, true
	case "application/x-tar", "application/x-gtar":
		return Tar, true
	case "application/gzip", "application/x-gzip":
		return Gzip, true
	default:
		return "", false
	}
}
