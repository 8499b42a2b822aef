package breach

import (
	"bufio"
	"fmt"
	"io"
	"sort"

	"code.cloudfoundry.org/lager"

	"github.com/pivotal-cf/pass-audit/inflator"
)

const mergedHeader = "# Merged password dictionary"

// Merge writes the sorted, de-duplicated union of the dictionary sources to w
// and returns how many entries it wrote. Unreadable sources are skipped as in
// Build and reported in the returned error; a failure to write to w is
// returned on its own.
func Merge(logger lager.Logger, w io.Writer, sources ...Source) (int, error) {
	logger = logger.Session("merge-dictionaries", lager.Data{"sources": len(sources)})
	logger.Debug("starting")
	defer logger.Debug("done")

	unique := make(map[string]struct{})

	skipped := newLoader(inflator.New()).each(logger, sources, func(logger lager.Logger, name string, r io.Reader) error {
		staged := make(map[string]struct{})

		_, err := readLines(logger, name, r, func(line string) {
			staged[line] = struct{}{}
		})
		if err != nil {
			return err
		}

		for line := range staged {
			unique[line] = struct{}{}
		}

		return nil
	})

	entries := make([]string, 0, len(unique))
	for line := range unique {
		entries = append(entries, line)
	}
	sort.Strings(entries)

	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, mergedHeader)
	for _, entry := range entries {
		fmt.Fprintln(bw, entry)
	}

	if err := bw.Flush(); err != nil {
		logger.Error("failed-to-write", err)
		return 0, err
	}

	logger.Info("merged", lager.Data{"entries": len(entries)})

	return len(entries), skipped
}
