// Package breach holds the set of known-compromised password digests.
//
// Dictionary lines are hashed as they are read; only digests are kept.
package breach

import (
	"io"
	"sync/atomic"

	"code.cloudfoundry.org/lager"

	"github.com/pivotal-cf/pass-audit/digest"
	"github.com/pivotal-cf/pass-audit/inflator"
)

type Index struct {
	digests map[digest.Digest]struct{}
	checks  atomic.Int64
}

// Build loads every source into a new Index. A source that cannot be opened
// or decoded is logged and skipped; the returned error lists the skipped
// sources and does not invalidate the index.
func Build(logger lager.Logger, sources ...Source) (*Index, error) {
	logger = logger.Session("build-index", lager.Data{"sources": len(sources)})
	logger.Debug("starting")

	index := &Index{
		digests: make(map[digest.Digest]struct{}),
	}

	err := newLoader(inflator.New()).each(logger, sources, func(logger lager.Logger, name string, r io.Reader) error {
		staged := make(map[digest.Digest]struct{})

		count, err := readLines(logger, name, r, func(line string) {
			staged[digest.Sum(line)] = struct{}{}
		})
		if err != nil {
			return err
		}

		for d := range staged {
			index.digests[d] = struct{}{}
		}

		logger.Info("loaded-source", lager.Data{
			"source":    name,
			"passwords": count,
		})

		return nil
	})

	logger.Info("done", lager.Data{"digests": index.Size()})

	return index, err
}

func (i *Index) Contains(candidate string) bool {
	return i.ContainsDigest(digest.Sum(candidate))
}

func (i *Index) ContainsDigest(d digest.Digest) bool {
	i.checks.Add(1)
	_, found := i.digests[d]
	return found
}

func (i *Index) Size() int {
	return len(i.digests)
}

// Checks is the number of membership queries answered by this index.
func (i *Index) Checks() int64 {
	return i.checks.Load()
}
