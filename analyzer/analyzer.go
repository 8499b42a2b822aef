// Package analyzer runs a password through breach lookup, entropy estimation
// and the strength oracle and reports one Result per password.
package analyzer

import (
	"context"
	"sync/atomic"

	"code.cloudfoundry.org/lager"
	"golang.org/x/sync/errgroup"

	"github.com/pivotal-cf/pass-audit/digest"
	"github.com/pivotal-cf/pass-audit/entropy"
	"github.com/pivotal-cf/pass-audit/oracle"
	"github.com/pivotal-cf/pass-audit/strength"
)

//go:generate counterfeiter . Index

type Index interface {
	Contains(candidate string) bool
}

const unknownKind = "unknown"

var knownKinds = map[string]struct{}{
	"bruteforce": {},
	"dictionary": {},
	"spatial":    {},
	"repeat":     {},
	"sequence":   {},
	"regex":      {},
	"date":       {},
}

// Result is everything learned about one password. The password is kept only
// as its digest; pattern tokens are the fragments the oracle matched.
type Result struct {
	Length     int
	Score      strength.Score
	IsBreached bool
	Digest     digest.Digest
	Entropy    float64
	Feedback   []string
	CrackTimes map[string]string
	Patterns   []Pattern
}

type Pattern struct {
	Kind           string
	Token          string
	DictionaryName string
	Year           int
}

type Stats struct {
	TotalAnalyses int64
}

type Analyzer struct {
	logger   lager.Logger
	index    Index
	oracle   oracle.Oracle
	analyses atomic.Int64
}

func New(logger lager.Logger, index Index, estimator oracle.Oracle) *Analyzer {
	return &Analyzer{
		logger: logger.Session("analyzer"),
		index:  index,
		oracle: estimator,
	}
}

func (a *Analyzer) Analyze(candidate string) Result {
	external := a.oracle.Evaluate(candidate)

	isBreached := a.index.Contains(candidate)
	bits := entropy.Estimate(candidate)
	score, feedback := strength.Classify(candidate, isBreached, bits, external)

	crackTimes := make(map[string]string, len(external.CrackTimesDisplay))
	for k, v := range external.CrackTimesDisplay {
		crackTimes[k] = v
	}

	a.analyses.Add(1)

	return Result{
		Length:     len([]rune(candidate)),
		Score:      score,
		IsBreached: isBreached,
		Digest:     digest.Sum(candidate),
		Entropy:    bits,
		Feedback:   feedback,
		CrackTimes: crackTimes,
		Patterns:   patterns(external.Sequence),
	}
}

// AnalyzeBatch analyzes candidates on at most workers goroutines. Results
// come back in input order.
func (a *Analyzer) AnalyzeBatch(ctx context.Context, candidates []string, workers int) ([]Result, error) {
	logger := a.logger.Session("analyze-batch", lager.Data{
		"count":   len(candidates),
		"workers": workers,
	})
	logger.Debug("starting")
	defer logger.Debug("done")

	results := make([]Result, len(candidates))
	if len(candidates) == 0 {
		return results, nil
	}

	if workers < 1 {
		workers = 1
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i := range candidates {
		if gctx.Err() != nil {
			break
		}

		i := i
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i] = a.Analyze(candidates[i])
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		logger.Error("failed-to-analyze-batch", err)
		return nil, err
	}

	if err := ctx.Err(); err != nil {
		logger.Error("failed-to-analyze-batch", err)
		return nil, err
	}

	return results, nil
}

func (a *Analyzer) Stats() Stats {
	return Stats{
		TotalAnalyses: a.analyses.Load(),
	}
}

func patterns(sequence []oracle.Match) []Pattern {
	ps := make([]Pattern, 0, len(sequence))

	for _, m := range sequence {
		kind := m.Pattern
		if _, ok := knownKinds[kind]; !ok {
			kind = unknownKind
		}

		ps = append(ps, Pattern{
			Kind:           kind,
			Token:          m.Token,
			DictionaryName: m.DictionaryName,
			Year:           m.Year,
		})
	}

	return ps
}
