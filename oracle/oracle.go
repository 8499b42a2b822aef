// Package oracle is the boundary to an external structural strength
// estimator: something that spots dictionary words, keyboard walks, repeats,
// sequences and dates, and turns them into a 0-4 score with advice.
package oracle

//go:generate counterfeiter . Oracle

type Oracle interface {
	Evaluate(candidate string) Result
}

type Result struct {
	Score             int
	Warning           string
	Suggestions       []string
	Sequence          []Match
	CrackTimesDisplay map[string]string
}

// Match is one pattern the estimator found. Year is only set for dates.
type Match struct {
	Pattern        string
	Token          string
	DictionaryName string
	Year           int
}

const (
	OnlineThrottling   = "online_throttling_100_per_hour"
	OnlineNoThrottling = "online_no_throttling_10_per_second"
	OfflineSlowHashing = "offline_slow_hashing_1e4_per_second"
	OfflineFastHashing = "offline_fast_hashing_1e10_per_second"
)

type neutral struct{}

// Neutral is an estimator with no opinion: a middling score and nothing else.
var Neutral Oracle = neutral{}

func (neutral) Evaluate(string) Result {
	return Result{
		Score:             2,
		CrackTimesDisplay: map[string]string{},
	}
}
