package report

import (
	"math"

	"github.com/pivotal-cf/pass-audit/analyzer"
	"github.com/pivotal-cf/pass-audit/strength"
)

type Summary struct {
	TotalAnalyzed     int         `json:"total_analyzed"`
	CommonPasswords   int         `json:"common_passwords"`
	CommonPercentage  float64     `json:"common_percentage"`
	AverageLength     float64     `json:"average_length"`
	AverageEntropy    float64     `json:"average_entropy"`
	AverageScore      float64     `json:"average_score"`
	ScoreDistribution map[int]int `json:"score_distribution,omitempty"`
	WeakPasswords     int         `json:"weak_passwords"`
	Timestamp         string      `json:"timestamp,omitempty"`
}

// Summarize aggregates a batch. An empty batch gives the zero Summary.
func Summarize(results []analyzer.Result) Summary {
	if len(results) == 0 {
		return Summary{}
	}

	distribution := map[int]int{}
	for s := strength.VeryWeak; s <= strength.VeryStrong; s++ {
		distribution[int(s)] = 0
	}

	var common int
	var length, entropy, scoreSum float64

	for _, r := range results {
		distribution[int(r.Score)]++
		if r.IsBreached {
			common++
		}
		length += float64(r.Length)
		entropy += r.Entropy
		scoreSum += float64(r.Score)
	}

	total := float64(len(results))

	return Summary{
		TotalAnalyzed:     len(results),
		CommonPasswords:   common,
		CommonPercentage:  float64(common) / total * 100,
		AverageLength:     roundTo(length/total, 1),
		AverageEntropy:    roundTo(entropy/total, 1),
		AverageScore:      roundTo(scoreSum/total, 2),
		ScoreDistribution: distribution,
		WeakPasswords:     distribution[int(strength.VeryWeak)] + distribution[int(strength.Weak)],
	}
}

func roundTo(f float64, places int) float64 {
	shift := math.Pow(10, float64(places))
	return math.Round(f*shift) / shift
}
