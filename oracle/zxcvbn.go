package oracle

import (
	"math"
	"strconv"
	"unicode"

	"github.com/nbutton23/zxcvbn-go"
	"github.com/nbutton23/zxcvbn-go/match"
)

type zxcvbnOracle struct {
	userInputs []string
}

// NewZxcvbn returns an Oracle backed by zxcvbn-go. userInputs are extra
// words (user names, site names) penalised like dictionary words.
func NewZxcvbn(userInputs ...string) Oracle {
	return &zxcvbnOracle{
		userInputs: userInputs,
	}
}

func (z *zxcvbnOracle) Evaluate(candidate string) Result {
	if candidate == "" {
		warning, suggestions := feedback(0, nil)
		return Result{
			Score:             0,
			Warning:           warning,
			Suggestions:       suggestions,
			Sequence:          []Match{},
			CrackTimesDisplay: CrackTimesDisplay(1),
		}
	}

	strength := zxcvbn.PasswordStrength(candidate, z.userInputs)

	scored := make([]scoredMatch, 0, len(strength.MatchSequence))
	sequence := make([]Match, 0, len(strength.MatchSequence))
	for _, m := range strength.MatchSequence {
		converted := convert(m)
		scored = append(scored, scoredMatch{Match: converted, entropy: m.Entropy})
		sequence = append(sequence, converted)
	}

	score := clamp(strength.Score)
	warning, suggestions := feedback(score, scored)

	return Result{
		Score:             score,
		Warning:           warning,
		Suggestions:       suggestions,
		Sequence:          sequence,
		CrackTimesDisplay: CrackTimesDisplay(math.Pow(2, strength.Entropy)),
	}
}

func convert(m match.Match) Match {
	converted := Match{
		Pattern:        m.Pattern,
		Token:          m.Token,
		DictionaryName: m.DictionaryName,
	}

	switch m.Pattern {
	case "year":
		converted.Pattern = "regex"
	case "date":
		converted.Year = yearOf(m.Token)
	}

	return converted
}

// yearOf pulls the year out of a date token such as "13.3.1997" or "010199".
// A four digit run wins; otherwise the trailing two digits are read the way
// people write them, 51-99 as 19xx and 00-50 as 20xx.
func yearOf(token string) int {
	var (
		runs    []string
		current []rune
	)

	for _, r := range token {
		if unicode.IsDigit(r) {
			current = append(current, r)
			continue
		}
		if len(current) > 0 {
			runs = append(runs, string(current))
			current = nil
		}
	}
	if len(current) > 0 {
		runs = append(runs, string(current))
	}

	var digits string
	for _, run := range runs {
		if len(run) == 4 {
			year, _ := strconv.Atoi(run)
			return year
		}
		digits += run
	}

	if len(digits) == 8 {
		for _, candidate := range []string{digits[4:], digits[:4]} {
			if year, _ := strconv.Atoi(candidate); year >= 1900 && year <= 2099 {
				return year
			}
		}
	}

	if len(digits) < 2 {
		return 0
	}

	year, err := strconv.Atoi(digits[len(digits)-2:])
	if err != nil {
		return 0
	}
	if year > 50 {
		return 1900 + year
	}
	return 2000 + year
}

func clamp(score int) int {
	switch {
	case score < 0:
		return 0
	case score > 4:
		return 4
	default:
		return score
	}
}
