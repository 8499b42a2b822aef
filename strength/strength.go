// Package strength turns breach membership, an entropy estimate and the
// oracle's opinion into a single 0-4 rating with ordered advice.
package strength

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/pivotal-cf/pass-audit/oracle"
)

type Score int

const (
	VeryWeak Score = iota
	Weak
	Fair
	Strong
	VeryStrong
)

var scoreNames = [...]string{"Very Weak", "Weak", "Fair", "Strong", "Very Strong"}

func (s Score) String() string {
	if s < VeryWeak || s > VeryStrong {
		return "Unknown"
	}
	return scoreNames[s]
}

const (
	BreachedWarning     = "This password has been exposed in data breaches"
	MinimumLengthAdvice = "Use at least 12 characters for better security"
	OptimalLengthAdvice = "Consider using 16+ characters for optimal security"
	LowEntropyAdvice    = "Password has low entropy - add more character variety"

	minimumLength  = 12
	optimalLength  = 16
	lowEntropyBits = 40.0
)

// Classify rates a candidate. The candidate is only inspected for its length
// and character classes. A breached password is always VeryWeak no matter
// what the oracle thinks.
func Classify(candidate string, isBreached bool, entropy float64, external oracle.Result) (Score, []string) {
	score := clamp(Score(external.Score))
	if isBreached {
		score = VeryWeak
	}

	feedback := []string{}

	if isBreached {
		feedback = append(feedback, BreachedWarning)
	}

	if external.Warning != "" {
		feedback = append(feedback, external.Warning)
	}

	feedback = append(feedback, external.Suggestions...)

	length := utf8.RuneCountInString(candidate)
	switch {
	case length < minimumLength:
		feedback = append(feedback, MinimumLengthAdvice)
	case length < optimalLength:
		feedback = append(feedback, OptimalLengthAdvice)
	}

	if entropy < lowEntropyBits {
		feedback = append(feedback, LowEntropyAdvice)
	}

	if missing := missingClasses(candidate); len(missing) > 0 {
		feedback = append(feedback, "Add "+strings.Join(missing, ", ")+" for better security")
	}

	return score, feedback
}

// ScoreForEntropy is the rating entropy alone would give.
func ScoreForEntropy(entropy float64, isBreached bool) Score {
	switch {
	case isBreached:
		return VeryWeak
	case entropy < 28:
		return VeryWeak
	case entropy < 36:
		return Weak
	case entropy < 60:
		return Fair
	case entropy < 128:
		return Strong
	default:
		return VeryStrong
	}
}

func missingClasses(candidate string) []string {
	var lower, upper, digit, special bool
	for _, r := range candidate {
		switch {
		case unicode.IsLower(r):
			lower = true
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsDigit(r):
			digit = true
		case !unicode.IsLetter(r) && !unicode.IsNumber(r):
			special = true
		}
	}

	var missing []string
	if !lower {
		missing = append(missing, "lowercase letters")
	}
	if !upper {
		missing = append(missing, "uppercase letters")
	}
	if !digit {
		missing = append(missing, "numbers")
	}
	if !special {
		missing = append(missing, "special characters")
	}
	return missing
}

func clamp(s Score) Score {
	switch {
	case s < VeryWeak:
		return VeryWeak
	case s > VeryStrong:
		return VeryStrong
	default:
		return s
	}
}
