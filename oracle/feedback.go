package oracle

import (
	"math"
	"strings"
	"unicode"
	"unicode/utf8"
)

const extraFeedback = "Add another word or two. Uncommon words are better."

var defaultSuggestions = []string{
	"Use a few words, avoid common phrases.",
	"No need for symbols, digits, or uppercase letters.",
}

// scoredMatch is a match plus the estimator's entropy for it, which stands in
// for the dictionary rank when choosing a warning.
type scoredMatch struct {
	Match
	entropy float64
}

func (m scoredMatch) guessesLog10() float64 {
	return m.entropy * math.Log10(2)
}

// feedback picks a warning and suggestions from the longest match, only for
// weak passwords.
func feedback(score int, sequence []scoredMatch) (string, []string) {
	if len(sequence) == 0 {
		return "", append([]string(nil), defaultSuggestions...)
	}

	if score > 2 {
		return "", []string{}
	}

	longest := sequence[0]
	for _, m := range sequence[1:] {
		if utf8.RuneCountInString(m.Token) > utf8.RuneCountInString(longest.Token) {
			longest = m
		}
	}

	warning, suggestions, ok := matchFeedback(longest, len(sequence) == 1)
	if !ok {
		return "", []string{extraFeedback}
	}

	return warning, append([]string{extraFeedback}, suggestions...)
}

func matchFeedback(m scoredMatch, isSoleMatch bool) (string, []string, bool) {
	switch m.Pattern {
	case "dictionary":
		warning, suggestions := dictionaryFeedback(m, isSoleMatch)
		return warning, suggestions, true
	case "spatial":
		return "Short keyboard patterns are easy to guess.",
			[]string{"Use a longer keyboard pattern with more turns."}, true
	case "repeat":
		warning := `Repeats like "abcabcabc" are only slightly harder to guess than "abc".`
		if isSingleCharacterRepeat(m.Token) {
			warning = `Repeats like "aaa" are easy to guess.`
		}
		return warning, []string{"Avoid repeated words and characters."}, true
	case "sequence":
		return "Sequences like abc or 6543 are easy to guess.",
			[]string{"Avoid sequences."}, true
	case "regex":
		return "Recent years are easy to guess.",
			[]string{"Avoid recent years.", "Avoid years that are associated with you."}, true
	case "date":
		return "Dates are often easy to guess.",
			[]string{"Avoid dates and years that are associated with you."}, true
	default:
		return "", nil, false
	}
}

func dictionaryFeedback(m scoredMatch, isSoleMatch bool) (string, []string) {
	var warning string

	switch dictionaryKind(m.DictionaryName) {
	case "passwords":
		if isSoleMatch {
			rank := math.Pow(2, m.entropy)
			switch {
			case rank <= 10:
				warning = "This is a top-10 common password."
			case rank <= 100:
				warning = "This is a top-100 common password."
			default:
				warning = "This is a very common password."
			}
		} else if m.guessesLog10() <= 4 {
			warning = "This is similar to a commonly used password."
		}
	case "english":
		if isSoleMatch {
			warning = "A word by itself is easy to guess."
		}
	case "names":
		if isSoleMatch {
			warning = "Names and surnames by themselves are easy to guess."
		} else {
			warning = "Common names and surnames are easy to guess."
		}
	}

	var suggestions []string
	word := m.Token
	if startsUpper(word) {
		suggestions = append(suggestions, "Capitalization doesn't help very much.")
	} else if strings.ToUpper(word) == word && strings.ToLower(word) != word {
		suggestions = append(suggestions, "All-uppercase is almost as easy to guess as all-lowercase.")
	}

	return warning, suggestions
}

func dictionaryKind(name string) string {
	normalized := strings.ToLower(strings.NewReplacer("_", "", "-", "", " ", "").Replace(name))

	switch {
	case strings.Contains(normalized, "password"):
		return "passwords"
	case strings.HasPrefix(normalized, "english"):
		return "english"
	case strings.Contains(normalized, "name"):
		return "names"
	default:
		return normalized
	}
}

// startsUpper matches an upper case first rune followed only by runes that
// are not upper case, like "Monkey" but not "MONKEY" or "MonKey".
func startsUpper(token string) bool {
	first, size := utf8.DecodeRuneInString(token)
	if !unicode.IsUpper(first) || size == len(token) {
		return false
	}

	return strings.IndexFunc(token[size:], unicode.IsUpper) == -1
}

func isSingleCharacterRepeat(token string) bool {
	first, size := utf8.DecodeRuneInString(token)
	if size == 0 {
		return false
	}
	return strings.Trim(token, string(first)) == ""
}
