package entropy

import (
	"math"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Punctuation is the ASCII punctuation class.
const Punctuation = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"

const (
	lowerSize    = 26
	upperSize    = 26
	digitSize    = 10
	spaceSize    = 1
	extendedSize = 100
)

type Class uint8

const (
	Lower Class = 1 << iota
	Upper
	Digit
	Symbol
	Space
	Extended
)

type ClassSet uint8

func (s ClassSet) Has(c Class) bool {
	return s&ClassSet(c) != 0
}

// CharsetSize is the keyspace assumed for a candidate drawing from these
// classes: each present class contributes its full size once.
func (s ClassSet) CharsetSize() int {
	var size int
	if s.Has(Lower) {
		size += lowerSize
	}
	if s.Has(Upper) {
		size += upperSize
	}
	if s.Has(Digit) {
		size += digitSize
	}
	if s.Has(Symbol) {
		size += len(Punctuation)
	}
	if s.Has(Space) {
		size += spaceSize
	}
	if s.Has(Extended) {
		size += extendedSize
	}
	return size
}

func Classes(candidate string) ClassSet {
	var set ClassSet

	for _, r := range candidate {
		if unicode.IsLower(r) {
			set |= ClassSet(Lower)
		}
		if unicode.IsUpper(r) {
			set |= ClassSet(Upper)
		}
		if unicode.IsDigit(r) {
			set |= ClassSet(Digit)
		}
		if r < utf8.RuneSelf && strings.ContainsRune(Punctuation, r) {
			set |= ClassSet(Symbol)
		}
		if unicode.IsSpace(r) {
			set |= ClassSet(Space)
		}
		if r > unicode.MaxASCII {
			set |= ClassSet(Extended)
		}
	}

	return set
}

// Estimate returns length * log2(charset) in bits, where length counts runes
// and the charset is derived from the classes present. This approximates
// guessing resistance; it is not the Shannon entropy of the string.
func Estimate(candidate string) float64 {
	if candidate == "" {
		return 0
	}

	size := Classes(candidate).CharsetSize()
	if size == 0 {
		return 0
	}

	return float64(utf8.RuneCountInString(candidate)) * math.Log2(float64(size))
}
