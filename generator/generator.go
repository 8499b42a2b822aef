// Package generator produces passwords, passphrases and PINs from a
// cryptographically secure source.
package generator

import (
	"crypto/rand"
	"fmt"
	"io"
	"math"
	"math/big"
	"strconv"
	"strings"
	"unicode/utf8"

	"code.cloudfoundry.org/lager"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const (
	lowercase   = "abcdefghijklmnopqrstuvwxyz"
	uppercase   = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	digits      = "0123456789"
	punctuation = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"
	letters     = lowercase + uppercase

	minPassphraseWords = 3
)

type Generator struct {
	wordlist *Wordlist
	random   io.Reader
}

// New loads the wordlist at wordlistPath, falling back to a small built in
// list when it cannot be used.
func New(logger lager.Logger, wordlistPath string) *Generator {
	wordlist, err := LoadWordlist(logger, wordlistPath)
	if err != nil {
		logger.Error("using-fallback-wordlist", err, lager.Data{
			"path":  wordlistPath,
			"words": len(fallbackWords),
		})
		wordlist = FallbackWordlist()
	}

	return &Generator{
		wordlist: wordlist,
		random:   rand.Reader,
	}
}

func NewWithWords(words []string, source string) *Generator {
	wordlist := newWordlist(words, source)
	if wordlist.Size() == 0 {
		wordlist = FallbackWordlist()
	}

	return &Generator{
		wordlist: wordlist,
		random:   rand.Reader,
	}
}

// WithRandom returns a copy of g drawing from r instead of crypto/rand.
func (g *Generator) WithRandom(r io.Reader) *Generator {
	return &Generator{
		wordlist: g.wordlist,
		random:   r,
	}
}

func (g *Generator) Info() WordlistInfo {
	return g.wordlist.Info()
}

// Passphrase draws enough words, with replacement, to reach entropyBits, but
// never fewer than three.
func (g *Generator) Passphrase(entropyBits int, separator string, capitalize, appendNumber bool) (string, error) {
	count := minPassphraseWords
	if bits := g.wordlist.BitsPerWord(); bits > 0 {
		count = int(math.Ceil(float64(entropyBits) / bits))
	}
	if count < minPassphraseWords {
		count = minPassphraseWords
	}

	words := make([]string, count)
	for i := range words {
		n, err := g.intn(g.wordlist.Size())
		if err != nil {
			return "", err
		}

		words[i] = g.wordlist.Word(n)
		if capitalize {
			words[i] = capitalizeWord(words[i])
		}
	}

	passphrase := strings.Join(words, separator)

	if appendNumber {
		n, err := g.intn(90)
		if err != nil {
			return "", err
		}
		passphrase += strconv.Itoa(10 + n)
	}

	return passphrase, nil
}

// capitalizeWord upper cases the first rune and lower cases the rest, so
// hyphenated words like "t-shirt" become "T-shirt".
func capitalizeWord(word string) string {
	_, size := utf8.DecodeRuneInString(word)
	return cases.Upper(language.English).String(word[:size]) +
		cases.Lower(language.English).String(word[size:])
}

// Mixed has at least one lowercase letter, uppercase letter, digit and
// punctuation character.
func (g *Generator) Mixed(length int) (string, error) {
	if err := checkLength(length, minMixedLength); err != nil {
		return "", err
	}

	return g.fromClasses(length, letters+digits+punctuation, lowercase, uppercase, digits, punctuation)
}

// Alphanumeric has at least one letter and one digit.
func (g *Generator) Alphanumeric(length int) (string, error) {
	if err := checkLength(length, minAlphanumericLength); err != nil {
		return "", err
	}

	return g.fromClasses(length, letters+digits, letters, digits)
}

func (g *Generator) PIN(length int) (string, error) {
	if err := checkLength(length, minPINLength); err != nil {
		return "", err
	}

	pin := make([]byte, length)
	for i := range pin {
		c, err := g.pick(digits)
		if err != nil {
			return "", err
		}
		pin[i] = c
	}

	return string(pin), nil
}

func (g *Generator) Generate(spec Spec) (string, error) {
	if err := spec.Validate(); err != nil {
		return "", err
	}

	switch spec.Style {
	case Passphrase:
		return g.Passphrase(spec.EntropyBits, spec.Separator, spec.Capitalize, spec.AppendNumber)
	case Mixed:
		return g.Mixed(spec.Length)
	case Alphanumeric:
		return g.Alphanumeric(spec.Length)
	default:
		return g.PIN(spec.Length)
	}
}

// GenerateBatch returns count independent passwords. An invalid spec or a
// negative count fails before anything is generated.
func (g *Generator) GenerateBatch(count int, spec Spec) ([]string, error) {
	if count < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidCount, count)
	}

	if err := spec.Validate(); err != nil {
		return nil, err
	}

	passwords := make([]string, 0, count)
	for i := 0; i < count; i++ {
		password, err := g.Generate(spec)
		if err != nil {
			return nil, err
		}
		passwords = append(passwords, password)
	}

	return passwords, nil
}

// fromClasses takes one character from each required class, fills up to
// length from charset and shuffles.
func (g *Generator) fromClasses(length int, charset string, required ...string) (string, error) {
	password := make([]byte, 0, length)

	for _, class := range required {
		c, err := g.pick(class)
		if err != nil {
			return "", err
		}
		password = append(password, c)
	}

	for len(password) < length {
		c, err := g.pick(charset)
		if err != nil {
			return "", err
		}
		password = append(password, c)
	}

	if err := g.shuffle(password); err != nil {
		return "", err
	}

	return string(password), nil
}

func (g *Generator) pick(charset string) (byte, error) {
	n, err := g.intn(len(charset))
	if err != nil {
		return 0, err
	}
	return charset[n], nil
}

func (g *Generator) shuffle(b []byte) error {
	for i := len(b) - 1; i > 0; i-- {
		j, err := g.intn(i + 1)
		if err != nil {
			return err
		}
		b[i], b[j] = b[j], b[i]
	}
	return nil
}

func (g *Generator) intn(n int) (int, error) {
	v, err := rand.Int(g.random, big.NewInt(int64(n)))
	if err != nil {
		return 0, err
	}
	return int(v.Int64()), nil
}
