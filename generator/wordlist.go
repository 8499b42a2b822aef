package generator

import (
	"errors"
	"fmt"
	"math"
	"os"
	"strings"

	"code.cloudfoundry.org/lager"

	"github.com/pivotal-cf/pass-audit/scanners"
	"github.com/pivotal-cf/pass-audit/scanners/linescanner"
	"github.com/pivotal-cf/pass-audit/scanners/matchers"
)

const (
	EFFSource      = "EFF Large Wordlist"
	FallbackSource = "Fallback"

	effThreshold = 1000
)

var fallbackWords = []string{
	"abacus", "abdomen", "able", "abstract", "academy", "acrobat",
	"active", "actor", "adapt", "admiral", "adventure", "advice",
	"afraid", "agency", "agent", "airport", "album", "alcohol",
	"alert", "algebra", "alien", "along", "alpha", "already",
	"also", "altitude", "aluminum", "always", "amazed", "amber",
	"ambition", "amount", "amused", "anchor", "ancient", "angel",
	"anger", "angle", "animal", "ankle", "announce", "answer",
}

var errEmptyWordlist = errors.New("wordlist has no words")

// Wordlist is an ordered list of distinct passphrase words.
type Wordlist struct {
	words  []string
	source string
}

type WordlistInfo struct {
	Source      string  `json:"source"`
	Size        int     `json:"size"`
	BitsPerWord float64 `json:"bits_per_word"`
}

func newWordlist(words []string, source string) *Wordlist {
	seen := make(map[string]struct{}, len(words))
	distinct := make([]string, 0, len(words))

	for _, w := range words {
		if _, ok := seen[w]; ok {
			continue
		}
		seen[w] = struct{}{}
		distinct = append(distinct, w)
	}

	return &Wordlist{
		words:  distinct,
		source: source,
	}
}

func FallbackWordlist() *Wordlist {
	return newWordlist(fallbackWords, FallbackSource)
}

// LoadWordlist reads a diceware style file of "<id> <word>" lines. Comments and
// lines without a word are skipped.
func LoadWordlist(logger lager.Logger, path string) (*Wordlist, error) {
	logger = logger.Session("load-wordlist", lager.Data{"path": path})
	logger.Debug("starting")
	defer logger.Debug("done")

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var words []string
	_, err = scanners.Each(logger, linescanner.New(f, path), matchers.Ignorable(), func(line string) {
		if fields := strings.Fields(line); len(fields) >= 2 {
			words = append(words, fields[1])
		}
	})
	if err != nil {
		return nil, fmt.Errorf("reading wordlist %s: %w", path, err)
	}

	if len(words) == 0 {
		return nil, fmt.Errorf("%s: %w", path, errEmptyWordlist)
	}

	list := newWordlist(words, path)
	if list.Size() > effThreshold {
		list.source = EFFSource
	}

	return list, nil
}

func (w *Wordlist) Size() int {
	return len(w.words)
}

func (w *Wordlist) Word(i int) string {
	return w.words[i]
}

func (w *Wordlist) BitsPerWord() float64 {
	return math.Log2(float64(len(w.words)))
}

func (w *Wordlist) Info() WordlistInfo {
	return WordlistInfo{
		Source:      w.source,
		Size:        w.Size(),
		BitsPerWord: w.BitsPerWord(),
	}
}
