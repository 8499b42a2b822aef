package generator

import (
	"fmt"
	"strings"
)

type Style string

const (
	Passphrase   Style = "passphrase"
	Mixed        Style = "mixed"
	Alphanumeric Style = "alphanumeric"
	PIN          Style = "pin"
)

var Styles = []Style{Passphrase, Mixed, Alphanumeric, PIN}

const (
	DefaultEntropyBits        = 52
	DefaultSeparator          = "-"
	DefaultMixedLength        = 16
	DefaultAlphanumericLength = 12
	DefaultPINLength          = 6

	minMixedLength        = 4
	minAlphanumericLength = 2
	minPINLength          = 1
)

func ParseStyle(s string) (Style, error) {
	style := Style(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Styles {
		if style == known {
			return style, nil
		}
	}

	return "", fmt.Errorf("%w: %q (choose from %s)", ErrUnknownStyle, s, styleNames())
}

func styleNames() string {
	names := make([]string, len(Styles))
	for i, s := range Styles {
		names[i] = string(s)
	}
	return strings.Join(names, ", ")
}

// Spec describes one generated password. Length applies to the character
// styles; EntropyBits, Separator, Capitalize and AppendNumber to passphrases.
type Spec struct {
	Style        Style
	EntropyBits  int
	Length       int
	Separator    string
	Capitalize   bool
	AppendNumber bool
}

// DefaultSpec returns the settings used when the caller only picks a style.
func DefaultSpec(style Style) Spec {
	spec := Spec{
		Style:        style,
		EntropyBits:  DefaultEntropyBits,
		Separator:    DefaultSeparator,
		Capitalize:   true,
		AppendNumber: true,
	}

	switch style {
	case Mixed:
		spec.Length = DefaultMixedLength
	case Alphanumeric:
		spec.Length = DefaultAlphanumericLength
	case PIN:
		spec.Length = DefaultPINLength
	}

	return spec
}

func (s Spec) Validate() error {
	switch s.Style {
	case Passphrase:
		return nil
	case Mixed:
		return checkLength(s.Length, minMixedLength)
	case Alphanumeric:
		return checkLength(s.Length, minAlphanumericLength)
	case PIN:
		return checkLength(s.Length, minPINLength)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownStyle, s.Style)
	}
}

func checkLength(length, min int) error {
	if length < min {
		return fmt.Errorf("%w: %d (must be at least %d)", ErrInvalidLength, length, min)
	}
	return nil
}
