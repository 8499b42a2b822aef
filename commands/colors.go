package commands

import (
	"os"

	"github.com/mgutz/ansi"
	"golang.org/x/term"

	"github.com/pivotal-cf/pass-audit/strength"
)

var plain = !term.IsTerminal(int(os.Stdout.Fd()))

func colorFunc(style string) func(string) string {
	color := ansi.ColorFunc(style)

	return func(text string) string {
		if plain {
			return text
		}
		return color(text)
	}
}

var (
	red    = colorFunc("red+b")
	yellow = colorFunc("yellow+b")
	green  = colorFunc("green+b")
	cyan   = colorFunc("cyan+b")
	bold   = colorFunc("white+b")
	dim    = colorFunc("black+h")
)

var scoreColors = map[strength.Score]func(string) string{
	strength.VeryWeak:   red,
	strength.Weak:       red,
	strength.Fair:       yellow,
	strength.Strong:     green,
	strength.VeryStrong: colorFunc("green+bh"),
}

func scoreColor(score strength.Score) func(string) string {
	if color, ok := scoreColors[score]; ok {
		return color
	}
	return bold
}
