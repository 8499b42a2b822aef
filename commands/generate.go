package commands

import (
	"fmt"
	"os"
	"text/tabwriter"
	"unicode/utf8"

	"github.com/pivotal-cf/pass-audit/analyzer"
	"github.com/pivotal-cf/pass-audit/entropy"
	"github.com/pivotal-cf/pass-audit/generator"
	"github.com/pivotal-cf/pass-audit/oracle"
)

type GenerateCommand struct {
	Count        int    `short:"c" long:"count" default:"1" description:"number of passwords to generate" value-name:"N"`
	Entropy      int    `short:"e" long:"entropy" default:"52" description:"target entropy in bits" value-name:"BITS"`
	Style        string `short:"s" long:"style" default:"passphrase" description:"passphrase, mixed, alphanumeric or pin" value-name:"STYLE"`
	Length       int    `short:"l" long:"length" description:"length for the character styles (default: derived from --entropy)" value-name:"LENGTH"`
	Separator    string `long:"separator" default:"-" description:"passphrase word separator" value-name:"SEP"`
	NoCapitalize bool   `long:"no-capitalize" description:"leave passphrase words in lowercase"`
	NoNumber     bool   `long:"no-number" description:"do not append a number to passphrases"`
	Analyze      bool   `long:"analyze" description:"check each generated password against the breach dictionaries and score it"`
}

func (command *GenerateCommand) Execute(args []string) error {
	settings, err := loadSettings()
	if err != nil {
		return err
	}

	logger := newLogger("generate", settings.Debug)

	spec, err := command.spec()
	if err != nil {
		return err
	}

	gen := generator.New(logger, settings.Wordlist)

	passwords, err := gen.GenerateBatch(command.Count, spec)
	if err != nil {
		return err
	}

	var audit *analyzer.Analyzer
	if command.Analyze {
		audit = analyzer.New(logger, buildIndex(logger, settings), oracle.NewZxcvbn())
	}

	fmt.Println(bold(fmt.Sprintf("Generating %d strong password(s):", len(passwords))))
	fmt.Println()

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	if audit != nil {
		fmt.Fprintln(w, "#\tPassword\tLength\tEntropy\tStrength\tBreached")
	} else {
		fmt.Fprintln(w, "#\tPassword\tLength\tEntropy")
	}

	for i, password := range passwords {
		row := fmt.Sprintf("%d\t%s\t%d\t%.1f bits", i+1, password, utf8.RuneCountInString(password), entropy.Estimate(password))
		if audit != nil {
			result := audit.Analyze(password)
			row += fmt.Sprintf("\t%d/4\t%t", result.Score, result.IsBreached)
		}
		fmt.Fprintln(w, row)
	}

	if err := w.Flush(); err != nil {
		return err
	}

	switch spec.Style {
	case generator.Passphrase:
		fmt.Println()
		fmt.Println(dim("Tip: Passphrases are easier to remember than random characters"))
	case generator.PIN:
		fmt.Println()
		fmt.Println(dim("Warning: PINs have low entropy and should only be used where required"))
	}

	return nil
}

func (command *GenerateCommand) spec() (generator.Spec, error) {
	style, err := generator.ParseStyle(command.Style)
	if err != nil {
		return generator.Spec{}, err
	}

	spec := generator.DefaultSpec(style)
	spec.EntropyBits = command.Entropy
	spec.Separator = command.Separator
	spec.Capitalize = !command.NoCapitalize
	spec.AppendNumber = !command.NoNumber

	if command.Length != 0 {
		spec.Length = command.Length
		return spec, nil
	}

	// without --length the character styles scale with --entropy
	switch style {
	case generator.Mixed:
		spec.Length = max(generator.DefaultMixedLength, command.Entropy/4)
	case generator.Alphanumeric:
		spec.Length = max(generator.DefaultAlphanumericLength, command.Entropy/5)
	case generator.PIN:
		spec.Length = max(generator.DefaultPINLength, command.Entropy/3)
	}

	return spec, nil
}
