package commands

import (
	"fmt"
	"os"

	"github.com/pivotal-cf/pass-audit/generator"
)

type InfoCommand struct{}

func (command *InfoCommand) Execute(args []string) error {
	settings, err := loadSettings()
	if err != nil {
		return err
	}

	logger := newLogger("info", settings.Debug)
	wordlist := generator.New(logger, settings.Wordlist).Info()

	fmt.Println(cyan("pass-audit"), version)
	fmt.Println()
	fmt.Println("Checks passwords against known breach dictionaries, rates their strength")
	fmt.Println("and generates strong replacements.")
	fmt.Println()
	fmt.Println(bold("Security:"))
	fmt.Println("  - Passwords are never logged or stored")
	fmt.Println("  - Dictionary lookups use SHA-256 digests")
	fmt.Println("  - Interactive mode hides password input")
	fmt.Println("  - Generation uses a cryptographically secure random source")
	fmt.Println()
	fmt.Println(bold("Data directory:"), settings.DataDir)
	fmt.Println()
	fmt.Println(bold("Dictionaries:"))
	for _, path := range settings.DictionaryPaths() {
		status := green("found")
		if _, err := os.Stat(path); err != nil {
			status = yellow("missing")
		}
		fmt.Printf("  - %s (%s)\n", path, status)
	}
	fmt.Println()
	fmt.Println(bold("Wordlist:"))
	fmt.Println("  Source:", wordlist.Source)
	fmt.Println("  Words:", wordlist.Size)
	fmt.Printf("  Bits per word: %.3f\n", wordlist.BitsPerWord)
	if wordlist.Source == generator.FallbackSource {
		fmt.Println(" ", yellow("Using the built in fallback list. For full security, install the EFF large wordlist at"), settings.Wordlist)
	}

	return nil
}
