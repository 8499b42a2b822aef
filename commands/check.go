package commands

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"code.cloudfoundry.org/lager"
	"golang.org/x/term"

	"github.com/pivotal-cf/pass-audit/analyzer"
	"github.com/pivotal-cf/pass-audit/generator"
	"github.com/pivotal-cf/pass-audit/oracle"
	"github.com/pivotal-cf/pass-audit/report"
)

type CheckCommand struct {
	Password string `short:"p" long:"password" description:"password to check, prompts with hidden input when omitted" value-name:"PASSWORD"`
	Show     bool   `short:"s" long:"show" description:"display the password and the patterns found in it"`
	Export   string `short:"e" long:"export" description:"export the report to a .json or .csv file" value-name:"PATH"`
}

func (command *CheckCommand) Execute(args []string) error {
	warnIfOldExecutable()

	settings, err := loadSettings()
	if err != nil {
		return err
	}

	logger := newLogger("check", settings.Debug)
	clean := newCleanup()

	index := buildIndex(logger, settings)

	password := command.Password
	if password == "" {
		password, err = promptPassword(clean)
		if err != nil {
			return err
		}
	}

	if password == "" {
		fmt.Fprintln(os.Stderr, red("[ERROR]"), "Password cannot be empty")
		clean.exit(1)
	}

	audit := analyzer.New(logger, index, oracle.NewZxcvbn())
	result := audit.Analyze(password)

	showStrengthReport(result, password, command.Show)

	gen := generator.New(logger, settings.Wordlist)
	suggested, err := gen.Passphrase(generator.DefaultEntropyBits, generator.DefaultSeparator, true, true)
	if err != nil {
		return err
	}
	suggestedResult := audit.Analyze(suggested)

	fmt.Println()
	fmt.Println(bold("Suggested Strong Password:"))
	fmt.Println(" ", suggested)
	fmt.Println("  Strength:", scoreColor(suggestedResult.Score)(fmt.Sprintf("%d/4", suggestedResult.Score)))

	if command.Export != "" {
		entry := report.Entry{
			Result:            result,
			SuggestedPassword: suggested,
		}
		if command.Show {
			entry.Password = password
		}

		writer := report.NewWriter(logger)
		if err := writer.Export(command.Export, entry); err != nil {
			return err
		}
		logger.Info("exported", lager.Data{"path": command.Export, "reports": writer.Reports()})

		fmt.Println()
		fmt.Println(green("Report exported to"), command.Export)
	}

	if result.IsBreached {
		showBreachWarning()
		clean.exit(3)
	}

	return nil
}

// promptPassword reads the password without echo when stdin is a terminal,
// and reads a single line otherwise.
func promptPassword(clean *cleanup) (string, error) {
	fd := int(os.Stdin.Fd())

	if !term.IsTerminal(fd) {
		line, err := bufio.NewReader(os.Stdin).ReadString('\n')
		if err != nil && err != io.EOF {
			return "", err
		}
		return strings.TrimRight(line, "\r\n"), nil
	}

	if state, err := term.GetState(fd); err == nil {
		clean.register(func() {
			term.Restore(fd, state)
		})
	}

	fmt.Fprint(os.Stderr, "Enter password to check (hidden): ")
	password, err := term.ReadPassword(fd)
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return "", err
	}

	return string(password), nil
}

func showBreachWarning() {
	fmt.Println()
	fmt.Println("Yikes! This password is in a breach dictionary.")
	fmt.Println()
	fmt.Println("Attackers try breached passwords first, whatever their strength")
	fmt.Println("score. Stop using it everywhere it is used and pick a fresh one,")
	fmt.Println("like the passphrase suggested above.")
}
