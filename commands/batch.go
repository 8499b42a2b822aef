package commands

import (
	"context"
	"fmt"
	"io"
	"os"
	"sync/atomic"

	"code.cloudfoundry.org/lager"

	"github.com/pivotal-cf/pass-audit/analyzer"
	"github.com/pivotal-cf/pass-audit/oracle"
	"github.com/pivotal-cf/pass-audit/report"
	"github.com/pivotal-cf/pass-audit/scanners"
	"github.com/pivotal-cf/pass-audit/scanners/linescanner"
	"github.com/pivotal-cf/pass-audit/scanners/matchers"
)

type BatchCommand struct {
	Output        string `short:"o" long:"output" default:"batch_report.csv" description:"report file, .csv or .json" value-name:"PATH"`
	ShowPasswords bool   `long:"show-passwords" description:"write the plaintext passwords into the report"`

	Args struct {
		Input string `positional-arg-name:"INPUT" description:"file with one password per line, or - for STDIN" required:"true"`
	} `positional-args:"yes"`
}

func (command *BatchCommand) Execute(args []string) error {
	settings, err := loadSettings()
	if err != nil {
		return err
	}

	logger := newLogger("batch", settings.Debug)
	clean := newCleanup()

	passwords, err := command.readPasswords(logger)
	if err != nil {
		return err
	}

	index := buildIndex(logger, settings)
	audit := analyzer.New(logger, index, oracle.NewZxcvbn())

	fmt.Println(dim(fmt.Sprintf("Analyzing %d passwords with %d workers...", len(passwords), settings.Workers)))

	results, err := audit.AnalyzeBatch(context.Background(), passwords, settings.Workers)
	if err != nil {
		return err
	}

	entries := make([]report.Entry, len(results))
	for i, result := range results {
		entries[i] = report.Entry{Result: result}
		if command.ShowPasswords {
			entries[i].Password = passwords[i]
		}
	}

	var exported atomic.Bool
	clean.register(func() {
		if !exported.Load() {
			os.Remove(command.Output)
		}
	})

	writer := report.NewWriter(logger)
	if err := writer.ExportBatch(command.Output, entries); err != nil {
		return err
	}
	exported.Store(true)
	logger.Info("exported", lager.Data{"path": command.Output, "reports": writer.Reports()})

	showBatchSummary(report.Summarize(results), index.Checks(), command.Output)

	return nil
}

func (command *BatchCommand) readPasswords(logger lager.Logger) ([]string, error) {
	var (
		r    io.Reader = os.Stdin
		name           = "STDIN"
	)

	if command.Args.Input != "-" {
		f, err := os.Open(command.Args.Input)
		if err != nil {
			return nil, err
		}
		defer f.Close()

		r, name = f, command.Args.Input
	}

	var passwords []string
	_, err := scanners.Each(logger, linescanner.New(r, name), matchers.Blank(), func(line string) {
		passwords = append(passwords, line)
	})
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", name, err)
	}

	return passwords, nil
}

func showBatchSummary(summary report.Summary, lookups int64, output string) {
	fmt.Println()
	fmt.Println(bold("Batch Analysis Complete"))
	fmt.Println()
	fmt.Println("Total passwords analyzed:", summary.TotalAnalyzed)

	if summary.TotalAnalyzed > 0 {
		total := float64(summary.TotalAnalyzed)
		fmt.Printf("Average strength score: %.1f/4\n", summary.AverageScore)
		fmt.Printf("Weak passwords (score < 2): %d (%.1f%%)\n", summary.WeakPasswords, float64(summary.WeakPasswords)/total*100)
		fmt.Printf("Common passwords: %d (%.1f%%)\n", summary.CommonPasswords, summary.CommonPercentage)
	}

	fmt.Println("Dictionary lookups:", lookups)

	fmt.Println()
	fmt.Println("Report saved to:", output)
}
