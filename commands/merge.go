package commands

import (
	"fmt"
	"io/ioutil"
	"os"
	"path/filepath"

	"code.cloudfoundry.org/lager"
	"github.com/hashicorp/go-multierror"

	"github.com/pivotal-cf/pass-audit/breach"
)

type MergeCommand struct {
	Output string `short:"o" long:"output" description:"merged dictionary to write" value-name:"PATH" required:"true"`

	Args struct {
		Dictionaries []string `positional-arg-name:"DICTIONARY" description:"dictionary files or archives to merge" required:"1"`
	} `positional-args:"yes"`
}

func (command *MergeCommand) Execute(args []string) error {
	settings, err := loadSettings()
	if err != nil {
		return err
	}

	logger := newLogger("merge", settings.Debug)

	count, err := command.merge(logger)
	if merr, ok := err.(*multierror.Error); ok {
		for _, skipped := range merr.Errors {
			fmt.Fprintln(os.Stderr, yellow("[WARN]"), skipped)
		}
	} else if err != nil {
		return err
	}

	fmt.Printf("Merged %d unique passwords into %s\n", count, command.Output)

	return nil
}

// merge reads every dictionary before the output is replaced, so the output
// may also be one of the inputs.
func (command *MergeCommand) merge(logger lager.Logger) (int, error) {
	f, err := ioutil.TempFile(filepath.Dir(command.Output), ".pass-audit-merge-")
	if err != nil {
		return 0, err
	}
	defer os.Remove(f.Name())

	count, mergeErr := breach.Merge(logger, f, breach.FileSources(command.Args.Dictionaries...)...)
	if _, ok := mergeErr.(*multierror.Error); mergeErr != nil && !ok {
		f.Close()
		return 0, mergeErr
	}

	if err := f.Chmod(0644); err != nil {
		f.Close()
		return 0, err
	}

	if err := f.Close(); err != nil {
		return 0, err
	}

	if err := os.Rename(f.Name(), command.Output); err != nil {
		return 0, err
	}

	return count, mergeErr
}
