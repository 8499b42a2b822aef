package commands

import (
	"fmt"
	"io/ioutil"
	"log"
	"os"
	"os/signal"
	"sync"
	"time"

	"code.cloudfoundry.org/lager"
	"github.com/hashicorp/go-multierror"
	"github.com/kardianos/osext"

	"github.com/pivotal-cf/pass-audit/breach"
	"github.com/pivotal-cf/pass-audit/config"
)

// loadSettings reads --config-file, lays the command line flags over it and
// fills in defaults.
func loadSettings() (*config.Config, error) {
	settings := &config.Config{}

	if PassAudit.ConfigFile != "" {
		bs, err := ioutil.ReadFile(PassAudit.ConfigFile)
		if err != nil {
			return nil, err
		}

		settings, err = config.LoadConfig(bs)
		if err != nil {
			return nil, fmt.Errorf("loading %s: %w", PassAudit.ConfigFile, err)
		}
	}

	flagSettings := PassAudit.Settings
	if err := settings.Merge(&flagSettings); err != nil {
		return nil, err
	}

	if err := settings.ApplyDefaults(); err != nil {
		return nil, err
	}

	var result error
	for _, err := range settings.Validate() {
		result = multierror.Append(result, err)
	}
	if result != nil {
		return nil, result
	}

	return settings, nil
}

func newLogger(component string, debug bool) lager.Logger {
	logger := lager.NewLogger(component)

	if debug {
		logger.RegisterSink(lager.NewWriterSink(os.Stderr, lager.DEBUG))
	} else {
		logger.RegisterSink(lager.NewWriterSink(os.Stderr, lager.ERROR))
	}

	return logger
}

func buildIndex(logger lager.Logger, settings *config.Config) *breach.Index {
	fmt.Println(dim("Loading password dictionaries..."))

	index, err := breach.Build(logger, breach.FileSources(settings.DictionaryPaths()...)...)
	if merr, ok := err.(*multierror.Error); ok {
		for _, skipped := range merr.Errors {
			fmt.Fprintln(os.Stderr, yellow("[WARN]"), skipped)
		}
	}

	fmt.Println(dim(fmt.Sprintf("Loaded %d password hashes", index.Size())))
	fmt.Println()

	return index
}

type cleanup struct {
	mu   sync.Mutex
	work []func()
}

func newCleanup() *cleanup {
	clean := &cleanup{}

	signalsCh := make(chan os.Signal, 1)
	signal.Notify(signalsCh, os.Interrupt)

	go func() {
		<-signalsCh
		log.SetFlags(0)
		log.Println("\ncleaning up...")
		clean.exit(1)
	}()

	return clean
}

func (c *cleanup) register(fn func()) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.work = append(c.work, fn)
}

func (c *cleanup) exit(status int) {
	c.mu.Lock()
	for _, w := range c.work {
		w()
	}
	c.mu.Unlock()

	os.Exit(status)
}

func warnIfOldExecutable() {
	const twoWeeks = 14 * 24 * time.Hour

	exePath, err := osext.Executable()
	if err != nil {
		return
	}

	info, err := os.Stat(exePath)
	if err != nil {
		return
	}

	if time.Since(info.ModTime()) > twoWeeks {
		fmt.Fprintln(os.Stderr, yellow("[WARN]"), "Executable is old! Please consider updating pass-audit and its breach dictionaries.")
	}
}
