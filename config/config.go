package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"reflect"

	"github.com/kardianos/osext"
	yaml "gopkg.in/yaml.v2"
)

const (
	DefaultWorkers = 4
	WordlistFile   = "eff_large_wordlist.txt"
)

// DefaultDictionaryFiles are loaded from the data directory unless
// --no-defaults is given.
var DefaultDictionaryFiles = []string{
	"10k-most-common.txt",
	"10-million-password-list-top-1000000.txt",
	"500-worst-passwords.txt",
}

func LoadConfig(bs []byte) (*Config, error) {
	c := &Config{}
	err := yaml.Unmarshal(bs, c)
	if err != nil {
		return nil, err
	}

	return c, nil
}

type Config struct {
	DataDir      string   `long:"data-dir" description:"directory holding the bundled dictionaries and wordlist" value-name:"PATH" yaml:"data_dir"`
	Dictionaries []string `short:"d" long:"dictionary" description:"additional password dictionary, may be an archive (repeatable)" value-name:"PATH" yaml:"dictionaries"`
	NoDefaults   bool     `long:"no-defaults" description:"skip the bundled dictionaries" yaml:"no_defaults"`
	Wordlist     string   `long:"wordlist" description:"diceware wordlist used for passphrases" value-name:"PATH" yaml:"wordlist"`
	Workers      int      `short:"w" long:"workers" description:"number of concurrent analyses in batch mode (default: 4)" value-name:"N" yaml:"workers"`
	Debug        bool     `long:"debug" description:"enables debug logging" yaml:"debug"`
}

func (c *Config) Validate() []error {
	var errs []error

	if c.Workers < 0 {
		errs = append(errs, fmt.Errorf("workers must not be negative, got %d", c.Workers))
	}

	for _, d := range c.Dictionaries {
		if d == "" {
			errs = append(errs, errors.New("empty dictionary path"))
			break
		}
	}

	if c.NoDefaults && len(c.Dictionaries) == 0 {
		errs = append(errs, errors.New("no dictionaries: --no-defaults requires at least one --dictionary"))
	}

	return errs
}

// Merge copies every non-zero value of other over c.
func (c *Config) Merge(other *Config) error {
	src := reflect.ValueOf(other).Elem()
	dst := reflect.ValueOf(c).Elem()

	return merge(dst, src)
}

// ApplyDefaults fills in what neither the file nor the flags set. The data
// directory defaults to "data" next to the executable.
func (c *Config) ApplyDefaults() error {
	if c.DataDir == "" {
		dir, err := DefaultDataDir()
		if err != nil {
			return err
		}
		c.DataDir = dir
	}

	if c.Wordlist == "" {
		c.Wordlist = filepath.Join(c.DataDir, WordlistFile)
	}

	if c.Workers == 0 {
		c.Workers = DefaultWorkers
	}

	return nil
}

// DictionaryPaths lists the bundled dictionaries followed by the extra ones.
func (c *Config) DictionaryPaths() []string {
	var paths []string

	if !c.NoDefaults {
		for _, name := range DefaultDictionaryFiles {
			paths = append(paths, filepath.Join(c.DataDir, name))
		}
	}

	return append(paths, c.Dictionaries...)
}

func DefaultDataDir() (string, error) {
	dir, err := osext.ExecutableFolder()
	if err != nil {
		return "", err
	}

	return filepath.Join(dir, "data"), nil
}

// From src/pkg/encoding/json.
func isEmptyValue(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Array, reflect.Map, reflect.Slice, reflect.String:
		return v.Len() == 0
	case reflect.Bool:
		return !v.Bool()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return v.Int() == 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return v.Uint() == 0
	case reflect.Float32, reflect.Float64:
		return v.Float() == 0
	case reflect.Interface, reflect.Ptr:
		return v.IsNil()
	}
	return false
}

func merge(dst, src reflect.Value) error {
	if !src.IsValid() {
		// zero reflect.Value, nothing to copy
		return nil
	}

	switch src.Kind() {
	case reflect.Struct:
		for i, n := 0, dst.NumField(); i < n; i++ {
			err := merge(dst.Field(i), src.Field(i))
			if err != nil {
				return err
			}
		}
	default:
		if dst.CanSet() && !isEmptyValue(src) {
			dst.Set(src)
		}
	}

	return nil
}
