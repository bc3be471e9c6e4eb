package main

import (
	"fmt"
	"io"
	"os"

	"github.com/abhinav/dirspread/internal/spread"
	"github.com/spf13/pflag"
)

type config struct {
	Terminal  spread.Terminal // detected from the environment if empty
	KittyPath string
	DryRun    bool
	LogFile   string
	Verbose   bool
	Version   bool

	// Dir is the directory to spread.
	// Defaults to the working directory.
	Dir string
}

func newConfig(flag *pflag.FlagSet) *config {
	var c config
	// No help here because we put it all in _usage.
	flag.Var(&c.Terminal, "terminal", "")
	flag.StringVar(&c.KittyPath, "kitty", "", "")
	flag.BoolVar(&c.DryRun, "dry-run", false, "")
	flag.StringVar(&c.LogFile, "log", "", "")
	flag.BoolVarP(&c.Verbose, "verbose", "v", false, "")
	flag.BoolVar(&c.Version, "version", false, "")
	return &c
}

// SetArgs fills the positional arguments of the configuration.
func (c *config) SetArgs(args []string) error {
	switch len(args) {
	case 0:
		return nil
	case 1:
		c.Dir = args[0]
		return nil
	default:
		return fmt.Errorf("unexpected arguments %q", args[1:])
	}
}

// BuildLogWriter builds the destination for log messages.
// This is stderr unless a log file was requested.
//
// The returned function must be called to close the log file.
func (c *config) BuildLogWriter(stderr io.Writer) (w io.Writer, closeFn func() error, err error) {
	if len(c.LogFile) == 0 {
		return stderr, func() error { return nil }, nil
	}

	f, err := os.OpenFile(c.LogFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log %q: %w", c.LogFile, err)
	}
	return f, f.Close, nil
}
