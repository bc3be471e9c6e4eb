// Package spread opens a Session in a terminal.
//
// A [Backend] opens one window with a tab per directory of a session. There
// is one Backend per supported terminal, built on the drivers in the kitty
// and macterm packages.
package spread

import (
	"fmt"

	"github.com/abhinav/dirspread/internal/kitty"
	"github.com/abhinav/dirspread/internal/log"
	"github.com/abhinav/dirspread/internal/macterm"
	"github.com/abhinav/dirspread/internal/session"
	"github.com/spf13/pflag"
)

//go:generate mockgen -destination spreadtest/mock_backend.go -package spreadtest github.com/abhinav/dirspread/internal/spread Backend

// Backend opens sessions in a specific terminal.
type Backend interface {
	// OpenSession opens a new window for the session, with one tab per
	// directory that exists on disk.
	//
	// Each step runs a separate external process, and each step acts on
	// the window or tab opened by the step before it. OpenSession stops
	// at the first failure and returns an *ExternalProcessError; windows
	// and tabs opened until then are left open.
	OpenSession(*session.Session) error
}

// Terminal identifies a supported terminal.
type Terminal string

// Supported terminals.
const (
	// Kitty is the kitty terminal emulator, controlled with "kitty @".
	Kitty Terminal = "kitty"

	// MacTerminal is the macOS Terminal application, controlled with
	// AppleScript.
	MacTerminal Terminal = "terminal"
)

// _kittyWindowEnv is set by kitty in shells running inside it.
const _kittyWindowEnv = "KITTY_WINDOW_ID"

// Detect reports which terminal the current process is running in.
// It defaults to MacTerminal if it can't identify another terminal.
func Detect(lookupEnv func(string) (string, bool)) Terminal {
	if _, ok := lookupEnv(_kittyWindowEnv); ok {
		return Kitty
	}
	return MacTerminal
}

var _ pflag.Value = (*Terminal)(nil)

func (t *Terminal) String() string {
	return string(*t)
}

// Set parses the name of a terminal.
func (t *Terminal) Set(name string) error {
	switch v := Terminal(name); v {
	case Kitty, MacTerminal:
		*t = v
		return nil
	default:
		return fmt.Errorf("unknown terminal %q: must be %q or %q", name, Kitty, MacTerminal)
	}
}

// Type returns the name of the value type for flag usage.
func (*Terminal) Type() string {
	return "terminal"
}

// Options configure the Backend built by New.
type Options struct {
	// Log receives the logs of the Backend and its driver.
	// Defaults to log.Discard.
	Log *log.Logger

	// KittyPath is the path to the kitty executable.
	// Defaults to "kitty" on $PATH.
	KittyPath string

	// DryRun logs commands instead of running them.
	DryRun bool
}

// New builds a Backend for the given terminal, driving it with external
// commands.
func New(term Terminal, opts Options) (Backend, error) {
	logger := opts.Log
	if logger == nil {
		logger = log.Discard
	}

	switch term {
	case Kitty:
		driver := kitty.ShellDriver{Path: opts.KittyPath, DryRun: opts.DryRun}
		driver.SetLogger(logger.WithName("kitty"))
		return &KittyBackend{Driver: &driver, Log: logger}, nil

	case MacTerminal:
		driver := macterm.ShellDriver{DryRun: opts.DryRun}
		driver.SetLogger(logger.WithName("osascript"))
		return &MacBackend{Driver: &driver, Log: logger}, nil

	default:
		return nil, fmt.Errorf("unsupported terminal %q", term)
	}
}
