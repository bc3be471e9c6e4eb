package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/abhinav/dirspread/internal/log"
	"github.com/abhinav/dirspread/internal/paniclog"
	"github.com/abhinav/dirspread/internal/spread"
	"github.com/benbjohnson/clock"
	"github.com/mattn/go-isatty"
	"github.com/spf13/pflag"
	"go.uber.org/multierr"
)

var _version = "dev"

func main() {
	cmd := mainCmd{
		Stdout:    os.Stdout,
		Stderr:    os.Stderr,
		LookupEnv: os.LookupEnv,
		Getwd:     os.Getwd,
	}
	if err := cmd.Run(os.Args[1:]); err != nil && !errors.Is(err, pflag.ErrHelp) {
		fmt.Fprintln(cmd.Stderr, err)
		os.Exit(1)
	}
}

type mainCmd struct {
	Stdout io.Writer
	Stderr io.Writer

	LookupEnv func(string) (string, bool) // == os.LookupEnv
	Getwd     func() (string, error)      // == os.Getwd

	// Optional overrides for tests.
	clock      clock.Clock
	newBackend func(spread.Terminal, spread.Options) (spread.Backend, error)
}

const _name = "dirspread"

const _usage = `usage: %v [options] [DIR]

Opens a new terminal window with a tab for each subdirectory of DIR.
DIR defaults to the current directory.

If DIR contains a dsconfig.json file, it controls the window title and
which directories get tabs:

	{
	  "windowName": "work",
	  "ignoredDirs": ["node_modules"],
	  "dirs": [
	    {"dirName": "api", "dispName": "API", "onOpen": "make run"}
	  ]
	}

If "dirs" is set, only the listed directories get tabs, in that order,
and "ignoredDirs" is not used.

The following flags are available:

	--terminal NAME
		terminal to open tabs in: kitty or terminal (macOS Terminal).
		Uses kitty if running inside kitty, and Terminal otherwise.
	--kitty PATH
		path to the kitty executable.
		Searches $PATH for kitty by default.
	--dry-run
		log the commands that would open tabs instead of running them.
	--log FILE
		file to write logs to.
		Uses stderr by default.
	-v, --verbose
		log more output.
	--version
		display version information.
`

func (cmd *mainCmd) init() {
	if cmd.clock == nil {
		cmd.clock = clock.New()
	}
	if cmd.newBackend == nil {
		cmd.newBackend = spread.New
	}
}

func (cmd *mainCmd) Run(args []string) (err error) {
	cmd.init()

	flag := pflag.NewFlagSet(_name, pflag.ContinueOnError)
	flag.SetOutput(cmd.Stderr)
	flag.Usage = func() {
		fmt.Fprintf(cmd.Stderr, _usage, _name)
	}

	cfg := newConfig(flag)
	if err := flag.Parse(args); err != nil {
		return err
	}

	if cfg.Version {
		fmt.Fprintf(cmd.Stdout, "%v version %v\n", _name, _version)
		return nil
	}

	if err := cfg.SetArgs(flag.Args()); err != nil {
		return err
	}

	logW, closeLog, err := cfg.BuildLogWriter(cmd.Stderr)
	if err != nil {
		return err
	}
	defer multierr.AppendInvoke(&err, multierr.Invoke(closeLog))
	defer paniclog.Recover(&err, logW)

	logger := log.New(logW).WithColor(isTerminal(logW))
	if cfg.Verbose {
		logger = logger.WithLevel(log.Debug)
	}

	return (&app{
		Log:        logger,
		Clock:      cmd.clock,
		LookupEnv:  cmd.LookupEnv,
		Getwd:      cmd.Getwd,
		NewBackend: cmd.newBackend,
	}).Run(cfg)
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(interface{ Fd() uintptr })
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
