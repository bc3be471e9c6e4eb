package macterm

import (
	"os/exec"
	"sync"

	"github.com/abhinav/dirspread/internal/cmdrun"
	"github.com/abhinav/dirspread/internal/log"
)

const _defaultOsascript = "osascript"

// ShellDriver is a Driver implementation that shells out to osascript.
type ShellDriver struct {
	// Path to the osascript executable. Defaults to "osascript".
	Path string

	// DryRun logs commands instead of running them.
	DryRun bool

	log  *log.Logger
	run  cmdrun.Runner
	once sync.Once
}

var _ Driver = (*ShellDriver)(nil)

func (s *ShellDriver) init() {
	s.once.Do(func() {
		if s.log == nil {
			s.log = log.Discard
		}

		if s.Path == "" {
			s.Path = _defaultOsascript
		}

		if s.run == nil {
			if s.DryRun {
				s.run = cmdrun.DryRun(s.log)
			} else {
				s.run = cmdrun.Exec
			}
		}
	})
}

// SetLogger specifies the logger for the ShellDriver. By default, the
// ShellDriver does not log anything.
func (s *ShellDriver) SetLogger(log *log.Logger) {
	s.log = log
}

// osascript runs the given AppleScript statements in a single osascript
// process.
func (s *ShellDriver) osascript(lines ...string) error {
	s.init()

	args := make([]string, 0, 2*len(lines))
	for _, l := range lines {
		args = append(args, "-e", l)
	}
	cmd := exec.Command(s.Path, args...)

	// osascript prints the result of the last statement to stdout. For
	// "do script", that's a reference to the tab.
	stdout := &log.Writer{Log: s.log, Level: log.Debug}
	stderr := &log.Writer{Log: s.log, Level: log.Error}
	cmd.Stdout, cmd.Stderr = stdout, stderr
	defer func() {
		_ = stdout.Close()
		_ = stderr.Close()
	}()

	return s.run(cmd)
}

// NewWindow activates Terminal and presses Command-N.
func (s *ShellDriver) NewWindow() error {
	s.init()
	s.log.Debugf("new window")
	return s.osascript(_activateScript, _newWindowKeys)
}

// SetWindowTitle sets the custom title of the front window.
func (s *ShellDriver) SetWindowTitle(title string) error {
	s.init()
	s.log.Debug("set window title", "title", title)
	return s.osascript(setWindowTitleScript(title))
}

// NewTab presses Command-T.
func (s *ShellDriver) NewTab() error {
	s.init()
	s.log.Debugf("new tab")
	return s.osascript(_newTabKeys)
}

// DoScript runs a command in the selected tab of the front window.
func (s *ShellDriver) DoScript(command string) error {
	s.init()
	s.log.Debug("do script", "command", command)
	return s.osascript(doScriptScript(command))
}

// SetTabTitle sets the custom title of the selected tab.
func (s *ShellDriver) SetTabTitle(title string) error {
	s.init()
	s.log.Debug("set tab title", "title", title)
	return s.osascript(setTabTitleScript(title))
}

// NextTab presses Control-Tab.
func (s *ShellDriver) NextTab() error {
	s.init()
	s.log.Debugf("next tab")
	return s.osascript(_nextTabKeys)
}

// CloseTab presses Command-W.
func (s *ShellDriver) CloseTab() error {
	s.init()
	s.log.Debugf("close tab")
	return s.osascript(_closeTabKeys)
}
