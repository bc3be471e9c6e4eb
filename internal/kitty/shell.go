package kitty

import (
	"errors"
	"os/exec"
	"sync"

	"github.com/abhinav/dirspread/internal/cmdrun"
	"github.com/abhinav/dirspread/internal/log"
)

const _defaultKitty = "kitty"

// ShellDriver is a Driver implementation that shells out to kitty to run
// commands.
type ShellDriver struct {
	// Path to the kitty executable. Defaults to "kitty".
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
			s.Path = _defaultKitty
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

// cmd builds a "kitty @" command with the given arguments.
func (s *ShellDriver) cmd(args ...string) *exec.Cmd {
	return exec.Command(s.Path, append([]string{"@"}, args...)...)
}

// logWriters sets cmd's stdout to log at debug level and its stderr to log
// at error level, and returns a function to flush them.
func (s *ShellDriver) logWriters(cmd *exec.Cmd) (close func()) {
	stdout := &log.Writer{Log: s.log, Level: log.Debug}
	stderr := &log.Writer{Log: s.log, Level: log.Error}
	cmd.Stdout, cmd.Stderr = stdout, stderr
	return func() {
		_ = stdout.Close()
		_ = stderr.Close()
	}
}

func (s *ShellDriver) exec(cmd *exec.Cmd) error {
	defer s.logWriters(cmd)()
	return s.run(cmd)
}

// Launch runs the kitty @ launch command.
func (s *ShellDriver) Launch(req LaunchRequest) error {
	s.init()

	if req.Type == "" {
		return errors.New("launch type is required")
	}

	args := []string{"launch", "--type", string(req.Type)}
	if cwd := req.CWD; len(cwd) > 0 {
		args = append(args, "--cwd", cwd)
	}
	if title := req.OSWindowTitle; len(title) > 0 {
		args = append(args, "--os-window-title", title)
	}
	if title := req.TabTitle; len(title) > 0 {
		args = append(args, "--tab-title", title)
	}

	s.log.Debug("launch", "request", req)
	return s.exec(s.cmd(args...))
}

// SendText runs the kitty @ send-text command.
func (s *ShellDriver) SendText(req SendTextRequest) error {
	s.init()

	args := []string{"send-text"}
	if m := req.Match; len(m) > 0 {
		args = append(args, "--match", m)
	}
	// Text may start with "-".
	args = append(args, "--", req.Text)

	s.log.Debug("send text", "request", req)
	return s.exec(s.cmd(args...))
}

// CloseTab runs the kitty @ close-tab command.
func (s *ShellDriver) CloseTab(req CloseTabRequest) error {
	s.init()

	args := []string{"close-tab"}
	if m := req.Match; len(m) > 0 {
		args = append(args, "--match", m)
	}

	s.log.Debug("close tab", "request", req)
	return s.exec(s.cmd(args...))
}
