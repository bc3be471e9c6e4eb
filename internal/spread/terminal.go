package spread

import (
	"github.com/abhinav/dirspread/internal/log"
	"github.com/abhinav/dirspread/internal/macterm"
	"github.com/abhinav/dirspread/internal/session"
	"github.com/kballard/go-shellquote"
)

// MacBackend opens sessions in the macOS Terminal application.
type MacBackend struct {
	Driver macterm.Driver
	Log    *log.Logger // optional
}

var _ Backend = (*MacBackend)(nil)

// OpenSession opens the session in a new Terminal window.
//
// Every step after the first one acts on the front window, so Terminal must
// remain focused until OpenSession returns.
func (b *MacBackend) OpenSession(s *session.Session) error {
	logger := b.Log
	if logger == nil {
		logger = log.Discard
	}

	if err := b.Driver.NewWindow(); err != nil {
		return &ExternalProcessError{Action: "open window", Err: err}
	}

	if len(s.WindowName) > 0 {
		if err := b.Driver.SetWindowTitle(s.WindowName); err != nil {
			return &ExternalProcessError{Action: "set window title", Err: err}
		}
	}

	for _, d := range s.Dirs {
		path, ok := s.Path(d)
		if !ok {
			logger.Debugf("skipping %q: not a directory", d.DirName)
			continue
		}

		if err := b.openTab(d, path); err != nil {
			return err
		}
	}

	// The new window started with one tab. Ctrl-Tab past the last tab
	// wraps around to it.
	if err := b.Driver.NextTab(); err != nil {
		return &ExternalProcessError{Action: "select template tab", Err: err}
	}
	if err := b.Driver.CloseTab(); err != nil {
		return &ExternalProcessError{Action: "close template tab", Err: err}
	}
	return nil
}

func (b *MacBackend) openTab(d session.Descriptor, path string) error {
	if err := b.Driver.NewTab(); err != nil {
		return &ExternalProcessError{Action: "open tab", Dir: d.DirName, Err: err}
	}

	if err := b.Driver.DoScript("cd " + shellquote.Join(path)); err != nil {
		return &ExternalProcessError{Action: "change directory", Dir: d.DirName, Err: err}
	}

	if len(d.DisplayName) > 0 {
		if err := b.Driver.SetTabTitle(d.DisplayName); err != nil {
			return &ExternalProcessError{Action: "set tab title", Dir: d.DirName, Err: err}
		}
	}

	if len(d.OnOpen) > 0 {
		if err := b.Driver.DoScript(d.OnOpen); err != nil {
			return &ExternalProcessError{Action: "run command", Dir: d.DirName, Err: err}
		}
	}

	return nil
}
