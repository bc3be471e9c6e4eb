package spread

import (
	"strings"

	"github.com/abhinav/dirspread/internal/kitty"
	"github.com/abhinav/dirspread/internal/log"
	"github.com/abhinav/dirspread/internal/session"
)

// _kittyTemplateTab matches the tab that kitty opens with a new OS window.
const _kittyTemplateTab = "index:0"

// _kittyEscaper keeps backslashes in startup commands literal.
var _kittyEscaper = strings.NewReplacer(`\`, `\\`)

// KittyBackend opens sessions in kitty.
//
// The window title, tab working directory, and tab title are all set by the
// launch command that opens the window or tab.
type KittyBackend struct {
	Driver kitty.Driver
	Log    *log.Logger // optional
}

var _ Backend = (*KittyBackend)(nil)

// OpenSession opens the session in a new kitty OS window.
func (b *KittyBackend) OpenSession(s *session.Session) error {
	logger := b.Log
	if logger == nil {
		logger = log.Discard
	}

	err := b.Driver.Launch(kitty.LaunchRequest{
		Type:          kitty.OSWindowLaunch,
		OSWindowTitle: s.WindowName,
	})
	if err != nil {
		return &ExternalProcessError{Action: "open window", Err: err}
	}

	for _, d := range s.Dirs {
		path, ok := s.Path(d)
		if !ok {
			logger.Debugf("skipping %q: not a directory", d.DirName)
			continue
		}

		err := b.Driver.Launch(kitty.LaunchRequest{
			Type:     kitty.TabLaunch,
			CWD:      path,
			TabTitle: d.DisplayName,
		})
		if err != nil {
			return &ExternalProcessError{Action: "open tab", Dir: d.DirName, Err: err}
		}

		if len(d.OnOpen) > 0 {
			// kitty expands escapes in the text. `\r` is a carriage
			// return, submitting the command.
			text := _kittyEscaper.Replace(d.OnOpen) + `\r`
			err := b.Driver.SendText(kitty.SendTextRequest{Text: text})
			if err != nil {
				return &ExternalProcessError{Action: "run command", Dir: d.DirName, Err: err}
			}
		}
	}

	err = b.Driver.CloseTab(kitty.CloseTabRequest{Match: _kittyTemplateTab})
	if err != nil {
		return &ExternalProcessError{Action: "close template tab", Err: err}
	}
	return nil
}
