package kitty

import (
	"log/slog"

	"github.com/abhinav/dirspread/internal/log"
)

//go:generate mockgen -destination kittytest/mock_driver.go -package kittytest github.com/abhinav/dirspread/internal/kitty Driver

// Driver is a low-level API to access kitty. This maps directly to kitty
// remote control commands.
type Driver interface {
	// Launch runs the launch command, opening a new window or tab.
	Launch(LaunchRequest) error

	// SendText runs the send-text command, typing text into a window.
	SendText(SendTextRequest) error

	// CloseTab runs the close-tab command.
	CloseTab(CloseTabRequest) error
}

// LaunchType specifies where a launched program is placed.
type LaunchType string

const (
	// OSWindowLaunch opens a new top-level operating system window.
	OSWindowLaunch LaunchType = "os-window"

	// TabLaunch opens a new tab in the current OS window.
	TabLaunch LaunchType = "tab"
)

// LaunchRequest specifies the parameters for a launch command.
type LaunchRequest struct {
	// Type of container to open. Required.
	Type LaunchType

	// Working directory of the new window, if any.
	CWD string

	// Title of the new OS window. Only valid with OSWindowLaunch.
	OSWindowTitle string

	// Title of the new tab.
	TabTitle string
}

func (r LaunchRequest) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("type", string(r.Type)),
		log.OmitEmpty(slog.String, "cwd", r.CWD),
		log.OmitEmpty(slog.String, "osWindowTitle", r.OSWindowTitle),
		log.OmitEmpty(slog.String, "tabTitle", r.TabTitle),
	)
}

// SendTextRequest specifies the parameters for a send-text command.
type SendTextRequest struct {
	// Windows to send the text to. Defaults to the active window.
	Match string

	// Text to send. kitty interprets Python-style escapes in this, so
	// `\r` presses Enter.
	Text string
}

func (r SendTextRequest) LogValue() slog.Value {
	return slog.GroupValue(
		log.OmitEmpty(slog.String, "match", r.Match),
		slog.String("text", r.Text),
	)
}

// CloseTabRequest specifies the parameters for a close-tab command.
type CloseTabRequest struct {
	// Tabs to close, e.g. "index:0". Defaults to the active tab.
	Match string
}

func (r CloseTabRequest) LogValue() slog.Value {
	return slog.GroupValue(
		log.OmitEmpty(slog.String, "match", r.Match),
	)
}
