package macterm

//go:generate mockgen -destination mactermtest/mock_driver.go -package mactermtest github.com/abhinav/dirspread/internal/macterm Driver

// Driver is a low-level API to control Terminal. Each method maps to one
// osascript invocation.
type Driver interface {
	// NewWindow activates Terminal and opens a new window with one tab.
	NewWindow() error

	// SetWindowTitle sets the custom title of the front window.
	SetWindowTitle(title string) error

	// NewTab opens a new tab in the front window and selects it.
	NewTab() error

	// DoScript runs a shell command in the selected tab of the front
	// window.
	DoScript(command string) error

	// SetTabTitle sets the custom title of the selected tab of the front
	// window.
	SetTabTitle(title string) error

	// NextTab selects the next tab in the front window, wrapping around
	// to the first tab after the last one.
	NextTab() error

	// CloseTab closes the selected tab of the front window.
	CloseTab() error
}
