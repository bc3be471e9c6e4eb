package macterm

import "strings"

const (
	_tellTerminal     = `tell application "Terminal"`
	_tellSystemEvents = `tell application "System Events" to tell process "Terminal"`
)

var (
	_activateScript = _tellTerminal + ` to activate`
	_newWindowKeys  = _tellSystemEvents + ` to keystroke "n" using command down`
	_newTabKeys     = _tellSystemEvents + ` to keystroke "t" using command down`
	_nextTabKeys    = _tellSystemEvents + ` to keystroke (ASCII character 9) using control down`
	_closeTabKeys   = _tellSystemEvents + ` to keystroke "w" using command down`
)

func setWindowTitleScript(title string) string {
	return _tellTerminal + ` to set custom title of front window to ` + appleString(title)
}

func setTabTitleScript(title string) string {
	return _tellTerminal + ` to set custom title of selected tab of front window to ` + appleString(title)
}

func doScriptScript(command string) string {
	return _tellTerminal + ` to do script ` + appleString(command) + ` in selected tab of front window`
}

var _appleEscaper = strings.NewReplacer(`\`, `\\`, `"`, `\"`)

// appleString renders s as an AppleScript string literal.
func appleString(s string) string {
	return `"` + _appleEscaper.Replace(s) + `"`
}
