// Package macterm drives the macOS Terminal application with AppleScript.
//
// It provides a [Driver] interface and a [ShellDriver] implementation that
// runs each operation as a separate osascript(1) process.
//
// Operations act on the front Terminal window and its selected tab, so
// they depend on the order in which they are called. Keystroke-based
// operations go through System Events and need the Accessibility
// permission.
package macterm
