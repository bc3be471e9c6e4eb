// Package kitty provides APIs to control the kitty terminal emulator through
// its remote control protocol.
//
// It provides a [Driver] interface and a [ShellDriver] implementation that
// runs "kitty @" commands. Remote control must be enabled in kitty with the
// allow_remote_control option.
package kitty
