// Package session resolves which tabs dirspread opens.
//
// A [Session] is built once per invocation by [Load] from a parent
// directory and the optional dsconfig.json file inside it.
package session

import (
	"os"
	"path/filepath"

	"github.com/abhinav/dirspread/internal/stringobj"
)

// Session is one invocation's parent directory, window title, and the
// directories to open as tabs.
type Session struct {
	// Parent is the absolute path to the directory being spread.
	Parent string

	// WindowName is the title of the new terminal window, if any.
	WindowName string

	// Dirs lists the tabs to open, in order.
	Dirs []Descriptor

	// IgnoredDirs lists subdirectory names that were excluded from Dirs.
	// This only has an effect if the configuration did not list Dirs
	// explicitly.
	IgnoredDirs []string
}

func (s *Session) String() string {
	var b stringobj.Builder
	b.Put("parent", s.Parent)
	b.Put("windowName", s.WindowName)
	b.Put("dirs", s.Dirs)
	b.Put("ignoredDirs", s.IgnoredDirs)
	return b.String()
}

// Path returns the canonical absolute path of the given descriptor's
// directory, and whether it exists and is a directory. Descriptors that
// report false should be skipped.
func (s *Session) Path(d Descriptor) (string, bool) {
	path, err := filepath.EvalSymlinks(filepath.Join(s.Parent, d.DirName))
	if err != nil {
		return "", false
	}

	info, err := os.Stat(path)
	if err != nil || !info.IsDir() {
		return "", false
	}

	return path, true
}

// Descriptor describes a single tab.
type Descriptor struct {
	// DirName is the name of the directory relative to the session's
	// parent. An empty DirName refers to the parent itself.
	DirName string

	// DisplayName is the tab title, if any.
	DisplayName string

	// OnOpen is a command to run in the tab after it opens, if any.
	OnOpen string
}

func (d Descriptor) String() string {
	var b stringobj.Builder
	b.Put("dirName", d.DirName)
	b.Put("displayName", d.DisplayName)
	b.Put("onOpen", d.OnOpen)
	return b.String()
}
