package session

import (
	"os"
	"path/filepath"
	"slices"
)

// Load builds a Session for the given parent directory.
//
// If parent contains a dsconfig.json, its window name, ignored directories,
// and directory list are used. If the configuration does not list
// directories explicitly, every immediate subdirectory of parent that isn't
// ignored gets a tab.
//
// Load returns a *ConfigError if the configuration file is invalid, and a
// *DirectoryResolutionError if parent could not be listed.
func Load(parent string) (*Session, error) {
	s := Session{Parent: parent}

	cfg, err := readConfig(filepath.Join(parent, ConfigFileName))
	if err != nil {
		return nil, err
	}

	if cfg != nil {
		s.WindowName = cfg.windowName()
		s.IgnoredDirs = cfg.IgnoredDirs
		if cfg.Dirs != nil {
			s.Dirs = cfg.descriptors()
			return &s, nil
		}
	}

	s.Dirs, err = listDirs(parent, s.IgnoredDirs)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// listDirs builds a descriptor for every immediate subdirectory of parent
// whose name isn't in ignored. Symbolic links to directories count as
// subdirectories.
func listDirs(parent string, ignored []string) ([]Descriptor, error) {
	entries, err := os.ReadDir(parent)
	if err != nil {
		return nil, &DirectoryResolutionError{Path: parent, Err: err}
	}

	descs := make([]Descriptor, 0, len(entries))
	for _, ent := range entries {
		name := ent.Name()
		if slices.Contains(ignored, name) || !isDir(parent, ent) {
			continue
		}
		descs = append(descs, Descriptor{DirName: name})
	}
	return descs, nil
}

func isDir(parent string, ent os.DirEntry) bool {
	if ent.IsDir() {
		return true
	}
	if ent.Type()&os.ModeSymlink == 0 {
		return false
	}

	info, err := os.Stat(filepath.Join(parent, ent.Name()))
	return err == nil && info.IsDir()
}

// ResolveParent determines the directory to spread. If dir is empty, the
// current working directory is used.
//
// The returned path is absolute with all symbolic links evaluated. It
// returns a *DirectoryResolutionError if the directory does not exist or is
// not a directory.
func ResolveParent(dir string, getwd func() (string, error)) (string, error) {
	if len(dir) == 0 {
		wd, err := getwd()
		if err != nil {
			return "", &DirectoryResolutionError{Path: ".", Err: err}
		}
		dir = wd
	}

	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", &DirectoryResolutionError{Path: dir, Err: err}
	}

	path, err := filepath.EvalSymlinks(abs)
	if err != nil {
		return "", &DirectoryResolutionError{Path: dir, Err: err}
	}

	info, err := os.Stat(path)
	if err != nil {
		return "", &DirectoryResolutionError{Path: dir, Err: err}
	}
	if !info.IsDir() {
		return "", &DirectoryResolutionError{Path: dir, Err: errNotDirectory}
	}

	return path, nil
}
