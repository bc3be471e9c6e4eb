package session

import (
	"errors"
	"fmt"
)

var errNotDirectory = errors.New("not a directory")

// ConfigError indicates that the dsconfig.json file could not be read or
// parsed.
type ConfigError struct {
	// Path to the configuration file.
	Path string

	Err error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("config %v: %v", e.Path, e.Err)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// DirectoryResolutionError indicates that the parent directory does not
// exist, is not a directory, or could not be listed.
type DirectoryResolutionError struct {
	// Path to the directory, as given.
	Path string

	Err error
}

func (e *DirectoryResolutionError) Error() string {
	return fmt.Sprintf("directory %v: %v", e.Path, e.Err)
}

func (e *DirectoryResolutionError) Unwrap() error {
	return e.Err
}
