package spread

import "fmt"

// ExternalProcessError indicates that a command controlling the terminal
// failed to start or exited with an error.
type ExternalProcessError struct {
	// Action that failed, e.g. "open tab".
	Action string

	// Directory the action was for, if any.
	Dir string

	Err error
}

func (e *ExternalProcessError) Error() string {
	if len(e.Dir) > 0 {
		return fmt.Sprintf("%v for %q: %v", e.Action, e.Dir, e.Err)
	}
	return fmt.Sprintf("%v: %v", e.Action, e.Err)
}

func (e *ExternalProcessError) Unwrap() error {
	return e.Err
}
