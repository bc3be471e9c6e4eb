// Package cmdrun controls how drivers run external commands.
//
// Drivers hold a [Runner] instead of calling (*exec.Cmd).Run directly so
// that tests and dry runs can intercept commands.
package cmdrun

import (
	"os/exec"

	"github.com/abhinav/dirspread/internal/log"
	"github.com/kballard/go-shellquote"
)

// Runner runs a command to completion.
type Runner func(*exec.Cmd) error

// Exec is a Runner that runs commands for real.
var Exec Runner = (*exec.Cmd).Run

// DryRun builds a Runner that logs commands to the given logger at info
// level instead of running them. Commands are logged as shell command lines
// that can be copied and run by hand.
func DryRun(logger *log.Logger) Runner {
	return func(cmd *exec.Cmd) error {
		logger.Infof("%v", shellquote.Join(cmd.Args...))
		return nil
	}
}
