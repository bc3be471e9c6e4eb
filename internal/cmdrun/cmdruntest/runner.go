// Package cmdruntest provides a fake cmdrun.Runner for tests.
package cmdruntest

import (
	"errors"
	"fmt"
	"io"
	"os/exec"
	"reflect"
	"sync"
	"testing"
)

// Call is an expected command.
type Call struct {
	name string
	args []string

	stdout, stderr string
	err            error
}

// Stdout specifies output the command writes to stdout.
func (c *Call) Stdout(out string) *Call {
	c.stdout = out
	return c
}

// Stderr specifies output the command writes to stderr.
func (c *Call) Stderr(out string) *Call {
	c.stderr = out
	return c
}

// Fail specifies that the command fails with the given error.
func (c *Call) Fail(err error) *Call {
	c.err = err
	return c
}

func (c *Call) String() string {
	return fmt.Sprintf("%v %q", c.name, c.args)
}

func (c *Call) matches(cmd *exec.Cmd) bool {
	return c.name == cmd.Args[0] && reflect.DeepEqual(c.args, cmd.Args[1:])
}

// Runner is a fake command runner. Commands must be run in the same order
// that they were expected. Unmet expectations fail the test at cleanup.
type Runner struct {
	t     testing.TB
	mu    sync.Mutex
	calls []*Call
}

// NewRunner builds a new fake Runner.
func NewRunner(t testing.TB) *Runner {
	t.Helper()

	r := &Runner{t: t}
	t.Cleanup(r.verify)
	return r
}

// Expect adds an expectation for a command with the given name and
// arguments.
func (r *Runner) Expect(name string, args ...string) *Call {
	if args == nil {
		args = []string{}
	}

	call := &Call{name: name, args: args}
	r.mu.Lock()
	r.calls = append(r.calls, call)
	r.mu.Unlock()
	return call
}

// Run matches cmd against the next expected call. It has the same
// signature as cmdrun.Runner.
func (r *Runner) Run(cmd *exec.Cmd) error {
	r.t.Helper()

	r.mu.Lock()
	defer r.mu.Unlock()

	if len(r.calls) == 0 {
		r.t.Errorf("unexpected command: %v %q", cmd.Args[0], cmd.Args[1:])
		return errors.New("unexpected command")
	}

	c := r.calls[0]
	if !c.matches(cmd) {
		r.t.Errorf("unexpected command: %v %q\nwant: %v", cmd.Args[0], cmd.Args[1:], c)
		return errors.New("unexpected command")
	}
	r.calls = r.calls[1:]

	if len(c.stdout) > 0 && cmd.Stdout != nil {
		_, _ = io.WriteString(cmd.Stdout, c.stdout)
	}
	if len(c.stderr) > 0 && cmd.Stderr != nil {
		_, _ = io.WriteString(cmd.Stderr, c.stderr)
	}
	return c.err
}

func (r *Runner) verify() {
	r.t.Helper()

	r.mu.Lock()
	defer r.mu.Unlock()

	for _, c := range r.calls {
		r.t.Errorf("missing command: %v", c)
	}
}
