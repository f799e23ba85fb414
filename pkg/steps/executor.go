package steps

import (
	"errors"
	"io"
	"os/exec"
)

// Invocation describes one external command to spawn.
type Invocation struct {
	Command string
	Args    []string
	Dir     string
	Env     []string
	Stdin   io.Reader
	Stdout  io.Writer
	Stderr  io.Writer
}

// Executor spawns external commands. Run blocks until the child has
// exited and returns its exit status. A non-nil error means the command
// could not be run at all (not found, permission denied); an abnormal
// exit is reported through the status, not the error.
type Executor interface {
	Run(inv Invocation) (int, error)
}

// ExecExecutor runs commands with os/exec, streams wired through so the
// child's output reaches the operator as it is produced.
type ExecExecutor struct{}

func (ExecExecutor) Run(inv Invocation) (int, error) {
	cmd := exec.Command(inv.Command, inv.Args...)
	cmd.Dir = inv.Dir
	cmd.Env = inv.Env
	cmd.Stdin = inv.Stdin
	cmd.Stdout = inv.Stdout
	cmd.Stderr = inv.Stderr

	err := cmd.Run()
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode(), nil
	}
	if err != nil {
		return -1, err
	}
	return 0, nil
}
