package steps

import (
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"github.com/systemstart/provisioner/pkg/api"
)

type runStep struct {
	name string
	cfg  *api.RunConfig
}

// NewRunStep creates an external command step.
func NewRunStep(name string, cfg *api.RunConfig) Step {
	return &runStep{name: name, cfg: cfg}
}

func (s *runStep) Name() string { return s.name }

func (s *runStep) Run(ctx *Context) error {
	command, err := renderString(s.name, s.cfg.Command, ctx.Vars)
	if err != nil {
		return err
	}

	args, err := renderStrings(s.name, s.cfg.Args, ctx.Vars)
	if err != nil {
		return err
	}

	dir := ctx.Dir
	if s.cfg.Dir != "" {
		override, err := renderString(s.name, s.cfg.Dir, ctx.Vars)
		if err != nil {
			return err
		}
		dir = resolveDir(ctx.Dir, override)
	}

	slog.Info("running command", "step", s.name, "command", command, "args", args, "dir", dir)

	status, err := ctx.Exec.Run(Invocation{
		Command: command,
		Args:    args,
		Dir:     dir,
		Env:     ctx.Env,
		Stdin:   ctx.Stdin,
		Stdout:  ctx.Stdout,
		Stderr:  ctx.Stderr,
	})
	if err != nil {
		return fmt.Errorf("%s: %w", commandLine(command, args), err)
	}

	if !slices.Contains(s.okExitCodes(), status) {
		return fmt.Errorf("%s: exit status %d", commandLine(command, args), status)
	}

	return nil
}

func (s *runStep) okExitCodes() []int {
	if len(s.cfg.OKExitCodes) == 0 {
		return []int{0}
	}
	return s.cfg.OKExitCodes
}

func commandLine(command string, args []string) string {
	if len(args) == 0 {
		return command
	}
	return command + " " + strings.Join(args, " ")
}
