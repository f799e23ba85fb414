package steps

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/systemstart/provisioner/pkg/api"
)

type chdirStep struct {
	name string
	cfg  *api.ChdirConfig
}

// NewChdirStep creates a directory-change step.
func NewChdirStep(name string, cfg *api.ChdirConfig) Step {
	return &chdirStep{name: name, cfg: cfg}
}

func (s *chdirStep) Name() string { return s.name }

// Run resolves the target against the current directory and checks it
// at run time, so entering a directory created by an earlier step
// works, and a missing one fails instead of leaving a stale path.
func (s *chdirStep) Run(ctx *Context) error {
	dir, err := renderString(s.name, s.cfg.Dir, ctx.Vars)
	if err != nil {
		return err
	}

	target := resolveDir(ctx.Dir, dir)

	st, err := os.Stat(target)
	if err != nil {
		return fmt.Errorf("changing directory to %s: %w", target, err)
	}
	if !st.IsDir() {
		return fmt.Errorf("changing directory to %s: not a directory", target)
	}

	slog.Debug("changing directory", "step", s.name, "dir", target)
	ctx.Dir = target
	return nil
}
