package steps

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/systemstart/provisioner/pkg/api"
)

type locateStep struct {
	name string
	cfg  *api.LocateConfig
}

// NewLocateStep creates a wildcard path-resolution step.
func NewLocateStep(name string, cfg *api.LocateConfig) Step {
	return &locateStep{name: name, cfg: cfg}
}

func (s *locateStep) Name() string { return s.name }

// Run matches the pattern under the root directory and publishes the
// absolute path of the single match as a var. Zero matches and multiple
// matches are both errors: a versioned install directory must resolve
// unambiguously, never to an arbitrary pick.
func (s *locateStep) Run(ctx *Context) error {
	pattern, err := renderString(s.name, s.cfg.Pattern, ctx.Vars)
	if err != nil {
		return err
	}

	root := ctx.Dir
	if s.cfg.Root != "" {
		rendered, err := renderString(s.name, s.cfg.Root, ctx.Vars)
		if err != nil {
			return err
		}
		root = resolveDir(ctx.Dir, rendered)
	}

	matches, err := doublestar.Glob(os.DirFS(root), pattern)
	if err != nil {
		return fmt.Errorf("glob %q: %w", pattern, err)
	}

	switch len(matches) {
	case 1:
	case 0:
		return fmt.Errorf("pattern %q matched nothing under %s", pattern, root)
	default:
		return fmt.Errorf("pattern %q is ambiguous under %s: %d matches %v", pattern, root, len(matches), matches)
	}

	resolved := filepath.Join(root, filepath.FromSlash(matches[0]))
	slog.Info("located path", "step", s.name, "pattern", pattern, "path", resolved, "var", s.cfg.Var)
	ctx.Vars[s.cfg.Var] = resolved
	return nil
}
