package steps

import (
	"fmt"
	"log/slog"
	"net/url"
	"path"
	"strings"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/systemstart/provisioner/pkg/api"
)

type gitStep struct {
	name string
	cfg  *api.GitConfig
}

// NewGitStep creates a pinned-revision clone step.
func NewGitStep(name string, cfg *api.GitConfig) Step {
	return &gitStep{name: name, cfg: cfg}
}

func (s *gitStep) Name() string { return s.name }

// Run clones the repository and checks out the pinned commit, detached.
// The revision must name a commit that exists in the clone; a partial
// clone left behind by an earlier failed run makes the clone itself
// fail, which is the intended non-idempotent behavior.
func (s *gitStep) Run(ctx *Context) error {
	repoURL, err := renderString(s.name, s.cfg.URL, ctx.Vars)
	if err != nil {
		return err
	}

	rev, err := renderString(s.name, s.cfg.Revision, ctx.Vars)
	if err != nil {
		return err
	}
	if !api.IsCommitHash(rev) {
		return fmt.Errorf("revision %q is not a full 40-hex object name", rev)
	}

	dir := s.cfg.Dir
	if dir == "" {
		if dir = repoName(repoURL); dir == "" {
			return fmt.Errorf("cannot derive a clone directory from %q, set git.dir", repoURL)
		}
	} else if dir, err = renderString(s.name, dir, ctx.Vars); err != nil {
		return err
	}
	dest := resolveDir(ctx.Dir, dir)

	slog.Info("cloning repository", "step", s.name, "url", repoURL, "revision", rev, "dir", dest)

	repo, err := gogit.PlainClone(dest, false, &gogit.CloneOptions{
		URL:      repoURL,
		Progress: ctx.Stderr,
	})
	if err != nil {
		return fmt.Errorf("cloning %s into %s: %w", repoURL, dest, err)
	}

	hash := plumbing.NewHash(rev)
	if _, err := repo.CommitObject(hash); err != nil {
		return fmt.Errorf("revision %s not found in %s: %w", rev, repoURL, err)
	}

	worktree, err := repo.Worktree()
	if err != nil {
		return fmt.Errorf("opening worktree of %s: %w", dest, err)
	}

	if err := worktree.Checkout(&gogit.CheckoutOptions{Hash: hash}); err != nil {
		return fmt.Errorf("checking out %s: %w", rev, err)
	}

	return nil
}

// repoName derives a clone directory name from the repository URL, or
// "" when the URL has no usable last path segment.
func repoName(repoURL string) string {
	trimmed := strings.TrimSuffix(strings.TrimSuffix(repoURL, "/"), ".git")
	name := path.Base(trimmed)
	if u, err := url.Parse(trimmed); err == nil && u.Path != "" {
		name = path.Base(u.Path)
	}
	switch name {
	case "/", ".", "..", "":
		return ""
	}
	return name
}
