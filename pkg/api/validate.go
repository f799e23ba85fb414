package api

import (
	"fmt"
)

// Validate checks the plan configuration for errors.
func (p *Plan) Validate() error {
	if len(p.Steps) == 0 {
		return fmt.Errorf("plan has no steps")
	}

	names := make(map[string]int)

	for i, step := range p.Steps {
		if step.Name == "" {
			return fmt.Errorf("step %d: name is required", i)
		}
		if prev, exists := names[step.Name]; exists {
			return fmt.Errorf("step %d: duplicate step name %q (first defined at step %d)", i, step.Name, prev)
		}
		names[step.Name] = i

		if err := validateStepConfig(step); err != nil {
			return fmt.Errorf("step %q: %w", step.Name, err)
		}
	}

	return nil
}

func validateStepConfig(step StepConfig) error {
	if n := configBlockCount(step); n == 0 {
		return fmt.Errorf("one of run, chdir, git or locate is required")
	} else if n > 1 {
		return fmt.Errorf("only one of run, chdir, git or locate may be set")
	}

	switch step.Type() {
	case StepTypeRun:
		return validateRunConfig(step.Run)
	case StepTypeChdir:
		if step.Chdir.Dir == "" {
			return fmt.Errorf("chdir.dir is required")
		}
	case StepTypeGit:
		return validateGitConfig(step.Git)
	case StepTypeLocate:
		return validateLocateConfig(step.Locate)
	}
	return nil
}

func configBlockCount(step StepConfig) int {
	n := 0
	if step.Run != nil {
		n++
	}
	if step.Chdir != nil {
		n++
	}
	if step.Git != nil {
		n++
	}
	if step.Locate != nil {
		n++
	}
	return n
}

func validateRunConfig(cfg *RunConfig) error {
	if cfg.Command == "" {
		return fmt.Errorf("run.command is required")
	}
	// An explicit empty list would otherwise fall back to {0}, turning
	// "no exit code is acceptable" into default success.
	if cfg.OKExitCodes != nil && len(cfg.OKExitCodes) == 0 {
		return fmt.Errorf("run.okExitCodes must not be empty when set")
	}
	return nil
}

func validateGitConfig(cfg *GitConfig) error {
	if cfg.URL == "" {
		return fmt.Errorf("git.url is required")
	}
	if cfg.Revision == "" {
		return fmt.Errorf("git.revision is required")
	}
	if !isPinnedRevision(cfg.Revision) {
		return fmt.Errorf("git.revision %q is not a full 40-hex object name (branch and tag names are not reproducible)", cfg.Revision)
	}
	return nil
}

func validateLocateConfig(cfg *LocateConfig) error {
	if cfg.Pattern == "" {
		return fmt.Errorf("locate.pattern is required")
	}
	if cfg.Var == "" {
		return fmt.Errorf("locate.var is required")
	}
	return nil
}

// isPinnedRevision reports whether rev is a full lowercase-hex SHA-1
// object name. Revisions containing template actions are accepted; the
// rendered value is checked again when the step runs.
func isPinnedRevision(rev string) bool {
	if containsTemplateAction(rev) {
		return true
	}
	return IsCommitHash(rev)
}

// IsCommitHash reports whether rev is a full 40-character lowercase-hex
// commit hash.
func IsCommitHash(rev string) bool {
	if len(rev) != 40 {
		return false
	}
	for _, c := range rev {
		if (c < '0' || c > '9') && (c < 'a' || c > 'f') {
			return false
		}
	}
	return true
}

func containsTemplateAction(s string) bool {
	for i := 0; i+1 < len(s); i++ {
		if s[i] == '{' && s[i+1] == '{' {
			return true
		}
	}
	return false
}
