package steps

import (
	"fmt"

	"github.com/systemstart/provisioner/pkg/api"
)

// NewStep creates a Step implementation from a StepConfig.
func NewStep(cfg api.StepConfig) (Step, error) {
	switch cfg.Type() {
	case api.StepTypeRun:
		return NewRunStep(cfg.Name, cfg.Run), nil
	case api.StepTypeChdir:
		return NewChdirStep(cfg.Name, cfg.Chdir), nil
	case api.StepTypeGit:
		return NewGitStep(cfg.Name, cfg.Git), nil
	case api.StepTypeLocate:
		return NewLocateStep(cfg.Name, cfg.Locate), nil
	default:
		return nil, fmt.Errorf("step %q has no config block", cfg.Name)
	}
}
