package processing

import (
	"fmt"
	"log/slog"

	"github.com/systemstart/provisioner/pkg/api"
	"github.com/systemstart/provisioner/pkg/steps"
)

// RunPlan executes a plan with a default context rooted at the plan
// file's directory, inheriting environment and standard streams.
func RunPlan(plan *api.Plan, globalVars map[string]any) error {
	vars, err := planVars(plan, globalVars)
	if err != nil {
		return err
	}
	return Run(plan, steps.NewContext(plan.Dir, vars))
}

// Run executes the plan's steps strictly in order against ctx. The
// first failure aborts the run: no later step is built or invoked, and
// the error carries the failing step's name. Completed steps' side
// effects are left in place.
func Run(plan *api.Plan, ctx *steps.Context) error {
	for _, stepCfg := range plan.Steps {
		slog.Info("running step", "plan", plan.FilePath, "step", stepCfg.Name, "type", stepCfg.Type())
		if err := runStep(stepCfg, ctx); err != nil {
			return err
		}
	}
	return nil
}

func runStep(stepCfg api.StepConfig, ctx *steps.Context) error {
	step, err := steps.NewStep(stepCfg)
	if err != nil {
		return fmt.Errorf("creating step %q: %w", stepCfg.Name, err)
	}

	if err := step.Run(ctx); err != nil {
		return fmt.Errorf("step %q failed: %w", stepCfg.Name, err)
	}
	return nil
}

func planVars(plan *api.Plan, globalVars map[string]any) (map[string]any, error) {
	vars := MergeVars(globalVars, plan.Vars)
	if err := InterpolateVars(vars); err != nil {
		return nil, fmt.Errorf("interpolating vars: %w", err)
	}
	return vars, nil
}
