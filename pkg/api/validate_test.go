package api

import (
	"strings"
	"testing"
)

const pinnedRev = "0123456789abcdef0123456789abcdef01234567"

func runStepConfig(name string) StepConfig {
	return StepConfig{Name: name, Run: &RunConfig{Command: "true"}}
}

func TestValidate_Valid(t *testing.T) {
	p := &Plan{Steps: []StepConfig{
		runStepConfig("install"),
		{Name: "enter tools", Chdir: &ChdirConfig{Dir: "tools"}},
		{Name: "fetch", Git: &GitConfig{URL: "https://example.com/r.git", Revision: pinnedRev}},
		{Name: "find install", Locate: &LocateConfig{Pattern: "Graphviz*", Var: "graphviz_dir"}},
	}}

	if err := p.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidate_Errors(t *testing.T) {
	tests := []struct {
		name    string
		plan    *Plan
		wantErr string
	}{
		{
			name:    "no steps",
			plan:    &Plan{},
			wantErr: "plan has no steps",
		},
		{
			name:    "missing name",
			plan:    &Plan{Steps: []StepConfig{{Run: &RunConfig{Command: "true"}}}},
			wantErr: "name is required",
		},
		{
			name:    "duplicate name",
			plan:    &Plan{Steps: []StepConfig{runStepConfig("a"), runStepConfig("a")}},
			wantErr: "duplicate step name",
		},
		{
			name:    "no config block",
			plan:    &Plan{Steps: []StepConfig{{Name: "empty"}}},
			wantErr: "one of run, chdir, git or locate is required",
		},
		{
			name: "two config blocks",
			plan: &Plan{Steps: []StepConfig{{
				Name:  "both",
				Run:   &RunConfig{Command: "true"},
				Chdir: &ChdirConfig{Dir: "tools"},
			}}},
			wantErr: "only one of",
		},
		{
			name:    "run without command",
			plan:    &Plan{Steps: []StepConfig{{Name: "r", Run: &RunConfig{}}}},
			wantErr: "run.command is required",
		},
		{
			name: "run with explicitly empty okExitCodes",
			plan: &Plan{Steps: []StepConfig{{
				Name: "r",
				Run:  &RunConfig{Command: "true", OKExitCodes: []int{}},
			}}},
			wantErr: "run.okExitCodes must not be empty",
		},
		{
			name:    "chdir without dir",
			plan:    &Plan{Steps: []StepConfig{{Name: "c", Chdir: &ChdirConfig{}}}},
			wantErr: "chdir.dir is required",
		},
		{
			name:    "git without url",
			plan:    &Plan{Steps: []StepConfig{{Name: "g", Git: &GitConfig{Revision: pinnedRev}}}},
			wantErr: "git.url is required",
		},
		{
			name:    "git without revision",
			plan:    &Plan{Steps: []StepConfig{{Name: "g", Git: &GitConfig{URL: "https://example.com/r.git"}}}},
			wantErr: "git.revision is required",
		},
		{
			name:    "git branch name as revision",
			plan:    &Plan{Steps: []StepConfig{{Name: "g", Git: &GitConfig{URL: "https://example.com/r.git", Revision: "main"}}}},
			wantErr: "not a full 40-hex object name",
		},
		{
			name:    "git abbreviated revision",
			plan:    &Plan{Steps: []StepConfig{{Name: "g", Git: &GitConfig{URL: "https://example.com/r.git", Revision: "0123456789abcdef"}}}},
			wantErr: "not a full 40-hex object name",
		},
		{
			name:    "locate without pattern",
			plan:    &Plan{Steps: []StepConfig{{Name: "l", Locate: &LocateConfig{Var: "v"}}}},
			wantErr: "locate.pattern is required",
		},
		{
			name:    "locate without var",
			plan:    &Plan{Steps: []StepConfig{{Name: "l", Locate: &LocateConfig{Pattern: "Graphviz*"}}}},
			wantErr: "locate.var is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.plan.Validate()
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Fatalf("error %q does not contain %q", err, tt.wantErr)
			}
		})
	}
}

func TestValidate_TemplatedRevision(t *testing.T) {
	p := &Plan{Steps: []StepConfig{{
		Name: "fetch",
		Git:  &GitConfig{URL: "https://example.com/r.git", Revision: "{{ .rev }}"},
	}}}

	if err := p.Validate(); err != nil {
		t.Fatalf("templated revision should pass validation, got: %v", err)
	}
}

func TestIsCommitHash(t *testing.T) {
	tests := []struct {
		rev  string
		want bool
	}{
		{pinnedRev, true},
		{"main", false},
		{"v1.2.3", false},
		{strings.ToUpper(pinnedRev), false},
		{pinnedRev + "0", false},
		{"0123456789abcdef0123456789abcdef0123456g", false},
	}

	for _, tt := range tests {
		if got := IsCommitHash(tt.rev); got != tt.want {
			t.Errorf("IsCommitHash(%q) = %v, want %v", tt.rev, got, tt.want)
		}
	}
}
