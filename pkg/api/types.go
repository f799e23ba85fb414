package api

const (
	StepTypeRun    = "run"
	StepTypeChdir  = "chdir"
	StepTypeGit    = "git"
	StepTypeLocate = "locate"
)

// Plan is the provision.yaml configuration format.
type Plan struct {
	Vars  map[string]any `yaml:"vars"`
	Steps []StepConfig   `yaml:"steps"`

	// Set by the loader, not from YAML.
	Dir      string `yaml:"-"`
	FilePath string `yaml:"-"`
}

// StepConfig defines a single step within a plan. Exactly one config
// block must be set; it determines the step's type.
type StepConfig struct {
	Name   string        `yaml:"name"`
	Run    *RunConfig    `yaml:"run,omitempty"`
	Chdir  *ChdirConfig  `yaml:"chdir,omitempty"`
	Git    *GitConfig    `yaml:"git,omitempty"`
	Locate *LocateConfig `yaml:"locate,omitempty"`
}

// Type returns the step's type name derived from which config block is
// set, or "" when none is.
func (s StepConfig) Type() string {
	switch {
	case s.Run != nil:
		return StepTypeRun
	case s.Chdir != nil:
		return StepTypeChdir
	case s.Git != nil:
		return StepTypeGit
	case s.Locate != nil:
		return StepTypeLocate
	default:
		return ""
	}
}

// RunConfig configures an external command step.
type RunConfig struct {
	Command string   `yaml:"command"`
	Args    []string `yaml:"args"`

	// Dir overrides the working directory for this command only,
	// resolved relative to the run's current directory.
	Dir string `yaml:"dir"`

	// OKExitCodes lists the exit statuses that count as success.
	// Empty means {0}.
	OKExitCodes []int `yaml:"okExitCodes"`
}

// ChdirConfig configures a directory-change step.
type ChdirConfig struct {
	Dir string `yaml:"dir"`
}

// GitConfig configures a pinned-revision clone step.
type GitConfig struct {
	URL string `yaml:"url"`

	// Revision is the full 40-hex object name to check out. Branch and
	// tag names are rejected at validation time: a moving ref cannot
	// reproduce the same tree across runs.
	Revision string `yaml:"revision"`

	// Dir is the clone destination relative to the current directory.
	// Empty means the repository name derived from the URL.
	Dir string `yaml:"dir"`
}

// LocateConfig configures a wildcard path-resolution step.
type LocateConfig struct {
	Pattern string `yaml:"pattern"`

	// Root is the directory the pattern is matched under. Empty means
	// the run's current directory.
	Root string `yaml:"root"`

	// Var is the vars key receiving the absolute path of the single
	// match.
	Var string `yaml:"var"`
}
