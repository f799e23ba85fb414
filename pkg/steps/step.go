package steps

import (
	"io"
	"os"
	"path/filepath"
)

// Context is the mutable state shared by the steps of one plan run. Dir
// is the run's current working directory; chdir steps are the only ones
// that change it, and the change stays in effect for every later step.
type Context struct {
	Dir    string
	Vars   map[string]any
	Env    []string
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
	Exec   Executor
}

// NewContext creates a Context rooted at dir, inheriting the parent
// process's environment and standard streams.
func NewContext(dir string, vars map[string]any) *Context {
	if vars == nil {
		vars = make(map[string]any)
	}
	return &Context{
		Dir:    dir,
		Vars:   vars,
		Env:    os.Environ(),
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
		Exec:   ExecExecutor{},
	}
}

// Step is the interface all plan steps implement.
type Step interface {
	Name() string
	Run(ctx *Context) error
}

// resolveDir resolves p against base unless p is already absolute.
func resolveDir(base, p string) string {
	if filepath.IsAbs(p) {
		return filepath.Clean(p)
	}
	return filepath.Join(base, p)
}
