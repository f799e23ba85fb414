package steps

import (
	"os"
	"path/filepath"
	"testing"
)

// fakeExecutor records invocations instead of spawning processes.
// Exit statuses and run errors can be scripted per command name.
type fakeExecutor struct {
	invocations []Invocation
	statuses    map[string]int
	errs        map[string]error
}

func (f *fakeExecutor) Run(inv Invocation) (int, error) {
	f.invocations = append(f.invocations, inv)
	if err, ok := f.errs[inv.Command]; ok {
		return -1, err
	}
	return f.statuses[inv.Command], nil
}

func testContext(dir string, exec Executor) *Context {
	ctx := NewContext(dir, nil)
	ctx.Exec = exec
	return ctx
}

// writeTestFile writes content to a file in dir, failing the test on error.
func writeTestFile(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
}

// makeTestDirs creates each directory path below root.
func makeTestDirs(t *testing.T, root string, paths ...string) {
	t.Helper()
	for _, p := range paths {
		if err := os.MkdirAll(filepath.Join(root, p), 0o750); err != nil {
			t.Fatal(err)
		}
	}
}
