// Package testutil provides test utilities for integration tests
package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/firefly-engineering/firefly-forage/packages/wstest-env/internal/app"
	"github.com/firefly-engineering/firefly-forage/packages/wstest-env/internal/config"
	"github.com/firefly-engineering/firefly-forage/packages/wstest-env/internal/platform"
	"github.com/firefly-engineering/firefly-forage/packages/wstest-env/internal/system"
	"github.com/firefly-engineering/firefly-forage/packages/wstest-env/internal/tools"
)

// TestEnv holds the test environment
type TestEnv struct {
	T          *testing.T
	TmpDir     string
	ProgramDir string
	Paths      *config.Paths
	Executor   *system.MockExecutor
	App        *app.App
}

// NewTestEnv creates a harness directory, an empty program directory and
// an App for the running platform that uses the real file system and a
// mock executor.
func NewTestEnv(t *testing.T) *TestEnv {
	t.Helper()

	tmpDir := t.TempDir()

	paths, err := config.PathsFor(filepath.Join(tmpDir, "test"))
	if err != nil {
		t.Fatalf("Failed to build paths: %v", err)
	}

	programDir := filepath.Join(tmpDir, "run")
	homes := filepath.Join(tmpDir, "homes")

	for _, dir := range []string{
		paths.ConfigDir,
		paths.KeysDir,
		paths.CapturesDir,
		programDir,
		homes,
	} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			t.Fatalf("Failed to create directory %s: %v", dir, err)
		}
	}

	exec := system.NewMockExecutor()

	testApp := app.New(
		app.WithPaths(paths),
		app.WithExecutor(exec),
		app.WithTempDir(homes),
		app.WithEnviron(func() []string { return []string{"PATH=/usr/bin", "LANG=C"} }),
	)

	return &TestEnv{
		T:          t,
		TmpDir:     tmpDir,
		ProgramDir: programDir,
		Paths:      paths,
		Executor:   exec,
		App:        testApp,
	}
}

// ToolPath returns where name is expected in the program directory.
func (e *TestEnv) ToolPath(name tools.Name) string {
	return filepath.Join(e.ProgramDir, string(name)+platform.ExeSuffix(platform.Current()))
}

// WriteTool writes a shell script for name that prints output. The mock
// executor is primed with the same output so tests do not depend on a
// shell being available.
func (e *TestEnv) WriteTool(name tools.Name, output string) string {
	e.T.Helper()

	path := e.ToolPath(name)
	script := "#!/bin/sh\ncat <<'EOF'\n" + output + "\nEOF\n"
	if err := os.WriteFile(path, []byte(script), 0755); err != nil {
		e.T.Fatalf("Failed to write tool %s: %v", name, err)
	}
	e.Executor.AddResponse(path, []byte(output), nil)
	return path
}

// WriteAllTools writes every tool, with tshark printing TsharkVersion and
// dumpcap printing DumpcapInterfaces.
func (e *TestEnv) WriteAllTools() {
	e.T.Helper()

	for _, name := range tools.All {
		switch name {
		case tools.Tshark:
			e.WriteTool(name, TsharkVersion())
		case tools.Dumpcap:
			e.WriteTool(name, DumpcapInterfaces())
		default:
			e.WriteTool(name, "")
		}
	}
}

// AddTemplate writes config/<name>.tmpl.
func (e *TestEnv) AddTemplate(name, content string) string {
	e.T.Helper()

	path := filepath.Join(e.Paths.ConfigDir, name+config.TemplateSuffix)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		e.T.Fatalf("Failed to write template: %v", err)
	}
	return path
}

// ReadFile returns the contents of path, failing the test on error.
func (e *TestEnv) ReadFile(path string) string {
	e.T.Helper()

	data, err := os.ReadFile(path)
	if err != nil {
		e.T.Fatalf("Failed to read %s: %v", path, err)
	}
	return string(data)
}
