package testutil

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/firefly-engineering/firefly-forage/packages/wstest-env/internal/capability"
	"github.com/firefly-engineering/firefly-forage/packages/wstest-env/internal/capture"
	"github.com/firefly-engineering/firefly-forage/packages/wstest-env/internal/system"
	"github.com/firefly-engineering/firefly-forage/packages/wstest-env/internal/tools"
)

func TestTsharkVersion(t *testing.T) {
	caps := capability.Parse(TsharkVersion())

	if !caps.Lua || !caps.Nghttp2 || !caps.Kerberos || !caps.Gcrypt17 {
		t.Errorf("full banner should enable every capability: %+v", caps)
	}
	if caps.Version != "3.0.1" {
		t.Errorf("Version = %q, want %q", caps.Version, "3.0.1")
	}
}

func TestTsharkVersionMinimal(t *testing.T) {
	caps := capability.Parse(TsharkVersionMinimal())

	if caps.Lua || caps.Nghttp2 || caps.Kerberos {
		t.Errorf("minimal banner enables optional libraries: %+v", caps)
	}
	if caps.Gcrypt17 {
		t.Error("Gcrypt 1.6 should not satisfy >= 1.7")
	}
}

func TestDumpcapInterfaces(t *testing.T) {
	idx, ok := capture.SelectFromListing(DumpcapInterfaces())
	if !ok || idx != "3" {
		t.Errorf("SelectFromListing() = %q, %v, want 3", idx, ok)
	}

	if n := len(capture.ParseListing(DumpcapInterfaces())); n != 4 {
		t.Errorf("ParseListing() returned %d interfaces, want 4", n)
	}
}

func TestLoadFixture_NotFound(t *testing.T) {
	_, err := LoadFixture("nonexistent.txt")
	if err == nil {
		t.Error("LoadFixture should error for nonexistent file")
	}
}

func TestNewTestEnv(t *testing.T) {
	env := NewTestEnv(t)
	env.WriteAllTools()
	env.AddTemplate("ssl", "keys = TEST_KEYS_DIR\n")

	fs := system.DefaultFS()
	for _, name := range tools.All {
		if !fs.IsExecutable(env.ToolPath(name)) {
			t.Errorf("%s should be executable", name)
		}
	}

	if !env.App.SetProgramPath(context.Background(), env.ProgramDir) {
		t.Fatalf("SetProgramPath returned false, missing %v", env.App.Tools.Missing())
	}
	if !env.App.Capabilities.Lua {
		t.Error("mock executor should serve the tshark fixture")
	}

	path, err := env.App.SetUpConfigFile("ssl")
	if err != nil {
		t.Fatalf("SetUpConfigFile() error = %v", err)
	}
	if !strings.HasPrefix(path, filepath.Join(env.TmpDir, "homes")) {
		t.Errorf("config file %s should live under the homes dir", path)
	}

	want := "keys = " + strings.ReplaceAll(env.Paths.KeysDir+string(filepath.Separator), `\`, `\x5c`) + "\n"
	if got := env.ReadFile(path); got != want {
		t.Errorf("rendered = %q, want %q", got, want)
	}
}
