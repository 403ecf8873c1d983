package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"

	"github.com/firefly-engineering/firefly-forage/packages/wstest-env/internal/app"
	"github.com/firefly-engineering/firefly-forage/packages/wstest-env/internal/config"
	"github.com/firefly-engineering/firefly-forage/packages/wstest-env/internal/errors"
	"github.com/firefly-engineering/firefly-forage/packages/wstest-env/internal/platform"
	"github.com/firefly-engineering/firefly-forage/packages/wstest-env/internal/system"
	"github.com/firefly-engineering/firefly-forage/packages/wstest-env/internal/testutil"
)

func setupTestEnv(t *testing.T) *testutil.TestEnv {
	t.Helper()

	te := testutil.NewTestEnv(t)
	system.SetDefaultExecutor(te.Executor)
	appOptions = []app.Option{
		app.WithGOOS(platform.Linux),
		app.WithTempDir(filepath.Join(te.TmpDir, "homes")),
		app.WithEnviron(func() []string { return []string{"PATH=/usr/bin"} }),
	}
	t.Cleanup(func() {
		appOptions = nil
		system.ResetDefaults()
	})
	return te
}

// envArgs points the command at the test environment.
func envArgs(te *testutil.TestEnv, args ...string) []string {
	return append(args,
		"--config", filepath.Join(te.TmpDir, config.DefaultSettingsFile),
		"--program-path", te.ProgramDir,
		"--test-dir", te.Paths.TestDir,
	)
}

func executeCommand(args ...string) (string, string, error) {
	// Reset flag values before each test
	verbose = false
	jsonOutput = false
	configFile = config.DefaultSettingsFile
	programPath = ""
	testDir = ""
	probeStrict = false
	homeEnv = false
	ifacePick = false
	resetHelpFlags(rootCmd)

	cmd := rootCmd
	cmd.SetArgs(args)

	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)

	err := cmd.Execute()

	// Reset args for next test
	cmd.SetArgs(nil)
	cmd.SetOut(nil)
	cmd.SetErr(nil)

	return stdout.String(), stderr.String(), err
}

// resetHelpFlags clears --help left set on the shared commands by an
// earlier run.
func resetHelpFlags(c *cobra.Command) {
	if f := c.Flags().Lookup("help"); f != nil {
		_ = f.Value.Set("false")
		f.Changed = false
	}
	for _, sub := range c.Commands() {
		resetHelpFlags(sub)
	}
}

func TestRootCommand_Help(t *testing.T) {
	stdout, _, err := executeCommand("--help")
	if err != nil {
		t.Fatalf("Help command failed: %v", err)
	}

	if !strings.Contains(stdout, "wstest-env") {
		t.Error("Help output should contain 'wstest-env'")
	}
	for _, flag := range []string{"--program-path", "--test-dir", "--config"} {
		if !strings.Contains(stdout, flag) {
			t.Errorf("Help output should mention %s", flag)
		}
	}
}

func TestRootCommand_ListsCommands(t *testing.T) {
	stdout, _, err := executeCommand("--help")
	if err != nil {
		t.Fatalf("Help command failed: %v", err)
	}

	for _, name := range []string{"probe", "ping", "home", "render", "iface"} {
		if !strings.Contains(stdout, name) {
			t.Errorf("Help output should list %s", name)
		}
	}
}

func TestProbeCommand_Help(t *testing.T) {
	stdout, _, err := executeCommand("probe", "--help")
	if err != nil {
		t.Fatalf("Help command failed: %v", err)
	}

	if !strings.Contains(stdout, "--strict") {
		t.Error("Probe help should mention --strict flag")
	}
}

func TestProbeCommand_AllTools(t *testing.T) {
	te := setupTestEnv(t)
	te.WriteAllTools()

	stdout, _, err := executeCommand(envArgs(te, "probe", "--strict")...)
	if err != nil {
		t.Fatalf("probe failed: %v", err)
	}

	if !strings.Contains(stdout, "ready") {
		t.Errorf("probe should report ready:\n%s", stdout)
	}
	if !strings.Contains(stdout, "3.0.1") {
		t.Errorf("probe should show the tshark version:\n%s", stdout)
	}
}

func TestProbeCommand_RunsAfterHelp(t *testing.T) {
	te := setupTestEnv(t)
	te.WriteAllTools()

	if _, _, err := executeCommand("probe", "--help"); err != nil {
		t.Fatalf("Help command failed: %v", err)
	}

	stdout, _, err := executeCommand(envArgs(te, "probe")...)
	if err != nil {
		t.Fatalf("probe failed: %v", err)
	}
	if strings.Contains(stdout, "Usage:") {
		t.Errorf("probe should not print usage after an earlier --help:\n%s", stdout)
	}
	if !strings.Contains(stdout, "ready") {
		t.Errorf("probe should report ready:\n%s", stdout)
	}
}

func TestSubcommandHelpDoesNotLeak(t *testing.T) {
	setupTestEnv(t)

	for _, name := range []string{"probe", "ping", "home", "render", "iface"} {
		if _, _, err := executeCommand(name, "--help"); err != nil {
			t.Fatalf("%s --help failed: %v", name, err)
		}
	}
	resetHelpFlags(rootCmd)

	for _, c := range rootCmd.Commands() {
		if f := c.Flags().Lookup("help"); f != nil && f.Value.String() != "false" {
			t.Errorf("%s help flag = %s after reset", c.Name(), f.Value.String())
		}
	}
}

func TestProbeCommand_StrictMissing(t *testing.T) {
	te := setupTestEnv(t)

	_, _, err := executeCommand(envArgs(te, "probe", "--strict")...)
	if err == nil {
		t.Fatal("probe --strict should fail without tools")
	}
	if code := errors.GetExitCode(err); code != errors.ExitToolsMissing {
		t.Errorf("exit code = %d, want %d", code, errors.ExitToolsMissing)
	}
	if !strings.Contains(err.Error(), "tshark") {
		t.Errorf("error should name the missing tools: %v", err)
	}
}

func TestProbeCommand_MissingIsWarning(t *testing.T) {
	te := setupTestEnv(t)

	stdout, stderr, err := executeCommand(envArgs(te, "probe")...)
	if err != nil {
		t.Fatalf("probe without --strict should succeed: %v", err)
	}
	if !strings.Contains(stdout, "unusable") {
		t.Errorf("probe should report unusable:\n%s", stdout)
	}
	if !strings.Contains(stderr, "tools missing") {
		t.Errorf("probe should warn about missing tools, stderr = %q", stderr)
	}
}

func TestPingCommand(t *testing.T) {
	te := setupTestEnv(t)

	stdout, _, err := executeCommand(envArgs(te, "ping")...)
	if err != nil {
		t.Fatalf("ping failed: %v", err)
	}

	want := "ping -c 240 -s 100 -i 0.25 www.wireshark.org\n"
	if stdout != want {
		t.Errorf("ping output = %q, want %q", stdout, want)
	}
}

func TestPingCommand_Unsupported(t *testing.T) {
	te := setupTestEnv(t)
	appOptions = append(appOptions, app.WithGOOS("plan9"))

	_, _, err := executeCommand(envArgs(te, "ping")...)
	if err == nil {
		t.Fatal("ping should fail on a platform without a known command")
	}
}

func TestHomeCommand(t *testing.T) {
	te := setupTestEnv(t)

	stdout, _, err := executeCommand(envArgs(te, "home")...)
	if err != nil {
		t.Fatalf("home failed: %v", err)
	}

	for _, want := range []string{"Root:", "Home:", "Config:", "Variable: HOME"} {
		if !strings.Contains(stdout, want) {
			t.Errorf("home output should contain %q:\n%s", want, stdout)
		}
	}

	var confDir string
	for _, line := range strings.Split(stdout, "\n") {
		if v, ok := strings.CutPrefix(line, "Config: "); ok {
			confDir = v
		}
	}
	if info, err := os.Stat(confDir); err != nil || !info.IsDir() {
		t.Errorf("config dir %q should exist", confDir)
	}
	if !strings.HasSuffix(confDir, filepath.Join(".config", "wireshark")) {
		t.Errorf("config dir %q should use the XDG layout", confDir)
	}
}

func TestHomeCommand_Env(t *testing.T) {
	te := setupTestEnv(t)

	stdout, _, err := executeCommand(envArgs(te, "home", "--env")...)
	if err != nil {
		t.Fatalf("home --env failed: %v", err)
	}

	if !strings.HasPrefix(stdout, "export HOME=") {
		t.Errorf("home --env output = %q", stdout)
	}
	if !strings.Contains(stdout, config.TempPrefix) {
		t.Errorf("home should live in a %s directory: %q", config.TempPrefix, stdout)
	}
}

func TestRenderCommand(t *testing.T) {
	te := setupTestEnv(t)
	te.AddTemplate("80211_keys", "\"wpa-psk\",\"TEST_KEYS_DIRwpa.key\"\n")

	stdout, _, err := executeCommand(envArgs(te, "render", "80211_keys")...)
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(stdout), "\n")
	path := lines[0]
	if filepath.Base(path) != "80211_keys" {
		t.Fatalf("render should print the written path, got %q", stdout)
	}

	want := "\"wpa-psk\",\"" + te.Paths.KeysDir + string(filepath.Separator) + "wpa.key\"\n"
	if got := te.ReadFile(path); got != want {
		t.Errorf("rendered = %q, want %q", got, want)
	}
}

func TestRenderCommand_MissingTemplate(t *testing.T) {
	te := setupTestEnv(t)

	_, _, err := executeCommand(envArgs(te, "render", "nope")...)
	if err == nil {
		t.Fatal("render should fail for a missing template")
	}
	if code := errors.GetExitCode(err); code != errors.ExitTemplateNotFound {
		t.Errorf("exit code = %d, want %d", code, errors.ExitTemplateNotFound)
	}
}

func TestRenderCommand_RequiresName(t *testing.T) {
	te := setupTestEnv(t)

	_, _, err := executeCommand(envArgs(te, "render")...)
	if err == nil {
		t.Error("render should require a template name")
	}
}

func TestIfaceCommand(t *testing.T) {
	te := setupTestEnv(t)
	te.WriteAllTools()

	stdout, _, err := executeCommand(envArgs(te, "iface")...)
	if err != nil {
		t.Fatalf("iface failed: %v", err)
	}

	if !strings.Contains(stdout, "3. Intel(R) Ethernet Connection I219-V") {
		t.Errorf("iface should list the dumpcap interfaces:\n%s", stdout)
	}
	if strings.Contains(stdout, "✓") {
		t.Error("no interface is selected on linux by default")
	}
}

func TestIfaceCommand_FromSettings(t *testing.T) {
	te := setupTestEnv(t)
	te.WriteAllTools()

	settingsPath := filepath.Join(te.TmpDir, config.DefaultSettingsFile)
	if err := os.WriteFile(settingsPath, []byte("capture_interface = \"3\"\n"), 0644); err != nil {
		t.Fatalf("Failed to write settings: %v", err)
	}

	stdout, _, err := executeCommand(envArgs(te, "iface")...)
	if err != nil {
		t.Fatalf("iface failed: %v", err)
	}

	if !strings.Contains(stdout, "✓ 3.") {
		t.Errorf("interface from settings should be marked:\n%s", stdout)
	}
}

func TestIfaceCommand_NoDumpcap(t *testing.T) {
	te := setupTestEnv(t)

	_, _, err := executeCommand(envArgs(te, "iface")...)
	if code := errors.GetExitCode(err); code != errors.ExitCaptureUnavailable {
		t.Errorf("exit code = %d, want %d", code, errors.ExitCaptureUnavailable)
	}
}

func TestInvalidSettings(t *testing.T) {
	te := setupTestEnv(t)

	settingsPath := filepath.Join(te.TmpDir, config.DefaultSettingsFile)
	if err := os.WriteFile(settingsPath, []byte("program_path = [\n"), 0644); err != nil {
		t.Fatalf("Failed to write settings: %v", err)
	}

	_, _, err := executeCommand(envArgs(te, "ping")...)
	if code := errors.GetExitCode(err); code != errors.ExitConfigError {
		t.Errorf("exit code = %d, want %d", code, errors.ExitConfigError)
	}
}
