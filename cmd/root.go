package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/firefly-engineering/firefly-forage/packages/wstest-env/internal/app"
	"github.com/firefly-engineering/firefly-forage/packages/wstest-env/internal/config"
	"github.com/firefly-engineering/firefly-forage/packages/wstest-env/internal/logging"
)

var (
	verbose     bool
	jsonOutput  bool
	configFile  string
	programPath string
	testDir     string
)

var rootCmd = &cobra.Command{
	Use:   "wstest-env",
	Short: "Wireshark test environment setup",
	Long: `wstest-env prepares the environment the Wireshark test suite runs in.

It locates the built tools, detects what tshark was compiled with, picks a
capture interface and renders configuration files into a throwaway home
directory:
  - probe reports which tools and features are available
  - home and render provision an isolated test home
  - iface lists and selects capture interfaces`,
	SilenceUsage:      true,
	PersistentPreRunE: setUp,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output logs in JSON format")
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", config.DefaultSettingsFile, "Settings file")
	rootCmd.PersistentFlags().StringVarP(&programPath, "program-path", "p", "", "Directory holding the built executables")
	rootCmd.PersistentFlags().StringVarP(&testDir, "test-dir", "t", "", "Test suite directory holding config/ and keys/")
	rootCmd.CompletionOptions.DisableDefaultCmd = true
}

// setUp configures logging, loads the settings file, applies flag
// overrides and bootstraps the environment.
func setUp(cmd *cobra.Command, args []string) error {
	logging.Setup(verbose, jsonOutput, os.Stderr)
	logging.Stdout = cmd.OutOrStdout()
	logging.Stderr = cmd.ErrOrStderr()

	s, err := loadSettings()
	if err != nil {
		return err
	}
	settings = s

	paths, err := config.PathsFor(settings.TestDir)
	if err != nil {
		return wrapConfigError("invalid test directory", err)
	}

	opts := append([]app.Option{app.WithPaths(paths)}, appOptions...)
	env = app.New(opts...)

	if settings.CaptureInterface != "" {
		env.SetCaptureInterface(settings.CaptureInterface)
	}
	env.SetProgramPath(cmd.Context(), settings.ProgramPath)
	if settings.CanCapture != nil {
		env.SetCanCapture(*settings.CanCapture)
	}

	logging.Debug("environment ready",
		"settings", configFile,
		"program_path", settings.ProgramPath,
		"test_dir", paths.TestDir,
	)
	return nil
}

// Helper aliases for user-facing output (delegates to logging package)
var (
	logInfo    = logging.UserInfo
	logSuccess = logging.UserSuccess
	logWarning = logging.UserWarning
)
