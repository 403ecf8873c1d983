package cmd

import (
	"github.com/firefly-engineering/firefly-forage/packages/wstest-env/internal/app"
	"github.com/firefly-engineering/firefly-forage/packages/wstest-env/internal/config"
	"github.com/firefly-engineering/firefly-forage/packages/wstest-env/internal/errors"
	"github.com/firefly-engineering/firefly-forage/packages/wstest-env/internal/tools"
)

var (
	// env is the bootstrapped environment of the running command.
	env *app.App

	// settings are the loaded settings with flag overrides applied.
	settings *config.Settings

	// appOptions are appended when building env; tests inject mocks here.
	appOptions []app.Option
)

// loadSettings reads the settings file and applies the path flags.
func loadSettings() (*config.Settings, error) {
	s, err := config.LoadSettings(configFile)
	if err != nil {
		return nil, wrapConfigError("failed to load settings", err)
	}
	if programPath != "" {
		s.ProgramPath = programPath
	}
	if testDir != "" {
		s.TestDir = testDir
	}
	return s, nil
}

func wrapConfigError(msg string, err error) error {
	return errors.ConfigError(msg, err)
}

// missingNames converts tool names for error messages.
func missingNames(names []tools.Name) []string {
	out := make([]string, len(names))
	for i, n := range names {
		out[i] = string(n)
	}
	return out
}
