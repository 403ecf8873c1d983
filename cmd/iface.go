package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/firefly-engineering/firefly-forage/packages/wstest-env/internal/config"
	"github.com/firefly-engineering/firefly-forage/packages/wstest-env/internal/errors"
	"github.com/firefly-engineering/firefly-forage/packages/wstest-env/internal/logging"
	"github.com/firefly-engineering/firefly-forage/packages/wstest-env/internal/tui"
)

var ifacePick bool

var ifaceCmd = &cobra.Command{
	Use:   "iface",
	Short: "List capture interfaces",
	Long: `Lists the interfaces reported by "dumpcap -D". The current selection
is marked.

With --pick an interactive picker opens and the chosen interface is saved to
the settings file.

Picker keys:
  Enter  - Select interface
  /      - Filter
  q/Esc  - Quit`,
	Args: cobra.NoArgs,
	RunE: runIface,
}

func init() {
	ifaceCmd.Flags().BoolVar(&ifacePick, "pick", false, "Choose an interface interactively")
	rootCmd.AddCommand(ifaceCmd)
}

func runIface(cmd *cobra.Command, args []string) error {
	ifaces, err := env.ListInterfaces(cmd.Context())
	if err != nil {
		return errors.CaptureUnavailable(err.Error())
	}

	if !ifacePick {
		fmt.Fprint(cmd.OutOrStdout(), tui.SimpleList(ifaces, env.Capture.Interface))
		return nil
	}

	if len(ifaces) == 0 {
		logInfo("No interfaces found.")
		return nil
	}

	result, err := tui.RunPicker(ifaces, env.Capture.Interface)
	if err != nil {
		return fmt.Errorf("picker error: %w", err)
	}

	logging.Debug("picker result", "action", result.Action, "interface", result.Interface.Index)

	if result.Action != tui.ActionSelect {
		return nil
	}

	settings.CaptureInterface = result.Interface.Index
	if err := config.SaveSettings(configFile, settings); err != nil {
		return errors.ConfigError("failed to save settings", err)
	}
	env.SetCaptureInterface(result.Interface.Index)

	logSuccess("Capture interface %s (%s) saved to %s", result.Interface.Index, result.Interface.Label(), configFile)
	return nil
}
