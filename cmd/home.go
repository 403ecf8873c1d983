package cmd

import (
	"fmt"

	"github.com/kballard/go-shellquote"
	"github.com/spf13/cobra"

	"github.com/firefly-engineering/firefly-forage/packages/wstest-env/internal/errors"
)

var homeEnv bool

var homeCmd = &cobra.Command{
	Use:   "home",
	Short: "Provision an isolated test home",
	Long: `Creates a new temporary home directory with an empty Wireshark
configuration directory. The directory is left in place.

With --env only the shell assignment for the overridden variable is
printed, suitable for eval.`,
	Args: cobra.NoArgs,
	RunE: runHome,
}

func init() {
	homeCmd.Flags().BoolVar(&homeEnv, "env", false, "Print a shell export line")
	rootCmd.AddCommand(homeCmd)
}

func runHome(cmd *cobra.Command, args []string) error {
	home, err := env.SetUpTestEnvironment()
	if err != nil {
		return errors.ProvisionFailed("setup", err)
	}

	out := cmd.OutOrStdout()
	if homeEnv {
		fmt.Fprintln(out, shellquote.Join("export", home.EnvVar+"="+home.HomePath))
		return nil
	}

	fmt.Fprintf(out, "Root: %s\n", home.Root)
	fmt.Fprintf(out, "Home: %s\n", home.HomePath)
	fmt.Fprintf(out, "Config: %s\n", home.ConfDir)
	fmt.Fprintf(out, "Variable: %s\n", home.EnvVar)
	return nil
}
