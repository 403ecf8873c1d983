package cmd

import (
	"fmt"

	"github.com/kballard/go-shellquote"
	"github.com/spf13/cobra"

	"github.com/firefly-engineering/firefly-forage/packages/wstest-env/internal/errors"
)

var pingCmd = &cobra.Command{
	Use:   "ping",
	Short: "Print the command that generates capture traffic",
	Args:  cobra.NoArgs,
	RunE:  runPing,
}

func init() {
	rootCmd.AddCommand(pingCmd)
}

func runPing(cmd *cobra.Command, args []string) error {
	argv := env.PingCommand()
	if argv == nil {
		return errors.ValidationError(fmt.Sprintf("no ping command known for %s", env.GOOS))
	}

	fmt.Fprintln(cmd.OutOrStdout(), shellquote.Join(argv...))
	return nil
}
