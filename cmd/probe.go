package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/firefly-engineering/firefly-forage/packages/wstest-env/internal/errors"
	"github.com/firefly-engineering/firefly-forage/packages/wstest-env/internal/health"
	"github.com/firefly-engineering/firefly-forage/packages/wstest-env/internal/tui"
)

var probeStrict bool

var probeCmd = &cobra.Command{
	Use:   "probe",
	Short: "Report available tools and features",
	Long: `Locates the tools in the program path, reads the features tshark was
built with and reports capture, named pipe and display support.

With --strict the command fails when any tool is missing.`,
	Args: cobra.NoArgs,
	RunE: runProbe,
}

func init() {
	probeCmd.Flags().BoolVar(&probeStrict, "strict", false, "Fail if any tool is missing")
	rootCmd.AddCommand(probeCmd)
}

func runProbe(cmd *cobra.Command, args []string) error {
	result := health.Check(env)

	fmt.Fprint(cmd.OutOrStdout(), tui.RenderReport(result))

	if result.Status() != health.StatusReady {
		if probeStrict {
			return errors.ToolsMissing(result.ProgramDir, missingNames(result.Missing()))
		}
		logWarning("%d of %d tools missing", len(result.Missing()), len(result.Tools))
	}
	return nil
}
