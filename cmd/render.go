package cmd

import (
	stderrors "errors"
	"fmt"
	"io/fs"

	"github.com/spf13/cobra"

	"github.com/firefly-engineering/firefly-forage/packages/wstest-env/internal/errors"
)

var renderCmd = &cobra.Command{
	Use:   "render <name>...",
	Short: "Render config templates into a test home",
	Long: `Renders config/<name>.tmpl from the test directory into a new test
home, replacing TEST_KEYS_DIR with the key directory. Prints the path of
each written file.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runRender,
}

func init() {
	rootCmd.AddCommand(renderCmd)
}

func runRender(cmd *cobra.Command, args []string) error {
	for _, name := range args {
		path, err := env.SetUpConfigFile(name)
		if err != nil {
			if stderrors.Is(err, fs.ErrNotExist) {
				return errors.TemplateNotFound(name, err)
			}
			return errors.ProvisionFailed("render", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), path)
	}

	if home := env.TestHome(); home != nil {
		logSuccess("Rendered %d file(s) into %s", len(args), home.ConfDir)
	}
	return nil
}
