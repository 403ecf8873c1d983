package main

import (
	"os"

	"github.com/firefly-engineering/firefly-forage/packages/wstest-env/cmd"
	"github.com/firefly-engineering/firefly-forage/packages/wstest-env/internal/errors"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(errors.GetExitCode(err))
	}
}
