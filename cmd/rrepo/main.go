package main

import (
	"os"

	"github.com/statforge/rkit/internal/app"
	"github.com/statforge/rkit/internal/cli/rrepo"
	"github.com/statforge/rkit/internal/errors"
	"github.com/statforge/rkit/internal/logging"
)

// version is set at build time
var version = "dev"

func main() {
	a, err := app.New()
	if err != nil {
		logging.UserError("%v", err)
		os.Exit(errors.GetExitCode(err))
	}

	if err := rrepo.NewCommand(a, version).Execute(); err != nil {
		logging.UserError("%v", err)
		os.Exit(errors.GetExitCode(err))
	}
}
