// Package rdev implements the rdev command line interface: everyday R
// package development chores (skeleton, docs, check, test, style), each
// delegated to one Rscript invocation in the current directory.
package rdev

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/statforge/rkit/internal/app"
	"github.com/statforge/rkit/internal/logging"
	"github.com/statforge/rkit/internal/rexec"
)

type options struct {
	verbose    bool
	jsonOutput bool

	check    bool
	document bool
	newPkg   string
	style    bool
	test     bool

	showVersion bool
}

// NewCommand builds the rdev root command. The version string is
// injected by main at build time.
func NewCommand(a *app.App, version string) *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "rdev",
		Short: "R package development helper",
		Long: `rdev wraps the usual R package development chores in one command.

Action flags combine freely; selected actions run in a fixed order:

  new → document → check → test → style

Execution stops at the first failing action and rdev exits with that
action's R exit status.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.Setup(opts.verbose, opts.jsonOutput, os.Stderr)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.showVersion {
				fmt.Fprintf(cmd.OutOrStdout(), "rdev version %s\n", version)
				return nil
			}
			return run(cmd, a, opts)
		},
	}

	cmd.Flags().BoolVarP(&opts.check, "check", "c", false, "Run R CMD check on the package")
	cmd.Flags().BoolVarP(&opts.document, "document", "d", false, "Regenerate the package documentation")
	cmd.Flags().StringVarP(&opts.newPkg, "new", "n", "", "Create a new package skeleton at the given path")
	cmd.Flags().BoolVarP(&opts.style, "style", "s", false, "Restyle the package sources")
	cmd.Flags().BoolVarP(&opts.test, "test", "t", false, "Run the package test suite")
	cmd.Flags().BoolVarP(&opts.showVersion, "version", "v", false, "Show version information")

	cmd.PersistentFlags().BoolVar(&opts.verbose, "verbose", false, "Enable verbose output")
	cmd.PersistentFlags().BoolVar(&opts.jsonOutput, "json", false, "Output logs in JSON format")
	cmd.CompletionOptions.DisableDefaultCmd = true

	return cmd
}

// action pairs a user-facing label with the script it forwards to R.
type action struct {
	label  string
	script string
}

// selected returns the chosen actions in their fixed execution order.
func (o *options) selected() []action {
	var acts []action
	if o.newPkg != "" {
		acts = append(acts, action{"create package", rexec.ScriptCreatePackage(o.newPkg)})
	}
	if o.document {
		acts = append(acts, action{"document", rexec.ScriptDocument})
	}
	if o.check {
		acts = append(acts, action{"check", rexec.ScriptCheck})
	}
	if o.test {
		acts = append(acts, action{"test", rexec.ScriptTest})
	}
	if o.style {
		acts = append(acts, action{"style", rexec.ScriptStyle})
	}
	return acts
}

func run(cmd *cobra.Command, a *app.App, opts *options) error {
	acts := opts.selected()
	if len(acts) == 0 {
		return cmd.Help()
	}

	if err := a.RequireRuntime(); err != nil {
		return err
	}

	for _, act := range acts {
		logging.UserInfo("Running %s...", act.label)
		if err := a.Runner.Run(context.Background(), ".", act.script); err != nil {
			return err
		}
	}

	return nil
}
