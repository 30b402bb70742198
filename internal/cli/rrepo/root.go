// Package rrepo implements the rrepo command line interface: managing a
// local R source package repository by delegating the index work to
// Rscript.
package rrepo

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/statforge/rkit/internal/app"
	"github.com/statforge/rkit/internal/logging"
)

type options struct {
	verbose    bool
	jsonOutput bool

	actNew    bool
	actAdd    string
	actUpdate bool

	rinfo       bool
	showVersion bool
}

// NewCommand builds the rrepo root command. The version string is
// injected by main at build time.
func NewCommand(a *app.App, version string) *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "rrepo [path]",
		Short: "Manage a local R package repository",
		Long: `rrepo manages a local CRAN-style source package repository.

A directory is a repository once it carries a PACKAGES index, written by
R's tools::write_PACKAGES. rrepo itself only checks and prepares the
directory; all index work is delegated to Rscript.

The path argument defaults to the configured repository path, or the
current directory.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.Setup(opts.verbose, opts.jsonOutput, os.Stderr)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.showVersion {
				fmt.Fprintf(cmd.OutOrStdout(), "rrepo version %s\n", version)
				return nil
			}

			path := a.Config.Repo.DefaultPath
			if len(args) == 1 {
				path = args[0]
			}

			return run(cmd, a, opts, path)
		},
	}

	cmd.Flags().BoolVarP(&opts.actNew, "new", "n", false, "Initialize a new repository at path")
	cmd.Flags().StringVarP(&opts.actAdd, "add", "a", "", "Add a source package tarball to the repository")
	cmd.Flags().BoolVarP(&opts.actUpdate, "update", "u", false, "Rebuild the repository index")
	cmd.Flags().BoolVarP(&opts.rinfo, "rinfo", "i", false, "Show R session information")
	cmd.Flags().BoolVarP(&opts.showVersion, "version", "v", false, "Show version information")
	cmd.MarkFlagsMutuallyExclusive("new", "add", "update")

	cmd.PersistentFlags().BoolVar(&opts.verbose, "verbose", false, "Enable verbose output")
	cmd.PersistentFlags().BoolVar(&opts.jsonOutput, "json", false, "Output logs in JSON format")
	cmd.CompletionOptions.DisableDefaultCmd = true

	return cmd
}

// run dispatches the informational flag and then at most one primary
// action. rinfo is independent of the primary group and runs first.
func run(cmd *cobra.Command, a *app.App, opts *options, path string) error {
	if opts.rinfo {
		if err := runInfo(a); err != nil {
			return err
		}
	}

	switch {
	case opts.actNew:
		return runNew(a, path)
	case opts.actAdd != "":
		return runAdd(a, path, opts.actAdd)
	case opts.actUpdate:
		return runUpdate(a, path)
	}

	if !opts.rinfo {
		return cmd.Help()
	}
	return nil
}
