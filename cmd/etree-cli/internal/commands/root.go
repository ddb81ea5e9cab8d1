package commands

import (
	"github.com/spf13/cobra"
)

// NewRootCommand builds the etree-cli command tree.
func NewRootCommand(opts ...Option) *cobra.Command {
	rt := newRuntime(opts...)

	rootCmd := &cobra.Command{
		Use:   "etree-cli",
		Short: "ETREE release tracking command-line suite",
		Long: `etree-cli manages the ETREE release tracking database: releases, tool kits,
components and their branches, change requests and their approval workflow,
release packages, location events and summary reports.

Every invocation runs in a single database transaction. Exit codes:
  0 success, 1 error, 2 not found or nothing to do, 3 not authorized,
  4 illegal status transition, 5 not ready, 6 already exists.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	pf := rootCmd.PersistentFlags()
	pf.BoolVarP(&rt.globals.verbose, "verbose", "y", false, "Verbose logging")
	pf.StringVar(&rt.globals.target, "db", "", "Database target (DEV or PROD); defaults to the configured default_target")
	pf.StringVar(&rt.globals.configPath, "config", "", "Config file (default $ETREE_CONFIG or ./etree.yaml)")
	pf.StringVar(&rt.globals.actor, "actor", "", "Acting user (default $ETREE_USER, then $USER)")

	rootCmd.AddCommand(
		newChangeRequestCommands(rt),
		newBranchCommands(rt),
		newToolKitCommands(rt),
		newReleaseCommands(rt),
		newComponentCommands(rt),
		newComponentTypeCommands(rt),
		newPlatformCommands(rt),
		newUserCommands(rt),
		newPackageCommands(rt),
		newEventCommands(rt),
		newReportCommands(rt),
		newDBCommands(rt),
	)

	return rootCmd
}

// group builds a noun command holding verbs.
func group(use, short string, verbs ...*cobra.Command) *cobra.Command {
	cmd := &cobra.Command{
		Use:   use,
		Short: short,
	}
	cmd.AddCommand(verbs...)
	return cmd
}
