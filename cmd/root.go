package main

import (
	"github.com/meghashyamc/advocates/config"
	"github.com/spf13/cobra"
)

type rootOptions struct {
	env string
	cfg *config.Config
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:   "advocates",
		Short: "Search the advocate directory",
		Long: `advocates serves and searches a directory of advocates.

Example usage:
  advocates serve                          # Run the advocates API
  advocates browse                         # Interactive search in the terminal
  advocates search trauma --view table     # One-shot search
  advocates snapshot --path advocates.db   # Copy the record source into a local snapshot`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(opts.env)
			if err != nil {
				return err
			}
			opts.cfg = cfg
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVar(&opts.env, "env", "", "config environment (default is $ENV or local)")

	rootCmd.AddCommand(
		newServeCmd(opts),
		newBrowseCmd(opts),
		newSearchCmd(opts),
		newSnapshotCmd(opts),
	)

	return rootCmd
}
