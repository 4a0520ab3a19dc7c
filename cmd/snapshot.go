package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/meghashyamc/advocates/db/kvdb"
	"github.com/meghashyamc/advocates/db/pgdb"
	"github.com/meghashyamc/advocates/logger"
	"github.com/meghashyamc/advocates/models"
	"github.com/meghashyamc/advocates/services/records"
	"github.com/meghashyamc/advocates/validation"
	"github.com/spf13/cobra"
)

func newSnapshotCmd(opts *rootOptions) *cobra.Command {
	var (
		path          string
		clearSnapshot bool
	)

	cmd := &cobra.Command{
		Use:   "snapshot",
		Short: "Copy the record source (postgres, or seed data) into a local bbolt snapshot",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			log := logger.New(opts.cfg.GetLogLevel())

			if path == "" {
				path = opts.cfg.GetSnapshotPath()
			}
			if path == "" {
				return fmt.Errorf("no snapshot path: pass --path or set SNAPSHOT_PATH")
			}

			if clearSnapshot {
				boltDB, err := kvdb.New(log, path)
				if err != nil {
					return err
				}
				defer boltDB.Close()

				if err := kvdb.NewSnapshotStore(log, boltDB).Clear(); err != nil {
					return err
				}
				color.New(color.FgGreen).Fprintf(cmd.OutOrStdout(), "Cleared snapshot %s\n", path)
				return nil
			}

			sourceName := records.SourceSeed
			var advocates []models.Advocate
			if databaseURL := opts.cfg.GetDatabaseURL(); databaseURL != "" {
				postgres, err := pgdb.New(ctx, log, databaseURL)
				if err != nil {
					return err
				}
				defer postgres.Close()

				if advocates, err = postgres.FetchAll(ctx); err != nil {
					return err
				}
				sourceName = pgdb.SourceName
			} else {
				advocates, _ = records.SeedSource{}.FetchAll(ctx)
			}

			validator, err := validation.New(log)
			if err != nil {
				return err
			}
			if err := validator.ValidateAdvocates(advocates); err != nil {
				return err
			}

			boltDB, err := kvdb.New(log, path)
			if err != nil {
				return err
			}
			defer boltDB.Close()

			if err := kvdb.NewSnapshotStore(log, boltDB).Save(ctx, sourceName, advocates); err != nil {
				return err
			}

			color.New(color.FgGreen).Fprintf(cmd.OutOrStdout(), "Saved %d advocates from %s to %s\n", len(advocates), sourceName, path)
			return nil
		},
	}

	cmd.Flags().StringVar(&path, "path", "", "snapshot file (overrides SNAPSHOT_PATH)")
	cmd.Flags().BoolVar(&clearSnapshot, "clear", false, "remove the snapshot instead of taking one")

	return cmd
}
