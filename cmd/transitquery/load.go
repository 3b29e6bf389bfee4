package main

import (
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/aleksanderv/transitquery/internal/config"
	"github.com/aleksanderv/transitquery/internal/loader"
)

var loadCmd = &cobra.Command{
	Use:   "load [dataset-path]",
	Short: "Validates a GTFS Schedule dataset loads without error",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runLoad,
}

func runLoad(cmd *cobra.Command, args []string) error {
	if len(args) == 1 {
		if err := cmd.Flags().Set("dataset-path", args[0]); err != nil {
			return errors.Wrap(err, "load: setting dataset-path")
		}
	}

	cfg, err := config.Load(cmd.Flags())
	if err != nil {
		return err
	}

	sched, err := loader.Load(cfg.DatasetPath, cfg.Transfer)
	if err != nil {
		return errors.WithStack(err)
	}

	log.Info("dataset loaded",
		"path", cfg.DatasetPath,
		"stops", sched.NumStops(),
		"routes", sched.NumRoutes(),
		"trips", sched.NumTrips(),
		"services", sched.NumServices(),
	)
	return nil
}
