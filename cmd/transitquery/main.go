// Command transitquery is a terminal journey planner over a GTFS
// Schedule dataset: load a feed once, then answer earliest-arrival
// queries against it (spec.md §6.3).
package main

import (
	"fmt"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var log = charmlog.NewWithOptions(os.Stderr, charmlog.Options{ReportTimestamp: true})

var rootCmd = &cobra.Command{
	Use:          "transitquery",
	Short:        "Event-driven earliest-arrival transit journey planner",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runInteractive(cmd, args)
	},
}

func init() {
	rootCmd.PersistentFlags().String("dataset-path", "", "path to a GTFS Schedule directory or zip")
	rootCmd.PersistentFlags().Float64("max-search-time-hours", 24, "search horizon in hours")
	rootCmd.PersistentFlags().String("transfer-mode", "by_parent_station", "by_node_id | by_parent_station | by_transfers_txt | none")
	rootCmd.PersistentFlags().String("transfer-node-id", "", "stop column grouping transfer nodes (by_node_id mode)")
	rootCmd.PersistentFlags().Int("min-transfer-time-seconds", 0, "floor applied to every materialised walking transfer")
	rootCmd.PersistentFlags().Bool("profile", false, "log a PROFILE summary after each search")

	rootCmd.AddCommand(loadCmd)
	rootCmd.AddCommand(queryCmd)
	rootCmd.AddCommand(interactiveCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
