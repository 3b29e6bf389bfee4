package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/aleksanderv/transitquery/internal/config"
	"github.com/aleksanderv/transitquery/internal/journey"
	"github.com/aleksanderv/transitquery/internal/query"
	"github.com/aleksanderv/transitquery/internal/search"
)

var (
	queryFrom string
	queryTo   string
	queryAt   string
)

var queryCmd = &cobra.Command{
	Use:   "query",
	Short: "Runs a single non-interactive earliest-arrival query",
	RunE:  runQuery,
}

func init() {
	queryCmd.Flags().StringVar(&queryFrom, "from", "", "origin stop id")
	queryCmd.Flags().StringVar(&queryTo, "to", "", "destination stop id")
	queryCmd.Flags().StringVar(&queryAt, "at", "", "departure date-time, dd.mm.yyyy HH:MM or dd.mm HH:MM")
}

func runQuery(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(cmd.Flags())
	if err != nil {
		return err
	}

	departure, err := parseEuropeanDateTime(queryAt, time.Now())
	if err != nil {
		return err
	}

	engine, err := query.Load(cfg, log)
	if err != nil {
		return err
	}

	outcome, err := engine.Search(query.Params{
		OriginID:      queryFrom,
		DestinationID: queryTo,
		Departure:     departure.Unix(),
	})
	if err != nil {
		return err
	}

	printOutcome(engine, outcome)
	return nil
}

func printOutcome(engine *query.Engine, outcome search.Outcome) {
	switch o := outcome.(type) {
	case search.Found:
		printJourney(engine, o.Journey)
	case search.NotFoundWithinHorizon:
		fmt.Println("no journey found within the search horizon")
	case search.OriginEqualsDestination:
		fmt.Println("origin and destination are the same stop")
	}
}

// printJourney renders a resolved journey leg-by-leg.
func printJourney(engine *query.Engine, j journey.Journey) {
	fmt.Printf("depart %s at %s, arrive %s at %s\n",
		engine.StopName(j.Origin), formatInstant(j.Departure),
		engine.StopName(j.Destination), formatInstant(j.Arrival))
	for _, seg := range j.Segments {
		switch seg.Kind {
		case journey.SegmentRide:
			fmt.Printf("  ride %s -> %s, %s -> %s\n",
				engine.StopName(seg.FromStop), engine.StopName(seg.ToStop),
				formatInstant(seg.Departure), formatInstant(seg.Arrival))
		case journey.SegmentWalk:
			fmt.Printf("  walk %s -> %s, %s -> %s\n",
				engine.StopName(seg.FromStop), engine.StopName(seg.ToStop),
				formatInstant(seg.Departure), formatInstant(seg.Arrival))
		}
	}
}

func formatInstant(instant int64) string {
	return time.Unix(instant, 0).UTC().Format("2006-01-02 15:04")
}
