package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/aleksanderv/transitquery/internal/autocomplete"
	"github.com/aleksanderv/transitquery/internal/config"
	"github.com/aleksanderv/transitquery/internal/query"
)

var interactiveCmd = &cobra.Command{
	Use:   "interactive",
	Short: "Prompts for origin, destination and departure time, then answers",
	RunE:  runInteractive,
}

func runInteractive(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(cmd.Flags())
	if err != nil {
		return err
	}

	engine, err := query.Load(cfg, log)
	if err != nil {
		return err
	}

	in := bufio.NewReader(os.Stdin)

	origin, err := promptStop(in, engine, "Origin")
	if err != nil {
		return err
	}
	destination, err := promptStop(in, engine, "Destination")
	if err != nil {
		return err
	}
	departure, err := promptDateTime(in)
	if err != nil {
		return err
	}

	fmt.Printf("searching from %s to %s departing %s...\n", origin.Name, destination.Name, mustFormat(departure))

	outcome := engine.SearchHandles(origin.Stops[0], destination.Stops[0], departure.Unix())
	printOutcome(engine, outcome)
	return nil
}

// promptStop reads a name prefix, resolves it through autocomplete,
// and asks the user to disambiguate when more than one display name
// matches (spec.md §6.3).
func promptStop(in *bufio.Reader, engine *query.Engine, label string) (autocomplete.Match, error) {
	for {
		fmt.Printf("%s stop name (or prefix): ", label)
		line, err := in.ReadString('\n')
		if err != nil {
			return autocomplete.Match{}, err
		}
		prefix := strings.TrimSpace(line)

		matches := engine.Autocomplete().Lookup(prefix)
		switch len(matches) {
		case 0:
			fmt.Println("no stop matches that prefix, try again")
		case 1:
			return matches[0], nil
		default:
			fmt.Println("multiple stops match, please narrow it down:")
			for _, m := range matches {
				fmt.Printf("  %s\n", m.Name)
			}
		}
	}
}

func promptDateTime(in *bufio.Reader) (time.Time, error) {
	for {
		fmt.Print("Departure (dd.mm.yyyy HH:MM or dd.mm HH:MM): ")
		line, err := in.ReadString('\n')
		if err != nil {
			return time.Time{}, err
		}
		t, err := parseEuropeanDateTime(strings.TrimSpace(line), time.Now())
		if err != nil {
			fmt.Println(err)
			continue
		}
		return t, nil
	}
}
