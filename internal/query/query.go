// Package query wires configuration, GTFS loading, the Dataset Index
// and the Search Driver behind the single entrypoint a terminal UI
// needs: Params in, an Outcome out (spec.md §6.3: "search(params) ->
// result").
package query

import (
	charmlog "github.com/charmbracelet/log"
	"github.com/pkg/errors"

	"github.com/aleksanderv/transitquery/internal/autocomplete"
	"github.com/aleksanderv/transitquery/internal/config"
	"github.com/aleksanderv/transitquery/internal/index"
	"github.com/aleksanderv/transitquery/internal/loader"
	"github.com/aleksanderv/transitquery/internal/schedule"
	"github.com/aleksanderv/transitquery/internal/search"
)

// ErrUnknownOrigin is returned when Params.OriginID does not resolve to
// a loaded stop.
var ErrUnknownOrigin = errors.New("query: unknown origin stop")

// ErrUnknownDestination is returned when Params.DestinationID does not
// resolve to a loaded stop.
var ErrUnknownDestination = errors.New("query: unknown destination stop")

// Engine is a loaded dataset ready to answer queries; constructed once
// at startup and shared across every query for the process lifetime.
type Engine struct {
	idx          *index.Dataset
	autocomplete *autocomplete.Index
	cfg          *config.Config
	log          *charmlog.Logger
}

// Load parses the configured GTFS dataset and builds the indexes an
// Engine needs to answer queries.
func Load(cfg *config.Config, log *charmlog.Logger) (*Engine, error) {
	if log == nil {
		log = charmlog.Default()
	}
	if cfg.Profile {
		// the search driver logs its PROFILE summary at debug level
		log.SetLevel(charmlog.DebugLevel)
	}

	sched, err := loader.Load(cfg.DatasetPath, cfg.Transfer)
	if err != nil {
		return nil, err
	}
	log.Info("dataset loaded",
		"stops", sched.NumStops(),
		"routes", sched.NumRoutes(),
		"trips", sched.NumTrips(),
		"services", sched.NumServices(),
	)

	idx := index.Build(sched, index.Options{HorizonHours: cfg.MaxSearchTimeHours})
	ac := autocomplete.Build(sched.AllStops())

	return &Engine{idx: idx, autocomplete: ac, cfg: cfg, log: log}, nil
}

// Params is a by-stop-id query request: GTFS stop ids for origin and
// destination plus a departure instant, as the query subcommand passes
// them.
type Params struct {
	OriginID      string
	DestinationID string
	Departure     int64
}

// Autocomplete exposes the engine's stop-name prefix index so a
// terminal UI can resolve a typed prefix to candidate stops before
// calling Search.
func (e *Engine) Autocomplete() *autocomplete.Index { return e.autocomplete }

// Search resolves Params.OriginID/DestinationID to stop handles and
// runs the Search Driver, honoring MAX_SEARCH_TIME_HOURS as the
// horizon (spec.md §6.3).
func (e *Engine) Search(p Params) (search.Outcome, error) {
	origin, err := e.idx.Schedule().StopByID(p.OriginID)
	if err != nil {
		return nil, errors.Wrapf(ErrUnknownOrigin, "%q", p.OriginID)
	}
	destination, err := e.idx.Schedule().StopByID(p.DestinationID)
	if err != nil {
		return nil, errors.Wrapf(ErrUnknownDestination, "%q", p.DestinationID)
	}
	return e.SearchHandles(origin.Handle, destination.Handle, p.Departure), nil
}

// SearchHandles runs the Search Driver between two already-resolved
// stops, for callers (the interactive terminal UI) that resolve a name
// prefix to a schedule.StopHandle via Autocomplete rather than
// carrying a GTFS stop id.
func (e *Engine) SearchHandles(origin, destination schedule.StopHandle, departure int64) search.Outcome {
	driver := search.NewDriver(e.idx, search.Params{
		Origin:         origin,
		Destination:    destination,
		Departure:      departure,
		HorizonSeconds: int64(e.cfg.MaxSearchTimeHours * 3600),
		Profile:        e.cfg.Profile,
	}, e.log)

	outcome := driver.Run()
	e.log.Info("query answered", "origin", origin, "destination", destination, "outcome", outcomeKind(outcome))
	return outcome
}

// StopName resolves a stop handle back to its display name, for
// printing a resolved journey's legs.
func (e *Engine) StopName(h schedule.StopHandle) string {
	s, err := e.idx.Schedule().StopByHandle(h)
	if err != nil {
		return "?"
	}
	return s.Name
}

func outcomeKind(o search.Outcome) string {
	switch o.(type) {
	case search.Found:
		return "found"
	case search.NotFoundWithinHorizon:
		return "not_found_within_horizon"
	case search.OriginEqualsDestination:
		return "origin_equals_destination"
	default:
		return "unknown"
	}
}
