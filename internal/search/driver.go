package search

import (
	"time"

	charmlog "github.com/charmbracelet/log"

	"github.com/aleksanderv/transitquery/internal/index"
	"github.com/aleksanderv/transitquery/internal/journey"
	"github.com/aleksanderv/transitquery/internal/schedule"
)

// Params are the Search Driver's inputs (spec.md §4.3).
type Params struct {
	Origin      schedule.StopHandle
	Destination schedule.StopHandle

	// Departure is T0, the absolute departure instant.
	Departure int64

	// HorizonSeconds is H; the search gives up beyond Departure+H.
	HorizonSeconds int64

	// Profile enables the PROFILE runtime-profiling log line.
	Profile bool
}

// Stats is the PROFILE summary (SPEC_FULL.md §4.3).
type Stats struct {
	Popped           int
	PushedByKind     map[Kind]int
	StopImprovements int
	TripImprovements int
	Duration         time.Duration
}

// Driver runs one query's event-driven search to completion.
type Driver struct {
	idx    *index.Dataset
	params Params
	log    *charmlog.Logger
}

// NewDriver constructs a Driver over the given Dataset Index.
func NewDriver(idx *index.Dataset, params Params, logger *charmlog.Logger) *Driver {
	if logger == nil {
		logger = charmlog.Default()
	}
	return &Driver{idx: idx, params: params, log: logger}
}

// Run executes the search and returns the Outcome (spec.md §4.3).
func (d *Driver) Run() Outcome {
	start := time.Now()

	if d.params.Origin == d.params.Destination {
		return OriginEqualsDestination{}
	}

	ctx := newContext(d.idx)
	f := newFrontier()

	// Seeding: a StopVisitor at the origin with arrival = T0 and empty
	// prefix, plus a TransferVisitor at the origin at T0.
	ctx.bestAtStop[d.params.Origin] = record{
		quality: journey.Quality{Arrival: d.params.Departure, OriginDeparture: d.params.Departure, Transfers: 0},
		prefix:  nil,
	}
	f.push(newStopVisitor(d.idx, d.params.Origin, d.params.Departure, nil, d.params.Departure))
	f.push(newTransferVisitor(d.idx, d.params.Origin, d.params.Departure, nil, d.params.Departure))

	horizon := d.params.Departure + d.params.HorizonSeconds

	stats := Stats{PushedByKind: map[Kind]int{}}

	for !f.empty() {
		event := f.peekEvent()
		if event == infinity || event > horizon {
			break
		}

		v, _ := f.pop()
		stats.Popped++

		successors := v.step(ctx)
		for _, s := range successors {
			f.push(s)
			stats.PushedByKind[s.Kind()]++
		}

		if dest, ok := ctx.bestAtStop[d.params.Destination]; ok {
			if dest.quality.Arrival <= f.peekEvent() {
				stats.StopImprovements = ctx.stopImprovements
				stats.TripImprovements = ctx.tripImprovements
				stats.Duration = time.Since(start)
				d.logProfile(stats)
				return Found{Journey: reconstruct(d.params, dest)}
			}
		}
	}

	stats.StopImprovements = ctx.stopImprovements
	stats.TripImprovements = ctx.tripImprovements
	stats.Duration = time.Since(start)
	d.logProfile(stats)
	return NotFoundWithinHorizon{}
}

func (d *Driver) logProfile(stats Stats) {
	if !d.params.Profile {
		return
	}
	d.log.Debug("search profile",
		"popped", stats.Popped,
		"pushed_stop", stats.PushedByKind[KindStop],
		"pushed_trip", stats.PushedByKind[KindTrip],
		"pushed_transfer", stats.PushedByKind[KindTransfer],
		"stop_improvements", stats.StopImprovements,
		"trip_improvements", stats.TripImprovements,
		"duration", stats.Duration,
	)
}

// reconstruct builds the final Journey from the destination's best-known
// record.
func reconstruct(params Params, dest record) journey.Journey {
	return journey.Journey{
		Origin:      params.Origin,
		Destination: params.Destination,
		Departure:   dest.quality.OriginDeparture,
		Arrival:     dest.quality.Arrival,
		Segments:    dest.prefix.Segments(),
	}
}
