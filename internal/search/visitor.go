// Package search implements the Visitor Engine and Search Driver: an
// event-driven priority-queue exploration of the time-expanded transit
// graph that finds the single earliest-arrival, latest-departing,
// fewest-transfers journey (spec.md §4.2-4.3).
package search

import (
	"math"

	"github.com/aleksanderv/transitquery/internal/index"
	"github.com/aleksanderv/transitquery/internal/journey"
	"github.com/aleksanderv/transitquery/internal/schedule"
)

// infinity is the next_event() sentinel for an exhausted visitor.
const infinity = int64(math.MaxInt64)

// Kind tags a Visitor's concrete variant for observability (PROFILE)
// without a type switch on the hot path.
type Kind byte

const (
	KindStop Kind = iota
	KindTrip
	KindTransfer
)

// Visitor is the closed capability set shared by the three frontier
// variants (Design Notes §9: "tagged sum with explicit step dispatch,
// not open inheritance"). Implemented only by stopVisitor, tripVisitor
// and transferVisitor in this package.
type Visitor interface {
	// NextEvent returns the absolute instant of this visitor's next
	// action, or infinity if exhausted.
	NextEvent() int64

	// Kind reports which of the three variants this is.
	Kind() Kind

	// step advances by exactly one event, proposing improvements
	// through ctx and returning any successor visitors to push onto
	// the frontier.
	step(ctx *context) []Visitor
}

// record is one entry of best_at_stop or best_at_trip: the best known
// ConnectionQuality reaching this stop/trip so far, and the prefix
// journey that achieved it.
type record struct {
	quality journey.Quality
	prefix  *journey.Prefix
}

// context bundles the read-only Dataset Index with the per-query
// best-known tables the driver owns. Visitors propose through it; it
// alone decides whether a proposal is strictly better and worth acting
// on (spec.md §4.3 pruning rule).
type context struct {
	idx *index.Dataset

	bestAtStop map[schedule.StopHandle]record
	bestAtTrip map[schedule.TripHandle]record

	stopImprovements int
	tripImprovements int
}

func newContext(idx *index.Dataset) *context {
	return &context{
		idx:        idx,
		bestAtStop: make(map[schedule.StopHandle]record),
		bestAtTrip: make(map[schedule.TripHandle]record),
	}
}

// tryImproveStop records q/prefix as stop's best known entry if, and
// only if, strictly better than the existing one, per the dominance
// order in journey.Quality.Less. Returns whether it improved.
func (c *context) tryImproveStop(stop schedule.StopHandle, q journey.Quality, prefix *journey.Prefix) bool {
	existing, ok := c.bestAtStop[stop]
	if ok && !q.Less(existing.quality) {
		return false
	}
	c.bestAtStop[stop] = record{quality: q, prefix: prefix}
	c.stopImprovements++
	return true
}

// tryImproveTrip is the trip-indexed analogue used to discard later,
// dominated re-boardings of the same trip (spec.md §4.3: "best_at_trip
// is indexed by trip so that a later boarding of the same trip with a
// worse or equal prefix is discarded").
func (c *context) tryImproveTrip(trip schedule.TripHandle, q journey.Quality, prefix *journey.Prefix) bool {
	existing, ok := c.bestAtTrip[trip]
	if ok && !q.Less(existing.quality) {
		return false
	}
	c.bestAtTrip[trip] = record{quality: q, prefix: prefix}
	c.tripImprovements++
	return true
}

// originDepartureFor returns the departure instant that should be
// recorded as a new segment's "departure from origin": the instant
// itself when prefix is still empty (this is the first segment of the
// journey), otherwise the inherited value.
func originDepartureFor(prefix *journey.Prefix, inherited, instant int64) int64 {
	if prefix == nil {
		return instant
	}
	return inherited
}
