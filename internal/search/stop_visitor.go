package search

import (
	"github.com/aleksanderv/transitquery/internal/index"
	"github.com/aleksanderv/transitquery/internal/journey"
	"github.com/aleksanderv/transitquery/internal/schedule"
)

// stopVisitor represents "standing at stop S, having arrived via a
// specific prefix journey at instant A, ready to board the next
// departure not already considered" (spec.md §4.2.1).
type stopVisitor struct {
	stop            schedule.StopHandle
	arrival         int64
	prefix          *journey.Prefix
	originDeparture int64
	cursor          *index.DepartureCursor
}

func newStopVisitor(idx *index.Dataset, stop schedule.StopHandle, arrival int64, prefix *journey.Prefix, originDeparture int64) *stopVisitor {
	return &stopVisitor{
		stop:            stop,
		arrival:         arrival,
		prefix:          prefix,
		originDeparture: originDeparture,
		cursor:          idx.DeparturesAt(stop, arrival),
	}
}

func (v *stopVisitor) Kind() Kind { return KindStop }

func (v *stopVisitor) NextEvent() int64 {
	instant, _, _, ok := v.cursor.Peek()
	if !ok {
		return infinity
	}
	return instant
}

// step takes the departure under the cursor, creates a TripVisitor
// seeded at the boarded stop-time with the journey extended by a new
// (tentatively unbounded) trip segment starting at S, advances its own
// cursor, and emits itself plus the new TripVisitor — unless the
// boarding is dominated at the trip level, in which case only itself is
// re-emitted (spec.md §4.3 pruning rule applied to best_at_trip).
//
// It does not improve best_at_stop for S: arriving at S is recorded
// once, by whichever visitor first made S the frontier.
func (v *stopVisitor) step(ctx *context) []Visitor {
	instant, st, position, ok := v.cursor.Peek()
	if !ok {
		return nil
	}
	v.cursor.Advance()

	newOriginDeparture := originDepartureFor(v.prefix, v.originDeparture, instant)
	boardingQuality := journey.Quality{
		Arrival:         instant,
		OriginDeparture: newOriginDeparture,
		Transfers:       v.prefix.TransferCount(),
	}

	successors := []Visitor{v}
	if ctx.tryImproveTrip(st.Trip, boardingQuality, v.prefix) {
		dayBase := instant - int64(st.Departure)
		successors = append(successors, newTripVisitor(ctx.idx, st.Trip, v.stop, st, position, dayBase, v.prefix, newOriginDeparture))
	}
	return successors
}
