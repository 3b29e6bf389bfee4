package search

import (
	"github.com/aleksanderv/transitquery/internal/index"
	"github.com/aleksanderv/transitquery/internal/journey"
	"github.com/aleksanderv/transitquery/internal/schedule"
)

// tripVisitor represents "riding trip T, currently leaving stop-time K,
// prefix journey committed up to boarding" (spec.md §4.2.2).
type tripVisitor struct {
	idx *index.Dataset

	trip          schedule.TripHandle
	boardStop     schedule.StopHandle
	boardStopTime schedule.StopTime
	dayBase       int64 // absolute instant of the boarding service-day midnight

	pos int // sequence index (into StopTimesForTrip) of the current cursor stop-time

	prefix          *journey.Prefix // committed up to boarding, excludes the open ride leg
	originDeparture int64
}

func newTripVisitor(idx *index.Dataset, trip schedule.TripHandle, boardStop schedule.StopHandle, boardStopTime schedule.StopTime, boardPos int, dayBase int64, prefix *journey.Prefix, originDeparture int64) *tripVisitor {
	return &tripVisitor{
		idx:             idx,
		trip:            trip,
		boardStop:       boardStop,
		boardStopTime:   boardStopTime,
		dayBase:         dayBase,
		pos:             boardPos,
		prefix:          prefix,
		originDeparture: originDeparture,
	}
}

// NextEvent returns the absolute arrival instant at the trip's next
// stop-time, or infinity if the trip ends (spec.md §4.2.2).
func (v *tripVisitor) NextEvent() int64 {
	st, ok := v.idx.Schedule().StopTimeAt(v.trip, v.pos+1)
	if !ok {
		return infinity
	}
	return v.dayBase + int64(st.Arrival)
}

func (v *tripVisitor) Kind() Kind { return KindTrip }

// step moves the cursor to the next stop-time S', proposing a journey
// that alights there. On improvement it records the proposal at S' and
// emits a StopVisitor and a TransferVisitor there; it always re-emits
// itself to continue riding (spec.md §4.2.2).
func (v *tripVisitor) step(ctx *context) []Visitor {
	st, ok := v.idx.Schedule().StopTimeAt(v.trip, v.pos+1)
	if !ok {
		return nil
	}
	v.pos++

	arrival := v.dayBase + int64(st.Arrival)
	segment := journey.Segment{
		Kind:      journey.SegmentRide,
		FromStop:  v.boardStop,
		ToStop:    st.Stop,
		Trip:      v.trip,
		FromSeq:   v.boardStopTime.Sequence,
		ToSeq:     st.Sequence,
		Departure: v.dayBase + int64(v.boardStopTime.Departure),
		Arrival:   arrival,
	}
	newPrefix := journey.Prepend(v.prefix, segment)
	quality := journey.Quality{
		Arrival:         arrival,
		OriginDeparture: v.originDeparture,
		Transfers:       newPrefix.TransferCount(),
	}

	successors := []Visitor{v}
	if ctx.tryImproveStop(st.Stop, quality, newPrefix) {
		successors = append(successors, newStopVisitor(ctx.idx, st.Stop, arrival, newPrefix, v.originDeparture))
		successors = append(successors, newTransferVisitor(ctx.idx, st.Stop, arrival, newPrefix, v.originDeparture))
	}
	return successors
}
