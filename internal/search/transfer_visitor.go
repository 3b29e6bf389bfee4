package search

import (
	"github.com/aleksanderv/transitquery/internal/index"
	"github.com/aleksanderv/transitquery/internal/journey"
	"github.com/aleksanderv/transitquery/internal/schedule"
)

// transferVisitor represents walking from stop S to a set of reachable
// stops: created per (source stop, arrival instant at source, prefix
// journey) and enumerates outgoing transfer edges in any order
// (spec.md §4.2.3).
type transferVisitor struct {
	fromStop        schedule.StopHandle
	arrival         int64
	prefix          *journey.Prefix
	originDeparture int64

	edges []index.TransferEdge
	pos   int // index of the current edge
}

func newTransferVisitor(idx *index.Dataset, fromStop schedule.StopHandle, arrival int64, prefix *journey.Prefix, originDeparture int64) *transferVisitor {
	return &transferVisitor{
		fromStop:        fromStop,
		arrival:         arrival,
		prefix:          prefix,
		originDeparture: originDeparture,
		edges:           idx.TransfersFrom(fromStop),
	}
}

func (v *transferVisitor) Kind() Kind { return KindTransfer }

// NextEvent returns arrival-at-S + walk seconds for the current edge,
// or infinity once edges are exhausted.
func (v *transferVisitor) NextEvent() int64 {
	if v.pos >= len(v.edges) {
		return infinity
	}
	return v.arrival + int64(v.edges[v.pos].Seconds)
}

// step proposes arriving at the current edge's target stop; on
// improvement it emits a new StopVisitor there. It always advances to
// the next edge and re-emits itself until exhausted (spec.md §4.2.3).
func (v *transferVisitor) step(ctx *context) []Visitor {
	if v.pos >= len(v.edges) {
		return nil
	}
	edge := v.edges[v.pos]
	v.pos++

	targetInstant := v.arrival + int64(edge.Seconds)
	segment := journey.Segment{
		Kind:      journey.SegmentWalk,
		FromStop:  v.fromStop,
		ToStop:    edge.To,
		Departure: v.arrival,
		Arrival:   targetInstant,
	}
	newPrefix := journey.Prepend(v.prefix, segment)
	newOriginDeparture := originDepartureFor(v.prefix, v.originDeparture, v.arrival)
	quality := journey.Quality{
		Arrival:         targetInstant,
		OriginDeparture: newOriginDeparture,
		Transfers:       newPrefix.TransferCount(),
	}

	var successors []Visitor
	if v.pos < len(v.edges) {
		successors = append(successors, v)
	}
	if ctx.tryImproveStop(edge.To, quality, newPrefix) {
		successors = append(successors, newStopVisitor(ctx.idx, edge.To, targetInstant, newPrefix, newOriginDeparture))
	}
	return successors
}
