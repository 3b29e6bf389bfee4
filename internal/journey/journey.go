// Package journey holds the immutable journey/segment model and the
// quality comparator that totally orders journeys for the search
// driver (spec.md §3 invariant 4, §4.3).
package journey

import "github.com/aleksanderv/transitquery/internal/schedule"

// SegmentKind distinguishes a vehicle leg from a walking transfer.
type SegmentKind int

const (
	SegmentRide SegmentKind = iota
	SegmentWalk
)

// Segment is one immutable leg of a journey: either riding a trip from
// one stop-time to another, or walking between two stops.
type Segment struct {
	Kind SegmentKind

	FromStop schedule.StopHandle
	ToStop   schedule.StopHandle

	// Trip/FromSeq/ToSeq are only meaningful when Kind == SegmentRide.
	Trip    schedule.TripHandle
	FromSeq int
	ToSeq   int

	Departure int64
	Arrival   int64
}

// Prefix is an immutable, suffix-extendable singly linked list of
// segments: Prepend returns a new Prefix sharing the existing tail, so
// many visitors sharing a common history never copy it
// (Design Notes §9).
type Prefix struct {
	seg    *Segment
	parent *Prefix
	length int
}

// EmptyPrefix is the journey-so-far at the origin, before any segment.
var EmptyPrefix *Prefix = nil

// Prepend returns a new Prefix with seg appended after p.
func Prepend(p *Prefix, seg Segment) *Prefix {
	length := 1
	if p != nil {
		length = p.length + 1
	}
	return &Prefix{seg: &seg, parent: p, length: length}
}

// Len reports how many segments are in the prefix.
func (p *Prefix) Len() int {
	if p == nil {
		return 0
	}
	return p.length
}

// Segments materialises the prefix into an ordered slice, origin-first.
func (p *Prefix) Segments() []Segment {
	out := make([]Segment, p.Len())
	for n := p; n != nil; n = n.parent {
		out[n.length-1] = *n.seg
	}
	return out
}

// TransferCount is the number of SegmentRide legs beyond the first,
// i.e. the number of times the traveller boards a different trip
// (spec.md's "transfer_count").
func (p *Prefix) TransferCount() int {
	rides := 0
	for n := p; n != nil; n = n.parent {
		if n.seg.Kind == SegmentRide {
			rides++
		}
	}
	if rides == 0 {
		return 0
	}
	return rides - 1
}

// Journey is the final, reconstructed result of a successful search.
type Journey struct {
	Origin      schedule.StopHandle
	Destination schedule.StopHandle
	Departure   int64
	Arrival     int64
	Segments    []Segment
}
