package search

import "github.com/aleksanderv/transitquery/internal/journey"

// Outcome is the closed sum type of search results: Found,
// NotFoundWithinHorizon, or OriginEqualsDestination. These are values,
// not errors (spec.md §7: "Search outcome ... These are results, not
// errors").
type Outcome interface {
	outcome()
}

// Found carries the single optimal journey.
type Found struct {
	Journey journey.Journey
}

func (Found) outcome() {}

// NotFoundWithinHorizon means no journey reaches the destination within
// the search horizon T0+H.
type NotFoundWithinHorizon struct{}

func (NotFoundWithinHorizon) outcome() {}

// OriginEqualsDestination means the query's origin and destination are
// the same stop; returned without consulting the dataset.
type OriginEqualsDestination struct{}

func (OriginEqualsDestination) outcome() {}
