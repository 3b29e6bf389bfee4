// Package schedule holds the immutable in-memory transit schedule model:
// stops, routes, trips, stop-times, service calendars and transfers.
// Entities are addressed by dense numeric handles into arena slices owned
// by Dataset, rather than by pointer or by the raw GTFS string id, so a
// Dataset is cheap to share by reference and visitors are cheap to copy.
package schedule

import "fmt"

// StopHandle addresses a Stop within a Dataset's arena.
type StopHandle int32

// RouteHandle addresses a Route within a Dataset's arena.
type RouteHandle int32

// TripHandle addresses a Trip within a Dataset's arena.
type TripHandle int32

// ServiceHandle addresses a Service within a Dataset's arena.
type ServiceHandle int32

// NoStop is the sentinel handle (-1) meaning "no such stop".
const NoStop StopHandle = -1

// NoTrip is the sentinel handle (-1) meaning "no such trip".
const NoTrip TripHandle = -1

// NoService is the sentinel handle (-1) meaning "no such service".
const NoService ServiceHandle = -1

func (h StopHandle) String() string    { return fmt.Sprintf("stop#%d", int32(h)) }
func (h RouteHandle) String() string   { return fmt.Sprintf("route#%d", int32(h)) }
func (h TripHandle) String() string    { return fmt.Sprintf("trip#%d", int32(h)) }
func (h ServiceHandle) String() string { return fmt.Sprintf("service#%d", int32(h)) }
