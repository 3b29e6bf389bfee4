package schedule

import "github.com/pkg/errors"

// ErrUnknownHandle is returned by the *ByHandle accessors when asked for
// a handle outside the arena's bounds.
var ErrUnknownHandle = errors.New("schedule: unknown handle")

// Dataset is the immutable arena of schedule entities built once at
// load time and shared by reference across all queries for the process
// lifetime. All slices are indexed by the corresponding *Handle type.
type Dataset struct {
	stops    []Stop
	routes   []Route
	trips    []Trip
	services []*Service

	// stopTimesByTrip[h] holds trip h's stop-times, already sorted by
	// Sequence (schedule invariant 1).
	stopTimesByTrip [][]StopTime

	stopIndexByID    map[string]StopHandle
	routeIndexByID   map[string]RouteHandle
	tripIndexByID    map[string]TripHandle
	serviceIndexByID map[string]ServiceHandle

	transferRecords []TransferRecord
	minTransferSecs int32
	transferMode    TransferMode
	nodeIDColumn    string
}

// Builder accumulates entities before freezing them into a Dataset.
// Mirrors the teacher's PrepareRaptorInput two-phase shape: append
// during loading, then derive index structures once at the end.
type Builder struct {
	ds Dataset
}

// NewBuilder creates an empty Builder.
func NewBuilder(mode TransferMode, minTransferSecs int32, nodeIDColumn string) *Builder {
	return &Builder{ds: Dataset{
		stopIndexByID:    make(map[string]StopHandle),
		routeIndexByID:   make(map[string]RouteHandle),
		tripIndexByID:    make(map[string]TripHandle),
		serviceIndexByID: make(map[string]ServiceHandle),
		transferMode:     mode,
		minTransferSecs:  minTransferSecs,
		nodeIDColumn:     nodeIDColumn,
	}}
}

// AddStop appends a stop and assigns it the next dense handle.
func (b *Builder) AddStop(id, name string, parentStation StopHandle, nodeID string) StopHandle {
	h := StopHandle(len(b.ds.stops))
	b.ds.stops = append(b.ds.stops, Stop{
		Handle:        h,
		ID:            id,
		Name:          name,
		ParentStation: parentStation,
		NodeID:        nodeID,
	})
	b.ds.stopIndexByID[id] = h
	return h
}

// SetParentStation retroactively records stop h's parent station,
// resolved once all stops are known (a stop's parent may be added to
// the builder after the child in feed iteration order).
func (b *Builder) SetParentStation(h, parent StopHandle) {
	if int(h) < 0 || int(h) >= len(b.ds.stops) {
		return
	}
	b.ds.stops[h].ParentStation = parent
}

// AddRoute appends a route and assigns it the next dense handle.
func (b *Builder) AddRoute(id, shortName string, typ RouteType) RouteHandle {
	h := RouteHandle(len(b.ds.routes))
	b.ds.routes = append(b.ds.routes, Route{Handle: h, ID: id, ShortName: shortName, Type: typ})
	b.ds.routeIndexByID[id] = h
	return h
}

// AddService appends a service and assigns it the next dense handle.
func (b *Builder) AddService(s *Service) ServiceHandle {
	h := ServiceHandle(len(b.ds.services))
	s.Handle = h
	b.ds.services = append(b.ds.services, s)
	b.ds.serviceIndexByID[s.ID] = h
	return h
}

// AddTrip appends a trip (with its already-sequence-sorted stop-times)
// and assigns it the next dense handle.
func (b *Builder) AddTrip(id string, route RouteHandle, service ServiceHandle, stopTimes []StopTime) TripHandle {
	h := TripHandle(len(b.ds.trips))
	b.ds.trips = append(b.ds.trips, Trip{Handle: h, ID: id, Route: route, Service: service})
	for i := range stopTimes {
		stopTimes[i].Trip = h
	}
	b.ds.stopTimesByTrip = append(b.ds.stopTimesByTrip, stopTimes)
	b.ds.tripIndexByID[id] = h
	return h
}

// AddTransferRecord appends a transfers.txt row (only meaningful in
// TransferByTransfersTxt mode).
func (b *Builder) AddTransferRecord(rec TransferRecord) {
	b.ds.transferRecords = append(b.ds.transferRecords, rec)
}

// StopHandleByID resolves an already-added stop id, or false.
func (b *Builder) StopHandleByID(id string) (StopHandle, bool) {
	h, ok := b.ds.stopIndexByID[id]
	return h, ok
}

// RouteHandleByID resolves an already-added route id, or false.
func (b *Builder) RouteHandleByID(id string) (RouteHandle, bool) {
	h, ok := b.ds.routeIndexByID[id]
	return h, ok
}

// ServiceHandleByID resolves an already-added service id, or false.
func (b *Builder) ServiceHandleByID(id string) (ServiceHandle, bool) {
	h, ok := b.ds.serviceIndexByID[id]
	return h, ok
}

// Build freezes the builder into a read-only Dataset.
func (b *Builder) Build() *Dataset {
	ds := b.ds
	return &ds
}

// StopByHandle returns the stop addressed by h.
func (d *Dataset) StopByHandle(h StopHandle) (Stop, error) {
	if int(h) < 0 || int(h) >= len(d.stops) {
		return Stop{}, errors.Wrapf(ErrUnknownHandle, "stop %v", h)
	}
	return d.stops[h], nil
}

// StopByID resolves a GTFS stop_id to its Stop.
func (d *Dataset) StopByID(id string) (Stop, error) {
	h, ok := d.stopIndexByID[id]
	if !ok {
		return Stop{}, errors.Wrapf(ErrUnknownHandle, "stop id %q", id)
	}
	return d.stops[h], nil
}

// RouteByHandle returns the route addressed by h.
func (d *Dataset) RouteByHandle(h RouteHandle) (Route, error) {
	if int(h) < 0 || int(h) >= len(d.routes) {
		return Route{}, errors.Wrapf(ErrUnknownHandle, "route %v", h)
	}
	return d.routes[h], nil
}

// TripByHandle returns the trip addressed by h.
func (d *Dataset) TripByHandle(h TripHandle) (Trip, error) {
	if int(h) < 0 || int(h) >= len(d.trips) {
		return Trip{}, errors.Wrapf(ErrUnknownHandle, "trip %v", h)
	}
	return d.trips[h], nil
}

// ServiceByHandle returns the service addressed by h.
func (d *Dataset) ServiceByHandle(h ServiceHandle) (*Service, error) {
	if int(h) < 0 || int(h) >= len(d.services) {
		return nil, errors.Wrapf(ErrUnknownHandle, "service %v", h)
	}
	return d.services[h], nil
}

// StopTimesForTrip returns trip h's stop-times, sorted by Sequence.
func (d *Dataset) StopTimesForTrip(h TripHandle) []StopTime {
	if int(h) < 0 || int(h) >= len(d.stopTimesByTrip) {
		return nil
	}
	return d.stopTimesByTrip[h]
}

// StopTimeAt returns the stop-time at the given index within trip h's
// sequence, and false if the trip ends before that index
// (Dataset Index contract: stop_time_at(trip, sequence+1)).
func (d *Dataset) StopTimeAt(h TripHandle, index int) (StopTime, bool) {
	sts := d.StopTimesForTrip(h)
	if index < 0 || index >= len(sts) {
		return StopTime{}, false
	}
	return sts[index], true
}

// NumStops returns the number of stops in the arena.
func (d *Dataset) NumStops() int { return len(d.stops) }

// NumTrips returns the number of trips in the arena.
func (d *Dataset) NumTrips() int { return len(d.trips) }

// NumRoutes returns the number of routes in the arena.
func (d *Dataset) NumRoutes() int { return len(d.routes) }

// NumServices returns the number of services in the arena.
func (d *Dataset) NumServices() int { return len(d.services) }

// AllStops returns the arena's stops. Callers must not mutate the slice.
func (d *Dataset) AllStops() []Stop { return d.stops }

// TransferMode reports the configured transfer materialisation mode.
func (d *Dataset) TransferMode() TransferMode { return d.transferMode }

// MinTransferSeconds reports the configured floor on walking transfers.
func (d *Dataset) MinTransferSeconds() int32 { return d.minTransferSecs }

// TransferRecords returns the raw transfers.txt rows kept at load time.
func (d *Dataset) TransferRecords() []TransferRecord { return d.transferRecords }
