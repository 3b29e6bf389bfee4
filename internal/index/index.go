// Package index builds and serves the keyed lookups and pre-sorted
// sequences the search engine needs: departures-per-stop sorted by
// time, stop-times-per-trip sorted by sequence (served directly by
// schedule.Dataset), transfers-per-stop, and service-active-on-date.
// Built once from a schedule.Dataset and read-only thereafter.
package index

import (
	"math"
	"sort"
	"time"

	"github.com/aleksanderv/transitquery/internal/schedule"
)

const secondsPerDay = 86400

// departureEntry is one (relative departure, trip, stop-time position)
// tuple for a stop, sorted ascending by RelativeDeparture within a
// Dataset's departuresByStop slice.
type departureEntry struct {
	RelativeDeparture int32
	Trip              schedule.TripHandle
	Position          int // index into schedule.Dataset.StopTimesForTrip(Trip)
}

// TransferEdge is a directed walking edge out of some stop.
type TransferEdge struct {
	To      schedule.StopHandle
	Seconds int32
}

// Dataset is the read-only Dataset Index: a schedule.Dataset plus the
// derived structures the Visitor Engine consults.
type Dataset struct {
	sched *schedule.Dataset

	departuresByStop [][]departureEntry
	transfersByStop  [][]TransferEdge

	// dayWindow controls how many candidate service days on either side
	// of the query day the departure cursor merges (SPEC_FULL.md §4.1
	// widening for horizons > 24h). 1 means previous/current/next.
	dayWindow int
}

// Options configures index construction beyond what's already fixed in
// the schedule.Dataset (transfer mode, min transfer seconds).
type Options struct {
	// HorizonHours is MAX_SEARCH_TIME_HOURS; used only to size dayWindow.
	HorizonHours float64
}

// Build derives a Dataset Index from a loaded schedule.Dataset.
func Build(sched *schedule.Dataset, opts Options) *Dataset {
	idx := &Dataset{
		sched:     sched,
		dayWindow: dayWindowFor(opts.HorizonHours),
	}
	idx.buildDepartures()
	idx.buildTransfers()
	return idx
}

func dayWindowFor(horizonHours float64) int {
	if horizonHours <= 24 {
		return 1
	}
	return int(math.Ceil(horizonHours/24)) + 1
}

// Schedule exposes the underlying immutable schedule for accessors that
// only need entity lookups (stop_by_id, trip_by_id, route_by_id).
func (d *Dataset) Schedule() *schedule.Dataset { return d.sched }

func (d *Dataset) buildDepartures() {
	d.departuresByStop = make([][]departureEntry, d.sched.NumStops())
	for tripIdx := 0; tripIdx < d.sched.NumTrips(); tripIdx++ {
		trip := schedule.TripHandle(tripIdx)
		sts := d.sched.StopTimesForTrip(trip)
		for pos, st := range sts {
			if !st.Boardable() {
				continue
			}
			d.departuresByStop[st.Stop] = append(d.departuresByStop[st.Stop], departureEntry{
				RelativeDeparture: st.Departure,
				Trip:              trip,
				Position:          pos,
			})
		}
	}
	for i := range d.departuresByStop {
		sort.Slice(d.departuresByStop[i], func(a, b int) bool {
			return d.departuresByStop[i][a].RelativeDeparture < d.departuresByStop[i][b].RelativeDeparture
		})
	}
}

// ServiceActive reports whether service h is active on date
// (Dataset Index contract: service_active(service, date)).
func (d *Dataset) ServiceActive(h schedule.ServiceHandle, date time.Time) bool {
	svc, err := d.sched.ServiceByHandle(h)
	if err != nil {
		return false
	}
	return svc.ActiveOn(date)
}
