package index

import (
	"sort"
	"time"

	"github.com/aleksanderv/transitquery/internal/schedule"
)

// dayCursor tracks the scan position within one candidate service day's
// slice of a stop's departuresByStop entries.
type dayCursor struct {
	date time.Time
	idx  int
}

// DepartureCursor enumerates a stop's absolute departure instants in
// increasing order starting from a given instant, merging candidate
// service days (previous, current, next, widened by Dataset.dayWindow
// for horizons > 24h). Positioned once by binary search; each
// subsequent Advance is O(1) amortized (SPEC_FULL.md §4.1).
type DepartureCursor struct {
	idx     *Dataset
	stop    schedule.StopHandle
	entries []departureEntry
	days    []dayCursor
}

// DeparturesAt returns a cursor positioned at the first departure of
// stop not before fromInstant (Dataset Index contract: departures_at).
func (d *Dataset) DeparturesAt(stop schedule.StopHandle, fromInstant int64) *DepartureCursor {
	entries := d.TransfersSafeDeparturesByStop(stop)
	c := &DepartureCursor{idx: d, stop: stop, entries: entries}

	fromDate := dayMidnight(fromInstant)
	for offset := -d.dayWindow; offset <= d.dayWindow; offset++ {
		date := fromDate.AddDate(0, 0, offset)
		localFrom := fromInstant - date.Unix()
		pos := sort.Search(len(entries), func(i int) bool {
			return int64(entries[i].RelativeDeparture) >= localFrom
		})
		c.days = append(c.days, dayCursor{date: date, idx: pos})
	}
	return c
}

// TransfersSafeDeparturesByStop returns the raw sorted departure entries
// for a stop, or nil for an out-of-range handle; DeparturesAt builds its
// cursor over them.
func (d *Dataset) TransfersSafeDeparturesByStop(stop schedule.StopHandle) []departureEntry {
	if int(stop) < 0 || int(stop) >= len(d.departuresByStop) {
		return nil
	}
	return d.departuresByStop[stop]
}

func dayMidnight(instant int64) time.Time {
	t := time.Unix(instant, 0).UTC()
	y, m, dd := t.Date()
	return time.Date(y, m, dd, 0, 0, 0, 0, time.UTC)
}

// Peek returns the next qualifying departure without consuming it,
// together with the departure's position within
// schedule.Dataset.StopTimesForTrip(trip) — the cheap numeric handle a
// caller needs to seed a trip visitor without re-deriving it from
// StopTime.Sequence (which may have gaps).
// Entries whose trip's service is not active on the candidate day are
// skipped permanently (they can never become active retroactively).
func (c *DepartureCursor) Peek() (instant int64, st schedule.StopTime, position int, ok bool) {
	best := -1
	var bestInstant int64
	var bestStopTime schedule.StopTime
	var bestPosition int

	for i := range c.days {
		dc := &c.days[i]
		for dc.idx < len(c.entries) {
			e := c.entries[dc.idx]
			trip, err := c.idx.sched.TripByHandle(e.Trip)
			if err != nil {
				dc.idx++
				continue
			}
			if !c.idx.ServiceActive(trip.Service, dc.date) {
				dc.idx++
				continue
			}
			break
		}
		if dc.idx >= len(c.entries) {
			continue
		}
		e := c.entries[dc.idx]
		instant := dc.date.Unix() + int64(e.RelativeDeparture)
		if best == -1 || instant < bestInstant {
			st, _ := c.idx.sched.StopTimeAt(e.Trip, e.Position)
			best = i
			bestInstant = instant
			bestStopTime = st
			bestPosition = e.Position
		}
	}

	if best == -1 {
		return 0, schedule.StopTime{}, 0, false
	}
	return bestInstant, bestStopTime, bestPosition, true
}

// Advance consumes the entry most recently returned by Peek, moving
// this cursor past it.
func (c *DepartureCursor) Advance() {
	best := -1
	var bestInstant int64
	for i := range c.days {
		dc := &c.days[i]
		if dc.idx >= len(c.entries) {
			continue
		}
		instant := dc.date.Unix() + int64(c.entries[dc.idx].RelativeDeparture)
		if best == -1 || instant < bestInstant {
			best = i
			bestInstant = instant
		}
	}
	if best >= 0 {
		c.days[best].idx++
	}
}
