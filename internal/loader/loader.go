// Package loader translates a parsed GTFS Schedule feed into a
// schedule.Dataset, the arena the rest of the engine consumes.
package loader

import (
	"time"

	"github.com/patrickbr/gtfsparser"
	"github.com/patrickbr/gtfsparser/gtfs"
	"github.com/pkg/errors"

	"github.com/aleksanderv/transitquery/internal/config"
	"github.com/aleksanderv/transitquery/internal/schedule"
)

// ErrMalformed is returned when the underlying feed fails to parse.
var ErrMalformed = errors.New("loader: malformed GTFS feed")

// ErrUnsupported is returned when a row relies on a structural feature
// this engine does not implement (spec.md §6.1).
var ErrUnsupported = errors.New("loader: unsupported feed feature")

// ErrUnknownReference is returned when a row references an id this
// loader has not seen (a dangling foreign key in the feed).
var ErrUnknownReference = errors.New("loader: unknown reference")

// Load parses the GTFS Schedule dataset at path and builds a
// schedule.Dataset from it, honoring cfg's transfer materialisation
// choice (SPEC_FULL.md §6.1).
func Load(path string, cfg config.TransferConfig) (*schedule.Dataset, error) {
	feed := gtfsparser.NewFeed()
	if err := feed.Parse(path); err != nil {
		return nil, errors.Wrapf(ErrMalformed, "parsing %s: %v", path, err)
	}

	b := schedule.NewBuilder(cfg.Mode, cfg.MinTransferSecs, cfg.NodeIDColumn)

	if err := loadStops(b, feed, cfg.NodeIDColumn); err != nil {
		return nil, err
	}
	if err := loadRoutes(b, feed); err != nil {
		return nil, err
	}
	if err := loadServices(b, feed); err != nil {
		return nil, err
	}
	if err := loadTrips(b, feed); err != nil {
		return nil, err
	}
	if cfg.Mode == schedule.TransferByTransfersTxt {
		if err := loadTransfers(b, feed); err != nil {
			return nil, err
		}
	}

	return b.Build(), nil
}

func nodeIDValue(stop *gtfs.Stop, column string) string {
	if column == "" {
		return ""
	}
	// gtfsparser does not expose arbitrary extra columns on gtfs.Stop;
	// the only node-grouping columns it parses into typed fields are
	// the stop id itself and the parent station, so TRANSFER_NODE_ID is
	// honored only for those two well-known values.
	switch column {
	case "stop_id":
		return stop.Id
	case "parent_station":
		if stop.Parent_station != nil {
			return stop.Parent_station.Id
		}
		return ""
	default:
		return ""
	}
}

func loadStops(b *schedule.Builder, feed *gtfsparser.Feed, nodeIDColumn string) error {
	// Two passes: stops may reference a parent station that appears
	// later in the map iteration order.
	order := make([]*gtfs.Stop, 0, len(feed.Stops))
	for _, s := range feed.Stops {
		order = append(order, s)
	}
	for _, s := range order {
		b.AddStop(s.Id, s.Name, schedule.NoStop, nodeIDValue(s, nodeIDColumn))
	}
	for _, s := range order {
		if s.Parent_station == nil {
			continue
		}
		h, ok := b.StopHandleByID(s.Id)
		if !ok {
			continue
		}
		parent, ok := b.StopHandleByID(s.Parent_station.Id)
		if !ok {
			return errors.Wrapf(ErrUnknownReference, "stop %q references unknown parent station %q", s.Id, s.Parent_station.Id)
		}
		b.SetParentStation(h, parent)
	}
	return nil
}

func loadRoutes(b *schedule.Builder, feed *gtfsparser.Feed) error {
	for _, r := range feed.Routes {
		typ := schedule.RouteType(r.Type)
		if !typ.Valid() {
			return errors.Wrapf(ErrUnsupported, "route %q has unsupported route_type %d", r.Id, r.Type)
		}
		b.AddRoute(r.Id, r.Short_name, typ)
	}
	return nil
}

func loadServices(b *schedule.Builder, feed *gtfsparser.Feed) error {
	for _, svc := range feed.Services {
		days := weekdayMaskOf(svc)
		start, end := dateRangeOf(svc)
		s := schedule.NewService(schedule.NoService, svc.Id(), days, start, end)
		for date, added := range svc.Exceptions() {
			typ := schedule.ExceptionRemoved
			if added {
				typ = schedule.ExceptionAdded
			}
			s.AddException(date.GetTime(), typ)
		}
		b.AddService(s)
	}
	return nil
}

func weekdayMaskOf(svc *gtfs.Service) schedule.Weekday {
	raw := svc.RawDaymap()
	var mask schedule.Weekday
	// RawDaymap is a Monday-first bitmask (bit i set means calendar.txt's
	// i-th weekday column is active), matching schedule.WeekdayMonday's
	// iota ordering.
	weekdays := []schedule.Weekday{
		schedule.WeekdayMonday, schedule.WeekdayTuesday, schedule.WeekdayWednesday,
		schedule.WeekdayThursday, schedule.WeekdayFriday, schedule.WeekdaySaturday, schedule.WeekdaySunday,
	}
	for i, wd := range weekdays {
		if raw&(1<<uint(i)) != 0 {
			mask |= wd
		}
	}
	return mask
}

func dateRangeOf(svc *gtfs.Service) (time.Time, time.Time) {
	start := svc.Start_date()
	end := svc.End_date()
	var startT, endT time.Time
	if !start.IsEmpty() {
		startT = start.GetTime()
	}
	if !end.IsEmpty() {
		endT = end.GetTime()
	}
	return startT, endT
}

func loadTrips(b *schedule.Builder, feed *gtfsparser.Feed) error {
	for _, t := range feed.Trips {
		route, ok := b.RouteHandleByID(t.Route.Id)
		if !ok {
			return errors.Wrapf(ErrUnknownReference, "trip %q references unknown route %q", t.Id, t.Route.Id)
		}
		service, ok := b.ServiceHandleByID(t.Service.Id())
		if !ok {
			return errors.Wrapf(ErrUnknownReference, "trip %q references unknown service %q", t.Id, t.Service.Id())
		}

		sts := make([]schedule.StopTime, 0, len(t.StopTimes))
		for _, st := range t.StopTimes {
			stop, ok := b.StopHandleByID(st.Stop().Id)
			if !ok {
				return errors.Wrapf(ErrUnknownReference, "trip %q stop_time references unknown stop %q", t.Id, st.Stop().Id)
			}
			if st.Arrival_time().Empty() || st.Departure_time().Empty() {
				return errors.Wrapf(ErrUnsupported, "trip %q has a stop_time with no explicit arrival/departure (interpolated timepoints are unsupported)", t.Id)
			}
			sts = append(sts, schedule.StopTime{
				Sequence:    st.Sequence(),
				Stop:        stop,
				Arrival:     int32(st.Arrival_time().SecondsSinceMidnight()),
				Departure:   int32(st.Departure_time().SecondsSinceMidnight()),
				PickupType:  schedule.PickupType(st.Pickup_type()),
				DropoffType: schedule.PickupType(st.Drop_off_type()),
			})
		}
		b.AddTrip(t.Id, route, service, sts)
	}
	return nil
}

func loadTransfers(b *schedule.Builder, feed *gtfsparser.Feed) error {
	for key, transfer := range feed.Transfers {
		from, ok := b.StopHandleByID(key.From_stop.Id)
		if !ok {
			continue
		}
		to, ok := b.StopHandleByID(key.To_stop.Id)
		if !ok {
			continue
		}
		b.AddTransferRecord(schedule.TransferRecord{
			From:            from,
			To:              to,
			MinTransferSecs: int32(transfer.Min_transfer_time),
			HasQualifier:    key.From_trip != nil || key.To_trip != nil || key.From_route != nil || key.To_route != nil,
		})
	}
	return nil
}
