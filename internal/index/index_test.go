package index

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aleksanderv/transitquery/internal/schedule"
)

// buildToyDataset mirrors spec.md §8's end-to-end fixture: stops
// {A, B, C, D}, one daily service, trip T1 A->B->C at 10:00/10:05/10:15,
// trip T2 B->D departing B 10:10 arriving D 10:20.
func buildToyDataset(t *testing.T) (*schedule.Dataset, map[string]schedule.StopHandle) {
	t.Helper()
	b := schedule.NewBuilder(schedule.TransferNone, 0, "")

	stops := map[string]schedule.StopHandle{}
	for _, id := range []string{"A", "B", "C", "D"} {
		stops[id] = b.AddStop(id, id, schedule.NoStop, "")
	}

	route := b.AddRoute("R1", "1", schedule.RouteBus)
	daily := b.AddService(schedule.NewService(schedule.NoService, "daily", schedule.WeekdayMonday|schedule.WeekdayTuesday|
		schedule.WeekdayWednesday|schedule.WeekdayThursday|schedule.WeekdayFriday|schedule.WeekdaySaturday|schedule.WeekdaySunday,
		time.Time{}, time.Time{}))

	b.AddTrip("T1", route, daily, []schedule.StopTime{
		{Sequence: 0, Stop: stops["A"], Arrival: 10 * 3600, Departure: 10 * 3600},
		{Sequence: 1, Stop: stops["B"], Arrival: 10*3600 + 5*60, Departure: 10*3600 + 5*60},
		{Sequence: 2, Stop: stops["C"], Arrival: 10*3600 + 15*60, Departure: 10*3600 + 15*60},
	})
	b.AddTrip("T2", route, daily, []schedule.StopTime{
		{Sequence: 0, Stop: stops["B"], Arrival: 10*3600 + 10*60, Departure: 10*3600 + 10*60},
		{Sequence: 1, Stop: stops["D"], Arrival: 10*3600 + 20*60, Departure: 10*3600 + 20*60},
	})

	return b.Build(), stops
}

func TestDeparturesAtOrdersByTime(t *testing.T) {
	sched, stops := buildToyDataset(t)
	idx := Build(sched, Options{HorizonHours: 24})

	base := time.Date(2026, time.January, 5, 0, 0, 0, 0, time.UTC).Unix() // a Monday
	cur := idx.DeparturesAt(stops["A"], base)

	instant, st, _, ok := cur.Peek()
	require.True(t, ok)
	assert.Equal(t, base+10*3600, instant)
	assert.Equal(t, stops["A"], st.Stop)

	cur.Advance()
	instant, _, _, ok = cur.Peek()
	require.True(t, ok, "the next service day's run of the same departure follows")
	assert.Equal(t, base+secondsPerDay+10*3600, instant)
}

func TestDeparturesAtSkipsInactiveService(t *testing.T) {
	b := schedule.NewBuilder(schedule.TransferNone, 0, "")
	stopA := b.AddStop("A", "A", schedule.NoStop, "")
	route := b.AddRoute("R1", "1", schedule.RouteBus)
	weekdaysOnly := b.AddService(schedule.NewService(schedule.NoService, "weekday", schedule.WeekdayMonday, time.Time{}, time.Time{}))
	b.AddTrip("T1", route, weekdaysOnly, []schedule.StopTime{
		{Sequence: 0, Stop: stopA, Arrival: 8 * 3600, Departure: 8 * 3600},
	})
	sched := b.Build()
	idx := Build(sched, Options{HorizonHours: 24})

	saturday := time.Date(2026, time.January, 10, 0, 0, 0, 0, time.UTC).Unix()
	cur := idx.DeparturesAt(stopA, saturday)
	_, _, _, ok := cur.Peek()
	assert.False(t, ok, "service is not active on Saturday")

	monday := time.Date(2026, time.January, 12, 0, 0, 0, 0, time.UTC).Unix()
	cur = idx.DeparturesAt(stopA, monday)
	instant, _, _, ok := cur.Peek()
	require.True(t, ok)
	assert.Equal(t, monday+8*3600, instant)
}

func TestOvernightDepartureIsOfferedPastMidnight(t *testing.T) {
	b := schedule.NewBuilder(schedule.TransferNone, 0, "")
	stopA := b.AddStop("A", "A", schedule.NoStop, "")
	route := b.AddRoute("R1", "1", schedule.RouteBus)
	daily := b.AddService(schedule.NewService(schedule.NoService, "daily", schedule.WeekdayMonday|schedule.WeekdayTuesday|
		schedule.WeekdayWednesday|schedule.WeekdayThursday|schedule.WeekdayFriday|schedule.WeekdaySaturday|schedule.WeekdaySunday,
		time.Time{}, time.Time{}))
	// departure 25:30:00 on the service day.
	overnightDeparture := int32(25*3600 + 30*60)
	b.AddTrip("T1", route, daily, []schedule.StopTime{
		{Sequence: 0, Stop: stopA, Arrival: overnightDeparture, Departure: overnightDeparture},
	})
	sched := b.Build()
	idx := Build(sched, Options{HorizonHours: 24})

	day := time.Date(2026, time.January, 5, 0, 0, 0, 0, time.UTC)
	cur := idx.DeparturesAt(stopA, day.Unix())
	instant, _, _, ok := cur.Peek()
	require.True(t, ok)
	// Querying from midnight, the first run offered is the previous
	// service day's 25:30, i.e. 01:30 on this day.
	assert.Equal(t, day.AddDate(0, 0, -1).Unix()+int64(overnightDeparture), instant)
}

func TestTransferSymmetryUnderParentStationMode(t *testing.T) {
	b := schedule.NewBuilder(schedule.TransferByParentStation, 60, "")
	parent := b.AddStop("P", "Parent", schedule.NoStop, "")
	platform1 := b.AddStop("P1", "Platform 1", parent, "")
	platform2 := b.AddStop("P2", "Platform 2", parent, "")
	sched := b.Build()
	idx := Build(sched, Options{HorizonHours: 24})

	edgesFrom1 := idx.TransfersFrom(platform1)
	edgesFrom2 := idx.TransfersFrom(platform2)

	assert.True(t, hasEdgeTo(edgesFrom1, platform2, 60))
	assert.True(t, hasEdgeTo(edgesFrom2, platform1, 60))
	assert.True(t, hasEdgeTo(edgesFrom1, platform1, 0), "reflexive self-transfer is always present")
}

func hasEdgeTo(edges []TransferEdge, to schedule.StopHandle, seconds int32) bool {
	for _, e := range edges {
		if e.To == to && e.Seconds == seconds {
			return true
		}
	}
	return false
}
