package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuilderAssignsDenseHandles(t *testing.T) {
	b := NewBuilder(TransferByParentStation, 60, "")

	a := b.AddStop("A", "Stop A", NoStop, "")
	bHandle := b.AddStop("B", "Stop B", NoStop, "")

	assert.Equal(t, StopHandle(0), a)
	assert.Equal(t, StopHandle(1), bHandle)

	ds := b.Build()
	stop, err := ds.StopByID("A")
	require.NoError(t, err)
	assert.Equal(t, "Stop A", stop.Name)
}

func TestStopByIDUnknownReturnsWrappedError(t *testing.T) {
	b := NewBuilder(TransferNone, 0, "")
	ds := b.Build()

	_, err := ds.StopByID("missing")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownHandle)
}

func TestAddTripSetsStopTimeBackReference(t *testing.T) {
	b := NewBuilder(TransferNone, 0, "")
	stopA := b.AddStop("A", "A", NoStop, "")
	stopB := b.AddStop("B", "B", NoStop, "")
	route := b.AddRoute("R1", "1", RouteBus)
	service := b.AddService(NewService(NoService, "daily", WeekdayMonday, time.Time{}, time.Time{}))

	trip := b.AddTrip("T1", route, service, []StopTime{
		{Sequence: 0, Stop: stopA, Arrival: 0, Departure: 0},
		{Sequence: 1, Stop: stopB, Arrival: 300, Departure: 300},
	})

	ds := b.Build()
	sts := ds.StopTimesForTrip(trip)
	require.Len(t, sts, 2)
	assert.Equal(t, trip, sts[0].Trip)
	assert.Equal(t, trip, sts[1].Trip)

	st, ok := ds.StopTimeAt(trip, 1)
	require.True(t, ok)
	assert.Equal(t, stopB, st.Stop)

	_, ok = ds.StopTimeAt(trip, 2)
	assert.False(t, ok)
}
