package journey

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aleksanderv/transitquery/internal/schedule"
)

func TestPrependSharesTail(t *testing.T) {
	base := Prepend(EmptyPrefix, Segment{Kind: SegmentRide, FromStop: 0, ToStop: 1, Departure: 100, Arrival: 200})
	branchA := Prepend(base, Segment{Kind: SegmentWalk, FromStop: 1, ToStop: 2, Departure: 200, Arrival: 260})
	branchB := Prepend(base, Segment{Kind: SegmentRide, FromStop: 1, ToStop: 3, Departure: 210, Arrival: 300})

	assert.Equal(t, 2, branchA.Len())
	assert.Equal(t, 2, branchB.Len())
	assert.Equal(t, base.Segments()[0], branchA.Segments()[0])
	assert.Equal(t, base.Segments()[0], branchB.Segments()[0])
}

func TestSegmentsOrdersOriginFirst(t *testing.T) {
	p := Prepend(EmptyPrefix, Segment{FromStop: 0, ToStop: 1})
	p = Prepend(p, Segment{FromStop: 1, ToStop: 2})
	p = Prepend(p, Segment{FromStop: 2, ToStop: 3})

	segs := p.Segments()
	require.Len(t, segs, 3)
	assert.Equal(t, schedule.StopHandle(0), segs[0].FromStop)
	assert.Equal(t, schedule.StopHandle(1), segs[1].FromStop)
	assert.Equal(t, schedule.StopHandle(2), segs[2].FromStop)
}

func TestTransferCount(t *testing.T) {
	assert.Equal(t, 0, EmptyPrefix.TransferCount())

	oneRide := Prepend(EmptyPrefix, Segment{Kind: SegmentRide})
	assert.Equal(t, 0, oneRide.TransferCount())

	withWalk := Prepend(oneRide, Segment{Kind: SegmentWalk})
	assert.Equal(t, 0, withWalk.TransferCount())

	twoRides := Prepend(withWalk, Segment{Kind: SegmentRide})
	assert.Equal(t, 1, twoRides.TransferCount())

	threeRides := Prepend(twoRides, Segment{Kind: SegmentRide})
	assert.Equal(t, 2, threeRides.TransferCount())
}

func TestQualityLess(t *testing.T) {
	earlier := Quality{Arrival: 100, OriginDeparture: 0, Transfers: 2}
	later := Quality{Arrival: 200, OriginDeparture: 0, Transfers: 0}
	assert.True(t, earlier.Less(later))
	assert.False(t, later.Less(earlier))

	sameArrivalLaterStart := Quality{Arrival: 100, OriginDeparture: 50, Transfers: 0}
	sameArrivalEarlierStart := Quality{Arrival: 100, OriginDeparture: 10, Transfers: 0}
	assert.True(t, sameArrivalLaterStart.Less(sameArrivalEarlierStart))

	fewerTransfers := Quality{Arrival: 100, OriginDeparture: 0, Transfers: 0}
	moreTransfers := Quality{Arrival: 100, OriginDeparture: 0, Transfers: 1}
	assert.True(t, fewerTransfers.Less(moreTransfers))

	assert.True(t, fewerTransfers.Equal(fewerTransfers))
	assert.False(t, fewerTransfers.Equal(moreTransfers))
}
