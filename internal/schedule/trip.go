package schedule

// Trip is an immutable scheduled vehicle journey record.
type Trip struct {
	Handle  TripHandle
	ID      string
	Route   RouteHandle
	Service ServiceHandle
}

// PickupType mirrors the GTFS pickup_type / drop_off_type enumeration.
type PickupType int

const (
	PickupScheduled   PickupType = 0
	PickupNone        PickupType = 1
	PickupPhoneAgency PickupType = 2
	PickupCoordinate  PickupType = 3
)

// StopTime is one scheduled visit of a trip to a stop. Arrival and
// departure are elapsed seconds since the trip's service-day midnight;
// values >= 86400 represent past-midnight operation (invariant: within a
// trip, Sequence is totally ordered and Arrival <= Departure, and the
// Departure of stop i <= Arrival of stop i+1).
type StopTime struct {
	Trip        TripHandle
	Sequence    int
	Stop        StopHandle
	Arrival     int32
	Departure   int32
	PickupType  PickupType
	DropoffType PickupType
}

// Boardable reports whether a passenger may board at this stop-time.
func (st StopTime) Boardable() bool {
	return st.PickupType != PickupNone
}
