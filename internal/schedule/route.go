package schedule

// RouteType is an extended GTFS route type: the classic 0-7 values plus
// the supported Google extended values (100-1799, except the taxi
// service family 1500-1599).
type RouteType int

const (
	RouteTram      RouteType = 0
	RouteSubway    RouteType = 1
	RouteRail      RouteType = 2
	RouteBus       RouteType = 3
	RouteFerry     RouteType = 4
	RouteCableTram RouteType = 5
	RouteAerial    RouteType = 6
	RouteFunicular RouteType = 7
)

// IsExtended reports whether t falls in the Google extended route type
// range this engine supports: 100-1799, excluding the taxi service
// family (1500-1599).
func (t RouteType) IsExtended() bool {
	if t >= 1500 && t < 1600 {
		return false
	}
	return t >= 100 && t < 1800
}

// Valid reports whether t is a classic or supported extended route type.
func (t RouteType) Valid() bool {
	if t >= RouteTram && t <= RouteFunicular {
		return true
	}
	return t.IsExtended()
}

// Route is an immutable transit route record.
type Route struct {
	Handle    RouteHandle
	ID        string
	ShortName string
	Type      RouteType
}
