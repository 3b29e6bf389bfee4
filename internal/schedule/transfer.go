package schedule

// TransferMode selects how walking transfer edges between stops are
// materialised (spec.md §6.2 TRANSFER_MODE).
type TransferMode int

const (
	TransferByNodeID TransferMode = iota
	TransferByParentStation
	TransferByTransfersTxt
	TransferNone
)

// ParseTransferMode parses the TRANSFER_MODE config value.
func ParseTransferMode(s string) (TransferMode, bool) {
	switch s {
	case "by_node_id":
		return TransferByNodeID, true
	case "by_parent_station":
		return TransferByParentStation, true
	case "by_transfers_txt":
		return TransferByTransfersTxt, true
	case "none":
		return TransferNone, true
	default:
		return 0, false
	}
}

func (m TransferMode) String() string {
	switch m {
	case TransferByNodeID:
		return "by_node_id"
	case TransferByParentStation:
		return "by_parent_station"
	case TransferByTransfersTxt:
		return "by_transfers_txt"
	case TransferNone:
		return "none"
	default:
		return "unknown"
	}
}

// TransferRecord is a single row parsed from transfers.txt, kept only
// when used in TransferByTransfersTxt mode. HasQualifier marks a row
// carrying a trip/route qualifier; the index materialises no edge for
// such rows (spec.md §9 Open Question: qualified records are ignored
// outright).
type TransferRecord struct {
	From            StopHandle
	To              StopHandle
	MinTransferSecs int32
	HasQualifier    bool
}
