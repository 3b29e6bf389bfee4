package schedule

// Stop is an immutable transit stop record.
type Stop struct {
	Handle StopHandle
	ID     string
	Name   string

	// ParentStation is NoStop when this stop has no parent.
	ParentStation StopHandle

	// NodeID is the configured node-group column value (see
	// TRANSFER_NODE_ID) used by the by_node_id transfer mode. Empty when
	// the dataset does not carry that column or the row left it blank.
	NodeID string
}
