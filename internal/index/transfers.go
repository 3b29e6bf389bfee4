package index

import "github.com/aleksanderv/transitquery/internal/schedule"

// buildTransfers materialises transfersByStop per the configured
// TransferMode (SPEC_FULL.md §4.1). Every mode yields the reflexive
// self-transfer at each stop with weight 0, so boarding another trip at
// the same stop is uniformly modelled as a zero-cost transfer
// (schedule invariant 3).
func (d *Dataset) buildTransfers() {
	n := d.sched.NumStops()
	d.transfersByStop = make([][]TransferEdge, n)
	for i := 0; i < n; i++ {
		h := schedule.StopHandle(i)
		d.transfersByStop[i] = append(d.transfersByStop[i], TransferEdge{To: h, Seconds: 0})
	}

	switch d.sched.TransferMode() {
	case schedule.TransferByNodeID:
		d.buildGroupedTransfers(func(s schedule.Stop) string { return s.NodeID })
	case schedule.TransferByParentStation:
		d.buildGroupedTransfers(func(s schedule.Stop) string {
			if s.ParentStation == schedule.NoStop {
				return ""
			}
			ps, err := d.sched.StopByHandle(s.ParentStation)
			if err != nil {
				return ""
			}
			return ps.ID
		})
	case schedule.TransferByTransfersTxt:
		d.buildTransfersTxt()
	case schedule.TransferNone:
		// only the reflexive self-edge, already added above.
	}
}

// buildGroupedTransfers implements the by_node_id / by_parent_station
// modes: group stops by a key, link every pair of stops sharing a
// non-empty key with a symmetric edge weighted at the configured
// minimum transfer time (schedule invariant 3: an equivalence relation
// over stops sharing the key).
func (d *Dataset) buildGroupedTransfers(keyOf func(schedule.Stop) string) {
	groups := map[string][]schedule.StopHandle{}
	for _, s := range d.sched.AllStops() {
		key := keyOf(s)
		if key == "" {
			continue
		}
		groups[key] = append(groups[key], s.Handle)
	}
	weight := d.sched.MinTransferSeconds()
	for _, members := range groups {
		if len(members) < 2 {
			continue
		}
		for _, from := range members {
			for _, to := range members {
				if from == to {
					continue
				}
				d.transfersByStop[from] = append(d.transfersByStop[from], TransferEdge{To: to, Seconds: weight})
			}
		}
	}
}

// buildTransfersTxt implements by_transfers_txt: only unqualified
// records are honoured (spec.md §9 Open Question, preserved), and the
// recorded minimum is widened to the configured floor when higher.
func (d *Dataset) buildTransfersTxt() {
	floor := d.sched.MinTransferSeconds()
	for _, rec := range d.sched.TransferRecords() {
		if rec.HasQualifier {
			continue
		}
		secs := rec.MinTransferSecs
		if secs < floor {
			secs = floor
		}
		d.transfersByStop[rec.From] = append(d.transfersByStop[rec.From], TransferEdge{To: rec.To, Seconds: secs})
	}
}

// TransfersFrom returns the outgoing transfer edges of stop h, in the
// order materialised (self-edge first).
func (d *Dataset) TransfersFrom(h schedule.StopHandle) []TransferEdge {
	if int(h) < 0 || int(h) >= len(d.transfersByStop) {
		return nil
	}
	return d.transfersByStop[h]
}
