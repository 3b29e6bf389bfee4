package search

import "container/heap"

// frontierItem wraps a Visitor with the sequence number it was pushed
// with, so container/heap's sift keeps ties between equal next_event()
// values in FIFO order — deterministic across runs, which the monotone
// frontier property test relies on (grounded on the container/heap
// event-queue pattern used elsewhere in the retrieved pack's bus-arrival
// batch simulation).
type frontierItem struct {
	visitor Visitor
	event   int64
	seq     uint64
}

// frontierQueue is a container/heap min-heap of frontierItem, ordered
// by event then by seq.
type frontierQueue []frontierItem

func (q frontierQueue) Len() int { return len(q) }

func (q frontierQueue) Less(i, j int) bool {
	if q[i].event != q[j].event {
		return q[i].event < q[j].event
	}
	return q[i].seq < q[j].seq
}

func (q frontierQueue) Swap(i, j int) { q[i], q[j] = q[j], q[i] }

func (q *frontierQueue) Push(x any) {
	*q = append(*q, x.(frontierItem))
}

func (q *frontierQueue) Pop() any {
	old := *q
	n := len(old)
	item := old[n-1]
	*q = old[:n-1]
	return item
}

// frontier is the priority queue of visitors keyed by next_event(),
// min-heap (spec.md §4.3 State).
type frontier struct {
	items frontierQueue
	next  uint64
}

func newFrontier() *frontier {
	f := &frontier{}
	heap.Init(&f.items)
	return f
}

func (f *frontier) push(v Visitor) {
	event := v.NextEvent()
	heap.Push(&f.items, frontierItem{visitor: v, event: event, seq: f.next})
	f.next++
}

func (f *frontier) empty() bool { return len(f.items) == 0 }

// peekEvent returns the smallest next_event() currently queued, or
// infinity if empty.
func (f *frontier) peekEvent() int64 {
	if f.empty() {
		return infinity
	}
	return f.items[0].event
}

// pop removes and returns the visitor with the smallest next_event().
func (f *frontier) pop() (Visitor, int64) {
	item := heap.Pop(&f.items).(frontierItem)
	return item.visitor, item.event
}
