package huffman

import (
	"bytes"
	"container/heap"
	"fmt"
	"io"
	"sort"

	"github.com/chronos-tachyon/assert"
)

// Handle identifies one entry in a PriorityQueue.  Handles are issued by
// Insert and are never reused by the same queue.
type Handle uint32

// PriorityQueue is a min-priority queue of tree nodes, ordered by ascending
// frequency.  Entries with equal frequency come out in insertion order.
//
// Entries live in an arena addressed by Handle, so that removal always names
// one specific entry rather than searching for a matching value.
//
type PriorityQueue struct {
	entries []queueEntry
	h       entryHeap
}

type queueEntry struct {
	node NodeID
	freq uint64
	pos  int
}

// NewPriorityQueue returns an empty PriorityQueue with room for sizeHint
// entries.
func NewPriorityQueue(sizeHint int) *PriorityQueue {
	q := &PriorityQueue{
		entries: make([]queueEntry, 0, sizeHint),
	}
	q.h = entryHeap{q: q, list: make([]Handle, 0, sizeHint)}
	return q
}

// Len returns the number of entries currently in the queue.
func (q *PriorityQueue) Len() int {
	return len(q.h.list)
}

// Insert adds a node with the given frequency and returns its Handle.
func (q *PriorityQueue) Insert(node NodeID, freq uint64) Handle {
	h := Handle(len(q.entries))
	q.entries = append(q.entries, queueEntry{node: node, freq: freq, pos: -1})
	heap.Push(&q.h, h)
	return h
}

// Min returns the Handle of the lowest-frequency entry without removing it.
func (q *PriorityQueue) Min() (Handle, bool) {
	if len(q.h.list) == 0 {
		return 0, false
	}
	return q.h.list[0], true
}

// Remove removes the entry identified by h and returns its node.
func (q *PriorityQueue) Remove(h Handle) (NodeID, error) {
	if uint64(h) >= uint64(len(q.entries)) {
		return NoNode, fmt.Errorf("%w: handle %d was never issued", ErrAmbiguousQueueRemoval, h)
	}
	entry := &q.entries[h]
	if entry.pos < 0 {
		return NoNode, fmt.Errorf("%w: handle %d was already removed", ErrAmbiguousQueueRemoval, h)
	}
	removed := heap.Remove(&q.h, entry.pos).(Handle)
	assert.Assertf(removed == h, "heap removed handle %d, expected %d", removed, h)
	return entry.node, nil
}

// ExtractTwoSmallest removes the two lowest-frequency entries and returns
// their nodes, lowest first.
func (q *PriorityQueue) ExtractTwoSmallest() (a NodeID, b NodeID, err error) {
	if q.Len() < 2 {
		return NoNode, NoNode, fmt.Errorf("%w: need 2 entries, have %d", ErrQueueUnderflow, q.Len())
	}
	ha := heap.Pop(&q.h).(Handle)
	hb := heap.Pop(&q.h).(Handle)
	return q.entries[ha].node, q.entries[hb].node, nil
}

// Dump writes a programmer-readable debugging dump of the queue's current
// state to the given writer, in extraction order.
func (q *PriorityQueue) Dump(w io.Writer) (int64, error) {
	sorted := make([]Handle, len(q.h.list))
	copy(sorted, q.h.list)
	sort.Slice(sorted, func(i, j int) bool {
		return q.less(sorted[i], sorted[j])
	})

	var buf bytes.Buffer
	buf.WriteString("PriorityQueue{\n")
	for _, h := range sorted {
		entry := q.entries[h]
		fmt.Fprintf(&buf, "\t#%d: node %d, freq %d\n", h, entry.node, entry.freq)
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}

func (q *PriorityQueue) less(i, j Handle) bool {
	a, b := q.entries[i], q.entries[j]
	if a.freq != b.freq {
		return a.freq < b.freq
	}
	return i < j
}

// type entryHeap {{{

type entryHeap struct {
	q    *PriorityQueue
	list []Handle
}

func (h *entryHeap) Len() int {
	return len(h.list)
}

func (h *entryHeap) Swap(i, j int) {
	h.list[i], h.list[j] = h.list[j], h.list[i]
	h.q.entries[h.list[i]].pos = i
	h.q.entries[h.list[j]].pos = j
}

func (h *entryHeap) Less(i, j int) bool {
	return h.q.less(h.list[i], h.list[j])
}

func (h *entryHeap) Push(x interface{}) {
	handle := x.(Handle)
	h.q.entries[handle].pos = len(h.list)
	h.list = append(h.list, handle)
}

func (h *entryHeap) Pop() interface{} {
	last := len(h.list) - 1
	x := h.list[last]
	h.list = h.list[:last]
	h.q.entries[x].pos = -1
	return x
}

var _ heap.Interface = (*entryHeap)(nil)

// }}}
