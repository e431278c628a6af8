package huffman

import (
	"container/heap"
)

// nodeQueue is a min-priority queue of tree nodes keyed by weight.
//
// Entries of equal weight are removed in the order they were inserted.
// Both Compress and Decompress depend on this rule to build bit-for-bit
// identical trees from the same FrequencyTable.
//
type nodeQueue struct {
	h       queueHeap
	nextSeq uint64
}

// Push inserts a node with the given weight as its priority.
func (q *nodeQueue) Push(id NodeID, weight uint64) {
	heap.Push(&q.h, queueEntry{id: id, weight: weight, seq: q.nextSeq})
	q.nextSeq++
}

// PopMin removes and returns the entry with the lowest weight.
func (q *nodeQueue) PopMin() (NodeID, uint64) {
	entry := heap.Pop(&q.h).(queueEntry)
	return entry.id, entry.weight
}

// Len returns the number of entries in the queue.
func (q *nodeQueue) Len() int {
	return q.h.Len()
}

// type queueEntry + type queueHeap {{{

type queueEntry struct {
	id     NodeID
	weight uint64
	seq    uint64
}

type queueHeap struct {
	list []queueEntry
}

func (h *queueHeap) Len() int {
	return len(h.list)
}

func (h *queueHeap) Swap(i, j int) {
	h.list[i], h.list[j] = h.list[j], h.list[i]
}

func (h *queueHeap) Less(i, j int) bool {
	a, b := h.list[i], h.list[j]
	if a.weight != b.weight {
		return a.weight < b.weight
	}
	return a.seq < b.seq
}

func (h *queueHeap) Push(x interface{}) {
	h.list = append(h.list, x.(queueEntry))
}

func (h *queueHeap) Pop() interface{} {
	last := uint(len(h.list)) - 1
	x := h.list[last]
	h.list[last] = queueEntry{}
	h.list = h.list[:last]
	return x
}

var _ heap.Interface = (*queueHeap)(nil)

// }}}
