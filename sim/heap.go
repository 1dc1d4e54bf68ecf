// Comparator-driven binary heap used for the job queue, the waiting queue,
// and the SJF/priority ready disciplines.

package sim

import "container/heap"

// PriorityQueue is a min-heap of processes under a pluggable Comparator.
// Peek returns the unique minimal element under the comparator; Push and Pop
// are O(log n). The zero value is not usable; construct with
// NewPriorityQueue so the comparator is bound once.
type PriorityQueue struct {
	h processHeap
}

// NewPriorityQueue creates an empty queue ordered by better. The comparator
// must be a strict total order; the stock comparators in process.go all
// break ties by PID to guarantee that.
func NewPriorityQueue(better Comparator) *PriorityQueue {
	return &PriorityQueue{h: processHeap{better: better}}
}

// Push inserts p, maintaining the heap invariant.
func (pq *PriorityQueue) Push(p *Process) {
	heap.Push(&pq.h, p)
}

// Pop removes and returns the top process, or ErrEmptyQueue if the queue is
// empty.
func (pq *PriorityQueue) Pop() (*Process, error) {
	if len(pq.h.items) == 0 {
		return nil, ErrEmptyQueue
	}
	return heap.Pop(&pq.h).(*Process), nil
}

// Peek returns the top process without removing it, or nil if empty.
func (pq *PriorityQueue) Peek() *Process {
	if len(pq.h.items) == 0 {
		return nil
	}
	return pq.h.items[0]
}

// Len returns the number of processes in the queue.
func (pq *PriorityQueue) Len() int {
	return len(pq.h.items)
}

// Better reports whether a precedes b under this queue's comparator. The
// engine's preemption check compares the ready top against the running
// process with the ready queue's own ordering.
func (pq *PriorityQueue) Better(a, b *Process) bool {
	return pq.h.better(a, b)
}

// Items returns the underlying storage in heap order (top first, remainder
// unordered). Callers may iterate but must not grow or shrink the slice; the
// engine's aging pass is the intended consumer.
func (pq *PriorityQueue) Items() []*Process {
	return pq.h.items
}

// processHeap adapts a comparator-ordered process slice to heap.Interface.
// The original implementation kept a pointer-linked tree and located the next
// structural slot by walking the bit pattern of the node count; a flat slice
// with index arithmetic does the same job with O(1) slot lookup.
type processHeap struct {
	items  []*Process
	better Comparator
}

func (h processHeap) Len() int           { return len(h.items) }
func (h processHeap) Less(i, j int) bool { return h.better(h.items[i], h.items[j]) }
func (h processHeap) Swap(i, j int)      { h.items[i], h.items[j] = h.items[j], h.items[i] }

func (h *processHeap) Push(x any) {
	h.items = append(h.items, x.(*Process))
}

func (h *processHeap) Pop() any {
	old := h.items
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	h.items = old[:n-1]
	return item
}
