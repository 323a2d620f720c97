package kk

import "container/heap"

// int64Heap is the container/heap adapter behind MaxHeap.
// Less is inverted (larger value → higher priority) to obtain a max-heap.
type int64Heap []int64

// Len returns the number of items in the heap.
func (h int64Heap) Len() int { return len(h) }

// Less orders larger values first.
func (h int64Heap) Less(i, j int) bool { return h[i] > h[j] }

// Swap swaps two elements in the heap.
func (h int64Heap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

// Push appends x; called by heap.Push only.
func (h *int64Heap) Push(x interface{}) { *h = append(*h, x.(int64)) }

// Pop removes the last element; called by heap.Pop only.
func (h *int64Heap) Pop() interface{} {
	old := *h
	n := len(old)
	v := old[n-1]
	*h = old[:n-1]

	return v
}

// MaxHeap is a priority queue of int64 values ordered largest first.
//
// It is not safe for concurrent use.
type MaxHeap struct {
	h int64Heap
}

// NewMaxHeap builds a heap over vals in O(n). The heap takes ownership of the
// backing array of vals; callers that need their slice intact must copy first.
func NewMaxHeap(vals []int64) *MaxHeap {
	m := &MaxHeap{h: int64Heap(vals)}
	heap.Init(&m.h)

	return m
}

// Len returns the number of values in the heap.
func (m *MaxHeap) Len() int { return m.h.Len() }

// Insert adds v to the heap in O(log n).
func (m *MaxHeap) Insert(v int64) { heap.Push(&m.h, v) }

// ExtractMax removes and returns the largest value in O(log n).
// The second result is false when the heap is empty.
func (m *MaxHeap) ExtractMax() (int64, bool) {
	if m.h.Len() == 0 {
		return 0, false
	}

	return heap.Pop(&m.h).(int64), true
}

// Peek returns the largest value without removing it.
func (m *MaxHeap) Peek() (int64, bool) {
	if m.h.Len() == 0 {
		return 0, false
	}

	return m.h[0], true
}
