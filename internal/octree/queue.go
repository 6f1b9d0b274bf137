package octree

import "container/heap"

// Queue is a priority queue of boxes ordered by Compare.
type Queue struct {
	items boxes
}

// Len returns the number of queued boxes.
func (q *Queue) Len() int { return len(q.items) }

// Push adds a box.
func (q *Queue) Push(b Box) { heap.Push(&q.items, b) }

// Pop removes and returns the highest-priority box.
func (q *Queue) Pop() (Box, bool) {
	if len(q.items) == 0 {
		return Box{}, false
	}
	return heap.Pop(&q.items).(Box), true
}

// Peek returns the highest-priority box without removing it.
func (q *Queue) Peek() (Box, bool) {
	if len(q.items) == 0 {
		return Box{}, false
	}
	return q.items[0], true
}

type boxes []Box

func (h boxes) Len() int           { return len(h) }
func (h boxes) Less(i, j int) bool { return Compare(h[i], h[j]) < 0 }
func (h boxes) Swap(i, j int)      { h[i], h[j] = h[j], h[i] }

func (h *boxes) Push(x interface{}) {
	*h = append(*h, x.(Box))
}

func (h *boxes) Pop() interface{} {
	old := *h
	n := len(old)
	x := old[n-1]
	*h = old[:n-1]
	return x
}
