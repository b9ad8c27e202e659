package dstarlite

import "container/heap"

// queueItem is a vertex held in the open queue together with its key and its
// current slot in the heap slice.
type queueItem[N comparable, W Weight] struct {
	node  N
	key   Priority[W]
	index int
}

// itemHeap is a min-heap of *queueItem ordered by key.
// Swap keeps every item's index in sync so heap.Fix and heap.Remove can
// address an item directly.
type itemHeap[N comparable, W Weight] []*queueItem[N, W]

func (h itemHeap[N, W]) Len() int           { return len(h) }
func (h itemHeap[N, W]) Less(i, j int) bool { return h[i].key.Less(h[j].key) }
func (h itemHeap[N, W]) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
	h[i].index = i
	h[j].index = j
}

// Push appends x; called by heap.Push.
func (h *itemHeap[N, W]) Push(x any) {
	item := x.(*queueItem[N, W])
	item.index = len(*h)
	*h = append(*h, item)
}

// Pop removes the last element; called by heap.Pop.
func (h *itemHeap[N, W]) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	item.index = -1
	*h = old[:n-1]

	return item
}

// openQueue is an addressable priority queue: a binary heap plus a
// vertex → item index, so keys can be changed or removed in O(log n).
type openQueue[N comparable, W Weight] struct {
	items itemHeap[N, W]
	index map[N]*queueItem[N, W]
}

func newOpenQueue[N comparable, W Weight](capacity int) *openQueue[N, W] {
	return &openQueue[N, W]{
		items: make(itemHeap[N, W], 0, capacity),
		index: make(map[N]*queueItem[N, W], capacity),
	}
}

// Len returns the number of queued vertices.
func (q *openQueue[N, W]) Len() int { return len(q.items) }

// contains reports whether n is queued.
func (q *openQueue[N, W]) contains(n N) bool {
	_, ok := q.index[n]
	return ok
}

// push inserts n with key k, or changes its key if n is already queued.
func (q *openQueue[N, W]) push(n N, k Priority[W]) {
	if item, ok := q.index[n]; ok {
		item.key = k
		heap.Fix(&q.items, item.index)
		return
	}
	item := &queueItem[N, W]{node: n, key: k}
	heap.Push(&q.items, item)
	q.index[n] = item
}

// remove drops n from the queue; it is a no-op when n is not queued.
func (q *openQueue[N, W]) remove(n N) {
	item, ok := q.index[n]
	if !ok {
		return
	}
	heap.Remove(&q.items, item.index)
	delete(q.index, n)
}

// peek returns the minimum vertex and its key without removing it.
// ok is false when the queue is empty.
func (q *openQueue[N, W]) peek() (n N, k Priority[W], ok bool) {
	if len(q.items) == 0 {
		return n, k, false
	}
	top := q.items[0]

	return top.node, top.key, true
}

// pop removes and returns the minimum vertex with the key it was queued under.
// The queue must not be empty.
func (q *openQueue[N, W]) pop() (N, Priority[W]) {
	item := heap.Pop(&q.items).(*queueItem[N, W])
	delete(q.index, item.node)

	return item.node, item.key
}
