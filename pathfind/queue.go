package pathfind

// nodeItem is one open cell in the priority queue.
type nodeItem struct {
	idx      int     // row-major cell index
	priority float64 // energy + heuristic, fixed on entry
	seq      int     // open-set insertion order, breaks ties
}

// nodePQ is a min-heap of *nodeItem ordered by (priority, seq).
type nodePQ []*nodeItem

// Len returns the number of items in the heap.
func (pq nodePQ) Len() int { return len(pq) }

// Less orders by priority, then by insertion sequence.
func (pq nodePQ) Less(i, j int) bool {
	if pq[i].priority != pq[j].priority {
		return pq[i].priority < pq[j].priority
	}

	return pq[i].seq < pq[j].seq
}

// Swap exchanges two items.
func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push appends an item. Used by heap.Push.
func (pq *nodePQ) Push(x interface{}) {
	*pq = append(*pq, x.(*nodeItem))
}

// Pop removes the last item. Used by heap.Pop.
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return item
}
