package dijkstra

import (
	"container/heap"
	"fmt"
)

// Dijkstra computes shortest distances from source to every vertex reachable
// through the neighbours function. The graph is never materialised; vertices
// are discovered on demand, as with the planner's terrain oracle.
//
// Returns:
//
//   - dist: map from vertex to minimum distance. Vertices absent from the map
//     were never reached; use Distance to read it with Unreachable as default.
//   - prev: predecessor map if ReturnPath=true (nil otherwise).
//     prev[v] == u means the shortest path to v goes through u.
//   - err:  ErrNilNeighbors, or ErrNegativeWeight wrapped with the offending arc.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E)
func Dijkstra[N comparable](source N, neighbors func(N) []Arc[N], opts ...Option) (map[N]int64, map[N]N, error) {
	// 1) Build Options.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate the oracle.
	if neighbors == nil {
		return nil, nil, ErrNilNeighbors
	}

	// 3) Prepare runner state. prev is allocated only when requested.
	r := &runner[N]{
		neighbors: neighbors,
		options:   cfg,
		dist:      make(map[N]int64),
		visited:   make(map[N]bool),
		pq:        make(nodePQ[N], 0, 16),
	}
	if cfg.ReturnPath {
		r.prev = make(map[N]N)
	}

	// 4) Seed and run the main loop.
	r.init(source)
	if err := r.process(); err != nil {
		return nil, nil, err
	}

	return r.dist, r.prev, nil
}

// Distance reads dist[v], reporting Unreachable for vertices never reached.
func Distance[N comparable](dist map[N]int64, v N) int64 {
	if d, ok := dist[v]; ok {
		return d
	}

	return Unreachable
}

// PathTo rebuilds the path source → … → target from a predecessor map.
// It returns nil when target was not reached.
func PathTo[N comparable](prev map[N]N, source, target N) []N {
	path := []N{target}
	for cur := target; cur != source; {
		p, ok := prev[cur]
		if !ok {
			return nil
		}
		path = append(path, p)
		cur = p
	}
	// reverse into source-first order
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}

// runner holds the mutable state for a single Dijkstra execution.
type runner[N comparable] struct {
	neighbors func(N) []Arc[N] // The graph oracle; read-only within Dijkstra.
	options   Options          // Configuration options (thresholds, etc.).
	dist      map[N]int64      // Maps vertex → current best distance from source.
	prev      map[N]N          // Maps vertex → predecessor on the shortest path.
	visited   map[N]bool       // Tracks if a vertex's distance is finalized.
	pq        nodePQ[N]        // Min-heap of *nodeItem for lazy priority queue.
}

// init sets the source distance to zero and pushes it into the heap.
func (r *runner[N]) init(source N) {
	r.dist[source] = 0
	heap.Init(&r.pq)
	heap.Push(&r.pq, &nodeItem[N]{id: source, dist: 0})
}

// process is the core loop. It repeatedly extracts the vertex with the minimum
// distance and relaxes its outgoing arcs, until the heap is empty or the
// minimum exceeds MaxDistance.
func (r *runner[N]) process() error {
	for r.pq.Len() > 0 {
		// 1) Pop the smallest-distance item from the heap.
		item := heap.Pop(&r.pq).(*nodeItem[N])
		u, d := item.id, item.dist

		// 2) Skip stale heap entries of finalized vertices.
		if r.visited[u] {
			continue
		}

		// 3) Stop once everything left is beyond MaxDistance.
		if d > r.options.MaxDistance {
			break
		}

		// 4) Finalize u and relax its arcs.
		r.visited[u] = true
		if err := r.relax(u); err != nil {
			return err
		}
	}

	return nil
}

// relax tries to improve the distance of every neighbour of u.
// Assumes r.dist[u] is finalized before calling relax(u).
func (r *runner[N]) relax(u N) error {
	for _, a := range r.neighbors(u) {
		// Impassable arcs are skipped entirely.
		if a.Weight >= r.options.InfEdgeThreshold {
			continue
		}
		if a.Weight < 0 {
			return fmt.Errorf("%w: edge %v→%v weight=%d", ErrNegativeWeight, u, a.To, a.Weight)
		}

		// Checked before adding so the sum cannot overflow.
		if a.Weight > r.options.MaxDistance-r.dist[u] {
			continue
		}
		newDist := r.dist[u] + a.Weight
		// Strictly better only; equal distances keep the first predecessor.
		if newDist >= Distance(r.dist, a.To) {
			continue
		}

		r.dist[a.To] = newDist
		if r.prev != nil {
			r.prev[a.To] = u
		}
		// Lazy decrease-key: the old entry stays and is skipped when popped.
		heap.Push(&r.pq, &nodeItem[N]{id: a.To, dist: newDist})
	}

	return nil
}

// nodeItem represents a vertex and its current distance from the source.
type nodeItem[N comparable] struct {
	id   N     // vertex
	dist int64 // distance from source
}

// nodePQ is a min-heap of *nodeItem ordered by dist ascending.
type nodePQ[N comparable] []*nodeItem[N]

// Len returns the number of items in the heap.
func (pq nodePQ[N]) Len() int { return len(pq) }

// Less defines the comparison: smaller dist → higher priority.
func (pq nodePQ[N]) Less(i, j int) bool { return pq[i].dist < pq[j].dist }

// Swap swaps two elements in the heap.
func (pq nodePQ[N]) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap. Called by heap.Push.
func (pq *nodePQ[N]) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem[N])) }

// Pop removes and returns the smallest element from the heap. Called by heap.Pop.
func (pq *nodePQ[N]) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
