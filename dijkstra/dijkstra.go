package dijkstra

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/acmegraph/routekit/core"
)

// PathFinder computes least-cost paths over one core.Graph.
//
// A PathFinder may be reused for any number of sequential FindPath
// calls; each call rebuilds the per-vertex state. It must not be used
// from multiple goroutines at once.
type PathFinder struct {
	graph  *core.Graph // the input graph; read-only during a computation
	nodes  NodeMap     // per-vertex state of the current/last computation
	shared bool        // nodes was injected via WithNodeMap and is reused across runs
}

// New creates a PathFinder over g.
// Returns ErrNilGraph when g is nil.
func New(g *core.Graph, opts ...Option) (*PathFinder, error) {
	if g == nil {
		return nil, ErrNilGraph
	}

	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	return &PathFinder{
		graph:  g,
		nodes:  cfg.Nodes,
		shared: cfg.Nodes != nil,
	}, nil
}

// FindPath computes the cheapest route from origin to destination and
// returns it as an ordered edge sequence.
//
// The loop pops the globally cheapest unvisited reachable vertex from
// the heap and relaxes its outgoing edges; it returns when the
// destination itself is popped, at which point its cost is final under
// non-negative weights. When the heap drains without the destination
// ever being reached, FindPath fails with a wrapped ErrPathNotFound
// naming both endpoints.
//
// Note: FindPath(v, v) fails with ErrPathNotFound, because relaxation
// never sets a reaching edge for the origin; equal endpoints do not
// yield an empty path (see the package documentation).
//
// Complexity: O((V + E) log V) time, O(V + E) space.
func (f *PathFinder) FindPath(origin, destination string) (*core.Path, error) {
	// 1) Validate endpoints against the graph.
	if !f.graph.HasVertex(origin) {
		return nil, fmt.Errorf("%w: origin %q", ErrVertexNotFound, origin)
	}
	if !f.graph.HasVertex(destination) {
		return nil, fmt.Errorf("%w: destination %q", ErrVertexNotFound, destination)
	}

	// 2) Build per-vertex state seeded at the origin and seed the heap.
	pq := f.initState(origin)

	// 3) Main loop: select, relax, check destination.
	for pq.Len() > 0 {
		item := heap.Pop(&pq).(*queueItem)

		// Skip stale heap entries for already-finalized vertices
		// (lazy decrease-key leaves duplicates behind).
		if f.nodes[item.id].Visited {
			continue
		}

		// The destination popped as the global minimum: its cost is
		// final, no relaxation of its own edges is needed. A nil
		// reaching edge here means the destination is the origin
		// itself, which never counts as found.
		if item.id == destination && f.nodes[destination].ReachingEdge != nil {
			return f.buildPath(destination), nil
		}

		// Relax the selected vertex's outgoing edges and finalize it.
		if err := f.visit(item.id, &pq); err != nil {
			return nil, err
		}
	}

	// 4) No selectable vertex left and the destination was never reached.
	return nil, fmt.Errorf("%w: no route from %q to %q", ErrPathNotFound, origin, destination)
}

// NodeState returns the per-vertex state recorded for id by the most
// recent FindPath call: tentative cost, reaching edge, visited flag.
// Returns nil for an unknown id or before any computation has run.
func (f *PathFinder) NodeState(id string) *PathNode {
	return f.nodes[id]
}

// initState produces one PathNode per graph vertex: cost 0 for the
// origin, +Inf for every other vertex, no reaching edge, not visited.
// Unreachable vertices keep +Inf and are simply never selected.
//
// A fresh NodeMap is allocated per call unless one was injected via
// WithNodeMap, in which case its entries are overwritten in place.
// Returns the selection heap, seeded with the origin at cost 0.
func (f *PathFinder) initState(origin string) nodeQueue {
	vertices := f.graph.Vertices()

	if !f.shared {
		f.nodes = make(NodeMap, len(vertices))
	}
	for _, id := range vertices {
		f.nodes[id] = &PathNode{Cost: math.Inf(1)}
	}
	f.nodes[origin].Cost = 0

	pq := make(nodeQueue, 0, len(vertices))
	heap.Init(&pq)
	heap.Push(&pq, &queueItem{id: origin, cost: 0})

	return pq
}

// visit relaxes every outgoing edge of the selected vertex id: a
// strictly cheaper candidate cost updates the target's Cost and
// ReachingEdge and pushes a heap entry. The vertex is then marked
// visited. A vertex with zero outgoing edges is a no-op relaxation but
// is still finalized.
func (f *PathFinder) visit(id string, pq *nodeQueue) error {
	out, err := f.graph.OutEdges(id)
	if err != nil {
		return fmt.Errorf("dijkstra: failed to get outgoing edges of %q: %w", id, err)
	}

	base := f.nodes[id].Cost
	for _, e := range out {
		target := f.nodes[e.To]
		candidate := base + e.Cost
		if candidate < target.Cost {
			target.Cost = candidate
			target.ReachingEdge = e
			// Lazy decrease-key: push a duplicate, stale entries are
			// skipped on pop via the Visited flag.
			heap.Push(pq, &queueItem{id: e.To, cost: candidate})
		}
	}

	f.nodes[id].Visited = true

	return nil
}

// buildPath reconstructs the route by walking reaching edges backward
// from the destination until the chain terminates at the origin (whose
// ReachingEdge is nil), then reverses the sequence into
// origin→destination order.
func (f *PathFinder) buildPath(destination string) *core.Path {
	var edges []*core.Edge
	for e := f.nodes[destination].ReachingEdge; e != nil; e = f.nodes[e.From].ReachingEdge {
		edges = append(edges, e)
	}

	// Collected destination→origin; reverse in place.
	for i, j := 0, len(edges)-1; i < j; i, j = i+1, j-1 {
		edges[i], edges[j] = edges[j], edges[i]
	}

	return core.NewPath(edges)
}

// queueItem pairs a vertex ID with the tentative cost it was pushed at.
type queueItem struct {
	id   string
	cost float64
}

// nodeQueue is a min-heap of *queueItem ordered by cost ascending,
// operated through container/heap.
type nodeQueue []*queueItem

func (pq nodeQueue) Len() int { return len(pq) }

// Less orders items by tentative cost; the cheapest vertex pops first.
func (pq nodeQueue) Less(i, j int) bool { return pq[i].cost < pq[j].cost }

func (pq nodeQueue) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push appends x, which container/heap guarantees is a *queueItem.
func (pq *nodeQueue) Push(x interface{}) { *pq = append(*pq, x.(*queueItem)) }

// Pop hands the last element back to container/heap, which has already
// swapped the minimum into that slot.
func (pq *nodeQueue) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
