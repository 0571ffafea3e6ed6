// Package dijkstra provides a least-cost path finder over a core.Graph,
// returning the ordered edge sequence of the cheapest route between an
// origin and a destination.
//
// What
//
//   - PathFinder computes a single-origin, single-destination shortest
//     path over a directed graph with non-negative edge costs.
//   - Returns a *core.Path: the edges of the cheapest route in
//     origin→destination order, with EdgeAt/Size/TotalCost accessors.
//   - Per-vertex algorithm state (tentative cost, reaching edge, visited
//     flag) is kept in a NodeMap and can be inspected after a run via
//     NodeState, or shared across sequential runs via WithNodeMap.
//
// Why
//
//   - A routing primitive: the building block under turn-by-turn
//     routing, isochrone sweeps, and reachability analysis.
//   - The state map is deliberately exposed so algorithms layered on
//     top can reuse one computation's costs instead of starting over.
//
// Vertex selection
//
//	Vertices are selected through a binary min-heap keyed by tentative
//	cost, with lazy deletion: relaxation pushes duplicates and stale
//	entries are skipped on pop once their vertex is visited. Selection
//	therefore always yields the globally cheapest unvisited reachable
//	vertex, which is what makes the early termination below sound.
//
// Early termination
//
//	FindPath returns as soon as the destination is popped from the
//	heap, without relaxing the destination's own outgoing edges or
//	finalizing the rest of the graph. A vertex's tentative cost is
//	final only once it is popped as the global minimum, so the path
//	built at that moment is optimal under non-negative costs; merely
//	having a reaching edge set is not enough, since a cheaper route
//	may still be mid-relaxation.
//
// Known quirk
//
//	FindPath(v, v) fails with ErrPathNotFound: no relaxation ever sets
//	a reaching edge for the origin, so equal endpoints never produce an
//	empty zero-cost path. Callers that want the trivial path must
//	special-case equal endpoints themselves.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - Time:  O((V + E) log V)   (each vertex popped at most once, each
//     relaxation may push one heap entry)
//   - Space: O(V + E)           (NodeMap plus worst-case heap under
//     lazy decrease-key)
//
// Usage
//
//	g := core.NewGraph()
//	g.AddEdge("a", "b", 1)
//	g.AddEdge("b", "c", 1)
//
//	finder, err := dijkstra.New(g)
//	if err != nil { /* ErrNilGraph */ }
//
//	path, err := finder.FindPath("a", "c")
//	if err != nil { /* ErrVertexNotFound or ErrPathNotFound */ }
//	fmt.Println(path.Size(), path.TotalCost()) // 2 2
//
// Errors
//
//   - ErrNilGraph        if New receives a nil graph.
//   - ErrVertexNotFound  if an endpoint is absent from the graph
//     (wrapped with the offending ID).
//   - ErrPathNotFound    if no route exists from origin to destination
//     (wrapped with both IDs).
//
// The graph must be fully assembled before FindPath and not mutated
// during it; edge costs must be non-negative (core.Graph enforces this
// at construction). A PathFinder is not safe for concurrent FindPath
// calls: its state map is mutated in place.
package dijkstra
