package core

import "sort"

// AddVertex inserts a vertex if missing (idempotent).
// Returns ErrEmptyVertexID when id is "".
// Complexity: O(1) amortized.
func (g *Graph) AddVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	g.ensureVertex(id)

	return nil
}

// ensureVertex registers id in the catalogs if absent.
// Caller must hold g.mu for writing.
func (g *Graph) ensureVertex(id string) {
	if _, exists := g.vertices[id]; exists {
		return
	}
	g.vertices[id] = &Vertex{ID: id, Metadata: make(map[string]interface{})}
	g.outEdges[id] = nil
}

// AddEdge stores a directed edge from→to with the given cost and
// returns it. Missing endpoints are created on the fly, so a graph can
// be assembled from edges alone.
//
// Errors:
//   - ErrEmptyVertexID if either endpoint ID is "".
//   - ErrNegativeCost if cost < 0.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to string, cost float64) (*Edge, error) {
	if from == "" || to == "" {
		return nil, ErrEmptyVertexID
	}
	if cost < 0 {
		return nil, ErrNegativeCost
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	// Auto-create endpoints, then append to the source adjacency list.
	g.ensureVertex(from)
	g.ensureVertex(to)

	e := &Edge{From: from, To: to, Cost: cost}
	g.outEdges[from] = append(g.outEdges[from], e)
	g.edgeCount++

	return e, nil
}

// HasVertex reports whether the vertex ID exists (empty ID ⇒ false).
// Complexity: O(1).
func (g *Graph) HasVertex(id string) bool {
	if id == "" {
		return false
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.vertices[id]

	return ok
}

// VertexByID returns the Vertex registered under id.
// Returns ErrVertexNotFound when id is absent (or empty).
// Complexity: O(1).
func (g *Graph) VertexByID(id string) (*Vertex, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	v, ok := g.vertices[id]
	if !ok {
		return nil, ErrVertexNotFound
	}

	return v, nil
}

// Vertices returns all vertex IDs in lexicographic ascending order.
// The stable enumeration keeps higher-level algorithms reproducible.
// Complexity: O(V log V).
func (g *Graph) Vertices() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	ids := make([]string, 0, len(g.vertices))
	for id := range g.vertices {
		ids = append(ids, id)
	}

	sort.Strings(ids)

	return ids
}

// OutEdges returns the outgoing edges of id in insertion order.
// The returned slice is a copy; the *Edge values are the live stored
// edges and must be treated as read-only.
// Returns ErrVertexNotFound when id is absent.
// Complexity: O(deg(id)).
func (g *Graph) OutEdges(id string) ([]*Edge, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if _, ok := g.vertices[id]; !ok {
		return nil, ErrVertexNotFound
	}

	edges := g.outEdges[id]
	out := make([]*Edge, len(edges))
	copy(out, edges)

	return out, nil
}

// VertexCount returns the current number of vertices.
// Complexity: O(1).
func (g *Graph) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.vertices)
}

// EdgeCount returns the current number of edges.
// Complexity: O(1).
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edgeCount
}
