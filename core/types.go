// Package core defines the central Graph, Vertex, Edge, and Path types
// for routekit, and provides thread-safe primitives for building and
// querying directed weighted graphs.
//
// All mutating and reading APIs share one sync.RWMutex internally, so a
// graph may be assembled from several goroutines. Algorithms treat a
// Graph as read-only for the duration of one computation; no protocol
// exists for mutating a graph mid-search.
//
// This file declares Vertex, Edge, Graph, GraphOption, sentinel errors,
// and the NewGraph constructor.
//
// Errors:
//
//	ErrEmptyVertexID  - vertex ID is the empty string.
//	ErrVertexNotFound - requested vertex does not exist.
//	ErrNegativeCost   - edge cost below zero.
package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates that the provided vertex ID is empty.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrNegativeCost indicates an edge with a negative cost was rejected.
	// Shortest-path computations over this model assume non-negative costs,
	// so the graph refuses to store anything that would violate them.
	ErrNegativeCost = errors.New("core: edge cost must be non-negative")
)

// Vertex represents a node in the graph.
//
// ID uniquely identifies this Vertex within its Graph; all per-vertex
// algorithm state is keyed by it. Metadata stores arbitrary key-value
// data (coordinates, labels) and is never touched by algorithms.
type Vertex struct {
	// ID is the unique identifier for this Vertex.
	ID string

	// Metadata stores arbitrary user data.
	Metadata map[string]interface{}
}

// Edge represents a directed connection between two vertices.
//
// Edges are owned by their Graph and read-only to algorithms: a Path
// and a finder's per-vertex state reference the same *Edge values the
// Graph stores.
type Edge struct {
	// From is the source vertex ID.
	From string

	// To is the destination vertex ID.
	To string

	// Cost is the non-negative traversal cost of the edge.
	Cost float64
}

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithVertexCapacity pre-sizes the internal catalogs for n vertices.
// Purely an allocation hint; n <= 0 is ignored.
func WithVertexCapacity(n int) GraphOption {
	return func(g *Graph) {
		if n > 0 {
			g.vertices = make(map[string]*Vertex, n)
			g.outEdges = make(map[string][]*Edge, n)
		}
	}
}

// Graph is the core in-memory routing graph: directed, weighted,
// non-negative edge costs.
//
// mu protects both the vertex catalog and the adjacency lists.
type Graph struct {
	mu sync.RWMutex

	// vertices maps vertex ID → Vertex.
	vertices map[string]*Vertex

	// outEdges maps source vertex ID → outgoing edges, insertion order.
	outEdges map[string][]*Edge

	// edgeCount tracks the total number of stored edges.
	edgeCount int
}

// NewGraph creates an empty directed weighted Graph.
// Complexity: O(1)
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		vertices: make(map[string]*Vertex),
		outEdges: make(map[string][]*Edge),
	}
	// Apply options
	for _, opt := range opts {
		opt(g)
	}

	return g
}
