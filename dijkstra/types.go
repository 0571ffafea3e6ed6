// Package dijkstra defines the state types and configuration options
// for the least-cost PathFinder.
package dijkstra

import (
	"errors"

	"github.com/acmegraph/routekit/core"
)

// Sentinel errors returned by the PathFinder.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed to New.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrVertexNotFound indicates that an origin or destination vertex
	// does not exist in the graph.
	ErrVertexNotFound = errors.New("dijkstra: vertex not found")

	// ErrPathNotFound indicates that every reachable vertex was visited
	// without the destination ever being reached.
	ErrPathNotFound = errors.New("dijkstra: path not found")
)

// PathNode is the per-vertex state of one shortest-path computation.
//
// Invariant: once Visited is true, Cost is final and equals the true
// least cost from the origin to this vertex.
type PathNode struct {
	// Cost is the tentative least cost from the origin to this vertex.
	// math.Inf(1) until the vertex is first reached; 0 for the origin.
	Cost float64

	// ReachingEdge is the edge whose relaxation last improved Cost.
	// nil for the origin and for unreached vertices.
	ReachingEdge *core.Edge

	// Visited reports whether this vertex has been finalized, i.e. its
	// outgoing edges relaxed.
	Visited bool
}

// NodeMap holds per-vertex computation state keyed by vertex ID.
//
// FindPath (re)initializes an entry for every vertex of the graph, so a
// map injected via WithNodeMap is reset at the start of each run and
// left in place afterwards for inspection. Sharing a NodeMap between
// concurrent computations is the caller's responsibility; the finder
// does no locking of its own.
type NodeMap map[string]*PathNode

// Options configures a PathFinder.
//
// Nodes – optional externally owned state map. nil (the default) makes
// FindPath allocate a fresh map per computation.
type Options struct {
	Nodes NodeMap
}

// Option represents a functional option for configuring a PathFinder.
type Option func(*Options)

// WithNodeMap injects an externally owned NodeMap to hold per-vertex
// state, enabling reuse across related sequential computations (e.g.
// keeping cost state around for an isochrone built on several runs).
// A nil map is ignored and the default per-run allocation applies.
func WithNodeMap(m NodeMap) Option {
	return func(o *Options) {
		if m != nil {
			o.Nodes = m
		}
	}
}

// DefaultOptions returns the Options used when no Option overrides are
// supplied: no injected state map.
func DefaultOptions() Options {
	return Options{
		Nodes: nil,
	}
}
