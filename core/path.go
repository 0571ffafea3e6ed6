package core

import (
	"fmt"
	"strings"
)

// Path is an ordered, immutable sequence of edges from an origin to a
// destination. A Path is constructed once, at the end of a successful
// shortest-path computation, and never mutated afterwards.
type Path struct {
	edges []*Edge
}

// NewPath wraps the given edge sequence (origin→destination order) in
// an immutable Path. The slice is copied, so the caller may reuse it.
func NewPath(edges []*Edge) *Path {
	cp := make([]*Edge, len(edges))
	copy(cp, edges)

	return &Path{edges: cp}
}

// EdgeAt returns the i-th edge of the path, counting from the origin.
// Panics if i is out of range, like any slice index.
func (p *Path) EdgeAt(i int) *Edge {
	return p.edges[i]
}

// Size returns the number of edges in the path.
func (p *Path) Size() int {
	return len(p.edges)
}

// Edges returns a copy of the path's edge sequence.
func (p *Path) Edges() []*Edge {
	cp := make([]*Edge, len(p.edges))
	copy(cp, p.edges)

	return cp
}

// TotalCost returns the sum of the edge costs along the path.
// Complexity: O(len(path)).
func (p *Path) TotalCost() float64 {
	var total float64
	for _, e := range p.edges {
		total += e.Cost
	}

	return total
}

// String renders the path as "a →(1) b →(2) c" for debugging.
func (p *Path) String() string {
	if len(p.edges) == 0 {
		return "(empty path)"
	}

	var sb strings.Builder
	sb.WriteString(p.edges[0].From)
	for _, e := range p.edges {
		fmt.Fprintf(&sb, " →(%g) %s", e.Cost, e.To)
	}

	return sb.String()
}
