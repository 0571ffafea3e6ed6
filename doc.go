// Package routekit is a small routing toolkit: an in-memory directed
// weighted graph model and a least-cost path finder built on Dijkstra's
// algorithm.
//
// What you get:
//
//	core/     — Graph, Vertex, Edge primitives and the immutable Path value
//	dijkstra/ — PathFinder: single-origin, single-destination cheapest route
//
// Why routekit?
//
//   - Minimal API — build a graph, ask for a path, read the edges back
//   - Deterministic costs — repeated queries on an unmodified graph
//     always report the same total cost
//   - Rock-solid guarantees — R/W locks on the model, sentinel errors,
//     no hidden dependencies
//   - Pure Go — no cgo, nothing beyond the standard library at runtime
//
// Quick ASCII example:
//
//	[a]──1──▶[b]──1──▶[c]
//
//	a chain of three intersections; the cheapest a→c route is the two
//	edges a→b and b→c with total cost 2.
//
// The finder exposes its per-vertex state (tentative cost, reaching
// edge, visited flag) after a run, so algorithms layered on top, such
// as isochrones and reachability sweeps, can reuse one computation
// instead of starting over.
//
//	go get github.com/acmegraph/routekit
package routekit
