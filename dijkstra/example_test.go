package dijkstra_test

import (
	"errors"
	"fmt"

	"github.com/acmegraph/routekit/core"
	"github.com/acmegraph/routekit/dijkstra"
)

// ExamplePathFinder_FindPath computes the fastest route between two
// city intersections. The direct avenue a→d looks tempting but the
// side-street detour is cheaper.
func ExamplePathFinder_FindPath() {
	g := core.NewGraph()
	g.AddEdge("a", "d", 10) // direct avenue, congested
	g.AddEdge("a", "b", 2)
	g.AddEdge("b", "c", 2)
	g.AddEdge("c", "d", 2)

	finder, err := dijkstra.New(g)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	path, err := finder.FindPath("a", "d")
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println(path)
	fmt.Println("edges:", path.Size(), "cost:", path.TotalCost())
	// Output:
	// a →(2) b →(2) c →(2) d
	// edges: 3 cost: 6
}

// ExamplePathFinder_FindPath_notFound shows the failure mode: one-way
// streets make the return trip impossible.
func ExamplePathFinder_FindPath_notFound() {
	g := core.NewGraph()
	g.AddEdge("a", "b", 1)

	finder, _ := dijkstra.New(g)

	_, err := finder.FindPath("b", "a")
	fmt.Println(errors.Is(err, dijkstra.ErrPathNotFound))
	// Output:
	// true
}

// ExamplePathFinder_NodeState inspects per-vertex state after a run,
// the hook for building isochrones on top of one computation.
func ExamplePathFinder_NodeState() {
	g := core.NewGraph()
	g.AddEdge("hub", "near", 1)
	g.AddEdge("near", "far", 3)

	finder, _ := dijkstra.New(g)
	if _, err := finder.FindPath("hub", "far"); err != nil {
		fmt.Println("error:", err)
		return
	}

	near := finder.NodeState("near")
	fmt.Printf("near: cost=%g visited=%v via=%s\n",
		near.Cost, near.Visited, near.ReachingEdge.From)
	// Output:
	// near: cost=1 visited=true via=hub
}
