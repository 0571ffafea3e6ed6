package core_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/acmegraph/routekit/core"
)

func TestAddVertex_EmptyID(t *testing.T) {
	g := core.NewGraph()
	assert.ErrorIs(t, g.AddVertex(""), core.ErrEmptyVertexID)
}

func TestAddVertex_Idempotent(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddVertex("a"))
	require.NoError(t, g.AddVertex("a"))
	assert.Equal(t, 1, g.VertexCount())
	assert.True(t, g.HasVertex("a"))
}

func TestAddEdge_AutoCreatesEndpoints(t *testing.T) {
	g := core.NewGraph()
	e, err := g.AddEdge("a", "b", 2.5)
	require.NoError(t, err)

	assert.Equal(t, "a", e.From)
	assert.Equal(t, "b", e.To)
	assert.Equal(t, 2.5, e.Cost)
	assert.True(t, g.HasVertex("a"))
	assert.True(t, g.HasVertex("b"))
	assert.Equal(t, 1, g.EdgeCount())
}

func TestAddEdge_RejectsNegativeCost(t *testing.T) {
	g := core.NewGraph()
	_, err := g.AddEdge("a", "b", -1)
	assert.ErrorIs(t, err, core.ErrNegativeCost)
	assert.Equal(t, 0, g.EdgeCount())
}

func TestAddEdge_RejectsEmptyEndpoint(t *testing.T) {
	g := core.NewGraph()
	_, err := g.AddEdge("", "b", 1)
	assert.ErrorIs(t, err, core.ErrEmptyVertexID)
	_, err = g.AddEdge("a", "", 1)
	assert.ErrorIs(t, err, core.ErrEmptyVertexID)
}

func TestAddEdge_ZeroCostAndParallelEdgesAllowed(t *testing.T) {
	g := core.NewGraph()
	_, err := g.AddEdge("a", "b", 0)
	require.NoError(t, err)
	_, err = g.AddEdge("a", "b", 3)
	require.NoError(t, err)

	out, err := g.OutEdges("a")
	require.NoError(t, err)
	assert.Len(t, out, 2)
}

func TestVertices_SortedAscending(t *testing.T) {
	g := core.NewGraph()
	for _, id := range []string{"c", "a", "b"} {
		require.NoError(t, g.AddVertex(id))
	}
	assert.Equal(t, []string{"a", "b", "c"}, g.Vertices())
}

func TestVertexByID(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddVertex("a"))

	v, err := g.VertexByID("a")
	require.NoError(t, err)
	assert.Equal(t, "a", v.ID)
	assert.NotNil(t, v.Metadata)

	_, err = g.VertexByID("missing")
	assert.ErrorIs(t, err, core.ErrVertexNotFound)
}

func TestOutEdges_InsertionOrderAndIsolation(t *testing.T) {
	g := core.NewGraph()
	_, err := g.AddEdge("a", "b", 1)
	require.NoError(t, err)
	_, err = g.AddEdge("a", "c", 2)
	require.NoError(t, err)

	out, err := g.OutEdges("a")
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, "b", out[0].To)
	assert.Equal(t, "c", out[1].To)

	// Mutating the returned slice must not disturb the graph.
	out[0] = nil
	again, err := g.OutEdges("a")
	require.NoError(t, err)
	assert.Equal(t, "b", again[0].To)
}

func TestOutEdges_MissingVertex(t *testing.T) {
	g := core.NewGraph()
	_, err := g.OutEdges("ghost")
	assert.ErrorIs(t, err, core.ErrVertexNotFound)
}

func TestOutEdges_SinkVertexIsEmpty(t *testing.T) {
	g := core.NewGraph()
	_, err := g.AddEdge("a", "b", 1)
	require.NoError(t, err)

	out, err := g.OutEdges("b")
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestGraph_ConcurrentAssembly(t *testing.T) {
	g := core.NewGraph(core.WithVertexCapacity(128))

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(worker int) {
			defer wg.Done()
			for j := 0; j < 16; j++ {
				from := fmt.Sprintf("w%d-%d", worker, j)
				to := fmt.Sprintf("w%d-%d", worker, j+1)
				_, err := g.AddEdge(from, to, 1)
				assert.NoError(t, err)
			}
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 8*17, g.VertexCount())
	assert.Equal(t, 8*16, g.EdgeCount())
}
