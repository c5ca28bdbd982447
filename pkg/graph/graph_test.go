package graph_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sahmed95/cnfgen/pkg/graph"
)

func TestAddEdgeIsCanonicalAndDeduplicated(t *testing.T) {
	g := graph.New(4)
	g.AddEdge(2, 0)
	g.AddEdge(0, 2)
	g.AddEdge(2, 3)

	assert.Equal(t, [][2]int{{0, 2}, {2, 3}}, g.Edges())
	assert.True(t, g.HasEdge(0, 2))
	assert.True(t, g.HasEdge(2, 0))
	assert.False(t, g.HasEdge(1, 2))
}

func TestNeighborsAreSorted(t *testing.T) {
	g := graph.New(5)
	g.AddEdge(3, 1)
	g.AddEdge(3, 4)
	g.AddEdge(0, 3)

	assert.Equal(t, []int{0, 1, 4}, g.Neighbors(3))
	assert.Equal(t, 3, g.Degree(3))
	assert.Empty(t, g.Neighbors(2))
}

func TestAddEdgePanicsOnBadInput(t *testing.T) {
	g := graph.New(3)
	assert.Panics(t, func() { g.AddEdge(0, 0) })
	assert.Panics(t, func() { g.AddEdge(0, 3) })
	assert.Panics(t, func() { g.AddEdge(-1, 1) })
}

func TestCompleteGraph(t *testing.T) {
	g := graph.Complete(4)
	assert.Equal(t, "K_4", g.Name())
	assert.Equal(t, 4, g.Order())
	assert.Len(t, g.Edges(), 6)
}

func TestPathAndCycle(t *testing.T) {
	p := graph.Path(4)
	assert.Len(t, p.Edges(), 3)

	c, err := graph.Cycle(4)
	require.NoError(t, err)
	assert.Len(t, c.Edges(), 4)
	assert.True(t, c.HasEdge(3, 0))

	_, err = graph.Cycle(2)
	assert.Error(t, err)
}

func TestRandomGNP(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	empty, err := graph.RandomGNP(10, 0, rng)
	require.NoError(t, err)
	assert.Empty(t, empty.Edges())

	full, err := graph.RandomGNP(10, 1, rng)
	require.NoError(t, err)
	assert.Len(t, full.Edges(), 45)

	_, err = graph.RandomGNP(10, 1.5, rng)
	assert.Error(t, err)
}

func TestRandomGNPIsDeterministicPerSeed(t *testing.T) {
	a, err := graph.RandomGNP(12, 0.4, rand.New(rand.NewSource(7)))
	require.NoError(t, err)
	b, err := graph.RandomGNP(12, 0.4, rand.New(rand.NewSource(7)))
	require.NoError(t, err)
	assert.Equal(t, a.Edges(), b.Edges())
}

func TestRandomGNM(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	g, err := graph.RandomGNM(8, 12, rng)
	require.NoError(t, err)
	assert.Len(t, g.Edges(), 12)

	seen := map[[2]int]bool{}
	for _, e := range g.Edges() {
		assert.Less(t, e[0], e[1])
		assert.False(t, seen[e], "duplicate edge %v", e)
		seen[e] = true
	}

	_, err = graph.RandomGNM(4, 7, rng)
	assert.Error(t, err)
}

func TestDigraphArcsAndDegrees(t *testing.T) {
	d := graph.NewDigraph(4)
	d.AddArc(0, 2)
	d.AddArc(1, 2)
	d.AddArc(2, 3)

	assert.Equal(t, []int{0, 1}, d.Predecessors(2))
	assert.Equal(t, []int{3}, d.Successors(2))
	assert.Equal(t, 2, d.InDegree(2))
	assert.Equal(t, 1, d.OutDegree(2))
	assert.Equal(t, 0, d.InDegree(0))
}

func TestDigraphLabels(t *testing.T) {
	d := graph.NewDigraph(2)
	assert.Equal(t, "v_{1}", d.Label(0))
	d.SetLabel(0, "source")
	assert.Equal(t, "source", d.Label(0))
	assert.Equal(t, "v_{2}", d.Label(1))
}

func TestIsDAG(t *testing.T) {
	d := graph.NewDigraph(3)
	d.AddArc(0, 1)
	d.AddArc(1, 2)
	assert.True(t, d.IsDAG())

	d.AddArc(2, 0)
	assert.False(t, d.IsDAG())
}

func TestPyramid(t *testing.T) {
	d, err := graph.Pyramid(2)
	require.NoError(t, err)
	// 3 + 2 + 1 vertices, bottom layer first
	assert.Equal(t, 6, d.Order())
	assert.Equal(t, "x_{0,0}", d.Label(0))
	assert.Equal(t, "x_{2,0}", d.Label(5))
	assert.Equal(t, []int{3, 4}, d.Predecessors(5))
	assert.Equal(t, []int{0, 1}, d.Predecessors(3))
	assert.True(t, d.IsDAG())

	_, err = graph.Pyramid(-1)
	assert.Error(t, err)
}

func TestTree(t *testing.T) {
	d, err := graph.Tree(2)
	require.NoError(t, err)
	assert.Equal(t, 7, d.Order())
	assert.True(t, d.IsDAG())

	// the root is the last vertex and the only one without successors
	root := d.Order() - 1
	assert.Equal(t, 0, d.OutDegree(root))
	assert.Equal(t, 2, d.InDegree(root))
	for v := 0; v < root; v++ {
		assert.Equal(t, 1, d.OutDegree(v), "vertex %d", v)
	}
	// leaves are the first 2^height vertices
	for v := 0; v < 4; v++ {
		assert.Equal(t, 0, d.InDegree(v), "vertex %d", v)
	}
}

func TestBipartite(t *testing.T) {
	b := graph.NewBipartite(2, 3)
	b.AddEdge(0, 1)
	b.AddEdge(1, 2)
	b.AddEdge(0, 1)

	assert.Equal(t, [][2]int{{0, 1}, {1, 2}}, b.Edges())
	assert.True(t, b.HasEdge(0, 1))
	assert.False(t, b.HasEdge(0, 2))
	assert.Equal(t, []int{1}, b.LeftNeighbors(0))
	assert.Equal(t, []int{1}, b.RightNeighbors(2))
	assert.Empty(t, b.RightNeighbors(0))

	// right vertices are offset past the left side
	assert.Equal(t, 2, b.RightID(0))
	assert.Equal(t, 4, b.RightID(2))
}

func TestCompleteBipartite(t *testing.T) {
	b := graph.CompleteBipartite(2, 3)
	assert.Equal(t, "K_{2,3}", b.Name())
	assert.Len(t, b.Edges(), 6)
}

func TestRandomBipartite(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	b, err := graph.RandomBipartite(3, 4, 5, rng)
	require.NoError(t, err)
	assert.Len(t, b.Edges(), 5)

	_, err = graph.RandomBipartite(2, 2, 5, rng)
	assert.Error(t, err)
}
