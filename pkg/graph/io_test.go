package graph_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sahmed95/cnfgen/pkg/graph"
)

func TestReadGraph(t *testing.T) {
	doc := `{"name": "triangle", "vertices": 3, "edges": [[0,1],[1,2],[2,0]]}`
	g, err := graph.ReadGraph(strings.NewReader(doc))
	require.NoError(t, err)
	assert.Equal(t, "triangle", g.Name())
	assert.Equal(t, 3, g.Order())
	assert.Equal(t, [][2]int{{0, 1}, {1, 2}, {0, 2}}, g.Edges())
}

func TestReadGraphRejectsBadDocuments(t *testing.T) {
	for name, doc := range map[string]string{
		"not json":          `vertices: 3`,
		"self loop":         `{"vertices": 2, "edges": [[1,1]]}`,
		"out of range":      `{"vertices": 2, "edges": [[0,2]]}`,
		"malformed edge":    `{"vertices": 2, "edges": [[0,1,2]]}`,
		"negative vertices": `{"vertices": -1}`,
	} {
		_, err := graph.ReadGraph(strings.NewReader(doc))
		assert.Error(t, err, name)
	}
}

func TestReadDigraph(t *testing.T) {
	doc := `{"vertices": 3, "labels": ["a", "b"], "arcs": [[0,2],[1,2]]}`
	d, err := graph.ReadDigraph(strings.NewReader(doc))
	require.NoError(t, err)
	assert.Equal(t, "a", d.Label(0))
	assert.Equal(t, "b", d.Label(1))
	assert.Equal(t, "v_{3}", d.Label(2))
	assert.Equal(t, []int{0, 1}, d.Predecessors(2))
	assert.True(t, d.IsDAG())
}

func TestReadDigraphRejectsTooManyLabels(t *testing.T) {
	doc := `{"vertices": 1, "labels": ["a", "b"]}`
	_, err := graph.ReadDigraph(strings.NewReader(doc))
	assert.Error(t, err)
}

func TestReadBipartite(t *testing.T) {
	doc := `{"left": 2, "right": 3, "edges": [[0,0],[1,2]]}`
	b, err := graph.ReadBipartite(strings.NewReader(doc))
	require.NoError(t, err)
	assert.Equal(t, 2, b.Left())
	assert.Equal(t, 3, b.Right())
	assert.Equal(t, [][2]int{{0, 0}, {1, 2}}, b.Edges())

	_, err = graph.ReadBipartite(strings.NewReader(`{"left": 1, "right": 1, "edges": [[0,1]]}`))
	assert.Error(t, err)
}
