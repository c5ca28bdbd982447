package generate

import (
	"math/rand"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRNG() *rand.Rand {
	return rand.New(rand.NewSource(1))
}

func TestParseGraphSpec(t *testing.T) {
	g, err := parseGraphSpec("complete:5", testRNG())
	require.NoError(t, err)
	assert.Equal(t, 5, g.Order())
	assert.Len(t, g.Edges(), 10)

	g, err = parseGraphSpec("path:4", testRNG())
	require.NoError(t, err)
	assert.Len(t, g.Edges(), 3)

	g, err = parseGraphSpec("cycle:6", testRNG())
	require.NoError(t, err)
	assert.Len(t, g.Edges(), 6)

	g, err = parseGraphSpec("gnm:6:7", testRNG())
	require.NoError(t, err)
	assert.Len(t, g.Edges(), 7)

	g, err = parseGraphSpec("gnp:6:1.0", testRNG())
	require.NoError(t, err)
	assert.Len(t, g.Edges(), 15)
}

func TestParseGraphSpecErrors(t *testing.T) {
	for _, spec := range []string{
		"",
		"complete",
		"complete:x",
		"complete:1:2",
		"gnp:5",
		"gnp:5:oops",
		"mystery:3",
		"file:/does/not/exist.json",
	} {
		_, err := parseGraphSpec(spec, testRNG())
		assert.Error(t, err, "spec %q", spec)
	}
}

func TestParseGraphSpecFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "g.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"vertices": 3, "edges": [[0,1]]}`), 0600))

	g, err := parseGraphSpec("file:"+path, testRNG())
	require.NoError(t, err)
	assert.Equal(t, 3, g.Order())
	assert.Len(t, g.Edges(), 1)
}

func TestParseDAGSpec(t *testing.T) {
	d, err := parseDAGSpec("pyramid:2")
	require.NoError(t, err)
	assert.Equal(t, 6, d.Order())

	d, err = parseDAGSpec("tree:1")
	require.NoError(t, err)
	assert.Equal(t, 3, d.Order())

	_, err = parseDAGSpec("cycle:3")
	assert.Error(t, err)
}

func TestParseBipartiteSpec(t *testing.T) {
	b, err := parseBipartiteSpec("complete:2:3", testRNG())
	require.NoError(t, err)
	assert.Len(t, b.Edges(), 6)

	b, err = parseBipartiteSpec("random:3:3:4", testRNG())
	require.NoError(t, err)
	assert.Len(t, b.Edges(), 4)

	_, err = parseBipartiteSpec("complete:2", testRNG())
	assert.Error(t, err)
}
