package graph

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/mitchellh/mapstructure"
)

// graphDocument is the JSON shape accepted for undirected graphs:
//
//	{"vertices": 4, "edges": [[0,1],[1,2]], "name": "my graph"}
type graphDocument struct {
	Name     string
	Vertices int
	Edges    [][]int
}

// digraphDocument additionally carries labels; arcs are ordered pairs
// and must respect the position order (lower to higher).
type digraphDocument struct {
	Name     string
	Vertices int
	Labels   []string
	Arcs     [][]int
}

// bipartiteDocument describes a two-sided graph; edges pair a left
// index with a right index.
type bipartiteDocument struct {
	Name  string
	Left  int
	Right int
	Edges [][]int
}

func decodeDocument(r io.Reader, out any) error {
	raw := map[string]any{}
	data, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("error reading graph document: %w", err)
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("error parsing graph document: %w", err)
	}
	if err := mapstructure.Decode(raw, out); err != nil {
		return fmt.Errorf("error decoding graph document: %w", err)
	}
	return nil
}

func pair(e []int, what string) (int, int, error) {
	if len(e) != 2 {
		return 0, 0, fmt.Errorf("graph document: %s %v is not a pair", what, e)
	}
	return e[0], e[1], nil
}

// ReadGraph decodes a JSON graph document into a Graph.
func ReadGraph(r io.Reader) (*Graph, error) {
	var doc graphDocument
	if err := decodeDocument(r, &doc); err != nil {
		return nil, err
	}
	if doc.Vertices < 0 {
		return nil, fmt.Errorf("graph document: negative vertex count %d", doc.Vertices)
	}
	g := New(doc.Vertices)
	g.SetName(doc.Name)
	for _, e := range doc.Edges {
		u, v, err := pair(e, "edge")
		if err != nil {
			return nil, err
		}
		if u < 0 || u >= doc.Vertices || v < 0 || v >= doc.Vertices || u == v {
			return nil, fmt.Errorf("graph document: invalid edge (%d,%d)", u, v)
		}
		g.AddEdge(u, v)
	}
	return g, nil
}

// ReadDigraph decodes a JSON digraph document into a Digraph.
func ReadDigraph(r io.Reader) (*Digraph, error) {
	var doc digraphDocument
	if err := decodeDocument(r, &doc); err != nil {
		return nil, err
	}
	if doc.Vertices < 0 {
		return nil, fmt.Errorf("graph document: negative vertex count %d", doc.Vertices)
	}
	d := NewDigraph(doc.Vertices)
	d.SetName(doc.Name)
	for i, label := range doc.Labels {
		if i >= doc.Vertices {
			return nil, fmt.Errorf("graph document: %d labels for %d vertices", len(doc.Labels), doc.Vertices)
		}
		d.SetLabel(i, label)
	}
	for _, e := range doc.Arcs {
		u, v, err := pair(e, "arc")
		if err != nil {
			return nil, err
		}
		if u < 0 || u >= doc.Vertices || v < 0 || v >= doc.Vertices || u == v {
			return nil, fmt.Errorf("graph document: invalid arc (%d,%d)", u, v)
		}
		d.AddArc(u, v)
	}
	return d, nil
}

// ReadBipartite decodes a JSON bipartite graph document into a
// Bipartite.
func ReadBipartite(r io.Reader) (*Bipartite, error) {
	var doc bipartiteDocument
	if err := decodeDocument(r, &doc); err != nil {
		return nil, err
	}
	if doc.Left < 0 || doc.Right < 0 {
		return nil, fmt.Errorf("graph document: negative side sizes (%d,%d)", doc.Left, doc.Right)
	}
	b := NewBipartite(doc.Left, doc.Right)
	b.SetName(doc.Name)
	for _, e := range doc.Edges {
		l, r, err := pair(e, "edge")
		if err != nil {
			return nil, err
		}
		if l < 0 || l >= doc.Left || r < 0 || r >= doc.Right {
			return nil, fmt.Errorf("graph document: invalid bipartite edge (%d,%d)", l, r)
		}
		b.AddEdge(l, r)
	}
	return b, nil
}
