package graph

import (
	"fmt"
	"math/rand"
)

// Complete returns the complete graph on n vertices.
func Complete(n int) *Graph {
	g := New(n)
	g.SetName(fmt.Sprintf("K_%d", n))
	for u := 0; u < n; u++ {
		for v := u + 1; v < n; v++ {
			g.AddEdge(u, v)
		}
	}
	return g
}

// Path returns the path graph on n vertices.
func Path(n int) *Graph {
	g := New(n)
	g.SetName(fmt.Sprintf("P_%d", n))
	for v := 1; v < n; v++ {
		g.AddEdge(v-1, v)
	}
	return g
}

// Cycle returns the cycle graph on n vertices. n must be at least 3.
func Cycle(n int) (*Graph, error) {
	if n < 3 {
		return nil, fmt.Errorf("graph: a cycle needs at least 3 vertices, got %d", n)
	}
	g := Path(n)
	g.SetName(fmt.Sprintf("C_%d", n))
	g.AddEdge(n-1, 0)
	return g, nil
}

// RandomGNP samples a graph from the G(n,p) model using rng: each of
// the n(n-1)/2 possible edges is included independently with
// probability p.
func RandomGNP(n int, p float64, rng *rand.Rand) (*Graph, error) {
	if p < 0 || p > 1 {
		return nil, fmt.Errorf("graph: edge probability must be in [0,1], got %v", p)
	}
	g := New(n)
	g.SetName(fmt.Sprintf("G(%d,%v)", n, p))
	for u := 0; u < n; u++ {
		for v := u + 1; v < n; v++ {
			if rng.Float64() < p {
				g.AddEdge(u, v)
			}
		}
	}
	return g, nil
}

// RandomGNM samples a graph from the G(n,m) model using rng: m distinct
// edges chosen uniformly at random.
func RandomGNM(n, m int, rng *rand.Rand) (*Graph, error) {
	max := n * (n - 1) / 2
	if m < 0 || m > max {
		return nil, fmt.Errorf("graph: cannot place %d edges on %d vertices", m, n)
	}
	g := New(n)
	g.SetName(fmt.Sprintf("G(%d;%d edges)", n, m))
	for _, e := range rng.Perm(max)[:m] {
		// decode the e-th pair in lexicographic order
		u, rest := 0, e
		for rest >= n-1-u {
			rest -= n - 1 - u
			u++
		}
		g.AddEdge(u, u+1+rest)
	}
	return g, nil
}

// CompleteBipartite returns the complete bipartite graph with the given
// side sizes.
func CompleteBipartite(left, right int) *Bipartite {
	b := NewBipartite(left, right)
	b.SetName(fmt.Sprintf("K_{%d,%d}", left, right))
	for l := 0; l < left; l++ {
		for r := 0; r < right; r++ {
			b.AddEdge(l, r)
		}
	}
	return b
}

// RandomBipartite samples a bipartite graph with m distinct edges
// chosen uniformly at random using rng.
func RandomBipartite(left, right, m int, rng *rand.Rand) (*Bipartite, error) {
	max := left * right
	if m < 0 || m > max {
		return nil, fmt.Errorf("graph: cannot place %d edges on sides (%d,%d)", m, left, right)
	}
	b := NewBipartite(left, right)
	b.SetName(fmt.Sprintf("B(%d,%d;%d edges)", left, right, m))
	for _, e := range rng.Perm(max)[:m] {
		b.AddEdge(e/right, e%right)
	}
	return b, nil
}

// Pyramid returns the pyramid DAG of the given height: layer h has
// height-h+1 vertices, and each vertex in layer h>0 has the two
// adjacent vertices of layer h-1 as predecessors. Vertices are emitted
// bottom layer first, so position order is a topological order.
func Pyramid(height int) (*Digraph, error) {
	if height < 0 {
		return nil, fmt.Errorf("graph: pyramid height must be non-negative, got %d", height)
	}
	n := (height + 1) * (height + 2) / 2
	d := NewDigraph(n)
	d.SetName(fmt.Sprintf("Pyramid of height %d", height))
	id := 0
	layer := make([][]int, height+1)
	for h := 0; h <= height; h++ {
		layer[h] = make([]int, height-h+1)
		for i := range layer[h] {
			layer[h][i] = id
			d.SetLabel(id, fmt.Sprintf("x_{%d,%d}", h, i))
			id++
		}
	}
	for h := 1; h <= height; h++ {
		for i, v := range layer[h] {
			d.AddArc(layer[h-1][i], v)
			d.AddArc(layer[h-1][i+1], v)
		}
	}
	return d, nil
}

// Tree returns the complete binary tree DAG of the given height, arcs
// pointing towards the root. The root is the last vertex, so position
// order is a topological order.
func Tree(height int) (*Digraph, error) {
	if height < 0 {
		return nil, fmt.Errorf("graph: tree height must be non-negative, got %d", height)
	}
	n := 1<<(height+1) - 1
	d := NewDigraph(n)
	d.SetName(fmt.Sprintf("Binary tree of height %d", height))
	// vertex v's parent sits mirrored in the upper half of the order
	last := n - 1
	for i := 0; i < n/2; i++ {
		d.AddArc(last-2*i-1, last-i)
		d.AddArc(last-2*i-2, last-i)
	}
	return d, nil
}
