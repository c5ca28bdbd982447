// Package graph provides the deterministic combinatorial structures the
// formula generators read: simple graphs, directed graphs and bipartite
// graphs with stable vertex and edge enumeration orders. Generators
// never mutate these structures.
package graph

import (
	"fmt"
	"sort"
)

// Graph is a finite simple undirected graph. Vertices are the integers
// 0..Order()-1; edges are stored in canonical (min,max) form in
// insertion order.
type Graph struct {
	n     int
	name  string
	edges [][2]int
	adj   []map[int]struct{}
}

// New returns a graph with n vertices and no edges.
func New(n int) *Graph {
	if n < 0 {
		n = 0
	}
	adj := make([]map[int]struct{}, n)
	for i := range adj {
		adj[i] = make(map[int]struct{})
	}
	return &Graph{n: n, adj: adj}
}

// Name returns the optional human-readable name of the graph.
func (g *Graph) Name() string {
	return g.name
}

// SetName attaches a human-readable name used in formula headers.
func (g *Graph) SetName(name string) {
	g.name = name
}

// Order returns the number of vertices.
func (g *Graph) Order() int {
	return g.n
}

// Vertices returns 0..n-1 in ascending order.
func (g *Graph) Vertices() []int {
	vs := make([]int, g.n)
	for i := range vs {
		vs[i] = i
	}
	return vs
}

// AddEdge inserts the undirected edge {u,v}. Duplicate insertions are
// no-ops. Out-of-range endpoints and self-loops panic, as they indicate
// a bug in the calling construction.
func (g *Graph) AddEdge(u, v int) {
	if u < 0 || u >= g.n || v < 0 || v >= g.n {
		panic(fmt.Sprintf("graph: edge endpoint out of range: (%d,%d) with %d vertices", u, v, g.n))
	}
	if u == v {
		panic(fmt.Sprintf("graph: self-loop on vertex %d", u))
	}
	if u > v {
		u, v = v, u
	}
	if _, ok := g.adj[u][v]; ok {
		return
	}
	g.adj[u][v] = struct{}{}
	g.adj[v][u] = struct{}{}
	g.edges = append(g.edges, [2]int{u, v})
}

// HasEdge reports whether {u,v} is an edge.
func (g *Graph) HasEdge(u, v int) bool {
	if u < 0 || u >= g.n || v < 0 || v >= g.n {
		return false
	}
	_, ok := g.adj[u][v]
	return ok
}

// Edges returns the edges in insertion order, each in (min,max) form.
func (g *Graph) Edges() [][2]int {
	out := make([][2]int, len(g.edges))
	copy(out, g.edges)
	return out
}

// Neighbors returns the neighbors of v in ascending order.
func (g *Graph) Neighbors(v int) []int {
	if v < 0 || v >= g.n {
		return nil
	}
	out := make([]int, 0, len(g.adj[v]))
	for u := range g.adj[v] {
		out = append(out, u)
	}
	sort.Ints(out)
	return out
}

// Degree returns the number of edges incident to v.
func (g *Graph) Degree(v int) int {
	if v < 0 || v >= g.n {
		return 0
	}
	return len(g.adj[v])
}
