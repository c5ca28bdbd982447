package graph

import (
	"fmt"
	"sort"
)

// Digraph is a finite directed graph. Vertices are 0..Order()-1 and the
// ascending vertex order doubles as the position index the pebbling and
// stone generators rely on: constructions emit vertices so that every
// arc points from a lower position to a higher one.
type Digraph struct {
	n      int
	name   string
	labels []string
	arcs   [][2]int
	preds  [][]int
	succs  [][]int
}

// NewDigraph returns a digraph with n vertices and no arcs.
func NewDigraph(n int) *Digraph {
	if n < 0 {
		n = 0
	}
	return &Digraph{
		n:     n,
		preds: make([][]int, n),
		succs: make([][]int, n),
	}
}

// Name returns the optional human-readable name of the digraph.
func (d *Digraph) Name() string {
	return d.name
}

// SetName attaches a human-readable name used in formula headers.
func (d *Digraph) SetName(name string) {
	d.name = name
}

// Order returns the number of vertices.
func (d *Digraph) Order() int {
	return d.n
}

// Vertices returns 0..n-1 in position order.
func (d *Digraph) Vertices() []int {
	vs := make([]int, d.n)
	for i := range vs {
		vs[i] = i
	}
	return vs
}

// Label returns the display label of v, defaulting to "v_{i+1}".
func (d *Digraph) Label(v int) string {
	if v >= 0 && v < len(d.labels) && d.labels[v] != "" {
		return d.labels[v]
	}
	return fmt.Sprintf("v_{%d}", v+1)
}

// SetLabel overrides the display label of v.
func (d *Digraph) SetLabel(v int, label string) {
	if v < 0 || v >= d.n {
		panic(fmt.Sprintf("graph: label for vertex %d out of range", v))
	}
	if d.labels == nil {
		d.labels = make([]string, d.n)
	}
	d.labels[v] = label
}

// AddArc inserts the arc u->v. Duplicates are no-ops; out-of-range
// endpoints and self-loops panic.
func (d *Digraph) AddArc(u, v int) {
	if u < 0 || u >= d.n || v < 0 || v >= d.n {
		panic(fmt.Sprintf("graph: arc endpoint out of range: (%d,%d) with %d vertices", u, v, d.n))
	}
	if u == v {
		panic(fmt.Sprintf("graph: self-loop on vertex %d", u))
	}
	for _, p := range d.preds[v] {
		if p == u {
			return
		}
	}
	d.arcs = append(d.arcs, [2]int{u, v})
	d.preds[v] = append(d.preds[v], u)
	d.succs[u] = append(d.succs[u], v)
	sort.Ints(d.preds[v])
	sort.Ints(d.succs[u])
}

// Arcs returns the arcs in insertion order.
func (d *Digraph) Arcs() [][2]int {
	out := make([][2]int, len(d.arcs))
	copy(out, d.arcs)
	return out
}

// Predecessors returns the in-neighbors of v in position order.
func (d *Digraph) Predecessors(v int) []int {
	if v < 0 || v >= d.n {
		return nil
	}
	out := make([]int, len(d.preds[v]))
	copy(out, d.preds[v])
	return out
}

// Successors returns the out-neighbors of v in position order.
func (d *Digraph) Successors(v int) []int {
	if v < 0 || v >= d.n {
		return nil
	}
	out := make([]int, len(d.succs[v]))
	copy(out, d.succs[v])
	return out
}

// InDegree returns the number of arcs into v.
func (d *Digraph) InDegree(v int) int {
	if v < 0 || v >= d.n {
		return 0
	}
	return len(d.preds[v])
}

// OutDegree returns the number of arcs out of v.
func (d *Digraph) OutDegree(v int) int {
	if v < 0 || v >= d.n {
		return 0
	}
	return len(d.succs[v])
}

// IsDAG reports whether the digraph is acyclic, by Kahn's algorithm.
func (d *Digraph) IsDAG() bool {
	indeg := make([]int, d.n)
	for v := 0; v < d.n; v++ {
		indeg[v] = len(d.preds[v])
	}
	queue := make([]int, 0, d.n)
	for v := 0; v < d.n; v++ {
		if indeg[v] == 0 {
			queue = append(queue, v)
		}
	}
	seen := 0
	for len(queue) > 0 {
		v := queue[0]
		queue = queue[1:]
		seen++
		for _, w := range d.succs[v] {
			indeg[w]--
			if indeg[w] == 0 {
				queue = append(queue, w)
			}
		}
	}
	return seen == d.n
}
