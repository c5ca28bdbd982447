package graph

import (
	"fmt"
	"sort"
)

// Bipartite is a bipartite graph with an explicit two-sided vertex
// partition: left vertices are 0..Left()-1 and right vertices carry the
// global identifiers Left()..Left()+Right()-1, so that variable names
// derived from edges are collision-free across the two sides.
type Bipartite struct {
	left, right int
	name        string
	edges       [][2]int
	adjLeft     []map[int]struct{}
	adjRight    []map[int]struct{}
}

// NewBipartite returns a bipartite graph with the given side sizes and
// no edges.
func NewBipartite(left, right int) *Bipartite {
	if left < 0 {
		left = 0
	}
	if right < 0 {
		right = 0
	}
	al := make([]map[int]struct{}, left)
	for i := range al {
		al[i] = make(map[int]struct{})
	}
	ar := make([]map[int]struct{}, right)
	for i := range ar {
		ar[i] = make(map[int]struct{})
	}
	return &Bipartite{left: left, right: right, adjLeft: al, adjRight: ar}
}

// Name returns the optional human-readable name of the graph.
func (b *Bipartite) Name() string {
	return b.name
}

// SetName attaches a human-readable name used in formula headers.
func (b *Bipartite) SetName(name string) {
	b.name = name
}

// Left returns the number of left-side vertices.
func (b *Bipartite) Left() int {
	return b.left
}

// Right returns the number of right-side vertices.
func (b *Bipartite) Right() int {
	return b.right
}

// RightID returns the global identifier of right vertex r.
func (b *Bipartite) RightID(r int) int {
	return b.left + r
}

// AddEdge inserts the edge between left vertex l and right vertex r,
// both side-local indices. Duplicates are no-ops; out-of-range indices
// panic.
func (b *Bipartite) AddEdge(l, r int) {
	if l < 0 || l >= b.left || r < 0 || r >= b.right {
		panic(fmt.Sprintf("graph: bipartite edge (%d,%d) out of range for sides (%d,%d)", l, r, b.left, b.right))
	}
	if _, ok := b.adjLeft[l][r]; ok {
		return
	}
	b.adjLeft[l][r] = struct{}{}
	b.adjRight[r][l] = struct{}{}
	b.edges = append(b.edges, [2]int{l, r})
}

// HasEdge reports whether left vertex l and right vertex r are
// adjacent.
func (b *Bipartite) HasEdge(l, r int) bool {
	if l < 0 || l >= b.left || r < 0 || r >= b.right {
		return false
	}
	_, ok := b.adjLeft[l][r]
	return ok
}

// Edges returns the edges in insertion order as (left, right)
// side-local index pairs.
func (b *Bipartite) Edges() [][2]int {
	out := make([][2]int, len(b.edges))
	copy(out, b.edges)
	return out
}

// LeftNeighbors returns the right-side neighbors of left vertex l in
// ascending order.
func (b *Bipartite) LeftNeighbors(l int) []int {
	if l < 0 || l >= b.left {
		return nil
	}
	out := make([]int, 0, len(b.adjLeft[l]))
	for r := range b.adjLeft[l] {
		out = append(out, r)
	}
	sort.Ints(out)
	return out
}

// RightNeighbors returns the left-side neighbors of right vertex r in
// ascending order.
func (b *Bipartite) RightNeighbors(r int) []int {
	if r < 0 || r >= b.right {
		return nil
	}
	out := make([]int, 0, len(b.adjRight[r]))
	for l := range b.adjRight[r] {
		out = append(out, l)
	}
	sort.Ints(out)
	return out
}
