package families

import (
	"fmt"

	"github.com/sahmed95/cnfgen/pkg/cnf"
	"github.com/sahmed95/cnfgen/pkg/cnf/constraint"
	"github.com/sahmed95/cnfgen/pkg/graph"
)

// SubsetCardinalityFormula builds the subset cardinality formula on a
// bipartite graph: at most half of the edges incident to each left
// vertex are set, while at least half of the edges incident to each
// right vertex are set. The variable x_{u,v} is attached to the edge
// between left vertex u and the right vertex with global identifier v.
func SubsetCardinalityFormula(b *graph.Bipartite) (*cnf.CNF, error) {
	if b == nil {
		return nil, fmt.Errorf("subset cardinality formula: nil graph: %w", ErrPrecondition)
	}

	f := cnf.New()
	f.Header = fmt.Sprintf("Subset cardinality formula for graph %s", b.Name())

	for l := 0; l < b.Left(); l++ {
		neighbors := b.LeftNeighbors(l)
		vars := make([]cnf.Var, len(neighbors))
		for i, r := range neighbors {
			vars[i] = cnf.EdgeVar("x", l, b.RightID(r))
		}
		cs, err := constraint.LooseMinority(vars...).Clauses()
		if err != nil {
			return nil, err
		}
		f.AddClauses(cs)
	}

	for r := 0; r < b.Right(); r++ {
		neighbors := b.RightNeighbors(r)
		vars := make([]cnf.Var, len(neighbors))
		for i, l := range neighbors {
			vars[i] = cnf.EdgeVar("x", l, b.RightID(r))
		}
		cs, err := constraint.LooseMajority(vars...).Clauses()
		if err != nil {
			return nil, err
		}
		f.AddClauses(cs)
	}

	return f, nil
}

// MarkstromFormula builds the CNF claiming that the edges of g can be
// split in two parts so that every vertex has an equal number of
// incident edges in each part. All vertices must have even degree; the
// formula is satisfiable only when every connected component has an
// even number of vertices.
func MarkstromFormula(g *graph.Graph) (*cnf.CNF, error) {
	if g == nil {
		return nil, fmt.Errorf("markstrom formula: nil graph: %w", ErrPrecondition)
	}
	for _, v := range g.Vertices() {
		if g.Degree(v)%2 == 1 {
			return nil, fmt.Errorf("markstrom formula: vertex %d has odd degree %d, all degrees must be even: %w", v, g.Degree(v), ErrPrecondition)
		}
	}

	f := cnf.New()
	f.Header = fmt.Sprintf("Markstrom formula on graph %s", g.Name())

	for _, e := range g.Edges() {
		f.AddVariable(cnf.EdgeVar("x", e[0], e[1]))
	}

	for _, v := range g.Vertices() {
		neighbors := g.Neighbors(v)
		vars := make([]cnf.Var, len(neighbors))
		for i, u := range neighbors {
			vars[i] = cnf.EdgeVar("x", v, u)
		}
		cs, err := constraint.Exactly(len(vars)/2, vars...).Clauses()
		if err != nil {
			return nil, err
		}
		if err := f.AddStrictClauses(cs); err != nil {
			return nil, err
		}
	}

	return f, nil
}
