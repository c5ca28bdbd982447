package families

import (
	"fmt"

	"github.com/sahmed95/cnfgen/pkg/cnf"
	"github.com/sahmed95/cnfgen/pkg/graph"
)

func isoVar(u, v int) cnf.Var {
	return cnf.PairVar("x", u, v)
}

// GraphIsomorphism builds the CNF claiming that the simple graphs g1
// and g2 are isomorphic. The variable x_{u,v} asserts that vertex u of
// g1 maps to vertex v of g2. All clauses are strict: every variable is
// registered up front from the vertex pairs.
func GraphIsomorphism(g1, g2 *graph.Graph) (*cnf.CNF, error) {
	if g1 == nil || g2 == nil {
		return nil, fmt.Errorf("graph isomorphism: nil graph: %w", ErrPrecondition)
	}

	f := cnf.New()
	f.Header = fmt.Sprintf("Graph isomorphism problem between graphs %s and %s", g1.Name(), g2.Name())

	vs1 := g1.Vertices()
	vs2 := g2.Vertices()

	for _, u := range vs1 {
		for _, v := range vs2 {
			f.AddVariable(isoVar(u, v))
		}
	}

	// defined on both sides
	for _, u := range vs1 {
		lits := make([]cnf.Literal, len(vs2))
		for i, v := range vs2 {
			lits[i] = cnf.Pos(isoVar(u, v))
		}
		if err := f.AddStrictClause(lits...); err != nil {
			return nil, err
		}
	}
	for _, v := range vs2 {
		lits := make([]cnf.Literal, len(vs1))
		for i, u := range vs1 {
			lits[i] = cnf.Pos(isoVar(u, v))
		}
		if err := f.AddStrictClause(lits...); err != nil {
			return nil, err
		}
	}

	// injective on both sides
	var strictErr error
	for _, u := range vs1 {
		forEachCombination(vs2, 2, func(p []int) {
			if err := f.AddStrictClause(cnf.Neg(isoVar(u, p[0])), cnf.Neg(isoVar(u, p[1]))); err != nil && strictErr == nil {
				strictErr = err
			}
		})
	}
	for _, v := range vs2 {
		forEachCombination(vs1, 2, func(p []int) {
			if err := f.AddStrictClause(cnf.Neg(isoVar(p[0], v)), cnf.Neg(isoVar(p[1], v))); err != nil && strictErr == nil {
				strictErr = err
			}
		})
	}

	// edges map to edges and non-edges to non-edges
	forEachCombination(vs1, 2, func(p1 []int) {
		u1, u2 := p1[0], p1[1]
		forEachCombination(vs2, 2, func(p2 []int) {
			v1, v2 := p2[0], p2[1]
			if g1.HasEdge(u1, u2) == g2.HasEdge(v1, v2) {
				return
			}
			if err := f.AddStrictClause(cnf.Neg(isoVar(u1, v1)), cnf.Neg(isoVar(u2, v2))); err != nil && strictErr == nil {
				strictErr = err
			}
			if err := f.AddStrictClause(cnf.Neg(isoVar(u1, v2)), cnf.Neg(isoVar(u2, v1))); err != nil && strictErr == nil {
				strictErr = err
			}
		})
	})
	if strictErr != nil {
		return nil, strictErr
	}

	return f, nil
}

// GraphAutomorphism builds the CNF claiming that g has a nontrivial
// automorphism: an isomorphism of g onto itself that moves at least one
// vertex.
func GraphAutomorphism(g *graph.Graph) (*cnf.CNF, error) {
	f, err := GraphIsomorphism(g, g)
	if err != nil {
		return nil, err
	}
	f.Header = fmt.Sprintf("Graph automorphism formula for graph %s", g.Name())

	lits := make([]cnf.Literal, g.Order())
	for i, u := range g.Vertices() {
		lits[i] = cnf.Neg(isoVar(u, u))
	}
	if err := f.AddStrictClause(lits...); err != nil {
		return nil, err
	}
	return f, nil
}
