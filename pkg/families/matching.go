package families

import (
	"fmt"

	"github.com/sahmed95/cnfgen/pkg/cnf"
	"github.com/sahmed95/cnfgen/pkg/cnf/constraint"
	"github.com/sahmed95/cnfgen/pkg/graph"
)

// PerfectMatchingPrinciple builds the CNF claiming that g has a perfect
// matching: a set of edges touching every vertex exactly once. An edge
// variable x_{u,v} asserts that the edge is in the matching.
func PerfectMatchingPrinciple(g *graph.Graph) (*cnf.CNF, error) {
	if g == nil {
		return nil, fmt.Errorf("perfect matching principle: nil graph: %w", ErrPrecondition)
	}

	f := cnf.New()
	f.Header = fmt.Sprintf("Perfect matching principle on graph %s", g.Name())

	for _, v := range g.Vertices() {
		neighbors := g.Neighbors(v)
		vars := make([]cnf.Var, len(neighbors))
		lits := make([]cnf.Literal, len(neighbors))
		for i, u := range neighbors {
			vars[i] = cnf.EdgeVar("x", v, u)
			lits[i] = cnf.Pos(vars[i])
		}
		// at least one incident edge is matched
		f.AddClause(lits...)
		// and at most one
		cs, err := constraint.LessThan(2, vars...).Clauses()
		if err != nil {
			return nil, err
		}
		f.AddClauses(cs)
	}

	return f, nil
}

// ParityPrinciple builds the CNF claiming that a domain with n elements
// can be partitioned into pairs. For odd n the formula is
// unsatisfiable. It is the perfect matching principle on the complete
// graph.
func ParityPrinciple(n int) (*cnf.CNF, error) {
	if n < 0 {
		return nil, fmt.Errorf("parity principle: domain size must be non-negative, got %d: %w", n, ErrPrecondition)
	}
	f, err := PerfectMatchingPrinciple(graph.Complete(n))
	if err != nil {
		return nil, err
	}
	f.Header = fmt.Sprintf("Parity principle on %d elements", n)
	return f, nil
}

// CountingPrinciple builds the CNF claiming that a domain of m elements
// can be partitioned into parts of size p each. The variable
// Y_{a,b,...} asserts that the p-subset {a,b,...} is one of the parts.
// Unless p divides m the formula is unsatisfiable.
func CountingPrinciple(m, p int) (*cnf.CNF, error) {
	if m < 0 {
		return nil, fmt.Errorf("counting principle: domain size must be non-negative, got %d: %w", m, ErrPrecondition)
	}
	if p < 1 {
		return nil, fmt.Errorf("counting principle: part size must be positive, got %d: %w", p, ErrPrecondition)
	}

	f := cnf.New()
	f.Header = fmt.Sprintf("Counting principle: %d divided in parts of size %d", m, p)

	// incidence[i] lists the p-subsets containing i, in lexicographic
	// subset order
	incidence := make([][]cnf.Var, m)
	forEachCombination(intRange(0, m), p, func(tpl []int) {
		v := cnf.IndexedVar("Y", tpl...)
		for _, i := range tpl {
			incidence[i] = append(incidence[i], v)
		}
	})

	for el := 0; el < m; el++ {
		vars := incidence[el]
		lits := make([]cnf.Literal, len(vars))
		for i, v := range vars {
			lits[i] = cnf.Pos(v)
		}
		// the element is in at least one part
		f.AddClause(lits...)
		// and in at most one
		cs, err := constraint.LessThan(2, vars...).Clauses()
		if err != nil {
			return nil, err
		}
		f.AddClauses(cs)
	}

	return f, nil
}
