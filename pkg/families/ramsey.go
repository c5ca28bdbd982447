package families

import (
	"fmt"

	"github.com/sahmed95/cnfgen/pkg/cnf"
)

// RamseyNumber builds the CNF claiming that the Ramsey number r(s,k)
// exceeds n: there is a graph on n vertices with no independent set of
// size s and no clique of size k. The variable e_{u,v} asserts that
// {u,v} is an edge, for vertices 1..n.
func RamseyNumber(s, k, n int) (*cnf.CNF, error) {
	if s < 1 || k < 1 {
		return nil, fmt.Errorf("ramsey number: forbidden set sizes must be positive, got (%d,%d): %w", s, k, ErrPrecondition)
	}
	if n < 0 {
		return nil, fmt.Errorf("ramsey number: graph size must be non-negative, got %d: %w", n, ErrPrecondition)
	}

	f := cnf.New()
	f.Header = fmt.Sprintf(
		"CNF encoding of the claim that there is a graph of %d vertices with no independent set of size %d and no clique of size %d",
		n, s, k)

	vertices := intRange(1, n)

	// no independent set of size s
	forEachCombination(vertices, s, func(set []int) {
		var clause []cnf.Literal
		forEachCombination(set, 2, func(e []int) {
			clause = append(clause, cnf.Pos(cnf.EdgeVar("e", e[0], e[1])))
		})
		f.AddClause(clause...)
	})

	// no clique of size k
	forEachCombination(vertices, k, func(set []int) {
		var clause []cnf.Literal
		forEachCombination(set, 2, func(e []int) {
			clause = append(clause, cnf.Neg(cnf.EdgeVar("e", e[0], e[1])))
		})
		f.AddClause(clause...)
	})

	return f, nil
}
