package families

import (
	"fmt"

	"github.com/sahmed95/cnfgen/pkg/cnf"
	"github.com/sahmed95/cnfgen/pkg/graph"
)

// OrderingOptions selects a variant of the ordering principle.
type OrderingOptions struct {
	// Total adds the totality axioms "u < v or v < u".
	Total bool
	// Smart represents "u < v" and "v < u" with a single variable,
	// which implies totality and drops the antisymmetry axioms.
	Smart bool
	// Plant exempts the last element from the non-minimality axioms,
	// which can make the formula satisfiable.
	Plant bool
	// Knuth restricts the transitivity axioms per Knuth's variants 2
	// or 3. Zero keeps all of them.
	Knuth int
}

func (o OrderingOptions) validate() error {
	if o.Knuth != 0 && o.Knuth != 2 && o.Knuth != 3 {
		return fmt.Errorf("ordering principle: knuth variant must be 2 or 3, got %d: %w", o.Knuth, ErrPrecondition)
	}
	return nil
}

// orderVar names the variable for "u precedes v".
func orderVar(u, v int) cnf.Var {
	return cnf.PairVar("x", u, v)
}

// OrderingPrinciple builds the CNF claiming that a partial order on n
// elements has no minimal element. It is the graph ordering principle
// on the complete graph.
func OrderingPrinciple(n int, opts OrderingOptions) (*cnf.CNF, error) {
	if n < 0 {
		return nil, fmt.Errorf("ordering principle: domain size must be non-negative, got %d: %w", n, ErrPrecondition)
	}
	f, err := GraphOrderingPrinciple(graph.Complete(n), opts)
	if err != nil {
		return nil, err
	}
	f.Header = fmt.Sprintf("Ordering principle on %d elements", n)
	return f, nil
}

// GraphOrderingPrinciple builds the CNF claiming that a partial order
// on the vertices of g has no vertex that is minimal among its
// neighbors. The variable x_{u,v} asserts that u precedes v.
func GraphOrderingPrinciple(g *graph.Graph, opts OrderingOptions) (*cnf.CNF, error) {
	if g == nil {
		return nil, fmt.Errorf("graph ordering principle: nil graph: %w", ErrPrecondition)
	}
	if err := opts.validate(); err != nil {
		return nil, err
	}

	f := cnf.New()
	name := "Ordering principle"
	if opts.Total || opts.Smart {
		name = "Total graph ordering principle"
	}
	if opts.Smart {
		name += " (compact representation)"
	}
	f.Header = fmt.Sprintf("%s on graph %s", name, g.Name())

	n := g.Order()

	// Non-minimality axioms. Clauses are generated so that every
	// adjacent pair occurs with a fixed orientation; with plant the
	// last vertex may stay minimal.
	last := n
	if opts.Plant {
		last = n - 1
	}
	for med := 0; med < last; med++ {
		var clause []cnf.Literal
		for lo := 0; lo < med; lo++ {
			if g.HasEdge(med, lo) {
				clause = append(clause, cnf.Pos(orderVar(lo, med)))
			}
		}
		for hi := med + 1; hi < n; hi++ {
			if !g.HasEdge(med, hi) {
				continue
			}
			if opts.Smart {
				clause = append(clause, cnf.Neg(orderVar(med, hi)))
			} else {
				clause = append(clause, cnf.Pos(orderVar(hi, med)))
			}
		}
		f.AddClause(clause...)
	}

	// Transitivity axioms.
	if n >= 3 {
		switch {
		case opts.Smart:
			forEachCombination(intRange(0, n), 3, func(t []int) {
				v1, v2, v3 := t[0], t[1], t[2]
				f.AddClause(
					cnf.Pos(orderVar(v1, v2)),
					cnf.Pos(orderVar(v2, v3)),
					cnf.Neg(orderVar(v1, v3)))
				f.AddClause(
					cnf.Neg(orderVar(v1, v2)),
					cnf.Neg(orderVar(v2, v3)),
					cnf.Pos(orderVar(v1, v3)))
			})
		case opts.Total:
			// with totality two axioms per triangle suffice
			forEachCombination(intRange(0, n), 3, func(t []int) {
				v1, v2, v3 := t[0], t[1], t[2]
				f.AddClause(
					cnf.Neg(orderVar(v1, v2)),
					cnf.Neg(orderVar(v2, v3)),
					cnf.Neg(orderVar(v3, v1)))
				f.AddClause(
					cnf.Neg(orderVar(v1, v3)),
					cnf.Neg(orderVar(v3, v2)),
					cnf.Neg(orderVar(v2, v1)))
			})
		default:
			for v1 := 0; v1 < n; v1++ {
				for v2 := 0; v2 < n; v2++ {
					if v2 == v1 {
						continue
					}
					for v3 := 0; v3 < n; v3++ {
						if v3 == v1 || v3 == v2 {
							continue
						}
						if opts.Knuth == 2 && (v2 < v1 || v2 < v3) {
							continue
						}
						if opts.Knuth == 3 && (v3 < v1 || v3 < v2) {
							continue
						}
						f.AddClause(
							cnf.Neg(orderVar(v1, v2)),
							cnf.Neg(orderVar(v2, v3)),
							cnf.Pos(orderVar(v1, v3)))
					}
				}
			}
		}
	}

	if !opts.Smart {
		// Antisymmetry axioms.
		forEachCombination(intRange(0, n), 2, func(t []int) {
			f.AddClause(
				cnf.Neg(orderVar(t[0], t[1])),
				cnf.Neg(orderVar(t[1], t[0])))
		})
		// Totality axioms.
		if opts.Total {
			forEachCombination(intRange(0, n), 2, func(t []int) {
				f.AddClause(
					cnf.Pos(orderVar(t[0], t[1])),
					cnf.Pos(orderVar(t[1], t[0])))
			})
		}
	}

	return f, nil
}
