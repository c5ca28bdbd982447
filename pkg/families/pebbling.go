package families

import (
	"fmt"

	"github.com/samber/lo"

	"github.com/sahmed95/cnfgen/pkg/cnf"
	"github.com/sahmed95/cnfgen/pkg/graph"
)

// PebblingFormula builds the pebbling formula of a DAG: every source is
// pebbled, a vertex whose predecessors are all pebbled is pebbled, and
// no sink is pebbled. The formula is always unsatisfiable; its interest
// lies in the resolution refutation sizes it forces.
func PebblingFormula(d *graph.Digraph) (*cnf.CNF, error) {
	if d == nil {
		return nil, fmt.Errorf("pebbling formula: nil graph: %w", ErrPrecondition)
	}
	if !d.IsDAG() {
		return nil, fmt.Errorf("pebbling formula: input graph must be directed and acyclic: %w", ErrPrecondition)
	}

	f := cnf.New()
	if d.Name() != "" {
		f.Header = "Pebbling formula of: " + d.Name()
	} else {
		f.Header = "Pebbling formula"
	}

	for _, v := range d.Vertices() {
		f.AddVariable(cnf.Var(d.Label(v)),
			fmt.Sprintf("There is a pebble on vertex %s", d.Label(v)))
	}

	for _, v := range d.Vertices() {
		// pebbled predecessors force a pebble on the vertex
		var clause []cnf.Literal
		for _, p := range d.Predecessors(v) {
			clause = append(clause, cnf.Neg(cnf.Var(d.Label(p))))
		}
		clause = append(clause, cnf.Pos(cnf.Var(d.Label(v))))
		f.AddClause(clause...)

		if d.OutDegree(v) == 0 {
			f.AddClause(cnf.Neg(cnf.Var(d.Label(v))))
		}
	}

	return f, nil
}

// StoneFormula builds the stone formula of a DAG with the given number
// of stones: every vertex holds one of the stones, stones on sources
// are red, a vertex whose predecessors hold only red stones holds a red
// stone, and stones on sinks are blue. The variable P_{v,j} places
// stone j on vertex v and R_{j} colors stone j red.
func StoneFormula(d *graph.Digraph, stones int) (*cnf.CNF, error) {
	if d == nil {
		return nil, fmt.Errorf("stone formula: nil graph: %w", ErrPrecondition)
	}
	if !d.IsDAG() {
		return nil, fmt.Errorf("stone formula: input graph must be directed and acyclic: %w", ErrPrecondition)
	}
	if stones < 0 {
		return nil, fmt.Errorf("stone formula: stone count must be non-negative, got %d: %w", stones, ErrPrecondition)
	}

	f := cnf.New()
	if d.Name() != "" {
		f.Header = fmt.Sprintf("Stone formula of: %s with %d stones", d.Name(), stones)
	} else {
		f.Header = fmt.Sprintf("Stone formula with %d stones", stones)
	}

	placeVar := func(v, j int) cnf.Var {
		return cnf.Var(fmt.Sprintf("P_{%s,%d}", d.Label(v), j))
	}
	redVar := func(j int) cnf.Var {
		return cnf.IndexedVar("R", j)
	}

	allStones := intRange(1, stones)

	for _, v := range d.Vertices() {
		for _, j := range allStones {
			f.AddVariable(placeVar(v, j),
				fmt.Sprintf("Stone %d on vertex %s", j, d.Label(v)))
		}
	}
	for _, j := range allStones {
		f.AddVariable(redVar(j), fmt.Sprintf("Stone %d is red", j))
	}

	// each vertex holds some stone
	for _, v := range d.Vertices() {
		lits := make([]cnf.Literal, stones)
		for i, j := range allStones {
			lits[i] = cnf.Pos(placeVar(v, j))
		}
		f.AddClause(lits...)
	}

	for _, v := range d.Vertices() {
		preds := d.Predecessors(v)
		for _, j := range allStones {
			others := lo.Filter(allStones, func(s int, _ int) bool { return s != j })
			// red stones on all predecessors force a red stone here
			forEachProduct(others, len(preds), func(tuple []int) {
				var clause []cnf.Literal
				for i, p := range preds {
					clause = append(clause, cnf.Neg(placeVar(p, tuple[i])))
				}
				clause = append(clause, cnf.Neg(placeVar(v, j)))
				for _, s := range lo.Uniq(tuple) {
					clause = append(clause, cnf.Neg(redVar(s)))
				}
				clause = append(clause, cnf.Pos(redVar(j)))
				f.AddClause(clause...)
			})
		}

		if d.OutDegree(v) == 0 {
			for _, j := range allStones {
				f.AddClause(cnf.Neg(placeVar(v, j)), cnf.Neg(redVar(j)))
			}
		}
	}

	return f, nil
}
