package families

import (
	"fmt"

	"github.com/sahmed95/cnfgen/pkg/cnf"
	"github.com/sahmed95/cnfgen/pkg/cnf/constraint"
	"github.com/sahmed95/cnfgen/pkg/graph"
)

// TseitinFormula builds the Tseitin formula on g: each edge carries a
// variable and for every vertex the XOR of its incident edge variables
// must equal the vertex's charge. If charges is nil, the first vertex
// gets an odd charge and every other vertex an even one; a shorter
// charge vector is padded with even charges. The formula is
// unsatisfiable exactly when some connected component has odd total
// charge.
func TseitinFormula(g *graph.Graph, charges []bool) (*cnf.CNF, error) {
	if g == nil {
		return nil, fmt.Errorf("tseitin formula: nil graph: %w", ErrPrecondition)
	}
	n := g.Order()
	if len(charges) > n {
		return nil, fmt.Errorf("tseitin formula: %d charges for %d vertices: %w", len(charges), n, ErrPrecondition)
	}
	if charges == nil && n > 0 {
		charges = make([]bool, n)
		charges[0] = true
	}
	for len(charges) < n {
		charges = append(charges, false)
	}

	f := cnf.New()
	f.Header = fmt.Sprintf("Tseitin formula on graph %s", g.Name())

	for _, e := range g.Edges() {
		f.AddVariable(cnf.EdgeVar("E", e[0], e[1]),
			fmt.Sprintf("Edge {%d,%d} is charged", e[0], e[1]))
	}

	for _, v := range g.Vertices() {
		neighbors := g.Neighbors(v)
		vars := make([]cnf.Var, len(neighbors))
		for i, u := range neighbors {
			vars[i] = cnf.EdgeVar("E", v, u)
		}
		cs, err := constraint.Parity(charges[v], vars...).Clauses()
		if err != nil {
			return nil, err
		}
		f.AddClauses(cs)
	}

	return f, nil
}
