package sat

import (
	"github.com/go-air/gini/inter"
	"github.com/go-air/gini/z"

	"github.com/sahmed95/cnfgen/pkg/cnf"
)

// litMapping performs translation between the named variables of a
// formula and the literals that appear in the solver instance. The
// variable registered at index i maps to the DIMACS literal i.
type litMapping struct {
	formula *cnf.CNF
	order   []cnf.Var
}

func newLitMapping(f *cnf.CNF) *litMapping {
	return &litMapping{
		formula: f,
		order:   f.Variables(),
	}
}

// LitOf returns the solver literal corresponding to lit. The variable
// must be registered in the formula.
func (d *litMapping) LitOf(lit cnf.Literal) (z.Lit, bool) {
	idx, ok := d.formula.IndexOf(lit.Var)
	if !ok {
		return z.LitNull, false
	}
	if !lit.Polarity {
		idx = -idx
	}
	return z.Dimacs2Lit(idx), true
}

// AddClauses teaches every clause of the formula to the solver g.
// Variables are added first so that solver literals exist even for
// variables no clause mentions.
func (d *litMapping) AddClauses(g inter.S) error {
	for range d.order {
		g.Lit()
	}
	for _, clause := range d.formula.Clauses() {
		for _, lit := range clause {
			m, ok := d.LitOf(lit)
			if !ok {
				return cnf.UnregisteredVariable(lit.Var)
			}
			g.Add(m)
		}
		g.Add(z.LitNull)
	}
	return nil
}

// Assignment reads the model held by g back into a map keyed by
// variable name.
func (d *litMapping) Assignment(g inter.S) map[cnf.Var]bool {
	model := make(map[cnf.Var]bool, len(d.order))
	for i, v := range d.order {
		model[v] = g.Value(z.Dimacs2Lit(i + 1))
	}
	return model
}
