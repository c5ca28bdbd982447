package families

import (
	"fmt"

	"github.com/sahmed95/cnfgen/pkg/cnf"
	"github.com/sahmed95/cnfgen/pkg/cnf/constraint"
	"github.com/sahmed95/cnfgen/pkg/graph"
)

func colorVar(vertex, color int) cnf.Var {
	return cnf.IndexedVar("x", vertex, color)
}

// ColoringFormula builds the CNF claiming that g has a proper vertex
// coloring with the given number of colors: every vertex gets exactly
// one of the colors 1..colors and adjacent vertices get different
// colors.
func ColoringFormula(g *graph.Graph, colors int) (*cnf.CNF, error) {
	if g == nil {
		return nil, fmt.Errorf("coloring formula: nil graph: %w", ErrPrecondition)
	}
	if colors < 0 {
		return nil, fmt.Errorf("coloring formula: color count must be non-negative, got %d: %w", colors, ErrPrecondition)
	}

	f := cnf.New()
	f.Header = fmt.Sprintf("Colorability with %d colors of graph %s", colors, g.Name())

	palette := intRange(1, colors)
	for _, v := range g.Vertices() {
		vars := make([]cnf.Var, colors)
		lits := make([]cnf.Literal, colors)
		for i, c := range palette {
			vars[i] = colorVar(v, c)
			lits[i] = cnf.Pos(vars[i])
		}
		// some color, and only one
		f.AddClause(lits...)
		cs, err := constraint.AtMost(1, vars...).Clauses()
		if err != nil {
			return nil, err
		}
		f.AddClauses(cs)
	}

	for _, e := range g.Edges() {
		for _, c := range palette {
			f.AddClause(
				cnf.Neg(colorVar(e[0], c)),
				cnf.Neg(colorVar(e[1], c)))
		}
	}

	return f, nil
}
