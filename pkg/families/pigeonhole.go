package families

import (
	"fmt"

	"github.com/sahmed95/cnfgen/pkg/cnf"
	"github.com/sahmed95/cnfgen/pkg/cnf/constraint"
	"github.com/sahmed95/cnfgen/pkg/graph"
)

func pigeonVar(pigeon, hole int) cnf.Var {
	return cnf.IndexedVar("p", pigeon, hole)
}

// PigeonholePrinciple builds the CNF claiming that the given number of
// pigeons fits into the given number of holes, no hole hosting two
// pigeons. With more pigeons than holes the formula is unsatisfiable.
// The functional variant adds "each pigeon sits in at most one hole";
// the onto variant adds "every hole hosts a pigeon".
//
// Variables are p_{i,j} for pigeon i in 1..pigeons and hole j in
// 1..holes.
func PigeonholePrinciple(pigeons, holes int, functional, onto bool) (*cnf.CNF, error) {
	if pigeons < 0 || holes < 0 {
		return nil, fmt.Errorf("pigeonhole principle: pigeon and hole counts must be non-negative, got (%d,%d): %w", pigeons, holes, ErrPrecondition)
	}

	f := cnf.New()
	f.Header = fmt.Sprintf("Pigeonhole principle formula for %d pigeons and %d holes", pigeons, holes)

	for i := 1; i <= pigeons; i++ {
		for j := 1; j <= holes; j++ {
			f.AddVariable(pigeonVar(i, j),
				fmt.Sprintf("Pigeon %d sits in hole %d", i, j))
		}
	}

	holeRange := intRange(1, holes)
	for i := 1; i <= pigeons; i++ {
		row := make([]cnf.Var, holes)
		lits := make([]cnf.Literal, holes)
		for j, h := range holeRange {
			row[j] = pigeonVar(i, h)
			lits[j] = cnf.Pos(row[j])
		}
		f.AddClause(lits...)
		if functional {
			cs, err := constraint.AtMost(1, row...).Clauses()
			if err != nil {
				return nil, err
			}
			f.AddClauses(cs)
		}
	}

	for j := 1; j <= holes; j++ {
		column := make([]cnf.Var, pigeons)
		for i := range column {
			column[i] = pigeonVar(i+1, j)
		}
		if onto {
			lits := make([]cnf.Literal, pigeons)
			for i, v := range column {
				lits[i] = cnf.Pos(v)
			}
			f.AddClause(lits...)
		}
		cs, err := constraint.AtMost(1, column...).Clauses()
		if err != nil {
			return nil, err
		}
		f.AddClauses(cs)
	}

	return f, nil
}

// GraphPigeonholePrinciple builds the pigeonhole principle restricted
// to a bipartite graph: pigeon i may only sit in the holes adjacent to
// it. Variables are p_{u,v} for each edge, with u the left vertex and v
// the global identifier of the right vertex.
func GraphPigeonholePrinciple(b *graph.Bipartite, functional, onto bool) (*cnf.CNF, error) {
	if b == nil {
		return nil, fmt.Errorf("graph pigeonhole principle: nil graph: %w", ErrPrecondition)
	}

	f := cnf.New()
	f.Header = fmt.Sprintf("Pigeonhole principle formula on bipartite graph %s", b.Name())

	edgeVars := func(l int) []cnf.Var {
		neighbors := b.LeftNeighbors(l)
		vars := make([]cnf.Var, len(neighbors))
		for i, r := range neighbors {
			vars[i] = pigeonVar(l, b.RightID(r))
		}
		return vars
	}

	for _, e := range b.Edges() {
		f.AddVariable(pigeonVar(e[0], b.RightID(e[1])),
			fmt.Sprintf("Pigeon %d sits in hole %d", e[0], b.RightID(e[1])))
	}

	for l := 0; l < b.Left(); l++ {
		vars := edgeVars(l)
		lits := make([]cnf.Literal, len(vars))
		for i, v := range vars {
			lits[i] = cnf.Pos(v)
		}
		f.AddClause(lits...)
		if functional {
			cs, err := constraint.AtMost(1, vars...).Clauses()
			if err != nil {
				return nil, err
			}
			f.AddClauses(cs)
		}
	}

	for r := 0; r < b.Right(); r++ {
		neighbors := b.RightNeighbors(r)
		vars := make([]cnf.Var, len(neighbors))
		for i, l := range neighbors {
			vars[i] = pigeonVar(l, b.RightID(r))
		}
		if onto {
			lits := make([]cnf.Literal, len(vars))
			for i, v := range vars {
				lits[i] = cnf.Pos(v)
			}
			f.AddClause(lits...)
		}
		cs, err := constraint.AtMost(1, vars...).Clauses()
		if err != nil {
			return nil, err
		}
		f.AddClauses(cs)
	}

	return f, nil
}
