// Package sat decides satisfiability of CNF formulas with the gini
// solver.
package sat

import (
	"context"
	"errors"
	"time"

	"github.com/go-air/gini"
	"github.com/go-air/gini/inter"

	"github.com/sahmed95/cnfgen/pkg/cnf"
)

// ErrIncomplete is returned when the solver gives up before reaching a
// verdict, typically because the Context was cancelled.
var ErrIncomplete = errors.New("cancelled before a solution could be found")

const (
	satisfiable   = 1
	unsatisfiable = -1
)

// Solver decides CNF formulas.
type Solver interface {
	Solve(ctx context.Context, f *cnf.CNF) (map[cnf.Var]bool, error)
	Satisfiable(ctx context.Context, f *cnf.CNF) (bool, error)
}

type solver struct {
	newS func() inter.S
}

// NewSolver returns a Solver backed by a fresh gini instance per call.
func NewSolver() Solver {
	return &solver{newS: func() inter.S { return gini.New() }}
}

// Solve returns a satisfying assignment for f, covering every
// registered variable, or nil if f is unsatisfiable. An error is
// returned if the verdict could not be reached.
func (s *solver) Solve(ctx context.Context, f *cnf.CNF) (map[cnf.Var]bool, error) {
	g := s.newS()
	litMap := newLitMapping(f)
	if err := litMap.AddClauses(g); err != nil {
		return nil, err
	}
	switch solveWithContext(ctx, g) {
	case satisfiable:
		return litMap.Assignment(g), nil
	case unsatisfiable:
		return nil, nil
	}
	return nil, ErrIncomplete
}

// Satisfiable reports whether f has a satisfying assignment.
func (s *solver) Satisfiable(ctx context.Context, f *cnf.CNF) (bool, error) {
	model, err := s.Solve(ctx, f)
	if err != nil {
		return false, err
	}
	return model != nil, nil
}

// solveWithContext drives an asynchronous solve, polling so that a
// cancelled Context can stop long-running searches. The gini handle is
// not goroutine safe, so polling stays on the calling goroutine.
func solveWithContext(ctx context.Context, g inter.S) int {
	solve := g.GoSolve()
	for {
		if r := solve.Try(10 * time.Millisecond); r != 0 {
			return r
		}
		if r, done := solve.Test(); done {
			return r
		}
		select {
		case <-ctx.Done():
			return solve.Stop()
		default:
		}
	}
}
