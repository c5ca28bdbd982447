package sat_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sahmed95/cnfgen/pkg/cnf"
	"github.com/sahmed95/cnfgen/pkg/sat"
)

func TestSolveReturnsAModel(t *testing.T) {
	f := cnf.New()
	f.AddClause(cnf.Pos("a"), cnf.Pos("b"))
	f.AddClause(cnf.Neg("a"))

	model, err := sat.NewSolver().Solve(context.Background(), f)
	require.NoError(t, err)
	require.NotNil(t, model)
	assert.False(t, model["a"])
	assert.True(t, model["b"])
}

func TestSolveCoversClauselessVariables(t *testing.T) {
	f := cnf.New()
	f.AddVariable("lonely")
	f.AddClause(cnf.Pos("a"))

	model, err := sat.NewSolver().Solve(context.Background(), f)
	require.NoError(t, err)
	require.NotNil(t, model)
	_, ok := model["lonely"]
	assert.True(t, ok)
	assert.Len(t, model, 2)
}

func TestSolveUnsatisfiable(t *testing.T) {
	f := cnf.New()
	f.AddClause(cnf.Pos("a"))
	f.AddClause(cnf.Neg("a"))

	model, err := sat.NewSolver().Solve(context.Background(), f)
	require.NoError(t, err)
	assert.Nil(t, model)
}

func TestSatisfiable(t *testing.T) {
	f := cnf.New()
	f.AddClause(cnf.Pos("a"), cnf.Neg("b"))

	ok, err := sat.NewSolver().Satisfiable(context.Background(), f)
	require.NoError(t, err)
	assert.True(t, ok)

	g := cnf.New()
	g.AddClause()
	ok, err = sat.NewSolver().Satisfiable(context.Background(), g)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestEmptyFormulaIsSatisfiable(t *testing.T) {
	ok, err := sat.NewSolver().Satisfiable(context.Background(), cnf.New())
	require.NoError(t, err)
	assert.True(t, ok)
}
