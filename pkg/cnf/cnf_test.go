package cnf_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sahmed95/cnfgen/pkg/cnf"
)

func TestAddVariableAssignsIndexesInRegistrationOrder(t *testing.T) {
	f := cnf.New()
	assert.Equal(t, 1, f.AddVariable("a"))
	assert.Equal(t, 2, f.AddVariable("b"))
	assert.Equal(t, 3, f.AddVariable("c"))
	assert.Equal(t, []cnf.Var{"a", "b", "c"}, f.Variables())
}

func TestAddVariableIsIdempotent(t *testing.T) {
	f := cnf.New()
	assert.Equal(t, 1, f.AddVariable("a"))
	assert.Equal(t, 2, f.AddVariable("b"))
	assert.Equal(t, 1, f.AddVariable("a"))
	assert.Equal(t, []cnf.Var{"a", "b"}, f.Variables())
	assert.Equal(t, 2, f.VariableCount())
}

func TestAddVariableKeepsDescription(t *testing.T) {
	f := cnf.New()
	f.AddVariable("p_{1,2}", "pigeon 1 sits in hole 2")
	assert.Equal(t, "pigeon 1 sits in hole 2", f.Description("p_{1,2}"))
	assert.Equal(t, "", f.Description("missing"))

	// re-registering without a description keeps the old one
	f.AddVariable("p_{1,2}")
	assert.Equal(t, "pigeon 1 sits in hole 2", f.Description("p_{1,2}"))
}

func TestAddClauseAutoRegistersVariables(t *testing.T) {
	f := cnf.New()
	f.AddVariable("a")
	f.AddClause(cnf.Pos("b"), cnf.Neg("a"), cnf.Pos("c"))

	assert.Equal(t, []cnf.Var{"a", "b", "c"}, f.Variables())
	require.Equal(t, 1, f.ClauseCount())
	assert.Equal(t, cnf.Clause{cnf.Pos("b"), cnf.Neg("a"), cnf.Pos("c")}, f.Clauses()[0])
}

func TestClausesAreStoredVerbatim(t *testing.T) {
	f := cnf.New()
	f.AddClause(cnf.Pos("a"), cnf.Pos("b"))
	f.AddClause(cnf.Pos("a"), cnf.Pos("b"))
	f.AddClause(cnf.Pos("a"), cnf.Neg("a"))

	// no deduplication, no tautology elimination
	assert.Equal(t, 3, f.ClauseCount())
}

func TestAddStrictClauseRejectsUnregisteredVariables(t *testing.T) {
	f := cnf.New()
	f.AddVariable("a")

	err := f.AddStrictClause(cnf.Pos("a"), cnf.Neg("b"))
	require.Error(t, err)
	var unregistered cnf.UnregisteredVariable
	require.True(t, errors.As(err, &unregistered))
	assert.Equal(t, cnf.UnregisteredVariable("b"), unregistered)

	// the failed clause must not leave any trace
	assert.Equal(t, 0, f.ClauseCount())
	assert.Equal(t, []cnf.Var{"a"}, f.Variables())
}

func TestAddStrictClauseAcceptsRegisteredVariables(t *testing.T) {
	f := cnf.New()
	f.AddVariable("a")
	f.AddVariable("b")
	require.NoError(t, f.AddStrictClause(cnf.Neg("a"), cnf.Pos("b")))
	assert.Equal(t, 1, f.ClauseCount())
}

func TestAddStrictClausesStopsAtFirstFailure(t *testing.T) {
	f := cnf.New()
	f.AddVariable("a")

	err := f.AddStrictClauses([]cnf.Clause{
		{cnf.Pos("a")},
		{cnf.Pos("x")},
		{cnf.Neg("a")},
	})
	require.Error(t, err)
	assert.Equal(t, 1, f.ClauseCount())
}

func TestIndexOf(t *testing.T) {
	f := cnf.New()
	f.AddVariable("a")
	f.AddVariable("b")

	idx, ok := f.IndexOf("b")
	assert.True(t, ok)
	assert.Equal(t, 2, idx)

	_, ok = f.IndexOf("c")
	assert.False(t, ok)
}

func TestVariablesReturnsACopy(t *testing.T) {
	f := cnf.New()
	f.AddVariable("a")
	vars := f.Variables()
	vars[0] = "mutated"
	assert.Equal(t, []cnf.Var{"a"}, f.Variables())
}

func TestLiteralHelpers(t *testing.T) {
	assert.Equal(t, "x_{1,2}", cnf.Pos(cnf.IndexedVar("x", 1, 2)).String())
	assert.Equal(t, "~x_{1,2}", cnf.Neg(cnf.IndexedVar("x", 1, 2)).String())
	assert.Equal(t, cnf.Neg("a"), cnf.Pos("a").Negate())
	assert.Equal(t, cnf.Pos("a"), cnf.Neg("a").Negate())
}

func TestVarFormatters(t *testing.T) {
	assert.Equal(t, cnf.Var("p_{3}"), cnf.IndexedVar("p", 3))
	assert.Equal(t, cnf.Var("p_{3,1,4}"), cnf.IndexedVar("p", 3, 1, 4))

	// edge variables are canonical in the endpoint order
	assert.Equal(t, cnf.EdgeVar("E", 2, 7), cnf.EdgeVar("E", 7, 2))
	assert.Equal(t, cnf.Var("E_{2,7}"), cnf.EdgeVar("E", 7, 2))

	// pair variables are not
	assert.NotEqual(t, cnf.PairVar("x", 2, 7), cnf.PairVar("x", 7, 2))
}
