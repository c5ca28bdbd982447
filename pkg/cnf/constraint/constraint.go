// Package constraint translates cardinality and parity constraints over
// propositional variables into explicit clause sets. The encodings are
// the standard minimal ones: binomially many clauses for thresholds and
// 2^(n-1) clauses for parity. No auxiliary-variable encodings are
// provided, so callers own the combinatorial blow-up for large inputs.
package constraint

import (
	"errors"
	"fmt"
	"math/bits"
	"strings"

	"github.com/sahmed95/cnfgen/pkg/cnf"
)

// ErrInfeasible signals a bound that makes the requested relation
// unsatisfiable for the given variable count, such as "at most -1" or
// "at least n+1". It is distinct from plain precondition errors so
// callers can tell a design error in the requesting generator apart
// from malformed input.
var ErrInfeasible = errors.New("infeasible cardinality bound")

// Constraint is a cardinality or parity relation over a fixed list of
// variables, from which a clause set can be produced.
type Constraint interface {
	String() string
	// Clauses returns the CNF encoding of the relation. A trivially
	// true relation yields an empty set; an unsatisfiable bound fails
	// with ErrInfeasible.
	Clauses() ([]cnf.Clause, error)
}

func varList(vars []cnf.Var) string {
	s := make([]string, len(vars))
	for i, v := range vars {
		s[i] = string(v)
	}
	return strings.Join(s, ", ")
}

// forEachSubset calls fn with every r-subset of vars in lexicographic
// order. fn must not retain the slice.
func forEachSubset(vars []cnf.Var, r int, fn func([]cnf.Var)) {
	n := len(vars)
	if r < 0 || r > n {
		return
	}
	if r == 0 {
		fn(nil)
		return
	}
	idx := make([]int, r)
	for i := range idx {
		idx[i] = i
	}
	sub := make([]cnf.Var, r)
	for {
		for i, j := range idx {
			sub[i] = vars[j]
		}
		fn(sub)
		// advance to the next combination
		i := r - 1
		for i >= 0 && idx[i] == n-r+i {
			i--
		}
		if i < 0 {
			return
		}
		idx[i]++
		for j := i + 1; j < r; j++ {
			idx[j] = idx[j-1] + 1
		}
	}
}

type AtMostConstraint struct {
	k    int
	vars []cnf.Var
}

// AtMost returns the constraint that at most k of the given variables
// are true, encoded as one all-negative clause per (k+1)-subset.
func AtMost(k int, vars ...cnf.Var) Constraint {
	return &AtMostConstraint{k: k, vars: vars}
}

func (c *AtMostConstraint) String() string {
	return fmt.Sprintf("at most %d of %s", c.k, varList(c.vars))
}

func (c *AtMostConstraint) Clauses() ([]cnf.Clause, error) {
	if c.k < 0 {
		return nil, fmt.Errorf("at most %d of %d variables: %w", c.k, len(c.vars), ErrInfeasible)
	}
	if c.k >= len(c.vars) {
		return nil, nil
	}
	var out []cnf.Clause
	forEachSubset(c.vars, c.k+1, func(sub []cnf.Var) {
		cl := make(cnf.Clause, len(sub))
		for i, v := range sub {
			cl[i] = cnf.Neg(v)
		}
		out = append(out, cl)
	})
	return out, nil
}

type AtLeastConstraint struct {
	k    int
	vars []cnf.Var
}

// AtLeast returns the constraint that at least k of the given variables
// are true, encoded as one all-positive clause per (n-k+1)-subset.
func AtLeast(k int, vars ...cnf.Var) Constraint {
	return &AtLeastConstraint{k: k, vars: vars}
}

func (c *AtLeastConstraint) String() string {
	return fmt.Sprintf("at least %d of %s", c.k, varList(c.vars))
}

func (c *AtLeastConstraint) Clauses() ([]cnf.Clause, error) {
	n := len(c.vars)
	if c.k > n {
		return nil, fmt.Errorf("at least %d of %d variables: %w", c.k, n, ErrInfeasible)
	}
	if c.k <= 0 {
		return nil, nil
	}
	var out []cnf.Clause
	forEachSubset(c.vars, n-c.k+1, func(sub []cnf.Var) {
		cl := make(cnf.Clause, len(sub))
		for i, v := range sub {
			cl[i] = cnf.Pos(v)
		}
		out = append(out, cl)
	})
	return out, nil
}

type ExactlyConstraint struct {
	k    int
	vars []cnf.Var
}

// Exactly returns the conjunction of AtMost(k) and AtLeast(k).
func Exactly(k int, vars ...cnf.Var) Constraint {
	return &ExactlyConstraint{k: k, vars: vars}
}

func (c *ExactlyConstraint) String() string {
	return fmt.Sprintf("exactly %d of %s", c.k, varList(c.vars))
}

func (c *ExactlyConstraint) Clauses() ([]cnf.Clause, error) {
	upper, err := AtMost(c.k, c.vars...).Clauses()
	if err != nil {
		return nil, err
	}
	lower, err := AtLeast(c.k, c.vars...).Clauses()
	if err != nil {
		return nil, err
	}
	return append(upper, lower...), nil
}

type LessThanConstraint struct {
	k    int
	vars []cnf.Var
}

// LessThan returns the strict variant of AtMost, i.e. at most k-1.
func LessThan(k int, vars ...cnf.Var) Constraint {
	return &LessThanConstraint{k: k, vars: vars}
}

func (c *LessThanConstraint) String() string {
	return fmt.Sprintf("less than %d of %s", c.k, varList(c.vars))
}

func (c *LessThanConstraint) Clauses() ([]cnf.Clause, error) {
	return AtMost(c.k-1, c.vars...).Clauses()
}

type GreaterThanConstraint struct {
	k    int
	vars []cnf.Var
}

// GreaterThan returns the strict variant of AtLeast, i.e. at least k+1.
func GreaterThan(k int, vars ...cnf.Var) Constraint {
	return &GreaterThanConstraint{k: k, vars: vars}
}

func (c *GreaterThanConstraint) String() string {
	return fmt.Sprintf("greater than %d of %s", c.k, varList(c.vars))
}

func (c *GreaterThanConstraint) Clauses() ([]cnf.Clause, error) {
	return AtLeast(c.k+1, c.vars...).Clauses()
}

type LooseMinorityConstraint struct {
	vars []cnf.Var
}

// LooseMinority returns the constraint that at most half of the given
// variables are true, with ties allowed, i.e. AtMost(ceil(n/2)).
func LooseMinority(vars ...cnf.Var) Constraint {
	return &LooseMinorityConstraint{vars: vars}
}

func (c *LooseMinorityConstraint) String() string {
	return fmt.Sprintf("loose minority of %s", varList(c.vars))
}

func (c *LooseMinorityConstraint) Clauses() ([]cnf.Clause, error) {
	return AtMost((len(c.vars)+1)/2, c.vars...).Clauses()
}

type LooseMajorityConstraint struct {
	vars []cnf.Var
}

// LooseMajority returns the constraint that at least half of the given
// variables are true, i.e. AtLeast(ceil(n/2)).
func LooseMajority(vars ...cnf.Var) Constraint {
	return &LooseMajorityConstraint{vars: vars}
}

func (c *LooseMajorityConstraint) String() string {
	return fmt.Sprintf("loose majority of %s", varList(c.vars))
}

func (c *LooseMajorityConstraint) Clauses() ([]cnf.Clause, error) {
	return AtLeast((len(c.vars)+1)/2, c.vars...).Clauses()
}

type ParityConstraint struct {
	parity bool
	vars   []cnf.Var
}

// Parity returns the constraint that the XOR of the given variables
// equals the target bit: one clause per assignment of the wrong parity,
// 2^(n-1) clauses in total for n >= 1. With no variables the constraint
// is trivially true for an even target and yields a single empty
// (unsatisfiable) clause for an odd one.
func Parity(parity bool, vars ...cnf.Var) Constraint {
	return &ParityConstraint{parity: parity, vars: vars}
}

func (c *ParityConstraint) String() string {
	bit := 0
	if c.parity {
		bit = 1
	}
	return fmt.Sprintf("xor of %s equals %d", varList(c.vars), bit)
}

func (c *ParityConstraint) Clauses() ([]cnf.Clause, error) {
	n := len(c.vars)
	want := 0
	if c.parity {
		want = 1
	}
	if n == 0 {
		if c.parity {
			return []cnf.Clause{{}}, nil
		}
		return nil, nil
	}
	out := make([]cnf.Clause, 0, 1<<(n-1))
	for mask := 0; mask < 1<<n; mask++ {
		if bits.OnesCount(uint(mask))%2 == want {
			continue
		}
		// forbid this exact assignment: bit i set means vars[i] true
		cl := make(cnf.Clause, n)
		for i, v := range c.vars {
			if mask&(1<<i) != 0 {
				cl[i] = cnf.Neg(v)
			} else {
				cl[i] = cnf.Pos(v)
			}
		}
		out = append(out, cl)
	}
	return out, nil
}
