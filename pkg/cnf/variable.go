package cnf

import (
	"fmt"
	"strconv"
	"strings"
)

// Var values uniquely identify propositional variables within a single
// CNF instance. Two structurally equal inputs must map to the same Var,
// so all derived names go through the deterministic formatters below.
type Var string

func (v Var) String() string {
	return string(v)
}

// VarFromString returns a Var based on a provided string.
func VarFromString(s string) Var {
	return Var(s)
}

// IndexedVar formats a variable name from a prefix and a sequence of
// indices, e.g. IndexedVar("x", 1, 2) is "x_{1,2}".
func IndexedVar(prefix string, indices ...int) Var {
	s := make([]string, len(indices))
	for i, idx := range indices {
		s[i] = strconv.Itoa(idx)
	}
	return Var(fmt.Sprintf("%s_{%s}", prefix, strings.Join(s, ",")))
}

// EdgeVar formats a variable name for an unordered pair by putting the
// endpoints in canonical (min,max) order, so that both orientations of
// an edge yield the same name.
func EdgeVar(prefix string, u, v int) Var {
	if u > v {
		u, v = v, u
	}
	return IndexedVar(prefix, u, v)
}

// PairVar formats a variable name for an ordered pair. Unlike EdgeVar
// the orientation is preserved.
func PairVar(prefix string, a, b int) Var {
	return IndexedVar(prefix, a, b)
}

// Literal is a positive or negated occurrence of a variable.
type Literal struct {
	Polarity bool
	Var      Var
}

// Pos returns the positive literal of v.
func Pos(v Var) Literal {
	return Literal{Polarity: true, Var: v}
}

// Neg returns the negated literal of v.
func Neg(v Var) Literal {
	return Literal{Polarity: false, Var: v}
}

// Negate returns the literal with the opposite polarity.
func (l Literal) Negate() Literal {
	return Literal{Polarity: !l.Polarity, Var: l.Var}
}

func (l Literal) String() string {
	if l.Polarity {
		return string(l.Var)
	}
	return "~" + string(l.Var)
}

// Clause is a disjunction of literals. Insertion order is preserved for
// reproducibility but carries no logical meaning.
type Clause []Literal
