// Package cnf holds the propositional CNF container shared by all
// formula generators: a variable registry with stable first-use
// enumeration order and an append-only clause store.
package cnf

import (
	"fmt"
)

// UnregisteredVariable is the error returned when a strict clause
// references a variable missing from the registry.
type UnregisteredVariable Var

func (e UnregisteredVariable) Error() string {
	return fmt.Sprintf("unregistered variable %q in strict clause", string(e))
}

// CNF is a formula in conjunctive normal form under construction. It is
// owned by exactly one generator at a time; once returned to the caller
// it is read-only by convention.
//
// The variable registry is append-only: the first registration of a
// name fixes its 1-based index for the lifetime of the instance, and
// Variables enumerates names in that order. Clauses are stored verbatim
// with no simplification or deduplication, since proof-complexity
// applications depend on exact clause multiplicity.
type CNF struct {
	// Header carries free-text provenance emitted as comments by
	// serializers. It is never interpreted.
	Header string

	index        map[Var]int
	order        []Var
	descriptions map[Var]string
	clauses      []Clause
}

// New returns an empty CNF instance.
func New() *CNF {
	return &CNF{
		index:        make(map[Var]int),
		descriptions: make(map[Var]string),
	}
}

// AddVariable registers v if absent and returns its 1-based index.
// Re-adding a registered variable is a no-op and does not disturb the
// enumeration order. An optional description documents the variable's
// intended meaning.
func (f *CNF) AddVariable(v Var, description ...string) int {
	idx, ok := f.index[v]
	if !ok {
		f.order = append(f.order, v)
		idx = len(f.order)
		f.index[v] = idx
	}
	if len(description) > 0 && description[0] != "" {
		f.descriptions[v] = description[0]
	}
	return idx
}

// AddClause appends a clause. Variables not yet in the registry are
// auto-registered in literal order before the clause is stored.
func (f *CNF) AddClause(lits ...Literal) {
	for _, l := range lits {
		f.AddVariable(l.Var)
	}
	f.clauses = append(f.clauses, Clause(lits))
}

// AddStrictClause appends a clause whose variables must all be
// registered already. On failure the clause store and the registry are
// left untouched.
func (f *CNF) AddStrictClause(lits ...Literal) error {
	for _, l := range lits {
		if _, ok := f.index[l.Var]; !ok {
			return UnregisteredVariable(l.Var)
		}
	}
	f.clauses = append(f.clauses, Clause(lits))
	return nil
}

// AddClauses appends every clause in cs, auto-registering variables.
func (f *CNF) AddClauses(cs []Clause) {
	for _, c := range cs {
		f.AddClause(c...)
	}
}

// AddStrictClauses appends every clause in cs, failing on the first
// clause that references an unregistered variable. Clauses before the
// offending one remain stored.
func (f *CNF) AddStrictClauses(cs []Clause) error {
	for _, c := range cs {
		if err := f.AddStrictClause(c...); err != nil {
			return err
		}
	}
	return nil
}

// Variables returns the registered variables in first-registration
// order. The returned slice is a copy.
func (f *CNF) Variables() []Var {
	out := make([]Var, len(f.order))
	copy(out, f.order)
	return out
}

// Clauses returns the stored clauses in insertion order. The returned
// slice is a copy; the clauses themselves are shared and must not be
// mutated.
func (f *CNF) Clauses() []Clause {
	out := make([]Clause, len(f.clauses))
	copy(out, f.clauses)
	return out
}

// IndexOf reports the 1-based index of v, if registered.
func (f *CNF) IndexOf(v Var) (int, bool) {
	idx, ok := f.index[v]
	return idx, ok
}

// Description returns the description attached to v, or the empty
// string.
func (f *CNF) Description(v Var) string {
	return f.descriptions[v]
}

// VariableCount returns the number of registered variables.
func (f *CNF) VariableCount() int {
	return len(f.order)
}

// ClauseCount returns the number of stored clauses.
func (f *CNF) ClauseCount() int {
	return len(f.clauses)
}
