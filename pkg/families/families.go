// Package families contains the catalog of formula family
// constructors. Each constructor maps a combinatorial structure and
// family-specific parameters to a CNF instance encoding a mathematical
// claim about that structure, building exclusively through the cnf
// container and the constraint encoders.
//
// All constructors validate their preconditions before registering any
// variable, derive variable names deterministically from structure
// elements, and never mutate their input.
package families

import (
	"errors"
)

// ErrPrecondition is wrapped by every constructor error caused by
// invalid parameters or structures, raised before any variable is
// registered.
var ErrPrecondition = errors.New("invalid family parameters")

// ErrSamplingBudget signals that rejection sampling could not produce
// the requested number of distinct clauses within its retry budget,
// meaning the requested density is infeasible to sample this way.
var ErrSamplingBudget = errors.New("rejection sampling budget exhausted")

// forEachCombination calls fn with every r-subset of vals in
// lexicographic order. fn must not retain the slice.
func forEachCombination(vals []int, r int, fn func([]int)) {
	n := len(vals)
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
	sub := make([]int, r)
	for {
		for i, j := range idx {
			sub[i] = vals[j]
		}
		fn(sub)
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

// forEachProduct calls fn with every length-r tuple over vals, in
// odometer order (last position varies fastest). fn must not retain the
// slice. r == 0 yields a single empty tuple.
func forEachProduct(vals []int, r int, fn func([]int)) {
	if r < 0 {
		return
	}
	tuple := make([]int, r)
	var rec func(pos int)
	rec = func(pos int) {
		if pos == r {
			fn(tuple)
			return
		}
		for _, v := range vals {
			tuple[pos] = v
			rec(pos + 1)
		}
	}
	rec(0)
}

func intRange(from, n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = from + i
	}
	return out
}
