package families

import (
	"fmt"
	"math/rand"
	"sort"
	"strings"

	"github.com/sahmed95/cnfgen/pkg/cnf"
)

// RandomKCNF samples a random k-CNF: m clauses of width k over n
// variables, drawn uniformly without repetition. A clause that was
// already drawn is rejected and sampled again, up to a budget of 10*m
// attempts; exhausting the budget fails with ErrSamplingBudget, which
// means the requested density is too close to the total number of
// possible clauses for rejection sampling.
//
// The generator is seeded with the given seed, so identical
// (k, n, m, seed) tuples reproduce identical formulas.
func RandomKCNF(k, n, m int, seed int64) (*cnf.CNF, error) {
	if k < 0 || n < 0 || m < 0 {
		return nil, fmt.Errorf("random k-CNF: parameters must be non-negative, got (k=%d,n=%d,m=%d): %w", k, n, m, ErrPrecondition)
	}
	if k > n {
		return nil, fmt.Errorf("random k-CNF: clause width %d exceeds variable count %d: %w", k, n, ErrPrecondition)
	}

	rng := rand.New(rand.NewSource(seed))

	f := cnf.New()
	f.Header = fmt.Sprintf("Random %d-CNF over %d variables and %d clauses", k, n, m)

	for i := 1; i <= n; i++ {
		f.AddVariable(cnf.IndexedVar("x", i))
	}

	seen := make(map[string]struct{}, m)
	clauses := make([]cnf.Clause, 0, m)
	for t := 0; len(clauses) < m && t < 10*m; t++ {
		indices := rng.Perm(n)[:k]
		sort.Ints(indices)
		clause := make(cnf.Clause, k)
		for i, idx := range indices {
			v := cnf.IndexedVar("x", idx+1)
			if rng.Intn(2) == 1 {
				clause[i] = cnf.Pos(v)
			} else {
				clause[i] = cnf.Neg(v)
			}
		}
		key := clauseKey(clause)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		clauses = append(clauses, clause)
	}
	if len(clauses) < m {
		return nil, fmt.Errorf("random k-CNF: sampled %d of %d clauses: %w", len(clauses), m, ErrSamplingBudget)
	}

	for _, clause := range clauses {
		if err := f.AddStrictClause(clause...); err != nil {
			return nil, err
		}
	}

	return f, nil
}

func clauseKey(clause cnf.Clause) string {
	var b strings.Builder
	for _, l := range clause {
		b.WriteString(l.String())
		b.WriteByte(' ')
	}
	return b.String()
}
