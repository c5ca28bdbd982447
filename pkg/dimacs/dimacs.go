// Package dimacs serializes CNF instances to the DIMACS textual format
// consumed by SAT solvers, and parses DIMACS streams back into CNF
// instances.
// see: https://logic.pdmi.ras.ru/~basolver/dimacs.html
package dimacs

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/sahmed95/cnfgen/pkg/cnf"
)

// Write emits f in DIMACS format. With exportHeader the formula header
// and the variable descriptions are included as comment lines.
func Write(w io.Writer, f *cnf.CNF, exportHeader bool) error {
	bw := bufio.NewWriter(w)

	if exportHeader {
		for _, line := range strings.Split(f.Header, "\n") {
			if _, err := fmt.Fprintf(bw, "c %s\n", line); err != nil {
				return err
			}
		}
		for _, v := range f.Variables() {
			if desc := f.Description(v); desc != "" {
				if _, err := fmt.Fprintf(bw, "c var %s : %s\n", v, desc); err != nil {
					return err
				}
			}
		}
	}

	if _, err := fmt.Fprintf(bw, "p cnf %d %d\n", f.VariableCount(), f.ClauseCount()); err != nil {
		return err
	}

	for _, clause := range f.Clauses() {
		for _, lit := range clause {
			idx, ok := f.IndexOf(lit.Var)
			if !ok {
				return fmt.Errorf("dimacs: clause references unknown variable %q", lit.Var)
			}
			if !lit.Polarity {
				idx = -idx
			}
			if _, err := fmt.Fprintf(bw, "%d ", idx); err != nil {
				return err
			}
		}
		if _, err := bw.WriteString("0\n"); err != nil {
			return err
		}
	}

	return bw.Flush()
}
