package dimacs

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"

	"github.com/sahmed95/cnfgen/pkg/cnf"
)

// Parse builds a CNF instance from the DIMACS formatted stream afforded
// by r. Variables are named "1" through "<variables>" in index order.
func Parse(r io.Reader) (*cnf.CNF, error) {
	reader := bufio.NewReader(r)

	numVariables := 0
	numClauses := 0
	seenHeader := false
	var clauses []cnf.Clause

	commentLine := regexp.MustCompile(`^c\s*.*`)
	headerLine := regexp.MustCompile(`^p cnf\s+\d+\s+\d+\s*`)
	clauseLine := regexp.MustCompile(`^(-?\d+\s+)*0`)
	cleanInput := regexp.MustCompile(`\s\s+`)

	for {
		line, err := reader.ReadString('\n')
		if err != nil {
			if errors.Is(err, io.EOF) && line == "" {
				break
			}
			if !errors.Is(err, io.EOF) {
				return nil, fmt.Errorf("error reading dimacs data: %w", err)
			}
		}
		line = strings.TrimSpace(line)
		if line == "" {
			if err != nil {
				break
			}
			continue
		}

		// ignore comments
		if commentLine.MatchString(line) {
			if err != nil {
				break
			}
			continue
		}

		// parse header
		if headerLine.MatchString(line) {
			if seenHeader {
				return nil, fmt.Errorf("invalid dimacs format: duplicate header (%s)", line)
			}
			line = cleanInput.ReplaceAllString(line, " ")
			problem := strings.Split(line, " ")
			if len(problem) != 4 {
				return nil, fmt.Errorf("invalid statement: (%s). Valid format is p cnf <variables> <clauses>", line)
			}
			numVariables, err = strconv.Atoi(problem[2])
			if err != nil {
				return nil, fmt.Errorf("invalid number (%s) in statement (%s)", problem[2], line)
			}
			numClauses, err = strconv.Atoi(problem[3])
			if err != nil {
				return nil, fmt.Errorf("invalid number (%s) in statement (%s)", problem[3], line)
			}
			seenHeader = true
			clauses = make([]cnf.Clause, 0, numClauses)
			continue
		}

		// collect clauses
		if clauseLine.MatchString(line) {
			if !seenHeader {
				return nil, fmt.Errorf("invalid dimacs format: missing header 'p cnf <variables> <clauses>'")
			}
			line = cleanInput.ReplaceAllString(line, " ")
			tokens := strings.Split(line, " ")
			if tokens[len(tokens)-1] != "0" {
				return nil, fmt.Errorf("invalid clause (%s): does not end with 0", line)
			}
			tokens = tokens[:len(tokens)-1]
			clause, cerr := parseClause(tokens, numVariables)
			if cerr != nil {
				return nil, fmt.Errorf("invalid clause (%s): %w", line, cerr)
			}
			clauses = append(clauses, clause)
			if err != nil {
				break
			}
			continue
		}

		// error out if the instruction is invalid
		return nil, fmt.Errorf("invalid dimacs command: %s", line)
	}

	if !seenHeader {
		return nil, fmt.Errorf("invalid format: no header found")
	}
	if len(clauses) != numClauses {
		return nil, fmt.Errorf("invalid format: number of clauses in header differ from the total number of clauses")
	}

	f := cnf.New()
	for i := 1; i <= numVariables; i++ {
		f.AddVariable(cnf.Var(strconv.Itoa(i)))
	}
	for _, clause := range clauses {
		if err := f.AddStrictClause(clause...); err != nil {
			return nil, err
		}
	}
	return f, nil
}

func parseClause(tokens []string, numVariables int) (cnf.Clause, error) {
	clause := make(cnf.Clause, 0, len(tokens))
	for _, tok := range tokens {
		lit, err := strconv.Atoi(tok)
		if err != nil {
			return nil, fmt.Errorf("%s is not a number", tok)
		}
		if lit == 0 {
			return nil, fmt.Errorf("0 is not a valid variable")
		}
		if lit > numVariables || lit < -numVariables {
			return nil, fmt.Errorf("%s is not a valid variable", tok)
		}
		v := cnf.Var(strconv.Itoa(abs(lit)))
		if lit > 0 {
			clause = append(clause, cnf.Pos(v))
		} else {
			clause = append(clause, cnf.Neg(v))
		}
	}
	return clause, nil
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
