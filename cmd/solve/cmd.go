package solve

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/golang/glog"
	"github.com/spf13/cobra"

	"github.com/sahmed95/cnfgen/pkg/dimacs"
	"github.com/sahmed95/cnfgen/pkg/sat"
)

func NewSolveCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "solve <path>",
		Short: "Solves a sat problem given in dimacs format",
		Long: `Solves a sat problem given in dimacs format. For instance:
c
c this is a comment
c header: p cnf <number of variables> <number of clauses>
p cnf 2 2
c clauses end in zero, negative means 'not'
c 0 (zero) is not a valid literal
1 2 0
1 -2 0
c cnf: (1 or 2) and (1 or not 2)
`,
		Args: cobra.ExactArgs(1),
		PreRunE: func(cmd *cobra.Command, args []string) error {
			if _, err := os.Stat(args[0]); errors.Is(err, os.ErrNotExist) {
				return fmt.Errorf("file (%s) not found", args[0])
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return solve(cmd.Context(), args[0])
		},
	}
}

func solve(ctx context.Context, path string) error {
	if ctx == nil {
		ctx = context.Background()
	}

	dimacsFile, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("error opening dimacs file (%s): %w", path, err)
	}
	defer dimacsFile.Close()

	f, err := dimacs.Parse(dimacsFile)
	if err != nil {
		return fmt.Errorf("error parsing dimacs file (%s): %w", path, err)
	}
	glog.V(1).Infof("parsed formula with %d variables and %d clauses", f.VariableCount(), f.ClauseCount())

	model, err := sat.NewSolver().Solve(ctx, f)
	if err != nil {
		return err
	}
	if model == nil {
		fmt.Println("no solution found")
		return nil
	}

	fmt.Println("solution found:")
	for _, v := range f.Variables() {
		fmt.Printf("%s = %t\n", v, model[v])
	}
	return nil
}
