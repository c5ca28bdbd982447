package root

import (
	goflag "flag"

	"github.com/spf13/cobra"

	"github.com/sahmed95/cnfgen/cmd/generate"

	"github.com/sahmed95/cnfgen/cmd/solve"
)

func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "cnfgen",
		Short: "Cnfgen is a generator of CNF formula benchmarks",
		Long: `A generator of CNF formulas in DIMACS format, built around the
combinatorial families studied in proof complexity.
For more information visit https://github.com/sahmed95/cnfgen`,
	}

	// glog registers its flags on the standard flag package
	rootCmd.PersistentFlags().AddGoFlagSet(goflag.CommandLine)

	// add sub-commands
	rootCmd.AddCommand(generate.NewGenerateCommand())
	rootCmd.AddCommand(solve.NewSolveCommand())

	return rootCmd
}
