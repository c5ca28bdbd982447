package generate

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/sahmed95/cnfgen/pkg/families"
)

func newParityCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "parity <elements>",
		Short: "Generates a parity principle formula",
		Long: `Generates a parity principle formula claiming that <elements>
elements can be paired up. Unsatisfiable when <elements> is odd.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("%s is not a number", args[0])
			}
			f, err := families.ParityPrinciple(n)
			if err != nil {
				return err
			}
			return opts.emit(f)
		},
	}
}

func newCountingCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "count <elements> <size>",
		Short: "Generates a counting principle formula",
		Long: `Generates a counting principle formula claiming that <elements>
elements split into groups of <size>. Unsatisfiable when <size> does
not divide <elements>.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, p, err := twoInts(args)
			if err != nil {
				return err
			}
			f, err := families.CountingPrinciple(m, p)
			if err != nil {
				return err
			}
			return opts.emit(f)
		},
	}
}

func newRamseyCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "ram <stable> <clique> <vertices>",
		Short: "Generates a Ramsey number formula",
		Long: `Generates a formula claiming that there is a graph on <vertices>
vertices with no stable set of size <stable> and no clique of size
<clique>. Unsatisfiable when <vertices> reaches the Ramsey number.`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("%s is not a number", args[0])
			}
			k, n, err := twoInts(args[1:])
			if err != nil {
				return err
			}
			f, err := families.RamseyNumber(s, k, n)
			if err != nil {
				return err
			}
			return opts.emit(f)
		},
	}
}

func newSubsetCardinalityCommand(opts *options) *cobra.Command {
	var bipartite string
	cmd := &cobra.Command{
		Use:   "subsetcard",
		Short: "Generates a subset cardinality formula",
		Long: `Generates a subset cardinality formula over a bipartite graph:
rows ask for a loose majority of their incident edges, columns for a
loose minority.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := parseBipartiteSpec(bipartite, opts.rng())
			if err != nil {
				return err
			}
			f, err := families.SubsetCardinalityFormula(b)
			if err != nil {
				return err
			}
			return opts.emit(f)
		},
	}
	cmd.Flags().StringVar(&bipartite, "bipartite", "", "bipartite graph specification, e.g. complete:4:4")
	_ = cmd.MarkFlagRequired("bipartite")
	return cmd
}

func newRandomKCNFCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "randkcnf <width> <variables> <clauses>",
		Short: "Generates a random k-CNF formula",
		Long: `Samples <clauses> distinct clauses of width <width> over
<variables> variables, uniformly at random from the given seed.`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			k, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("%s is not a number", args[0])
			}
			n, m, err := twoInts(args[1:])
			if err != nil {
				return err
			}
			f, err := families.RandomKCNF(k, n, m, opts.seed)
			if err != nil {
				return err
			}
			return opts.emit(f)
		},
	}
}
