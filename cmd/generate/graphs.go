package generate

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/sahmed95/cnfgen/pkg/families"
)

func newColoringCommand(opts *options) *cobra.Command {
	var graphSpec string
	cmd := &cobra.Command{
		Use:   "kcolor <colors>",
		Short: "Generates a graph colorability formula",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			colors, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("%s is not a number", args[0])
			}
			g, err := parseGraphSpec(graphSpec, opts.rng())
			if err != nil {
				return err
			}
			f, err := families.ColoringFormula(g, colors)
			if err != nil {
				return err
			}
			return opts.emit(f)
		},
	}
	cmd.Flags().StringVar(&graphSpec, "graph", "", "graph specification, e.g. complete:10 or gnp:10:0.5")
	_ = cmd.MarkFlagRequired("graph")
	return cmd
}

func newTseitinCommand(opts *options) *cobra.Command {
	var graphSpec, charge string
	cmd := &cobra.Command{
		Use:   "tseitin",
		Short: "Generates a Tseitin formula",
		Long: `Generates a Tseitin formula over a graph. The charge assigns a
parity to every vertex; with "first" only the first vertex is odd,
with "random" charges are sampled from the seed.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := parseGraphSpec(graphSpec, opts.rng())
			if err != nil {
				return err
			}
			var charges []bool
			switch charge {
			case "first":
				// default charge, handled by the family
			case "random":
				rng := opts.rng()
				charges = make([]bool, g.Order())
				for i := range charges {
					charges[i] = rng.Intn(2) == 1
				}
			default:
				return fmt.Errorf("unknown charge %q: expected first or random", charge)
			}
			f, err := families.TseitinFormula(g, charges)
			if err != nil {
				return err
			}
			return opts.emit(f)
		},
	}
	cmd.Flags().StringVar(&graphSpec, "graph", "", "graph specification, e.g. complete:10 or gnp:10:0.5")
	cmd.Flags().StringVar(&charge, "charge", "first", "vertex charge assignment: first or random")
	_ = cmd.MarkFlagRequired("graph")
	return cmd
}

func newMatchingCommand(opts *options) *cobra.Command {
	var graphSpec string
	cmd := &cobra.Command{
		Use:   "matching",
		Short: "Generates a perfect matching formula",
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := parseGraphSpec(graphSpec, opts.rng())
			if err != nil {
				return err
			}
			f, err := families.PerfectMatchingPrinciple(g)
			if err != nil {
				return err
			}
			return opts.emit(f)
		},
	}
	cmd.Flags().StringVar(&graphSpec, "graph", "", "graph specification, e.g. complete:10 or gnp:10:0.5")
	_ = cmd.MarkFlagRequired("graph")
	return cmd
}

func newMarkstromCommand(opts *options) *cobra.Command {
	var graphSpec string
	cmd := &cobra.Command{
		Use:   "markstrom",
		Short: "Generates a Markstrom formula",
		Long: `Generates a Markstrom formula over a graph with all vertex degrees
even, asking for an edge subset that covers exactly half of every
vertex's edges.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := parseGraphSpec(graphSpec, opts.rng())
			if err != nil {
				return err
			}
			f, err := families.MarkstromFormula(g)
			if err != nil {
				return err
			}
			return opts.emit(f)
		},
	}
	cmd.Flags().StringVar(&graphSpec, "graph", "", "graph specification, e.g. complete:5 or cycle:6")
	_ = cmd.MarkFlagRequired("graph")
	return cmd
}

func newIsomorphismCommand(opts *options) *cobra.Command {
	var firstSpec, secondSpec string
	cmd := &cobra.Command{
		Use:   "giso",
		Short: "Generates a graph isomorphism formula",
		RunE: func(cmd *cobra.Command, args []string) error {
			rng := opts.rng()
			g1, err := parseGraphSpec(firstSpec, rng)
			if err != nil {
				return err
			}
			g2, err := parseGraphSpec(secondSpec, rng)
			if err != nil {
				return err
			}
			f, err := families.GraphIsomorphism(g1, g2)
			if err != nil {
				return err
			}
			return opts.emit(f)
		},
	}
	cmd.Flags().StringVar(&firstSpec, "first", "", "first graph specification")
	cmd.Flags().StringVar(&secondSpec, "second", "", "second graph specification")
	_ = cmd.MarkFlagRequired("first")
	_ = cmd.MarkFlagRequired("second")
	return cmd
}

func newAutomorphismCommand(opts *options) *cobra.Command {
	var graphSpec string
	cmd := &cobra.Command{
		Use:   "gauto",
		Short: "Generates a graph automorphism formula",
		Long: `Generates a formula satisfiable when the graph has a non-trivial
automorphism.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := parseGraphSpec(graphSpec, opts.rng())
			if err != nil {
				return err
			}
			f, err := families.GraphAutomorphism(g)
			if err != nil {
				return err
			}
			return opts.emit(f)
		},
	}
	cmd.Flags().StringVar(&graphSpec, "graph", "", "graph specification, e.g. cycle:5")
	_ = cmd.MarkFlagRequired("graph")
	return cmd
}
