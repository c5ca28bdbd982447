package generate

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/sahmed95/cnfgen/pkg/families"
)

func orderingFlags(cmd *cobra.Command, o *families.OrderingOptions) {
	cmd.Flags().BoolVar(&o.Total, "total", false, "add totality axioms")
	cmd.Flags().BoolVar(&o.Smart, "smart", false, "use the compact encoding with both totality and antisymmetry built in")
	cmd.Flags().BoolVar(&o.Plant, "plant", false, "plant a minimal element to make the formula satisfiable")
	cmd.Flags().IntVar(&o.Knuth, "knuth", 0, "use Knuth's transitivity variant 2 or 3")
}

func newOrderingCommand(opts *options) *cobra.Command {
	var orderOpts families.OrderingOptions
	cmd := &cobra.Command{
		Use:   "op <elements>",
		Short: "Generates an ordering principle formula",
		Long: `Generates an ordering principle formula claiming that a partial
order over <elements> elements has no minimal element.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("%s is not a number", args[0])
			}
			f, err := families.OrderingPrinciple(n, orderOpts)
			if err != nil {
				return err
			}
			return opts.emit(f)
		},
	}
	orderingFlags(cmd, &orderOpts)
	return cmd
}

func newGraphOrderingCommand(opts *options) *cobra.Command {
	var orderOpts families.OrderingOptions
	var graphSpec string
	cmd := &cobra.Command{
		Use:   "gop",
		Short: "Generates a graph ordering principle formula",
		Long: `Generates an ordering principle formula where minimality is only
checked against graph neighbours.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := parseGraphSpec(graphSpec, opts.rng())
			if err != nil {
				return err
			}
			f, err := families.GraphOrderingPrinciple(g, orderOpts)
			if err != nil {
				return err
			}
			return opts.emit(f)
		},
	}
	cmd.Flags().StringVar(&graphSpec, "graph", "", "graph specification, e.g. complete:10 or gnp:10:0.5")
	orderingFlags(cmd, &orderOpts)
	_ = cmd.MarkFlagRequired("graph")
	return cmd
}
