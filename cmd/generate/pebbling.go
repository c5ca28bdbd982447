package generate

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/sahmed95/cnfgen/pkg/families"
)

func newPebblingCommand(opts *options) *cobra.Command {
	var dagSpec string
	cmd := &cobra.Command{
		Use:   "peb",
		Short: "Generates a pebbling formula",
		Long: `Generates a pebbling formula over a directed acyclic graph: sources
carry pebbles, pebbles propagate along arcs and sinks must stay
empty.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := parseDAGSpec(dagSpec)
			if err != nil {
				return err
			}
			f, err := families.PebblingFormula(d)
			if err != nil {
				return err
			}
			return opts.emit(f)
		},
	}
	cmd.Flags().StringVar(&dagSpec, "dag", "", "dag specification, e.g. pyramid:3 or tree:2")
	_ = cmd.MarkFlagRequired("dag")
	return cmd
}

func newStoneCommand(opts *options) *cobra.Command {
	var dagSpec string
	cmd := &cobra.Command{
		Use:   "stone <stones>",
		Short: "Generates a stone formula",
		Long: `Generates a stone formula over a directed acyclic graph with
<stones> stones, a variant of the pebbling formula where each vertex
holds a red or blue stone.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			stones, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("%s is not a number", args[0])
			}
			d, err := parseDAGSpec(dagSpec)
			if err != nil {
				return err
			}
			f, err := families.StoneFormula(d, stones)
			if err != nil {
				return err
			}
			return opts.emit(f)
		},
	}
	cmd.Flags().StringVar(&dagSpec, "dag", "", "dag specification, e.g. pyramid:3 or tree:2")
	_ = cmd.MarkFlagRequired("dag")
	return cmd
}
