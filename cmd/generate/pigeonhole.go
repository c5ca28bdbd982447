package generate

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/sahmed95/cnfgen/pkg/families"
)

func newPigeonholeCommand(opts *options) *cobra.Command {
	var functional, onto bool
	cmd := &cobra.Command{
		Use:   "php <pigeons> <holes>",
		Short: "Generates a pigeonhole principle formula",
		Long: `Generates a pigeonhole principle formula claiming that <pigeons>
pigeons fit into <holes> holes with no hole shared. With more pigeons
than holes the formula is unsatisfiable.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			pigeons, holes, err := twoInts(args)
			if err != nil {
				return err
			}
			f, err := families.PigeonholePrinciple(pigeons, holes, functional, onto)
			if err != nil {
				return err
			}
			return opts.emit(f)
		},
	}
	cmd.Flags().BoolVar(&functional, "functional", false, "every pigeon sits in at most one hole")
	cmd.Flags().BoolVar(&onto, "onto", false, "every hole hosts at least one pigeon")
	return cmd
}

func newGraphPigeonholeCommand(opts *options) *cobra.Command {
	var functional, onto bool
	var bipartite string
	cmd := &cobra.Command{
		Use:   "gphp",
		Short: "Generates a pigeonhole principle formula over a bipartite graph",
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := parseBipartiteSpec(bipartite, opts.rng())
			if err != nil {
				return err
			}
			f, err := families.GraphPigeonholePrinciple(b, functional, onto)
			if err != nil {
				return err
			}
			return opts.emit(f)
		},
	}
	cmd.Flags().StringVar(&bipartite, "bipartite", "", "bipartite graph specification, e.g. complete:5:4")
	cmd.Flags().BoolVar(&functional, "functional", false, "every pigeon sits in at most one hole")
	cmd.Flags().BoolVar(&onto, "onto", false, "every hole hosts at least one pigeon")
	_ = cmd.MarkFlagRequired("bipartite")
	return cmd
}

func twoInts(args []string) (int, int, error) {
	a, err := strconv.Atoi(args[0])
	if err != nil {
		return 0, 0, fmt.Errorf("%s is not a number", args[0])
	}
	b, err := strconv.Atoi(args[1])
	if err != nil {
		return 0, 0, fmt.Errorf("%s is not a number", args[1])
	}
	return a, b, nil
}
