// Package generate holds the formula generation sub-commands. Each
// sub-command builds one formula family and writes it out in DIMACS
// format.
package generate

import (
	"fmt"
	"math/rand"
	"os"

	"github.com/golang/glog"
	"github.com/spf13/cobra"

	"github.com/sahmed95/cnfgen/pkg/cnf"
	"github.com/sahmed95/cnfgen/pkg/dimacs"
)

type options struct {
	output string
	quiet  bool
	seed   int64
}

func (o *options) rng() *rand.Rand {
	return rand.New(rand.NewSource(o.seed))
}

// emit writes the formula to the configured destination.
func (o *options) emit(f *cnf.CNF) error {
	glog.V(1).Infof("generated formula with %d variables and %d clauses", f.VariableCount(), f.ClauseCount())
	w := os.Stdout
	if o.output != "" {
		file, err := os.Create(o.output)
		if err != nil {
			return fmt.Errorf("error creating output file (%s): %w", o.output, err)
		}
		defer file.Close()
		w = file
	}
	return dimacs.Write(w, f, !o.quiet)
}

func NewGenerateCommand() *cobra.Command {
	opts := &options{}
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generates a CNF formula from one of the known families",
		Long: `Generates a CNF formula from one of the combinatorial families and
writes it in DIMACS format. Graph-based families take a graph
specification such as "complete:10", "gnp:10:0.5", "path:5" or
"file:graph.json".`,
	}

	cmd.PersistentFlags().StringVarP(&opts.output, "output", "o", "", "write the formula to this file instead of stdout")
	cmd.PersistentFlags().BoolVar(&opts.quiet, "quiet", false, "omit the comment header from the DIMACS output")
	cmd.PersistentFlags().Int64Var(&opts.seed, "seed", 0, "seed for the random constructions")

	cmd.AddCommand(
		newPigeonholeCommand(opts),
		newGraphPigeonholeCommand(opts),
		newOrderingCommand(opts),
		newGraphOrderingCommand(opts),
		newColoringCommand(opts),
		newTseitinCommand(opts),
		newMatchingCommand(opts),
		newParityCommand(opts),
		newCountingCommand(opts),
		newRamseyCommand(opts),
		newSubsetCardinalityCommand(opts),
		newMarkstromCommand(opts),
		newPebblingCommand(opts),
		newStoneCommand(opts),
		newRandomKCNFCommand(opts),
		newIsomorphismCommand(opts),
		newAutomorphismCommand(opts),
	)

	return cmd
}
