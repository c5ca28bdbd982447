package generate

import (
	"fmt"
	"math/rand"
	"os"
	"strconv"
	"strings"

	"github.com/sahmed95/cnfgen/pkg/graph"
)

// Graph inputs are given as colon-separated specifications, for
// instance "complete:10", "gnp:10:0.5" or "file:grid.json". The rng is
// consulted only by the random constructions.

func parseGraphSpec(spec string, rng *rand.Rand) (*graph.Graph, error) {
	kind, args := splitSpec(spec)
	switch kind {
	case "complete":
		n, err := intArgs(spec, args, 1)
		if err != nil {
			return nil, err
		}
		return graph.Complete(n[0]), nil
	case "path":
		n, err := intArgs(spec, args, 1)
		if err != nil {
			return nil, err
		}
		return graph.Path(n[0]), nil
	case "cycle":
		n, err := intArgs(spec, args, 1)
		if err != nil {
			return nil, err
		}
		return graph.Cycle(n[0])
	case "gnp":
		if len(args) != 2 {
			return nil, fmt.Errorf("invalid graph specification (%s): expected gnp:<vertices>:<probability>", spec)
		}
		n, err := strconv.Atoi(args[0])
		if err != nil {
			return nil, fmt.Errorf("invalid graph specification (%s): %s is not a number", spec, args[0])
		}
		p, err := strconv.ParseFloat(args[1], 64)
		if err != nil {
			return nil, fmt.Errorf("invalid graph specification (%s): %s is not a number", spec, args[1])
		}
		return graph.RandomGNP(n, p, rng)
	case "gnm":
		n, err := intArgs(spec, args, 2)
		if err != nil {
			return nil, err
		}
		return graph.RandomGNM(n[0], n[1], rng)
	case "file":
		if len(args) != 1 {
			return nil, fmt.Errorf("invalid graph specification (%s): expected file:<path>", spec)
		}
		return readGraphFile(args[0])
	}
	return nil, fmt.Errorf("unknown graph specification kind %q", kind)
}

func parseDAGSpec(spec string) (*graph.Digraph, error) {
	kind, args := splitSpec(spec)
	switch kind {
	case "tree":
		h, err := intArgs(spec, args, 1)
		if err != nil {
			return nil, err
		}
		return graph.Tree(h[0])
	case "pyramid":
		h, err := intArgs(spec, args, 1)
		if err != nil {
			return nil, err
		}
		return graph.Pyramid(h[0])
	case "file":
		if len(args) != 1 {
			return nil, fmt.Errorf("invalid dag specification (%s): expected file:<path>", spec)
		}
		return readDigraphFile(args[0])
	}
	return nil, fmt.Errorf("unknown dag specification kind %q", kind)
}

func parseBipartiteSpec(spec string, rng *rand.Rand) (*graph.Bipartite, error) {
	kind, args := splitSpec(spec)
	switch kind {
	case "complete":
		n, err := intArgs(spec, args, 2)
		if err != nil {
			return nil, err
		}
		return graph.CompleteBipartite(n[0], n[1]), nil
	case "random":
		n, err := intArgs(spec, args, 3)
		if err != nil {
			return nil, err
		}
		return graph.RandomBipartite(n[0], n[1], n[2], rng)
	case "file":
		if len(args) != 1 {
			return nil, fmt.Errorf("invalid bipartite specification (%s): expected file:<path>", spec)
		}
		return readBipartiteFile(args[0])
	}
	return nil, fmt.Errorf("unknown bipartite specification kind %q", kind)
}

func splitSpec(spec string) (string, []string) {
	parts := strings.Split(spec, ":")
	return parts[0], parts[1:]
}

func intArgs(spec string, args []string, want int) ([]int, error) {
	if len(args) != want {
		return nil, fmt.Errorf("invalid specification (%s): expected %d argument(s)", spec, want)
	}
	out := make([]int, len(args))
	for i, a := range args {
		n, err := strconv.Atoi(a)
		if err != nil {
			return nil, fmt.Errorf("invalid specification (%s): %s is not a number", spec, a)
		}
		out[i] = n
	}
	return out, nil
}

func readGraphFile(path string) (*graph.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("error opening graph file (%s): %w", path, err)
	}
	defer f.Close()
	return graph.ReadGraph(f)
}

func readDigraphFile(path string) (*graph.Digraph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("error opening graph file (%s): %w", path, err)
	}
	defer f.Close()
	return graph.ReadDigraph(f)
}

func readBipartiteFile(path string) (*graph.Bipartite, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("error opening graph file (%s): %w", path, err)
	}
	defer f.Close()
	return graph.ReadBipartite(f)
}
