package builder

import (
	"fmt"

	"github.com/morphotree/morphotree/hgraph"
)

const minCycleNodes = 3

// Cycle builds an n-vertex ring: edges (0,1), (1,2), ..., (n-1,0), in that
// order. Requires n >= 3.
func Cycle(n int, opts ...Option) (*hgraph.EdgeList, []float64, error) {
	if n < minCycleNodes {
		return nil, nil, fmt.Errorf("builder.Cycle: n=%d < %d: %w", n, minCycleNodes, ErrTooFewVertices)
	}

	cfg := newConfig(opts...)
	g := hgraph.NewEdgeList(n)
	weights := make([]float64, 0, n)
	for i := 0; i < n; i++ {
		g.AddEdge(i, (i+1)%n)
		weights = append(weights, cfg.weightFn(cfg.rng))
	}

	return g, weights, nil
}
