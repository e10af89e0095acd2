package builder

import (
	"fmt"

	"github.com/morphotree/morphotree/hgraph"
)

const minPathNodes = 2

// Path builds a simple path over n vertices: edges (0,1), (1,2), ...,
// (n-2,n-1), in that order. Requires n >= 2.
func Path(n int, opts ...Option) (*hgraph.EdgeList, []float64, error) {
	if n < minPathNodes {
		return nil, nil, fmt.Errorf("builder.Path: n=%d < %d: %w", n, minPathNodes, ErrTooFewVertices)
	}

	cfg := newConfig(opts...)
	g := hgraph.NewEdgeList(n)
	weights := make([]float64, 0, n-1)
	for i := 1; i < n; i++ {
		g.AddEdge(i-1, i)
		weights = append(weights, cfg.weightFn(cfg.rng))
	}

	return g, weights, nil
}
