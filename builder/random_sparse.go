package builder

import (
	"fmt"

	"github.com/morphotree/morphotree/hgraph"
)

const minRandomSparseVertices = 1

// RandomSparse samples an Erdős–Rényi-like graph over n vertices: every
// unordered pair {i, j}, i<j, is an edge independently with probability p.
// Pairs are trialed in ascending (i, j) order, so the same seed and p
// always produce the same graph. Requires n >= 1 and 0 <= p <= 1; requires
// a seeded RNG (WithSeed or WithRand) unless p is 0 or 1, where the result
// is already fixed.
func RandomSparse(n int, p float64, opts ...Option) (*hgraph.EdgeList, []float64, error) {
	const op = "builder.RandomSparse"

	if n < minRandomSparseVertices {
		return nil, nil, fmt.Errorf("%s: n=%d < %d: %w", op, n, minRandomSparseVertices, ErrTooFewVertices)
	}
	if p < 0 || p > 1 {
		return nil, nil, fmt.Errorf("%s: p=%g not in [0,1]: %w", op, p, ErrInvalidProbability)
	}

	cfg := newConfig(opts...)
	if cfg.rng == nil && p > 0 && p < 1 {
		return nil, nil, fmt.Errorf("%s: %w", op, ErrNeedRandSource)
	}

	g := hgraph.NewEdgeList(n)
	var weights []float64
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			include := p == 1
			if cfg.rng != nil {
				include = cfg.rng.Float64() < p
			}
			if !include {
				continue
			}
			g.AddEdge(i, j)
			weights = append(weights, cfg.weightFn(cfg.rng))
		}
	}

	return g, weights, nil
}
