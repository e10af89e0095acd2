package builder

import "errors"

// ErrTooFewVertices indicates n (or a similar size parameter) is smaller
// than the minimum the requested topology can express.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates a probability argument falls outside
// the closed interval [0, 1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates a stochastic constructor was called without
// a seeded RNG (WithSeed or WithRand) while true sampling (0 < p < 1) was
// requested.
var ErrNeedRandSource = errors.New("builder: rng is required")
