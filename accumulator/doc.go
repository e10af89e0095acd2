// Package accumulator — see reducer.go, accumulate.go, propagate.go.
package accumulator
