// Package simplify — see simplify.go.
package simplify
