// Package lca — see lca.go.
package lca
