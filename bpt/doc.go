// Package bpt — see bpt.go.
package bpt
