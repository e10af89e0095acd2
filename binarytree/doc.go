// Package binarytree — see binarytree.go.
package binarytree
