// Package binarytree re-expresses an n-ary tree as a strict binary tree: a
// node with more than two children is replaced by a right-leaning chain of
// new internal nodes, each holding one extra child, so that every
// resulting internal node has exactly two children. This is a direct port
// of Higra's tree_2_binary_tree.
package binarytree

import (
	"github.com/morphotree/morphotree/herrors"
	"github.com/morphotree/morphotree/tree"
)

// Result is a strict binary tree built from a (possibly n-ary) source tree.
type Result struct {
	Tree *tree.Tree
	// ReverseNodeMap maps a new node index back to the source node it was
	// built from; chain nodes introduced to split a wide fan-out all map
	// back to the same original node.
	ReverseNodeMap []int
}

// TreeToBinaryTree converts t into a strict binary tree. Leaves are
// unaffected — their index and count are unchanged — so the result always
// has exactly 2*t.NumLeaves()-1 nodes. Every non-leaf of t must have at
// least 2 children, or TreeToBinaryTree returns herrors.ErrInvalidTree.
func TreeToBinaryTree(t *tree.Tree) (*Result, error) {
	for _, i := range t.InternalNodesAscending() {
		if t.NumChildren(i) < 2 {
			return nil, herrors.Wrap("binarytree.TreeToBinaryTree", herrors.ErrInvalidTree)
		}
	}

	numLeaves := t.NumLeaves()
	numNodesOut := 2*numLeaves - 1

	nodeMap := make([]int, t.NumNodes())
	reverseNodeMap := make([]int, numNodesOut)
	for i := 0; i < numLeaves; i++ {
		nodeMap[i] = i
		reverseNodeMap[i] = i
	}

	newParents := make([]int, numNodesOut)
	curParIndex := numLeaves
	for _, i := range t.InternalNodesAscending() {
		children := t.Children(i)
		newParents[nodeMap[children[0]]] = curParIndex
		newParents[nodeMap[children[1]]] = curParIndex

		for _, c := range children[2:] {
			newParents[curParIndex] = curParIndex + 1
			reverseNodeMap[curParIndex] = i
			curParIndex++
			newParents[nodeMap[c]] = curParIndex
		}

		nodeMap[i] = curParIndex
		reverseNodeMap[curParIndex] = i
		curParIndex++
	}

	newParents[numNodesOut-1] = numNodesOut - 1

	newTree, err := tree.New(newParents, numLeaves)
	if err != nil {
		return nil, herrors.Wrap("binarytree.TreeToBinaryTree", err)
	}

	return &Result{Tree: newTree, ReverseNodeMap: reverseNodeMap}, nil
}
