package simplify_test

import (
	"fmt"

	"github.com/morphotree/morphotree/simplify"
	"github.com/morphotree/morphotree/tree"
)

// ExampleSimplifyTree collapses a node whose altitude matches its parent's
// into that parent, the quasi-flat-zone merging rule.
func ExampleSimplifyTree() {
	tr, _ := tree.New([]int{4, 4, 5, 6, 5, 6, 6}, 4)
	altitude := []int{0, 0, 0, 0, 1, 1, 2}
	root := tr.Root()

	res, err := simplify.SimplifyTree(tr, func(i int) bool {
		return i != root && altitude[i] == altitude[tr.Parent(i)]
	}, simplify.ModePreserveLeaves)
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	fmt.Println(res.Tree.ParentSlice())
	fmt.Println(res.NodeMap)
	// Output:
	// [4 4 4 5 5 5]
	// [0 1 2 3 5 6]
}
