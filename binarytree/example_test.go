package binarytree_test

import (
	"fmt"

	"github.com/morphotree/morphotree/binarytree"
	"github.com/morphotree/morphotree/tree"
)

func ExampleTreeToBinaryTree() {
	tr, _ := tree.New([]int{4, 4, 4, 4, 4}, 4)

	res, err := binarytree.TreeToBinaryTree(tr)
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	fmt.Println(res.Tree.ParentSlice())
	fmt.Println(res.ReverseNodeMap)
	// Output:
	// [4 4 5 6 5 6 6]
	// [0 1 2 3 4 4 4]
}
