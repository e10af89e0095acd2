package lca_test

import (
	"fmt"

	"github.com/morphotree/morphotree/lca"
	"github.com/morphotree/morphotree/tree"
)

func ExampleTable_LCA() {
	tr, _ := tree.New([]int{4, 4, 5, 6, 5, 6, 6}, 4)
	table := lca.NewTable(tr)
	fmt.Println(table.LCA(0, 3))
	// Output: 6
}
