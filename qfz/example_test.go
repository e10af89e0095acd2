package qfz_test

import (
	"fmt"

	"github.com/morphotree/morphotree/hgraph"
	"github.com/morphotree/morphotree/qfz"
)

func ExampleQuasiFlatZoneHierarchy() {
	g := hgraph.NewEdgeList(4)
	g.AddEdge(0, 1)
	g.AddEdge(1, 2)
	g.AddEdge(2, 3)

	res, err := qfz.QuasiFlatZoneHierarchy(g, []int{1, 1, 2})
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	fmt.Println(res.Tree.ParentSlice())
	fmt.Println(res.Altitudes)
	// Output:
	// [4 4 4 5 5 5]
	// [0 0 0 0 1 2]
}
