package builder_test

import (
	"fmt"

	"github.com/morphotree/morphotree/builder"
)

func ExamplePath() {
	g, weights, err := builder.Path(4, builder.WithWeightFn(builder.ConstantWeight(2)))
	if err != nil {
		panic(err)
	}

	fmt.Println(g.NumEdges(), weights)
	// Output: 3 [2 2 2]
}

func ExampleCycle() {
	g, _, err := builder.Cycle(5)
	if err != nil {
		panic(err)
	}

	u, v := g.EdgeFromIndex(g.NumEdges() - 1)
	fmt.Println(g.NumEdges(), u, v)
	// Output: 5 4 0
}
