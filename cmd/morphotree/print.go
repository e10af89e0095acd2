package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/morphotree/morphotree/tree"
)

type nodeView struct {
	Node     int     `json:"node"`
	Kind     string  `json:"kind"`
	Parent   int     `json:"parent"`
	Altitude float64 `json:"altitude"`
	IsRoot   bool    `json:"is_root"`
}

// printTree renders one line per node: index, parent, altitude, leaf/
// internal marker. Nodes print in ascending index order, so leaves always
// precede internal nodes and the root is always last, matching the
// parent-array's own invariant order. Honors cfg.OutputFormat ("text" or
// "json").
func printTree(t *tree.Tree, altitudes []float64) {
	if cfg.OutputFormat == "json" {
		views := make([]nodeView, t.NumNodes())
		for i := 0; i < t.NumNodes(); i++ {
			kind := "internal"
			if t.IsLeaf(i) {
				kind = "leaf"
			}
			parent := t.Parent(i)
			views[i] = nodeView{Node: i, Kind: kind, Parent: parent, Altitude: altitudes[i], IsRoot: parent == i}
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		_ = enc.Encode(views)
		return
	}

	for i := 0; i < t.NumNodes(); i++ {
		kind := "internal"
		if t.IsLeaf(i) {
			kind = "leaf"
		}
		parent := t.Parent(i)
		marker := ""
		if parent == i {
			marker = " (root)"
		}
		fmt.Printf("node %d: %s, parent=%d, altitude=%g%s\n", i, kind, parent, altitudes[i], marker)
	}
}
