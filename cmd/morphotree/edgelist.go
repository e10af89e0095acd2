package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/morphotree/morphotree/hgraph"
)

// readEdgeList parses a plain-text edge list: one edge per line, "u v
// weight", whitespace-separated, blank lines and lines starting with "#"
// ignored. The vertex count is inferred as one plus the largest index seen.
func readEdgeList(path string) (*hgraph.EdgeList, []float64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("readEdgeList: %w", err)
	}
	defer f.Close()

	var pairs [][2]int
	var weights []float64
	maxVertex := -1

	scanner := bufio.NewScanner(f)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) != 3 {
			return nil, nil, fmt.Errorf("readEdgeList: %s:%d: want \"u v weight\", got %q", path, lineNo, line)
		}
		u, err := strconv.Atoi(fields[0])
		if err != nil {
			return nil, nil, fmt.Errorf("readEdgeList: %s:%d: bad u: %w", path, lineNo, err)
		}
		v, err := strconv.Atoi(fields[1])
		if err != nil {
			return nil, nil, fmt.Errorf("readEdgeList: %s:%d: bad v: %w", path, lineNo, err)
		}
		w, err := strconv.ParseFloat(fields[2], 64)
		if err != nil {
			return nil, nil, fmt.Errorf("readEdgeList: %s:%d: bad weight: %w", path, lineNo, err)
		}
		pairs = append(pairs, [2]int{u, v})
		weights = append(weights, w)
		if u > maxVertex {
			maxVertex = u
		}
		if v > maxVertex {
			maxVertex = v
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, nil, fmt.Errorf("readEdgeList: %w", err)
	}

	g := hgraph.NewEdgeList(maxVertex + 1)
	for _, p := range pairs {
		g.AddEdge(p[0], p[1])
	}

	return g, weights, nil
}
