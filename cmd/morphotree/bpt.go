package main

import (
	"fmt"

	"github.com/morphotree/morphotree/bpt"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newBPTCmd() *cobra.Command {
	var edgeListPath string

	cmd := &cobra.Command{
		Use:   "bpt",
		Short: "build the canonical Binary Partition Tree of an edge-list graph",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBPT(edgeListPath)
		},
	}
	cmd.Flags().StringVar(&edgeListPath, "edges", "", "path to an edge-list file (required)")
	cmd.MarkFlagRequired("edges")

	return cmd
}

func runBPT(edgeListPath string) error {
	g, weights, err := readEdgeList(edgeListPath)
	if err != nil {
		return err
	}

	logger.Info("building BPT", zap.Int("vertices", g.NumVertices()), zap.Int("edges", g.NumEdges()))

	result, err := bpt.BPTCanonical(g, weights)
	if err != nil {
		return fmt.Errorf("morphotree bpt: %w", err)
	}

	printTree(result.Tree, result.Altitudes)

	return nil
}
