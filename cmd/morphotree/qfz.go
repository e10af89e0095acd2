package main

import (
	"fmt"

	"github.com/morphotree/morphotree/qfz"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newQFZCmd() *cobra.Command {
	var edgeListPath string

	cmd := &cobra.Command{
		Use:   "qfz",
		Short: "build the Quasi-Flat-Zone hierarchy of an edge-list graph",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runQFZ(edgeListPath)
		},
	}
	cmd.Flags().StringVar(&edgeListPath, "edges", "", "path to an edge-list file (required)")
	cmd.MarkFlagRequired("edges")

	return cmd
}

func runQFZ(edgeListPath string) error {
	g, weights, err := readEdgeList(edgeListPath)
	if err != nil {
		return err
	}

	logger.Info("building QFZ hierarchy", zap.Int("vertices", g.NumVertices()), zap.Int("edges", g.NumEdges()))

	result, err := qfz.QuasiFlatZoneHierarchy(g, weights)
	if err != nil {
		return fmt.Errorf("morphotree qfz: %w", err)
	}

	printTree(result.Tree, result.Altitudes)

	return nil
}
