package main

import (
	"fmt"

	"github.com/morphotree/morphotree/bpt"
	"github.com/morphotree/morphotree/horizontalcut"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newCutCmd() *cobra.Command {
	var (
		edgeListPath string
		altitude     float64
		numRegions   int
		useAltitude  bool
		useRegions   bool
		listAll      bool
	)

	cmd := &cobra.Command{
		Use:   "cut",
		Short: "explore the horizontal cuts of an edge-list graph's BPT",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCut(edgeListPath, altitude, numRegions, useAltitude, useRegions, listAll)
		},
	}
	cmd.Flags().StringVar(&edgeListPath, "edges", "", "path to an edge-list file (required)")
	cmd.MarkFlagRequired("edges")
	cmd.Flags().Float64Var(&altitude, "altitude", 0, "print the coarsest cut with altitude <= this value")
	cmd.Flags().IntVar(&numRegions, "num-regions", 0, "print the finest cut with region count <= this value")
	cmd.Flags().BoolVar(&listAll, "list", false, "print every precomputed cut")

	cmd.PreRun = func(cmd *cobra.Command, args []string) {
		useAltitude = cmd.Flags().Changed("altitude")
		useRegions = cmd.Flags().Changed("num-regions")
	}

	return cmd
}

func runCut(edgeListPath string, altitude float64, numRegions int, useAltitude, useRegions, listAll bool) error {
	g, weights, err := readEdgeList(edgeListPath)
	if err != nil {
		return err
	}

	logger.Info("building BPT for cut exploration", zap.Int("vertices", g.NumVertices()), zap.Int("edges", g.NumEdges()))

	built, err := bpt.BPTCanonical(g, weights)
	if err != nil {
		return fmt.Errorf("morphotree cut: %w", err)
	}

	explorer, err := horizontalcut.NewExplorer(built.Tree, built.Altitudes)
	if err != nil {
		return fmt.Errorf("morphotree cut: %w", err)
	}

	switch {
	case useAltitude:
		return printCut(explorer.FromAltitude(altitude))
	case useRegions:
		return printCut(explorer.FromNumRegions(numRegions))
	case listAll:
		for i := 0; i < explorer.NumCuts(); i++ {
			if err := printCut(explorer.FromIndex(i)); err != nil {
				return err
			}
		}
		return nil
	default:
		fmt.Printf("%d cuts available; pass --altitude, --num-regions, or --list\n", explorer.NumCuts())
		return nil
	}
}

func printCut(nodes []int, cutAltitude float64, err error) error {
	if err != nil {
		return fmt.Errorf("morphotree cut: %w", err)
	}
	fmt.Printf("altitude=%g regions=%d nodes=%v\n", cutAltitude, len(nodes), nodes)
	return nil
}
