// Command morphotree is a small CLI front end over the morphotree library:
// read an edge list, build a hierarchy, and either print it directly (bpt,
// qfz) or explore its horizontal cuts (cut).
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	logger     *zap.Logger
	configPath string
	cfg        Config
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "morphotree",
		Short:         "build and explore graph hierarchies",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			l, err := zap.NewProduction()
			if err != nil {
				return fmt.Errorf("morphotree: building logger: %w", err)
			}
			logger = l

			loaded, err := loadConfig(configPath)
			if err != nil {
				return err
			}
			cfg = loaded

			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if logger != nil {
				return logger.Sync()
			}
			return nil
		},
	}

	root.PersistentFlags().StringVar(&configPath, "config", "morphotree.yaml", "path to an optional morphotree.yaml config")

	root.AddCommand(newBPTCmd())
	root.AddCommand(newQFZCmd())
	root.AddCommand(newCutCmd())

	return root
}
