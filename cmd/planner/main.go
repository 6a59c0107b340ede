package main

import (
	"fmt"
	"os"

	"github.com/lintang-b-s/bestpath/pkg"
	"github.com/lintang-b-s/bestpath/pkg/logger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	logLevel  string
	heapArity int
	asJSON    bool
	workers   int

	log *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "planner",
	Short: "Plan multi-target walks over partially known tile grids",
	Long: `planner reads scenario files describing a tile world, what the agent knows about it,
where it starts and which cells it wants to visit, and prints the moves of every leg.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		log, err = logger.NewWithLevel(logLevel)
		if err != nil {
			return fmt.Errorf("build logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if log != nil {
			_ = log.Sync()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().IntVar(&heapArity, "heap-arity", pkg.DEFAULT_HEAP_ARITY, "arity of the dijkstra priority queue")
	rootCmd.PersistentFlags().BoolVar(&asJSON, "json", false, "print plans as json")

	batchCmd.Flags().IntVarP(&workers, "workers", "w", 4, "number of scenarios planned concurrently")

	rootCmd.AddCommand(planCmd, batchCmd, convertCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
