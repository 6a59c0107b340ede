package main

import (
	"context"
	"fmt"
	"sort"

	"github.com/lintang-b-s/bestpath/pkg/concurrent"
	"github.com/spf13/cobra"
)

var batchCmd = &cobra.Command{
	Use:   "batch <scenario.yaml>...",
	Short: "Plan several scenarios concurrently",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runBatch,
}

func runBatch(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	results := concurrent.Run(workers, args, func(path string) scenarioResult {
		return planScenario(ctx, path, log, heapArity)
	})
	sort.Slice(results, func(i, j int) bool {
		return results[i].Name < results[j].Name
	})

	failed := 0
	for _, res := range results {
		if res.Err != "" {
			failed++
		}
		if err := printResult(cmd.OutOrStdout(), res, asJSON); err != nil {
			return err
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d scenarios failed", failed, len(results))
	}
	return nil
}
