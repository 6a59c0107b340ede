package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/lintang-b-s/bestpath/pkg/engine"
	"github.com/lintang-b-s/bestpath/pkg/scenario"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var planCmd = &cobra.Command{
	Use:   "plan <scenario.yaml>",
	Short: "Plan the walk of one scenario",
	Args:  cobra.ExactArgs(1),
	RunE:  runPlan,
}

type scenarioResult struct {
	Name string       `json:"name"`
	Plan *engine.Plan `json:"plan,omitempty"`
	Err  string       `json:"error,omitempty"`
}

func runPlan(cmd *cobra.Command, args []string) error {
	res := planScenario(cmd.Context(), args[0], log, heapArity)
	if res.Err != "" {
		return fmt.Errorf("%s: %s", res.Name, res.Err)
	}
	return printResult(cmd.OutOrStdout(), res, asJSON)
}

func planScenario(ctx context.Context, path string, log *zap.Logger, arity int) scenarioResult {
	if ctx == nil {
		ctx = context.Background()
	}
	sc, err := scenario.Load(path)
	if err != nil {
		return scenarioResult{Name: path, Err: err.Error()}
	}
	res := scenarioResult{Name: sc.Name}

	store, err := sc.BuildWorld()
	if err != nil {
		res.Err = err.Error()
		return res
	}
	req, err := sc.BuildRequest(store)
	if err != nil {
		res.Err = err.Error()
		return res
	}

	planner := engine.NewPlanner(log, engine.WithHeapArity(arity))
	plan, err := planner.Plan(ctx, req)
	if err != nil {
		res.Err = err.Error()
		return res
	}
	res.Plan = plan
	return res
}

func printResult(out io.Writer, res scenarioResult, asJSON bool) error {
	if asJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(res)
	}

	fmt.Fprintf(out, "%s\n", res.Name)
	if res.Err != "" {
		fmt.Fprintf(out, "  error: %s\n", res.Err)
		return nil
	}
	for i, seg := range res.Plan.Segments {
		moves := make([]string, len(seg.Directions))
		for j, d := range seg.Directions {
			moves[j] = d.String()
		}
		fmt.Fprintf(out, "  %d. %v cost=%d moves=[%s]\n", i+1, seg.Target, seg.Cost, strings.Join(moves, " "))
	}
	for _, u := range res.Plan.Unreachable {
		fmt.Fprintf(out, "  unreachable %v\n", u)
	}
	if res.Plan.DiscoveryCalls > 0 || res.Plan.Estimated > 0 {
		fmt.Fprintf(out, "  discovered=%d estimated=%d\n", res.Plan.DiscoveryCalls, res.Plan.Estimated)
	}
	return nil
}
