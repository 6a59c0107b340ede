package main

import (
	"errors"
	"fmt"

	"github.com/lintang-b-s/bestpath/pkg/scenario"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var convertCmd = &cobra.Command{
	Use:   "convert <scenario.yaml> <out.world>",
	Short: "Write the world of a scenario as a compressed world file",
	Args:  cobra.ExactArgs(2),
	RunE:  runConvert,
}

func runConvert(cmd *cobra.Command, args []string) error {
	sc, err := scenario.Load(args[0])
	if err != nil {
		return err
	}
	store, err := sc.BuildWorld()
	if err != nil {
		return err
	}
	if store == nil {
		return errors.New("scenario has no world to convert")
	}
	if err := store.WriteWorld(args[1]); err != nil {
		return err
	}
	log.Info("world written", zap.String("file", args[1]),
		zap.Int("rows", store.Rows()), zap.Int("cols", store.Cols()))
	fmt.Fprintf(cmd.OutOrStdout(), "wrote %dx%d world to %s\n", store.Rows(), store.Cols(), args[1])
	return nil
}
