package main

import (
	"context"
	"flag"

	"github.com/lintang-b-s/bestpath/pkg/engine"
	"github.com/lintang-b-s/bestpath/pkg/http"
	"github.com/lintang-b-s/bestpath/pkg/http/usecases"
	"github.com/lintang-b-s/bestpath/pkg/logger"
	"github.com/lintang-b-s/bestpath/pkg/spatialindex"
	"github.com/lintang-b-s/bestpath/pkg/util"
	"github.com/lintang-b-s/bestpath/pkg/world"
	"go.uber.org/zap"
)

var (
	worldFile = flag.String("world", "", "bzip2 world file, overrides WORLD_FILE")
)

func main() {
	flag.Parse()

	cfg, err := util.LoadConfig()
	if err != nil {
		panic(err)
	}
	logger, err := logger.NewWithLevel(cfg.LogLevel)
	if err != nil {
		panic(err)
	}
	defer logger.Sync() //nolint:errcheck // ignore

	if *worldFile != "" {
		cfg.WorldFile = *worldFile
	}
	store, err := world.ReadWorld(cfg.WorldFile)
	if err != nil {
		logger.Fatal("failed to load world", zap.String("file", cfg.WorldFile), zap.Error(err))
	}
	logger.Info("world loaded", zap.String("file", cfg.WorldFile),
		zap.Int("rows", store.Rows()), zap.Int("cols", store.Cols()))

	rtree := spatialindex.NewRtree()
	rtree.Build(store.PointsOfInterest(), logger)

	planner := engine.NewPlanner(logger, engine.WithHeapArity(cfg.HeapArity), engine.WithDiscoverer(store))
	plannerService := usecases.NewPlannerService(logger, planner, store, rtree, cfg.POISearchRadius)

	ctx, cleanup, err := NewContext()
	if err != nil {
		panic(err)
	}

	api := http.NewServer(logger)
	if _, err := api.Use(ctx, logger, cfg.RateLimit, plannerService); err != nil {
		logger.Fatal("failed to start api", zap.Error(err))
	}

	signal := http.GracefulShutdown()
	logger.Info("bestpath planner server stopping", zap.String("signal", signal.String()))

	cleanup()
	if err := api.Wait(); err != nil {
		logger.Error("api stopped with error", zap.Error(err))
	}
	logger.Info("bestpath planner server stopped")
}

func NewContext() (context.Context, func(), error) {
	ctx, cancel := context.WithCancel(context.Background())
	cb := func() {
		cancel()
	}

	return ctx, cb, nil
}
