package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/synclab/pcharness/internal/config"
	"github.com/synclab/pcharness/internal/logging"
	"github.com/synclab/pcharness/internal/monitoring"
	"github.com/synclab/pcharness/internal/pcore"
	"github.com/synclab/pcharness/internal/pipeline"
	"github.com/synclab/pcharness/internal/scenario"
)

type namedRun struct {
	name string
	cfg  config.PipelineConfig
}

func main() {
	// Flags override environment configuration when set.
	producers := flag.Int("producers", 0, "Producer workers per run")
	consumers := flag.Int("consumers", 0, "Consumer workers per run")
	items := flag.Int("items", 0, "Producer quota (a quota of N emits N-1 items)")
	bored := flag.Int("bored", 0, "Consumer bored bound")
	buffer := flag.Int("buffer", -1, "Hand-off buffer capacity (0 = rendezvous)")
	scenarios := flag.String("scenarios", "", "TOML scenario file; runs each scenario in order")
	metricsAddr := flag.String("metrics", "", "Metrics listen address (empty = disabled)")
	flag.Parse()

	cfg := config.LoadOrDefault()
	if *producers > 0 {
		cfg.Pipeline.Producers = *producers
	}
	if *consumers > 0 {
		cfg.Pipeline.Consumers = *consumers
	}
	if *items > 0 {
		cfg.Pipeline.Items = *items
	}
	if *bored > 0 {
		cfg.Pipeline.BoredCount = *bored
	}
	if *buffer >= 0 {
		cfg.Pipeline.Buffer = *buffer
	}
	if *metricsAddr != "" {
		cfg.Metrics.Addr = *metricsAddr
	}

	logger, err := logging.New(logging.Config{
		Level:       cfg.Logging.Level,
		Development: cfg.Logging.Development,
		OutputPaths: []string{"stdout"},
	})
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer logger.Sync()

	registry := prometheus.NewRegistry()
	metrics := monitoring.NewMetrics(registry)

	if cfg.Metrics.Addr != "" {
		srv := monitoring.NewServer(cfg.Metrics.Addr, registry)
		go func() {
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				logger.Error("metrics server failed", zap.Error(err))
			}
		}()
		defer srv.Close()
		logger.Info("metrics endpoint listening", zap.String("addr", cfg.Metrics.Addr))
	}

	runs, err := buildRuns(*scenarios, cfg.Pipeline)
	if err != nil {
		logger.Fatal("invalid run configuration", zap.Error(err))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	for _, run := range runs {
		core := pcore.NewBuffered(run.cfg.Buffer)
		orch := pipeline.NewOrchestrator(run.cfg, core, logger.With(zap.String("scenario", run.name)), metrics)

		report, err := orch.Run(ctx)
		if err != nil {
			logger.Error("run failed", zap.String("scenario", run.name), zap.Error(err))
			os.Exit(1)
		}

		logger.Info("scenario finished",
			zap.String("scenario", run.name),
			zap.String("run", report.RunID),
			zap.Int("producers", report.Producers),
			zap.Int("consumers", report.Consumers),
			zap.Duration("produce_wait", report.ProduceWait),
			zap.Duration("consume_wait", report.ConsumeWait),
			zap.Duration("elapsed", report.Elapsed),
		)
	}
}

// buildRuns resolves the run list: either the scenario file or a single run
// from the effective configuration.
func buildRuns(path string, defaults config.PipelineConfig) ([]namedRun, error) {
	if path == "" {
		if err := defaults.Validate(); err != nil {
			return nil, err
		}
		return []namedRun{{name: "default", cfg: defaults}}, nil
	}

	loaded, err := scenario.Load(path, defaults)
	if err != nil {
		return nil, err
	}
	runs := make([]namedRun, 0, len(loaded))
	for _, s := range loaded {
		runs = append(runs, namedRun{name: s.Name, cfg: s.Pipeline()})
	}
	return runs, nil
}
