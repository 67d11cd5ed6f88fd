package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/synclab/pcharness/internal/config"
	"github.com/synclab/pcharness/internal/logging"
	"github.com/synclab/pcharness/internal/monitoring"
)

// Orchestrator drives one complete producer/consumer run through the phase
// sequence documented in the package comment.
type Orchestrator struct {
	cfg     config.PipelineConfig
	core    Core
	log     *logging.Logger
	metrics *monitoring.Metrics
}

// Report summarizes a completed run. It carries aggregates only; individual
// worker outcomes never travel past the completion signals.
type Report struct {
	RunID     string
	Producers int
	Consumers int
	Quota     int

	// ProduceWait covers spawn through the last producer signal.
	// ConsumeWait covers sentinel injection through the last consumer
	// signal. Elapsed is the whole run including core lifecycle.
	ProduceWait time.Duration
	ConsumeWait time.Duration
	Elapsed     time.Duration
}

// NewOrchestrator creates an orchestrator for a single run over the given
// core.
func NewOrchestrator(cfg config.PipelineConfig, core Core, log *logging.Logger, metrics *monitoring.Metrics) *Orchestrator {
	return &Orchestrator{
		cfg:     cfg,
		core:    core,
		log:     log,
		metrics: metrics,
	}
}

// Run executes the full termination protocol. The context only bounds the
// orchestrator's own waits; workers are not cancelled through it. A context
// expiry therefore indicates a wedged collaborator, not a clean stop.
func (o *Orchestrator) Run(ctx context.Context) (*Report, error) {
	if err := o.cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid pipeline config: %w", err)
	}

	runID := uuid.NewString()
	log := o.log.With(zap.String("run", runID))

	tracker, err := NewTracker(o.cfg.Producers, o.cfg.Consumers)
	if err != nil {
		return nil, fmt.Errorf("creating tracker: %w", err)
	}

	if err := o.core.Startup(); err != nil {
		return nil, fmt.Errorf("core startup: %w", err)
	}

	start := time.Now()
	log.Info("starting run",
		zap.Int("producers", o.cfg.Producers),
		zap.Int("consumers", o.cfg.Consumers),
		zap.Int("items", o.cfg.Items),
	)

	// Phase 1: spawn consumers, then producers. Both groups are fully
	// spawned before any completion is awaited.
	for i := 0; i < o.cfg.Consumers; i++ {
		c := NewConsumer(i, o.cfg.BoredCount, o.core, tracker, log, o.metrics)
		go c.Run()
	}
	for i := 0; i < o.cfg.Producers; i++ {
		p := NewProducer(i, o.cfg.Items, o.core, tracker, log, o.metrics)
		go p.Run()
	}

	// Phase 2: consume exactly one signal per producer. Consumers may
	// still be draining the channel; their completion is not observed
	// here.
	log.Info("waiting for producers to exit")
	for i := 0; i < o.cfg.Producers; i++ {
		if err := tracker.AwaitProducer(ctx); err != nil {
			return nil, fmt.Errorf("awaiting producer completions: %w", err)
		}
	}
	produceWait := time.Since(start)
	log.Info("all producers have exited")

	// Phase 3: with no producer left to emit real data, one stop item per
	// consumer guarantees every consumer eventually receives exactly one.
	consumeStart := time.Now()
	for i := 0; i < o.cfg.Consumers; i++ {
		o.core.Produce(StopItem())
		o.metrics.SentinelsInjected.Inc()
	}

	// Phase 4: consume exactly one signal per consumer. Bored exits that
	// happened before phase 2 finished are already banked in the tracker,
	// so this wait cannot deadlock on finishing order.
	for i := 0; i < o.cfg.Consumers; i++ {
		if err := tracker.AwaitConsumer(ctx); err != nil {
			return nil, fmt.Errorf("awaiting consumer completions: %w", err)
		}
	}
	consumeWait := time.Since(consumeStart)
	log.Info("all consumers have exited")

	// Phase 5: no worker is touching the core anymore.
	if err := o.core.Shutdown(); err != nil {
		return nil, fmt.Errorf("core shutdown: %w", err)
	}

	elapsed := time.Since(start)
	o.metrics.RunDuration.Observe(elapsed.Seconds())
	log.Info("run complete", zap.Duration("elapsed", elapsed))

	return &Report{
		RunID:       runID,
		Producers:   o.cfg.Producers,
		Consumers:   o.cfg.Consumers,
		Quota:       o.cfg.Items,
		ProduceWait: produceWait,
		ConsumeWait: consumeWait,
		Elapsed:     elapsed,
	}, nil
}
