// Package engine orchestrates one planning run: inventory snapshot in,
// reconciled order vectors out.
package engine

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"
	"os"
	"time"

	"github.com/perchworks/restock/pkg/catalog"
	"github.com/perchworks/restock/pkg/config"
	"github.com/perchworks/restock/pkg/demand"
	"github.com/perchworks/restock/pkg/inventory"
	"github.com/perchworks/restock/pkg/order"
	"github.com/perchworks/restock/pkg/policy"
	"github.com/perchworks/restock/pkg/simulate"
	"github.com/perchworks/restock/pkg/telemetry"
	"github.com/perchworks/restock/pkg/version"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// Config holds engine settings.
type Config struct {
	Plan          config.PlanConfig
	InventoryPath string

	// Telemetry config.
	OtelEndpoint  string
	SkipTelemetry bool // set true when embedding in an app that already has OTEL

	// Dependencies.
	Logger *slog.Logger
}

// Engine is the runtime core.
type Engine struct {
	Logger *slog.Logger
	Tracer trace.Tracer

	config Config
}

// PolicyResult is one policy's final order.
type PolicyResult struct {
	Policy string
	Order  order.Vector
}

// Result is the outcome of a run, in the snapshot's category order.
type Result struct {
	Sizes     []string
	Inventory order.Inventory
	Orders    []PolicyResult
}

// Option defines a functional configuration override.
type Option func(*Engine)

// New initializes the Engine.
func New(ctx context.Context, opts ...Option) (*Engine, error) {
	e := &Engine{
		Logger: slog.New(slog.NewJSONHandler(os.Stdout, nil)),
		Tracer: otel.Tracer("restock/engine"),
	}
	for _, opt := range opts {
		opt(e)
	}

	if !e.config.SkipTelemetry {
		shutdown, err := telemetry.Init(ctx, version.AppName, version.Current, e.config.OtelEndpoint)
		if err != nil {
			e.Logger.Warn("Telemetry failed", "error", err)
		} else {
			_ = shutdown
		}
	}
	return e, nil
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.Logger = l
		}
	}
}

// WithConfig sets the run configuration.
func WithConfig(cfg Config) Option {
	return func(e *Engine) {
		e.config = cfg
	}
}

// Run executes one planning batch to completion. Any failure aborts the
// run; there is no partially-correct order.
func (e *Engine) Run(ctx context.Context) (*Result, error) {
	ctx, span := e.Tracer.Start(ctx, "Engine.Run")
	defer span.End()

	plan := e.config.Plan
	if err := plan.Validate(); err != nil {
		return nil, err
	}

	snap, err := inventory.Load(e.config.InventoryPath)
	if err != nil {
		return nil, err
	}
	inv := snap.Logical()
	e.Logger.Info("Snapshot loaded",
		"categories", len(inv),
		"on_hand", inv.Sum(),
		"backordered", inv.Backordered())

	in, deps, err := e.prepare(ctx, snap, plan)
	if err != nil {
		return nil, err
	}

	names := []string{plan.Policy}
	if plan.Policy == "all" {
		names = policy.Names()
	}

	result := &Result{Sizes: snap.Sizes(), Inventory: inv}
	for _, name := range names {
		eng, err := policy.ByName(name, deps)
		if err != nil {
			return nil, err
		}

		start := time.Now()
		pctx, pspan := e.Tracer.Start(ctx, "Policy."+eng.Name())
		ord, err := eng.Build(pctx, in)
		if err != nil {
			pspan.RecordError(err)
			pspan.End()
			return nil, fmt.Errorf("%s failed: %w", eng.Name(), err)
		}
		pspan.SetAttributes(
			attribute.String("policy", eng.Name()),
			attribute.Int64("duration_ms", time.Since(start).Milliseconds()),
			attribute.Int("order_units", ord.Sum()),
		)
		pspan.End()

		if got := ord.Sum(); got != plan.OrderSize {
			return nil, fmt.Errorf("%w: %s order sums to %d, want %d",
				order.ErrInvariant, eng.Name(), got, plan.OrderSize)
		}
		e.Logger.Info("Policy complete",
			"policy", eng.Name(),
			"duration", time.Since(start).Round(time.Millisecond).String())
		result.Orders = append(result.Orders, PolicyResult{Policy: eng.Name(), Order: ord})
	}
	return result, nil
}

// prepare builds the shared read-only inputs every policy consumes: the
// posterior demand samples and the stream library.
func (e *Engine) prepare(ctx context.Context, snap *inventory.Snapshot, plan config.PlanConfig) (*policy.Input, policy.Deps, error) {
	_, span := e.Tracer.Start(ctx, "Engine.Prepare")
	defer span.End()

	cat, err := catalog.New(snap.Sizes())
	if err != nil {
		return nil, policy.Deps{}, err
	}
	mix, err := cat.GenderedMix(catalog.IndustryMix)
	if err != nil {
		return nil, policy.Deps{}, err
	}
	weights, err := cat.MixVector(mix)
	if err != nil {
		return nil, policy.Deps{}, err
	}

	prior, err := demand.BuildPrior(weights, plan.Pseudocount)
	if err != nil {
		return nil, policy.Deps{}, err
	}

	rng := rand.New(rand.NewSource(plan.Seed))
	samples, err := demand.SamplePosterior(prior, snap.Observed(), plan.SimSize, rng)
	if err != nil {
		return nil, policy.Deps{}, err
	}

	inv := snap.Logical()
	streamLen := simulate.StreamLength(inv, plan.OrderSize)
	streams, err := simulate.BuildStreams(samples, streamLen, rng)
	if err != nil {
		return nil, policy.Deps{}, err
	}
	span.SetAttributes(
		attribute.Int("worlds", len(streams)),
		attribute.Int("stream_length", streamLen),
	)
	e.Logger.Debug("Simulation ready", "worlds", len(streams), "stream_length", streamLen)

	in := &policy.Input{Inventory: inv, Streams: streams, OrderSize: plan.OrderSize}
	deps := policy.Deps{Reference: weights, MaxDist: plan.MaxDist, Logger: e.Logger}
	return in, deps, nil
}
