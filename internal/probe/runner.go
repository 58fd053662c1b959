package probe

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/wirasatya/resilience-monitor/internal/domain"
)

// Runner fans probes out across the anchor list and collects one result per
// anchor into an immutable batch. Anchors whose probes never complete before
// the tick deadline are reported unreachable, not awaited.
type Runner struct {
	prober  Prober
	anchors []domain.Anchor
	workers int
	logger  *slog.Logger
}

// NewRunner builds a runner over a fixed anchor list. An empty anchor list
// is a fatal configuration error: a monitor that can probe nothing is
// misconfigured, not idle.
func NewRunner(prober Prober, anchors []domain.Anchor, workers int, logger *slog.Logger) (*Runner, error) {
	if prober == nil {
		return nil, errors.New("prober is required")
	}
	if len(anchors) == 0 {
		return nil, errors.New("anchor list is empty")
	}
	if workers <= 0 {
		workers = 10
	}
	return &Runner{
		prober:  prober,
		anchors: anchors,
		workers: workers,
		logger:  logger,
	}, nil
}

// Run probes every anchor in parallel, bounded by the worker limit, and
// returns exactly one result per anchor in anchor order. Each task writes
// only its own slot, so the batch needs no locking; slots are pre-filled
// with an unreachable result so a task cancelled by the tick deadline still
// leaves a well-formed entry behind.
func (r *Runner) Run(ctx context.Context) ([]domain.ProbeResult, error) {
	results := make([]domain.ProbeResult, len(r.anchors))
	for i, a := range r.anchors {
		results[i] = domain.ProbeResult{
			Anchor:     a.Host,
			District:   a.District,
			Reachable:  false,
			LatencyMS:  -1,
			PacketLoss: 100,
			Timestamp:  time.Now().UTC(),
		}
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.workers)

	for i, anchor := range r.anchors {
		g.Go(func() error {
			if gctx.Err() != nil {
				return nil // deadline passed, keep the unreachable placeholder
			}
			results[i] = r.prober.Probe(gctx, anchor)
			return nil
		})
	}

	// Workers never return errors; Wait only joins them.
	_ = g.Wait()

	if r.logger != nil {
		reachable := 0
		for _, res := range results {
			if res.Reachable {
				reachable++
			}
		}
		r.logger.Debug("probe run complete",
			"anchors", len(results),
			"reachable", reachable,
		)
	}
	return results, nil
}

// Anchors exposes the configured anchor list for wiring and diagnostics.
func (r *Runner) Anchors() []domain.Anchor {
	return r.anchors
}
