// Package pipeline orchestrates the periodic refresh tick: fetch the three
// upstream signals, score every district, and publish the snapshot.
package pipeline

import (
	"context"
	"errors"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/robfig/cron/v3"
	"golang.org/x/sync/errgroup"

	"github.com/wirasatya/resilience-monitor/internal/domain"
	"github.com/wirasatya/resilience-monitor/internal/observability"
)

// TextSource drains the raw text signals collected since the previous tick.
type TextSource interface {
	FetchTexts(ctx context.Context) ([]domain.TextItem, error)
}

// BulletinSource fetches the currently active disaster bulletins.
type BulletinSource interface {
	FetchBulletins(ctx context.Context) ([]domain.DisasterBulletin, error)
}

// ProbeRunner checks every anchor and returns exactly one result per anchor.
type ProbeRunner interface {
	Run(ctx context.Context) ([]domain.ProbeResult, error)
}

// Publisher pushes a finished snapshot downstream.
type Publisher interface {
	PublishSnapshot(ctx context.Context, snap *domain.Snapshot) error
}

// Pipeline runs the fetch-score-publish loop. Any source may be nil, in which
// case its component is absent rather than zero; the status fusion
// redistributes the missing weight.
type Pipeline struct {
	classifier *domain.Classifier
	gazetteer  *domain.Gazetteer

	texts     TextSource
	bulletins BulletinSource
	probes    ProbeRunner
	publisher Publisher

	logger  *slog.Logger
	metrics *observability.Metrics

	tickInterval  time.Duration
	sourceTimeout time.Duration

	snapshot atomic.Pointer[domain.Snapshot]
}

// Options carries the optional stages and timing knobs for New.
type Options struct {
	Texts     TextSource
	Bulletins BulletinSource
	Probes    ProbeRunner
	Publisher Publisher

	TickInterval  time.Duration
	SourceTimeout time.Duration
}

// New creates a Pipeline. The classifier and gazetteer are mandatory; every
// source in opts may be nil.
func New(classifier *domain.Classifier, gazetteer *domain.Gazetteer, logger *slog.Logger, metrics *observability.Metrics, opts Options) (*Pipeline, error) {
	if classifier == nil {
		return nil, errors.New("classifier is required")
	}
	if gazetteer == nil {
		return nil, errors.New("gazetteer is required")
	}
	if opts.TickInterval <= 0 {
		opts.TickInterval = 5 * time.Minute
	}
	if opts.SourceTimeout <= 0 {
		opts.SourceTimeout = 30 * time.Second
	}
	return &Pipeline{
		classifier:    classifier,
		gazetteer:     gazetteer,
		texts:         opts.Texts,
		bulletins:     opts.Bulletins,
		probes:        opts.Probes,
		publisher:     opts.Publisher,
		logger:        logger,
		metrics:       metrics,
		tickInterval:  opts.TickInterval,
		sourceTimeout: opts.SourceTimeout,
	}, nil
}

// Snapshot returns the most recent tick's output, or nil before the first
// tick completes.
func (p *Pipeline) Snapshot() *domain.Snapshot {
	return p.snapshot.Load()
}

// CheckReadiness returns nil once the first snapshot has been computed.
func (p *Pipeline) CheckReadiness(_ context.Context) error {
	if p.snapshot.Load() == nil {
		return errors.New("no snapshot computed yet")
	}
	return nil
}

// Run performs one immediate refresh, then refreshes on the tick interval
// until the context is cancelled.
func (p *Pipeline) Run(ctx context.Context) error {
	p.logger.Info("pipeline started", "tick_interval", p.tickInterval)
	p.metrics.PipelineRunning.Set(1)
	defer p.metrics.PipelineRunning.Set(0)

	if err := p.Refresh(ctx); err != nil && ctx.Err() == nil {
		p.logger.Error("initial refresh failed", "error", err)
	}

	c := cron.New()
	_, err := c.AddFunc("@every "+p.tickInterval.String(), func() {
		if err := p.Refresh(ctx); err != nil && ctx.Err() == nil {
			p.logger.Error("refresh failed", "error", err)
		}
	})
	if err != nil {
		return err
	}

	c.Start()
	<-ctx.Done()
	p.logger.Info("pipeline stopping", "reason", ctx.Err())

	stopCtx := c.Stop()
	<-stopCtx.Done()
	return nil
}

// sourceData is one tick's worth of upstream fetches. The ok flags separate
// "fetched nothing" from "could not fetch": a failed or disabled source makes
// its component absent for every district instead of neutral.
type sourceData struct {
	texts   []domain.TextItem
	textsOK bool

	bulletins   []domain.DisasterBulletin
	bulletinsOK bool

	probes   []domain.ProbeResult
	probesOK bool
}

// Refresh runs one full tick: fetch all sources in parallel, score every
// district, swap the snapshot, and publish it.
func (p *Pipeline) Refresh(ctx context.Context) error {
	start := time.Now()

	data := p.fetchAll(ctx)
	if ctx.Err() != nil {
		return ctx.Err()
	}

	snap := p.buildSnapshot(data)
	p.snapshot.Store(snap)

	p.metrics.TicksTotal.Inc()
	p.metrics.TickDuration.Observe(time.Since(start).Seconds())
	p.logger.Info("tick complete",
		"districts", len(snap.Statuses),
		"texts", len(data.texts),
		"bulletins", len(data.bulletins),
		"probes", len(data.probes),
		"duration", time.Since(start),
	)

	if p.publisher != nil {
		if err := p.publisher.PublishSnapshot(ctx, snap); err != nil {
			p.logger.Error("publish snapshot failed", "error", err)
			p.metrics.TickErrors.Inc()
		}
	}
	return nil
}

// fetchAll queries the three sources concurrently, each under its own
// timeout. A failing source is logged and degrades to "no data"; it never
// aborts the tick.
func (p *Pipeline) fetchAll(ctx context.Context) sourceData {
	var data sourceData
	g, gctx := errgroup.WithContext(ctx)

	if p.texts != nil {
		g.Go(func() error {
			_, err := p.timedFetch(gctx, "texts", func(fctx context.Context) (int, error) {
				var ferr error
				data.texts, ferr = p.texts.FetchTexts(fctx)
				return len(data.texts), ferr
			})
			data.textsOK = err == nil
			return nil
		})
	}
	if p.bulletins != nil {
		g.Go(func() error {
			_, err := p.timedFetch(gctx, "bulletins", func(fctx context.Context) (int, error) {
				var ferr error
				data.bulletins, ferr = p.bulletins.FetchBulletins(fctx)
				return len(data.bulletins), ferr
			})
			data.bulletinsOK = err == nil
			return nil
		})
	}
	if p.probes != nil {
		g.Go(func() error {
			_, err := p.timedFetch(gctx, "probes", func(fctx context.Context) (int, error) {
				var ferr error
				data.probes, ferr = p.probes.Run(fctx)
				return len(data.probes), ferr
			})
			data.probesOK = err == nil
			return nil
		})
	}

	// Fetch closures never return errors; Wait only joins them.
	_ = g.Wait()
	return data
}

// timedFetch wraps one source call with the per-source timeout, duration
// metric, and failure accounting.
func (p *Pipeline) timedFetch(ctx context.Context, source string, fetch func(context.Context) (int, error)) (int, error) {
	fctx, cancel := context.WithTimeout(ctx, p.sourceTimeout)
	defer cancel()

	start := time.Now()
	n, err := fetch(fctx)
	p.metrics.SourceDuration.WithLabelValues(source).Observe(time.Since(start).Seconds())

	if err != nil {
		p.logger.Error("source fetch failed", "source", source, "error", err)
		p.metrics.TickErrors.Inc()
		return 0, err
	}
	p.logger.Debug("source fetched", "source", source, "items", n)
	return n, nil
}

// buildSnapshot scores every gazetteer district, in gazetteer order, from one
// tick's source data. Pure given its input.
func (p *Pipeline) buildSnapshot(data sourceData) *domain.Snapshot {
	events := p.classifier.ClassifyBatch(data.texts)
	for _, ev := range events {
		p.metrics.TextsClassified.WithLabelValues(string(ev.Issue)).Inc()
	}
	for _, b := range data.bulletins {
		p.metrics.BulletinsSeen.WithLabelValues(string(b.Type)).Inc()
	}
	for _, res := range data.probes {
		p.metrics.ProbesRun.WithLabelValues(probeOutcome(res)).Inc()
	}

	districts := p.gazetteer.Districts()
	social := domain.AggregateSocial(events)
	disaster := domain.CorrelateDisasters(data.bulletins, districts)
	infra := domain.AggregateInfra(data.probes)

	statuses := make([]domain.DistrictStatus, 0, len(districts))
	for _, d := range districts {
		status := domain.ComputeStatus(d,
			signalScore(social, d.Name, data.textsOK),
			anchorScore(infra, d.Name, data.probesOK),
			signalScore(disaster, d.Name, data.bulletinsOK),
		)
		statuses = append(statuses, status)
		p.recordStatus(status)
	}

	return &domain.Snapshot{Statuses: statuses, ComputedAt: domain.Now()}
}

// signalScore maps a district's aggregated signal to a Score. A district with
// no complaints or no nearby hazards is neutral, not unknown; only a failed
// or disabled source makes the component absent.
func signalScore(scores map[string]float64, district string, sourceOK bool) domain.Score {
	if !sourceOK {
		return domain.NoData()
	}
	if v, ok := scores[district]; ok {
		return domain.SomeScore(v)
	}
	return domain.SomeScore(domain.NeutralScore)
}

// anchorScore maps a district's infrastructure aggregate to a Score. Unlike
// the passive signals, a district without anchors has no reading at all.
func anchorScore(scores map[string]float64, district string, sourceOK bool) domain.Score {
	if !sourceOK {
		return domain.NoData()
	}
	if v, ok := scores[district]; ok {
		return domain.SomeScore(v)
	}
	return domain.NoData()
}

func probeOutcome(res domain.ProbeResult) string {
	switch {
	case !res.Reachable:
		return "unreachable"
	case res.Degraded():
		return "degraded"
	default:
		return "healthy"
	}
}

func (p *Pipeline) recordStatus(status domain.DistrictStatus) {
	p.metrics.StatusesComputed.Inc()
	for _, s := range []domain.Status{domain.StatusCritical, domain.StatusWarning, domain.StatusNormal, domain.StatusUnknown} {
		v := 0.0
		if s == status.Status {
			v = 1.0
		}
		p.metrics.DistrictStatus.WithLabelValues(status.District, string(s)).Set(v)
	}
}
