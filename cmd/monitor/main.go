package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/wirasatya/resilience-monitor/internal/adapter/bmkg"
	httpadapter "github.com/wirasatya/resilience-monitor/internal/adapter/http"
	kafkaadapter "github.com/wirasatya/resilience-monitor/internal/adapter/kafka"
	"github.com/wirasatya/resilience-monitor/internal/config"
	"github.com/wirasatya/resilience-monitor/internal/domain"
	"github.com/wirasatya/resilience-monitor/internal/lampung"
	"github.com/wirasatya/resilience-monitor/internal/observability"
	"github.com/wirasatya/resilience-monitor/internal/pipeline"
	"github.com/wirasatya/resilience-monitor/internal/probe"
)

func main() {
	// Local development convenience; a missing .env is not an error.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := observability.NewLogger(cfg)
	metrics := observability.NewMetrics()

	gazetteer, err := domain.NewGazetteer(lampung.WithAliases())
	if err != nil {
		logger.Error("failed to build gazetteer", "error", err)
		os.Exit(1)
	}
	classifier, err := domain.NewClassifier(lampung.Lexicon(), gazetteer)
	if err != nil {
		logger.Error("failed to build classifier", "error", err)
		os.Exit(1)
	}

	opts := pipeline.Options{
		TickInterval:  cfg.TickInterval,
		SourceTimeout: cfg.SourceTimeout,
	}

	// Text intake and status publishing ride Kafka (feature-flagged via
	// KAFKA_ENABLED). Without it the monitor still scores disaster and
	// infrastructure signals.
	var reader *kafkaadapter.Reader
	var writer *kafkaadapter.Writer
	if cfg.KafkaEnabled {
		reader = kafkaadapter.NewReader(cfg, logger)
		writer = kafkaadapter.NewWriter(cfg, logger)
		opts.Texts = reader
		opts.Publisher = writer
		logger.Info("kafka transport enabled",
			"brokers", cfg.KafkaBrokers,
			"source_topic", cfg.KafkaSourceTopic,
			"sink_topic", cfg.KafkaSinkTopic,
		)
	} else {
		logger.Info("kafka transport disabled")
	}

	if cfg.BMKGEnabled {
		opts.Bulletins = bmkg.NewClient(cfg.BMKGBaseURL, cfg.BMKGTimeout, logger)
		logger.Info("bmkg quake feed enabled", "base_url", cfg.BMKGBaseURL)
	} else {
		logger.Info("bmkg quake feed disabled")
	}

	prober := probe.NewTCPProber(cfg.ProbePort, cfg.ProbeTimeout)
	runner, err := probe.NewRunner(prober, lampung.Anchors(), cfg.ProbeWorkers, logger)
	if err != nil {
		logger.Error("failed to build probe runner", "error", err)
		os.Exit(1)
	}
	opts.Probes = runner

	p, err := pipeline.New(classifier, gazetteer, logger, metrics, opts)
	if err != nil {
		logger.Error("failed to build pipeline", "error", err)
		os.Exit(1)
	}

	srv := httpadapter.NewServer(cfg.HTTPAddr, p, p, logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Start HTTP server.
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server error", "error", err)
		}
	}()

	// Start refresh loop.
	go func() {
		if err := p.Run(ctx); err != nil {
			logger.Error("pipeline error", "error", err)
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("http server shutdown error", "error", err)
	}
	if reader != nil {
		if err := reader.Close(); err != nil {
			logger.Error("kafka reader close error", "error", err)
		}
	}
	if writer != nil {
		if err := writer.Close(); err != nil {
			logger.Error("kafka writer close error", "error", err)
		}
	}

	logger.Info("shutdown complete")
}
