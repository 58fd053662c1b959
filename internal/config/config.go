// Package config loads service settings from environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all service settings, populated from environment variables.
type Config struct {
	HTTPAddr        string
	LogLevel        string
	LogFormat       string
	ShutdownTimeout time.Duration

	// TickInterval is how often the pipeline recomputes every district
	// status. SourceTimeout bounds each upstream fetch inside a tick.
	TickInterval  time.Duration
	SourceTimeout time.Duration

	// Anchor probing.
	ProbePort    string
	ProbeTimeout time.Duration
	ProbeWorkers int

	// Kafka transport for inbound text signals and outbound statuses.
	// Disabled by default: the monitor still computes disaster and infra
	// scores without it.
	KafkaEnabled     bool
	KafkaBrokers     []string
	KafkaSourceTopic string
	KafkaSinkTopic   string
	KafkaGroupID     string

	// BMKG earthquake feed.
	BMKGEnabled bool
	BMKGBaseURL string
	BMKGTimeout time.Duration
}

// Load reads configuration from environment variables, applying defaults where unset.
func Load() (*Config, error) {
	shutdownTimeout, err := parseDuration("SHUTDOWN_TIMEOUT", "10s")
	if err != nil {
		return nil, err
	}

	tickInterval, err := parseDuration("TICK_INTERVAL", "5m")
	if err != nil {
		return nil, err
	}

	sourceTimeout, err := parseDuration("SOURCE_TIMEOUT", "30s")
	if err != nil {
		return nil, err
	}

	probeTimeout, err := parseDuration("PROBE_TIMEOUT", "5s")
	if err != nil {
		return nil, err
	}

	probeWorkers, err := parsePositiveInt("PROBE_WORKERS", 10, 1000)
	if err != nil {
		return nil, err
	}

	bmkgTimeout, err := parseDuration("BMKG_TIMEOUT", "10s")
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		HTTPAddr:        envOrDefault("HTTP_ADDR", ":8080"),
		LogLevel:        envOrDefault("LOG_LEVEL", "info"),
		LogFormat:       envOrDefault("LOG_FORMAT", "json"),
		ShutdownTimeout: shutdownTimeout,

		TickInterval:  tickInterval,
		SourceTimeout: sourceTimeout,

		ProbePort:    envOrDefault("PROBE_PORT", "443"),
		ProbeTimeout: probeTimeout,
		ProbeWorkers: probeWorkers,

		KafkaEnabled:     envBool("KAFKA_ENABLED", false),
		KafkaBrokers:     splitBrokers(envOrDefault("KAFKA_BROKERS", "localhost:9092")),
		KafkaSourceTopic: envOrDefault("KAFKA_SOURCE_TOPIC", "raw-text-signals"),
		KafkaSinkTopic:   envOrDefault("KAFKA_SINK_TOPIC", "district-statuses"),
		KafkaGroupID:     envOrDefault("KAFKA_GROUP_ID", "resilience-monitor"),

		BMKGEnabled: envBool("BMKG_ENABLED", true),
		BMKGBaseURL: envOrDefault("BMKG_BASE_URL", "https://data.bmkg.go.id"),
		BMKGTimeout: bmkgTimeout,
	}

	if cfg.SourceTimeout >= cfg.TickInterval {
		return nil, errors.New("SOURCE_TIMEOUT must be shorter than TICK_INTERVAL")
	}
	if cfg.KafkaEnabled {
		if len(cfg.KafkaBrokers) == 0 {
			return nil, errors.New("KAFKA_BROKERS is required when KAFKA_ENABLED is true")
		}
		if cfg.KafkaSourceTopic == "" {
			return nil, errors.New("KAFKA_SOURCE_TOPIC is required when KAFKA_ENABLED is true")
		}
		if cfg.KafkaSinkTopic == "" {
			return nil, errors.New("KAFKA_SINK_TOPIC is required when KAFKA_ENABLED is true")
		}
	}
	if cfg.BMKGEnabled && cfg.BMKGBaseURL == "" {
		return nil, errors.New("BMKG_BASE_URL is required when BMKG_ENABLED is true")
	}

	return cfg, nil
}

func envOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		return v == "true"
	}
	return def
}

func parseDuration(key, def string) (time.Duration, error) {
	d, err := time.ParseDuration(envOrDefault(key, def))
	if err != nil || d <= 0 {
		return 0, fmt.Errorf("invalid %s", key)
	}
	return d, nil
}

func parsePositiveInt(key string, def, max int) (int, error) {
	s := os.Getenv(key)
	if s == "" {
		return def, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil || n <= 0 || n > max {
		return 0, fmt.Errorf("invalid %s: must be between 1 and %d", key, max)
	}
	return n, nil
}

func splitBrokers(s string) []string {
	var brokers []string
	for _, b := range strings.Split(s, ",") {
		if b = strings.TrimSpace(b); b != "" {
			brokers = append(brokers, b)
		}
	}
	return brokers
}
