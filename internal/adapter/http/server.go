// Package http exposes the monitor's read-only HTTP surface: district
// statuses, health, readiness, and metrics.
package http

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/wirasatya/resilience-monitor/internal/domain"
)

// ReadinessChecker reports whether the service is ready to serve traffic.
type ReadinessChecker interface {
	CheckReadiness(ctx context.Context) error
}

// SnapshotProvider hands out the most recent tick's output. Returns nil
// before the first tick completes.
type SnapshotProvider interface {
	Snapshot() *domain.Snapshot
}

// Server exposes status, health, readiness, and metrics HTTP endpoints.
type Server struct {
	httpServer *http.Server
	snapshots  SnapshotProvider
	logger     *slog.Logger
}

// NewServer creates an HTTP server with /api/status, /healthz, /readyz, and
// /metrics routes.
func NewServer(addr string, snapshots SnapshotProvider, ready ReadinessChecker, logger *slog.Logger) *Server {
	mux := http.NewServeMux()

	s := &Server{
		httpServer: &http.Server{
			Addr:         addr,
			Handler:      mux,
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 10 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
		snapshots: snapshots,
		logger:    logger,
	}

	mux.HandleFunc("GET /api/status", s.handleStatus)
	mux.HandleFunc("GET /api/status/{district}", s.handleDistrictStatus)
	mux.HandleFunc("GET /healthz", s.handleHealth)
	mux.HandleFunc("GET /readyz", handleReady(ready))
	mux.Handle("GET /metrics", promhttp.Handler())

	return s
}

// Start begins listening. Returns http.ErrServerClosed on graceful shutdown.
func (s *Server) Start() error {
	s.logger.Info("http server starting", "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully drains connections within the given context deadline.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

// ServeHTTP delegates to the underlying handler, useful for testing.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.httpServer.Handler.ServeHTTP(w, r)
}

// handleStatus serves the full snapshot: one status per district.
func (s *Server) handleStatus(w http.ResponseWriter, _ *http.Request) {
	snap := s.snapshots.Snapshot()
	if snap == nil {
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{
			"error": "no snapshot computed yet",
		})
		return
	}
	writeJSON(w, http.StatusOK, snap)
}

// handleDistrictStatus serves a single district's status by canonical name.
func (s *Server) handleDistrictStatus(w http.ResponseWriter, r *http.Request) {
	snap := s.snapshots.Snapshot()
	if snap == nil {
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{
			"error": "no snapshot computed yet",
		})
		return
	}

	name := r.PathValue("district")
	for _, status := range snap.Statuses {
		if status.District == name {
			writeJSON(w, http.StatusOK, status)
			return
		}
	}
	writeJSON(w, http.StatusNotFound, map[string]string{
		"error": "unknown district: " + name,
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
}

func handleReady(checker ReadinessChecker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		if err := checker.CheckReadiness(ctx); err != nil {
			writeJSON(w, http.StatusServiceUnavailable, map[string]string{
				"status": "not ready",
				"error":  err.Error(),
			})
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"status": "ready"})
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck // best-effort health response
}
