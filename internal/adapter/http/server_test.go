package http_test

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	httpadapter "github.com/wirasatya/resilience-monitor/internal/adapter/http"
	"github.com/wirasatya/resilience-monitor/internal/domain"
)

type mockReadiness struct {
	err error
}

func (m *mockReadiness) CheckReadiness(_ context.Context) error { return m.err }

type mockSnapshots struct {
	snap *domain.Snapshot
}

func (m *mockSnapshots) Snapshot() *domain.Snapshot { return m.snap }

func testSnapshot() *domain.Snapshot {
	ts := time.Date(2026, 2, 10, 4, 30, 0, 0, time.UTC)
	return &domain.Snapshot{
		Statuses: []domain.DistrictStatus{
			{
				District: "Kedaton", Regency: "Bandar Lampung",
				Social:   domain.SomeScore(76.0),
				Infra:    domain.SomeScore(100.0),
				Disaster: domain.SomeScore(100.0),
				Combined: domain.SomeScore(90.4),
				Status:   domain.StatusNormal, ComputedAt: ts,
			},
			{
				District: "Way Halim", Regency: "Bandar Lampung",
				Social:   domain.SomeScore(35.0),
				Disaster: domain.SomeScore(45.0),
				Combined: domain.SomeScore(38.3),
				Status:   domain.StatusCritical, ComputedAt: ts,
			},
		},
		ComputedAt: ts,
	}
}

func newTestServer(snap *domain.Snapshot, readyErr error) *httpadapter.Server {
	return httpadapter.NewServer(":0", &mockSnapshots{snap: snap}, &mockReadiness{err: readyErr}, slog.Default())
}

func TestStatusReturnsSnapshot(t *testing.T) {
	srv := newTestServer(testSnapshot(), nil)
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/status", nil)

	srv.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var snap domain.Snapshot
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &snap))
	require.Len(t, snap.Statuses, 2)
	assert.Equal(t, "Kedaton", snap.Statuses[0].District)
	assert.Equal(t, domain.StatusNormal, snap.Statuses[0].Status)
}

func TestStatusEncodesMissingScoresAsNull(t *testing.T) {
	srv := newTestServer(testSnapshot(), nil)
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/status/Way%20Halim", nil)

	srv.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "null", string(body["infra_score"]), "absent score must serialize as null, not 0")
	assert.Equal(t, "35", string(body["social_score"]))
}

func TestStatusReturns503BeforeFirstTick(t *testing.T) {
	srv := newTestServer(nil, nil)

	for _, path := range []string{"/api/status", "/api/status/Kedaton"} {
		rec := httptest.NewRecorder()
		srv.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusServiceUnavailable, rec.Code, path)
	}
}

func TestDistrictStatusByName(t *testing.T) {
	srv := newTestServer(testSnapshot(), nil)
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/status/Kedaton", nil)

	srv.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var status domain.DistrictStatus
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &status))
	assert.Equal(t, "Kedaton", status.District)
	assert.Equal(t, domain.SomeScore(90.4), status.Combined)
}

func TestDistrictStatusUnknownDistrict(t *testing.T) {
	srv := newTestServer(testSnapshot(), nil)
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/status/Atlantis", nil)

	srv.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHealthzReturns200(t *testing.T) {
	srv := newTestServer(nil, nil)
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)

	srv.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "healthy", body["status"])
}

func TestReadyzReturns200WhenReady(t *testing.T) {
	srv := newTestServer(nil, nil)
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/readyz", nil)

	srv.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "ready", body["status"])
}

func TestReadyzReturns503WhenNotReady(t *testing.T) {
	srv := newTestServer(nil, fmt.Errorf("no snapshot computed yet"))
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/readyz", nil)

	srv.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "not ready", body["status"])
	assert.Equal(t, "no snapshot computed yet", body["error"])
}

func TestMetricsEndpoint(t *testing.T) {
	srv := newTestServer(nil, nil)
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)

	srv.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "go_goroutines")
}
