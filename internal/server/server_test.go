package server

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/verdantworks/idlefarm/internal/event"
	"github.com/verdantworks/idlefarm/internal/farm"
	"github.com/verdantworks/idlefarm/internal/rng"
	"github.com/verdantworks/idlefarm/internal/snapshot"
	"github.com/verdantworks/idlefarm/internal/sse"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()

	store := snapshot.NewMemoryStore()
	bus := event.NewMemoryBus()
	clock := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	svc := farm.NewService(context.Background(), store, bus, rng.NewSequence(0.5), func() time.Time { return clock })

	hub := sse.NewHub()
	hub.Start()
	t.Cleanup(hub.Stop)

	return NewServer(0, svc, hub)
}

func TestHealthzRoute(t *testing.T) {
	srv := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rr := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `"ok"`)
}

func TestSecurityHeaders(t *testing.T) {
	srv := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rr := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rr, req)

	assert.Equal(t, HeaderValueNoSniff, rr.Header().Get(HeaderContentType))
	assert.Equal(t, HeaderValueSameOrigin, rr.Header().Get(HeaderFrameOptions))
	assert.Equal(t, HeaderValueXSSBlock, rr.Header().Get(HeaderXSSProtection))
	assert.Equal(t, HeaderValueReferrerStrictOrigin, rr.Header().Get(HeaderReferrerPolicy))
}

func TestGetFarmRoute(t *testing.T) {
	srv := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/farm", nil)
	rr := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)

	var state map[string]interface{}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &state))
	assert.Contains(t, state, "plants")
	assert.Contains(t, state, "cash")
}

func TestBuyPlantRoute(t *testing.T) {
	srv := newTestServer(t)

	body, _ := json.Marshal(map[string]string{"strain_id": "gelato"})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/farm/plants/buy", bytes.NewReader(body))
	rr := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rr, req)

	require.Equal(t, http.StatusCreated, rr.Code)
	assert.Contains(t, rr.Body.String(), `"strain_id":"gelato"`)
}

func TestMetricsRoute(t *testing.T) {
	srv := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	rr := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestUnknownRoute(t *testing.T) {
	srv := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/nothing", nil)
	rr := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rr, req)

	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestRequestSizeLimit(t *testing.T) {
	srv := newTestServer(t)

	huge := strings.NewReader(`{"strain_id":"` + strings.Repeat("x", MaxRequestBodyBytes+1) + `"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/farm/plants/buy", huge)
	rr := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}
