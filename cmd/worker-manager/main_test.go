// cmd/worker-manager/main_test.go
package main

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"career-workers/internal/common/camunda"
	"career-workers/internal/common/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubCheck struct{ err error }

func (s stubCheck) HealthCheck(context.Context) error { return s.err }
func (s stubCheck) Ping(context.Context) error        { return s.err }

func serve(t *testing.T, mux *http.ServeMux, path string) (int, map[string]interface{}) {
	t.Helper()
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))

	var body map[string]interface{}
	if rec.Header().Get("Content-Type") == "application/json" {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	}
	return rec.Code, body
}

func TestHealthMux(t *testing.T) {
	group := camunda.NewWorkerGroup(nil, logger.NewTestLogger(t))

	tests := []struct {
		name       string
		zeebe      stubCheck
		pg         stubCheck
		redis      stubCheck
		wantStatus int
		wantState  string
	}{
		{name: "all dependencies up", wantStatus: http.StatusOK, wantState: "ready"},
		{name: "redis down", redis: stubCheck{errors.New("dial tcp: refused")}, wantStatus: http.StatusServiceUnavailable, wantState: "not_ready"},
		{name: "zeebe down", zeebe: stubCheck{errors.New("unavailable")}, wantStatus: http.StatusServiceUnavailable, wantState: "not_ready"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mux := newHealthMux(tt.zeebe, tt.pg, tt.redis, group)

			code, body := serve(t, mux, "/health")
			assert.Equal(t, http.StatusOK, code)
			assert.Equal(t, "healthy", body["status"])

			code, body = serve(t, mux, "/ready")
			assert.Equal(t, tt.wantStatus, code)
			assert.Equal(t, tt.wantState, body["status"])
			assert.Contains(t, body["checks"], "postgres")
		})
	}
}

func TestHealthMux_Metrics(t *testing.T) {
	mux := newHealthMux(stubCheck{}, stubCheck{}, stubCheck{}, camunda.NewWorkerGroup(nil, logger.NewTestLogger(t)))

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "go_goroutines")
}
