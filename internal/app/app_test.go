package app

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"labpulse/internal/config"
)

func TestNewLogger_Levels(t *testing.T) {
	tests := []struct {
		name  string
		level string
		want  string
	}{
		{"debug level", "debug", "DEBUG"},
		{"info level", "info", "INFO"},
		{"warn level", "warn", "WARN"},
		{"error level", "error", "ERROR"},
		{"unknown falls back to info", "verbose", "INFO"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger := NewLogger(config.LoggingConfig{Level: tt.level, Format: "json"})
			require.NotNil(t, logger)
		})
	}
}

func TestNewApplication_Routes(t *testing.T) {
	t.Setenv("LABPULSE_SECURITY_RATE_LIMIT_ENABLED", "false")

	app, err := NewApplication()
	require.NoError(t, err)

	tests := []struct {
		name       string
		method     string
		path       string
		body       string
		wantStatus int
	}{
		{"health probe", http.MethodGet, "/healthz", "", http.StatusOK},
		{"version probe", http.MethodGet, "/api/v1/version", "", http.StatusOK},
		{"describe", http.MethodPost, "/api/v1/stats/describe", `{"data":[1,2,3]}`, http.StatusOK},
		{"staffing", http.MethodPost, "/api/v1/staffing/estimate", `{"order_volume":100,"complexity_score":1,"historical_efficiency":0.85}`, http.StatusOK},
		{"unknown route", http.MethodGet, "/api/v1/nope", "", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var req *http.Request
			if tt.body != "" {
				req = httptest.NewRequest(tt.method, tt.path, strings.NewReader(tt.body))
				req.Header.Set("Content-Type", "application/json")
			} else {
				req = httptest.NewRequest(tt.method, tt.path, nil)
			}

			rec := httptest.NewRecorder()
			app.Router.ServeHTTP(rec, req)
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestApplication_StartStop(t *testing.T) {
	t.Setenv("LABPULSE_SERVER_PORT", "18742")

	app, err := NewApplication()
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	require.NoError(t, app.Start(ctx, cancel))
	require.True(t, app.waitReady(5*time.Second), "server never became ready")

	resp, err := http.Get("http://localhost:18742/metrics")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	require.NoError(t, app.Stop(context.Background()))
}
