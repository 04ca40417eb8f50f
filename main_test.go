package main

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/ramonfbmiranda/arquivosmaverick/internal/config"
	"github.com/ramonfbmiranda/arquivosmaverick/internal/repository"
	"github.com/stretchr/testify/require"
)

func testApp() *app {
	gin.SetMode(gin.TestMode)
	return &app{
		cfg: &config.Config{
			CORS:   config.CORSConfig{Origins: []string{"*"}},
			Upload: config.UploadConfig{MaxBytes: 1 << 20},
		},
		store: repository.NewMemoryStore(),
		deps:  map[string]pinger{},
	}
}

func do(r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestHealthAndRoot(t *testing.T) {
	r := testApp().router()

	w := do(r, http.MethodGet, "/health", "")
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "healthy", w.Body.String())

	w = do(r, http.MethodGet, "/api/", "")
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), "Gangue da Maverick API")
}

func TestReadyReportsDependencies(t *testing.T) {
	a := testApp()
	a.deps["mongodb"] = func(context.Context) error { return nil }
	r := a.router()

	w := do(r, http.MethodGet, "/ready", "")
	require.Equal(t, http.StatusOK, w.Code)
	var body struct {
		Status string          `json:"status"`
		Deps   map[string]bool `json:"deps"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Equal(t, "ready", body.Status)
	require.True(t, body.Deps["mongodb"])

	a.deps["minio"] = func(context.Context) error { return errors.New("unreachable") }
	w = do(r, http.MethodGet, "/ready", "")
	require.Equal(t, http.StatusServiceUnavailable, w.Code)
	require.Contains(t, w.Body.String(), "not_ready")
}

func TestRouterServesMembersOverMemoryStore(t *testing.T) {
	r := testApp().router()

	w := do(r, http.MethodPost, "/api/members", `{"name":"Ana","nickname":"Aninha","classification":"Fundadora","description":"d","characteristics":["x"],"current_status":"Ativa","role":"Piloto"}`)
	require.Equal(t, http.StatusOK, w.Code)

	w = do(r, http.MethodGet, "/api/members", "")
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), `"nickname":"Aninha"`)

	// uploads are only mounted when object storage is configured
	w = do(r, http.MethodPost, "/api/uploads", "")
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestRateLimitWiring(t *testing.T) {
	a := testApp()
	a.cfg.RateLimit = config.RateLimitConfig{Enabled: true, RPS: 0.001, Burst: 1}
	r := a.router()

	require.Equal(t, http.StatusOK, do(r, http.MethodGet, "/health", "").Code)
	require.Equal(t, http.StatusTooManyRequests, do(r, http.MethodGet, "/health", "").Code)
}
