package health

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"recipe-nutrition/internal/infrastructure/config"

	"github.com/gin-gonic/gin"
)

type stubPinger struct {
	err error
}

func (p stubPinger) Ping(context.Context) error { return p.err }

func newTestRouter(p Pinger) *gin.Engine {
	gin.SetMode(gin.TestMode)
	cfg := &config.Config{
		App:     config.AppConfig{Version: "1.2.3"},
		Catalog: config.CatalogConfig{Backend: config.CatalogBackendRedis},
	}
	h := NewHandler(cfg, p)

	router := gin.New()
	router.GET("/health", h.HealthCheck)
	router.GET("/ready", h.ReadinessCheck)
	router.GET("/live", h.LivenessCheck)
	return router
}

func get(router http.Handler, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	return w
}

func TestHealthCheck(t *testing.T) {
	w := get(newTestRouter(stubPinger{}), "/health")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d; want 200", w.Code)
	}

	var res HealthResponse
	if err := json.Unmarshal(w.Body.Bytes(), &res); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if res.Status != "ok" || res.Version != "1.2.3" || res.Catalog != "redis" {
		t.Errorf("response = %+v", res)
	}
	if _, ok := res.Runtime["goroutines"]; !ok {
		t.Error("runtime info missing goroutines")
	}
}

func TestReadinessCheck(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		want   string
	}{
		{"catalog reachable", nil, http.StatusOK, "ready"},
		{"catalog down", errors.New("connection refused"), http.StatusServiceUnavailable, "not_ready"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w := get(newTestRouter(stubPinger{err: tc.err}), "/ready")
			if w.Code != tc.status {
				t.Fatalf("status = %d; want %d", w.Code, tc.status)
			}
			var body map[string]string
			if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
				t.Fatalf("decode: %v", err)
			}
			if body["status"] != tc.want {
				t.Errorf("status field = %q; want %q", body["status"], tc.want)
			}
		})
	}
}

func TestLivenessIgnoresCatalog(t *testing.T) {
	w := get(newTestRouter(stubPinger{err: errors.New("down")}), "/live")
	if w.Code != http.StatusOK {
		t.Errorf("status = %d; want 200", w.Code)
	}
}
