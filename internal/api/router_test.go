package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"recipe-nutrition/internal/api/middleware"
	"recipe-nutrition/internal/core/catalog"
	"recipe-nutrition/internal/core/nutrition"
	"recipe-nutrition/internal/infrastructure/config"
	"recipe-nutrition/internal/pkg/common"
)

func testConfig() *config.Config {
	return &config.Config{
		App:            config.AppConfig{Name: "recipe-nutrition", Version: "test", Env: "test"},
		Server:         config.ServerConfig{Port: 8080, RequestTimeout: 5 * time.Second},
		Catalog:        config.CatalogConfig{Backend: config.CatalogBackendMemory},
		Lookup:         config.LookupConfig{Workers: 2},
		RateLimit:      config.RateLimitConfig{Enabled: true, Requests: 100, Window: time.Minute},
		DedupWindow:    time.Second,
		MaxRecipeItems: 10,
		MaxBodyBytes:   1 << 16,
	}
}

func newTestServer(t *testing.T, cfg *config.Config) http.Handler {
	t.Helper()
	store := catalog.NewMemoryStore()
	if _, err := catalog.Seed(context.Background(), store, catalog.SeedData()); err != nil {
		t.Fatalf("seed: %v", err)
	}
	return SetupRouter(cfg, store, nutrition.NewService(store, nil, cfg.Lookup.Workers))
}

func send(router http.Handler, method, path, body string, header map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	for k, v := range header {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestRouterServesProbesAndMetrics(t *testing.T) {
	router := newTestServer(t, testConfig())

	for _, path := range []string{"/health", "/ready", "/live"} {
		if w := send(router, http.MethodGet, path, "", nil); w.Code != http.StatusOK {
			t.Errorf("GET %s status = %d; want 200", path, w.Code)
		}
	}

	w := send(router, http.MethodGet, "/metrics", "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("GET /metrics status = %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "http_requests_total") {
		t.Error("metrics output missing http_requests_total")
	}
}

func TestRouterCalculateAssignsRequestID(t *testing.T) {
	router := newTestServer(t, testConfig())

	w := send(router, http.MethodPost, "/api/v1/ingredient-nutrition/calculate",
		`{"name":"egg","quantity":2,"unit":"whole"}`, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d; body %s", w.Code, w.Body.String())
	}
	if id := w.Header().Get(common.RequestIDHeader); len(id) != 36 {
		t.Errorf("request id header = %q; want generated UUID", id)
	}

	w = send(router, http.MethodGet, "/api/v1/ingredient-nutrition/eggs", "",
		map[string]string{common.RequestIDHeader: "trace-1"})
	if got := w.Header().Get(common.RequestIDHeader); got != "trace-1" {
		t.Errorf("request id header = %q; want trace-1", got)
	}
}

func TestRouterAdminRoutes(t *testing.T) {
	body := `{"name":"za'atar","caloriesPerUnit":300,"proteinPerUnit":10,"fatPerUnit":15,"carbsPerUnit":40}`

	disabled := newTestServer(t, testConfig())
	if w := send(disabled, http.MethodPost, "/api/v1/ingredient-nutrition/create", body,
		map[string]string{middleware.APIKeyHeader: "anything"}); w.Code != http.StatusForbidden {
		t.Errorf("create with admin disabled status = %d; want 403", w.Code)
	}

	cfg := testConfig()
	cfg.Admin.APIKeys = "secret-key-1"
	router := newTestServer(t, cfg)

	if w := send(router, http.MethodPost, "/api/v1/ingredient-nutrition/create", body, nil); w.Code != http.StatusUnauthorized {
		t.Errorf("create without key status = %d; want 401", w.Code)
	}
	auth := map[string]string{middleware.APIKeyHeader: "secret-key-1"}
	if w := send(router, http.MethodPost, "/api/v1/ingredient-nutrition/create", body, auth); w.Code != http.StatusCreated {
		t.Fatalf("create status = %d; body %s", w.Code, w.Body.String())
	}
	if w := send(router, http.MethodGet, "/api/v1/ingredient-nutrition/za'atar", "", nil); w.Code != http.StatusOK {
		t.Errorf("get created status = %d", w.Code)
	}
	if w := send(router, http.MethodDelete, "/api/v1/ingredient-nutrition/za'atar", "", auth); w.Code != http.StatusNoContent {
		t.Errorf("delete status = %d; want 204", w.Code)
	}
}

func TestRouterRateLimit(t *testing.T) {
	cfg := testConfig()
	cfg.RateLimit.Requests = 1
	router := newTestServer(t, cfg)

	if w := send(router, http.MethodGet, "/api/v1/ingredient-nutrition/eggs", "", nil); w.Code != http.StatusOK {
		t.Fatalf("first status = %d", w.Code)
	}
	if w := send(router, http.MethodGet, "/api/v1/ingredient-nutrition/eggs", "", nil); w.Code != http.StatusTooManyRequests {
		t.Errorf("second status = %d; want 429", w.Code)
	}
	// 探針不受限流
	if w := send(router, http.MethodGet, "/health", "", nil); w.Code != http.StatusOK {
		t.Errorf("health status = %d; want 200", w.Code)
	}
}
