// Package metrics 提供 Prometheus 指標，透過 /metrics 輸出。
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// IngredientNotFound 目錄中找不到的食材次數
	IngredientNotFound = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "nutrition_ingredient_not_found_total",
			Help: "Ingredients that could not be matched to a catalog record",
		},
	)

	// UnitUnresolved 找不到換算係數的次數
	UnitUnresolved = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "nutrition_unit_unresolved_total",
			Help: "Quantities whose unit could not be converted to the standard unit",
		},
		[]string{"unit"},
	)

	// FactorRule 換算係數來源規則
	FactorRule = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "nutrition_factor_rule_total",
			Help: "Conversion factors resolved, by resolution rule",
		},
		[]string{"rule"},
	)

	// Calculations 計算請求次數
	Calculations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "nutrition_calculations_total",
			Help: "Nutrition calculations performed",
		},
		[]string{"kind"},
	)

	// CatalogOperations 目錄寫入操作
	CatalogOperations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "nutrition_catalog_operations_total",
			Help: "Catalog write operations, by operation and result",
		},
		[]string{"operation", "result"},
	)

	// HTTPRequests HTTP 請求次數
	HTTPRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "HTTP requests processed",
		},
		[]string{"method", "path", "status"},
	)

	// HTTPRequestDuration HTTP 請求耗時
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request latency",
			Buckets: []float64{.001, .005, .01, .05, .1, .5, 1, 5},
		},
		[]string{"method", "path"},
	)
)

// RecordHTTPRequest 記錄一次 HTTP 請求
func RecordHTTPRequest(method, path string, status int, duration time.Duration) {
	if path == "" {
		path = "unmatched"
	}
	HTTPRequests.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
	HTTPRequestDuration.WithLabelValues(method, path).Observe(duration.Seconds())
}

// RecordCatalogOperation 記錄目錄寫入結果
func RecordCatalogOperation(operation string, err error) {
	result := "ok"
	if err != nil {
		result = "error"
	}
	CatalogOperations.WithLabelValues(operation, result).Inc()
}
