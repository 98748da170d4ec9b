package metrics

import (
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestRecordHTTPRequest(t *testing.T) {
	matched := HTTPRequests.WithLabelValues("POST", "/api/v1/ingredient-nutrition/calculate", "200")
	unmatched := HTTPRequests.WithLabelValues("GET", "unmatched", "404")
	beforeMatched := testutil.ToFloat64(matched)
	beforeUnmatched := testutil.ToFloat64(unmatched)

	RecordHTTPRequest("POST", "/api/v1/ingredient-nutrition/calculate", 200, 12*time.Millisecond)
	RecordHTTPRequest("GET", "", 404, time.Millisecond)

	if got := testutil.ToFloat64(matched) - beforeMatched; got != 1 {
		t.Errorf("matched route delta = %v; want 1", got)
	}
	if got := testutil.ToFloat64(unmatched) - beforeUnmatched; got != 1 {
		t.Errorf("unmatched route delta = %v; want 1", got)
	}
}

func TestRecordCatalogOperation(t *testing.T) {
	ok := CatalogOperations.WithLabelValues("upsert", "ok")
	failed := CatalogOperations.WithLabelValues("upsert", "error")
	beforeOK, beforeFailed := testutil.ToFloat64(ok), testutil.ToFloat64(failed)

	RecordCatalogOperation("upsert", nil)
	RecordCatalogOperation("upsert", errors.New("alias conflict"))
	RecordCatalogOperation("upsert", nil)

	if got := testutil.ToFloat64(ok) - beforeOK; got != 2 {
		t.Errorf("ok delta = %v; want 2", got)
	}
	if got := testutil.ToFloat64(failed) - beforeFailed; got != 1 {
		t.Errorf("error delta = %v; want 1", got)
	}
}
