package catalog

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"recipe-nutrition/internal/core/nutrition"
	"recipe-nutrition/internal/pkg/common"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
)

// Importer 從遠端 URL 取得目錄記錄（JSON 陣列）
type Importer struct {
	client *resty.Client
	url    string
}

// NewImporter 創建新的匯入器
func NewImporter(url string, timeout time.Duration) *Importer {
	client := resty.New().
		SetTimeout(timeout).
		SetHeader("Accept", "application/json").
		SetRetryCount(2).
		SetRetryWaitTime(500 * time.Millisecond)

	return &Importer{
		client: client,
		url:    url,
	}
}

// Fetch 下載並解析記錄
func (i *Importer) Fetch(ctx context.Context) ([]nutrition.Ingredient, error) {
	resp, err := i.client.R().
		SetContext(ctx).
		Get(i.url)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch catalog: %w", err)
	}

	if resp.StatusCode() != http.StatusOK {
		return nil, fmt.Errorf("catalog source returned %d: %s", resp.StatusCode(), resp.Status())
	}

	records, err := decodeRecords(resp.Body())
	if err != nil {
		return nil, err
	}

	common.LogInfo("Catalog fetched",
		zap.String("url", i.url),
		zap.Int("records", len(records)),
		zap.Duration("duration", resp.Time()),
	)
	return records, nil
}

// Import 下載後以 upsert 模式寫入目錄
func (i *Importer) Import(ctx context.Context, store Store) (SeedResult, error) {
	records, err := i.Fetch(ctx)
	if err != nil {
		return SeedResult{}, err
	}
	return Seed(ctx, store, records)
}
