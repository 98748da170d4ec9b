package catalog

import (
	"context"
	"fmt"
	"os"

	"recipe-nutrition/internal/core/nutrition"
	"recipe-nutrition/internal/infrastructure/config"
	"recipe-nutrition/internal/metrics"
	"recipe-nutrition/internal/pkg/common"

	"go.uber.org/zap"
)

// SeedResult 批次寫入統計
type SeedResult struct {
	Inserted int `json:"inserted"`
	Updated  int `json:"updated"`
	Failed   int `json:"failed"`
}

// Seed 以 upsert 模式寫入記錄。無效記錄會被略過並計入 Failed；
// 儲存本身的錯誤會中止整個批次。
func Seed(ctx context.Context, store Store, records []nutrition.Ingredient) (SeedResult, error) {
	var res SeedResult
	for _, rec := range records {
		if err := ctx.Err(); err != nil {
			return res, err
		}

		created, err := store.Upsert(ctx, rec)
		metrics.RecordCatalogOperation("seed", err)
		if err != nil {
			if IsInvalid(err) {
				res.Failed++
				common.LogWarn("Skipping invalid seed record",
					zap.String("ingredient", rec.Name),
					zap.Error(err),
				)
				continue
			}
			return res, fmt.Errorf("seed %q: %w", rec.Name, err)
		}
		if created {
			res.Inserted++
		} else {
			res.Updated++
		}
	}

	common.LogInfo("Catalog seeded",
		zap.Int("inserted", res.Inserted),
		zap.Int("updated", res.Updated),
		zap.Int("failed", res.Failed),
	)
	return res, nil
}

// Bootstrap 依設定選擇資料來源寫入目錄：seed_file 優先，其次 import_url，否則使用內建資料
func Bootstrap(ctx context.Context, store Store, cfg config.CatalogConfig) (SeedResult, error) {
	switch {
	case cfg.SeedFile != "":
		common.LogInfo("Seeding catalog from file", zap.String("file", cfg.SeedFile))
		records, err := LoadFile(cfg.SeedFile)
		if err != nil {
			return SeedResult{}, err
		}
		return Seed(ctx, store, records)
	case cfg.ImportURL != "":
		common.LogInfo("Importing catalog", zap.String("url", cfg.ImportURL))
		return NewImporter(cfg.ImportURL, cfg.ImportTimeout).Import(ctx, store)
	default:
		return Seed(ctx, store, SeedData())
	}
}

// LoadFile 從 JSON 檔案讀取記錄陣列
func LoadFile(path string) ([]nutrition.Ingredient, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read seed file: %w", err)
	}
	return decodeRecords(data)
}

func decodeRecords(data []byte) ([]nutrition.Ingredient, error) {
	if !common.IsJSONArray(data) {
		return nil, fmt.Errorf("catalog data must be a JSON array")
	}
	var records []nutrition.Ingredient
	if err := common.ParseJSONBytes(data, &records); err != nil {
		return nil, fmt.Errorf("failed to parse catalog data: %w", err)
	}
	return records, nil
}
