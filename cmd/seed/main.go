// Command seed 將食材營養資料寫入目錄後結束。
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"recipe-nutrition/internal/core/catalog"
	"recipe-nutrition/internal/infrastructure/config"
	"recipe-nutrition/internal/pkg/common"

	"go.uber.org/zap"
)

func main() {
	file := flag.String("file", "", "JSON file with an array of ingredient records")
	url := flag.String("url", "", "URL returning a JSON array of ingredient records")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}
	if err := common.InitLogger(cfg.LogLevel, "catalog-seed"); err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer common.Sync()

	// 命令列參數覆蓋設定
	if *file != "" {
		cfg.Catalog.SeedFile = *file
	}
	if *url != "" {
		cfg.Catalog.ImportURL = *url
	}

	if cfg.Catalog.Backend == config.CatalogBackendMemory {
		common.LogWarn("Memory catalog backend: seeded records are discarded on exit")
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Catalog.ImportTimeout)
	defer cancel()

	store, err := catalog.Open(ctx, cfg)
	if err != nil {
		common.LogFatal("Failed to open catalog", zap.Error(err))
	}
	defer store.Close()

	res, err := catalog.Bootstrap(ctx, store, cfg.Catalog)
	if err != nil {
		common.LogFatal("Failed to seed catalog", zap.Error(err))
	}

	fmt.Printf("inserted=%d updated=%d failed=%d\n", res.Inserted, res.Updated, res.Failed)
}
