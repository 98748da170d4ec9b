package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"recipe-nutrition/internal/api"
	"recipe-nutrition/internal/core/catalog"
	"recipe-nutrition/internal/core/nutrition"
	"recipe-nutrition/internal/infrastructure/config"
	"recipe-nutrition/internal/pkg/common"

	"go.uber.org/zap"
)

func main() {
	// 載入設定（含 .env）
	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// 初始化 logger（需在載入 config 後）
	if err := common.InitLogger(cfg.LogLevel, cfg.App.Name); err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer common.Sync()

	common.LogInfo("載入設定", configFields(cfg)...)

	// 初始化目錄
	startCtx, cancelStart := context.WithTimeout(context.Background(), cfg.Catalog.ImportTimeout+10*time.Second)
	store, err := catalog.Open(startCtx, cfg)
	if err != nil {
		cancelStart()
		common.LogFatal("Failed to open catalog", zap.Error(err))
	}
	defer store.Close()

	if cfg.Catalog.SeedOnStart {
		res, err := catalog.Bootstrap(startCtx, store, cfg.Catalog)
		if err != nil {
			cancelStart()
			common.LogFatal("Failed to seed catalog", zap.Error(err))
		}
		common.LogInfo("目錄已載入",
			zap.Int("inserted", res.Inserted),
			zap.Int("updated", res.Updated),
			zap.Int("failed", res.Failed),
		)
	}
	cancelStart()

	svc := nutrition.NewService(store, nutrition.LogObserver{}, cfg.Lookup.Workers)

	// 設置路由
	router := api.SetupRouter(cfg, store, svc)

	// 設置 HTTP 服務器
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	// 啟動服務器
	go func() {
		common.LogInfo("啟動應用",
			zap.String("version", cfg.App.Version),
			zap.String("env", cfg.App.Env),
			zap.Bool("debug", cfg.App.Debug),
			zap.Int("port", cfg.Server.Port),
		)

		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			common.LogFatal("Failed to start server", zap.Error(err))
		}
	}()

	// 等待中斷信號
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	common.LogInfo("Shutting down server...")

	// 設置關閉超時
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		common.LogError("Server forced to shutdown", zap.Error(err))
		return
	}

	common.LogInfo("Server exited")
}

// configFields 啟動時記錄的設定摘要，不含任何密碼
func configFields(cfg *config.Config) []zap.Field {
	return []zap.Field{
		zap.String("catalog_backend", cfg.Catalog.Backend),
		zap.String("redis_addr", cfg.Redis.Addr),
		zap.Bool("redis_auth", cfg.Redis.Password != ""),
		zap.Int("lookup_workers", cfg.Lookup.Workers),
		zap.Int("admin_keys", len(cfg.Admin.Keys())),
	}
}
