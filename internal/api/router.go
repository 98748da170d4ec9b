package api

import (
	"time"

	"recipe-nutrition/internal/api/handlers/health"
	nutritionHandler "recipe-nutrition/internal/api/handlers/nutrition"
	"recipe-nutrition/internal/api/middleware"
	"recipe-nutrition/internal/core/catalog"
	"recipe-nutrition/internal/core/nutrition"
	"recipe-nutrition/internal/infrastructure/config"
	"recipe-nutrition/internal/pkg/common"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// SetupRouter 設置路由
func SetupRouter(cfg *config.Config, store catalog.Store, svc *nutrition.Service) *gin.Engine {
	common.LogInfo("Starting router setup",
		zap.Bool("debug_mode", cfg.App.Debug),
		zap.String("version", cfg.App.Version),
		zap.String("environment", cfg.App.Env),
	)

	// 設置 gin 模式
	if !cfg.App.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	// 創建路由引擎
	router := gin.New()

	// 註冊基礎中間件
	router.Use(middleware.Recovery())
	router.Use(requestid.New(requestid.WithGenerator(common.GenerateUUID)))
	router.Use(middleware.Logger())

	// CORS 設置
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", common.RequestIDHeader, middleware.APIKeyHeader},
		ExposeHeaders:    []string{"Content-Length", common.RequestIDHeader},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	// 請求體大小限制
	router.Use(middleware.BodySizeLimit(cfg.MaxBodyBytes))
	router.Use(middleware.Timeout(cfg.Server.RequestTimeout))

	// 健康檢查與指標
	healthHandler := health.NewHandler(cfg, store)
	router.GET("/health", healthHandler.HealthCheck)
	router.GET("/ready", healthHandler.ReadinessCheck)
	router.GET("/live", healthHandler.LivenessCheck)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// API 路由組
	api := router.Group("/api/v1")
	if cfg.RateLimit.Enabled {
		api.Use(middleware.RateLimit(cfg.RateLimit.Requests, cfg.RateLimit.Window))
	}

	admin := []gin.HandlerFunc{
		middleware.AdminOnly(cfg.Admin.Keys()),
		middleware.Deduplication(cfg.DedupWindow),
	}
	nutritionHandler.NewHandler(svc, store, cfg.MaxRecipeItems).
		Register(api.Group("/ingredient-nutrition"), admin...)

	common.LogInfo("Router setup completed successfully",
		zap.String("catalog_backend", cfg.Catalog.Backend),
		zap.Bool("rate_limit", cfg.RateLimit.Enabled),
		zap.Int("admin_keys", len(cfg.Admin.Keys())),
		zap.Duration("timeout", cfg.Server.RequestTimeout),
		zap.Int64("max_body_size", cfg.MaxBodyBytes),
	)

	return router
}
