package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// 目錄後端
const (
	CatalogBackendMemory = "memory"
	CatalogBackendRedis  = "redis"
)

// Config 應用配置
type Config struct {
	App            AppConfig       `mapstructure:"app"`
	Server         ServerConfig    `mapstructure:"server"`
	Catalog        CatalogConfig   `mapstructure:"catalog"`
	Redis          RedisConfig     `mapstructure:"redis"`
	Lookup         LookupConfig    `mapstructure:"lookup"`
	RateLimit      RateLimitConfig `mapstructure:"rate_limit"`
	Admin          AdminConfig     `mapstructure:"admin"`
	DedupWindow    time.Duration   `mapstructure:"dedup_window"`
	LogLevel       string          `mapstructure:"log_level"`
	MaxRecipeItems int             `mapstructure:"max_recipe_items"`
	MaxBodyBytes   int64           `mapstructure:"max_body_bytes"`
}

// AppConfig 應用程式設定
type AppConfig struct {
	Env     string `mapstructure:"env"`
	Debug   bool   `mapstructure:"debug"`
	Version string `mapstructure:"version"`
	Name    string `mapstructure:"name"`
}

// ServerConfig 服務器配置
type ServerConfig struct {
	Port           int           `mapstructure:"port"`
	ReadTimeout    time.Duration `mapstructure:"read_timeout"`
	WriteTimeout   time.Duration `mapstructure:"write_timeout"`
	IdleTimeout    time.Duration `mapstructure:"idle_timeout"`
	RequestTimeout time.Duration `mapstructure:"request_timeout"`
}

// CatalogConfig 食材營養目錄設定
type CatalogConfig struct {
	Backend       string        `mapstructure:"backend"`
	SeedOnStart   bool          `mapstructure:"seed_on_start"`
	SeedFile      string        `mapstructure:"seed_file"`
	ImportURL     string        `mapstructure:"import_url"`
	ImportTimeout time.Duration `mapstructure:"import_timeout"`
}

// RedisConfig Redis 連線設定
type RedisConfig struct {
	Addr      string `mapstructure:"addr"`
	Password  string `mapstructure:"password"`
	DB        int    `mapstructure:"db"`
	KeyPrefix string `mapstructure:"key_prefix"`
}

// LookupConfig 食材查詢設定
type LookupConfig struct {
	Workers int `mapstructure:"workers"`
}

// RateLimitConfig 速率限制配置
type RateLimitConfig struct {
	Enabled  bool          `mapstructure:"enabled"`
	Requests int           `mapstructure:"requests"`
	Window   time.Duration `mapstructure:"window"`
}

// AdminConfig 管理端設定
type AdminConfig struct {
	APIKeys string `mapstructure:"api_keys"`
}

// Keys 解析逗號分隔的 API key，忽略空白項
func (a AdminConfig) Keys() []string {
	var keys []string
	for _, k := range strings.Split(a.APIKeys, ",") {
		k = strings.TrimSpace(k)
		if k != "" {
			keys = append(keys, k)
		}
	}
	return keys
}

// LoadConfig 載入設定
func LoadConfig() (*Config, error) {
	// .env 不存在時只使用環境變數
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix("APP")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	bindings := map[string]string{
		"server.port":           "PORT",
		"catalog.backend":       "CATALOG_BACKEND",
		"catalog.seed_on_start": "CATALOG_SEED_ON_START",
		"catalog.seed_file":     "CATALOG_SEED_FILE",
		"catalog.import_url":    "CATALOG_IMPORT_URL",
		"redis.addr":            "REDIS_ADDR",
		"redis.password":        "REDIS_PASSWORD",
		"redis.db":              "REDIS_DB",
		"lookup.workers":        "LOOKUP_WORKERS",
		"rate_limit.enabled":    "RATE_LIMIT_ENABLED",
		"rate_limit.requests":   "RATE_LIMIT_REQUESTS",
		"rate_limit.window":     "RATE_LIMIT_WINDOW",
		"admin.api_keys":        "ADMIN_API_KEYS",
		"dedup_window":          "DEDUP_WINDOW",
		"log_level":             "LOG_LEVEL",
		"max_recipe_items":      "MAX_RECIPE_ITEMS",
	}
	for key, env := range bindings {
		if err := v.BindEnv(key, "APP_"+strings.ToUpper(strings.ReplaceAll(key, ".", "_")), env); err != nil {
			return nil, fmt.Errorf("failed to bind env %s: %w", env, err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	config.Catalog.Backend = strings.ToLower(strings.TrimSpace(config.Catalog.Backend))

	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &config, nil
}

// setDefaults 設定預設值
func setDefaults(v *viper.Viper) {
	// 應用程式設定
	v.SetDefault("app.env", "development")
	v.SetDefault("app.debug", true)
	v.SetDefault("app.version", "1.0.0")
	v.SetDefault("app.name", "recipe-nutrition")

	// 伺服器設定
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.read_timeout", "30s")
	v.SetDefault("server.write_timeout", "30s")
	v.SetDefault("server.idle_timeout", "120s")
	v.SetDefault("server.request_timeout", "15s")

	// 目錄設定
	v.SetDefault("catalog.backend", CatalogBackendMemory)
	v.SetDefault("catalog.seed_on_start", true)
	v.SetDefault("catalog.seed_file", "")
	v.SetDefault("catalog.import_url", "")
	v.SetDefault("catalog.import_timeout", "30s")

	// Redis 設定
	v.SetDefault("redis.addr", "localhost:6379")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.key_prefix", "nutrition:")

	// 查詢設定
	v.SetDefault("lookup.workers", 4)

	// 限流設定
	v.SetDefault("rate_limit.enabled", true)
	v.SetDefault("rate_limit.requests", 100)
	v.SetDefault("rate_limit.window", "1m")

	v.SetDefault("admin.api_keys", "")
	v.SetDefault("dedup_window", "1s")
	v.SetDefault("log_level", "info")
	v.SetDefault("max_recipe_items", 200)
	v.SetDefault("max_body_bytes", 1<<20)
}

// validateConfig 驗證設定
func validateConfig(config *Config) error {
	if config.Server.Port <= 0 {
		return fmt.Errorf("server port is required")
	}

	switch config.Catalog.Backend {
	case CatalogBackendMemory:
	case CatalogBackendRedis:
		if config.Redis.Addr == "" {
			return fmt.Errorf("redis address is required for redis catalog backend")
		}
	default:
		return fmt.Errorf("unknown catalog backend %q", config.Catalog.Backend)
	}

	if config.Lookup.Workers <= 0 {
		return fmt.Errorf("invalid lookup workers")
	}
	if config.MaxRecipeItems <= 0 {
		return fmt.Errorf("invalid max recipe items")
	}

	if config.RateLimit.Enabled {
		if config.RateLimit.Requests <= 0 {
			return fmt.Errorf("invalid rate limit requests")
		}
		if config.RateLimit.Window <= 0 {
			return fmt.Errorf("invalid rate limit window")
		}
	}

	return nil
}
