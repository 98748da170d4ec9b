package main

import (
	"strings"
	"testing"

	"recipe-nutrition/internal/infrastructure/config"

	"go.uber.org/zap/zapcore"
)

func TestConfigFieldsOmitSecrets(t *testing.T) {
	cfg := &config.Config{
		Catalog: config.CatalogConfig{Backend: config.CatalogBackendRedis},
		Redis:   config.RedisConfig{Addr: "redis:6379", Password: "hunter2-very-secret"},
		Admin:   config.AdminConfig{APIKeys: "admin-key-123456"},
	}

	enc := zapcore.NewMapObjectEncoder()
	for _, f := range configFields(cfg) {
		f.AddTo(enc)
	}

	for key, value := range enc.Fields {
		if s, ok := value.(string); ok && (strings.Contains(s, "hunter2") || strings.Contains(s, "admin-key")) {
			t.Errorf("field %s leaks a secret: %q", key, s)
		}
	}
	if enc.Fields["redis_auth"] != true {
		t.Errorf("redis_auth = %v; want true", enc.Fields["redis_auth"])
	}
	if enc.Fields["admin_keys"] != int64(1) {
		t.Errorf("admin_keys = %v; want 1", enc.Fields["admin_keys"])
	}
}
