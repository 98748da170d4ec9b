package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"recipe-nutrition/internal/core/nutrition"
	"recipe-nutrition/internal/infrastructure/config"
	"recipe-nutrition/internal/pkg/common"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// maxTxRetries WATCH 衝突時的重試次數
const maxTxRetries = 3

// RedisStore 以 Redis 儲存的目錄。
// 鍵：<prefix>ingredient:<name> 存 JSON 記錄，<prefix>alias:<alias> 存名稱，
// <prefix>names 為所有名稱的 sorted set（分數皆為 0，依字典序排序）。
type RedisStore struct {
	client *redis.Client
	prefix string
}

// NewRedisStore 連線 Redis 並建立目錄
func NewRedisStore(ctx context.Context, cfg config.RedisConfig) (*RedisStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	// 測試連接
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	common.LogInfo("Redis catalog connected",
		zap.String("addr", cfg.Addr),
		zap.Int("db", cfg.DB),
		zap.String("key_prefix", cfg.KeyPrefix),
	)
	return NewRedisStoreWithClient(client, cfg.KeyPrefix), nil
}

// NewRedisStoreWithClient 使用既有的 client 建立目錄
func NewRedisStoreWithClient(client *redis.Client, prefix string) *RedisStore {
	return &RedisStore{client: client, prefix: prefix}
}

func (s *RedisStore) recordKey(name string) string {
	return s.prefix + "ingredient:" + name
}

func (s *RedisStore) aliasKey(alias string) string {
	return s.prefix + "alias:" + alias
}

func (s *RedisStore) namesKey() string {
	return s.prefix + "names"
}

// FindByNameOrAlias 以名稱或別名查詢
func (s *RedisStore) FindByNameOrAlias(ctx context.Context, name string) (*nutrition.Ingredient, error) {
	key := Key(name)
	if key == "" {
		return nil, ErrNotFound
	}

	owner, err := s.client.Get(ctx, s.aliasKey(key)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get alias: %w", err)
	}

	rec, err := s.get(ctx, s.client, owner)
	if err != nil {
		return nil, err
	}
	return rec, nil
}

// stringGetter client 與 Tx 共有的讀取方法
type stringGetter interface {
	Get(ctx context.Context, key string) *redis.StringCmd
}

func (s *RedisStore) get(ctx context.Context, c stringGetter, name string) (*nutrition.Ingredient, error) {
	data, err := c.Get(ctx, s.recordKey(name)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get ingredient: %w", err)
	}

	var rec nutrition.Ingredient
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("failed to unmarshal ingredient %q: %w", name, err)
	}
	return &rec, nil
}

// List 依名稱排序回傳所有記錄
func (s *RedisStore) List(ctx context.Context) ([]nutrition.Ingredient, error) {
	names, err := s.client.ZRange(ctx, s.namesKey(), 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list names: %w", err)
	}
	if len(names) == 0 {
		return []nutrition.Ingredient{}, nil
	}

	keys := make([]string, len(names))
	for i, name := range names {
		keys[i] = s.recordKey(name)
	}
	values, err := s.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get ingredients: %w", err)
	}

	out := make([]nutrition.Ingredient, 0, len(values))
	for i, v := range values {
		data, ok := v.(string)
		if !ok {
			// 名稱集合與記錄不同步時略過
			common.LogWarn("Ingredient missing for indexed name", zap.String("ingredient", names[i]))
			continue
		}
		var rec nutrition.Ingredient
		if err := json.Unmarshal([]byte(data), &rec); err != nil {
			return nil, fmt.Errorf("failed to unmarshal ingredient %q: %w", names[i], err)
		}
		out = append(out, rec)
	}

	sortByName(out)
	return out, nil
}

// Upsert 新增或更新記錄，別名索引與記錄在同一個交易中寫入
func (s *RedisStore) Upsert(ctx context.Context, ing nutrition.Ingredient) (bool, error) {
	rec, err := Prepare(ing)
	if err != nil {
		return false, err
	}
	data, err := json.Marshal(rec)
	if err != nil {
		return false, fmt.Errorf("failed to marshal ingredient: %w", err)
	}

	watched := []string{s.recordKey(rec.Name)}
	for _, alias := range rec.Aliases {
		watched = append(watched, s.aliasKey(alias))
	}

	var created bool
	txf := func(tx *redis.Tx) error {
		old, err := s.get(ctx, tx, rec.Name)
		if err != nil && !errors.Is(err, ErrNotFound) {
			return err
		}
		created = old == nil

		owners, err := tx.MGet(ctx, watched[1:]...).Result()
		if err != nil {
			return fmt.Errorf("failed to check aliases: %w", err)
		}
		for i, o := range owners {
			if owner, ok := o.(string); ok && owner != rec.Name {
				logConflict(rec.Name, rec.Aliases[i], owner)
				return fmt.Errorf("%w: %q is an alias of %q", ErrAliasConflict, rec.Aliases[i], owner)
			}
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			if old != nil {
				keep := make(map[string]struct{}, len(rec.Aliases))
				for _, alias := range rec.Aliases {
					keep[alias] = struct{}{}
				}
				for _, alias := range old.Aliases {
					if _, ok := keep[alias]; !ok {
						pipe.Del(ctx, s.aliasKey(alias))
					}
				}
			}
			pipe.Set(ctx, s.recordKey(rec.Name), data, 0)
			for _, alias := range rec.Aliases {
				pipe.Set(ctx, s.aliasKey(alias), rec.Name, 0)
			}
			pipe.ZAdd(ctx, s.namesKey(), &redis.Z{Score: 0, Member: rec.Name})
			return nil
		})
		return err
	}

	if err := s.watch(ctx, txf, watched...); err != nil {
		return false, err
	}
	return created, nil
}

// Delete 刪除記錄與其別名
func (s *RedisStore) Delete(ctx context.Context, name string) error {
	key := Key(name)

	txf := func(tx *redis.Tx) error {
		rec, err := s.get(ctx, tx, key)
		if err != nil {
			return err
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			for _, alias := range rec.Aliases {
				pipe.Del(ctx, s.aliasKey(alias))
			}
			pipe.Del(ctx, s.recordKey(key))
			pipe.ZRem(ctx, s.namesKey(), key)
			return nil
		})
		return err
	}

	return s.watch(ctx, txf, s.recordKey(key))
}

// watch 執行樂觀鎖交易，被其他寫入打斷時重試
func (s *RedisStore) watch(ctx context.Context, txf func(*redis.Tx) error, keys ...string) error {
	var err error
	for attempt := 0; attempt < maxTxRetries; attempt++ {
		err = s.client.Watch(ctx, txf, keys...)
		if !errors.Is(err, redis.TxFailedErr) {
			return err
		}
		common.LogDebug("Catalog transaction retry",
			zap.Int("attempt", attempt+1),
			zap.Strings("keys", keys),
		)
	}
	return fmt.Errorf("catalog transaction failed after %d attempts: %w", maxTxRetries, err)
}

// Ping 檢查 Redis 連線
func (s *RedisStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

// Close 關閉 Redis 連線
func (s *RedisStore) Close() error {
	return s.client.Close()
}
