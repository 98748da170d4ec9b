package catalog

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"
	"sync"

	"recipe-nutrition/internal/core/nutrition"
	"recipe-nutrition/internal/infrastructure/config"
	"recipe-nutrition/internal/pkg/common"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

var (
	// ErrNotFound 目錄中沒有此食材
	ErrNotFound = nutrition.ErrNotFound
	// ErrAliasConflict 別名已屬於另一筆記錄
	ErrAliasConflict = errors.New("alias already belongs to another ingredient")
	// ErrInvalidRecord 記錄未通過驗證
	ErrInvalidRecord = errors.New("invalid ingredient record")
)

// Store 食材營養目錄儲存
type Store interface {
	nutrition.Catalog

	// List 依名稱排序回傳所有記錄
	List(ctx context.Context) ([]nutrition.Ingredient, error)
	// Upsert 以名稱為鍵新增或更新，created 表示是否為新增
	Upsert(ctx context.Context, ing nutrition.Ingredient) (created bool, err error)
	Delete(ctx context.Context, name string) error
	Ping(ctx context.Context) error
	Close() error
}

// Open 依設定建立目錄儲存
func Open(ctx context.Context, cfg *config.Config) (Store, error) {
	switch cfg.Catalog.Backend {
	case config.CatalogBackendRedis:
		store, err := NewRedisStore(ctx, cfg.Redis)
		if err != nil {
			return nil, err
		}
		return store, nil
	case config.CatalogBackendMemory, "":
		return NewMemoryStore(), nil
	default:
		return nil, fmt.Errorf("unknown catalog backend %q", cfg.Catalog.Backend)
	}
}

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

func recordValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New()
	})
	return validate
}

// Key 目錄比對用的名稱形式
func Key(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// Prepare 寫入前正規化並驗證記錄
func Prepare(ing nutrition.Ingredient) (nutrition.Ingredient, error) {
	out := nutrition.Ingredient{
		Name:            Key(ing.Name),
		CaloriesPerUnit: ing.CaloriesPerUnit,
		ProteinPerUnit:  ing.ProteinPerUnit,
		FatPerUnit:      ing.FatPerUnit,
		CarbsPerUnit:    ing.CarbsPerUnit,
		StandardUnit:    Key(ing.StandardUnit),
	}
	if out.StandardUnit == "" {
		out.StandardUnit = nutrition.DefaultStandardUnit
	}

	// 名稱本身永遠是第一個別名
	seen := map[string]struct{}{}
	for _, alias := range append([]string{out.Name}, ing.Aliases...) {
		alias = Key(alias)
		if alias == "" {
			continue
		}
		if _, dup := seen[alias]; dup {
			continue
		}
		seen[alias] = struct{}{}
		out.Aliases = append(out.Aliases, alias)
	}

	if len(ing.Conversions) > 0 {
		out.Conversions = make(map[string]float64, len(ing.Conversions))
		for unit, factor := range ing.Conversions {
			key := Key(unit)
			if _, dup := out.Conversions[key]; dup {
				return nutrition.Ingredient{}, fmt.Errorf("%w: %s: duplicate conversion unit %q", ErrInvalidRecord, out.Name, key)
			}
			out.Conversions[key] = factor
		}
	}

	if err := checkRecord(&out); err != nil {
		return nutrition.Ingredient{}, err
	}
	return out, nil
}

func checkRecord(ing *nutrition.Ingredient) error {
	if err := recordValidator().Struct(ing); err != nil {
		return fmt.Errorf("%w: %q: %v", ErrInvalidRecord, ing.Name, err)
	}

	// validator 的 gte/gt 不排除無限大
	values := map[string]float64{
		"caloriesPerUnit": ing.CaloriesPerUnit,
		"proteinPerUnit":  ing.ProteinPerUnit,
		"fatPerUnit":      ing.FatPerUnit,
		"carbsPerUnit":    ing.CarbsPerUnit,
	}
	for unit, factor := range ing.Conversions {
		values["conversions."+unit] = factor
	}
	for field, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: %q: %s is not a finite number", ErrInvalidRecord, ing.Name, field)
		}
	}
	return nil
}

// IsInvalid 是否為呼叫端資料造成的錯誤
func IsInvalid(err error) bool {
	return errors.Is(err, ErrInvalidRecord) || errors.Is(err, ErrAliasConflict)
}

// clone 回傳深拷貝，避免呼叫端修改儲存中的資料
func clone(ing nutrition.Ingredient) nutrition.Ingredient {
	out := ing
	if ing.Aliases != nil {
		out.Aliases = append([]string(nil), ing.Aliases...)
	}
	if ing.Conversions != nil {
		out.Conversions = make(map[string]float64, len(ing.Conversions))
		for k, v := range ing.Conversions {
			out.Conversions[k] = v
		}
	}
	return out
}

func sortByName(records []nutrition.Ingredient) {
	sort.Slice(records, func(i, j int) bool {
		return records[i].Name < records[j].Name
	})
}

func logConflict(name, alias, owner string) {
	common.LogWarn("Alias conflict",
		zap.String("ingredient", name),
		zap.String("alias", alias),
		zap.String("owner", owner),
	)
}
