package nutrition

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"recipe-nutrition/internal/metrics"
)

// Catalog 食材營養目錄的查詢能力（名稱或別名，小寫比對）
type Catalog interface {
	FindByNameOrAlias(ctx context.Context, name string) (*Ingredient, error)
}

// Service 營養計算服務
type Service struct {
	catalog  Catalog
	observer Observer
	workers  int
}

// NewService 創建新的營養計算服務
func NewService(catalog Catalog, observer Observer, workers int) *Service {
	if observer == nil {
		observer = NopObserver{}
	}
	if workers <= 0 {
		workers = 1
	}
	return &Service{
		catalog:  catalog,
		observer: observer,
		workers:  workers,
	}
}

// lookupKey 查詢用的名稱：小寫並去除前後空白
func lookupKey(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// candidateNames 依序嘗試：原名、加 s、去掉結尾 s
func candidateNames(name string) []string {
	key := lookupKey(name)
	if key == "" {
		return nil
	}
	names := []string{key, key + "s"}
	if singular := strings.TrimSuffix(key, "s"); singular != key && singular != "" {
		names = append(names, singular)
	}
	return names
}

// Lookup 將自由輸入的食材名稱對應到目錄記錄，找不到時回傳 ErrNotFound
func (s *Service) Lookup(ctx context.Context, name string) (*Ingredient, error) {
	for _, candidate := range candidateNames(name) {
		ing, err := s.catalog.FindByNameOrAlias(ctx, candidate)
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				continue
			}
			return nil, fmt.Errorf("lookup %q: %w", candidate, err)
		}
		if ing != nil {
			return ing, nil
		}
	}
	return nil, ErrNotFound
}

// calculate 計算單一項目（完整精度）；數量無效或單位無法換算時為零
func (s *Service) calculate(ing *Ingredient, item LineItem) Result {
	qty, ok := item.Quantity.Float()
	if !ok || qty <= 0 {
		return Result{}
	}

	res, factor, ok := Compute(ing, qty, item.Unit)
	if !ok {
		s.observer.UnitUnresolved(UnitDiagnostic{
			Ingredient:     ing.Name,
			Quantity:       qty,
			Unit:           item.Unit,
			NormalizedUnit: factor.NormalizedUnit,
			StandardUnit:   ing.Standard(),
			AvailableUnits: AvailableUnits(ing),
		})
		return Result{}
	}

	s.observer.FactorResolved(ing.Name, qty, factor)
	return res
}

// CalculateItem 計算單一食材；找不到食材時回傳 NotFound 的零值結果
func (s *Service) CalculateItem(ctx context.Context, item LineItem) (*ItemResult, error) {
	metrics.Calculations.WithLabelValues("item").Inc()

	ing, err := s.Lookup(ctx, item.Name)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			return nil, err
		}
		s.observer.IngredientNotFound(item.Name)
		return &ItemResult{
			Ingredient: item.Name,
			Quantity:   item.Quantity,
			Unit:       item.Unit,
			NotFound:   true,
		}, nil
	}

	return &ItemResult{
		Ingredient: ing.Name,
		Quantity:   item.Quantity,
		Unit:       item.Unit,
		Nutrition:  s.calculate(ing, item).Rounded(),
	}, nil
}
