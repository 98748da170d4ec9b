package nutrition

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"sync"

	"recipe-nutrition/internal/metrics"
	"recipe-nutrition/internal/pkg/common"

	"golang.org/x/sync/errgroup"
)

// ParseLineItems 解析食材清單。只有整體不是陣列時才回傳 ErrNotAList；
// 個別項目格式錯誤會被標記為缺少欄位。
func ParseLineItems(raw json.RawMessage) ([]LineItem, error) {
	if !common.IsJSONArray(raw) {
		return nil, ErrNotAList
	}

	var elems []json.RawMessage
	if err := json.Unmarshal(raw, &elems); err != nil {
		return nil, errors.Join(ErrNotAList, err)
	}

	items := make([]LineItem, len(elems))
	for i, elem := range elems {
		trimmed := bytes.TrimSpace(elem)
		if len(trimmed) == 0 || trimmed[0] != '{' {
			items[i] = LineItem{malformed: true}
			continue
		}
		// 型別錯誤時保留已解析的欄位供明細回顯
		if err := json.Unmarshal(trimmed, &items[i]); err != nil {
			items[i].malformed = true
		}
	}
	return items, nil
}

// recipeItemComplete 食譜項目的欄位檢查比單項計算嚴格：數字 0 也視為未提供數量
func recipeItemComplete(item LineItem) bool {
	return item.Complete() && !item.Quantity.zeroNumber()
}

// CalculateRecipe 計算整份食譜。單一項目失敗不影響其他項目，
// 總計以完整精度累加後才四捨五入。
func (s *Service) CalculateRecipe(ctx context.Context, items []LineItem) (*RecipeAggregate, error) {
	metrics.Calculations.WithLabelValues("recipe").Inc()

	resolved, err := s.prefetch(ctx, items)
	if err != nil {
		return nil, err
	}

	var total Result
	details := make([]Detail, 0, len(items))

	for _, item := range items {
		if !recipeItemComplete(item) {
			details = append(details, Detail{
				Name:     item.Name,
				Quantity: item.Quantity,
				Unit:     item.Unit,
				Error:    DetailErrMissingFields,
			})
			continue
		}

		ing := resolved[lookupKey(item.Name)]
		if ing == nil {
			s.observer.IngredientNotFound(item.Name)
			details = append(details, Detail{
				Name:     item.Name,
				Quantity: item.Quantity,
				Unit:     item.Unit,
				NotFound: true,
			})
			continue
		}

		res := s.calculate(ing, item)
		total = total.Add(res)
		details = append(details, Detail{
			Name:      ing.Name,
			InputName: item.Name,
			Quantity:  item.Quantity,
			Unit:      item.Unit,
			Nutrition: res.Rounded(),
		})
	}

	return &RecipeAggregate{
		TotalNutrition:    total.Rounded(),
		IngredientDetails: details,
	}, nil
}

// prefetch 對每個不重複的食材名稱查詢一次目錄，查詢之間互不相依可並行
func (s *Service) prefetch(ctx context.Context, items []LineItem) (map[string]*Ingredient, error) {
	seen := make(map[string]struct{}, len(items))
	var keys []string
	for _, item := range items {
		if !recipeItemComplete(item) {
			continue
		}
		key := lookupKey(item.Name)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		keys = append(keys, key)
	}

	var mu sync.Mutex
	resolved := make(map[string]*Ingredient, len(keys))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.workers)
	for _, key := range keys {
		g.Go(func() error {
			ing, err := s.Lookup(gctx, key)
			if err != nil {
				if errors.Is(err, ErrNotFound) {
					return nil
				}
				return err
			}
			mu.Lock()
			resolved[key] = ing
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return resolved, nil
}
