package nutrition

import (
	"recipe-nutrition/internal/metrics"
	"recipe-nutrition/internal/pkg/common"

	"go.uber.org/zap"
)

// UnitDiagnostic 找不到換算係數時的診斷資料
type UnitDiagnostic struct {
	Ingredient     string
	Quantity       float64
	Unit           string
	NormalizedUnit string
	StandardUnit   string
	AvailableUnits []string
}

// Observer 接收引擎的軟性失敗事件，不影響計算結果
type Observer interface {
	IngredientNotFound(name string)
	UnitUnresolved(d UnitDiagnostic)
	FactorResolved(ingredient string, quantity float64, f Factor)
}

// NopObserver 忽略所有事件
type NopObserver struct{}

func (NopObserver) IngredientNotFound(string) {}

func (NopObserver) UnitUnresolved(UnitDiagnostic) {}

func (NopObserver) FactorResolved(string, float64, Factor) {}

// otherUnitLabel 未知單位共用的指標標籤
const otherUnitLabel = "other"

// unitLabel 指標標籤只使用已知單位，避免任意輸入產生無限多的時間序列
func unitLabel(d UnitDiagnostic) string {
	if IsCanonicalUnit(d.NormalizedUnit) {
		return d.NormalizedUnit
	}
	for _, u := range d.AvailableUnits {
		if u == d.NormalizedUnit {
			return u
		}
	}
	return otherUnitLabel
}

// LogObserver 以 zap 記錄事件並更新 Prometheus 計數
type LogObserver struct{}

// IngredientNotFound 實作 Observer
func (LogObserver) IngredientNotFound(name string) {
	metrics.IngredientNotFound.Inc()
	common.LogWarn("Ingredient not found in catalog",
		zap.String("ingredient", name),
	)
}

// UnitUnresolved 實作 Observer
func (LogObserver) UnitUnresolved(d UnitDiagnostic) {
	metrics.UnitUnresolved.WithLabelValues(unitLabel(d)).Inc()
	common.LogWarn("No conversion factor for unit",
		zap.String("ingredient", d.Ingredient),
		zap.Float64("quantity", d.Quantity),
		zap.String("unit", d.Unit),
		zap.String("normalized_unit", d.NormalizedUnit),
		zap.String("standard_unit", d.StandardUnit),
		zap.Strings("available_units", d.AvailableUnits),
	)
}

// FactorResolved 實作 Observer
func (LogObserver) FactorResolved(ingredient string, quantity float64, f Factor) {
	metrics.FactorRule.WithLabelValues(string(f.Rule)).Inc()
	common.LogDebug("Conversion factor resolved",
		zap.String("ingredient", ingredient),
		zap.Float64("quantity", quantity),
		zap.String("normalized_unit", f.NormalizedUnit),
		zap.Float64("factor", f.Value),
		zap.String("rule", string(f.Rule)),
	)
}
