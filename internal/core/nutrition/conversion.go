package nutrition

import (
	"sort"
	"strings"
)

// FactorRule 換算係數由哪一條規則取得
type FactorRule string

// 規則依優先順序排列，先命中者為準
const (
	RuleNormalized      FactorRule = "normalized"       // 標準化單位命中目錄換算表
	RuleRaw             FactorRule = "raw"              // 原始輸入命中目錄換算表
	RuleSingular        FactorRule = "singular"         // 去掉結尾 s 後命中目錄換算表
	RuleStandardDefault FactorRule = "standard_default" // 標準單位內建的重量/容量換算
	RuleIdentity        FactorRule = "identity"         // 輸入單位與標準單位相同
)

// standardDefaults 標準單位 -> 單位 -> 係數；目錄沒有對應項目時才使用
var standardDefaults = map[string]map[string]float64{
	"100g": {
		"g":  0.01,
		"kg": 10,
		"oz": 0.2835,
		"lb": 4.53,
	},
	"100ml": {
		"ml": 0.01,
		"l":  10,
	},
}

// Factor 換算結果：一個輸入單位等於多少標準單位
type Factor struct {
	Value          float64
	Rule           FactorRule
	NormalizedUnit string
}

// ResolveFactor 依固定優先順序找出換算係數。
// 目錄定義的換算永遠優先於內建的重量/容量預設值。
func ResolveFactor(ing *Ingredient, rawUnit string) (Factor, bool) {
	normalized := NormalizeUnit(rawUnit)
	raw := strings.ToLower(strings.TrimSpace(rawUnit))

	if f, ok := lookupConversion(ing.Conversions, normalized); ok {
		return Factor{Value: f, Rule: RuleNormalized, NormalizedUnit: normalized}, true
	}
	if f, ok := lookupConversion(ing.Conversions, raw); ok {
		return Factor{Value: f, Rule: RuleRaw, NormalizedUnit: normalized}, true
	}
	if singular := strings.TrimSuffix(normalized, "s"); singular != normalized {
		if f, ok := lookupConversion(ing.Conversions, singular); ok {
			return Factor{Value: f, Rule: RuleSingular, NormalizedUnit: normalized}, true
		}
	}

	std := strings.ToLower(strings.TrimSpace(ing.Standard()))
	if f, ok := standardDefaults[std][normalized]; ok {
		return Factor{Value: f, Rule: RuleStandardDefault, NormalizedUnit: normalized}, true
	}
	if normalized != "" && normalized == std {
		return Factor{Value: 1, Rule: RuleIdentity, NormalizedUnit: normalized}, true
	}

	return Factor{NormalizedUnit: normalized}, false
}

func lookupConversion(conversions map[string]float64, unit string) (float64, bool) {
	if unit == "" {
		return 0, false
	}
	f, ok := conversions[unit]
	if !ok || f <= 0 {
		return 0, false
	}
	return f, true
}

// AvailableUnits 目錄換算表中的單位，排序後用於診斷訊息
func AvailableUnits(ing *Ingredient) []string {
	units := make([]string, 0, len(ing.Conversions))
	for unit := range ing.Conversions {
		units = append(units, unit)
	}
	sort.Strings(units)
	return units
}
