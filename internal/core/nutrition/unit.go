package nutrition

import "strings"

// unitVariants 使用者輸入的單位寫法對應到目錄使用的標準單位
var unitVariants = map[string]string{
	// 重量
	"gram": "g", "grams": "g", "gr": "g", "gms": "g",
	"kilogram": "kg", "kilograms": "kg", "kilo": "kg", "kgs": "kg",
	"ounce": "oz", "ounces": "oz",
	"pound": "lb", "pounds": "lb", "lbs": "lb",

	// 容量
	"milliliter": "ml", "milliliters": "ml",
	"liter": "l", "liters": "l",
	"tablespoon": "tbsp", "tablespoons": "tbsp", "tbs": "tbsp",
	"teaspoon": "tsp", "teaspoons": "tsp",
	"cup": "cup", "cups": "cup",

	// 數量
	"piece": "piece", "pieces": "piece", "pc": "piece", "pcs": "piece", "whole": "piece",
	"head": "head", "clove": "clove", "slice": "slice", "stalk": "stalk",
	"stick": "stick", "fillet": "fillet", "can": "can",
}

// canonicalUnits unitVariants 的所有標準單位
var canonicalUnits = func() map[string]bool {
	set := make(map[string]bool, len(unitVariants))
	for _, canonical := range unitVariants {
		set[canonical] = true
	}
	return set
}()

// IsCanonicalUnit 是否為已知的標準單位
func IsCanonicalUnit(unit string) bool {
	return canonicalUnits[unit]
}

// NormalizeUnit 將任意單位字串轉為標準單位；未知單位回傳小寫去空白後的原值
func NormalizeUnit(raw string) string {
	unit := strings.ToLower(strings.TrimSpace(raw))
	if unit == "" {
		return ""
	}
	if canonical, ok := unitVariants[unit]; ok {
		return canonical
	}
	return unit
}
