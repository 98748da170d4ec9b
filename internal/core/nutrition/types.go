package nutrition

import (
	"errors"
	"strings"
)

// DefaultStandardUnit 未指定標準單位時使用的基準
const DefaultStandardUnit = "100g"

var (
	// ErrNotFound 目錄中找不到食材
	ErrNotFound = errors.New("ingredient not found")
	// ErrNotAList 食材清單不是陣列
	ErrNotAList = errors.New("ingredients must be a list")
)

// Ingredient 食材營養記錄，營養數值皆以一個標準單位計
type Ingredient struct {
	Name            string             `json:"name" validate:"required"`
	CaloriesPerUnit float64            `json:"caloriesPerUnit" validate:"gte=0"`
	ProteinPerUnit  float64            `json:"proteinPerUnit" validate:"gte=0"`
	FatPerUnit      float64            `json:"fatPerUnit" validate:"gte=0"`
	CarbsPerUnit    float64            `json:"carbsPerUnit" validate:"gte=0"`
	StandardUnit    string             `json:"standardUnit"`
	Aliases         []string           `json:"aliases"`
	Conversions     map[string]float64 `json:"conversions" validate:"dive,keys,required,endkeys,gt=0"`
}

// Standard 回傳標準單位，空值視為 100g
func (i *Ingredient) Standard() string {
	if i.StandardUnit == "" {
		return DefaultStandardUnit
	}
	return i.StandardUnit
}

// Result 營養計算結果
type Result struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Fat      float64 `json:"fat"`
	Carbs    float64 `json:"carbs"`
}

// LineItem 單一食材數量，可以是獨立請求或食譜中的一行
type LineItem struct {
	Name     string   `json:"name"`
	Quantity Quantity `json:"quantity"`
	Unit     string   `json:"unit"`

	malformed bool
}

// Complete 三個必要欄位是否都有提供
func (l LineItem) Complete() bool {
	return !l.malformed &&
		strings.TrimSpace(l.Name) != "" &&
		!l.Quantity.Missing() &&
		strings.TrimSpace(l.Unit) != ""
}

// ItemResult 單一食材計算響應
type ItemResult struct {
	Ingredient string   `json:"ingredient"`
	Quantity   Quantity `json:"quantity"`
	Unit       string   `json:"unit"`
	Nutrition  Result   `json:"nutrition"`
	NotFound   bool     `json:"notFound,omitempty"`
}

// Detail 食譜計算中每一項的明細
type Detail struct {
	Name      string   `json:"name"`
	InputName string   `json:"inputName,omitempty"`
	Quantity  Quantity `json:"quantity"`
	Unit      string   `json:"unit"`
	Nutrition Result   `json:"nutrition"`
	NotFound  bool     `json:"notFound,omitempty"`
	Error     string   `json:"error,omitempty"`
}

// RecipeAggregate 食譜營養總計與明細
type RecipeAggregate struct {
	TotalNutrition    Result   `json:"totalNutrition"`
	IngredientDetails []Detail `json:"ingredientDetails"`
}

// DetailErrMissingFields 缺少必要欄位的標記
const DetailErrMissingFields = "missing required fields"
