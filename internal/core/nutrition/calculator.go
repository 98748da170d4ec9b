package nutrition

import "math"

// Compute 以完整精度計算一個數量的營養值。
// 數量非正數或找不到換算係數時回傳零值與 ok=false。
func Compute(ing *Ingredient, quantity float64, unit string) (Result, Factor, bool) {
	if math.IsNaN(quantity) || math.IsInf(quantity, 0) || quantity <= 0 {
		return Result{}, Factor{NormalizedUnit: NormalizeUnit(unit)}, false
	}

	factor, ok := ResolveFactor(ing, unit)
	if !ok {
		return Result{}, factor, false
	}

	amount := quantity * factor.Value
	return Result{
		Calories: ing.CaloriesPerUnit * amount,
		Protein:  ing.ProteinPerUnit * amount,
		Fat:      ing.FatPerUnit * amount,
		Carbs:    ing.CarbsPerUnit * amount,
	}, factor, true
}

// Add 累加（不四捨五入）
func (r Result) Add(o Result) Result {
	return Result{
		Calories: r.Calories + o.Calories,
		Protein:  r.Protein + o.Protein,
		Fat:      r.Fat + o.Fat,
		Carbs:    r.Carbs + o.Carbs,
	}
}

// Rounded 熱量取整數，三大營養素取一位小數
func (r Result) Rounded() Result {
	return Result{
		Calories: roundTo(r.Calories, 0),
		Protein:  roundTo(r.Protein, 1),
		Fat:      roundTo(r.Fat, 1),
		Carbs:    roundTo(r.Carbs, 1),
	}
}

// IsZero 是否全為零
func (r Result) IsZero() bool {
	return r == Result{}
}

func roundTo(v float64, places int) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
		return 0
	}
	p := math.Pow(10, float64(places))
	return math.Round(v*p) / p
}
