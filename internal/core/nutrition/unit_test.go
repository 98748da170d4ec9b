package nutrition

import "testing"

func TestNormalizeUnit(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		// 重量
		{"Grams", "g"},
		{"gr", "g"},
		{"GMS", "g"},
		{"kilograms", "kg"},
		{"kgs", "kg"},
		{"ounces", "oz"},
		{"pounds", "lb"},
		{"LBS", "lb"},
		// 容量
		{"milliliters", "ml"},
		{"Liters", "l"},
		{"tablespoons", "tbsp"},
		{"TBS", "tbsp"},
		{"teaspoons", "tsp"},
		{"cups", "cup"},
		// 數量
		{"pieces", "piece"},
		{"pc", "piece"},
		{"pcs", "piece"},
		{"whole", "piece"},
		{"clove", "clove"},
		{"fillet", "fillet"},
		{"can", "can"},
		// 空白與大小寫
		{"  Cup  ", "cup"},
		{"", ""},
		{"   ", ""},
		// 未知單位原樣傳回（小寫去空白）
		{"Bunch", "bunch"},
		{" Sprigs ", "sprigs"},
		{"100G", "100g"},
	}

	for _, tc := range tests {
		got := NormalizeUnit(tc.input)
		if got != tc.want {
			t.Errorf("NormalizeUnit(%q) = %q; want %q", tc.input, got, tc.want)
		}
	}
}

func TestNormalizeUnitIdempotent(t *testing.T) {
	for variant := range unitVariants {
		once := NormalizeUnit(variant)
		if twice := NormalizeUnit(once); twice != once {
			t.Errorf("NormalizeUnit(NormalizeUnit(%q)) = %q; want %q", variant, twice, once)
		}
	}
	for _, canonical := range []string{"g", "kg", "oz", "lb", "ml", "l", "tbsp", "tsp", "cup", "piece"} {
		if got := NormalizeUnit(canonical); got != canonical {
			t.Errorf("NormalizeUnit(%q) = %q; want unchanged", canonical, got)
		}
	}
}
