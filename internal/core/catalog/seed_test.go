package catalog

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"recipe-nutrition/internal/core/nutrition"
	"recipe-nutrition/internal/infrastructure/config"
)

func TestSeedCountsInsertsAndUpdates(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	first, err := Seed(ctx, store, SeedData())
	if err != nil {
		t.Fatalf("Seed error: %v", err)
	}
	if first.Inserted != len(SeedData()) || first.Updated != 0 || first.Failed != 0 {
		t.Errorf("first seed = %+v; want all inserted", first)
	}

	second, err := Seed(ctx, store, SeedData())
	if err != nil {
		t.Fatalf("Seed error: %v", err)
	}
	if second.Inserted != 0 || second.Updated != len(SeedData()) {
		t.Errorf("second seed = %+v; want all updated", second)
	}
	if store.Len() != len(SeedData()) {
		t.Errorf("store has %d records; want %d", store.Len(), len(SeedData()))
	}
}

func TestSeedSkipsInvalidRecords(t *testing.T) {
	records := []nutrition.Ingredient{
		{Name: "rice", CaloriesPerUnit: 130},
		{Name: "", CaloriesPerUnit: 1},
		{Name: "ghee", CaloriesPerUnit: -5},
		{Name: "brown rice", Aliases: []string{"rice"}},
	}

	res, err := Seed(context.Background(), NewMemoryStore(), records)
	if err != nil {
		t.Fatalf("Seed error: %v", err)
	}
	if res.Inserted != 1 || res.Failed != 3 {
		t.Errorf("Seed result = %+v; want 1 inserted, 3 failed", res)
	}
}

func TestSeededCatalogResolvesCommonInputs(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	if _, err := Seed(ctx, store, SeedData()); err != nil {
		t.Fatalf("Seed error: %v", err)
	}
	svc := nutrition.NewService(store, nil, 2)

	tests := []struct {
		input string
		want  string
	}{
		{"egg", "eggs"},
		{"Chicken Breast", "chicken"},
		{"onions", "onion"},
		{"Prawns", "shrimp"},
		{"broth", "stock"},
	}
	for _, tc := range tests {
		ing, err := svc.Lookup(ctx, tc.input)
		if err != nil {
			t.Fatalf("Lookup(%q) error: %v", tc.input, err)
		}
		if ing.Name != tc.want {
			t.Errorf("Lookup(%q) = %q; want %q", tc.input, ing.Name, tc.want)
		}
	}

	res, err := svc.CalculateItem(ctx, nutrition.LineItem{
		Name:     "milk",
		Quantity: nutrition.NumberQuantity(1),
		Unit:     "cups",
	})
	if err != nil {
		t.Fatalf("CalculateItem error: %v", err)
	}
	// 42 kcal/100ml × 2.45
	if res.Nutrition.Calories != 103 {
		t.Errorf("1 cup milk calories = %v; want 103", res.Nutrition.Calories)
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "catalog.json")
	data := `[{"name":"saffron","caloriesPerUnit":310,"proteinPerUnit":11,"fatPerUnit":6,"carbsPerUnit":65,"standardUnit":"100g","conversions":{"pinch":0.0005}}]`
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatalf("write file: %v", err)
	}

	records, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile error: %v", err)
	}
	if len(records) != 1 || records[0].Name != "saffron" || records[0].Conversions["pinch"] != 0.0005 {
		t.Errorf("records = %+v", records)
	}

	if _, err := LoadFile(filepath.Join(dir, "missing.json")); err == nil {
		t.Error("expected error for missing file")
	}

	objPath := filepath.Join(dir, "object.json")
	if err := os.WriteFile(objPath, []byte(`{"name":"saffron"}`), 0o600); err != nil {
		t.Fatalf("write file: %v", err)
	}
	if _, err := LoadFile(objPath); err == nil {
		t.Error("expected error for non-array file")
	}
}

func TestImporter(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/catalog.json" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[
			{"name":"Tahini","caloriesPerUnit":595,"proteinPerUnit":17,"fatPerUnit":54,"carbsPerUnit":21,"conversions":{"tbsp":0.15}},
			{"name":"Harissa","caloriesPerUnit":70,"aliases":["harissa paste"]}
		]`))
	}))
	defer srv.Close()

	store := NewMemoryStore()
	res, err := NewImporter(srv.URL+"/catalog.json", 5*time.Second).Import(context.Background(), store)
	if err != nil {
		t.Fatalf("Import error: %v", err)
	}
	if res.Inserted != 2 {
		t.Errorf("Import result = %+v; want 2 inserted", res)
	}

	rec, err := store.FindByNameOrAlias(context.Background(), "harissa paste")
	if err != nil || rec.Name != "harissa" {
		t.Errorf("imported alias lookup = %+v, %v", rec, err)
	}
}

func TestImporterErrors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.HasSuffix(r.URL.Path, "/object") {
			_, _ = w.Write([]byte(`{"name":"tahini"}`))
			return
		}
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	if _, err := NewImporter(srv.URL+"/missing", time.Second).Fetch(context.Background()); err == nil {
		t.Error("expected error for 404 response")
	}
	if _, err := NewImporter(srv.URL+"/object", time.Second).Fetch(context.Background()); err == nil {
		t.Error("expected error for non-array body")
	}
}

func TestBootstrapSources(t *testing.T) {
	ctx := context.Background()

	builtin := NewMemoryStore()
	res, err := Bootstrap(ctx, builtin, config.CatalogConfig{})
	if err != nil {
		t.Fatalf("Bootstrap(builtin) error: %v", err)
	}
	if res.Inserted != len(SeedData()) {
		t.Errorf("builtin inserted = %d; want %d", res.Inserted, len(SeedData()))
	}

	path := filepath.Join(t.TempDir(), "catalog.json")
	if err := os.WriteFile(path, []byte(`[{"name":"miso"}]`), 0o600); err != nil {
		t.Fatalf("write file: %v", err)
	}
	fromFile := NewMemoryStore()
	res, err = Bootstrap(ctx, fromFile, config.CatalogConfig{SeedFile: path, ImportURL: "http://unused.invalid"})
	if err != nil {
		t.Fatalf("Bootstrap(file) error: %v", err)
	}
	if res.Inserted != 1 || fromFile.Len() != 1 {
		t.Errorf("file bootstrap = %+v, len %d; want 1 record", res, fromFile.Len())
	}
}
