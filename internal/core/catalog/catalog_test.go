package catalog

import (
	"context"
	"errors"
	"math"
	"reflect"
	"testing"

	"recipe-nutrition/internal/core/nutrition"
	"recipe-nutrition/internal/infrastructure/config"
)

func TestPrepareNormalizes(t *testing.T) {
	got, err := Prepare(nutrition.Ingredient{
		Name:            "  Bell Pepper ",
		CaloriesPerUnit: 20,
		Aliases:         []string{"Capsicum", "capsicum ", "", "bell pepper"},
		Conversions:     map[string]float64{" Cup ": 1.5, "Medium": 1.2},
	})
	if err != nil {
		t.Fatalf("Prepare error: %v", err)
	}

	if got.Name != "bell pepper" {
		t.Errorf("Name = %q; want %q", got.Name, "bell pepper")
	}
	if got.StandardUnit != nutrition.DefaultStandardUnit {
		t.Errorf("StandardUnit = %q; want default", got.StandardUnit)
	}
	wantAliases := []string{"bell pepper", "capsicum"}
	if !reflect.DeepEqual(got.Aliases, wantAliases) {
		t.Errorf("Aliases = %v; want %v", got.Aliases, wantAliases)
	}
	wantConv := map[string]float64{"cup": 1.5, "medium": 1.2}
	if !reflect.DeepEqual(got.Conversions, wantConv) {
		t.Errorf("Conversions = %v; want %v", got.Conversions, wantConv)
	}
}

func TestPrepareRejectsInvalidRecords(t *testing.T) {
	tests := []struct {
		name string
		ing  nutrition.Ingredient
	}{
		{"empty name", nutrition.Ingredient{Name: "  "}},
		{"negative calories", nutrition.Ingredient{Name: "x", CaloriesPerUnit: -1}},
		{"nan protein", nutrition.Ingredient{Name: "x", ProteinPerUnit: math.NaN()}},
		{"infinite fat", nutrition.Ingredient{Name: "x", FatPerUnit: math.Inf(1)}},
		{"zero factor", nutrition.Ingredient{Name: "x", Conversions: map[string]float64{"cup": 0}}},
		{"negative factor", nutrition.Ingredient{Name: "x", Conversions: map[string]float64{"cup": -2}}},
		{"infinite factor", nutrition.Ingredient{Name: "x", Conversions: map[string]float64{"cup": math.Inf(1)}}},
		{"empty unit key", nutrition.Ingredient{Name: "x", Conversions: map[string]float64{" ": 1}}},
		{"duplicate unit key", nutrition.Ingredient{Name: "x", Conversions: map[string]float64{"Cup": 1, "cup": 2}}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Prepare(tc.ing)
			if !errors.Is(err, ErrInvalidRecord) {
				t.Fatalf("Prepare error = %v; want ErrInvalidRecord", err)
			}
			if !IsInvalid(err) {
				t.Error("IsInvalid should report true")
			}
		})
	}
}

func TestSeedDataIsValid(t *testing.T) {
	records := SeedData()
	if len(records) < 100 {
		t.Fatalf("seed data has %d records; want at least 100", len(records))
	}

	owners := map[string]string{}
	for _, rec := range records {
		prepared, err := Prepare(rec)
		if err != nil {
			t.Errorf("seed record %q invalid: %v", rec.Name, err)
			continue
		}
		for _, alias := range prepared.Aliases {
			if owner, ok := owners[alias]; ok && owner != prepared.Name {
				t.Errorf("alias %q shared by %q and %q", alias, owner, prepared.Name)
			}
			owners[alias] = prepared.Name
		}
		for unit, factor := range defaultMassConversions {
			if _, ok := rec.Conversions[unit]; !ok {
				t.Errorf("seed record %q missing default %s conversion (%v)", rec.Name, unit, factor)
			}
		}
	}
}

func TestOpen(t *testing.T) {
	cfg := &config.Config{Catalog: config.CatalogConfig{Backend: config.CatalogBackendMemory}}
	store, err := Open(context.Background(), cfg)
	if err != nil {
		t.Fatalf("Open error: %v", err)
	}
	if _, ok := store.(*MemoryStore); !ok {
		t.Errorf("Open(memory) = %T; want *MemoryStore", store)
	}

	cfg.Catalog.Backend = "mongo"
	if _, err := Open(context.Background(), cfg); err == nil {
		t.Error("expected error for unknown backend")
	}
}
