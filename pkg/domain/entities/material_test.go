package entities

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestMaterial_Validation(t *testing.T) {
	valid, err := NewMaterial("salt", "Salt", decimal.NewFromInt(100), Kilogram, decimal.NewFromInt(10), false)
	if err != nil {
		t.Fatalf("Expected valid material creation to succeed: %v", err)
	}
	if valid.ID != "salt" {
		t.Errorf("Expected material id salt, got %s", valid.ID)
	}

	testCases := []struct {
		name        string
		id          MaterialID
		displayName string
		stock       decimal.Decimal
		unit        Unit
		threshold   decimal.Decimal
		expectError string
	}{
		{"empty id", "", "Salt", decimal.NewFromInt(1), Kilogram, decimal.Zero, "material id cannot be empty"},
		{"empty name", "salt", "", decimal.NewFromInt(1), Kilogram, decimal.Zero, "material name cannot be empty"},
		{"unknown unit", "salt", "Salt", decimal.NewFromInt(1), Unit("oz"), decimal.Zero, `unknown unit of measure: "oz"`},
		{"negative stock", "salt", "Salt", decimal.NewFromInt(-1), Kilogram, decimal.Zero, "current stock cannot be negative, got -1"},
		{"negative threshold", "salt", "Salt", decimal.NewFromInt(1), Kilogram, decimal.NewFromInt(-5), "minimum threshold cannot be negative, got -5"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewMaterial(tc.id, tc.displayName, tc.stock, tc.unit, tc.threshold, false)
			if err == nil {
				t.Fatalf("Expected error for %s, but got none", tc.name)
			}
			if err.Error() != tc.expectError {
				t.Errorf("Expected error '%s', got '%s'", tc.expectError, err.Error())
			}
		})
	}
}

func TestMaterial_Status(t *testing.T) {
	testCases := []struct {
		name      string
		stock     decimal.Decimal
		threshold decimal.Decimal
		infinite  bool
		expected  StockStatus
	}{
		{"above threshold", decimal.NewFromInt(50), decimal.NewFromInt(10), false, StatusOK},
		{"exactly at threshold", decimal.NewFromInt(10), decimal.NewFromInt(10), false, StatusLow},
		{"below threshold", decimal.NewFromInt(5), decimal.NewFromInt(10), false, StatusLow},
		{"zero stock", decimal.Zero, decimal.NewFromInt(10), false, StatusOut},
		{"infinite always ok", decimal.Zero, decimal.NewFromInt(10), true, StatusOK},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			m := &Material{
				ID:           "m",
				Name:         "M",
				CurrentStock: tc.stock,
				Unit:         Kilogram,
				MinThreshold: tc.threshold,
				IsInfinite:   tc.infinite,
			}
			if got := m.Status(); got != tc.expected {
				t.Errorf("Expected status %s, got %s", tc.expected, got)
			}
		})
	}
}

func TestParseUnit(t *testing.T) {
	for _, s := range []string{"kg", "L", "gr", "ml"} {
		if _, err := ParseUnit(s); err != nil {
			t.Errorf("Expected %q to parse, got %v", s, err)
		}
	}
	if _, err := ParseUnit("lbs"); err == nil {
		t.Error("Expected unknown unit to be rejected")
	}
}
