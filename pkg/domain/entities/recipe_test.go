package entities

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestRecipe_Validation(t *testing.T) {
	valid, err := NewRecipe("brine", "Brine", []Ingredient{
		{MaterialID: "salt", AmountPerBatch: decimal.NewFromInt(50)},
	})
	if err != nil {
		t.Fatalf("Expected valid recipe creation to succeed: %v", err)
	}
	if valid.Name != "Brine" {
		t.Errorf("Expected recipe name Brine, got %s", valid.Name)
	}

	testCases := []struct {
		name        string
		id          RecipeID
		displayName string
		ingredients []Ingredient
		expectError string
	}{
		{
			"empty id",
			"",
			"Brine",
			[]Ingredient{{MaterialID: "salt", AmountPerBatch: decimal.NewFromInt(1)}},
			"recipe id cannot be empty",
		},
		{
			"empty name",
			"brine",
			"",
			[]Ingredient{{MaterialID: "salt", AmountPerBatch: decimal.NewFromInt(1)}},
			"recipe name cannot be empty",
		},
		{
			"no ingredients",
			"brine",
			"Brine",
			[]Ingredient{},
			"recipe must have at least one ingredient",
		},
		{
			"empty material reference",
			"brine",
			"Brine",
			[]Ingredient{{MaterialID: "", AmountPerBatch: decimal.NewFromInt(1)}},
			"ingredient 1: material id cannot be empty",
		},
		{
			"negative amount",
			"brine",
			"Brine",
			[]Ingredient{
				{MaterialID: "salt", AmountPerBatch: decimal.NewFromInt(1)},
				{MaterialID: "water", AmountPerBatch: decimal.NewFromInt(-2)},
			},
			"ingredient 2: amount per batch cannot be negative, got -2",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewRecipe(tc.id, tc.displayName, tc.ingredients)
			if err == nil {
				t.Fatalf("Expected error for %s, but got none", tc.name)
			}
			if err.Error() != tc.expectError {
				t.Errorf("Expected error '%s', got '%s'", tc.expectError, err.Error())
			}
		})
	}
}
