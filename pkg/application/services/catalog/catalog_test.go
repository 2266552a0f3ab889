package catalog

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	testhelpers "github.com/nkaya/mixplan/pkg/application/services/testing"
	"github.com/nkaya/mixplan/pkg/domain/entities"
	"github.com/nkaya/mixplan/pkg/domain/repositories"
)

func newTestService() *Service {
	_, recipeRepo, _ := testhelpers.BuildBrineTestData()
	return NewService(recipeRepo, nil)
}

func TestService_ScaleRequirements(t *testing.T) {
	svc := newTestService()
	recipe, err := svc.GetRecipe("brine")
	if err != nil {
		t.Fatalf("GetRecipe failed: %v", err)
	}

	tests := []struct {
		name      string
		target    decimal.Decimal
		wantSalt  decimal.Decimal
		wantWater decimal.Decimal
	}{
		{"double batch", decimal.NewFromInt(2000), decimal.NewFromInt(100), decimal.NewFromInt(1900)},
		{"reference batch", decimal.NewFromInt(1000), decimal.NewFromInt(50), decimal.NewFromInt(950)},
		{"half batch", decimal.NewFromInt(500), decimal.NewFromInt(25), decimal.NewFromInt(475)},
		{"fractional target", decimal.NewFromInt(1), decimal.NewFromFloat(0.05), decimal.NewFromFloat(0.95)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reqs := svc.ScaleRequirements(recipe, tt.target)
			if len(reqs) != 2 {
				t.Fatalf("Expected 2 requirements, got %d", len(reqs))
			}
			if reqs[0].MaterialID != "salt" || !reqs[0].Quantity.Equal(tt.wantSalt) {
				t.Errorf("Expected salt requirement %s, got %s %s", tt.wantSalt, reqs[0].MaterialID, reqs[0].Quantity)
			}
			if reqs[1].MaterialID != "water" || !reqs[1].Quantity.Equal(tt.wantWater) {
				t.Errorf("Expected water requirement %s, got %s %s", tt.wantWater, reqs[1].MaterialID, reqs[1].Quantity)
			}
		})
	}
}

func TestService_ScaleRequirements_DuplicateLinesNotMerged(t *testing.T) {
	svc := newTestService()

	recipe := &entities.Recipe{
		ID:   "double-salt",
		Name: "Double Salt",
		Ingredients: []entities.Ingredient{
			{MaterialID: "salt", AmountPerBatch: decimal.NewFromInt(20)},
			{MaterialID: "salt", AmountPerBatch: decimal.NewFromInt(30)},
		},
	}
	if err := svc.SaveRecipe(recipe); err != nil {
		t.Fatalf("SaveRecipe failed: %v", err)
	}

	reqs := svc.ScaleRequirements(recipe, decimal.NewFromInt(1000))
	if len(reqs) != 2 {
		t.Fatalf("Expected 2 independent requirement lines, got %d", len(reqs))
	}
	if !reqs[0].Quantity.Equal(decimal.NewFromInt(20)) || !reqs[1].Quantity.Equal(decimal.NewFromInt(30)) {
		t.Errorf("Expected unmerged requirements 20 and 30, got %s and %s", reqs[0].Quantity, reqs[1].Quantity)
	}
}

func TestService_SaveRecipe_Validates(t *testing.T) {
	svc := newTestService()

	if err := svc.SaveRecipe(nil); err == nil {
		t.Fatal("Expected error for nil recipe")
	}

	empty := &entities.Recipe{ID: "empty", Name: "Empty"}
	if err := svc.SaveRecipe(empty); err == nil {
		t.Fatal("Expected validation error for recipe without ingredients")
	}
}

func TestService_DeleteRecipe(t *testing.T) {
	svc := newTestService()

	if err := svc.DeleteRecipe("brine"); err != nil {
		t.Fatalf("DeleteRecipe failed: %v", err)
	}
	if _, err := svc.GetRecipe("brine"); !errors.Is(err, repositories.ErrNotFound) {
		t.Errorf("Expected ErrNotFound after delete, got %v", err)
	}
}

func TestDuplicateMaterials(t *testing.T) {
	recipe := &entities.Recipe{
		ID:   "r",
		Name: "R",
		Ingredients: []entities.Ingredient{
			{MaterialID: "a", AmountPerBatch: decimal.NewFromInt(1)},
			{MaterialID: "b", AmountPerBatch: decimal.NewFromInt(1)},
			{MaterialID: "a", AmountPerBatch: decimal.NewFromInt(1)},
			{MaterialID: "a", AmountPerBatch: decimal.NewFromInt(1)},
		},
	}
	dups := DuplicateMaterials(recipe)
	if len(dups) != 1 || dups[0] != "a" {
		t.Errorf("Expected duplicate list [a], got %v", dups)
	}
}
