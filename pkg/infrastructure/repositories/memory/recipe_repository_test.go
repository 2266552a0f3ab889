package memory

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/nkaya/mixplan/pkg/domain/entities"
	"github.com/nkaya/mixplan/pkg/domain/repositories"
)

func newBrine() *entities.Recipe {
	return &entities.Recipe{
		ID:   "brine",
		Name: "Brine",
		Ingredients: []entities.Ingredient{
			{MaterialID: "salt", AmountPerBatch: decimal.NewFromInt(50)},
			{MaterialID: "water", AmountPerBatch: decimal.NewFromInt(950)},
		},
	}
}

func TestRecipeRepository_SaveAndGet(t *testing.T) {
	repo := NewRecipeRepository()

	if err := repo.SaveRecipe(newBrine()); err != nil {
		t.Fatalf("SaveRecipe failed: %v", err)
	}

	got, err := repo.GetRecipe("brine")
	if err != nil {
		t.Fatalf("GetRecipe failed: %v", err)
	}
	if len(got.Ingredients) != 2 {
		t.Errorf("Expected 2 ingredients, got %d", len(got.Ingredients))
	}

	if _, err := repo.GetRecipe("missing"); !errors.Is(err, repositories.ErrNotFound) {
		t.Errorf("Expected ErrNotFound for unknown recipe, got %v", err)
	}
}

func TestRecipeRepository_ReturnsCopies(t *testing.T) {
	repo := NewRecipeRepository()
	if err := repo.SaveRecipe(newBrine()); err != nil {
		t.Fatalf("SaveRecipe failed: %v", err)
	}

	got, _ := repo.GetRecipe("brine")
	got.Ingredients[0].AmountPerBatch = decimal.Zero

	again, _ := repo.GetRecipe("brine")
	if !again.Ingredients[0].AmountPerBatch.Equal(decimal.NewFromInt(50)) {
		t.Errorf("Mutating a returned recipe must not affect the stored one, got %s", again.Ingredients[0].AmountPerBatch)
	}
}

func TestRecipeRepository_DeleteAndReplace(t *testing.T) {
	repo := NewRecipeRepository()
	if err := repo.SaveRecipe(newBrine()); err != nil {
		t.Fatalf("SaveRecipe failed: %v", err)
	}

	if err := repo.DeleteRecipe("brine"); err != nil {
		t.Fatalf("DeleteRecipe failed: %v", err)
	}
	if err := repo.DeleteRecipe("missing"); err != nil {
		t.Errorf("Expected delete of unknown id to be a no-op, got %v", err)
	}

	if err := repo.ReplaceRecipes([]*entities.Recipe{newBrine(), newBrine()}); err == nil {
		t.Error("Expected duplicate ids to be rejected")
	}
	if err := repo.ReplaceRecipes([]*entities.Recipe{newBrine()}); err != nil {
		t.Fatalf("ReplaceRecipes failed: %v", err)
	}
	all, err := repo.GetAllRecipes()
	if err != nil {
		t.Fatalf("GetAllRecipes failed: %v", err)
	}
	if len(all) != 1 {
		t.Errorf("Expected 1 recipe after replace, got %d", len(all))
	}
}
