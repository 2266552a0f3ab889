package memory

import (
	"fmt"

	"github.com/nkaya/mixplan/pkg/domain/entities"
	"github.com/nkaya/mixplan/pkg/domain/repositories"
)

// RecipeRepository provides in-memory recipe storage
type RecipeRepository struct {
	recipes []entities.Recipe
	index   map[entities.RecipeID]int
}

// NewRecipeRepository creates a new in-memory recipe repository
func NewRecipeRepository() *RecipeRepository {
	return &RecipeRepository{
		recipes: []entities.Recipe{},
		index:   map[entities.RecipeID]int{},
	}
}

// Verify interface compliance
var _ repositories.RecipeRepository = (*RecipeRepository)(nil)

// GetRecipe returns a copy of the recipe with the given id
func (r *RecipeRepository) GetRecipe(id entities.RecipeID) (*entities.Recipe, error) {
	i, ok := r.index[id]
	if !ok {
		return nil, fmt.Errorf("recipe %s: %w", id, repositories.ErrNotFound)
	}
	return copyRecipe(&r.recipes[i]), nil
}

// GetAllRecipes returns copies of all recipes in insertion order
func (r *RecipeRepository) GetAllRecipes() ([]*entities.Recipe, error) {
	recipes := make([]*entities.Recipe, 0, len(r.recipes))
	for i := range r.recipes {
		recipes = append(recipes, copyRecipe(&r.recipes[i]))
	}
	return recipes, nil
}

// SaveRecipe inserts the recipe, or replaces it if the id already exists
func (r *RecipeRepository) SaveRecipe(recipe *entities.Recipe) error {
	if recipe == nil {
		return fmt.Errorf("recipe cannot be nil")
	}
	stored := copyRecipe(recipe)
	if i, ok := r.index[recipe.ID]; ok {
		r.recipes[i] = *stored
		return nil
	}
	r.index[recipe.ID] = len(r.recipes)
	r.recipes = append(r.recipes, *stored)
	return nil
}

// DeleteRecipe removes the recipe with the given id; unknown ids are a no-op
func (r *RecipeRepository) DeleteRecipe(id entities.RecipeID) error {
	i, ok := r.index[id]
	if !ok {
		return nil
	}
	r.recipes = append(r.recipes[:i], r.recipes[i+1:]...)
	delete(r.index, id)
	for j := i; j < len(r.recipes); j++ {
		r.index[r.recipes[j].ID] = j
	}
	return nil
}

// ReplaceRecipes replaces the entire collection, used by snapshot restore
func (r *RecipeRepository) ReplaceRecipes(recipes []*entities.Recipe) error {
	r.recipes = make([]entities.Recipe, 0, len(recipes))
	r.index = make(map[entities.RecipeID]int, len(recipes))
	for _, rec := range recipes {
		if rec == nil {
			return fmt.Errorf("recipe cannot be nil")
		}
		if _, ok := r.index[rec.ID]; ok {
			return fmt.Errorf("duplicate recipe id %s", rec.ID)
		}
		r.index[rec.ID] = len(r.recipes)
		r.recipes = append(r.recipes, *copyRecipe(rec))
	}
	return nil
}

func copyRecipe(recipe *entities.Recipe) *entities.Recipe {
	ingredients := make([]entities.Ingredient, len(recipe.Ingredients))
	copy(ingredients, recipe.Ingredients)
	return &entities.Recipe{
		ID:          recipe.ID,
		Name:        recipe.Name,
		Ingredients: ingredients,
	}
}
