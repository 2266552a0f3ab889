package repositories

import "github.com/nkaya/mixplan/pkg/domain/entities"

// RecipeRepository provides access to recipe data
type RecipeRepository interface {
	GetRecipe(id entities.RecipeID) (*entities.Recipe, error)
	GetAllRecipes() ([]*entities.Recipe, error)
	SaveRecipe(recipe *entities.Recipe) error
	DeleteRecipe(id entities.RecipeID) error
	ReplaceRecipes(recipes []*entities.Recipe) error
}
