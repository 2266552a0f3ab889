package catalog

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/nkaya/mixplan/pkg/domain/entities"
	"github.com/nkaya/mixplan/pkg/domain/repositories"
	"github.com/nkaya/mixplan/pkg/infrastructure/logging"
)

// Service is the recipe catalog: it holds production formulas and computes
// scaled ingredient requirements against the fixed reference batch size.
type Service struct {
	recipes repositories.RecipeRepository
	logger  *logging.Logger
}

// NewService creates a recipe catalog over the given recipe repository
func NewService(recipes repositories.RecipeRepository, logger *logging.Logger) *Service {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Service{
		recipes: recipes,
		logger:  logger,
	}
}

// GetRecipe returns the recipe with the given id, or an error wrapping
// repositories.ErrNotFound if it was deleted.
func (s *Service) GetRecipe(id entities.RecipeID) (*entities.Recipe, error) {
	return s.recipes.GetRecipe(id)
}

// GetAllRecipes returns all recipes in insertion order
func (s *Service) GetAllRecipes() ([]*entities.Recipe, error) {
	return s.recipes.GetAllRecipes()
}

// SaveRecipe validates and stores a recipe. Duplicate lines for the same
// material are legal and kept as-is; they are logged as a warning because
// their requirements are computed independently, not merged.
func (s *Service) SaveRecipe(recipe *entities.Recipe) error {
	if recipe == nil {
		return fmt.Errorf("recipe cannot be nil")
	}
	if err := recipe.Validate(); err != nil {
		return err
	}
	if dups := DuplicateMaterials(recipe); len(dups) > 0 {
		s.logger.Warn("recipe has duplicate ingredient lines; requirements are not merged",
			"recipe_id", recipe.ID, "materials", dups)
	}
	if err := s.recipes.SaveRecipe(recipe); err != nil {
		return err
	}
	s.logger.Debug("recipe saved", "recipe_id", recipe.ID, "name", recipe.Name)
	return nil
}

// DeleteRecipe removes a recipe. Past production log entries referencing it
// are unaffected; they carry their own name snapshots.
func (s *Service) DeleteRecipe(id entities.RecipeID) error {
	if err := s.recipes.DeleteRecipe(id); err != nil {
		return err
	}
	s.logger.Debug("recipe deleted", "recipe_id", id)
	return nil
}

// ScaleRequirements computes the per-line ingredient requirements for the
// given target output: amountPerBatch * target / ReferenceBatchSize. Lines
// are returned in recipe order and never coalesced, so a material appearing
// twice yields two independent requirements.
func (s *Service) ScaleRequirements(recipe *entities.Recipe, targetOutput decimal.Decimal) []entities.Requirement {
	factor := targetOutput.Div(entities.ReferenceBatchSize)
	requirements := make([]entities.Requirement, 0, len(recipe.Ingredients))
	for _, ing := range recipe.Ingredients {
		requirements = append(requirements, entities.Requirement{
			MaterialID: ing.MaterialID,
			Quantity:   ing.AmountPerBatch.Mul(factor),
		})
	}
	return requirements
}

// DuplicateMaterials returns the material ids that appear on more than one
// line of the recipe.
func DuplicateMaterials(recipe *entities.Recipe) []entities.MaterialID {
	seen := make(map[entities.MaterialID]int, len(recipe.Ingredients))
	var dups []entities.MaterialID
	for _, ing := range recipe.Ingredients {
		seen[ing.MaterialID]++
		if seen[ing.MaterialID] == 2 {
			dups = append(dups, ing.MaterialID)
		}
	}
	return dups
}
