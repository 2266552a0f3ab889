package entities

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// RecipeID uniquely identifies a recipe
type RecipeID string

// ReferenceBatchSize is the fixed output size all recipe ratios are
// normalized against. Every ingredient amount is expressed per 1000
// output-units, so scaling a recipe to any target is a single multiply.
var ReferenceBatchSize = decimal.NewFromInt(1000)

// Ingredient is a single line of a recipe: a material reference and the
// amount required per reference batch. The material reference is weak; the
// material may have been deleted since the line was written.
type Ingredient struct {
	MaterialID     MaterialID
	AmountPerBatch decimal.Decimal
}

// Recipe represents a named production formula
type Recipe struct {
	ID          RecipeID
	Name        string
	Ingredients []Ingredient
}

// NewRecipe creates a validated Recipe
func NewRecipe(id RecipeID, name string, ingredients []Ingredient) (*Recipe, error) {
	r := &Recipe{
		ID:          id,
		Name:        name,
		Ingredients: ingredients,
	}
	if err := r.Validate(); err != nil {
		return nil, err
	}
	return r, nil
}

// Validate checks the recipe's invariants. Material references are not
// checked for existence; dangling references are allowed.
func (r *Recipe) Validate() error {
	if string(r.ID) == "" {
		return fmt.Errorf("recipe id cannot be empty")
	}
	if r.Name == "" {
		return fmt.Errorf("recipe name cannot be empty")
	}
	if len(r.Ingredients) == 0 {
		return fmt.Errorf("recipe must have at least one ingredient")
	}
	for i, ing := range r.Ingredients {
		if string(ing.MaterialID) == "" {
			return fmt.Errorf("ingredient %d: material id cannot be empty", i+1)
		}
		if ing.AmountPerBatch.IsNegative() {
			return fmt.Errorf("ingredient %d: amount per batch cannot be negative, got %s", i+1, ing.AmountPerBatch)
		}
	}
	return nil
}

// Requirement is a scaled ingredient requirement for a candidate production
// run. Requirements are computed per recipe line; duplicate lines referencing
// the same material are not merged.
type Requirement struct {
	MaterialID MaterialID
	Quantity   decimal.Decimal
}
