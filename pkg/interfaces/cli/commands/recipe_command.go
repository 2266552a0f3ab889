package commands

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/nkaya/mixplan/pkg/domain/entities"
	"github.com/nkaya/mixplan/pkg/interfaces/cli/output"
)

// RecipeConfig holds configuration for the recipe command
type RecipeConfig struct {
	Format      string
	Add         bool
	RecipeID    string
	Name        string
	Ingredients string
	Delete      string
}

// RecipeCommand lists the recipe catalog and deletes recipes
type RecipeCommand struct {
	env    *Environment
	config RecipeConfig
}

// NewRecipeCommand creates a recipe command
func NewRecipeCommand(env *Environment, config RecipeConfig) *RecipeCommand {
	return &RecipeCommand{env: env, config: config}
}

// Execute runs the recipe command
func (c *RecipeCommand) Execute(ctx context.Context) error {
	mutated := false

	if c.config.Add {
		if err := c.addRecipe(); err != nil {
			return err
		}
		mutated = true
	}

	if c.config.Delete != "" {
		if err := c.env.Catalog.DeleteRecipe(entities.RecipeID(c.config.Delete)); err != nil {
			return err
		}
		mutated = true
	}

	if mutated {
		if err := c.env.Persist(); err != nil {
			return err
		}
	}

	recipes, err := c.env.Catalog.GetAllRecipes()
	if err != nil {
		return err
	}
	return output.Recipes(recipes, c.env.Ledger.GetMaterial, output.Config{
		Format: c.config.Format,
		Writer: os.Stdout,
	})
}

// addRecipe parses the "materialID:amount,materialID:amount" ingredient list
// and saves the recipe. Amounts are per reference batch.
func (c *RecipeCommand) addRecipe() error {
	if c.config.RecipeID == "" {
		return fmt.Errorf("adding a recipe requires -recipe for its id")
	}
	if c.config.Ingredients == "" {
		return fmt.Errorf("adding a recipe requires -ingredients")
	}

	var ingredients []entities.Ingredient
	for _, part := range strings.Split(c.config.Ingredients, ",") {
		id, amount, ok := strings.Cut(strings.TrimSpace(part), ":")
		if !ok {
			return fmt.Errorf("invalid ingredient %q, expected materialID:amount", part)
		}
		qty, err := decimal.NewFromString(amount)
		if err != nil {
			return fmt.Errorf("invalid ingredient amount %q", amount)
		}
		ingredients = append(ingredients, entities.Ingredient{
			MaterialID:     entities.MaterialID(id),
			AmountPerBatch: qty,
		})
	}

	recipe, err := entities.NewRecipe(entities.RecipeID(c.config.RecipeID), c.config.Name, ingredients)
	if err != nil {
		return err
	}
	return c.env.Catalog.SaveRecipe(recipe)
}
