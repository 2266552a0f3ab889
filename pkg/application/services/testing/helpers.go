package testing

import (
	"github.com/shopspring/decimal"

	"github.com/nkaya/mixplan/pkg/domain/entities"
	"github.com/nkaya/mixplan/pkg/infrastructure/repositories/memory"
)

// BuildBrineTestData builds the brine production scenario used across the
// service tests: a finite salt stock, an infinite water supply, a critical
// acid stock, and one recipe consuming salt and water.
func BuildBrineTestData() (*memory.MaterialRepository, *memory.RecipeRepository, *memory.ProductionLogRepository) {
	materialRepo := memory.NewMaterialRepository()
	recipeRepo := memory.NewRecipeRepository()
	logRepo := memory.NewProductionLogRepository()

	materials := []*entities.Material{
		{
			ID:           "salt",
			Name:         "Salt",
			CurrentStock: decimal.NewFromInt(100),
			Unit:         entities.Kilogram,
			MinThreshold: decimal.NewFromInt(10),
		},
		{
			ID:           "water",
			Name:         "Purified Water",
			CurrentStock: decimal.NewFromInt(999),
			Unit:         entities.Liter,
			MinThreshold: decimal.Zero,
			IsInfinite:   true,
		},
		{
			ID:           "citric",
			Name:         "Citric Acid",
			CurrentStock: decimal.NewFromInt(5),
			Unit:         entities.Kilogram,
			MinThreshold: decimal.NewFromInt(10),
		},
	}
	for _, m := range materials {
		if err := materialRepo.SaveMaterial(m); err != nil {
			panic(err)
		}
	}

	brine := &entities.Recipe{
		ID:   "brine",
		Name: "Brine",
		Ingredients: []entities.Ingredient{
			{MaterialID: "salt", AmountPerBatch: decimal.NewFromInt(50)},
			{MaterialID: "water", AmountPerBatch: decimal.NewFromInt(950)},
		},
	}
	if err := recipeRepo.SaveRecipe(brine); err != nil {
		panic(err)
	}

	return materialRepo, recipeRepo, logRepo
}
