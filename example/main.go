package main

import (
	"fmt"
	"os"

	"github.com/shopspring/decimal"

	"github.com/nkaya/mixplan/pkg/application/services/catalog"
	"github.com/nkaya/mixplan/pkg/application/services/ledger"
	"github.com/nkaya/mixplan/pkg/application/services/planning"
	"github.com/nkaya/mixplan/pkg/domain/entities"
	"github.com/nkaya/mixplan/pkg/infrastructure/events"
	"github.com/nkaya/mixplan/pkg/infrastructure/repositories/memory"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	materialRepo := memory.NewMaterialRepository()
	recipeRepo := memory.NewRecipeRepository()
	logRepo := memory.NewProductionLogRepository()
	eventStore := events.NewInMemoryEventStore()

	ledgerService := ledger.NewService(materialRepo, eventStore, nil)
	catalogService := catalog.NewService(recipeRepo, nil)
	planner := planning.NewPlanner(catalogService, ledgerService, logRepo, eventStore, nil)

	if err := seed(ledgerService, catalogService); err != nil {
		return err
	}

	// Preview a 2000-unit brine run against current stock.
	target := decimal.NewFromInt(2000)
	preview, err := planner.Plan("brine", target)
	if err != nil {
		return err
	}

	fmt.Printf("🧪 Planning %s × %s\n", preview.RecipeName, preview.TargetOutput)
	for _, line := range preview.Lines {
		available := line.Available.String()
		if line.Infinite {
			available = "unlimited"
		}
		fmt.Printf("  %-16s required %-8s available %s\n", line.MaterialName, line.Required, available)
	}
	fmt.Printf("Producible: %v\n\n", preview.CanProduce)

	log, err := planner.Confirm("brine", target)
	if err != nil {
		return err
	}
	fmt.Printf("✅ Committed run %s: %s × %s\n", log.ID, log.RecipeName, log.AmountProduced)

	salt, err := ledgerService.GetMaterial("salt")
	if err != nil {
		return err
	}
	fmt.Printf("Salt remaining: %s %s (status %s)\n", salt.CurrentStock, salt.Unit, salt.Status())
	return nil
}

func seed(ledgerService *ledger.Service, catalogService *catalog.Service) error {
	salt, err := entities.NewMaterial("salt", "Salt", decimal.NewFromInt(100), entities.Kilogram, decimal.NewFromInt(10), false)
	if err != nil {
		return err
	}
	water, err := entities.NewMaterial("water", "Purified Water", decimal.Zero, entities.Liter, decimal.Zero, true)
	if err != nil {
		return err
	}
	for _, m := range []*entities.Material{salt, water} {
		if err := ledgerService.SaveMaterial(m); err != nil {
			return err
		}
	}

	brine, err := entities.NewRecipe("brine", "Brine", []entities.Ingredient{
		{MaterialID: "salt", AmountPerBatch: decimal.NewFromInt(50)},
		{MaterialID: "water", AmountPerBatch: decimal.NewFromInt(950)},
	})
	if err != nil {
		return err
	}
	return catalogService.SaveRecipe(brine)
}
