package snapshot

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/nkaya/mixplan/pkg/domain/entities"
)

// The portable snapshot format is a YAML document with three top-level
// collections. Quantities are encoded as strings so decimal values
// round-trip exactly. A payload missing any of the three collections is
// rejected outright; import replaces state wholesale and a partial payload
// would silently lose data.

type document struct {
	Materials *[]materialDoc `yaml:"materials"`
	Recipes   *[]recipeDoc   `yaml:"recipes"`
	Logs      *[]logDoc      `yaml:"logs"`
}

type materialDoc struct {
	ID           string `yaml:"id"`
	Name         string `yaml:"name"`
	CurrentStock string `yaml:"current_stock"`
	Unit         string `yaml:"unit"`
	MinThreshold string `yaml:"min_threshold"`
	IsInfinite   bool   `yaml:"is_infinite"`
	Color        string `yaml:"color,omitempty"`
}

type recipeDoc struct {
	ID          string          `yaml:"id"`
	Name        string          `yaml:"name"`
	Ingredients []ingredientDoc `yaml:"ingredients"`
}

type ingredientDoc struct {
	MaterialID     string `yaml:"material_id"`
	AmountPerBatch string `yaml:"amount_per_batch"`
}

type logDoc struct {
	ID             string        `yaml:"id"`
	RecipeID       string        `yaml:"recipe_id"`
	RecipeName     string        `yaml:"recipe_name"`
	AmountProduced string        `yaml:"amount_produced"`
	Timestamp      time.Time     `yaml:"timestamp"`
	Consumed       []consumedDoc `yaml:"consumed"`
}

type consumedDoc struct {
	MaterialName string `yaml:"material_name"`
	Amount       string `yaml:"amount"`
	Unit         string `yaml:"unit"`
}

// Marshal serializes a snapshot into the portable YAML format
func Marshal(snapshot *entities.Snapshot) ([]byte, error) {
	if snapshot == nil {
		return nil, fmt.Errorf("snapshot cannot be nil")
	}

	materials := make([]materialDoc, 0, len(snapshot.Materials))
	for _, m := range snapshot.Materials {
		materials = append(materials, materialDoc{
			ID:           string(m.ID),
			Name:         m.Name,
			CurrentStock: m.CurrentStock.String(),
			Unit:         string(m.Unit),
			MinThreshold: m.MinThreshold.String(),
			IsInfinite:   m.IsInfinite,
			Color:        m.Color,
		})
	}

	recipes := make([]recipeDoc, 0, len(snapshot.Recipes))
	for _, r := range snapshot.Recipes {
		ingredients := make([]ingredientDoc, 0, len(r.Ingredients))
		for _, ing := range r.Ingredients {
			ingredients = append(ingredients, ingredientDoc{
				MaterialID:     string(ing.MaterialID),
				AmountPerBatch: ing.AmountPerBatch.String(),
			})
		}
		recipes = append(recipes, recipeDoc{
			ID:          string(r.ID),
			Name:        r.Name,
			Ingredients: ingredients,
		})
	}

	logs := make([]logDoc, 0, len(snapshot.Logs))
	for _, l := range snapshot.Logs {
		consumed := make([]consumedDoc, 0, len(l.Consumed))
		for _, c := range l.Consumed {
			consumed = append(consumed, consumedDoc{
				MaterialName: c.MaterialName,
				Amount:       c.Amount.String(),
				Unit:         string(c.Unit),
			})
		}
		logs = append(logs, logDoc{
			ID:             string(l.ID),
			RecipeID:       string(l.RecipeID),
			RecipeName:     l.RecipeName,
			AmountProduced: l.AmountProduced.String(),
			Timestamp:      l.Timestamp,
			Consumed:       consumed,
		})
	}

	doc := document{
		Materials: &materials,
		Recipes:   &recipes,
		Logs:      &logs,
	}
	return yaml.Marshal(&doc)
}

// Unmarshal parses the portable YAML format into a snapshot. All three
// top-level collections must be present, and every entry must pass entity
// validation; any failure rejects the whole payload.
func Unmarshal(data []byte) (*entities.Snapshot, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse snapshot: %w", err)
	}

	if doc.Materials == nil {
		return nil, fmt.Errorf("snapshot is missing the materials collection")
	}
	if doc.Recipes == nil {
		return nil, fmt.Errorf("snapshot is missing the recipes collection")
	}
	if doc.Logs == nil {
		return nil, fmt.Errorf("snapshot is missing the logs collection")
	}

	snapshot := &entities.Snapshot{
		Materials: make([]*entities.Material, 0, len(*doc.Materials)),
		Recipes:   make([]*entities.Recipe, 0, len(*doc.Recipes)),
		Logs:      make([]*entities.ProductionLog, 0, len(*doc.Logs)),
	}

	for i, m := range *doc.Materials {
		stock, err := decimal.NewFromString(m.CurrentStock)
		if err != nil {
			return nil, fmt.Errorf("material %d: invalid current stock %q", i+1, m.CurrentStock)
		}
		threshold, err := decimal.NewFromString(m.MinThreshold)
		if err != nil {
			return nil, fmt.Errorf("material %d: invalid minimum threshold %q", i+1, m.MinThreshold)
		}
		material, err := entities.NewMaterial(
			entities.MaterialID(m.ID), m.Name, stock, entities.Unit(m.Unit), threshold, m.IsInfinite,
		)
		if err != nil {
			return nil, fmt.Errorf("material %d: %w", i+1, err)
		}
		material.Color = m.Color
		snapshot.Materials = append(snapshot.Materials, material)
	}

	for i, r := range *doc.Recipes {
		ingredients := make([]entities.Ingredient, 0, len(r.Ingredients))
		for j, ing := range r.Ingredients {
			amount, err := decimal.NewFromString(ing.AmountPerBatch)
			if err != nil {
				return nil, fmt.Errorf("recipe %d ingredient %d: invalid amount %q", i+1, j+1, ing.AmountPerBatch)
			}
			ingredients = append(ingredients, entities.Ingredient{
				MaterialID:     entities.MaterialID(ing.MaterialID),
				AmountPerBatch: amount,
			})
		}
		recipe, err := entities.NewRecipe(entities.RecipeID(r.ID), r.Name, ingredients)
		if err != nil {
			return nil, fmt.Errorf("recipe %d: %w", i+1, err)
		}
		snapshot.Recipes = append(snapshot.Recipes, recipe)
	}

	for i, l := range *doc.Logs {
		amount, err := decimal.NewFromString(l.AmountProduced)
		if err != nil {
			return nil, fmt.Errorf("log %d: invalid amount produced %q", i+1, l.AmountProduced)
		}
		consumed := make([]entities.ConsumedIngredient, 0, len(l.Consumed))
		for j, c := range l.Consumed {
			qty, err := decimal.NewFromString(c.Amount)
			if err != nil {
				return nil, fmt.Errorf("log %d consumed %d: invalid amount %q", i+1, j+1, c.Amount)
			}
			consumed = append(consumed, entities.ConsumedIngredient{
				MaterialName: c.MaterialName,
				Amount:       qty,
				Unit:         entities.Unit(c.Unit),
			})
		}
		log, err := entities.NewProductionLog(
			entities.ProductionLogID(l.ID), entities.RecipeID(l.RecipeID), l.RecipeName, amount, l.Timestamp, consumed,
		)
		if err != nil {
			return nil, fmt.Errorf("log %d: %w", i+1, err)
		}
		snapshot.Logs = append(snapshot.Logs, log)
	}

	return snapshot, nil
}
