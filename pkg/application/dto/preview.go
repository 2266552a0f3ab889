package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/nkaya/mixplan/pkg/domain/entities"
)

// RequirementLine is the per-ingredient breakdown of a production preview.
// One line per recipe line; duplicate materials are not merged. A line whose
// material no longer exists has Missing set and is never available.
type RequirementLine struct {
	MaterialID   entities.MaterialID `json:"material_id"`
	MaterialName string              `json:"material_name"`
	Unit         entities.Unit       `json:"unit"`
	Required     decimal.Decimal     `json:"required"`
	Available    decimal.Decimal     `json:"available"`
	Infinite     bool                `json:"infinite"`
	Missing      bool                `json:"missing"`
	IsAvailable  bool                `json:"is_available"`
}

// PreviewResult is the side-effect-free outcome of planning a production
// run. It may be recomputed as often as the caller likes; nothing is
// consumed until the run is confirmed.
type PreviewResult struct {
	RecipeID     entities.RecipeID `json:"recipe_id"`
	RecipeName   string            `json:"recipe_name"`
	TargetOutput decimal.Decimal   `json:"target_output"`
	Lines        []RequirementLine `json:"lines"`
	CanProduce   bool              `json:"can_produce"`
	ComputedAt   time.Time         `json:"computed_at"`
}
