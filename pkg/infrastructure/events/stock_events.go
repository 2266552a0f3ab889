package events

import (
	"github.com/shopspring/decimal"

	"github.com/nkaya/mixplan/pkg/domain/entities"
)

const (
	StockAdjustedEvent       = "stock.adjusted"
	MaterialSavedEvent       = "material.saved"
	MaterialDeletedEvent     = "material.deleted"
	ProductionCommittedEvent = "production.committed"
	SnapshotRestoredEvent    = "snapshot.restored"
)

// StockAdjusted records one quantity adjustment against a material. For
// infinite materials Applied is false and ResultingStock repeats the stored
// quantity; the adjustment is audited but never applied.
type StockAdjusted struct {
	MaterialID     entities.MaterialID `json:"material_id"`
	MaterialName   string              `json:"material_name"`
	Delta          decimal.Decimal     `json:"delta"`
	ResultingStock decimal.Decimal     `json:"resulting_stock"`
	Applied        bool                `json:"applied"`
	Reason         string              `json:"reason"`
}

type MaterialSaved struct {
	Material entities.Material `json:"material"`
}

type MaterialDeleted struct {
	MaterialID entities.MaterialID `json:"material_id"`
}

// ProductionCommitted records one confirmed production transaction
type ProductionCommitted struct {
	LogID          entities.ProductionLogID `json:"log_id"`
	RecipeID       entities.RecipeID        `json:"recipe_id"`
	RecipeName     string                   `json:"recipe_name"`
	AmountProduced decimal.Decimal          `json:"amount_produced"`
}

// SnapshotRestored records a wholesale state replacement via import
type SnapshotRestored struct {
	Materials int `json:"materials"`
	Recipes   int `json:"recipes"`
	Logs      int `json:"logs"`
}

func NewStockAdjustedEvent(material *entities.Material, delta decimal.Decimal, applied bool, reason string) Event {
	return NewEvent(StockAdjustedEvent, string(material.ID), StockAdjusted{
		MaterialID:     material.ID,
		MaterialName:   material.Name,
		Delta:          delta,
		ResultingStock: material.CurrentStock,
		Applied:        applied,
		Reason:         reason,
	})
}

func NewMaterialSavedEvent(material *entities.Material) Event {
	return NewEvent(MaterialSavedEvent, string(material.ID), MaterialSaved{Material: *material})
}

func NewMaterialDeletedEvent(id entities.MaterialID) Event {
	return NewEvent(MaterialDeletedEvent, string(id), MaterialDeleted{MaterialID: id})
}

func NewProductionCommittedEvent(log *entities.ProductionLog) Event {
	return NewEvent(ProductionCommittedEvent, string(log.RecipeID), ProductionCommitted{
		LogID:          log.ID,
		RecipeID:       log.RecipeID,
		RecipeName:     log.RecipeName,
		AmountProduced: log.AmountProduced,
	})
}

func NewSnapshotRestoredEvent(snapshot *entities.Snapshot) Event {
	return NewEvent(SnapshotRestoredEvent, "snapshot", SnapshotRestored{
		Materials: len(snapshot.Materials),
		Recipes:   len(snapshot.Recipes),
		Logs:      len(snapshot.Logs),
	})
}
