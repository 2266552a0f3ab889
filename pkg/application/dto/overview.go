package dto

import (
	"github.com/shopspring/decimal"

	"github.com/nkaya/mixplan/pkg/domain/entities"
)

// StockLine is the finite-only stock view consumed by the narrative report
// collaborator. Infinite pseudo-resources are excluded.
type StockLine struct {
	Name         string          `json:"name"`
	Quantity     decimal.Decimal `json:"quantity"`
	Unit         entities.Unit   `json:"unit"`
	MinThreshold decimal.Decimal `json:"min_threshold"`
}

// StockOverview summarizes the ledger for the dashboard surface. The stock
// figures cover finite materials only; BatchCount is the number of recorded
// production runs and is filled in by callers with access to the history.
type StockOverview struct {
	TrackedStock    decimal.Decimal `json:"tracked_stock"`
	CriticalCount   int             `json:"critical_count"`
	ActiveMaterials int             `json:"active_materials"`
	BatchCount      int             `json:"batch_count"`
}
