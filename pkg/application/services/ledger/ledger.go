package ledger

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/nkaya/mixplan/pkg/application/dto"
	"github.com/nkaya/mixplan/pkg/domain/entities"
	"github.com/nkaya/mixplan/pkg/domain/repositories"
	"github.com/nkaya/mixplan/pkg/infrastructure/events"
	"github.com/nkaya/mixplan/pkg/infrastructure/logging"
)

// Service is the stock ledger: the single authority for reading and
// mutating material quantities. All quantity arithmetic is decimal, so
// availability comparisons at exact threshold values are exact.
type Service struct {
	materials repositories.MaterialRepository
	events    events.EventStore
	logger    *logging.Logger
}

// NewService creates a stock ledger over the given material repository
func NewService(materials repositories.MaterialRepository, eventStore events.EventStore, logger *logging.Logger) *Service {
	if eventStore == nil {
		eventStore = events.NewInMemoryEventStore()
	}
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Service{
		materials: materials,
		events:    eventStore,
		logger:    logger,
	}
}

// GetMaterial returns the material with the given id. A stale id yields an
// error wrapping repositories.ErrNotFound, which callers treat as "unknown
// material" rather than a failure.
func (s *Service) GetMaterial(id entities.MaterialID) (*entities.Material, error) {
	return s.materials.GetMaterial(id)
}

// GetAllMaterials returns all materials in insertion order
func (s *Service) GetAllMaterials() ([]*entities.Material, error) {
	return s.materials.GetAllMaterials()
}

// SaveMaterial validates and stores a material (insert or update)
func (s *Service) SaveMaterial(material *entities.Material) error {
	if material == nil {
		return fmt.Errorf("material cannot be nil")
	}
	if err := material.Validate(); err != nil {
		return err
	}
	if err := s.materials.SaveMaterial(material); err != nil {
		return err
	}
	if err := s.events.AppendEvent(string(material.ID), events.NewMaterialSavedEvent(material)); err != nil {
		return err
	}
	s.logger.Debug("material saved", "material_id", material.ID, "name", material.Name)
	return nil
}

// DeleteMaterial removes a material. Recipes referencing it keep their
// dangling lines and report the material as unknown from then on.
func (s *Service) DeleteMaterial(id entities.MaterialID) error {
	if err := s.materials.DeleteMaterial(id); err != nil {
		return err
	}
	if err := s.events.AppendEvent(string(id), events.NewMaterialDeletedEvent(id)); err != nil {
		return err
	}
	s.logger.Debug("material deleted", "material_id", id)
	return nil
}

// AdjustQuantity applies delta to a finite material's quantity, clamped so
// the result is never negative. Infinite materials are audited but never
// mutated. An unknown id is a silent no-op: manual stock correction must
// never fail on a stale reference.
func (s *Service) AdjustQuantity(id entities.MaterialID, delta decimal.Decimal, reason string) error {
	material, err := s.materials.GetMaterial(id)
	if err != nil {
		s.logger.Debug("adjust skipped, material not found", "material_id", id)
		return nil
	}

	if material.IsInfinite {
		s.logger.Debug("adjust audited only, material is infinite", "material_id", id, "delta", delta.String())
		return s.events.AppendEvent(string(id), events.NewStockAdjustedEvent(material, delta, false, reason))
	}

	newStock := material.CurrentStock.Add(delta)
	if newStock.IsNegative() {
		newStock = decimal.Zero
	}
	material.CurrentStock = newStock
	if err := s.materials.SaveMaterial(material); err != nil {
		return err
	}
	return s.events.AppendEvent(string(id), events.NewStockAdjustedEvent(material, delta, true, reason))
}

// IsAvailable reports whether the material can satisfy the required
// quantity: unconditionally for infinite materials, by non-strict >= for
// finite ones. Unknown materials are never available.
func (s *Service) IsAvailable(id entities.MaterialID, required decimal.Decimal) bool {
	material, err := s.materials.GetMaterial(id)
	if err != nil {
		return false
	}
	if material.IsInfinite {
		return true
	}
	return material.CurrentStock.GreaterThanOrEqual(required)
}

// FiniteStockView returns the finite-only stock view consumed by the
// narrative report collaborator.
func (s *Service) FiniteStockView() ([]dto.StockLine, error) {
	materials, err := s.materials.GetAllMaterials()
	if err != nil {
		return nil, err
	}
	lines := make([]dto.StockLine, 0, len(materials))
	for _, m := range materials {
		if m.IsInfinite {
			continue
		}
		lines = append(lines, dto.StockLine{
			Name:         m.Name,
			Quantity:     m.CurrentStock,
			Unit:         m.Unit,
			MinThreshold: m.MinThreshold,
		})
	}
	return lines, nil
}

// Overview summarizes the finite stock for the dashboard surface
func (s *Service) Overview() (*dto.StockOverview, error) {
	materials, err := s.materials.GetAllMaterials()
	if err != nil {
		return nil, err
	}
	overview := &dto.StockOverview{TrackedStock: decimal.Zero}
	for _, m := range materials {
		if m.IsInfinite {
			continue
		}
		overview.ActiveMaterials++
		overview.TrackedStock = overview.TrackedStock.Add(m.CurrentStock)
		if m.CurrentStock.LessThanOrEqual(m.MinThreshold) {
			overview.CriticalCount++
		}
	}
	return overview, nil
}
