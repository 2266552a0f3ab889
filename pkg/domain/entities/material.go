package entities

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// MaterialID uniquely identifies a raw material
type MaterialID string

// Unit represents a unit of measure for material quantities
type Unit string

const (
	Kilogram   Unit = "kg"
	Liter      Unit = "L"
	Gram       Unit = "gr"
	Milliliter Unit = "ml"
)

// ParseUnit converts a string into a known Unit
func ParseUnit(s string) (Unit, error) {
	switch Unit(s) {
	case Kilogram, Liter, Gram, Milliliter:
		return Unit(s), nil
	default:
		return "", fmt.Errorf("unknown unit of measure: %q", s)
	}
}

// StockStatus classifies a material's stock level against its threshold
type StockStatus int

const (
	StatusOK StockStatus = iota
	StatusLow
	StatusOut
)

// String method for StockStatus enum
func (s StockStatus) String() string {
	switch s {
	case StatusOK:
		return "OK"
	case StatusLow:
		return "Low"
	case StatusOut:
		return "Out"
	default:
		return "Unknown"
	}
}

// Material represents a stockable raw material, finite or flagged infinite
type Material struct {
	ID           MaterialID
	Name         string
	CurrentStock decimal.Decimal
	Unit         Unit
	MinThreshold decimal.Decimal
	IsInfinite   bool
	Color        string
}

// NewMaterial creates a validated Material
func NewMaterial(id MaterialID, name string, currentStock decimal.Decimal, unit Unit, minThreshold decimal.Decimal, isInfinite bool) (*Material, error) {
	m := &Material{
		ID:           id,
		Name:         name,
		CurrentStock: currentStock,
		Unit:         unit,
		MinThreshold: minThreshold,
		IsInfinite:   isInfinite,
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return m, nil
}

// Validate checks the material's invariants
func (m *Material) Validate() error {
	if string(m.ID) == "" {
		return fmt.Errorf("material id cannot be empty")
	}
	if m.Name == "" {
		return fmt.Errorf("material name cannot be empty")
	}
	if _, err := ParseUnit(string(m.Unit)); err != nil {
		return err
	}
	if m.CurrentStock.IsNegative() {
		return fmt.Errorf("current stock cannot be negative, got %s", m.CurrentStock)
	}
	if m.MinThreshold.IsNegative() {
		return fmt.Errorf("minimum threshold cannot be negative, got %s", m.MinThreshold)
	}
	return nil
}

// Status classifies the material's current stock level. Infinite materials
// are always OK; the stored quantity of an infinite material is meaningless.
func (m *Material) Status() StockStatus {
	if m.IsInfinite {
		return StatusOK
	}
	if m.CurrentStock.IsZero() {
		return StatusOut
	}
	if m.CurrentStock.LessThanOrEqual(m.MinThreshold) {
		return StatusLow
	}
	return StatusOK
}
