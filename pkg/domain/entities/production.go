package entities

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// ProductionLogID uniquely identifies a production log entry
type ProductionLogID string

// ConsumedIngredient is a point-in-time snapshot of one ingredient consumed
// by a production run. It captures the material's name and unit at commit
// time rather than referencing the live material, so history stays accurate
// after catalog changes.
type ConsumedIngredient struct {
	MaterialName string
	Amount       decimal.Decimal
	Unit         Unit
}

// ProductionLog is an immutable record of one confirmed production run.
// Infinite materials appear in the consumed list with their computed
// quantity even though their stock was never decremented; the log records
// formula usage, not stock impact.
type ProductionLog struct {
	ID             ProductionLogID
	RecipeID       RecipeID
	RecipeName     string
	AmountProduced decimal.Decimal
	Timestamp      time.Time
	Consumed       []ConsumedIngredient
}

// NewProductionLog creates a validated ProductionLog
func NewProductionLog(id ProductionLogID, recipeID RecipeID, recipeName string, amountProduced decimal.Decimal, timestamp time.Time, consumed []ConsumedIngredient) (*ProductionLog, error) {
	l := &ProductionLog{
		ID:             id,
		RecipeID:       recipeID,
		RecipeName:     recipeName,
		AmountProduced: amountProduced,
		Timestamp:      timestamp,
		Consumed:       consumed,
	}
	if err := l.Validate(); err != nil {
		return nil, err
	}
	return l, nil
}

// Validate checks the log entry's invariants
func (l *ProductionLog) Validate() error {
	if string(l.ID) == "" {
		return fmt.Errorf("production log id cannot be empty")
	}
	if string(l.RecipeID) == "" {
		return fmt.Errorf("recipe id cannot be empty")
	}
	if l.RecipeName == "" {
		return fmt.Errorf("recipe name cannot be empty")
	}
	if !l.AmountProduced.IsPositive() {
		return fmt.Errorf("amount produced must be positive, got %s", l.AmountProduced)
	}
	return nil
}
