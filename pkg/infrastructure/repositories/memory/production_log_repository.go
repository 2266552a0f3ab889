package memory

import (
	"fmt"

	"github.com/nkaya/mixplan/pkg/domain/entities"
	"github.com/nkaya/mixplan/pkg/domain/repositories"
)

// ProductionLogRepository provides in-memory append-only history storage.
// Entries are stored by value and returned as copies, so a stored entry can
// never be mutated through an escaped pointer.
type ProductionLogRepository struct {
	logs []entities.ProductionLog
}

// NewProductionLogRepository creates a new in-memory production log repository
func NewProductionLogRepository() *ProductionLogRepository {
	return &ProductionLogRepository{
		logs: []entities.ProductionLog{},
	}
}

// Verify interface compliance
var _ repositories.ProductionLogRepository = (*ProductionLogRepository)(nil)

// AppendLog appends an entry to the history
func (r *ProductionLogRepository) AppendLog(log *entities.ProductionLog) error {
	if log == nil {
		return fmt.Errorf("production log cannot be nil")
	}
	r.logs = append(r.logs, *copyLog(log))
	return nil
}

// GetAllLogs returns copies of all log entries in append order
func (r *ProductionLogRepository) GetAllLogs() ([]*entities.ProductionLog, error) {
	logs := make([]*entities.ProductionLog, 0, len(r.logs))
	for i := range r.logs {
		logs = append(logs, copyLog(&r.logs[i]))
	}
	return logs, nil
}

// RecentLogs returns up to n of the most recent entries, newest first
func (r *ProductionLogRepository) RecentLogs(n int) ([]*entities.ProductionLog, error) {
	if n < 0 {
		return nil, fmt.Errorf("recent log count cannot be negative, got %d", n)
	}
	if n > len(r.logs) {
		n = len(r.logs)
	}
	logs := make([]*entities.ProductionLog, 0, n)
	for i := len(r.logs) - 1; i >= len(r.logs)-n; i-- {
		logs = append(logs, copyLog(&r.logs[i]))
	}
	return logs, nil
}

// ReplaceLogs replaces the entire history, used by snapshot restore
func (r *ProductionLogRepository) ReplaceLogs(logs []*entities.ProductionLog) error {
	r.logs = make([]entities.ProductionLog, 0, len(logs))
	for _, log := range logs {
		if log == nil {
			return fmt.Errorf("production log cannot be nil")
		}
		r.logs = append(r.logs, *copyLog(log))
	}
	return nil
}

func copyLog(log *entities.ProductionLog) *entities.ProductionLog {
	consumed := make([]entities.ConsumedIngredient, len(log.Consumed))
	copy(consumed, log.Consumed)
	return &entities.ProductionLog{
		ID:             log.ID,
		RecipeID:       log.RecipeID,
		RecipeName:     log.RecipeName,
		AmountProduced: log.AmountProduced,
		Timestamp:      log.Timestamp,
		Consumed:       consumed,
	}
}
