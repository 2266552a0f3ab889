package repositories

import "github.com/nkaya/mixplan/pkg/domain/entities"

// ProductionLogRepository provides access to the append-only production
// history. Entries are never mutated or individually deleted; the only bulk
// operation is the wholesale replace performed by a snapshot restore.
type ProductionLogRepository interface {
	AppendLog(log *entities.ProductionLog) error
	GetAllLogs() ([]*entities.ProductionLog, error)
	RecentLogs(n int) ([]*entities.ProductionLog, error)
	ReplaceLogs(logs []*entities.ProductionLog) error
}
