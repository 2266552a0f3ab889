package commands

import (
	"fmt"

	"github.com/nkaya/mixplan/pkg/application/services/backup"
	"github.com/nkaya/mixplan/pkg/application/services/catalog"
	"github.com/nkaya/mixplan/pkg/application/services/ledger"
	"github.com/nkaya/mixplan/pkg/application/services/planning"
	"github.com/nkaya/mixplan/pkg/infrastructure/config"
	"github.com/nkaya/mixplan/pkg/infrastructure/events"
	"github.com/nkaya/mixplan/pkg/infrastructure/logging"
	"github.com/nkaya/mixplan/pkg/infrastructure/repositories/memory"
	"github.com/nkaya/mixplan/pkg/infrastructure/snapshot"
)

// Environment is the explicit state container every command operates on:
// the three collections behind their repositories, the services that funnel
// all mutation, and the file store the state was loaded from.
type Environment struct {
	Config *config.Config
	Logger *logging.Logger
	Store  *snapshot.FileStore

	Materials *memory.MaterialRepository
	Recipes   *memory.RecipeRepository
	Logs      *memory.ProductionLogRepository
	Events    *events.InMemoryEventStore

	Ledger  *ledger.Service
	Catalog *catalog.Service
	Planner *planning.Planner
	Backup  *backup.Service
}

// NewEnvironment loads the persisted snapshot and wires the services
func NewEnvironment(cfg *config.Config, logger *logging.Logger) (*Environment, error) {
	store := snapshot.NewFileStore(cfg.DataFile)
	snap, err := store.Load()
	if err != nil {
		return nil, fmt.Errorf("load workspace: %w", err)
	}

	materials := memory.NewMaterialRepository()
	recipes := memory.NewRecipeRepository()
	logs := memory.NewProductionLogRepository()
	eventStore := events.NewInMemoryEventStore()

	backupService := backup.NewService(materials, recipes, logs, eventStore, logger)
	if err := backupService.Restore(snap); err != nil {
		return nil, fmt.Errorf("load workspace: %w", err)
	}

	ledgerService := ledger.NewService(materials, eventStore, logger)
	catalogService := catalog.NewService(recipes, logger)
	planner := planning.NewPlanner(catalogService, ledgerService, logs, eventStore, logger)

	return &Environment{
		Config:    cfg,
		Logger:    logger,
		Store:     store,
		Materials: materials,
		Recipes:   recipes,
		Logs:      logs,
		Events:    eventStore,
		Ledger:    ledgerService,
		Catalog:   catalogService,
		Planner:   planner,
		Backup:    backupService,
	}, nil
}

// Persist writes the current state back to the data file
func (e *Environment) Persist() error {
	snap, err := e.Backup.Snapshot()
	if err != nil {
		return err
	}
	return e.Store.Save(snap)
}
