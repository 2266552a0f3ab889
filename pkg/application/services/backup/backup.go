package backup

import (
	"fmt"

	"github.com/nkaya/mixplan/pkg/domain/entities"
	"github.com/nkaya/mixplan/pkg/domain/repositories"
	"github.com/nkaya/mixplan/pkg/infrastructure/events"
	"github.com/nkaya/mixplan/pkg/infrastructure/logging"
)

// Service assembles and restores full snapshots of the three collections.
// Restore is a wholesale overwrite, never a merge, and it is all-or-nothing:
// the payload is fully validated before any collection is touched.
type Service struct {
	materials repositories.MaterialRepository
	recipes   repositories.RecipeRepository
	logs      repositories.ProductionLogRepository
	events    events.EventStore
	logger    *logging.Logger
}

// NewService creates a backup service over the three repositories
func NewService(
	materials repositories.MaterialRepository,
	recipes repositories.RecipeRepository,
	logs repositories.ProductionLogRepository,
	eventStore events.EventStore,
	logger *logging.Logger,
) *Service {
	if eventStore == nil {
		eventStore = events.NewInMemoryEventStore()
	}
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Service{
		materials: materials,
		recipes:   recipes,
		logs:      logs,
		events:    eventStore,
		logger:    logger,
	}
}

// Snapshot captures the current state of all three collections
func (s *Service) Snapshot() (*entities.Snapshot, error) {
	materials, err := s.materials.GetAllMaterials()
	if err != nil {
		return nil, fmt.Errorf("snapshot materials: %w", err)
	}
	recipes, err := s.recipes.GetAllRecipes()
	if err != nil {
		return nil, fmt.Errorf("snapshot recipes: %w", err)
	}
	logs, err := s.logs.GetAllLogs()
	if err != nil {
		return nil, fmt.Errorf("snapshot logs: %w", err)
	}
	return &entities.Snapshot{
		Materials: materials,
		Recipes:   recipes,
		Logs:      logs,
	}, nil
}

// Restore replaces all three collections with the snapshot's contents.
// A payload missing any collection, or containing an invalid or duplicate
// entry, is rejected with the current state left untouched.
func (s *Service) Restore(snapshot *entities.Snapshot) error {
	if err := validate(snapshot); err != nil {
		return err
	}

	// Validation guarantees the replaces below cannot fail, so the three
	// collections can never end up mutually inconsistent.
	if err := s.materials.ReplaceMaterials(snapshot.Materials); err != nil {
		return fmt.Errorf("restore materials: %w", err)
	}
	if err := s.recipes.ReplaceRecipes(snapshot.Recipes); err != nil {
		return fmt.Errorf("restore recipes: %w", err)
	}
	if err := s.logs.ReplaceLogs(snapshot.Logs); err != nil {
		return fmt.Errorf("restore logs: %w", err)
	}

	if err := s.events.AppendEvent("snapshot", events.NewSnapshotRestoredEvent(snapshot)); err != nil {
		return err
	}
	s.logger.Info("snapshot restored",
		"materials", len(snapshot.Materials),
		"recipes", len(snapshot.Recipes),
		"logs", len(snapshot.Logs),
	)
	return nil
}

func validate(snapshot *entities.Snapshot) error {
	if snapshot == nil {
		return fmt.Errorf("snapshot cannot be nil")
	}
	if snapshot.Materials == nil {
		return fmt.Errorf("snapshot is missing the materials collection")
	}
	if snapshot.Recipes == nil {
		return fmt.Errorf("snapshot is missing the recipes collection")
	}
	if snapshot.Logs == nil {
		return fmt.Errorf("snapshot is missing the logs collection")
	}

	materialIDs := make(map[entities.MaterialID]bool, len(snapshot.Materials))
	for i, m := range snapshot.Materials {
		if m == nil {
			return fmt.Errorf("material %d cannot be nil", i+1)
		}
		if err := m.Validate(); err != nil {
			return fmt.Errorf("material %d: %w", i+1, err)
		}
		if materialIDs[m.ID] {
			return fmt.Errorf("duplicate material id %s", m.ID)
		}
		materialIDs[m.ID] = true
	}

	recipeIDs := make(map[entities.RecipeID]bool, len(snapshot.Recipes))
	for i, r := range snapshot.Recipes {
		if r == nil {
			return fmt.Errorf("recipe %d cannot be nil", i+1)
		}
		if err := r.Validate(); err != nil {
			return fmt.Errorf("recipe %d: %w", i+1, err)
		}
		if recipeIDs[r.ID] {
			return fmt.Errorf("duplicate recipe id %s", r.ID)
		}
		recipeIDs[r.ID] = true
	}

	for i, l := range snapshot.Logs {
		if l == nil {
			return fmt.Errorf("log %d cannot be nil", i+1)
		}
		if err := l.Validate(); err != nil {
			return fmt.Errorf("log %d: %w", i+1, err)
		}
	}
	return nil
}
