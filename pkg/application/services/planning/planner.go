package planning

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/nkaya/mixplan/pkg/application/dto"
	"github.com/nkaya/mixplan/pkg/application/services/catalog"
	"github.com/nkaya/mixplan/pkg/application/services/ledger"
	"github.com/nkaya/mixplan/pkg/domain/entities"
	"github.com/nkaya/mixplan/pkg/domain/repositories"
	"github.com/nkaya/mixplan/pkg/infrastructure/events"
	"github.com/nkaya/mixplan/pkg/infrastructure/logging"
)

// State represents the planner's position in the plan/confirm flow
type State int

const (
	Idle State = iota
	Previewing
	Committed
	Cancelled
)

// String method for State enum
func (s State) String() string {
	switch s {
	case Idle:
		return "Idle"
	case Previewing:
		return "Previewing"
	case Committed:
		return "Committed"
	case Cancelled:
		return "Cancelled"
	default:
		return "Unknown"
	}
}

var (
	// ErrNoPreview is returned when Confirm is called without a current
	// producible preview.
	ErrNoPreview = errors.New("no producible preview to confirm")

	// ErrNotProducible is returned when the freshly recomputed requirements
	// can no longer be satisfied at confirm time.
	ErrNotProducible = errors.New("production requirements can no longer be satisfied")
)

// Planner orchestrates the two-phase production flow: a pure preview of
// scaled requirements against current stock, then a single synchronous
// commit that decrements finite materials and appends one history entry.
// Nothing is persisted between phases; an abandoned preview leaves the
// ledger untouched.
type Planner struct {
	catalog *catalog.Service
	ledger  *ledger.Service
	history repositories.ProductionLogRepository
	events  events.EventStore
	logger  *logging.Logger

	state   State
	preview *dto.PreviewResult
}

// NewPlanner creates a production planner in the Idle state
func NewPlanner(
	catalogService *catalog.Service,
	ledgerService *ledger.Service,
	history repositories.ProductionLogRepository,
	eventStore events.EventStore,
	logger *logging.Logger,
) *Planner {
	if eventStore == nil {
		eventStore = events.NewInMemoryEventStore()
	}
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Planner{
		catalog: catalogService,
		ledger:  ledgerService,
		history: history,
		events:  eventStore,
		logger:  logger,
		state:   Idle,
	}
}

// State returns the planner's current state
func (p *Planner) State() State {
	return p.state
}

// Plan computes a side-effect-free preview of producing targetOutput units
// of the given recipe. It may be called repeatedly with different targets;
// each call replaces the current preview and moves the planner to
// Previewing. A deleted recipe yields an error wrapping
// repositories.ErrNotFound and leaves the planner's state unchanged.
func (p *Planner) Plan(recipeID entities.RecipeID, targetOutput decimal.Decimal) (*dto.PreviewResult, error) {
	recipe, err := p.catalog.GetRecipe(recipeID)
	if err != nil {
		return nil, fmt.Errorf("plan production: %w", err)
	}

	preview := p.computePreview(recipe, targetOutput)
	p.preview = preview
	p.state = Previewing
	return preview, nil
}

// Confirm commits the previewed production run. The recipe is re-resolved
// and the requirements recomputed fresh; a stale preview is never trusted.
// All finite decrements apply before the log entry is appended, and the
// availability gate guarantees none of them can go negative. On any decline
// the ledger and history are untouched and the planner moves to Cancelled.
func (p *Planner) Confirm(recipeID entities.RecipeID, targetOutput decimal.Decimal) (*entities.ProductionLog, error) {
	if p.state != Previewing || p.preview == nil || !p.preview.CanProduce {
		return nil, ErrNoPreview
	}

	recipe, err := p.catalog.GetRecipe(recipeID)
	if err != nil {
		// Recipe deleted while the preview was open. Benign in a
		// single-user flow, but the commit must not partially apply.
		p.abort()
		return nil, fmt.Errorf("confirm production: %w", err)
	}

	fresh := p.computePreview(recipe, targetOutput)
	if !fresh.CanProduce {
		p.abort()
		return nil, ErrNotProducible
	}

	for _, line := range fresh.Lines {
		if line.Infinite {
			continue
		}
		reason := fmt.Sprintf("production of %s", recipe.Name)
		if err := p.ledger.AdjustQuantity(line.MaterialID, line.Required.Neg(), reason); err != nil {
			return nil, fmt.Errorf("consume %s: %w", line.MaterialName, err)
		}
	}

	consumed := make([]entities.ConsumedIngredient, 0, len(fresh.Lines))
	for _, line := range fresh.Lines {
		// Infinite materials are recorded too: the log captures formula
		// usage, not stock impact.
		consumed = append(consumed, entities.ConsumedIngredient{
			MaterialName: line.MaterialName,
			Amount:       line.Required,
			Unit:         line.Unit,
		})
	}

	log, err := entities.NewProductionLog(
		entities.ProductionLogID(uuid.NewString()),
		recipe.ID,
		recipe.Name,
		targetOutput,
		time.Now(),
		consumed,
	)
	if err != nil {
		return nil, fmt.Errorf("build production log: %w", err)
	}
	if err := p.history.AppendLog(log); err != nil {
		return nil, fmt.Errorf("append production log: %w", err)
	}
	if err := p.events.AppendEvent(string(recipe.ID), events.NewProductionCommittedEvent(log)); err != nil {
		return nil, fmt.Errorf("record production event: %w", err)
	}

	p.logger.Info("production committed",
		"recipe_id", recipe.ID,
		"recipe_name", recipe.Name,
		"amount", targetOutput.String(),
		"log_id", log.ID,
	)

	p.preview = nil
	p.state = Committed
	return log, nil
}

// Cancel discards the current preview without touching the ledger
func (p *Planner) Cancel() {
	p.abort()
}

func (p *Planner) abort() {
	p.preview = nil
	p.state = Cancelled
}

// computePreview scales the recipe to the target output and checks every
// line against the ledger. Unknown materials are reported as such and
// treated as unavailable. A target of zero or less is never producible.
func (p *Planner) computePreview(recipe *entities.Recipe, targetOutput decimal.Decimal) *dto.PreviewResult {
	requirements := p.catalog.ScaleRequirements(recipe, targetOutput)

	lines := make([]dto.RequirementLine, 0, len(requirements))
	canProduce := targetOutput.IsPositive()

	for _, req := range requirements {
		material, err := p.ledger.GetMaterial(req.MaterialID)
		if err != nil {
			lines = append(lines, dto.RequirementLine{
				MaterialID:   req.MaterialID,
				MaterialName: "unknown material",
				Required:     req.Quantity,
				Missing:      true,
				IsAvailable:  false,
			})
			canProduce = false
			continue
		}

		available := p.ledger.IsAvailable(req.MaterialID, req.Quantity)
		lines = append(lines, dto.RequirementLine{
			MaterialID:   material.ID,
			MaterialName: material.Name,
			Unit:         material.Unit,
			Required:     req.Quantity,
			Available:    material.CurrentStock,
			Infinite:     material.IsInfinite,
			IsAvailable:  available,
		})
		if !available {
			canProduce = false
		}
	}

	return &dto.PreviewResult{
		RecipeID:     recipe.ID,
		RecipeName:   recipe.Name,
		TargetOutput: targetOutput,
		Lines:        lines,
		CanProduce:   canProduce,
		ComputedAt:   time.Now(),
	}
}
