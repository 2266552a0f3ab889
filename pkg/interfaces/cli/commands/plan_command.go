package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/shopspring/decimal"

	"github.com/nkaya/mixplan/pkg/domain/entities"
	"github.com/nkaya/mixplan/pkg/interfaces/cli/output"
)

// PlanConfig holds configuration for the plan command
type PlanConfig struct {
	Format   string
	RecipeID string
	Target   string
	Confirm  bool
}

// PlanCommand previews a production run and optionally commits it
type PlanCommand struct {
	env    *Environment
	config PlanConfig
}

// NewPlanCommand creates a plan command
func NewPlanCommand(env *Environment, config PlanConfig) *PlanCommand {
	return &PlanCommand{env: env, config: config}
}

// Execute runs the plan command
func (c *PlanCommand) Execute(ctx context.Context) error {
	if c.config.RecipeID == "" {
		return fmt.Errorf("planning requires -recipe")
	}
	target, err := decimal.NewFromString(c.config.Target)
	if err != nil {
		return fmt.Errorf("invalid target output %q", c.config.Target)
	}

	recipeID := entities.RecipeID(c.config.RecipeID)
	preview, err := c.env.Planner.Plan(recipeID, target)
	if err != nil {
		return err
	}

	outConfig := output.Config{Format: c.config.Format, Writer: os.Stdout}
	if err := output.Preview(preview, outConfig); err != nil {
		return err
	}

	if !c.config.Confirm {
		return nil
	}
	if !preview.CanProduce {
		return fmt.Errorf("cannot confirm: production is not possible with current stock")
	}

	log, err := c.env.Planner.Confirm(recipeID, target)
	if err != nil {
		return err
	}
	if err := c.env.Persist(); err != nil {
		return err
	}
	return output.CommittedLog(log, outConfig)
}
