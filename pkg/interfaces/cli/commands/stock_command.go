package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/shopspring/decimal"

	"github.com/nkaya/mixplan/pkg/domain/entities"
	"github.com/nkaya/mixplan/pkg/interfaces/cli/output"
)

// StockConfig holds configuration for the stock command
type StockConfig struct {
	Format     string
	MaterialID string
	Delta      string
	Add        bool
	Name       string
	Unit       string
	Stock      string
	Threshold  string
	Infinite   bool
	Delete     string
}

// StockCommand lists materials and applies manual stock mutations
type StockCommand struct {
	env    *Environment
	config StockConfig
}

// NewStockCommand creates a stock command
func NewStockCommand(env *Environment, config StockConfig) *StockCommand {
	return &StockCommand{env: env, config: config}
}

// Execute runs the stock command
func (c *StockCommand) Execute(ctx context.Context) error {
	mutated := false

	if c.config.Add {
		if err := c.addMaterial(); err != nil {
			return err
		}
		mutated = true
	}

	if c.config.Delete != "" {
		if err := c.env.Ledger.DeleteMaterial(entities.MaterialID(c.config.Delete)); err != nil {
			return err
		}
		mutated = true
	}

	if c.config.Delta != "" {
		if c.config.MaterialID == "" {
			return fmt.Errorf("adjusting stock requires -material")
		}
		delta, err := decimal.NewFromString(c.config.Delta)
		if err != nil {
			return fmt.Errorf("invalid delta %q", c.config.Delta)
		}
		if err := c.env.Ledger.AdjustQuantity(entities.MaterialID(c.config.MaterialID), delta, "manual adjustment"); err != nil {
			return err
		}
		mutated = true
	}

	if mutated {
		if err := c.env.Persist(); err != nil {
			return err
		}
	}

	materials, err := c.env.Ledger.GetAllMaterials()
	if err != nil {
		return err
	}
	overview, err := c.env.Ledger.Overview()
	if err != nil {
		return err
	}
	logs, err := c.env.Logs.GetAllLogs()
	if err != nil {
		return err
	}
	overview.BatchCount = len(logs)
	return output.Materials(materials, overview, output.Config{Format: c.config.Format, Writer: os.Stdout})
}

func (c *StockCommand) addMaterial() error {
	stock := decimal.Zero
	if c.config.Stock != "" {
		var err error
		stock, err = decimal.NewFromString(c.config.Stock)
		if err != nil {
			return fmt.Errorf("invalid stock %q", c.config.Stock)
		}
	}
	threshold := decimal.Zero
	if c.config.Threshold != "" {
		var err error
		threshold, err = decimal.NewFromString(c.config.Threshold)
		if err != nil {
			return fmt.Errorf("invalid threshold %q", c.config.Threshold)
		}
	}
	unit, err := entities.ParseUnit(c.config.Unit)
	if err != nil {
		return err
	}

	id := c.config.MaterialID
	if id == "" {
		return fmt.Errorf("adding a material requires -material for its id")
	}
	material, err := entities.NewMaterial(entities.MaterialID(id), c.config.Name, stock, unit, threshold, c.config.Infinite)
	if err != nil {
		return err
	}
	return c.env.Ledger.SaveMaterial(material)
}
