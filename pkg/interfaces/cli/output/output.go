package output

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/nkaya/mixplan/pkg/application/dto"
	"github.com/nkaya/mixplan/pkg/domain/entities"
)

// Config holds configuration for output generation
type Config struct {
	Format string
	Writer io.Writer
}

// Materials renders the material list with stock status
func Materials(materials []*entities.Material, overview *dto.StockOverview, config Config) error {
	switch config.Format {
	case "text":
		return materialsText(materials, overview, config.Writer)
	case "json":
		return asJSON(struct {
			Materials []*entities.Material `json:"materials"`
			Overview  *dto.StockOverview   `json:"overview"`
		}{materials, overview}, config.Writer)
	default:
		return fmt.Errorf("unsupported output format: %s", config.Format)
	}
}

func materialsText(materials []*entities.Material, overview *dto.StockOverview, w io.Writer) error {
	fmt.Fprintf(w, "📦 Raw Material Stock\n")
	fmt.Fprintf(w, "=====================\n\n")

	fmt.Fprintf(w, "%-12s %-20s %-14s %-6s %-12s %-8s\n",
		"ID", "Name", "Stock", "Unit", "Threshold", "Status")
	fmt.Fprintf(w, "%-12s %-20s %-14s %-6s %-12s %-8s\n",
		"------------", "--------------------", "--------------", "------", "------------", "--------")

	for _, m := range materials {
		stock := m.CurrentStock.String()
		if m.IsInfinite {
			stock = "∞"
		}
		fmt.Fprintf(w, "%-12s %-20s %-14s %-6s %-12s %-8s\n",
			m.ID, m.Name, stock, m.Unit, m.MinThreshold, m.Status())
	}

	if overview != nil {
		fmt.Fprintf(w, "\nTracked stock: %s  Critical: %d  Active materials: %d  Production runs: %d\n",
			overview.TrackedStock, overview.CriticalCount, overview.ActiveMaterials, overview.BatchCount)
	}
	return nil
}

// Recipes renders the recipe catalog, resolving material names through the
// lookup and showing a placeholder for dangling references.
func Recipes(recipes []*entities.Recipe, lookup func(entities.MaterialID) (*entities.Material, error), config Config) error {
	switch config.Format {
	case "text":
		return recipesText(recipes, lookup, config.Writer)
	case "json":
		return asJSON(recipes, config.Writer)
	default:
		return fmt.Errorf("unsupported output format: %s", config.Format)
	}
}

func recipesText(recipes []*entities.Recipe, lookup func(entities.MaterialID) (*entities.Material, error), w io.Writer) error {
	fmt.Fprintf(w, "🧪 Recipes (per %s output-units)\n", entities.ReferenceBatchSize)
	fmt.Fprintf(w, "================================\n\n")

	for _, r := range recipes {
		fmt.Fprintf(w, "%s (%s)\n", r.Name, r.ID)
		for _, ing := range r.Ingredients {
			material, err := lookup(ing.MaterialID)
			if err != nil {
				fmt.Fprintf(w, "  - %s  unknown material (%s)\n", ing.AmountPerBatch, ing.MaterialID)
				continue
			}
			fmt.Fprintf(w, "  - %s %s  %s\n", ing.AmountPerBatch, material.Unit, material.Name)
		}
		fmt.Fprintln(w)
	}
	return nil
}

// Preview renders a production preview
func Preview(preview *dto.PreviewResult, config Config) error {
	switch config.Format {
	case "text":
		return previewText(preview, config.Writer)
	case "json":
		return asJSON(preview, config.Writer)
	default:
		return fmt.Errorf("unsupported output format: %s", config.Format)
	}
}

func previewText(preview *dto.PreviewResult, w io.Writer) error {
	fmt.Fprintf(w, "🏭 Production Preview: %s × %s\n", preview.RecipeName, preview.TargetOutput)
	fmt.Fprintf(w, "==============================\n\n")

	fmt.Fprintf(w, "%-20s %-14s %-14s %-6s %-10s\n",
		"Material", "Required", "Available", "Unit", "OK")
	fmt.Fprintf(w, "%-20s %-14s %-14s %-6s %-10s\n",
		"--------------------", "--------------", "--------------", "------", "----------")

	for _, line := range preview.Lines {
		available := line.Available.String()
		if line.Infinite {
			available = "∞"
		}
		if line.Missing {
			available = "-"
		}
		ok := "yes"
		if !line.IsAvailable {
			ok = "NO"
		}
		fmt.Fprintf(w, "%-20s %-14s %-14s %-6s %-10s\n",
			line.MaterialName, line.Required, available, line.Unit, ok)
	}

	if preview.CanProduce {
		fmt.Fprintf(w, "\n✅ Producible\n")
	} else {
		fmt.Fprintf(w, "\n❌ Not producible\n")
	}
	return nil
}

// History renders production log entries, newest first
func History(logs []*entities.ProductionLog, config Config) error {
	switch config.Format {
	case "text":
		return historyText(logs, config.Writer)
	case "json":
		return asJSON(logs, config.Writer)
	default:
		return fmt.Errorf("unsupported output format: %s", config.Format)
	}
}

func historyText(logs []*entities.ProductionLog, w io.Writer) error {
	fmt.Fprintf(w, "📜 Production History\n")
	fmt.Fprintf(w, "=====================\n\n")

	if len(logs) == 0 {
		fmt.Fprintln(w, "No production runs recorded.")
		return nil
	}

	for _, log := range logs {
		fmt.Fprintf(w, "%s  %s × %s (%s)\n",
			log.Timestamp.Format("2006-01-02 15:04"), log.RecipeName, log.AmountProduced, log.ID)
		for _, c := range log.Consumed {
			fmt.Fprintf(w, "  - %s: %s %s\n", c.MaterialName, c.Amount, c.Unit)
		}
		fmt.Fprintln(w)
	}
	return nil
}

// CommittedLog renders a freshly committed production run
func CommittedLog(log *entities.ProductionLog, config Config) error {
	switch config.Format {
	case "text":
		fmt.Fprintf(config.Writer, "✅ Committed: %s × %s, %d ingredient(s) consumed (log %s)\n",
			log.RecipeName, log.AmountProduced, len(log.Consumed), log.ID)
		return nil
	case "json":
		return asJSON(log, config.Writer)
	default:
		return fmt.Errorf("unsupported output format: %s", config.Format)
	}
}

func asJSON(v interface{}, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
