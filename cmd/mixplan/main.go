package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/nkaya/mixplan/pkg/infrastructure/config"
	"github.com/nkaya/mixplan/pkg/infrastructure/logging"
	"github.com/nkaya/mixplan/pkg/interfaces/cli/commands"
)

const usage = `mixplan - inventory and production planning for a chemical-mixing shop

Usage:
  mixplan stock   [-material ID] [-delta QTY] [-add -name NAME -unit UNIT [-stock QTY] [-threshold QTY] [-infinite]] [-delete ID]
  mixplan recipes [-add -recipe ID -name NAME -ingredients "matID:QTY,matID:QTY"] [-delete ID]
  mixplan plan    -recipe ID -target QTY [-confirm]
  mixplan history [-limit N]
  mixplan backup  -export FILE | -import FILE
  mixplan report

Common flags:
  -format  Output format: text, json (default "text")

Environment:
  MIXPLAN_DATA_FILE  Path to the data file (default "mixplan.yaml")
  MIXPLAN_LOG_MODE   Log mode: dev, prod (default "dev")
  LLM_API_KEY        API key for the narrative report service
  LLM_BASE_URL       Report service base URL
  LLM_MODEL          Report service model
`

func main() {
	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	cfg := config.Load()
	logger, err := logging.New(cfg.LogMode)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	env, err := commands.NewEnvironment(cfg, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()
	if err := run(ctx, env, os.Args[1], os.Args[2:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, env *commands.Environment, name string, args []string) error {
	switch name {
	case "stock":
		fs := flag.NewFlagSet("stock", flag.ExitOnError)
		cfg := commands.StockConfig{}
		fs.StringVar(&cfg.Format, "format", "text", "Output format: text, json")
		fs.StringVar(&cfg.MaterialID, "material", "", "Material id to adjust or add")
		fs.StringVar(&cfg.Delta, "delta", "", "Quantity delta to apply (positive or negative)")
		fs.BoolVar(&cfg.Add, "add", false, "Add or update a material")
		fs.StringVar(&cfg.Name, "name", "", "Material display name")
		fs.StringVar(&cfg.Unit, "unit", "kg", "Unit of measure: kg, L, gr, ml")
		fs.StringVar(&cfg.Stock, "stock", "", "Initial stock quantity")
		fs.StringVar(&cfg.Threshold, "threshold", "", "Minimum threshold")
		fs.BoolVar(&cfg.Infinite, "infinite", false, "Mark the material as infinite")
		fs.StringVar(&cfg.Delete, "delete", "", "Material id to delete")
		if err := fs.Parse(args); err != nil {
			return err
		}
		return commands.NewStockCommand(env, cfg).Execute(ctx)

	case "recipes":
		fs := flag.NewFlagSet("recipes", flag.ExitOnError)
		cfg := commands.RecipeConfig{}
		fs.StringVar(&cfg.Format, "format", "text", "Output format: text, json")
		fs.BoolVar(&cfg.Add, "add", false, "Add or update a recipe")
		fs.StringVar(&cfg.RecipeID, "recipe", "", "Recipe id to add")
		fs.StringVar(&cfg.Name, "name", "", "Recipe display name")
		fs.StringVar(&cfg.Ingredients, "ingredients", "", `Ingredient list "materialID:amount,..." per reference batch`)
		fs.StringVar(&cfg.Delete, "delete", "", "Recipe id to delete")
		if err := fs.Parse(args); err != nil {
			return err
		}
		return commands.NewRecipeCommand(env, cfg).Execute(ctx)

	case "plan":
		fs := flag.NewFlagSet("plan", flag.ExitOnError)
		cfg := commands.PlanConfig{}
		fs.StringVar(&cfg.Format, "format", "text", "Output format: text, json")
		fs.StringVar(&cfg.RecipeID, "recipe", "", "Recipe id to produce")
		fs.StringVar(&cfg.Target, "target", "1000", "Target output amount")
		fs.BoolVar(&cfg.Confirm, "confirm", false, "Commit the production run")
		if err := fs.Parse(args); err != nil {
			return err
		}
		return commands.NewPlanCommand(env, cfg).Execute(ctx)

	case "history":
		fs := flag.NewFlagSet("history", flag.ExitOnError)
		cfg := commands.HistoryConfig{}
		fs.StringVar(&cfg.Format, "format", "text", "Output format: text, json")
		fs.IntVar(&cfg.Limit, "limit", 20, "Maximum entries to show")
		if err := fs.Parse(args); err != nil {
			return err
		}
		return commands.NewHistoryCommand(env, cfg).Execute(ctx)

	case "backup":
		fs := flag.NewFlagSet("backup", flag.ExitOnError)
		cfg := commands.BackupConfig{}
		fs.StringVar(&cfg.ExportFile, "export", "", "Export snapshot to file (- for stdout)")
		fs.StringVar(&cfg.ImportFile, "import", "", "Import snapshot from file, overwriting all state")
		if err := fs.Parse(args); err != nil {
			return err
		}
		return commands.NewBackupCommand(env, cfg).Execute(ctx)

	case "report":
		return commands.NewReportCommand(env).Execute(ctx)

	case "help", "-h", "--help":
		fmt.Print(usage)
		return nil

	default:
		fmt.Fprint(os.Stderr, usage)
		return fmt.Errorf("unknown command %q", name)
	}
}
