package commands

import (
	"context"
	"fmt"

	"github.com/nkaya/mixplan/pkg/application/services/analysis"
	"github.com/nkaya/mixplan/pkg/infrastructure/report"
)

// ReportCommand generates a narrative analysis of the current finite stock
// via the external text-generation service. Failures are reported to the
// user and never touch the persisted state.
type ReportCommand struct {
	env *Environment
}

// NewReportCommand creates a report command
func NewReportCommand(env *Environment) *ReportCommand {
	return &ReportCommand{env: env}
}

// Execute runs the report command
func (c *ReportCommand) Execute(ctx context.Context) error {
	client := report.NewClient(c.env.Config.Report, c.env.Logger)
	service := analysis.NewService(c.env.Ledger, client, c.env.Logger)

	text, err := service.StockReport(ctx)
	if err != nil {
		fmt.Printf("Report could not be generated: %v\n", err)
		return nil
	}
	fmt.Println(text)
	return nil
}
