package analysis

import (
	"context"
	"fmt"
	"strings"

	"github.com/nkaya/mixplan/pkg/application/services/ledger"
	"github.com/nkaya/mixplan/pkg/infrastructure/logging"
)

// Generator produces free text from a prompt. The production implementation
// calls an external text-generation service; tests stub it.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// Service builds narrative stock reports. It only ever reads the finite
// stock view; a failed or abandoned report has no effect on the ledger,
// catalog or history.
type Service struct {
	ledger    *ledger.Service
	generator Generator
	logger    *logging.Logger
}

// NewService creates a report service over the given ledger and generator
func NewService(ledgerService *ledger.Service, generator Generator, logger *logging.Logger) *Service {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Service{
		ledger:    ledgerService,
		generator: generator,
		logger:    logger,
	}
}

// StockReport generates a narrative analysis of the current finite stock.
// Infinite pseudo-resources are excluded, matching the dashboard view.
func (s *Service) StockReport(ctx context.Context) (string, error) {
	lines, err := s.ledger.FiniteStockView()
	if err != nil {
		return "", fmt.Errorf("read stock view: %w", err)
	}
	if len(lines) == 0 {
		return "No finite stock data available to analyze.", nil
	}

	var b strings.Builder
	b.WriteString("Below is the current raw-material stock list of a chemical mixing warehouse.\n")
	b.WriteString("(Unlimited resources such as purified water are excluded.)\n")
	b.WriteString("Write a short, professional report containing:\n")
	b.WriteString("1. An urgent reorder plan for stock at or below its minimum threshold.\n")
	b.WriteString("2. A brief comment on overall warehouse efficiency.\n")
	b.WriteString("3. Two practical stock-management tips.\n\n")
	b.WriteString("Stock list:\n")
	for _, line := range lines {
		fmt.Fprintf(&b, "- %s: %s %s (threshold: %s)\n",
			line.Name, line.Quantity, line.Unit, line.MinThreshold)
	}

	s.logger.Debug("requesting stock report", "materials", len(lines))
	text, err := s.generator.Generate(ctx, b.String())
	if err != nil {
		return "", fmt.Errorf("generate stock report: %w", err)
	}
	if strings.TrimSpace(text) == "" {
		return "The analysis service returned no content.", nil
	}
	return text, nil
}
