package commands

import (
	"context"
	"os"

	"github.com/nkaya/mixplan/pkg/interfaces/cli/output"
)

// HistoryConfig holds configuration for the history command
type HistoryConfig struct {
	Format string
	Limit  int
}

// HistoryCommand lists production log entries, newest first
type HistoryCommand struct {
	env    *Environment
	config HistoryConfig
}

// NewHistoryCommand creates a history command
func NewHistoryCommand(env *Environment, config HistoryConfig) *HistoryCommand {
	return &HistoryCommand{env: env, config: config}
}

// Execute runs the history command
func (c *HistoryCommand) Execute(ctx context.Context) error {
	logs, err := c.env.Logs.RecentLogs(c.config.Limit)
	if err != nil {
		return err
	}
	return output.History(logs, output.Config{Format: c.config.Format, Writer: os.Stdout})
}
