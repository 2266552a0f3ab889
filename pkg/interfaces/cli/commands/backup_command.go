package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/nkaya/mixplan/pkg/infrastructure/snapshot"
)

// BackupConfig holds configuration for the backup command
type BackupConfig struct {
	ExportFile string
	ImportFile string
}

// BackupCommand exports the full snapshot to a portable file, or restores
// one, overwriting all current state.
type BackupCommand struct {
	env    *Environment
	config BackupConfig
}

// NewBackupCommand creates a backup command
func NewBackupCommand(env *Environment, config BackupConfig) *BackupCommand {
	return &BackupCommand{env: env, config: config}
}

// Execute runs the backup command
func (c *BackupCommand) Execute(ctx context.Context) error {
	switch {
	case c.config.ExportFile != "":
		return c.export()
	case c.config.ImportFile != "":
		return c.restore()
	default:
		return fmt.Errorf("backup requires -export or -import")
	}
}

func (c *BackupCommand) export() error {
	snap, err := c.env.Backup.Snapshot()
	if err != nil {
		return err
	}
	data, err := snapshot.Marshal(snap)
	if err != nil {
		return err
	}
	if c.config.ExportFile == "-" {
		_, err = os.Stdout.Write(data)
		return err
	}
	if err := os.WriteFile(c.config.ExportFile, data, 0o644); err != nil {
		return fmt.Errorf("failed to write backup: %w", err)
	}
	fmt.Printf("Exported %d materials, %d recipes, %d logs to %s\n",
		len(snap.Materials), len(snap.Recipes), len(snap.Logs), c.config.ExportFile)
	return nil
}

func (c *BackupCommand) restore() error {
	data, err := os.ReadFile(c.config.ImportFile)
	if err != nil {
		return fmt.Errorf("failed to read backup: %w", err)
	}
	snap, err := snapshot.Unmarshal(data)
	if err != nil {
		return err
	}
	if err := c.env.Backup.Restore(snap); err != nil {
		return err
	}
	if err := c.env.Persist(); err != nil {
		return err
	}
	fmt.Printf("Imported %d materials, %d recipes, %d logs from %s\n",
		len(snap.Materials), len(snap.Recipes), len(snap.Logs), c.config.ImportFile)
	return nil
}
