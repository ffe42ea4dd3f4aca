package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/frahmantamala/lead-tracker/internal/lead"
	"github.com/frahmantamala/lead-tracker/pkg/logger"
)

var (
	exportEmployeeID int64
	exportOutput     string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export an employee's leads to an xlsx file",
	RunE:  runExport,
}

func init() {
	exportCmd.Flags().Int64VarP(&exportEmployeeID, "employee", "e", 0, "employee id whose leads are exported")
	exportCmd.Flags().StringVarP(&exportOutput, "out", "o", "", "output file (default <export.directory>/leads-<id>.xlsx)")
	_ = exportCmd.MarkFlagRequired("employee")
}

func runExport(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()
	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}
	lg := logger.LoggerWrapper()

	be, err := openBackend(ctx, cfg.Storage, lg)
	if err != nil {
		return err
	}
	defer be.Close()

	store := newCommandRecordStore(be, lg)
	owner, err := store.GetEmployee(ctx, exportEmployeeID)
	if err != nil {
		return err
	}
	leads, err := store.ListLeads(ctx, exportEmployeeID)
	if err != nil {
		return err
	}

	path := exportOutput
	if path == "" {
		path = filepath.Join(cfg.Export.Directory, fmt.Sprintf("leads-%d.xlsx", exportEmployeeID))
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create export directory: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	if err := lead.WriteXLSX(f, owner.FullName(), leads); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	cmd.Printf("exported %d leads of %s to %s\n", len(leads), owner.FullName(), path)
	return nil
}
