package cmd

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/pressly/goose/v3"
	"github.com/spf13/cobra"

	"github.com/frahmantamala/lead-tracker/internal"
)

var (
	migrateCmd = &cobra.Command{
		RunE:  runMigration,
		Use:   "migrate",
		Short: "to run the embedded db migrations against the configured sql storage",
	}
	migrateRollback bool
)

func init() {
	migrateCmd.Flags().BoolVarP(&migrateRollback, "rollback", "r", false, "to rollback the latest version of sql migration")
}

func runMigration(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()
	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}

	var (
		sqlDB   *sql.DB
		dialect string
	)
	switch cfg.Storage.Driver {
	case internal.StorageDriverSQLite:
		// registered by the mattn driver that gorm's sqlite dialector links in
		sqlDB, err = sql.Open("sqlite3", cfg.Storage.GetDSN())
		dialect = "sqlite3"
	case internal.StorageDriverPostgres:
		sqlDB, err = goose.OpenDBWithDriver("pgx", cfg.Storage.GetDSN())
		dialect = "postgres"
	default:
		cmd.Printf("storage driver %q has no schema, nothing to migrate\n", cfg.Storage.Driver)
		return nil
	}
	if err != nil {
		return fmt.Errorf("goose: failed to open DB: %w", err)
	}
	defer sqlDB.Close()

	if err := prepareGoose(dialect); err != nil {
		return err
	}

	command := "up"
	if migrateRollback {
		command = "down"
	}
	if err := goose.RunContext(ctx, command, sqlDB, migrationsDir); err != nil {
		return fmt.Errorf("goose %s: %w", command, err)
	}

	version, err := goose.GetDBVersionContext(ctx, sqlDB)
	if err != nil {
		return err
	}
	cmd.Printf("schema at version %d\n", version)
	return nil
}
