package cmd

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/go-redis/redis/v8"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/pressly/goose/v3"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	dbmigrations "github.com/frahmantamala/lead-tracker/db"
	"github.com/frahmantamala/lead-tracker/internal"
	"github.com/frahmantamala/lead-tracker/internal/storage"
	kvPostgres "github.com/frahmantamala/lead-tracker/internal/storage/postgres"
	kvRedis "github.com/frahmantamala/lead-tracker/internal/storage/redis"
)

const migrationsDir = "migrations"

// backend is an opened record store together with whatever must be closed
// on shutdown.
type backend struct {
	Store storage.RecordStore
	SQL   *sql.DB
	close func() error
}

func (b *backend) Close() error {
	if b.close == nil {
		return nil
	}
	return b.close()
}

// openBackend connects the configured storage driver. SQL backends are
// migrated to the latest schema before use.
func openBackend(ctx context.Context, cfg internal.StorageConfig, lg *slog.Logger) (*backend, error) {
	switch cfg.Driver {
	case internal.StorageDriverMemory:
		lg.Warn("using in-memory storage, data is lost on exit")
		return &backend{Store: storage.NewMemoryStore()}, nil

	case internal.StorageDriverSQLite:
		gdb, err := gorm.Open(sqlite.Open(cfg.GetDSN()), &gorm.Config{
			Logger: gormLogger.Default.LogMode(gormLogger.Silent),
		})
		if err != nil {
			return nil, fmt.Errorf("failed to open sqlite database: %w", err)
		}
		sqlDB, err := gdb.DB()
		if err != nil {
			return nil, err
		}
		// sqlite serializes writers anyway
		sqlDB.SetMaxOpenConns(1)
		if err := migrateUp(ctx, sqlDB, "sqlite3"); err != nil {
			_ = sqlDB.Close()
			return nil, err
		}
		return &backend{Store: kvPostgres.NewKVRepository(gdb), SQL: sqlDB, close: sqlDB.Close}, nil

	case internal.StorageDriverPostgres:
		dbConn, err := initDB(cfg)
		if err != nil {
			return nil, err
		}
		if err := migrateUp(ctx, dbConn.DB, "postgres"); err != nil {
			_ = dbConn.Close()
			return nil, err
		}
		gdb, err := gorm.Open(postgres.New(postgres.Config{Conn: dbConn.DB}), &gorm.Config{
			Logger: gormLogger.Default.LogMode(gormLogger.Silent),
		})
		if err != nil {
			_ = dbConn.Close()
			return nil, fmt.Errorf("failed to open gorm on postgres: %w", err)
		}
		return &backend{Store: kvPostgres.NewKVRepository(gdb), SQL: dbConn.DB, close: dbConn.Close}, nil

	case internal.StorageDriverRedis:
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		repo := kvRedis.NewKVRepository(rdb, cfg.Redis.KeyPrefix)
		if err := repo.Ping(ctx); err != nil {
			_ = rdb.Close()
			return nil, fmt.Errorf("failed to ping redis: %w", err)
		}
		return &backend{Store: repo, close: rdb.Close}, nil

	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.Driver)
	}
}

// initDB initializes the postgres connection
func initDB(cfg internal.StorageConfig) (*sqlx.DB, error) {
	const driver = "pgx"

	dbConn, err := sqlx.Connect(driver, cfg.GetDSN())
	if err != nil {
		return nil, fmt.Errorf("failed to open db connection: %w", err)
	}

	dbConn.SetMaxIdleConns(cfg.MaxIdleConns)
	dbConn.SetMaxOpenConns(cfg.MaxOpenConns)
	dbConn.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	// verify connection; close underlying *sql.DB on failure
	if err := dbConn.Ping(); err != nil {
		_ = dbConn.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return dbConn, nil
}

func migrateUp(ctx context.Context, sqlDB *sql.DB, dialect string) error {
	if err := prepareGoose(dialect); err != nil {
		return err
	}
	if err := goose.UpContext(ctx, sqlDB, migrationsDir); err != nil {
		return fmt.Errorf("goose up: %w", err)
	}
	return nil
}

func prepareGoose(dialect string) error {
	goose.SetBaseFS(dbmigrations.Migrations)
	goose.SetTableName("schema_migrations")
	goose.SetLogger(goose.NopLogger())
	if err := goose.SetDialect(dialect); err != nil {
		return fmt.Errorf("goose dialect: %w", err)
	}
	return nil
}
