package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	_ "github.com/ClickHouse/clickhouse-go/v2"
	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/clickhouse"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/jessevdk/go-flags"
	"go.uber.org/zap"
)

type config struct {
	ClickhouseDSN string `long:"clickhouse-dsn" env:"STAKER_CLICKHOUSE_DSN" default:"clickhouse://localhost:9000/default" description:"ClickHouse DSN of the minted block journal"`
	MigrationsDir string `long:"migrations-dir" env:"STAKER_MIGRATIONS_DIR" default:"migrations/clickhouse" description:"Path to the journal migration files"`
	Direction     string `long:"direction" env:"STAKER_MIGRATIONS_DIRECTION" default:"up" choice:"up" choice:"down" description:"Apply or roll back migrations"`
	Steps         int    `long:"steps" env:"STAKER_MIGRATIONS_STEPS" default:"0" description:"Number of migrations to move by, 0 for all"`
}

func main() {
	cfg := config{}
	if _, err := flags.Parse(&cfg); err != nil {
		var ferr *flags.Error
		if errors.As(err, &ferr) && ferr.Type == flags.ErrHelp {
			return
		}
		log.Fatalf("failed to parse flags: %v", err)
	}

	logger, err := zap.NewDevelopment()
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer func() {
		_ = logger.Sync()
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := runMigrations(ctx, logger, cfg); err != nil {
		logger.Fatal("migration run failed", zap.Error(err))
	}
}

func runMigrations(ctx context.Context, logger *zap.Logger, cfg config) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if cfg.Steps < 0 {
		return fmt.Errorf("steps must not be negative, got %d", cfg.Steps)
	}

	dir, err := filepath.Abs(cfg.MigrationsDir)
	if err != nil {
		return fmt.Errorf("resolve migrations dir: %w", err)
	}
	info, err := os.Stat(dir)
	if err != nil {
		return fmt.Errorf("stat migrations dir %s: %w", dir, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%s is not a directory", dir)
	}

	m, err := migrate.New("file://"+filepath.ToSlash(dir), cfg.ClickhouseDSN)
	if err != nil {
		return fmt.Errorf("init migrate: %w", err)
	}
	defer func() {
		srcErr, dbErr := m.Close()
		if srcErr != nil {
			logger.Warn("close migration source", zap.Error(srcErr))
		}
		if dbErr != nil {
			logger.Warn("close migration database", zap.Error(dbErr))
		}
	}()

	go func() {
		<-ctx.Done()
		m.GracefulStop <- true
	}()

	if err := move(m, cfg.Direction, cfg.Steps); err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			logger.Info("journal schema already current")
			return nil
		}
		return err
	}

	version, dirty, err := m.Version()
	switch {
	case errors.Is(err, migrate.ErrNilVersion):
		logger.Info("journal schema rolled back completely", zap.String("direction", cfg.Direction))
	case err != nil:
		return fmt.Errorf("read schema version: %w", err)
	default:
		logger.Info("journal schema migrated",
			zap.String("direction", cfg.Direction),
			zap.Uint("version", version),
			zap.Bool("dirty", dirty))
	}
	return nil
}

func move(m *migrate.Migrate, direction string, steps int) error {
	switch {
	case steps > 0 && direction == "down":
		return m.Steps(-steps)
	case steps > 0:
		return m.Steps(steps)
	case direction == "down":
		return m.Down()
	default:
		return m.Up()
	}
}
