package main

// Run database migrations:
//   go run ./cmd/migrate

import (
	"context"
	"os"

	"jobmatch-backend/internal/shared/config"
	"jobmatch-backend/internal/shared/storage/db"
	"jobmatch-backend/internal/shared/telemetry"
)

func main() {
	cfg := config.Load()
	_ = telemetry.Init(cfg.Env, cfg.LogLevel)
	defer telemetry.Sync()
	ctx := context.Background()

	opts := db.OptionsFromEnv(db.DefaultMigrateOptions())
	sqlDB, err := db.Connect(ctx, cfg.DatabaseURL, opts)
	if err != nil {
		telemetry.Error("migrate.connect_failed", map[string]any{"error": err})
		os.Exit(1)
	}
	defer sqlDB.Close()

	if err := db.RunMigrations(ctx, sqlDB); err != nil {
		telemetry.Error("migrate.failed", map[string]any{"error": err})
		os.Exit(1)
	}
	telemetry.Info("migrate.done", nil)
}
