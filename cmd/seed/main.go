// Command seed rebuilds the demo dataset: users, catalog, vouchers and
// schedules with their briefings. It wipes existing rows first.
package main

import (
	"log/slog"
	"os"

	"github.com/streamline-live/streamline-backend/internal/config"
	"github.com/streamline-live/streamline-backend/internal/database"
	"github.com/streamline-live/streamline-backend/internal/logging"
	"github.com/streamline-live/streamline-backend/internal/seed"
)

func main() {
	logging.Setup()

	cfg := config.Load()
	if cfg.DBPassword == "" {
		slog.Error("DB_PASSWORD environment variable is required")
		os.Exit(1)
	}

	db, err := database.Connect(cfg)
	if err != nil {
		slog.Error("database connection failed", "error", err)
		os.Exit(1)
	}
	defer database.Close(db)

	if err := database.Migrate(db); err != nil {
		slog.Error("migration failed", "error", err)
		os.Exit(1)
	}

	if err := seed.Run(db); err != nil {
		slog.Error("seed failed", "error", err)
		os.Exit(1)
	}

	slog.Info("demo data ready", "host_logins", "siti, rina", "admin_login", "admin")
}
