package main

import (
	"embed"
	"log/slog"
	"os"

	"github.com/ralungei/fusion-procurement/pkg/config"
	"github.com/ralungei/fusion-procurement/pkg/migrator"
)

//go:embed *.sql
var MigrationsFS embed.FS

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	if err := migrator.RunMigrations(cfg.DatabaseURL, MigrationsFS, "procurement_goose_db_version"); err != nil {
		slog.Error("migrations failed", "error", err)
		os.Exit(1)
	}
	slog.Info("procurement migrations applied")
}
