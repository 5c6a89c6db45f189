package main

import (
	"flag"
	"os"

	"github.com/salmoriadev/Sistema-CaFerri/internal/infrastructure/config"
	"github.com/salmoriadev/Sistema-CaFerri/internal/infrastructure/logger"
	"github.com/salmoriadev/Sistema-CaFerri/internal/infrastructure/persistence"
	"go.uber.org/zap"
)

// Applies the database schema without starting the server. Useful for
// provisioning a fresh Postgres database before the first deploy.
func main() {
	var logLevel string
	flag.StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	flag.Parse()

	log, err := logger.New(&logger.Config{
		Level:  logLevel,
		Format: "console",
		Output: "stdout",
	})
	if err != nil {
		os.Stderr.WriteString("Failed to initialize logger: " + err.Error() + "\n")
		os.Exit(1)
	}
	defer func() {
		_ = logger.Sync(log)
	}()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration", zap.Error(err))
	}

	db, err := persistence.NewDatabase(&cfg.Database)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		_ = db.Close()
	}()

	if err := db.Migrate(); err != nil {
		log.Fatal("Migration failed", zap.Error(err))
	}

	log.Info("Schema is up to date", zap.String("driver", cfg.Database.Driver))
}
