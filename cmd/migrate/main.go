package main

import (
	"context"
	"flag"
	"log"

	"autoworld/internal/config"
	"autoworld/internal/database"
	"autoworld/internal/logger"

	"go.uber.org/zap"
)

func main() {
	dir := flag.String("dir", "database/migrations", "directory holding the *.up.sql / *.down.sql files")
	down := flag.Bool("down", false, "roll migrations back instead of applying them")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if err := logger.Initialize(cfg.Logger); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	l := logger.Get()
	defer logger.Sync()

	if !cfg.DatabaseEnabled() {
		l.Fatal("db.host is not configured, nothing to migrate")
	}

	ctx := context.Background()
	db, err := database.NewSQLXOracleDB(ctx, cfg.GetDSN())
	if err != nil {
		l.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	direction := database.Up
	if *down {
		direction = database.Down
	}
	if err := database.RunMigrations(ctx, db, *dir, direction); err != nil {
		l.Fatal("Failed to run migrations", zap.Error(err))
	}
	l.Info("Migrations finished", zap.String("direction", string(direction)))
}
