package main

import (
	"context"
	"log"
	"math/rand"
	"time"

	"signal-for-good-be/internal/config"
	"signal-for-good-be/internal/pkg/logger"
	"signal-for-good-be/internal/repository/unitofwork"
	"signal-for-good-be/internal/service"
	"signal-for-good-be/pkg/database"

	"github.com/fatih/color"
)

func main() {
	cfg := config.Load()

	db, err := database.NewGormDBFromDSN(cfg.Database.Connection)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, false)
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	seedService := service.NewSeedService(uowFactory, sysLogger, nil, rng)

	color.Cyan("Seeding Signal For Good content...")
	start := time.Now()

	res, err := seedService.Seed(context.Background())
	if err != nil {
		color.Red("Seed failed: %v", err)
		log.Fatal(err)
	}

	if res.AlreadySeeded {
		color.Yellow("Database already seeded at version %s, nothing to do", res.Version)
		return
	}

	for _, line := range res.Log {
		color.White("  %s", line)
	}

	color.Green("Seed %s finished in %s", res.Version, time.Since(start).Round(time.Millisecond))
	color.Green("  missions:  %d", res.MissionsCreated)
	color.Green("  sources:   %d", res.SourcesCreated)
	color.Green("  messages:  %d", res.MessagesCreated)
	color.Green("  claims:    %d", res.ClaimsCreated)
	color.Green("  citations: %d", res.CitationsCreated)
}
