package main

import (
	"context"
	"log"

	"signal-for-good-be/internal/bootstrap"
	"signal-for-good-be/internal/config"
	"signal-for-good-be/internal/server"
	"signal-for-good-be/internal/tracer"
	"signal-for-good-be/pkg/database"
)

func main() {
	// 0. Initialize Tracer (no-op unless OTEL_ENABLED=true)
	shutdownTracer := tracer.InitTracer()
	defer shutdownTracer(context.Background())

	// 1. Load Configuration
	cfg := config.Load()

	// 2. Initialize Database
	gormDB, err := database.NewGormDBFromDSN(cfg.Database.Connection)
	if err != nil {
		log.Panicf("Unable to connect to GORM DB: %v", err)
	}

	// 3. Bootstrap Dependencies (Container)
	container := bootstrap.NewContainer(gormDB, cfg)

	// 4. Start Background Services
	if container.FeedService != nil {
		if err := container.FeedService.Start(); err != nil {
			log.Printf("Background feed error: %v", err)
		}
	}
	if container.Scheduler != nil {
		if err := container.Scheduler.Start(); err != nil {
			log.Printf("Scheduler error: %v", err)
		} else {
			log.Println("Background: Debate generator scheduler started")
		}
	}

	// 5. Initialize Server
	srv := server.New(cfg, container)

	// 6. Run Server
	log.Fatal(srv.Run())
}
