package main

import (
	"log"
	"os"

	"signal-for-good-be/internal/model"
	"signal-for-good-be/pkg/database"

	"github.com/joho/godotenv"
)

func main() {
	// 1. Load Environment Variables
	if err := godotenv.Load(); err != nil {
		log.Println("Info: No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		log.Fatal("Error: DB_CONNECTION_STRING is not set")
	}

	// 2. Connect to Database
	db, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	log.Println("Starting GORM Migration...")

	// 3. Pre-Migration: Extensions & Enums
	log.Println("Step 1: Setting up Extensions and Enums...")

	setupSQL := []string{
		`CREATE EXTENSION IF NOT EXISTS pgcrypto;`,
		`CREATE EXTENSION IF NOT EXISTS "uuid-ossp";`,

		`DO $$ BEGIN IF NOT EXISTS (SELECT 1 FROM pg_type WHERE typname = 'mission_status') THEN CREATE TYPE mission_status AS ENUM ('draft', 'live', 'paused', 'completed'); END IF; END $$;`,
		`DO $$ BEGIN IF NOT EXISTS (SELECT 1 FROM pg_type WHERE typname = 'debate_lane') THEN CREATE TYPE debate_lane AS ENUM ('proposal', 'support', 'counter'); END IF; END $$;`,
		`DO $$ BEGIN IF NOT EXISTS (SELECT 1 FROM pg_type WHERE typname = 'claim_type') THEN CREATE TYPE claim_type AS ENUM ('evidence', 'precedent', 'assumption', 'speculation'); END IF; END $$;`,
		`DO $$ BEGIN IF NOT EXISTS (SELECT 1 FROM pg_type WHERE typname = 'donation_status') THEN CREATE TYPE donation_status AS ENUM ('intent', 'completed', 'failed'); END IF; END $$;`,
	}

	for _, sql := range setupSQL {
		if err := db.Exec(sql).Error; err != nil {
			log.Printf("Warn: Failed to execute setup SQL: %v. Continuing...", err)
		}
	}

	// 4. AutoMigrate All Models
	log.Println("Step 2: Running AutoMigrate...")

	models := []interface{}{
		&model.Bucket{},
		&model.Mission{},
		&model.Agent{},
		&model.DebateMessage{},
		&model.Claim{},
		&model.Citation{},
		&model.SourcePack{},
		&model.Source{},
		&model.Score{},
		&model.SolutionCard{},
		&model.DebateStats{},
		&model.SystemStatus{},
		&model.GenerationLog{},
		&model.MissionLease{},
		&model.DonationIntent{},
		&model.DonationEvent{},
		&model.AdminUser{},
	}

	if err := db.AutoMigrate(models...); err != nil {
		log.Fatal("Error: AutoMigrate failed:", err)
	}

	// 5. Post-Migration: Indexes AutoMigrate can't express well
	log.Println("Step 3: Creating supplementary indexes...")

	indexSQL := []string{
		`CREATE INDEX IF NOT EXISTS idx_debate_messages_mission_round ON debate_messages (mission_id, round_number);`,
		`CREATE INDEX IF NOT EXISTS idx_claims_mission ON claims (mission_id);`,
		`CREATE INDEX IF NOT EXISTS idx_citations_claim ON citations (claim_id);`,
		`CREATE INDEX IF NOT EXISTS idx_missions_bucket_status ON missions (bucket_id, status);`,
		`CREATE INDEX IF NOT EXISTS idx_generation_logs_started ON generation_logs (started_at DESC);`,
	}

	for _, sql := range indexSQL {
		if err := db.Exec(sql).Error; err != nil {
			log.Printf("Warn: Failed to create index: %v. Continuing...", err)
		}
	}

	log.Println("Migration completed successfully")
}
