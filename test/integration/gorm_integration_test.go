package integration

import (
	"context"
	"log"
	"os"
	"testing"
	"time"

	"signal-for-good-be/internal/entity"
	"signal-for-good-be/internal/repository/unitofwork"
	"signal-for-good-be/pkg/database"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
)

func TestGormConnection(t *testing.T) {
	// Load .env from root
	err := godotenv.Load("../../.env")
	if err != nil {
		log.Println("No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		t.Skip("Skipping integration test: DB_CONNECTION_STRING not set")
	}

	gormDB, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		t.Fatalf("Failed to connect to DB: %v", err)
	}

	uowFactory := unitofwork.NewRepositoryFactory(gormDB)
	uow := uowFactory.NewUnitOfWork(context.Background())

	assert.NotNil(t, uow.MissionRepository())
	assert.NotNil(t, uow.DonationRepository())
	assert.NotNil(t, uow.MissionLeaseRepository())

	sqlDB, _ := gormDB.DB()
	err = sqlDB.Ping()
	assert.NoError(t, err)

	t.Run("Check Mission Repository", func(t *testing.T) {
		count, err := uow.MissionRepository().Count(context.Background())
		assert.NoError(t, err)
		t.Logf("Mission count: %d", count)
	})

	t.Run("Check Debate Message Repository", func(t *testing.T) {
		count, err := uow.DebateMessageRepository().Count(context.Background())
		assert.NoError(t, err)
		t.Logf("Debate message count: %d", count)
	})

	t.Run("Check Transactional Mission Lease", func(t *testing.T) {
		ctx := context.Background()
		txUow := uowFactory.NewUnitOfWork(ctx)
		err := txUow.Begin(ctx)
		assert.NoError(t, err)
		defer txUow.Rollback()

		bucket := &entity.Bucket{
			Id:   uuid.New(),
			Slug: entity.BucketSlug("it-" + uuid.New().String()[:8]),
			Name: "Integration Bucket",
		}
		err = txUow.BucketRepository().Create(ctx, bucket)
		assert.NoError(t, err)

		mission := &entity.Mission{
			Id:           uuid.New(),
			BucketId:     bucket.Id,
			Title:        "Integration Mission",
			CoreQuestion: "Does the lease survive a round trip?",
			Status:       entity.MissionStatusLive,
			IsLive:       true,
		}
		err = txUow.MissionRepository().Create(ctx, mission)
		assert.NoError(t, err)

		leases := txUow.MissionLeaseRepository()
		got, err := leases.Acquire(ctx, mission.Id, time.Minute)
		assert.NoError(t, err)
		assert.True(t, got, "first acquire should win")

		got, err = leases.Acquire(ctx, mission.Id, time.Minute)
		assert.NoError(t, err)
		assert.False(t, got, "held lease should not be re-acquired")

		err = leases.Release(ctx, mission.Id)
		assert.NoError(t, err)

		got, err = leases.Acquire(ctx, mission.Id, time.Minute)
		assert.NoError(t, err)
		assert.True(t, got, "released lease should be free")
	})
}
