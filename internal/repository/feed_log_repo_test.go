package repository

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/epeers/gardenfeed/internal/database"
	"github.com/epeers/gardenfeed/internal/models"
	"github.com/epeers/gardenfeed/internal/nutrients"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testPool *pgxpool.Pool

// Zone ids this high are reserved for tests and cleaned up before each run.
const testZoneID = 9_000_001

func TestMain(m *testing.M) {
	pgURL := os.Getenv("PG_URL")
	if pgURL == "" {
		fmt.Println("PG_URL environment variable not set, skipping integration tests")
		os.Exit(0)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	db, err := database.New(ctx, pgURL)
	if err != nil {
		cancel()
		fmt.Printf("Failed to connect to database: %v\n", err)
		os.Exit(1)
	}
	if err := db.Migrate(ctx); err != nil {
		cancel()
		fmt.Printf("Failed to migrate: %v\n", err)
		os.Exit(1)
	}
	cancel()
	testPool = db.Pool

	code := m.Run()
	db.Close()
	os.Exit(code)
}

func cleanupZone(t *testing.T, zoneID int64) {
	t.Helper()
	_, err := testPool.Exec(context.Background(), `DELETE FROM feed_log WHERE zone_id = $1`, zoneID)
	require.NoError(t, err)
}

func TestFeedLogRepository_CreateAndLatest(t *testing.T) {
	ctx := context.Background()
	cleanupZone(t, testZoneID)
	defer cleanupZone(t, testZoneID)

	repo := NewFeedLogRepository(testPool)

	_, err := repo.GetLatestByZone(ctx, testZoneID)
	assert.ErrorIs(t, err, ErrFeedLogNotFound)

	day := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	for i, ppm := range []float64{1100, 1250} {
		req := &models.CalculateRequest{
			Input:  nutrients.Input{Stage: nutrients.StageFlower, Volume: 5, SourcePPM: ppm - 1050},
			ZoneID: testZoneID,
		}
		out := nutrients.Compute(req.Input)
		entry := models.NewFeedLog(req, &out, nil, day.AddDate(0, 0, i))
		require.NoError(t, repo.Create(ctx, entry))
		assert.NotZero(t, entry.ID)
	}

	latest, err := repo.GetLatestByZone(ctx, testZoneID)
	require.NoError(t, err)
	assert.Equal(t, day.AddDate(0, 0, 1), latest.FedOn.Time.UTC())
	assert.True(t, latest.FinalPPM.Equal(decimal.NewFromInt(1200)), "final ppm %s", latest.FinalPPM)
	assert.Len(t, latest.Nutrients, 3)

	items, err := repo.ListByZone(ctx, testZoneID, 10)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.True(t, items[0].FedOn.After(items[1].FedOn.Time))
}
