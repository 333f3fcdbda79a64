package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fintrack/src/models"
)

func snapDay(month time.Month, d int) time.Time {
	return time.Date(2024, month, d, 0, 0, 0, 0, time.UTC)
}

func seedSnapshot(t *testing.T, repo SnapshotRepository, date time.Time, netWorth float64) *models.NetWorthSnapshot {
	t.Helper()
	snapshot := &models.NetWorthSnapshot{
		Date:             date,
		TotalAssets:      netWorth + 10000,
		TotalLiabilities: 10000,
		NetWorth:         netWorth,
	}
	require.NoError(t, repo.Insert(context.Background(), snapshot))
	return snapshot
}

func TestSnapshotRepository_InsertAndGetByDate(t *testing.T) {
	repo := NewSnapshotRepository(setupTestDB(t))
	ctx := context.Background()

	seedSnapshot(t, repo, snapDay(time.June, 15), 30000)

	fetched, err := repo.GetByDate(ctx, snapDay(time.June, 15))
	require.NoError(t, err)
	require.NotNil(t, fetched)
	assert.Equal(t, 30000.0, fetched.NetWorth)
	assert.Equal(t, 40000.0, fetched.TotalAssets)

	missing, err := repo.GetByDate(ctx, snapDay(time.June, 16))
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestSnapshotRepository_DateUniqueness(t *testing.T) {
	repo := NewSnapshotRepository(setupTestDB(t))
	ctx := context.Background()

	seedSnapshot(t, repo, snapDay(time.June, 15), 30000)

	dup := &models.NetWorthSnapshot{Date: snapDay(time.June, 15), NetWorth: 31000}
	assert.Error(t, repo.Insert(ctx, dup))
}

func TestSnapshotRepository_UpdateByDate(t *testing.T) {
	repo := NewSnapshotRepository(setupTestDB(t))
	ctx := context.Background()

	original := seedSnapshot(t, repo, snapDay(time.June, 15), 30000)

	require.NoError(t, repo.UpdateByDate(ctx, &models.NetWorthSnapshot{
		Date:             snapDay(time.June, 15),
		TotalAssets:      45000,
		TotalLiabilities: 13000,
		NetWorth:         32000,
	}))

	fetched, err := repo.GetByDate(ctx, snapDay(time.June, 15))
	require.NoError(t, err)
	require.NotNil(t, fetched)
	assert.Equal(t, original.ID, fetched.ID)
	assert.Equal(t, 32000.0, fetched.NetWorth)
}

func TestSnapshotRepository_GetHistory(t *testing.T) {
	repo := NewSnapshotRepository(setupTestDB(t))
	ctx := context.Background()

	seedSnapshot(t, repo, snapDay(time.January, 1), 10000)
	seedSnapshot(t, repo, snapDay(time.March, 1), 11000)
	seedSnapshot(t, repo, snapDay(time.June, 1), 12000)

	history, err := repo.GetHistory(ctx, nil, nil, 0)
	require.NoError(t, err)
	require.Len(t, history, 3)

	// newest first
	assert.Equal(t, 12000.0, history[0].NetWorth)
	assert.Equal(t, 10000.0, history[2].NetWorth)

	limited, err := repo.GetHistory(ctx, nil, nil, 2)
	require.NoError(t, err)
	assert.Len(t, limited, 2)

	start := snapDay(time.February, 1)
	end := snapDay(time.April, 1)
	ranged, err := repo.GetHistory(ctx, &start, &end, 0)
	require.NoError(t, err)
	require.Len(t, ranged, 1)
	assert.Equal(t, 11000.0, ranged[0].NetWorth)
}

func TestSnapshotRepository_GetLatestInRange(t *testing.T) {
	repo := NewSnapshotRepository(setupTestDB(t))
	ctx := context.Background()

	seedSnapshot(t, repo, snapDay(time.June, 5), 10000)
	seedSnapshot(t, repo, snapDay(time.June, 20), 12000)

	latest, err := repo.GetLatestInRange(ctx, snapDay(time.June, 1), snapDay(time.June, 30))
	require.NoError(t, err)
	require.NotNil(t, latest)
	assert.Equal(t, 12000.0, latest.NetWorth)

	empty, err := repo.GetLatestInRange(ctx, snapDay(time.July, 1), snapDay(time.July, 31))
	require.NoError(t, err)
	assert.Nil(t, empty)
}

func TestSnapshotRepository_Delete(t *testing.T) {
	repo := NewSnapshotRepository(setupTestDB(t))
	ctx := context.Background()

	snapshot := seedSnapshot(t, repo, snapDay(time.June, 15), 30000)

	deleted, err := repo.Delete(ctx, snapshot.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = repo.Delete(ctx, snapshot.ID)
	require.NoError(t, err)
	assert.False(t, deleted)
}
