package repository

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hemanthkpolineni-commits/Dashboard-Project/internal/testutil"
)

func TestMetricRepo_AccumulateForDay_CreatesThenMerges(t *testing.T) {
	repo := NewSQLiteMetricRepo(testutil.NewTestDB(t))
	ctx := context.Background()
	day := time.Date(2026, 4, 1, 11, 45, 0, 0, time.UTC)

	require.NoError(t, repo.AccumulateForDay(ctx, uuid.New().String(), "u1", day, 1.5))

	m, err := repo.GetForDay(ctx, "u1", day)
	require.NoError(t, err)
	assert.Equal(t, 1.5, m.Hours)

	// A second posting for the same day folds into the same row, even when
	// the timestamp falls at a different hour.
	later := day.Add(5 * time.Hour)
	require.NoError(t, repo.AccumulateForDay(ctx, uuid.New().String(), "u1", later, 0.25))

	m2, err := repo.GetForDay(ctx, "u1", day)
	require.NoError(t, err)
	assert.Equal(t, m.ID, m2.ID)
	assert.InDelta(t, 1.75, m2.Hours, 1e-9)

	all, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestMetricRepo_AccumulateForDay_SeparateDaysAndUsers(t *testing.T) {
	repo := NewSQLiteMetricRepo(testutil.NewTestDB(t))
	ctx := context.Background()
	day1 := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)
	day2 := day1.AddDate(0, 0, 1)

	require.NoError(t, repo.AccumulateForDay(ctx, uuid.New().String(), "u1", day1, 2))
	require.NoError(t, repo.AccumulateForDay(ctx, uuid.New().String(), "u1", day2, 3))
	require.NoError(t, repo.AccumulateForDay(ctx, uuid.New().String(), "u2", day1, 4))

	all, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestMetricRepo_GetForDay_NotFound(t *testing.T) {
	repo := NewSQLiteMetricRepo(testutil.NewTestDB(t))

	_, err := repo.GetForDay(context.Background(), "u1", time.Now())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMetricRepo_ListByUserRange(t *testing.T) {
	repo := NewSQLiteMetricRepo(testutil.NewTestDB(t))
	ctx := context.Background()
	base := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)

	for i := 0; i < 5; i++ {
		day := base.AddDate(0, 0, i)
		require.NoError(t, repo.AccumulateForDay(ctx, uuid.New().String(), "u1", day, float64(i+1)))
	}
	require.NoError(t, repo.AccumulateForDay(ctx, uuid.New().String(), "u2", base, 9))

	// Bounds are inclusive on both ends.
	metrics, err := repo.ListByUserRange(ctx, "u1", base.AddDate(0, 0, 1), base.AddDate(0, 0, 3))
	require.NoError(t, err)
	require.Len(t, metrics, 3)
	assert.Equal(t, 2.0, metrics[0].Hours)
	assert.Equal(t, 4.0, metrics[2].Hours)
}

func TestMetricRepo_ListRange_AllUsers(t *testing.T) {
	repo := NewSQLiteMetricRepo(testutil.NewTestDB(t))
	ctx := context.Background()
	base := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)

	require.NoError(t, repo.AccumulateForDay(ctx, uuid.New().String(), "u1", base, 1))
	require.NoError(t, repo.AccumulateForDay(ctx, uuid.New().String(), "u2", base, 2))
	require.NoError(t, repo.AccumulateForDay(ctx, uuid.New().String(), "u1", base.AddDate(0, 0, 10), 3))

	metrics, err := repo.ListRange(ctx, base, base.AddDate(0, 0, 5))
	require.NoError(t, err)
	assert.Len(t, metrics, 2)
}
