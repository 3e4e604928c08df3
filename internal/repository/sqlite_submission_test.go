package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hemanthkpolineni-commits/Dashboard-Project/internal/domain"
	"github.com/hemanthkpolineni-commits/Dashboard-Project/internal/testutil"
)

func TestSubmissionRepo_CreateAndGetByID(t *testing.T) {
	repo := NewSQLiteSubmissionRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	sub := testutil.NewTestSubmission("Acme Redesign",
		testutil.WithTaskTitle("Build homepage"),
		testutil.WithTeam(domain.TeamHighVelocity),
		testutil.WithStatus(domain.StatusInProgress),
	)
	due := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)
	sub.BuildDueDate = &due
	hours := 12.5
	sub.DevTaskHours = &hours
	require.NoError(t, repo.Create(ctx, sub))

	fetched, err := repo.GetByID(ctx, sub.ID)
	require.NoError(t, err)
	assert.Equal(t, "Acme Redesign", fetched.Title)
	assert.Equal(t, "Build homepage", fetched.TaskTitle)
	assert.Equal(t, domain.TeamHighVelocity, fetched.Team)
	assert.Equal(t, domain.StatusInProgress, fetched.Status)
	assert.Equal(t, domain.TimerStopped, fetched.TimerState)
	require.NotNil(t, fetched.BuildDueDate)
	assert.True(t, due.Equal(*fetched.BuildDueDate))
	require.NotNil(t, fetched.DevTaskHours)
	assert.Equal(t, 12.5, *fetched.DevTaskHours)
	assert.Nil(t, fetched.QADueDate)
	assert.Nil(t, fetched.QATaskHours)
	assert.Nil(t, fetched.TimerStartTime)
}

func TestSubmissionRepo_GetByID_NotFound(t *testing.T) {
	repo := NewSQLiteSubmissionRepo(testutil.NewTestDB(t))

	_, err := repo.GetByID(context.Background(), "nonexistent")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSubmissionRepo_Update_TimerRoundTrip(t *testing.T) {
	repo := NewSQLiteSubmissionRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	sub := testutil.NewTestSubmission("Timer Proj", testutil.WithStatus(domain.StatusInProgress))
	require.NoError(t, repo.Create(ctx, sub))

	start := time.Date(2026, 1, 5, 9, 30, 0, 123456789, time.UTC)
	sub.TimerState = domain.TimerRunning
	sub.TimerStartTime = &start
	sub.LastTick = start
	sub.LoggedHours = 2.25
	sub.PauseReason = ""
	require.NoError(t, repo.Update(ctx, sub))

	fetched, err := repo.GetByID(ctx, sub.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.TimerRunning, fetched.TimerState)
	require.NotNil(t, fetched.TimerStartTime)
	assert.True(t, start.Equal(*fetched.TimerStartTime))
	assert.True(t, start.Equal(fetched.LastTick))
	assert.Equal(t, 2.25, fetched.LoggedHours)
}

func TestSubmissionRepo_ListByTeam(t *testing.T) {
	repo := NewSQLiteSubmissionRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, testutil.NewTestSubmission("A", testutil.WithTeam(domain.TeamAgency))))
	require.NoError(t, repo.Create(ctx, testutil.NewTestSubmission("B", testutil.WithTeam(domain.TeamVerticals))))
	require.NoError(t, repo.Create(ctx, testutil.NewTestSubmission("C", testutil.WithTeam(domain.TeamAgency))))

	list, err := repo.ListByTeam(ctx, domain.TeamAgency)
	require.NoError(t, err)
	assert.Len(t, list, 2)
	for _, s := range list {
		assert.Equal(t, domain.TeamAgency, s.Team)
	}
}

func TestSubmissionRepo_ExistsByTitlePair(t *testing.T) {
	repo := NewSQLiteSubmissionRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	sub := testutil.NewTestSubmission("Acme", testutil.WithTaskTitle("Fix nav"))
	require.NoError(t, repo.Create(ctx, sub))

	exists, err := repo.ExistsByTitlePair(ctx, "Acme", "Fix nav")
	require.NoError(t, err)
	assert.True(t, exists)

	// Same title, different task title is not a duplicate.
	exists, err = repo.ExistsByTitlePair(ctx, "Acme", "Fix footer")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestSubmissionRepo_CountsByTeam(t *testing.T) {
	repo := NewSQLiteSubmissionRepo(testutil.NewTestDB(t))
	ctx := context.Background()
	today := time.Date(2026, 2, 10, 14, 0, 0, 0, time.UTC)
	yesterday := today.AddDate(0, 0, -1)

	require.NoError(t, repo.Create(ctx, testutil.NewTestSubmission("A",
		testutil.WithTeam(domain.TeamAgency), testutil.WithCreatedDate(today))))
	require.NoError(t, repo.Create(ctx, testutil.NewTestSubmission("B",
		testutil.WithTeam(domain.TeamAgency), testutil.WithCreatedDate(yesterday))))
	require.NoError(t, repo.Create(ctx, testutil.NewTestSubmission("C",
		testutil.WithTeam(domain.TeamBroadlyDuda), testutil.WithCreatedDate(today))))

	counts, err := repo.CountsByTeam(ctx, today)
	require.NoError(t, err)

	assert.Equal(t, domain.SubmissionStats{Today: 1, Total: 2}, counts[domain.TeamAgency])
	assert.Equal(t, domain.SubmissionStats{Today: 1, Total: 1}, counts[domain.TeamBroadlyDuda])
	// Teams with no submissions still appear with zero stats.
	assert.Equal(t, domain.SubmissionStats{}, counts[domain.TeamVerticals])
	assert.Len(t, counts, len(domain.AllTeams))
}

func TestSubmissionRepo_DeleteMany(t *testing.T) {
	repo := NewSQLiteSubmissionRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	s1 := testutil.NewTestSubmission("One")
	s2 := testutil.NewTestSubmission("Two")
	s3 := testutil.NewTestSubmission("Three")
	for _, s := range []*domain.Submission{s1, s2, s3} {
		require.NoError(t, repo.Create(ctx, s))
	}

	require.NoError(t, repo.DeleteMany(ctx, []string{s1.ID, s3.ID}))

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, s2.ID, list[0].ID)
}

func TestSubmissionRepo_DeleteMany_Empty(t *testing.T) {
	repo := NewSQLiteSubmissionRepo(testutil.NewTestDB(t))
	assert.NoError(t, repo.DeleteMany(context.Background(), nil))
}
