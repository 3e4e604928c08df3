package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hemanthkpolineni-commits/Dashboard-Project/internal/domain"
	"github.com/hemanthkpolineni-commits/Dashboard-Project/internal/testutil"
)

func TestSubmissionService_CreateAppliesDefaults(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	sub := &domain.Submission{}
	require.NoError(t, env.submissionSvc.Create(ctx, sub))

	fetched, err := env.submissionSvc.GetByID(ctx, sub.ID)
	require.NoError(t, err)
	assert.Equal(t, "Untitled", fetched.Title)
	assert.Equal(t, "N/A", fetched.ProjectType)
	assert.Equal(t, "System", fetched.SubmitterName)
	assert.Equal(t, domain.TeamAgency, fetched.Team)
	assert.Equal(t, domain.StatusPending, fetched.Status)
	assert.Equal(t, domain.TimerStopped, fetched.TimerState)
	assert.Equal(t, 0.0, fetched.LoggedHours)
	assert.Equal(t, domain.DayStart(time.Now().UTC()), fetched.CreatedDate)
}

func TestSubmissionService_CreateIgnoresClientTimerFields(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	start := time.Now().UTC()
	sub := &domain.Submission{
		Title:          "Sneaky",
		LoggedHours:    99,
		TimerState:     domain.TimerRunning,
		TimerStartTime: &start,
	}
	require.NoError(t, env.submissionSvc.Create(ctx, sub))

	fetched, err := env.submissionSvc.GetByID(ctx, sub.ID)
	require.NoError(t, err)
	assert.Equal(t, 0.0, fetched.LoggedHours)
	assert.Equal(t, domain.TimerStopped, fetched.TimerState)
	assert.Nil(t, fetched.TimerStartTime)
}

func TestSubmissionService_UpdateNotifiesNewAssignees(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	dev, err := env.userSvc.Create(ctx, "Dev", "pw", domain.RoleMember, domain.TeamAgency)
	require.NoError(t, err)
	qa, err := env.userSvc.Create(ctx, "QA", "pw", domain.RoleMember, domain.TeamAgency)
	require.NoError(t, err)

	sub := testutil.NewTestSubmission("Acme")
	sub.SubmitterName = "Hemanth"
	due := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)
	require.NoError(t, env.submissions.Create(ctx, sub))

	sub.DeveloperID = dev.ID
	sub.BuildDueDate = &due
	require.NoError(t, env.submissionSvc.Update(ctx, sub))

	devNotifs, err := env.notifSvc.ListForUser(ctx, dev.ID)
	require.NoError(t, err)
	require.Len(t, devNotifs, 1)
	assert.Equal(t, "Hemanth assigned you as Developer on project: Acme. Due: Mar 15, 2026", devNotifs[0].Text)
	assert.False(t, devNotifs[0].Read)

	// QA assignment without a due date omits the due text.
	sub.QAID = qa.ID
	require.NoError(t, env.submissionSvc.Update(ctx, sub))

	qaNotifs, err := env.notifSvc.ListForUser(ctx, qa.ID)
	require.NoError(t, err)
	require.Len(t, qaNotifs, 1)
	assert.Equal(t, "Hemanth assigned you as QA on project: Acme.", qaNotifs[0].Text)

	// Saving again with the same assignees notifies nobody.
	require.NoError(t, env.submissionSvc.Update(ctx, sub))
	devNotifs, err = env.notifSvc.ListForUser(ctx, dev.ID)
	require.NoError(t, err)
	assert.Len(t, devNotifs, 1)
}

func TestSubmissionService_CountsByTeam(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	require.NoError(t, env.submissionSvc.Create(ctx, &domain.Submission{Title: "A", Team: domain.TeamVerticals}))
	require.NoError(t, env.submissionSvc.Create(ctx, &domain.Submission{Title: "B", Team: domain.TeamVerticals}))

	counts, err := env.submissionSvc.CountsByTeam(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.SubmissionStats{Today: 2, Total: 2}, counts[domain.TeamVerticals])
	assert.Equal(t, domain.SubmissionStats{}, counts[domain.TeamAgency])
}
