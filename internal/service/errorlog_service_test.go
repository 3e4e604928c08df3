package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hemanthkpolineni-commits/Dashboard-Project/internal/repository"
	"github.com/hemanthkpolineni-commits/Dashboard-Project/internal/testutil"
)

func TestErrorLogService_ReportRequiresSubmission(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	_, err := env.errorLogSvc.Report(ctx, "nonexistent", "desc", "u1")
	assert.ErrorIs(t, err, repository.ErrNotFound)

	sub := testutil.NewTestSubmission("Buggy")
	require.NoError(t, env.submissions.Create(ctx, sub))

	log, err := env.errorLogSvc.Report(ctx, sub.ID, "API endpoint returning 500 on submit.", "u1")
	require.NoError(t, err)
	assert.NotEmpty(t, log.ID)

	logs, err := env.errorLogSvc.ListBySubmission(ctx, sub.ID)
	require.NoError(t, err)
	require.Len(t, logs, 1)
	assert.Equal(t, "API endpoint returning 500 on submit.", logs[0].Description)
}
