package service

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hemanthkpolineni-commits/Dashboard-Project/internal/domain"
	"github.com/hemanthkpolineni-commits/Dashboard-Project/internal/importer"
)

func importCSV(t *testing.T, env *testEnv, data string) *BatchResult {
	t.Helper()
	rows, err := importer.ReadCSV(strings.NewReader(data))
	require.NoError(t, err)
	result, err := env.importSvc.ImportRows(context.Background(), rows)
	require.NoError(t, err)
	return result
}

const importHeader = "Project Title,Task Title,Task Assignee Full Name,Task Status,Task Created Date,Task Due Date,Team\n"

func TestImportRows_PartialSuccess(t *testing.T) {
	env := newTestEnv(t)

	result := importCSV(t, env, importHeader+
		"Acme Redesign,Build homepage,Jane Doe,In Progress,2026-01-10,2026-02-01,Agency\n"+
		",Fix nav,John Roe,Open,,,Agency\n"+
		"Beta Site,Fix footer,,nonsense,,,Verticals\n")

	assert.Equal(t, 1, result.SuccessCount)
	assert.Equal(t, 2, result.ErrorCount)
	assert.Equal(t, 0, result.DuplicateCount)
	require.Len(t, result.Errors, 2)
	assert.Equal(t, "Row 3: 'PROJECT TITLE' is missing.", result.Errors[0])
	assert.Equal(t, `Row 4: 'TASK STATUS' is missing or invalid. Received: "nonsense".`, result.Errors[1])

	subs, err := env.submissions.List(context.Background())
	require.NoError(t, err)
	require.Len(t, subs, 1)
	sub := subs[0]
	assert.Equal(t, "Acme Redesign", sub.Title)
	assert.Equal(t, domain.StatusInProgress, sub.Status)
	assert.Equal(t, domain.TimerStopped, sub.TimerState)
	assert.Equal(t, 0.0, sub.LoggedHours)
	assert.Equal(t, time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC), sub.CreatedDate)
	require.NotNil(t, sub.BuildDueDate)
	assert.Equal(t, time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC), *sub.BuildDueDate)
}

func TestImportRows_EmptyStatusMessage(t *testing.T) {
	env := newTestEnv(t)

	result := importCSV(t, env, importHeader+"Acme,Task,,,,,Agency\n")

	require.Len(t, result.Errors, 1)
	assert.Equal(t, `Row 2: 'TASK STATUS' is missing or invalid. Received: "empty".`, result.Errors[0])
}

func TestImportRows_DuplicateWithinBatchCountedOnce(t *testing.T) {
	env := newTestEnv(t)

	result := importCSV(t, env, importHeader+
		"Acme,Build,,Open,,,Agency\n"+
		"Acme,Build,,Open,,,Agency\n"+
		"Acme,Other Task,,Open,,,Agency\n")

	assert.Equal(t, 2, result.SuccessCount)
	assert.Equal(t, 1, result.DuplicateCount)
	assert.Equal(t, 0, result.ErrorCount)
}

func TestImportRows_DuplicateAgainstExisting(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	importCSV(t, env, importHeader+"Acme,Build,,Open,,,Agency\n")

	// The worked example: one new row, one re-submitted row.
	result := importCSV(t, env, importHeader+
		"Acme,Build,,Open,,,Agency\n"+
		"Beta,Audit,,Pending,,,Verticals\n")

	assert.Equal(t, 1, result.SuccessCount)
	assert.Equal(t, 1, result.DuplicateCount)
	assert.Equal(t, 0, result.ErrorCount)
	assert.Empty(t, result.Errors)

	subs, err := env.submissions.List(ctx)
	require.NoError(t, err)
	assert.Len(t, subs, 2)
}

func TestImportRows_UnknownAssigneeCreatedOnce(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	result := importCSV(t, env, importHeader+
		"P1,T1,New Person,Open,,,High Velocity\n"+
		"P2,T2,new person,Open,,,High Velocity\n")

	assert.Equal(t, 2, result.SuccessCount)

	users, err := env.users.List(ctx)
	require.NoError(t, err)
	require.Len(t, users, 1)
	created := users[0]
	assert.Equal(t, "New Person", created.Name)
	assert.Equal(t, domain.RoleMember, created.Role)
	assert.Equal(t, domain.TeamHighVelocity, created.Team)
	// Auto-created users get a hashed default credential, never plaintext.
	assert.NotEmpty(t, created.PasswordHash)
	assert.NotEqual(t, "user", created.PasswordHash)

	// Both rows point at the same user.
	subs, err := env.submissions.List(ctx)
	require.NoError(t, err)
	require.Len(t, subs, 2)
	assert.Equal(t, created.ID, subs[0].DeveloperID)
	assert.Equal(t, created.ID, subs[1].DeveloperID)
}

func TestImportRows_UnknownAssigneeWithoutTeamFails(t *testing.T) {
	env := newTestEnv(t)

	result := importCSV(t, env, importHeader+"P1,T1,Ghost,Open,,,\n")

	assert.Equal(t, 0, result.SuccessCount)
	require.Len(t, result.Errors, 1)
	assert.Equal(t, "Row 2: New assignee 'Ghost' found, but team is missing or invalid. Cannot create user.", result.Errors[0])

	users, err := env.users.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, users)
}

func TestImportRows_TeamFallsBackToAssignee(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	existing, err := env.userSvc.Create(ctx, "Jane Doe", "pw", domain.RoleMember, domain.TeamVerticals)
	require.NoError(t, err)

	result := importCSV(t, env, importHeader+"P1,T1,Jane Doe,Open,,,\n")
	assert.Equal(t, 1, result.SuccessCount)

	subs, err := env.submissions.List(ctx)
	require.NoError(t, err)
	require.Len(t, subs, 1)
	assert.Equal(t, domain.TeamVerticals, subs[0].Team)
	assert.Equal(t, existing.ID, subs[0].DeveloperID)
}

func TestImportRows_InvalidTeamMessage(t *testing.T) {
	env := newTestEnv(t)

	result := importCSV(t, env, importHeader+"P1,T1,,Open,,,Nonexistent Team\n")

	require.Len(t, result.Errors, 1)
	assert.Equal(t, "Row 2: Team is missing or invalid. Assign a valid team or a user who belongs to a team.", result.Errors[0])
}

func TestImportRows_MalformedDatesUseDefaults(t *testing.T) {
	env := newTestEnv(t)

	result := importCSV(t, env, importHeader+"P1,T1,,Open,15/01/2026,someday,Agency\n")
	assert.Equal(t, 1, result.SuccessCount)

	subs, err := env.submissions.List(context.Background())
	require.NoError(t, err)
	require.Len(t, subs, 1)
	assert.Equal(t, domain.DayStart(time.Now().UTC()), subs[0].CreatedDate)
	assert.Nil(t, subs[0].BuildDueDate)
}

func TestExportCSV_RoundTripsAsDuplicates(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	importCSV(t, env, importHeader+
		"Acme,Build,Jane Doe,In Progress,2026-01-10,2026-02-01,Agency\n"+
		"Beta,Audit,,Pending,2026-01-11,,Verticals\n")

	var buf bytes.Buffer
	require.NoError(t, env.importSvc.ExportCSV(ctx, &buf))

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, strings.Join(importer.ExportHeaders, ",")))
	assert.Contains(t, out, "Jane Doe")
	assert.Contains(t, out, "Unassigned")

	// Re-importing an export produces no new submissions.
	rows, err := importer.ReadCSV(strings.NewReader(out))
	require.NoError(t, err)
	result, err := env.importSvc.ImportRows(ctx, rows)
	require.NoError(t, err)
	assert.Equal(t, 0, result.SuccessCount)
	assert.Equal(t, 2, result.DuplicateCount)
	assert.Equal(t, 0, result.ErrorCount)
}

func TestExportXLSX_RoundTrip(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	importCSV(t, env, importHeader+"Acme,Build,,Open,2026-01-10,,BroadlyDuda\n")

	var buf bytes.Buffer
	require.NoError(t, env.importSvc.ExportXLSX(ctx, &buf))

	rows, err := importer.ReadXLSX(&buf)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Acme", rows[0].Get(importer.ColProjectTitle))

	result, err := env.importSvc.ImportRows(ctx, rows)
	require.NoError(t, err)
	assert.Equal(t, 1, result.DuplicateCount)
}

func TestImportRows_LargeBatchIndependentRows(t *testing.T) {
	env := newTestEnv(t)

	var b strings.Builder
	b.WriteString(importHeader)
	for i := 0; i < 50; i++ {
		if i%10 == 0 {
			b.WriteString(",Task,,Open,,,Agency\n") // missing title
			continue
		}
		fmt.Fprintf(&b, "Project %d,Task,,Open,,,Agency\n", i)
	}

	result := importCSV(t, env, b.String())
	assert.Equal(t, 45, result.SuccessCount)
	assert.Equal(t, 5, result.ErrorCount)
	assert.Len(t, result.Errors, 5)
}
