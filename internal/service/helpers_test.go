package service

import (
	"database/sql"
	"testing"

	"github.com/hemanthkpolineni-commits/Dashboard-Project/internal/domain"
	"github.com/hemanthkpolineni-commits/Dashboard-Project/internal/repository"
	"github.com/hemanthkpolineni-commits/Dashboard-Project/internal/testutil"
)

// testEnv wires the full service stack over one in-memory database.
type testEnv struct {
	db *sql.DB

	users       repository.UserRepo
	submissions repository.SubmissionRepo
	metrics     repository.MetricRepo
	errorLogs   repository.ErrorLogRepo

	userSvc       UserService
	submissionSvc SubmissionService
	timerSvc      TimerService
	importSvc     ImportService
	metricsSvc    MetricsService
	notifSvc      NotificationService
	errorLogSvc   ErrorLogService
}

var testStructures = []domain.TeamStructure{
	{Name: domain.TeamHighVelocity, Lead: "John"},
	{Name: domain.TeamAgency, Lead: "Theresa"},
	{Name: domain.TeamVerticals, Lead: "Swaminathan"},
	{Name: domain.TeamBroadlyDuda, Lead: "Shivaraman"},
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	database := testutil.NewTestDB(t)

	users := repository.NewSQLiteUserRepo(database)
	subs := repository.NewSQLiteSubmissionRepo(database)
	metrics := repository.NewSQLiteMetricRepo(database)
	logs := repository.NewSQLiteErrorLogRepo(database)
	notifs := repository.NewSQLiteNotificationRepo(database)

	userSvc := NewUserService(users)
	notifSvc := NewNotificationService(notifs)

	return &testEnv{
		db:            database,
		users:         users,
		submissions:   subs,
		metrics:       metrics,
		errorLogs:     logs,
		userSvc:       userSvc,
		submissionSvc: NewSubmissionService(subs, notifSvc),
		timerSvc:      NewTimerService(testutil.NewTestUoW(database)),
		importSvc:     NewImportService(subs, userSvc),
		metricsSvc:    NewMetricsService(metrics, users, subs, logs, testStructures),
		notifSvc:      notifSvc,
		errorLogSvc:   NewErrorLogService(logs, subs),
	}
}
