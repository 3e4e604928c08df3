package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/hemanthkpolineni-commits/Dashboard-Project/internal/domain"
	"github.com/hemanthkpolineni-commits/Dashboard-Project/internal/repository"
)

type metricsService struct {
	metrics     repository.MetricRepo
	users       repository.UserRepo
	submissions repository.SubmissionRepo
	errorLogs   repository.ErrorLogRepo
	structures  []domain.TeamStructure
}

func NewMetricsService(
	metrics repository.MetricRepo,
	users repository.UserRepo,
	submissions repository.SubmissionRepo,
	errorLogs repository.ErrorLogRepo,
	structures []domain.TeamStructure,
) MetricsService {
	return &metricsService{
		metrics:     metrics,
		users:       users,
		submissions: submissions,
		errorLogs:   errorLogs,
		structures:  structures,
	}
}

func (s *metricsService) LogTime(ctx context.Context, userID string, hours float64) error {
	return s.metrics.AccumulateForDay(ctx, uuid.New().String(), userID, time.Now().UTC(), hours)
}

func (s *metricsService) AddEntry(ctx context.Context, userID string, hours float64, day time.Time) error {
	return s.metrics.AccumulateForDay(ctx, uuid.New().String(), userID, day, hours)
}

func (s *metricsService) DailySeries(ctx context.Context, userID string, start, end time.Time) ([]*domain.UserMetric, error) {
	return s.metrics.ListByUserRange(ctx, userID, start, end)
}

func (s *metricsService) Utilization(ctx context.Context, f UtilizationFilter) ([]UtilizationRow, error) {
	var metrics []*domain.UserMetric
	var err error
	if f.Start != nil && f.End != nil {
		metrics, err = s.metrics.ListRange(ctx, *f.Start, *f.End)
	} else {
		metrics, err = s.metrics.List(ctx)
	}
	if err != nil {
		return nil, err
	}

	users, err := s.users.List(ctx)
	if err != nil {
		return nil, err
	}

	// Reports cover members only; the lead filter resolves to that lead's
	// team and wins over an explicit team filter.
	team := f.Team
	if f.Lead != "" {
		team = ""
		for _, ts := range s.structures {
			if ts.Lead == f.Lead {
				team = ts.Name
				break
			}
		}
	}

	var relevant []*domain.User
	for _, u := range users {
		if u.Role != domain.RoleMember {
			continue
		}
		if team != "" && u.Team != team {
			continue
		}
		if f.UserID != "" && u.ID != f.UserID {
			continue
		}
		relevant = append(relevant, u)
	}

	return aggregateUtilization(relevant, metrics), nil
}

// aggregateUtilization folds ledger entries into per-user totals. A day is
// active only when it carries positive hours.
func aggregateUtilization(users []*domain.User, metrics []*domain.UserMetric) []UtilizationRow {
	byUser := make(map[string]*UtilizationRow, len(users))
	rows := make([]UtilizationRow, len(users))
	for i, u := range users {
		rows[i] = UtilizationRow{User: u}
		byUser[u.ID] = &rows[i]
	}

	for _, m := range metrics {
		row, ok := byUser[m.UserID]
		if !ok {
			continue
		}
		row.TotalHours += m.Hours
		if m.Hours > 0 {
			row.Days++
		}
	}

	for i := range rows {
		if rows[i].Days > 0 {
			rows[i].AvgHours = rows[i].TotalHours / float64(rows[i].Days)
		}
	}
	return rows
}

func (s *metricsService) DashboardStats(ctx context.Context, viewer *domain.User) (*DashboardStats, error) {
	allSubs, err := s.submissions.List(ctx)
	if err != nil {
		return nil, err
	}
	allUsers, err := s.users.List(ctx)
	if err != nil {
		return nil, err
	}
	allLogs, err := s.errorLogs.List(ctx)
	if err != nil {
		return nil, err
	}

	admin := viewer.Role == domain.RoleAdmin

	var subs []*domain.Submission
	subTeams := make(map[string]domain.TeamName, len(allSubs))
	for _, sub := range allSubs {
		subTeams[sub.ID] = sub.Team
		if admin || sub.Team == viewer.Team {
			subs = append(subs, sub)
		}
	}

	var relevantUsers []*domain.User
	for _, u := range allUsers {
		if admin {
			if u.Role == domain.RoleMember {
				relevantUsers = append(relevantUsers, u)
			}
		} else if u.Team == viewer.Team {
			relevantUsers = append(relevantUsers, u)
		}
	}

	stats := &DashboardStats{
		TotalSubmissions:    len(subs),
		ProjectStatusCounts: make(map[string]int),
		TaskStatusCounts:    make(map[domain.TaskStatus]int),
		TeamProjectCounts:   make(map[domain.TeamName]int, len(domain.AllTeams)),
	}
	for _, team := range domain.AllTeams {
		stats.TeamProjectCounts[team] = 0
	}

	for _, sub := range subs {
		switch sub.Status {
		case domain.StatusInProgress:
			stats.InProgress++
		case domain.StatusPending, domain.StatusQAReview:
			stats.Pending++
		case domain.StatusCompleted:
			stats.Completed++
		}

		pStatus := sub.ProjectStatus
		if pStatus == "" {
			pStatus = "N/A"
		}
		stats.ProjectStatusCounts[pStatus]++
		stats.TaskStatusCounts[sub.Status]++
		if _, ok := stats.TeamProjectCounts[sub.Team]; ok {
			stats.TeamProjectCounts[sub.Team]++
		}
	}

	for _, log := range allLogs {
		if admin || subTeams[log.SubmissionID] == viewer.Team {
			stats.TotalErrors++
		}
	}

	// Trailing 30-day utilization across the relevant users.
	end := time.Now().UTC()
	start := end.AddDate(0, 0, -30)
	window, err := s.metrics.ListRange(ctx, start, end)
	if err != nil {
		return nil, err
	}
	var totalHours float64
	var totalDays int
	for _, row := range aggregateUtilization(relevantUsers, window) {
		totalHours += row.TotalHours
		totalDays += row.Days
	}
	if totalDays > 0 {
		stats.AvgUtilization = totalHours / float64(totalDays)
	}

	return stats, nil
}
