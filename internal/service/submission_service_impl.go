package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/hemanthkpolineni-commits/Dashboard-Project/internal/domain"
	"github.com/hemanthkpolineni-commits/Dashboard-Project/internal/repository"
)

type submissionService struct {
	submissions   repository.SubmissionRepo
	notifications NotificationService
}

func NewSubmissionService(submissions repository.SubmissionRepo, notifications NotificationService) SubmissionService {
	return &submissionService{submissions: submissions, notifications: notifications}
}

func (s *submissionService) Create(ctx context.Context, sub *domain.Submission) error {
	now := time.Now().UTC()
	if sub.ID == "" {
		sub.ID = uuid.New().String()
	}
	if sub.Title == "" {
		sub.Title = "Untitled"
	}
	if sub.ProjectType == "" {
		sub.ProjectType = "N/A"
	}
	if sub.SubmitterName == "" {
		sub.SubmitterName = "System"
	}
	if sub.Team == "" {
		sub.Team = domain.TeamAgency
	}
	if sub.Status == "" {
		sub.Status = domain.StatusPending
	}
	if sub.CreatedDate.IsZero() {
		sub.CreatedDate = domain.DayStart(now)
	}
	// Timer fields are system-owned regardless of input.
	sub.LoggedHours = 0
	sub.TimerState = domain.TimerStopped
	sub.TimerStartTime = nil
	sub.PauseReason = ""
	sub.LastTick = now
	sub.CreatedAt = now
	sub.UpdatedAt = now

	return s.submissions.Create(ctx, sub)
}

func (s *submissionService) GetByID(ctx context.Context, id string) (*domain.Submission, error) {
	return s.submissions.GetByID(ctx, id)
}

func (s *submissionService) List(ctx context.Context) ([]*domain.Submission, error) {
	return s.submissions.List(ctx)
}

func (s *submissionService) ListByTeam(ctx context.Context, team domain.TeamName) ([]*domain.Submission, error) {
	return s.submissions.ListByTeam(ctx, team)
}

func (s *submissionService) Update(ctx context.Context, sub *domain.Submission) error {
	previous, err := s.submissions.GetByID(ctx, sub.ID)
	if err != nil {
		return err
	}

	sub.UpdatedAt = time.Now().UTC()
	if err := s.submissions.Update(ctx, sub); err != nil {
		return err
	}

	if sub.DeveloperID != "" && sub.DeveloperID != previous.DeveloperID {
		text := fmt.Sprintf("%s assigned you as Developer on project: %s.%s",
			sub.SubmitterName, sub.Title, dueDateText(sub.BuildDueDate))
		if err := s.notifications.Notify(ctx, sub.DeveloperID, text); err != nil {
			return err
		}
	}
	if sub.QAID != "" && sub.QAID != previous.QAID {
		text := fmt.Sprintf("%s assigned you as QA on project: %s.%s",
			sub.SubmitterName, sub.Title, dueDateText(sub.QADueDate))
		if err := s.notifications.Notify(ctx, sub.QAID, text); err != nil {
			return err
		}
	}
	return nil
}

func dueDateText(due *time.Time) string {
	if due == nil {
		return ""
	}
	return " Due: " + due.Format("Jan 02, 2006")
}

func (s *submissionService) Delete(ctx context.Context, ids []string) error {
	return s.submissions.DeleteMany(ctx, ids)
}

func (s *submissionService) CountsByTeam(ctx context.Context) (map[domain.TeamName]domain.SubmissionStats, error) {
	return s.submissions.CountsByTeam(ctx, time.Now().UTC())
}
