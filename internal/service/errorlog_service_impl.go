package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/hemanthkpolineni-commits/Dashboard-Project/internal/domain"
	"github.com/hemanthkpolineni-commits/Dashboard-Project/internal/repository"
)

type errorLogService struct {
	logs        repository.ErrorLogRepo
	submissions repository.SubmissionRepo
}

func NewErrorLogService(logs repository.ErrorLogRepo, submissions repository.SubmissionRepo) ErrorLogService {
	return &errorLogService{logs: logs, submissions: submissions}
}

func (s *errorLogService) Report(ctx context.Context, submissionID, description, reportedByID string) (*domain.ErrorLog, error) {
	// The referenced submission must exist; the row is rejected otherwise.
	if _, err := s.submissions.GetByID(ctx, submissionID); err != nil {
		return nil, err
	}

	log := &domain.ErrorLog{
		ID:           uuid.New().String(),
		SubmissionID: submissionID,
		Description:  description,
		ReportedByID: reportedByID,
		Timestamp:    time.Now().UTC(),
	}
	if err := s.logs.Create(ctx, log); err != nil {
		return nil, err
	}
	return log, nil
}

func (s *errorLogService) List(ctx context.Context) ([]*domain.ErrorLog, error) {
	return s.logs.List(ctx)
}

func (s *errorLogService) ListBySubmission(ctx context.Context, submissionID string) ([]*domain.ErrorLog, error) {
	return s.logs.ListBySubmission(ctx, submissionID)
}
