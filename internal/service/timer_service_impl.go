package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/hemanthkpolineni-commits/Dashboard-Project/internal/db"
	"github.com/hemanthkpolineni-commits/Dashboard-Project/internal/domain"
	"github.com/hemanthkpolineni-commits/Dashboard-Project/internal/repository"
)

type timerService struct {
	uow      db.UnitOfWork
	observer UseCaseObserver
}

func NewTimerService(uow db.UnitOfWork, observers ...UseCaseObserver) TimerService {
	return &timerService{uow: uow, observer: useCaseObserverOrNoop(observers)}
}

func (s *timerService) ChangeStatus(ctx context.Context, submissionID string, newStatus domain.TaskStatus, actorID string) (*domain.Submission, error) {
	return s.transition(ctx, "change-status", submissionID, actorID,
		func(sub *domain.Submission, now time.Time) (float64, bool, error) {
			hours, logged := sub.ApplyStatus(newStatus, now)
			return hours, logged, nil
		})
}

func (s *timerService) Pause(ctx context.Context, submissionID, reason, actorID string) (*domain.Submission, error) {
	return s.transition(ctx, "pause-timer", submissionID, actorID,
		func(sub *domain.Submission, now time.Time) (float64, bool, error) {
			hours, err := sub.Pause(reason, now)
			if err != nil {
				return 0, false, err
			}
			return hours, true, nil
		})
}

func (s *timerService) Resume(ctx context.Context, submissionID string) (*domain.Submission, error) {
	return s.transition(ctx, "resume-timer", submissionID, "",
		func(sub *domain.Submission, now time.Time) (float64, bool, error) {
			return 0, false, sub.Resume(now)
		})
}

// transition runs a timer state change in one transaction: the submission
// update and, when an interval was accrued, the ledger posting for the acting
// user. A failed posting rolls the submission update back.
func (s *timerService) transition(
	ctx context.Context,
	useCase, submissionID, actorID string,
	apply func(sub *domain.Submission, now time.Time) (float64, bool, error),
) (updated *domain.Submission, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{"submission_id": submissionID}
	defer func() {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      useCase,
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
			Fields:    fields,
		})
	}()

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		subs := repository.NewSQLiteSubmissionRepo(tx)
		metrics := repository.NewSQLiteMetricRepo(tx)

		sub, err := subs.GetByID(ctx, submissionID)
		if err != nil {
			return err
		}

		now := time.Now().UTC()
		hours, logged, err := apply(sub, now)
		if err != nil {
			return err
		}
		if err := subs.Update(ctx, sub); err != nil {
			return err
		}

		if logged && actorID != "" {
			fields["hours"] = hours
			if err := metrics.AccumulateForDay(ctx, uuid.New().String(), actorID, now, hours); err != nil {
				return err
			}
		}

		updated = sub
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}
