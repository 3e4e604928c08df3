package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/hemanthkpolineni-commits/Dashboard-Project/internal/domain"
	"github.com/hemanthkpolineni-commits/Dashboard-Project/internal/importer"
	"github.com/hemanthkpolineni-commits/Dashboard-Project/internal/repository"
)

// defaultImportPassword is the credential given to users auto-created during
// bulk import. They are expected to change it on first login.
const defaultImportPassword = "user"

type importService struct {
	submissions repository.SubmissionRepo
	userSvc     UserService
	observer    UseCaseObserver
}

func NewImportService(submissions repository.SubmissionRepo, userSvc UserService, observers ...UseCaseObserver) ImportService {
	return &importService{
		submissions: submissions,
		userSvc:     userSvc,
		observer:    useCaseObserverOrNoop(observers),
	}
}

func (s *importService) ImportFile(ctx context.Context, path string) (*BatchResult, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening import file: %w", err)
	}
	defer f.Close()

	var rows []importer.Row
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		rows, err = importer.ReadCSV(f)
	case ".xlsx":
		rows, err = importer.ReadXLSX(f)
	default:
		return nil, fmt.Errorf("unsupported import format %q", filepath.Ext(path))
	}
	if err != nil {
		return nil, err
	}
	return s.ImportRows(ctx, rows)
}

func (s *importService) ImportRows(ctx context.Context, rows []importer.Row) (result *BatchResult, err error) {
	startedAt := time.Now().UTC()
	defer func() {
		fields := map[string]any{"rows": len(rows)}
		if result != nil {
			fields["success"] = result.SuccessCount
			fields["errors"] = result.ErrorCount
			fields["duplicates"] = result.DuplicateCount
		}
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "bulk-import",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
			Fields:    fields,
		})
	}()

	result = &BatchResult{}
	for i, row := range rows {
		// Data rows start on line 2 of the file, after the header.
		rowNum := i + 2
		if err := s.importRow(ctx, row, rowNum, result); err != nil {
			return nil, err
		}
	}
	return result, nil
}

// importRow runs the per-row reconciliation pipeline. Validation failures are
// recorded on the result and do not stop the batch; only infrastructure
// errors propagate.
func (s *importService) importRow(ctx context.Context, row importer.Row, rowNum int, result *BatchResult) error {
	title := row.Get(importer.ColProjectTitle)
	if title == "" {
		result.fail("Row %d: 'PROJECT TITLE' is missing.", rowNum)
		return nil
	}

	taskTitle := row.Get(importer.ColTaskTitle)
	duplicate, err := s.submissions.ExistsByTitlePair(ctx, title, taskTitle)
	if err != nil {
		return err
	}
	if duplicate {
		result.DuplicateCount++
		return nil
	}

	team := domain.TeamName(row.Get(importer.ColTeam))
	var developerID string
	if assigneeName := row.Get(importer.ColAssigneeName); assigneeName != "" {
		assignee, err := s.userSvc.GetByName(ctx, assigneeName)
		switch {
		case err == nil:
			developerID = assignee.ID
			if team == "" {
				team = assignee.Team
			}
		case errors.Is(err, repository.ErrNotFound):
			if !domain.ValidTeam(team) {
				result.fail("Row %d: New assignee '%s' found, but team is missing or invalid. Cannot create user.", rowNum, assigneeName)
				return nil
			}
			created, err := s.userSvc.Create(ctx, assigneeName, defaultImportPassword, domain.RoleMember, team)
			if err != nil {
				return err
			}
			developerID = created.ID
		default:
			return err
		}
	}

	incomingStatus := row.Get(importer.ColTaskStatus)
	status, ok := domain.ParseTaskStatus(incomingStatus)
	if !ok {
		received := incomingStatus
		if received == "" {
			received = "empty"
		}
		result.fail("Row %d: 'TASK STATUS' is missing or invalid. Received: %q.", rowNum, received)
		return nil
	}

	if !domain.ValidTeam(team) {
		result.fail("Row %d: Team is missing or invalid. Assign a valid team or a user who belongs to a team.", rowNum)
		return nil
	}

	now := time.Now().UTC()
	createdDate := domain.DayStart(now)
	if d, ok := importer.ParseStrictDate(row.Get(importer.ColCreatedDate)); ok {
		createdDate = d
	}
	var buildDue *time.Time
	if d, ok := importer.ParseStrictDate(row.Get(importer.ColDueDate)); ok {
		buildDue = &d
	}

	projectType := taskTitle
	if projectType == "" {
		projectType = "N/A"
	}

	sub := &domain.Submission{
		ID:                 uuid.New().String(),
		Title:              title,
		ProjectType:        projectType,
		TaskTitle:          taskTitle,
		SubmitterName:      "System",
		ProjectPartnerName: row.Get(importer.ColPartnerName),
		ProjectPartnerID:   row.Get(importer.ColPartnerID),
		ProjectAccountName: row.Get(importer.ColAccountName),
		ProjectAccountID:   row.Get(importer.ColAccountID),
		ProjectStatus:      row.Get(importer.ColProjectStatus),
		Team:               team,
		Status:             status,
		DeveloperID:        developerID,
		BuildDueDate:       buildDue,
		CreatedDate:        createdDate,
		TimerState:         domain.TimerStopped,
		LastTick:           now,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
	if err := s.submissions.Create(ctx, sub); err != nil {
		return err
	}
	result.SuccessCount++
	return nil
}

func (r *BatchResult) fail(format string, args ...any) {
	r.Errors = append(r.Errors, fmt.Sprintf(format, args...))
	r.ErrorCount++
}

func (s *importService) ExportCSV(ctx context.Context, w io.Writer) error {
	records, err := s.exportRecords(ctx)
	if err != nil {
		return err
	}
	return importer.WriteCSV(w, records)
}

func (s *importService) ExportXLSX(ctx context.Context, w io.Writer) error {
	records, err := s.exportRecords(ctx)
	if err != nil {
		return err
	}
	return importer.WriteXLSX(w, records)
}

func (s *importService) exportRecords(ctx context.Context) ([]importer.ExportRecord, error) {
	subs, err := s.submissions.List(ctx)
	if err != nil {
		return nil, err
	}

	records := make([]importer.ExportRecord, 0, len(subs))
	for _, sub := range subs {
		assignee := "Unassigned"
		if sub.DeveloperID != "" {
			if u, err := s.userSvc.GetByID(ctx, sub.DeveloperID); err == nil {
				assignee = u.Name
			}
		}
		dueDate := ""
		if sub.BuildDueDate != nil {
			dueDate = sub.BuildDueDate.Format("2006-01-02")
		}
		records = append(records, importer.ExportRecord{
			PartnerName:   sub.ProjectPartnerName,
			PartnerID:     sub.ProjectPartnerID,
			AccountName:   sub.ProjectAccountName,
			AccountID:     sub.ProjectAccountID,
			Title:         sub.Title,
			ProjectStatus: sub.ProjectStatus,
			TaskTitle:     sub.TaskTitle,
			AssigneeName:  assignee,
			Status:        string(sub.Status),
			CreatedDate:   sub.CreatedDate.Format("2006-01-02"),
			DueDate:       dueDate,
			Team:          string(sub.Team),
		})
	}
	return records, nil
}
