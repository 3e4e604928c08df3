package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/mattn/go-isatty"

	"github.com/hemanthkpolineni-commits/Dashboard-Project/internal/cli"
	"github.com/hemanthkpolineni-commits/Dashboard-Project/internal/config"
	"github.com/hemanthkpolineni-commits/Dashboard-Project/internal/db"
	"github.com/hemanthkpolineni-commits/Dashboard-Project/internal/domain"
	"github.com/hemanthkpolineni-commits/Dashboard-Project/internal/importer"
	"github.com/hemanthkpolineni-commits/Dashboard-Project/internal/repository"
	"github.com/hemanthkpolineni-commits/Dashboard-Project/internal/service"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// DB path: env var, or an in-memory database for throwaway sessions.
	dbPath := os.Getenv("DASHBOARD_DB")
	if dbPath == "" {
		dbPath = ":memory:"
	}

	database, err := db.OpenDB(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	// Seed file: accounts, team rosters and starter submissions. Optional
	// unless named explicitly.
	seedPath := os.Getenv("DASHBOARD_SEED")
	seedOptional := seedPath == ""
	if seedOptional {
		seedPath = "seed.yaml"
	}
	seed := &config.Seed{}
	if s, err := config.LoadSeed(seedPath); err == nil {
		seed = s
	} else if !seedOptional || !errors.Is(err, os.ErrNotExist) {
		return err
	}

	userRepo := repository.NewSQLiteUserRepo(database)
	subRepo := repository.NewSQLiteSubmissionRepo(database)
	metricRepo := repository.NewSQLiteMetricRepo(database)
	errorLogRepo := repository.NewSQLiteErrorLogRepo(database)
	notificationRepo := repository.NewSQLiteNotificationRepo(database)
	documentRepo := repository.NewSQLiteDocumentRepo(database)

	uow := db.NewSQLiteUnitOfWork(database)

	var observers []service.UseCaseObserver
	if os.Getenv("DASHBOARD_VERBOSE") != "" {
		observers = append(observers, service.NewLogUseCaseObserver(os.Stderr))
	}

	structures := seed.TeamStructures()

	userSvc := service.NewUserService(userRepo)
	notifySvc := service.NewNotificationService(notificationRepo)

	app := &cli.App{
		Users:         userSvc,
		Submissions:   service.NewSubmissionService(subRepo, notifySvc),
		Timer:         service.NewTimerService(uow, observers...),
		Import:        service.NewImportService(subRepo, userSvc, observers...),
		Metrics:       service.NewMetricsService(metricRepo, userRepo, subRepo, errorLogRepo, structures),
		ErrorLogs:     service.NewErrorLogService(errorLogRepo, subRepo),
		Notifications: notifySvc,
		Documents:     service.NewDocumentService(documentRepo),
		Structures:    structures,
	}

	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	if err := applySeed(context.Background(), app, seed); err != nil {
		return fmt.Errorf("applying seed: %w", err)
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}

// applySeed creates seeded users and submissions that do not already exist.
// Re-running against a persistent database is safe.
func applySeed(ctx context.Context, app *cli.App, seed *config.Seed) error {
	for _, u := range seed.Users {
		if _, err := app.Users.GetByName(ctx, u.Name); err == nil {
			continue
		}
		role := domain.UserRole(u.Role)
		if role != domain.RoleAdmin {
			role = domain.RoleMember
		}
		if _, err := app.Users.Create(ctx, u.Name, u.Password, role, domain.TeamName(u.Team)); err != nil {
			return fmt.Errorf("seeding user %q: %w", u.Name, err)
		}
	}

	existing, err := app.Submissions.List(ctx)
	if err != nil {
		return err
	}
	seen := make(map[string]bool, len(existing))
	for _, s := range existing {
		seen[s.Title+"\x00"+s.TaskTitle] = true
	}

	for _, s := range seed.Submissions {
		if seen[s.Title+"\x00"+s.TaskTitle] {
			continue
		}
		sub := &domain.Submission{
			Title:         s.Title,
			ProjectType:   s.ProjectType,
			TaskTitle:     s.TaskTitle,
			SubmitterName: s.SubmitterName,
			ProjectStatus: s.ProjectStatus,
			Team:          domain.TeamName(s.Team),
		}
		if status, ok := domain.ParseTaskStatus(s.Status); ok {
			sub.Status = status
		}
		if d, ok := importer.ParseStrictDate(s.CreatedDate); ok {
			sub.CreatedDate = d
		}
		if d, ok := importer.ParseStrictDate(s.BuildDueDate); ok {
			due := d
			sub.BuildDueDate = &due
		}
		if err := app.Submissions.Create(ctx, sub); err != nil {
			return fmt.Errorf("seeding submission %q: %w", s.Title, err)
		}
	}
	return nil
}
