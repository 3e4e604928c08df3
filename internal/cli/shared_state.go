package cli

import (
	"context"

	"github.com/hemanthkpolineni-commits/Dashboard-Project/internal/domain"
)

// SharedState is passed by pointer to every view so they share the App
// handle, terminal size, and the authenticated user.
type SharedState struct {
	App    *App
	Width  int
	Height int

	// CurrentUser is nil until the login view completes.
	CurrentUser *domain.User
}

// ContentHeight returns the rows available to the active view after the
// header and status bar are drawn.
func (s *SharedState) ContentHeight() int {
	h := s.Height - 5
	if h < 0 {
		return 0
	}
	return h
}

// scopedSubmissions returns the submissions the current user may see:
// admins see every team, members only their own.
func (s *SharedState) scopedSubmissions(ctx context.Context) ([]*domain.Submission, error) {
	if s.CurrentUser == nil || s.CurrentUser.IsAdmin() || s.CurrentUser.Team == "" {
		return s.App.Submissions.List(ctx)
	}
	return s.App.Submissions.ListByTeam(ctx, s.CurrentUser.Team)
}
