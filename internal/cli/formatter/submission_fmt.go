package formatter

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/hemanthkpolineni-commits/Dashboard-Project/internal/domain"
	"github.com/hemanthkpolineni-commits/Dashboard-Project/internal/service"
)

// FormatSubmissionList renders submissions as a table with a live-timer
// column computed against now.
func FormatSubmissionList(subs []*domain.Submission, now time.Time) string {
	headers := []string{"ID", "TITLE", "TASK", "TEAM", "STATUS", "TIMER", "ELAPSED", "LOGGED"}
	rows := make([][]string, 0, len(subs))
	for _, s := range subs {
		rows = append(rows, []string{
			shortID(s.ID),
			s.Title,
			s.TaskTitle,
			string(s.Team),
			StatusStyle(s.Status).Render(string(s.Status)),
			TimerIndicator(s.TimerState),
			s.ElapsedDisplay(now),
			fmt.Sprintf("%.2fh", s.LoggedHours),
		})
	}
	return RenderTable(headers, rows)
}

// FormatSubmissionDetail renders one submission as a field list.
func FormatSubmissionDetail(s *domain.Submission, developer, qa string) string {
	var b strings.Builder
	write := func(label, value string) {
		if value == "" {
			value = StyleDim.Render("-")
		}
		fmt.Fprintf(&b, "%s %s\n", StyleBold.Render(label+":"), value)
	}

	write("Title", s.Title)
	write("Task", s.TaskTitle)
	write("Type", s.ProjectType)
	write("Team", string(s.Team))
	write("Status", StatusStyle(s.Status).Render(string(s.Status)))
	write("Project status", s.ProjectStatus)
	write("Partner", joinNonEmpty(s.ProjectPartnerName, s.ProjectPartnerID))
	write("Account", joinNonEmpty(s.ProjectAccountName, s.ProjectAccountID))
	write("Submitter", s.SubmitterName)
	write("Developer", developer)
	write("QA", qa)
	write("Build due", formatOptionalDate(s.BuildDueDate))
	write("QA due", formatOptionalDate(s.QADueDate))
	write("Created", s.CreatedDate.Format("2006-01-02"))
	write("Timer", TimerIndicator(s.TimerState))
	if s.TimerState == domain.TimerPaused {
		write("Pause reason", s.PauseReason)
	}
	write("Logged", fmt.Sprintf("%.2fh", s.LoggedHours))
	return b.String()
}

// FormatTeamCounts renders per-team submission totals.
func FormatTeamCounts(counts map[domain.TeamName]domain.SubmissionStats) string {
	headers := []string{"TEAM", "TODAY", "TOTAL"}
	rows := make([][]string, 0, len(domain.AllTeams))
	for _, team := range domain.AllTeams {
		stats := counts[team]
		rows = append(rows, []string{
			string(team),
			fmt.Sprintf("%d", stats.Today),
			fmt.Sprintf("%d", stats.Total),
		})
	}
	return RenderTable(headers, rows)
}

// FormatUtilization renders a per-user utilization report.
func FormatUtilization(report []service.UtilizationRow) string {
	headers := []string{"USER", "TEAM", "TOTAL", "DAYS", "AVG/DAY"}
	rows := make([][]string, 0, len(report))
	for _, r := range report {
		rows = append(rows, []string{
			r.User.Name,
			string(r.User.Team),
			fmt.Sprintf("%.2fh", r.TotalHours),
			fmt.Sprintf("%d", r.Days),
			fmt.Sprintf("%.2fh", r.AvgHours),
		})
	}
	return RenderTable(headers, rows)
}

// FormatDashboardStats renders the overview block.
func FormatDashboardStats(stats *service.DashboardStats) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s  %d\n", StyleBold.Render("Submissions:"), stats.TotalSubmissions)
	fmt.Fprintf(&b, "%s  %s %d   %s %d   %s %d\n",
		StyleBold.Render("Pipeline:   "),
		StyleBlue.Render("in progress"), stats.InProgress,
		StyleYellow.Render("pending"), stats.Pending,
		StyleGreen.Render("completed"), stats.Completed)
	fmt.Fprintf(&b, "%s  %d\n", StyleBold.Render("Error logs: "), stats.TotalErrors)
	fmt.Fprintf(&b, "%s  %.2fh/day (30d)\n", StyleBold.Render("Utilization:"), stats.AvgUtilization)

	b.WriteString("\n" + StyleHeader.Render("Projects per team") + "\n")
	for _, team := range domain.AllTeams {
		fmt.Fprintf(&b, "  %-14s %d\n", team, stats.TeamProjectCounts[team])
	}

	if len(stats.ProjectStatusCounts) > 0 {
		b.WriteString("\n" + StyleHeader.Render("Project status") + "\n")
		statuses := make([]string, 0, len(stats.ProjectStatusCounts))
		for status := range stats.ProjectStatusCounts {
			statuses = append(statuses, status)
		}
		sort.Strings(statuses)
		for _, status := range statuses {
			fmt.Fprintf(&b, "  %-20s %d\n", status, stats.ProjectStatusCounts[status])
		}
	}
	return b.String()
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

func joinNonEmpty(name, id string) string {
	switch {
	case name != "" && id != "":
		return name + " (" + id + ")"
	case name != "":
		return name
	default:
		return id
	}
}

func formatOptionalDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format("2006-01-02")
}
