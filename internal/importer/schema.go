package importer

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"
)

// Logical column names for bulk import files. Incoming headers are matched
// case-insensitively against these after trimming and quote-stripping.
const (
	ColPartnerName   = "project partner name"
	ColPartnerID     = "project partner id"
	ColAccountName   = "project account name"
	ColAccountID     = "project account id"
	ColProjectTitle  = "project title"
	ColProjectStatus = "project status"
	ColTaskTitle     = "task title"
	ColAssigneeName  = "task assignee full name"
	ColTaskStatus    = "task status"
	ColCreatedDate   = "task created date"
	ColDueDate       = "task due date"
	ColTeam          = "team"
)

// ExportHeaders is the fixed column order written by CSV and XLSX exports.
// Import matches headers case-insensitively, so an exported file re-imports
// cleanly.
var ExportHeaders = []string{
	"Project Partner Name", "Project Partner ID", "Project Account Name", "Project Account ID",
	"Project Title", "Project Status", "Task Title", "Task Assignee Full Name",
	"Task Status", "Task Created Date", "Task Due Date", "Team",
}

// ErrEmptyFile is returned when an import file has no data rows.
var ErrEmptyFile = errors.New("file is empty or has only a header row")

// Row is a single data row keyed by normalized header name. Missing columns
// read as the empty string.
type Row map[string]string

// Get returns the trimmed value for a logical column.
func (r Row) Get(col string) string {
	return r[col]
}

func normalizeHeader(h string) string {
	return strings.ToLower(strings.ReplaceAll(strings.TrimSpace(h), `"`, ""))
}

// checkHeader enforces the batch-level pre-checks: the file must carry the
// project title and task status columns, and at least one of team or
// assignee name.
func checkHeader(header map[string]int) error {
	var missing []string
	for _, required := range []string{ColProjectTitle, ColTaskStatus} {
		if _, ok := header[required]; !ok {
			missing = append(missing, required)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing required columns: %s", strings.Join(missing, ", "))
	}

	_, hasTeam := header[ColTeam]
	_, hasAssignee := header[ColAssigneeName]
	if !hasTeam && !hasAssignee {
		return fmt.Errorf("must contain either a %q or a %q column", ColTeam, ColAssigneeName)
	}
	return nil
}

// rowsFromRecords turns raw records (header first) into Rows. Records shorter
// than the header are padded with empty values; fully empty records are
// skipped.
func rowsFromRecords(records [][]string) ([]Row, error) {
	var nonEmpty [][]string
	for _, rec := range records {
		if recordHasContent(rec) {
			nonEmpty = append(nonEmpty, rec)
		}
	}
	if len(nonEmpty) <= 1 {
		return nil, ErrEmptyFile
	}

	header := make(map[string]int, len(nonEmpty[0]))
	for i, h := range nonEmpty[0] {
		header[normalizeHeader(h)] = i
	}
	if err := checkHeader(header); err != nil {
		return nil, err
	}

	rows := make([]Row, 0, len(nonEmpty)-1)
	for _, rec := range nonEmpty[1:] {
		row := make(Row, len(header))
		for col, idx := range header {
			if idx < len(rec) {
				row[col] = strings.TrimSpace(strings.ReplaceAll(rec[idx], `"`, ""))
			}
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func recordHasContent(rec []string) bool {
	for _, v := range rec {
		if strings.TrimSpace(v) != "" {
			return true
		}
	}
	return false
}

var strictDatePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// ParseStrictDate accepts a date only in exact YYYY-MM-DD form. Anything
// else, including other date layouts, reports false so the caller can apply
// its default.
func ParseStrictDate(s string) (time.Time, bool) {
	if !strictDatePattern.MatchString(s) {
		return time.Time{}, false
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}
