package importer

import (
	"encoding/csv"
	"fmt"
	"io"
)

// ReadCSV parses CSV data into import rows. The first non-empty record is the
// header; batch-level pre-checks run before any row is returned.
func ReadCSV(r io.Reader) ([]Row, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parsing csv: %w", err)
	}
	return rowsFromRecords(records)
}

// ExportRecord is the fixed 12-column projection written by exports, one per
// submission.
type ExportRecord struct {
	PartnerName   string
	PartnerID     string
	AccountName   string
	AccountID     string
	Title         string
	ProjectStatus string
	TaskTitle     string
	AssigneeName  string
	Status        string
	CreatedDate   string
	DueDate       string
	Team          string
}

func (e ExportRecord) values() []string {
	return []string{
		e.PartnerName, e.PartnerID, e.AccountName, e.AccountID,
		e.Title, e.ProjectStatus, e.TaskTitle, e.AssigneeName,
		e.Status, e.CreatedDate, e.DueDate, e.Team,
	}
}

// WriteCSV writes the export header followed by one record per submission.
func WriteCSV(w io.Writer, records []ExportRecord) error {
	writer := csv.NewWriter(w)
	if err := writer.Write(ExportHeaders); err != nil {
		return fmt.Errorf("writing csv header: %w", err)
	}
	for _, rec := range records {
		if err := writer.Write(rec.values()); err != nil {
			return fmt.Errorf("writing csv record: %w", err)
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("flushing csv: %w", err)
	}
	return nil
}
