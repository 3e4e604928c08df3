package importer

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
)

// ReadXLSX parses the first sheet of an XLSX workbook into import rows, with
// the same header matching and pre-checks as CSV.
func ReadXLSX(r io.Reader) ([]Row, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("opening xlsx: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, ErrEmptyFile
	}
	records, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("reading xlsx sheet %q: %w", sheets[0], err)
	}
	return rowsFromRecords(records)
}

// WriteXLSX writes the export projection to a single-sheet workbook.
func WriteXLSX(w io.Writer, records []ExportRecord) error {
	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	if err := f.SetSheetRow(sheet, "A1", &ExportHeaders); err != nil {
		return fmt.Errorf("writing xlsx header: %w", err)
	}
	for i, rec := range records {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return fmt.Errorf("addressing xlsx row %d: %w", i+2, err)
		}
		vals := rec.values()
		if err := f.SetSheetRow(sheet, cell, &vals); err != nil {
			return fmt.Errorf("writing xlsx row %d: %w", i+2, err)
		}
	}
	if err := f.Write(w); err != nil {
		return fmt.Errorf("writing xlsx: %w", err)
	}
	return nil
}
