package report

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
)

// WriteCSV writes the table to path, replacing any existing file. The file has
// a header row and no index column; an empty table yields a header-only file.
func WriteCSV(path string, t *Table) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("failed to close %s: %w", path, closeErr)
		}
	}()

	w := csv.NewWriter(f)
	if err := w.Write(Columns); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	for _, row := range t.Rows {
		record := []string{row.Review, row.Sentiment, FormatConfidence(row.Confidence)}
		if err := w.Write(record); err != nil {
			return fmt.Errorf("failed to write row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("failed to flush %s: %w", path, err)
	}

	return nil
}

// ReadCSV parses a file written by WriteCSV back into a table
func ReadCSV(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = len(Columns)
	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("%s has no header row", path)
	}

	for i, col := range Columns {
		if records[0][i] != col {
			return nil, fmt.Errorf("%s: unexpected column %q at position %d", path, records[0][i], i)
		}
	}

	rows := make([]Row, 0, len(records)-1)
	for n, rec := range records[1:] {
		confidence, err := strconv.ParseFloat(rec[2], 64)
		if err != nil {
			return nil, fmt.Errorf("%s: row %d: invalid confidence %q: %w", path, n+1, rec[2], err)
		}
		rows = append(rows, Row{Review: rec[0], Sentiment: rec[1], Confidence: confidence})
	}

	return &Table{Rows: rows}, nil
}
