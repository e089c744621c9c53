// Package report turns review results into the printed and persisted table.
package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/ressKim-io/EvoGuard/sentiment-cli/internal/domain/entity"
)

// Column names, in output order
const (
	ColumnReview     = "Review"
	ColumnSentiment  = "Predicted Sentiment"
	ColumnConfidence = "Confidence"
)

// Columns is the header of the results table
var Columns = []string{ColumnReview, ColumnSentiment, ColumnConfidence}

// Row is one line of the results table
type Row struct {
	Review     string
	Sentiment  string
	Confidence float64
}

// Table is the row-ordered results table
type Table struct {
	Rows []Row
}

// BuildTable creates a table with one row per result, in result order, with
// confidence rounded to 3 decimals
func BuildTable(results []*entity.ReviewResult) *Table {
	rows := make([]Row, len(results))
	for i, r := range results {
		rows[i] = Row{
			Review:     r.Review,
			Sentiment:  r.Label,
			Confidence: r.RoundedConfidence(),
		}
	}
	return &Table{Rows: rows}
}

// Len returns the number of rows
func (t *Table) Len() int {
	return len(t.Rows)
}

// Print writes the table with a leading index column
func (t *Table) Print(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	fmt.Fprintf(tw, "\t%s\n", strings.Join(Columns, "\t"))
	for i, row := range t.Rows {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\n", i, row.Review, row.Sentiment, FormatConfidence(row.Confidence))
	}

	return tw.Flush()
}

// FormatConfidence renders a rounded confidence with the fewest digits that
// represent it, always keeping one fractional digit (0.5, 0.999, 1.0)
func FormatConfidence(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}
