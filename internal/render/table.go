package render

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"tokenScope/internal/analysis"
)

// TableWriter prints rows as an aligned table. Columns align within one
// flushed block, so the header is printed at the start of every block and
// again whenever the column set changes.
type TableWriter struct {
	tw      *tabwriter.Writer
	columns int
}

func NewTableWriter(out io.Writer) *TableWriter {
	return &TableWriter{tw: tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)}
}

// WriteReport writes the report's row.
func (w *TableWriter) WriteReport(report analysis.Report) error {
	return w.WriteRow(report.Row())
}

// WriteRow writes one row, preceded by a header if needed.
func (w *TableWriter) WriteRow(row analysis.Row) error {
	headers := row.Headers()
	if len(headers) != w.columns {
		if err := w.line(headers); err != nil {
			return err
		}
		w.columns = len(headers)
	}
	return w.line(row.Values())
}

func (w *TableWriter) line(cells []string) error {
	if _, err := fmt.Fprintln(w.tw, strings.Join(cells, "\t")); err != nil {
		return fmt.Errorf("write table: %w", err)
	}
	return nil
}

func (w *TableWriter) Flush() error {
	w.columns = 0
	if err := w.tw.Flush(); err != nil {
		return fmt.Errorf("flush table: %w", err)
	}
	return nil
}
