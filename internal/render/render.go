package render

import (
	"fmt"
	"io"
	"strings"

	"tokenScope/internal/analysis"
)

const (
	FormatTable = "table"
	FormatJSONL = "jsonl"
)

// Writer emits analysis results to an output stream.
type Writer interface {
	WriteReport(report analysis.Report) error
	Flush() error
}

// New returns the writer for format.
func New(format string, out io.Writer) (Writer, error) {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "", FormatTable:
		return NewTableWriter(out), nil
	case FormatJSONL:
		return NewJSONLWriter(out), nil
	default:
		return nil, fmt.Errorf("unknown output format: %s", format)
	}
}
