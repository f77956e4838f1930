package render

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"sync"
	"time"

	"tokenScope/internal/analysis"
	"tokenScope/internal/model"
)

// Record is the JSON line emitted per report.
type Record struct {
	ID          string            `json:"id"`
	Address     string            `json:"address"`
	AddressKind string            `json:"address_kind"`
	Chain       string            `json:"chain"`
	AnalyzedAt  string            `json:"analyzed_at"`
	Row         analysis.Row      `json:"row"`
	Score       model.Score       `json:"score"`
	Pair        model.TradingPair `json:"pair"`
	Metadata    *model.Metadata   `json:"metadata,omitempty"`
}

// NewRecord builds the JSON record for report.
func NewRecord(report analysis.Report) Record {
	return Record{
		ID:          report.ID.String(),
		Address:     report.Address.Value,
		AddressKind: string(report.Address.Kind),
		Chain:       report.Pair.ChainID,
		AnalyzedAt:  report.AnalyzedAt.UTC().Format(time.RFC3339Nano),
		Row:         report.Row(),
		Score:       report.Score,
		Pair:        report.Pair,
		Metadata:    report.Metadata,
	}
}

// JSONLWriter writes one JSON object per line.
type JSONLWriter struct {
	mu     sync.Mutex
	writer *bufio.Writer
}

func NewJSONLWriter(out io.Writer) *JSONLWriter {
	return &JSONLWriter{writer: bufio.NewWriter(out)}
}

// WriteReport appends the report as a JSON line.
func (w *JSONLWriter) WriteReport(report analysis.Report) error {
	line, err := json.Marshal(NewRecord(report))
	if err != nil {
		return fmt.Errorf("marshal record: %w", err)
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	if _, err := w.writer.Write(line); err != nil {
		return fmt.Errorf("write record: %w", err)
	}
	if err := w.writer.WriteByte('\n'); err != nil {
		return fmt.Errorf("write newline: %w", err)
	}
	return nil
}

func (w *JSONLWriter) Flush() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if err := w.writer.Flush(); err != nil {
		return fmt.Errorf("flush output: %w", err)
	}
	return nil
}
