package services

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"log/slog"
	"time"

	"voice-ledger/internal/models"
)

// utf8BOM lets spreadsheet applications detect the encoding of the CJK header
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

var csvHeader = []string{"日期", "时间", "标题", "分类", "金额"}

type exportService struct {
	ledger  LedgerServiceInterface
	metrics MetricsRecorderInterface
	nowFn   func() time.Time
}

// NewExportService creates a CSV export service over the ledger
func NewExportService(ledger LedgerServiceInterface, metrics MetricsRecorderInterface) ExportServiceInterface {
	return &exportService{
		ledger:  ledger,
		metrics: metrics,
		nowFn:   time.Now,
	}
}

// ExportCSV renders the whole ledger in its current order and returns the
// payload with its dated filename.
func (s *exportService) ExportCSV() ([]byte, string, error) {
	expenses := s.ledger.Expenses()

	var buf bytes.Buffer
	buf.Write(utf8BOM)

	w := csv.NewWriter(&buf)
	if err := w.Write(csvHeader); err != nil {
		return nil, "", fmt.Errorf("failed to write export header: %w", err)
	}

	for _, expense := range expenses {
		record := []string{
			expense.Date,
			expense.Time,
			expense.Title,
			expense.Category,
			expense.Amount.StringFixed(2),
		}
		if err := w.Write(record); err != nil {
			return nil, "", fmt.Errorf("failed to write export row: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, "", fmt.Errorf("failed to flush export: %w", err)
	}

	filename := fmt.Sprintf("记账数据_%s.csv", s.nowFn().Format(models.ExpenseDateLayout))

	s.metrics.IncrementCounter("export_generated", nil)
	slog.Info("ledger exported", "rows", len(expenses), "filename", filename)

	return buf.Bytes(), filename, nil
}
