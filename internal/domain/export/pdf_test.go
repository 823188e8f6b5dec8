package export

import (
	"bytes"
	"testing"

	"nippo/internal/domain/report"
)

func TestMonthlySummaryPDF(t *testing.T) {
	days := []report.DayReport{
		{Day: 1, Cash: 50000, Guests: 30, StaffSalaries: 18000},
		{Day: 2, Cash: 42000, Card: 8000, Guests: 25, StaffSalaries: 16000},
	}

	var buf bytes.Buffer
	if err := MonthlySummaryPDF(2025, 11, days, &buf); err != nil {
		t.Fatalf("pdf error: %v", err)
	}
	if buf.Len() == 0 {
		t.Fatal("expected pdf bytes")
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("%PDF")) {
		t.Fatal("output does not look like a pdf")
	}
}
