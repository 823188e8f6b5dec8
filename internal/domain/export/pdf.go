package export

import (
	"fmt"
	"io"

	"github.com/jung-kurt/gofpdf"

	"nippo/internal/domain/report"
)

// MonthlySummaryPDF writes a one-page monthly digest: per-day lines and the
// month's totals. As with the workbook, callers pass adjusted views when
// the reported figures are wanted.
func MonthlySummaryPDF(year, month int, days []report.DayReport, w io.Writer) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(40, 10, fmt.Sprintf("Monthly Report %d-%02d", year, month))
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "B", 10)
	pdf.Cell(14, 7, "Day")
	pdf.Cell(28, 7, "Sales")
	pdf.Cell(28, 7, "Payroll")
	pdf.Cell(28, 7, "Expenses")
	pdf.Cell(20, 7, "Guests")
	pdf.Ln(8)

	pdf.SetFont("Helvetica", "", 10)
	var totalSales, totalPayroll, totalExpenses float64
	var totalGuests int
	for _, d := range days {
		s := report.AggregateDay(d)
		totalSales += s.TotalSales
		totalPayroll += s.TotalPayroll
		totalExpenses += s.TotalExpenses
		totalGuests += d.Guests

		pdf.Cell(14, 6, fmt.Sprintf("%d", d.Day))
		pdf.Cell(28, 6, fmt.Sprintf("%.0f", s.TotalSales))
		pdf.Cell(28, 6, fmt.Sprintf("%.0f", s.TotalPayroll))
		pdf.Cell(28, 6, fmt.Sprintf("%.0f", s.TotalExpenses))
		pdf.Cell(20, 6, fmt.Sprintf("%d", d.Guests))
		pdf.Ln(6)
	}

	pdf.Ln(4)
	pdf.SetFont("Helvetica", "B", 11)
	pdf.Cell(0, 8, fmt.Sprintf("Total sales: %.0f yen", totalSales))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Total payroll: %.0f yen", totalPayroll))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Total expenses: %.0f yen", totalExpenses))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Total guests: %d", totalGuests))
	if len(days) > 0 {
		pdf.Ln(7)
		pdf.Cell(0, 8, fmt.Sprintf("Average daily sales: %.0f yen", totalSales/float64(len(days))))
	}

	return pdf.Output(w)
}
