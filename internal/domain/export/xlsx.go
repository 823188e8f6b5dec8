package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"nippo/internal/domain/report"
)

// SheetName is the single worksheet the accountant's template expects.
const SheetName = "report"

// The accountant's spreadsheet has a fixed layout: one row per day of the
// month at row day+2, with a fixed column for each figure. Several supplier
// slots share a column on the sheet (ingredient purchases, trade payables,
// fees), matching the bookkeeping categories the accountant works in.
const (
	colRent        = 3  // yachin
	colUtilities   = 4  // kounetuhi
	colIngredients = 5  // shopping + zenoki
	colPayables    = 6  // sakihama + miyazato + ganaha + BEEFshin
	colFees        = 7  // furikomiFee + cardFee
	colSundries    = 8  // zappi
	colTelecom     = 9  // tushinhi
	colConsumables = 10 // kemutou
	colSalesCosts  = 11 // eigyou
	colBonus       = 12 // gyoumu
	colPayroll     = 13
	colCash        = 15
	colCard        = 16
	colEMoney      = 17
	colSenbero     = 21
	colGuests      = 23
	colWeather     = 24

	averageRow = 39
	averageCol = 20
)

// MonthlyWorkbook renders a month of reports into the accountant's fixed
// layout. Callers feed it adjusted views when the reported cash figure is
// the one the accountant should see.
func MonthlyWorkbook(days []report.DayReport) (*excelize.File, error) {
	f := excelize.NewFile()
	index, err := f.NewSheet(SheetName)
	if err != nil {
		return nil, err
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, err
	}

	var total float64
	for _, d := range days {
		total += report.TotalSales(d)
		row := d.Day + 2

		cells := []struct {
			col   int
			value any
		}{
			{colRent, d.Suppliers["yachin"]},
			{colUtilities, d.Suppliers["kounetuhi"]},
			{colIngredients, d.Suppliers["shopping"] + d.Suppliers["zenoki"]},
			{colPayables, d.Suppliers["sakihama"] + d.Suppliers["miyazato"] + d.Suppliers["ganaha"] + d.Suppliers["BEEFshin"]},
			{colFees, d.Suppliers["furikomiFee"] + d.Suppliers["cardFee"]},
			{colSundries, d.Suppliers["zappi"]},
			{colTelecom, d.Suppliers["tushinhi"]},
			{colConsumables, d.Suppliers["kemutou"]},
			{colSalesCosts, d.Suppliers["eigyou"]},
			{colBonus, d.Suppliers["gyoumu"]},
			{colPayroll, d.StaffSalaries},
			{colCash, d.Cash},
			{colCard, d.Card},
			{colEMoney, d.EMoney},
			{colSenbero, d.Senbero},
			{colGuests, d.Guests},
			{colWeather, d.Weather},
		}
		for _, c := range cells {
			cell, err := excelize.CoordinatesToCellName(c.col, row)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(SheetName, cell, c.value); err != nil {
				return nil, err
			}
		}
	}

	if len(days) > 0 {
		cell, err := excelize.CoordinatesToCellName(averageCol, averageRow)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(SheetName, cell, total/float64(len(days))); err != nil {
			return nil, err
		}
	}

	return f, nil
}

// WorkbookFilename names the download after its month.
func WorkbookFilename(year, month int) string {
	return fmt.Sprintf("%d-%02d.xlsx", year, month)
}
