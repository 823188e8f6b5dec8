package report

// Rollup computes the running monthly figures for a focal day given every
// already-saved report in the same year/month. The focal day is supplied
// separately and is not assumed to be among monthDays; "prior" is strictly
// day < focal.Day, so a same-day record in monthDays never double counts.
//
// The first-of-month branch is redundant when monthDays holds only the
// focal month, but it also shields day 1 from stale data leaking in from a
// wider query, so it is kept as part of the observed contract.
func Rollup(focal DayReport, monthDays []DayReport) MonthSummary {
	focalSales := TotalSales(focal)

	var priorSales, priorPayroll float64
	var priorGuests, priorCount int
	for _, d := range monthDays {
		if d.Day >= focal.Day {
			continue
		}
		priorSales += TotalSales(d)
		priorGuests += d.Guests
		priorPayroll += d.StaffSalaries
		priorCount++
	}

	totalSales := priorSales + focalSales
	avgSales := totalSales / float64(priorCount+1)
	if focal.Day == 1 {
		totalSales = focalSales
		avgSales = focalSales
	}

	avgCustomer := 0.0
	if focal.Guests > 0 {
		avgCustomer = focalSales / float64(focal.Guests)
	}

	return MonthSummary{
		AvgDailySales:       avgSales,
		AvgCustomerValue:    avgCustomer,
		TotalMonthlySales:   totalSales,
		TotalMonthlyGuests:  priorGuests + focal.Guests,
		TotalMonthlyPayroll: priorPayroll + focal.StaffSalaries,
	}
}

// StaffMonthlySalary totals one member's pay across a month of reports.
func StaffMonthlySalary(name string, days []DayReport) float64 {
	var total float64
	for _, d := range days {
		for _, m := range d.Members {
			if m.Name == name && m.Status == StatusWorking {
				total += ClampAmount(m.Amount)
			}
		}
	}
	return total
}

// StaffMonthlyHours totals one member's worked hours across a month.
func StaffMonthlyHours(name string, days []DayReport) float64 {
	var total float64
	for _, d := range days {
		for _, m := range d.Members {
			if m.Name == name && m.Status == StatusWorking {
				total += WorkedHours(m)
			}
		}
	}
	return total
}
