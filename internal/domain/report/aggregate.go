package report

// TotalSales is the day's takings across all tenders. Senbero is tracked as
// a memo figure on the accounting sheet and is deliberately not included.
func TotalSales(d DayReport) float64 {
	return d.Cash + d.Card + d.EMoney
}

// TotalChange values the counted drawer: quantity times face value over the
// fixed denomination set.
func TotalChange(counts map[int]int) float64 {
	var total float64
	for _, face := range Denominations {
		total += float64(face * counts[face])
	}
	return total
}

// TotalExpenses sums the fixed supplier slots and the ad-hoc optional
// expenses. Missing supplier keys count as zero.
func TotalExpenses(d DayReport) float64 {
	var total float64
	for _, key := range SupplierKeys {
		total += d.Suppliers[key]
	}
	for _, op := range d.Optionals {
		total += op.Value
	}
	return total
}

// WorkingHeadcount counts roster members on duty.
func WorkingHeadcount(members []ShiftEntry) int {
	count := 0
	for _, m := range members {
		if m.Status == StatusWorking {
			count++
		}
	}
	return count
}

// AggregateDay derives the day's display totals. It is pure: the same
// report always aggregates to the same summary.
func AggregateDay(d DayReport) DaySummary {
	change := TotalChange(d.Denominations)
	return DaySummary{
		TotalSales:       TotalSales(d),
		TotalPayroll:     SumSalaries(d.Members),
		TotalChange:      change,
		DrawerDelta:      change - DrawerTarget,
		TotalExpenses:    TotalExpenses(d),
		WorkingHeadcount: WorkingHeadcount(d.Members),
	}
}
