package report

// The cash-adjustment overlay lets an admin report a reduced cash figure to
// the accountant role while keeping the true figure internally. It is a
// read-only transformation: the same aggregates run against the adjusted
// cash, nothing else changes.

// EffectiveCash is the reported cash figure: true cash minus the admin's
// adjustment. Identity when the day is unadjusted.
func EffectiveCash(d DayReport) float64 {
	return d.Cash - d.AdjustedCash
}

// AdjustedView returns a copy of the report with the adjustment folded into
// Cash, suitable for feeding into AggregateDay and Rollup unchanged.
func AdjustedView(d DayReport) DayReport {
	d.Cash = EffectiveCash(d)
	d.AdjustedCash = 0
	return d
}

// AdjustedViews maps AdjustedView over a month of reports.
func AdjustedViews(days []DayReport) []DayReport {
	out := make([]DayReport, len(days))
	for i, d := range days {
		out[i] = AdjustedView(d)
	}
	return out
}

// MonthAdjusted reports whether any day in the month carries a nonzero
// adjustment. The transition is one way: once a month is adjusted it stays
// adjusted, and accountant access to it unlocks.
func MonthAdjusted(days []DayReport) bool {
	for _, d := range days {
		if d.AdjustedCash != 0 {
			return true
		}
	}
	return false
}

// AdjustedMonthlyTotal sums the adjustments across a month, for the admin
// adjustment screen's running total.
func AdjustedMonthlyTotal(days []DayReport) float64 {
	var total float64
	for _, d := range days {
		total += d.AdjustedCash
	}
	return total
}
