package report

// Update helpers take a value and a field delta and return a new value with
// derived fields recomputed. Nothing here mutates its input; callers
// replace the old record with the returned one.

// WithStatus sets a member's duty status. Going off duty resets the shift
// times to their defaults and zeroes the amount; coming on duty recomputes
// the amount from the current times.
func WithStatus(e ShiftEntry, status ShiftStatus) ShiftEntry {
	e.Status = status
	if status != StatusWorking {
		e.FromHour = MinHour
		e.FromMin = Minutes[0]
		e.ToHour = MinHour
		e.ToMin = Minutes[0]
		e.Amount = 0
		return e
	}
	e.Amount = EntryAmount(e)
	return e
}

// WithShiftTimes replaces the shift span and recomputes the amount.
func WithShiftTimes(e ShiftEntry, fromHour, fromMin, toHour, toMin int) ShiftEntry {
	e.FromHour = fromHour
	e.FromMin = fromMin
	e.ToHour = toHour
	e.ToMin = toMin
	e.Amount = EntryAmount(e)
	return e
}

// WithRate replaces the hourly rate and recomputes the amount.
func WithRate(e ShiftEntry, rate float64) ShiftEntry {
	e.HourlyRate = rate
	e.Amount = EntryAmount(e)
	return e
}

// Finalize recomputes every member amount and the day's persisted payroll
// total. Called on the save path so stored derived fields can never drift
// from the fields they derive from.
func Finalize(d DayReport) DayReport {
	members := make([]ShiftEntry, len(d.Members))
	for i, m := range d.Members {
		m.Amount = EntryAmount(m)
		members[i] = m
	}
	d.Members = members
	d.StaffSalaries = SumSalaries(members)
	return d
}

// WithAdjustedCash sets the day's adjustment, leaving everything else
// untouched. The store persists this one field as a merge, never as part of
// the wholesale day overwrite.
func WithAdjustedCash(d DayReport, amount float64) DayReport {
	d.AdjustedCash = amount
	return d
}
