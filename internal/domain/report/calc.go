package report

import "math"

// ShiftAmount converts a shift into a payable amount in yen. Start and end
// are expressed in decimal hours on the business-day scale; the portion at
// or after NightStartHour pays NightRateMultiplier times the base rate.
//
// The function is pure and does not clamp: a shift whose end precedes its
// start yields a negative amount, which callers clamp to zero at the point
// of use (see ClampAmount).
func ShiftAmount(fromHour, fromMin, toHour, toMin int, hourlyRate float64) float64 {
	start := float64(fromHour) + float64(fromMin)/60
	end := float64(toHour) + float64(toMin)/60

	enhancedRate := hourlyRate * NightRateMultiplier
	hoursBeforeEnhanced := math.Min(end, NightStartHour) - start
	hoursAfterEnhanced := math.Max(0, end-NightStartHour)

	return hoursBeforeEnhanced*hourlyRate + hoursAfterEnhanced*enhancedRate
}

// ClampAmount floors a computed shift amount at zero. Applied uniformly
// wherever amounts are summed or displayed.
func ClampAmount(amount float64) float64 {
	if amount < 0 {
		return 0
	}
	return amount
}

// EntryAmount returns the payable amount for one roster entry: zero for a
// member who is off, the clamped calculator output otherwise.
func EntryAmount(e ShiftEntry) float64 {
	if e.Status != StatusWorking {
		return 0
	}
	return ClampAmount(ShiftAmount(e.FromHour, e.FromMin, e.ToHour, e.ToMin, e.HourlyRate))
}

// SumSalaries adds up the recorded amounts of all working members and
// rounds the sum up to the next whole yen. The rounding happens once on the
// total, not per member.
func SumSalaries(members []ShiftEntry) float64 {
	var total float64
	for _, m := range members {
		if m.Status != StatusWorking {
			continue
		}
		total += ClampAmount(m.Amount)
	}
	return math.Ceil(total)
}

// WorkedHours returns the shift's duration in hours, ignoring rate and
// premium. Negative spans clamp to zero.
func WorkedHours(e ShiftEntry) float64 {
	startMinutes := e.FromHour*60 + e.FromMin
	endMinutes := e.ToHour*60 + e.ToMin
	if endMinutes <= startMinutes {
		return 0
	}
	return float64(endMinutes-startMinutes) / 60
}
