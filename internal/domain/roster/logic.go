package roster

import "nippo/internal/domain/report"

// NewDayMembers seeds a fresh day's attendance list from the roster: every
// member off duty, shift times on the first entries of the allowed hour and
// minute sets, amount zero.
func NewDayMembers(members []Member) []report.ShiftEntry {
	entries := make([]report.ShiftEntry, len(members))
	for i, m := range members {
		entries[i] = report.ShiftEntry{
			Name:       m.Name,
			Status:     report.StatusOff,
			FromHour:   report.MinHour,
			FromMin:    report.Minutes[0],
			ToHour:     report.MinHour,
			ToMin:      report.Minutes[0],
			HourlyRate: m.HourlyRate,
			Amount:     0,
		}
	}
	return entries
}
