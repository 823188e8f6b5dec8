package report

import "time"

// DayOfWeek returns the weekday label for a calendar date.
func DayOfWeek(year, month, day int) string {
	date := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	return WeekDays[int(date.Weekday())]
}
