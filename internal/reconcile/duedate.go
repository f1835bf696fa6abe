package reconcile

import "time"

// DueDate returns the calendar day a sponsor's next contribution is due:
// the configured day of the month following the last paid period.
func DueDate(lastPaid Period, dueDay int) time.Time {
	due := lastPaid.Next()
	return time.Date(due.Year, due.Month, dueDay, 0, 0, 0, 0, time.UTC)
}

// DayOffset returns the signed whole-day difference between today and the due
// date: positive when overdue, negative when the due date is still ahead,
// zero on the day itself. Both instants are normalized to their calendar date
// before subtracting, so month lengths, leap days and the clock time of the
// sweep all fall out of the arithmetic.
func DayOffset(today, due time.Time) int {
	t := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)
	d := time.Date(due.Year(), due.Month(), due.Day(), 0, 0, 0, 0, time.UTC)
	return int(t.Sub(d) / (24 * time.Hour))
}
