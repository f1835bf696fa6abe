package reconcile

import "maryjoy/internal/domain"

// Policy holds the operator-tunable reconciliation constants. The zero value
// is not usable; construct via DefaultPolicy or from configuration.
type Policy struct {
	DueDay       int   // day of month a contribution falls due
	ReminderDays []int // days before the due date that trigger a reminder
	OverdueDays  []int // days after the due date that trigger a due notice
}

// DefaultPolicy mirrors the organisation's standing rules: due on the 15th,
// reminders 7 and 3 days ahead, due notices 1, 7, 15 and 30 days after.
func DefaultPolicy() Policy {
	return Policy{
		DueDay:       15,
		ReminderDays: []int{7, 3},
		OverdueDays:  []int{1, 7, 15, 30},
	}
}

// Decision is the outcome of evaluating one sponsor's day offset.
type Decision int

const (
	DecideNothing Decision = iota
	DecideDue
	DecideReminder
)

// Decide maps a day offset onto the emission policy. Only exact membership in
// the configured offset sets triggers anything; every other day is silent.
func (p Policy) Decide(dayOffset int) Decision {
	if dayOffset > 0 {
		if containsInt(p.OverdueDays, dayOffset) {
			return DecideDue
		}
		return DecideNothing
	}
	if containsInt(p.ReminderDays, -dayOffset) {
		return DecideReminder
	}
	return DecideNothing
}

// PriorityFor ranks a due notice: the final configured overdue offset is
// escalated to urgent, earlier ones are high.
func (p Policy) PriorityFor(dayOffset int) domain.NotificationPriority {
	max := 0
	for _, d := range p.OverdueDays {
		if d > max {
			max = d
		}
	}
	if dayOffset >= max && max > 0 {
		return domain.PriorityUrgent
	}
	return domain.PriorityHigh
}

func containsInt(set []int, v int) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}
