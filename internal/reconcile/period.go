// Package reconcile implements the daily payment-due sweep: for every active
// sponsor it reduces the confirmed payment history to the last covered month,
// derives the next due date, and emits due or reminder notifications through
// the daily deduplication gate.
package reconcile

import (
	"time"

	"maryjoy/internal/domain"
)

// Period is a calendar month within a year.
type Period struct {
	Month time.Month
	Year  int
}

// Next returns the calendar month after p, wrapping December into January of
// the following year.
func (p Period) Next() Period {
	if p.Month == time.December {
		return Period{Month: time.January, Year: p.Year + 1}
	}
	return Period{Month: p.Month + 1, Year: p.Year}
}

// LastPaidPeriod reduces a sponsor's confirmed payments to the most recent
// covered period, compared by (year, end month) with the end month falling
// back to the start month. A sponsor with no confirmed payments is treated as
// owing for the current month: the reduction yields the month immediately
// before today, so the next due period lands on today's month.
func LastPaidPeriod(payments []domain.Payment, today time.Time) Period {
	best := Period{}
	found := false
	for _, p := range payments {
		if p.Status != domain.PaymentStatusConfirmed || !p.ValidPeriod() {
			continue
		}
		candidate := Period{Month: time.Month(p.CoverageEnd()), Year: p.Year}
		if !found || after(candidate, best) {
			best = candidate
			found = true
		}
	}
	if found {
		return best
	}
	return previousMonth(today)
}

func after(a, b Period) bool {
	if a.Year != b.Year {
		return a.Year > b.Year
	}
	return a.Month > b.Month
}

func previousMonth(today time.Time) Period {
	if today.Month() == time.January {
		return Period{Month: time.December, Year: today.Year() - 1}
	}
	return Period{Month: today.Month() - 1, Year: today.Year()}
}
