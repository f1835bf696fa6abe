package domain

import "time"

// PaymentStatus enumerates payment confirmation states.
type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusConfirmed PaymentStatus = "confirmed"
)

// Payment records a sponsor contribution covering an inclusive month span
// within a single year. A payment for March through May 2025 has StartMonth 3,
// EndMonth 5, Year 2025. Spans never cross a year boundary.
type Payment struct {
	ID          string
	SponsorID   SponsorID
	StartMonth  int
	EndMonth    int
	Year        int
	AmountInt   int64
	Status      PaymentStatus
	ConfirmedAt *time.Time
	ConfirmedBy *string // employee id
	CreatedAt   time.Time
}

// CoverageEnd returns the last covered month of the span, falling back to
// the start month when the end month was never recorded.
func (p Payment) CoverageEnd() int {
	if p.EndMonth >= 1 && p.EndMonth <= 12 {
		return p.EndMonth
	}
	return p.StartMonth
}

// ValidPeriod reports whether the covered span is a usable month range.
func (p Payment) ValidPeriod() bool {
	if p.StartMonth < 1 || p.StartMonth > 12 || p.Year < 1900 {
		return false
	}
	if p.EndMonth != 0 && (p.EndMonth < p.StartMonth || p.EndMonth > 12) {
		return false
	}
	return true
}
