package domain

import (
	"context"
	"time"
)

// SponsorRepository defines access methods for sponsors.
type SponsorRepository interface {
	Create(ctx context.Context, sponsor *Sponsor) error
	Update(ctx context.Context, sponsor *Sponsor) error
	GetByID(ctx context.Context, id SponsorID) (*Sponsor, error)
	List(ctx context.Context, status SponsorStatus, limit, offset int) ([]Sponsor, error)
	ListActive(ctx context.Context) ([]Sponsor, error)
	SetStatus(ctx context.Context, id SponsorID, status SponsorStatus) error
}

// PaymentRepository persists sponsor payments.
type PaymentRepository interface {
	Create(ctx context.Context, payment *Payment) error
	GetByID(ctx context.Context, id string) (*Payment, error)
	ListBySponsor(ctx context.Context, sponsorID SponsorID) ([]Payment, error)
	ListConfirmedBySponsor(ctx context.Context, sponsorID SponsorID) ([]Payment, error)
	Confirm(ctx context.Context, id, employeeID string, at time.Time) (*Payment, error)
}

// NotificationRepository persists notifications and answers the daily
// deduplication question for the reconciliation sweep.
type NotificationRepository interface {
	Create(ctx context.Context, n *Notification) error
	List(ctx context.Context, sponsorID SponsorID, unreadOnly bool, limit int) ([]Notification, error)
	MarkRead(ctx context.Context, id string, at time.Time) error
	Delete(ctx context.Context, id string) error
	// ExistsToday reports whether a notification of the given type was
	// already created for the sponsor since local midnight.
	ExistsToday(ctx context.Context, sponsorID SponsorID, typ NotificationType) (bool, error)
}

// EmployeeRepository looks up staff accounts for authentication.
type EmployeeRepository interface {
	GetByEmail(ctx context.Context, email string) (*Employee, error)
	GetByID(ctx context.Context, id string) (*Employee, error)
}
