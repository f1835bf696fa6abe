// Package notify builds and persists notification rows for both the daily
// reconciliation sweep and event-driven calls from the HTTP handlers.
package notify

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"maryjoy/internal/domain"
)

// Service writes notifications through the repository. It owns message
// construction so wording lives in one place.
type Service struct {
	repo domain.NotificationRepository
}

func NewService(repo domain.NotificationRepository) *Service {
	return &Service{repo: repo}
}

// AlreadyNotifiedToday exposes the daily deduplication gate. Only the sweep
// consults it; event-driven emissions below are deliberately unconditional.
func (s *Service) AlreadyNotifiedToday(ctx context.Context, sponsorID domain.SponsorID, typ domain.NotificationType) (bool, error) {
	return s.repo.ExistsToday(ctx, sponsorID, typ)
}

// PaymentDue emits an overdue notice for a sponsor.
func (s *Service) PaymentDue(ctx context.Context, sponsor *domain.Sponsor, daysOverdue int, due time.Time, priority domain.NotificationPriority) error {
	msg := fmt.Sprintf("Dear %s, your monthly contribution of %s is %d %s overdue (was due %s). Please arrange your payment.",
		sponsor.FullName, FormatAmount(sponsor.MonthlyAmountInt), daysOverdue, plural(daysOverdue, "day"), due.Format("2 January 2006"))
	return s.create(ctx, sponsor.ID, msg, domain.NotificationPaymentDue, priority)
}

// PaymentReminder emits an upcoming-due reminder for a sponsor.
func (s *Service) PaymentReminder(ctx context.Context, sponsor *domain.Sponsor, daysTillDue int, due time.Time) error {
	msg := fmt.Sprintf("Dear %s, your monthly contribution of %s is due in %d %s, on %s.",
		sponsor.FullName, FormatAmount(sponsor.MonthlyAmountInt), daysTillDue, plural(daysTillDue, "day"), due.Format("2 January 2006"))
	return s.create(ctx, sponsor.ID, msg, domain.NotificationPaymentReminder, domain.PriorityNormal)
}

// PaymentConfirmed acknowledges a confirmed payment. It is a discrete event
// and is not deduplicated: confirming twice produces two rows.
func (s *Service) PaymentConfirmed(ctx context.Context, sponsorID domain.SponsorID, p *domain.Payment) error {
	msg := fmt.Sprintf("Payment of %s covering %s has been received and confirmed. Thank you for your support.",
		FormatAmount(p.AmountInt), FormatCoverage(p))
	return s.create(ctx, sponsorID, msg, domain.NotificationPaymentConfirmed, domain.PriorityNormal)
}

// ReportUploaded announces a newly available report document.
func (s *Service) ReportUploaded(ctx context.Context, sponsorID domain.SponsorID, title string) error {
	msg := fmt.Sprintf("A new report %q has been uploaded and is ready to view.", title)
	return s.create(ctx, sponsorID, msg, domain.NotificationReportUploaded, domain.PriorityNormal)
}

// SponsorshipUpdated announces a sponsorship being created or ended.
func (s *Service) SponsorshipUpdated(ctx context.Context, sponsorID domain.SponsorID, detail string) error {
	return s.create(ctx, sponsorID, detail, domain.NotificationSponsorshipUpdated, domain.PriorityNormal)
}

// Broadcast creates a notification visible to everyone.
func (s *Service) Broadcast(ctx context.Context, message string, typ domain.NotificationType, priority domain.NotificationPriority) error {
	return s.create(ctx, domain.SponsorID{}, message, typ, priority)
}

func (s *Service) create(ctx context.Context, sponsorID domain.SponsorID, msg string, typ domain.NotificationType, priority domain.NotificationPriority) error {
	n := &domain.Notification{
		ID:        uuid.NewString(),
		SponsorID: sponsorID,
		Message:   msg,
		Type:      typ,
		Priority:  priority,
	}
	if err := s.repo.Create(ctx, n); err != nil {
		return fmt.Errorf("create %s notification: %w", typ, err)
	}
	return nil
}

// FormatAmount renders a cent amount as birr with two decimals.
func FormatAmount(cents int64) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return fmt.Sprintf("%s%d.%02d ETB", sign, cents/100, cents%100)
}

// FormatCoverage renders a payment's covered span, e.g. "March 2025" or
// "March-May 2025".
func FormatCoverage(p *domain.Payment) string {
	start := time.Month(p.StartMonth)
	end := time.Month(p.CoverageEnd())
	if start == end {
		return fmt.Sprintf("%s %d", start, p.Year)
	}
	return fmt.Sprintf("%s-%s %d", start, end, p.Year)
}

func plural(n int, unit string) string {
	if n == 1 {
		return unit
	}
	return unit + "s"
}
