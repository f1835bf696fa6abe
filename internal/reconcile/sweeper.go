package reconcile

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"maryjoy/internal/domain"
	"maryjoy/internal/notify"
)

// Result summarises one sweep run.
type Result struct {
	Checked int `json:"checked"`
	Emitted int `json:"emitted"`
	Skipped int `json:"skipped"` // gate said already notified today
	Failed  int `json:"failed"`  // sponsors whose check errored
}

// Sweeper runs the reconciliation pass over all active sponsors. One run is
// strictly sequential; sponsors are independent, so a failure in one is
// logged and the sweep moves on.
type Sweeper struct {
	sponsors domain.SponsorRepository
	payments domain.PaymentRepository
	notifier *notify.Service
	policy   Policy
	logger   zerolog.Logger
	now      func() time.Time
}

func NewSweeper(
	sponsors domain.SponsorRepository,
	payments domain.PaymentRepository,
	notifier *notify.Service,
	policy Policy,
	logger zerolog.Logger,
) *Sweeper {
	return &Sweeper{
		sponsors: sponsors,
		payments: payments,
		notifier: notifier,
		policy:   policy,
		logger:   logger,
		now:      time.Now,
	}
}

// Run executes one full sweep. Failing to list the sponsor population is
// fatal to the run; anything after that is isolated per sponsor.
func (s *Sweeper) Run(ctx context.Context) (Result, error) {
	var res Result
	today := s.now()

	sponsors, err := s.sponsors.ListActive(ctx)
	if err != nil {
		return res, fmt.Errorf("list active sponsors: %w", err)
	}
	s.logger.Info().Int("sponsors", len(sponsors)).Msg("reconciliation sweep started")

	for i := range sponsors {
		sponsor := &sponsors[i]
		res.Checked++
		emitted, err := s.checkSponsor(ctx, sponsor, today)
		if err != nil {
			res.Failed++
			s.logger.Error().Err(err).Str("sponsor", sponsor.ID.String()).Msg("sponsor check failed")
			continue
		}
		switch emitted {
		case outcomeEmitted:
			res.Emitted++
		case outcomeDeduplicated:
			res.Skipped++
		}
	}

	s.logger.Info().
		Int("checked", res.Checked).
		Int("emitted", res.Emitted).
		Int("skipped", res.Skipped).
		Int("failed", res.Failed).
		Msg("reconciliation sweep finished")
	return res, nil
}

type outcome int

const (
	outcomeNothing outcome = iota
	outcomeEmitted
	outcomeDeduplicated
)

func (s *Sweeper) checkSponsor(ctx context.Context, sponsor *domain.Sponsor, today time.Time) (outcome, error) {
	payments, err := s.payments.ListConfirmedBySponsor(ctx, sponsor.ID)
	if err != nil {
		return outcomeNothing, fmt.Errorf("load payments: %w", err)
	}

	lastPaid := LastPaidPeriod(payments, today)
	due := DueDate(lastPaid, s.policy.DueDay)
	offset := DayOffset(today, due)

	switch s.policy.Decide(offset) {
	case DecideDue:
		return s.emit(ctx, sponsor, domain.NotificationPaymentDue, func() error {
			return s.notifier.PaymentDue(ctx, sponsor, offset, due, s.policy.PriorityFor(offset))
		})
	case DecideReminder:
		return s.emit(ctx, sponsor, domain.NotificationPaymentReminder, func() error {
			return s.notifier.PaymentReminder(ctx, sponsor, -offset, due)
		})
	default:
		return outcomeNothing, nil
	}
}

// emit runs the dedup gate and, when it passes, the actual emission. The gate
// and the insert are two statements; overlapping sweeps can both pass the
// gate and double-insert, which is accepted as a duplicate non-corrupting
// row rather than defended with locking.
func (s *Sweeper) emit(ctx context.Context, sponsor *domain.Sponsor, typ domain.NotificationType, send func() error) (outcome, error) {
	exists, err := s.notifier.AlreadyNotifiedToday(ctx, sponsor.ID, typ)
	if err != nil {
		return outcomeNothing, fmt.Errorf("dedup check: %w", err)
	}
	if exists {
		s.logger.Debug().Str("sponsor", sponsor.ID.String()).Str("type", string(typ)).Msg("already notified today")
		return outcomeDeduplicated, nil
	}
	if err := send(); err != nil {
		return outcomeNothing, err
	}
	return outcomeEmitted, nil
}

// SetNow overrides the sweep clock; tests use it to pin the evaluation day.
func (s *Sweeper) SetNow(now func() time.Time) {
	s.now = now
}
