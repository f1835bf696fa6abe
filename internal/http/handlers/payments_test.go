package handlers

import (
	"context"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"maryjoy/internal/domain"
	"maryjoy/internal/notify"
)

type fakePayments struct {
	payments map[string]*domain.Payment
}

func newFakePayments(payments ...*domain.Payment) *fakePayments {
	f := &fakePayments{payments: map[string]*domain.Payment{}}
	for _, p := range payments {
		f.payments[p.ID] = p
	}
	return f
}

func (f *fakePayments) Create(_ context.Context, p *domain.Payment) error {
	f.payments[p.ID] = p
	return nil
}

func (f *fakePayments) GetByID(_ context.Context, id string) (*domain.Payment, error) {
	if p, ok := f.payments[id]; ok {
		return p, nil
	}
	return nil, domain.ErrNotFound
}

func (f *fakePayments) ListBySponsor(_ context.Context, sponsorID domain.SponsorID) ([]domain.Payment, error) {
	var out []domain.Payment
	for _, p := range f.payments {
		if p.SponsorID == sponsorID {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (f *fakePayments) ListConfirmedBySponsor(ctx context.Context, sponsorID domain.SponsorID) ([]domain.Payment, error) {
	all, _ := f.ListBySponsor(ctx, sponsorID)
	var out []domain.Payment
	for _, p := range all {
		if p.Status == domain.PaymentStatusConfirmed {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakePayments) Confirm(_ context.Context, id, employeeID string, at time.Time) (*domain.Payment, error) {
	p, ok := f.payments[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	if p.Status == domain.PaymentStatusConfirmed {
		return nil, domain.ErrAlreadyConfirmed
	}
	p.Status = domain.PaymentStatusConfirmed
	p.ConfirmedAt = &at
	p.ConfirmedBy = &employeeID
	return p, nil
}

type fakeNotifications struct {
	rows []domain.Notification
}

func (f *fakeNotifications) Create(_ context.Context, n *domain.Notification) error {
	f.rows = append(f.rows, *n)
	return nil
}

func (f *fakeNotifications) List(_ context.Context, sponsorID domain.SponsorID, unreadOnly bool, _ int) ([]domain.Notification, error) {
	var out []domain.Notification
	for _, n := range f.rows {
		if !sponsorID.IsZero() && n.SponsorID != sponsorID {
			continue
		}
		if unreadOnly && n.IsRead {
			continue
		}
		out = append(out, n)
	}
	return out, nil
}

func (f *fakeNotifications) MarkRead(_ context.Context, id string, at time.Time) error {
	for i := range f.rows {
		if f.rows[i].ID == id {
			f.rows[i].IsRead = true
			f.rows[i].ReadAt = &at
			return nil
		}
	}
	return domain.ErrNotFound
}

func (f *fakeNotifications) Delete(_ context.Context, id string) error {
	for i := range f.rows {
		if f.rows[i].ID == id {
			f.rows = append(f.rows[:i], f.rows[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

func (f *fakeNotifications) ExistsToday(_ context.Context, sponsorID domain.SponsorID, typ domain.NotificationType) (bool, error) {
	for _, n := range f.rows {
		if n.SponsorID == sponsorID && n.Type == typ {
			return true, nil
		}
	}
	return false, nil
}

func (a *App) confirmRequest(id string) *httptest.ResponseRecorder {
	req := httptest.NewRequest("POST", "/v1/payments/"+id+"/confirm", nil)
	ctx := chi.NewRouteContext()
	ctx.URLParams.Add("id", id)
	req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, ctx))
	rr := httptest.NewRecorder()
	a.PaymentsConfirm(rr, req)
	return rr
}

func TestPaymentsConfirm_NotifiesOnEveryConfirmation(t *testing.T) {
	sponsorID := domain.SponsorID{Cluster: "02", Specific: "0150"}
	payments := newFakePayments(
		&domain.Payment{ID: "pay-1", SponsorID: sponsorID, StartMonth: 3, EndMonth: 5, Year: 2025, AmountInt: 225000, Status: domain.PaymentStatusPending},
		&domain.Payment{ID: "pay-2", SponsorID: sponsorID, StartMonth: 6, Year: 2025, AmountInt: 75000, Status: domain.PaymentStatusPending},
	)
	inbox := &fakeNotifications{}
	app := &App{Payments: payments, Notifier: notify.NewService(inbox)}

	if rr := app.confirmRequest("pay-1"); rr.Code != 200 {
		t.Fatalf("first confirm: got status %d, want 200, body %s", rr.Code, rr.Body.String())
	}
	if rr := app.confirmRequest("pay-2"); rr.Code != 200 {
		t.Fatalf("second confirm: got status %d, want 200", rr.Code)
	}

	// Confirmation notices are not deduplicated: two payments confirmed the
	// same day mean two receipts.
	var confirmed int
	for _, n := range inbox.rows {
		if n.Type == domain.NotificationPaymentConfirmed && n.SponsorID == sponsorID {
			confirmed++
		}
	}
	if confirmed != 2 {
		t.Fatalf("expected 2 confirmation notices, got %d", confirmed)
	}
}

func TestPaymentsConfirm_RepeatOnSamePaymentConflicts(t *testing.T) {
	sponsorID := domain.SponsorID{Cluster: "02", Specific: "0150"}
	payments := newFakePayments(
		&domain.Payment{ID: "pay-1", SponsorID: sponsorID, StartMonth: 3, Year: 2025, AmountInt: 75000, Status: domain.PaymentStatusPending},
	)
	inbox := &fakeNotifications{}
	app := &App{Payments: payments, Notifier: notify.NewService(inbox)}

	if rr := app.confirmRequest("pay-1"); rr.Code != 200 {
		t.Fatalf("first confirm: got status %d, want 200", rr.Code)
	}
	if rr := app.confirmRequest("pay-1"); rr.Code != 409 {
		t.Fatalf("repeat confirm: got status %d, want 409", rr.Code)
	}
	if len(inbox.rows) != 1 {
		t.Fatalf("expected 1 notice after failed repeat, got %d", len(inbox.rows))
	}
}

func TestPaymentsCreate_RejectsInvalidPeriod(t *testing.T) {
	sponsorID := domain.SponsorID{Cluster: "02", Specific: "0150"}
	app := &App{
		Sponsors: newFakeSponsors(&domain.Sponsor{ID: sponsorID, Status: domain.SponsorStatusActive}),
		Payments: newFakePayments(),
	}

	body := `{"cluster_id":"02","specific_id":"0150","start_month":5,"end_month":3,"year":2025,"amount_int":75000}`
	rr := httptest.NewRecorder()
	app.PaymentsCreate(rr, httptest.NewRequest("POST", "/v1/payments", strings.NewReader(body)))

	if rr.Code != 400 {
		t.Fatalf("got status %d, want 400, body %s", rr.Code, rr.Body.String())
	}
}
