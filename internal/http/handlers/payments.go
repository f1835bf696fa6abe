package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"maryjoy/internal/domain"
)

type paymentCreateRequest struct {
	ClusterID  string `json:"cluster_id"`
	SpecificID string `json:"specific_id"`
	StartMonth int    `json:"start_month"`
	EndMonth   int    `json:"end_month"`
	Year       int    `json:"year"`
	AmountInt  int64  `json:"amount_int"`
}

type paymentDTO struct {
	ID          string `json:"id"`
	SponsorID   string `json:"sponsor_id"`
	StartMonth  int    `json:"start_month"`
	EndMonth    int    `json:"end_month,omitempty"`
	Year        int    `json:"year"`
	AmountInt   int64  `json:"amount_int"`
	Status      string `json:"status"`
	ConfirmedAt string `json:"confirmed_at,omitempty"`
	ConfirmedBy string `json:"confirmed_by,omitempty"`
	CreatedAt   string `json:"created_at"`
}

func paymentToDTO(p *domain.Payment) paymentDTO {
	dto := paymentDTO{
		ID:         p.ID,
		SponsorID:  p.SponsorID.String(),
		StartMonth: p.StartMonth,
		EndMonth:   p.EndMonth,
		Year:       p.Year,
		AmountInt:  p.AmountInt,
		Status:     string(p.Status),
		CreatedAt:  p.CreatedAt.Format(time.RFC3339),
	}
	if p.ConfirmedAt != nil {
		dto.ConfirmedAt = p.ConfirmedAt.Format(time.RFC3339)
	}
	if p.ConfirmedBy != nil {
		dto.ConfirmedBy = *p.ConfirmedBy
	}
	return dto
}

func (a *App) PaymentsCreate(w http.ResponseWriter, r *http.Request) {
	var req paymentCreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid payload")
		return
	}
	sponsorID, err := domain.NewSponsorID(req.ClusterID, req.SpecificID)
	if err != nil {
		a.respondDomainErr(w, r, err, "sponsor id")
		return
	}
	if _, err := a.Sponsors.GetByID(r.Context(), sponsorID); err != nil {
		a.respondDomainErr(w, r, err, "sponsor")
		return
	}

	payment := &domain.Payment{
		ID:         uuid.NewString(),
		SponsorID:  sponsorID,
		StartMonth: req.StartMonth,
		EndMonth:   req.EndMonth,
		Year:       req.Year,
		AmountInt:  req.AmountInt,
		Status:     domain.PaymentStatusPending,
	}
	if !payment.ValidPeriod() {
		a.respondDomainErr(w, r, domain.ErrInvalidPeriod, "payment period")
		return
	}
	if payment.AmountInt <= 0 {
		a.error(w, http.StatusBadRequest, "bad_request", "amount_int must be positive")
		return
	}
	if err := a.Payments.Create(r.Context(), payment); err != nil {
		a.respondDomainErr(w, r, err, "create payment")
		return
	}
	a.json(w, http.StatusCreated, map[string]string{"id": payment.ID})
}

func (a *App) PaymentsListBySponsor(w http.ResponseWriter, r *http.Request) {
	sponsorID, err := a.sponsorIDFromURL(r)
	if err != nil {
		a.respondDomainErr(w, r, err, "sponsor id")
		return
	}
	payments, err := a.Payments.ListBySponsor(r.Context(), sponsorID)
	if err != nil {
		a.respondDomainErr(w, r, err, "list payments")
		return
	}
	items := make([]paymentDTO, 0, len(payments))
	for i := range payments {
		items = append(items, paymentToDTO(&payments[i]))
	}
	a.json(w, http.StatusOK, map[string]any{"items": items})
}

// PaymentsConfirm marks a pending payment confirmed and notifies the sponsor.
// The confirmation notice is emitted on every successful confirmation, on
// purpose: confirming two distinct payments the same day yields two notices.
func (a *App) PaymentsConfirm(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	employeeID := a.currentEmployeeID(r)
	payment, err := a.Payments.Confirm(r.Context(), id, employeeID, time.Now())
	if err != nil {
		a.respondDomainErr(w, r, err, "confirm payment")
		return
	}
	if err := a.Notifier.PaymentConfirmed(r.Context(), payment.SponsorID, payment); err != nil {
		// The payment is already confirmed; a failed notice must not
		// undo that, so log and answer with the confirmed payment.
		a.Logger.Error().Err(err).Str("payment_id", id).Msg("payment confirmed but notification failed")
	}
	a.json(w, http.StatusOK, paymentToDTO(payment))
}
