package handlers

import (
	"net/http"

	"maryjoy/internal/sqlinline"
)

type statsSummary struct {
	ActiveSponsors             int64 `json:"active_sponsors"`
	MonthlyPledgedInt          int64 `json:"monthly_pledged_int"`
	AssignedBeneficiaries      int64 `json:"assigned_beneficiaries"`
	WaitingBeneficiaries       int64 `json:"waiting_beneficiaries"`
	UnreadNotifications        int64 `json:"unread_notifications"`
	PaymentsConfirmedThisMonth int64 `json:"payments_confirmed_this_month"`
	SponsorsOverdue30d         int64 `json:"sponsors_overdue_30d"`
}

func (a *App) StatsSummary(w http.ResponseWriter, r *http.Request) {
	var s statsSummary
	err := a.SQL.QueryRow(r.Context(), sqlinline.QStatsSummary).Scan(
		&s.ActiveSponsors, &s.MonthlyPledgedInt,
		&s.AssignedBeneficiaries, &s.WaitingBeneficiaries,
		&s.UnreadNotifications, &s.PaymentsConfirmedThisMonth,
		&s.SponsorsOverdue30d)
	if err != nil {
		a.respondDomainErr(w, r, err, "stats summary")
		return
	}
	a.json(w, http.StatusOK, s)
}
