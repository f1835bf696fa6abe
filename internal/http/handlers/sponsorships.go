package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"maryjoy/internal/domain"
	"maryjoy/internal/infra"
	"maryjoy/internal/sqlinline"
)

type sponsorshipCreateRequest struct {
	ClusterID     string `json:"cluster_id"`
	SpecificID    string `json:"specific_id"`
	BeneficiaryID string `json:"beneficiary_id"`
	StartDate     string `json:"start_date"` // YYYY-MM-DD
}

type sponsorshipDTO struct {
	ID            string `json:"id"`
	SponsorID     string `json:"sponsor_id"`
	BeneficiaryID string `json:"beneficiary_id"`
	StartDate     string `json:"start_date"`
	EndDate       string `json:"end_date,omitempty"`
	Status        string `json:"status"`
	CreatedAt     string `json:"created_at"`
}

func sponsorshipToDTO(s *domain.Sponsorship) sponsorshipDTO {
	dto := sponsorshipDTO{
		ID:            s.ID,
		SponsorID:     s.SponsorID.String(),
		BeneficiaryID: s.BeneficiaryID,
		StartDate:     s.StartDate.Format("2006-01-02"),
		Status:        string(s.Status),
		CreatedAt:     s.CreatedAt.Format(time.RFC3339),
	}
	if s.EndDate != nil {
		dto.EndDate = s.EndDate.Format("2006-01-02")
	}
	return dto
}

func (a *App) scanSponsorship(row interface{ Scan(...any) error }) (*domain.Sponsorship, error) {
	var s domain.Sponsorship
	err := row.Scan(&s.ID, &s.SponsorID.Cluster, &s.SponsorID.Specific,
		&s.BeneficiaryID, &s.StartDate, &s.EndDate, &s.Status, &s.CreatedAt)
	if infra.IsNoRows(err) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// SponsorshipsCreate links a sponsor to a beneficiary, moves the beneficiary
// to assigned, and notifies the sponsor.
func (a *App) SponsorshipsCreate(w http.ResponseWriter, r *http.Request) {
	var req sponsorshipCreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid payload")
		return
	}
	sponsorID, err := domain.NewSponsorID(req.ClusterID, req.SpecificID)
	if err != nil {
		a.respondDomainErr(w, r, err, "sponsor id")
		return
	}
	if req.BeneficiaryID == "" {
		a.error(w, http.StatusBadRequest, "bad_request", "beneficiary_id is required")
		return
	}
	if _, err := a.Sponsors.GetByID(r.Context(), sponsorID); err != nil {
		a.respondDomainErr(w, r, err, "sponsor")
		return
	}
	row := a.SQL.QueryRow(r.Context(), sqlinline.QSelectBeneficiaryByID, req.BeneficiaryID)
	beneficiary, err := a.scanBeneficiary(row)
	if err != nil {
		a.respondDomainErr(w, r, err, "beneficiary")
		return
	}
	start := time.Now()
	if req.StartDate != "" {
		start, err = time.Parse("2006-01-02", req.StartDate)
		if err != nil {
			a.error(w, http.StatusBadRequest, "bad_request", "start_date must be YYYY-MM-DD")
			return
		}
	}

	id := uuid.NewString()
	_, err = a.SQL.Exec(r.Context(), sqlinline.QInsertSponsorship,
		id, sponsorID.Cluster, sponsorID.Specific, req.BeneficiaryID, start)
	if err != nil {
		a.respondDomainErr(w, r, err, "create sponsorship")
		return
	}

	guardianID := ""
	if beneficiary.GuardianID != nil {
		guardianID = *beneficiary.GuardianID
	}
	beneficiary.Status = domain.BeneficiaryAssigned
	_, err = a.SQL.Exec(r.Context(), sqlinline.QUpdateBeneficiary,
		beneficiary.ID, beneficiary.FullName, beneficiary.DateOfBirth, beneficiary.Gender,
		guardianID, string(beneficiary.Status), beneficiary.SupportDetails)
	if err != nil {
		a.respondDomainErr(w, r, err, "assign beneficiary")
		return
	}

	detail := fmt.Sprintf("You are now sponsoring %s.", beneficiary.FullName)
	if err := a.Notifier.SponsorshipUpdated(r.Context(), sponsorID, detail); err != nil {
		a.Logger.Error().Err(err).Str("sponsorship_id", id).Msg("sponsorship created but notification failed")
	}
	a.json(w, http.StatusCreated, map[string]string{"id": id})
}

// SponsorshipsEnd closes an active sponsorship and tells the sponsor.
func (a *App) SponsorshipsEnd(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	var cluster, specific, beneficiaryID string
	err := a.SQL.QueryRow(r.Context(), sqlinline.QEndSponsorship, id, time.Now()).
		Scan(&cluster, &specific, &beneficiaryID)
	if infra.IsNoRows(err) {
		a.respondDomainErr(w, r, domain.ErrNotFound, "active sponsorship")
		return
	}
	if err != nil {
		a.respondDomainErr(w, r, err, "end sponsorship")
		return
	}
	sponsorID := domain.SponsorID{Cluster: cluster, Specific: specific}
	if err := a.Notifier.SponsorshipUpdated(r.Context(), sponsorID, "Your sponsorship has ended."); err != nil {
		a.Logger.Error().Err(err).Str("sponsorship_id", id).Msg("sponsorship ended but notification failed")
	}
	a.json(w, http.StatusOK, map[string]string{"id": id, "status": string(domain.SponsorshipEnded)})
}

func (a *App) SponsorshipsGet(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	row := a.SQL.QueryRow(r.Context(), sqlinline.QSelectSponsorshipByID, id)
	s, err := a.scanSponsorship(row)
	if err != nil {
		a.respondDomainErr(w, r, err, "sponsorship")
		return
	}
	a.json(w, http.StatusOK, sponsorshipToDTO(s))
}

func (a *App) SponsorshipsListByBeneficiary(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	rows, err := a.SQL.Query(r.Context(), sqlinline.QListSponsorshipsByBeneficiary, id)
	if err != nil {
		a.respondDomainErr(w, r, err, "list sponsorships")
		return
	}
	defer rows.Close()

	items := make([]sponsorshipDTO, 0)
	for rows.Next() {
		s, err := a.scanSponsorship(rows)
		if err != nil {
			a.respondDomainErr(w, r, err, "list sponsorships")
			return
		}
		items = append(items, sponsorshipToDTO(s))
	}
	if err := rows.Err(); err != nil {
		a.respondDomainErr(w, r, err, "list sponsorships")
		return
	}
	a.json(w, http.StatusOK, map[string]any{"items": items})
}

func (a *App) SponsorshipsListBySponsor(w http.ResponseWriter, r *http.Request) {
	sponsorID, err := a.sponsorIDFromURL(r)
	if err != nil {
		a.respondDomainErr(w, r, err, "sponsor id")
		return
	}
	rows, err := a.SQL.Query(r.Context(), sqlinline.QListSponsorshipsBySponsor,
		sponsorID.Cluster, sponsorID.Specific)
	if err != nil {
		a.respondDomainErr(w, r, err, "list sponsorships")
		return
	}
	defer rows.Close()

	items := make([]sponsorshipDTO, 0)
	for rows.Next() {
		s, err := a.scanSponsorship(rows)
		if err != nil {
			a.respondDomainErr(w, r, err, "list sponsorships")
			return
		}
		items = append(items, sponsorshipToDTO(s))
	}
	if err := rows.Err(); err != nil {
		a.respondDomainErr(w, r, err, "list sponsorships")
		return
	}
	a.json(w, http.StatusOK, map[string]any{"items": items})
}
