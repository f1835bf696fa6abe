package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"maryjoy/internal/domain"
	"maryjoy/internal/infra/geoip"
	"maryjoy/internal/middleware"
)

type sponsorRequest struct {
	ClusterID        string `json:"cluster_id"`
	SpecificID       string `json:"specific_id"`
	FullName         string `json:"full_name"`
	Phone            string `json:"phone"`
	Email            string `json:"email"`
	Address          string `json:"address"`
	MonthlyAmountInt int64  `json:"monthly_amount_int"`
	Diaspora         *bool  `json:"diaspora"`
	Locale           string `json:"locale"`
	AgreedDate       string `json:"agreed_date"` // YYYY-MM-DD
}

type sponsorDTO struct {
	ID               string `json:"id"`
	ClusterID        string `json:"cluster_id"`
	SpecificID       string `json:"specific_id"`
	FullName         string `json:"full_name"`
	Phone            string `json:"phone"`
	Email            string `json:"email"`
	Address          string `json:"address"`
	MonthlyAmountInt int64  `json:"monthly_amount_int"`
	Status           string `json:"status"`
	Diaspora         bool   `json:"diaspora"`
	Locale           string `json:"locale"`
	AgreedDate       string `json:"agreed_date"`
	CreatedAt        string `json:"created_at"`
}

func sponsorToDTO(s *domain.Sponsor) sponsorDTO {
	return sponsorDTO{
		ID:               s.ID.String(),
		ClusterID:        s.ID.Cluster,
		SpecificID:       s.ID.Specific,
		FullName:         s.FullName,
		Phone:            s.Phone,
		Email:            s.Email,
		Address:          s.Address,
		MonthlyAmountInt: s.MonthlyAmountInt,
		Status:           string(s.Status),
		Diaspora:         s.Diaspora,
		Locale:           s.Locale,
		AgreedDate:       s.AgreedDate.Format("2006-01-02"),
		CreatedAt:        s.CreatedAt.Format(time.RFC3339),
	}
}

func (a *App) SponsorsCreate(w http.ResponseWriter, r *http.Request) {
	var req sponsorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid payload")
		return
	}
	id, err := domain.NewSponsorID(req.ClusterID, req.SpecificID)
	if err != nil {
		a.respondDomainErr(w, r, err, "sponsor id")
		return
	}
	if req.FullName == "" || req.MonthlyAmountInt <= 0 {
		a.error(w, http.StatusBadRequest, "bad_request", "full_name and a positive monthly_amount_int are required")
		return
	}
	agreed := time.Now()
	if req.AgreedDate != "" {
		agreed, err = time.Parse("2006-01-02", req.AgreedDate)
		if err != nil {
			a.error(w, http.StatusBadRequest, "bad_request", "agreed_date must be YYYY-MM-DD")
			return
		}
	}

	// When the payload does not commit either way, infer diaspora from the
	// request's origin country.
	diaspora := false
	if req.Diaspora != nil {
		diaspora = *req.Diaspora
	} else {
		diaspora = geoip.IsDiaspora(middleware.CountryFromContext(r.Context()))
	}
	locale := req.Locale
	if locale == "" {
		locale = middleware.LocaleFromContext(r.Context())
	}

	sponsor := &domain.Sponsor{
		ID:               id,
		FullName:         req.FullName,
		Phone:            req.Phone,
		Email:            req.Email,
		Address:          req.Address,
		MonthlyAmountInt: req.MonthlyAmountInt,
		Status:           domain.SponsorStatusPending,
		Diaspora:         diaspora,
		Locale:           locale,
		AgreedDate:       agreed,
	}
	if err := a.Sponsors.Create(r.Context(), sponsor); err != nil {
		a.respondDomainErr(w, r, err, "create sponsor")
		return
	}
	a.json(w, http.StatusCreated, map[string]string{"id": id.String()})
}

func (a *App) SponsorsGet(w http.ResponseWriter, r *http.Request) {
	id, err := a.sponsorIDFromURL(r)
	if err != nil {
		a.respondDomainErr(w, r, err, "sponsor id")
		return
	}
	sponsor, err := a.Sponsors.GetByID(r.Context(), id)
	if err != nil {
		a.respondDomainErr(w, r, err, "sponsor")
		return
	}
	a.json(w, http.StatusOK, sponsorToDTO(sponsor))
}

func (a *App) SponsorsList(w http.ResponseWriter, r *http.Request) {
	status := domain.SponsorStatus(r.URL.Query().Get("status"))
	limit := queryInt(r, "limit", 50)
	offset := queryInt(r, "offset", 0)
	sponsors, err := a.Sponsors.List(r.Context(), status, limit, offset)
	if err != nil {
		a.respondDomainErr(w, r, err, "list sponsors")
		return
	}
	items := make([]sponsorDTO, 0, len(sponsors))
	for i := range sponsors {
		items = append(items, sponsorToDTO(&sponsors[i]))
	}
	a.json(w, http.StatusOK, map[string]any{"items": items})
}

func (a *App) SponsorsUpdate(w http.ResponseWriter, r *http.Request) {
	id, err := a.sponsorIDFromURL(r)
	if err != nil {
		a.respondDomainErr(w, r, err, "sponsor id")
		return
	}
	sponsor, err := a.Sponsors.GetByID(r.Context(), id)
	if err != nil {
		a.respondDomainErr(w, r, err, "sponsor")
		return
	}

	var req sponsorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid payload")
		return
	}
	if req.FullName != "" {
		sponsor.FullName = req.FullName
	}
	if req.Phone != "" {
		sponsor.Phone = req.Phone
	}
	if req.Email != "" {
		sponsor.Email = req.Email
	}
	if req.Address != "" {
		sponsor.Address = req.Address
	}
	if req.MonthlyAmountInt > 0 {
		sponsor.MonthlyAmountInt = req.MonthlyAmountInt
	}
	if req.Diaspora != nil {
		sponsor.Diaspora = *req.Diaspora
	}
	if req.Locale != "" {
		sponsor.Locale = req.Locale
	}
	if err := a.Sponsors.Update(r.Context(), sponsor); err != nil {
		a.respondDomainErr(w, r, err, "update sponsor")
		return
	}
	a.json(w, http.StatusOK, sponsorToDTO(sponsor))
}

type sponsorStatusRequest struct {
	Status string `json:"status"`
}

func (a *App) SponsorsSetStatus(w http.ResponseWriter, r *http.Request) {
	id, err := a.sponsorIDFromURL(r)
	if err != nil {
		a.respondDomainErr(w, r, err, "sponsor id")
		return
	}
	var req sponsorStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid payload")
		return
	}
	status := domain.SponsorStatus(req.Status)
	switch status {
	case domain.SponsorStatusActive, domain.SponsorStatusInactive, domain.SponsorStatusPending:
	default:
		a.error(w, http.StatusBadRequest, "bad_request", "status must be active, inactive or pending")
		return
	}
	if err := a.Sponsors.SetStatus(r.Context(), id, status); err != nil {
		a.respondDomainErr(w, r, err, "sponsor")
		return
	}
	a.json(w, http.StatusOK, map[string]string{"id": id.String(), "status": string(status)})
}

func queryInt(r *http.Request, key string, fallback int) int {
	v := r.URL.Query().Get(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 {
		return fallback
	}
	return n
}
