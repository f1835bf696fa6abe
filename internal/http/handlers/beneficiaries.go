package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"maryjoy/internal/domain"
	"maryjoy/internal/infra"
	"maryjoy/internal/sqlinline"
)

type beneficiaryRequest struct {
	Type           string `json:"type"`
	FullName       string `json:"full_name"`
	DateOfBirth    string `json:"date_of_birth"` // YYYY-MM-DD
	Gender         string `json:"gender"`
	GuardianID     string `json:"guardian_id"`
	Status         string `json:"status"`
	SupportDetails string `json:"support_details"`
}

type beneficiaryDTO struct {
	ID             string  `json:"id"`
	Type           string  `json:"type"`
	FullName       string  `json:"full_name"`
	DateOfBirth    string  `json:"date_of_birth"`
	Gender         string  `json:"gender"`
	GuardianID     *string `json:"guardian_id,omitempty"`
	Status         string  `json:"status"`
	SupportDetails string  `json:"support_details"`
	CreatedAt      string  `json:"created_at"`
}

func beneficiaryToDTO(b *domain.Beneficiary) beneficiaryDTO {
	return beneficiaryDTO{
		ID:             b.ID,
		Type:           string(b.Type),
		FullName:       b.FullName,
		DateOfBirth:    b.DateOfBirth.Format("2006-01-02"),
		Gender:         b.Gender,
		GuardianID:     b.GuardianID,
		Status:         string(b.Status),
		SupportDetails: b.SupportDetails,
		CreatedAt:      b.CreatedAt.Format(time.RFC3339),
	}
}

func validBeneficiaryType(t domain.BeneficiaryType) bool {
	return t == domain.BeneficiaryChild || t == domain.BeneficiaryElderly
}

func validBeneficiaryStatus(s domain.BeneficiaryStatus) bool {
	switch s {
	case domain.BeneficiaryWaiting, domain.BeneficiaryAssigned,
		domain.BeneficiaryGraduated, domain.BeneficiaryTerminated:
		return true
	}
	return false
}

func (a *App) BeneficiariesCreate(w http.ResponseWriter, r *http.Request) {
	var req beneficiaryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid payload")
		return
	}
	typ := domain.BeneficiaryType(req.Type)
	if !validBeneficiaryType(typ) || req.FullName == "" {
		a.error(w, http.StatusBadRequest, "bad_request", "type must be child or elderly and full_name is required")
		return
	}
	dob, err := time.Parse("2006-01-02", req.DateOfBirth)
	if err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "date_of_birth must be YYYY-MM-DD")
		return
	}
	// Children join the waiting list with a guardian on file; elderly
	// beneficiaries are registered without one.
	if typ == domain.BeneficiaryChild && req.GuardianID == "" {
		a.error(w, http.StatusBadRequest, "bad_request", "child beneficiaries require a guardian_id")
		return
	}
	status := domain.BeneficiaryStatus(req.Status)
	if status == "" {
		status = domain.BeneficiaryWaiting
	}
	if !validBeneficiaryStatus(status) {
		a.error(w, http.StatusBadRequest, "bad_request", "unknown beneficiary status")
		return
	}

	id := uuid.NewString()
	_, err = a.SQL.Exec(r.Context(), sqlinline.QInsertBeneficiary,
		id, string(typ), req.FullName, dob, req.Gender, req.GuardianID, string(status), req.SupportDetails)
	if err != nil {
		a.respondDomainErr(w, r, err, "create beneficiary")
		return
	}
	a.json(w, http.StatusCreated, map[string]string{"id": id})
}

func (a *App) scanBeneficiary(row interface{ Scan(...any) error }) (*domain.Beneficiary, error) {
	var b domain.Beneficiary
	err := row.Scan(&b.ID, &b.Type, &b.FullName, &b.DateOfBirth, &b.Gender,
		&b.GuardianID, &b.Status, &b.SupportDetails, &b.CreatedAt, &b.UpdatedAt)
	if infra.IsNoRows(err) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (a *App) BeneficiariesGet(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	row := a.SQL.QueryRow(r.Context(), sqlinline.QSelectBeneficiaryByID, id)
	b, err := a.scanBeneficiary(row)
	if err != nil {
		a.respondDomainErr(w, r, err, "beneficiary")
		return
	}
	a.json(w, http.StatusOK, beneficiaryToDTO(b))
}

func (a *App) BeneficiariesList(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	rows, err := a.SQL.Query(r.Context(), sqlinline.QListBeneficiaries,
		q.Get("type"), q.Get("status"), queryInt(r, "limit", 50), queryInt(r, "offset", 0))
	if err != nil {
		a.respondDomainErr(w, r, err, "list beneficiaries")
		return
	}
	defer rows.Close()

	items := make([]beneficiaryDTO, 0)
	for rows.Next() {
		b, err := a.scanBeneficiary(rows)
		if err != nil {
			a.respondDomainErr(w, r, err, "list beneficiaries")
			return
		}
		items = append(items, beneficiaryToDTO(b))
	}
	if err := rows.Err(); err != nil {
		a.respondDomainErr(w, r, err, "list beneficiaries")
		return
	}
	a.json(w, http.StatusOK, map[string]any{"items": items})
}

func (a *App) BeneficiariesUpdate(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	row := a.SQL.QueryRow(r.Context(), sqlinline.QSelectBeneficiaryByID, id)
	b, err := a.scanBeneficiary(row)
	if err != nil {
		a.respondDomainErr(w, r, err, "beneficiary")
		return
	}

	var req beneficiaryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid payload")
		return
	}
	if req.FullName != "" {
		b.FullName = req.FullName
	}
	if req.DateOfBirth != "" {
		dob, err := time.Parse("2006-01-02", req.DateOfBirth)
		if err != nil {
			a.error(w, http.StatusBadRequest, "bad_request", "date_of_birth must be YYYY-MM-DD")
			return
		}
		b.DateOfBirth = dob
	}
	if req.Gender != "" {
		b.Gender = req.Gender
	}
	if req.GuardianID != "" {
		b.GuardianID = &req.GuardianID
	}
	if req.Status != "" {
		status := domain.BeneficiaryStatus(req.Status)
		if !validBeneficiaryStatus(status) {
			a.error(w, http.StatusBadRequest, "bad_request", "unknown beneficiary status")
			return
		}
		b.Status = status
	}
	if req.SupportDetails != "" {
		b.SupportDetails = req.SupportDetails
	}

	guardianID := ""
	if b.GuardianID != nil {
		guardianID = *b.GuardianID
	}
	_, err = a.SQL.Exec(r.Context(), sqlinline.QUpdateBeneficiary,
		b.ID, b.FullName, b.DateOfBirth, b.Gender, guardianID, string(b.Status), b.SupportDetails)
	if err != nil {
		a.respondDomainErr(w, r, err, "update beneficiary")
		return
	}
	a.json(w, http.StatusOK, beneficiaryToDTO(b))
}

func (a *App) BeneficiariesDelete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	tag, err := a.SQL.Exec(r.Context(), sqlinline.QDeleteBeneficiary, id)
	if err != nil {
		a.respondDomainErr(w, r, err, "delete beneficiary")
		return
	}
	if tag.RowsAffected() == 0 {
		a.respondDomainErr(w, r, domain.ErrNotFound, "beneficiary")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
