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

type documentCreateRequest struct {
	ClusterID     string `json:"cluster_id"`
	SpecificID    string `json:"specific_id"`
	BeneficiaryID string `json:"beneficiary_id"`
	Title         string `json:"title"`
	FileName      string `json:"file_name"`
	MIMEType      string `json:"mime_type"`
	StorageKey    string `json:"storage_key"`
}

type documentDTO struct {
	ID            string  `json:"id"`
	SponsorID     string  `json:"sponsor_id,omitempty"`
	BeneficiaryID *string `json:"beneficiary_id,omitempty"`
	Title         string  `json:"title"`
	FileName      string  `json:"file_name"`
	MIMEType      string  `json:"mime_type"`
	StorageKey    string  `json:"storage_key"`
	UploadedBy    string  `json:"uploaded_by"`
	CreatedAt     string  `json:"created_at"`
}

func documentToDTO(d *domain.Document) documentDTO {
	dto := documentDTO{
		ID:            d.ID,
		BeneficiaryID: d.BeneficiaryID,
		Title:         d.Title,
		FileName:      d.FileName,
		MIMEType:      d.MIMEType,
		StorageKey:    d.StorageKey,
		UploadedBy:    d.UploadedBy,
		CreatedAt:     d.CreatedAt.Format(time.RFC3339),
	}
	if !d.SponsorID.IsZero() {
		dto.SponsorID = d.SponsorID.String()
	}
	return dto
}

func (a *App) scanDocument(row interface{ Scan(...any) error }) (*domain.Document, error) {
	var d domain.Document
	err := row.Scan(&d.ID, &d.SponsorID.Cluster, &d.SponsorID.Specific,
		&d.BeneficiaryID, &d.Title, &d.FileName, &d.MIMEType, &d.StorageKey,
		&d.UploadedBy, &d.CreatedAt)
	if infra.IsNoRows(err) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &d, nil
}

// DocumentsCreate records file metadata. A document attached to a sponsor
// triggers a report notice; the file bytes live in external storage under
// storage_key and never pass through this API.
func (a *App) DocumentsCreate(w http.ResponseWriter, r *http.Request) {
	var req documentCreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid payload")
		return
	}
	if req.Title == "" || req.FileName == "" || req.StorageKey == "" {
		a.error(w, http.StatusBadRequest, "bad_request", "title, file_name and storage_key are required")
		return
	}
	if req.ClusterID == "" && req.SpecificID == "" && req.BeneficiaryID == "" {
		a.error(w, http.StatusBadRequest, "bad_request", "document must reference a sponsor or a beneficiary")
		return
	}
	var sponsorID domain.SponsorID
	if req.ClusterID != "" || req.SpecificID != "" {
		var err error
		sponsorID, err = domain.NewSponsorID(req.ClusterID, req.SpecificID)
		if err != nil {
			a.respondDomainErr(w, r, err, "sponsor id")
			return
		}
		if _, err := a.Sponsors.GetByID(r.Context(), sponsorID); err != nil {
			a.respondDomainErr(w, r, err, "sponsor")
			return
		}
	}

	id := uuid.NewString()
	_, err := a.SQL.Exec(r.Context(), sqlinline.QInsertDocument,
		id, sponsorID.Cluster, sponsorID.Specific, req.BeneficiaryID,
		req.Title, req.FileName, req.MIMEType, req.StorageKey, a.currentEmployeeID(r))
	if err != nil {
		a.respondDomainErr(w, r, err, "create document")
		return
	}

	if !sponsorID.IsZero() {
		if err := a.Notifier.ReportUploaded(r.Context(), sponsorID, req.Title); err != nil {
			a.Logger.Error().Err(err).Str("document_id", id).Msg("document created but notification failed")
		}
	}
	a.json(w, http.StatusCreated, map[string]string{"id": id})
}

func (a *App) DocumentsGet(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	row := a.SQL.QueryRow(r.Context(), sqlinline.QSelectDocumentByID, id)
	d, err := a.scanDocument(row)
	if err != nil {
		a.respondDomainErr(w, r, err, "document")
		return
	}
	a.json(w, http.StatusOK, documentToDTO(d))
}

func (a *App) DocumentsListBySponsor(w http.ResponseWriter, r *http.Request) {
	sponsorID, err := a.sponsorIDFromURL(r)
	if err != nil {
		a.respondDomainErr(w, r, err, "sponsor id")
		return
	}
	rows, err := a.SQL.Query(r.Context(), sqlinline.QListDocumentsBySponsor,
		sponsorID.Cluster, sponsorID.Specific)
	if err != nil {
		a.respondDomainErr(w, r, err, "list documents")
		return
	}
	defer rows.Close()

	items := make([]documentDTO, 0)
	for rows.Next() {
		d, err := a.scanDocument(rows)
		if err != nil {
			a.respondDomainErr(w, r, err, "list documents")
			return
		}
		items = append(items, documentToDTO(d))
	}
	if err := rows.Err(); err != nil {
		a.respondDomainErr(w, r, err, "list documents")
		return
	}
	a.json(w, http.StatusOK, map[string]any{"items": items})
}

func (a *App) DocumentsDelete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	tag, err := a.SQL.Exec(r.Context(), sqlinline.QDeleteDocument, id)
	if err != nil {
		a.respondDomainErr(w, r, err, "delete document")
		return
	}
	if tag.RowsAffected() == 0 {
		a.respondDomainErr(w, r, domain.ErrNotFound, "document")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
