package handlers

import (
	"fmt"
	"io"
	"net/http"
	"path"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"maryjoy/internal/domain"
	"maryjoy/internal/sqlinline"
	"maryjoy/pkg/zip"
)

const maxUploadBytes = 20 << 20

// DocumentsUpload accepts a multipart form with the file under "file" and
// the same reference fields DocumentsCreate takes. The bytes go to the file
// store, the metadata row records the resulting storage key.
func (a *App) DocumentsUpload(w http.ResponseWriter, r *http.Request) {
	if a.Files == nil {
		a.error(w, http.StatusNotImplemented, "no_storage", "file storage is not configured")
		return
	}
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid multipart form")
		return
	}
	file, header, err := r.FormFile("file")
	if err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "a file part is required")
		return
	}
	defer file.Close()

	title := r.FormValue("title")
	if title == "" {
		title = header.Filename
	}
	clusterID := r.FormValue("cluster_id")
	specificID := r.FormValue("specific_id")
	beneficiaryID := r.FormValue("beneficiary_id")
	if clusterID == "" && specificID == "" && beneficiaryID == "" {
		a.error(w, http.StatusBadRequest, "bad_request", "document must reference a sponsor or a beneficiary")
		return
	}
	var sponsorID domain.SponsorID
	if clusterID != "" || specificID != "" {
		sponsorID, err = domain.NewSponsorID(clusterID, specificID)
		if err != nil {
			a.respondDomainErr(w, r, err, "sponsor id")
			return
		}
		if _, err := a.Sponsors.GetByID(r.Context(), sponsorID); err != nil {
			a.respondDomainErr(w, r, err, "sponsor")
			return
		}
	}

	data, err := io.ReadAll(io.LimitReader(file, maxUploadBytes+1))
	if err != nil {
		a.respondDomainErr(w, r, err, "read upload")
		return
	}
	if len(data) > maxUploadBytes {
		a.error(w, http.StatusRequestEntityTooLarge, "too_large", "file exceeds the upload limit")
		return
	}

	id := uuid.NewString()
	key, err := a.Files.Save(r.Context(), fmt.Sprintf("documents/%s/%s", time.Now().Format("2006/01"), id+path.Ext(header.Filename)), data)
	if err != nil {
		a.respondDomainErr(w, r, err, "store file")
		return
	}
	mimeType := header.Header.Get("Content-Type")
	_, err = a.SQL.Exec(r.Context(), sqlinline.QInsertDocument,
		id, sponsorID.Cluster, sponsorID.Specific, beneficiaryID,
		title, header.Filename, mimeType, key, a.currentEmployeeID(r))
	if err != nil {
		a.respondDomainErr(w, r, err, "create document")
		return
	}

	if !sponsorID.IsZero() {
		if err := a.Notifier.ReportUploaded(r.Context(), sponsorID, title); err != nil {
			a.Logger.Error().Err(err).Str("document_id", id).Msg("document uploaded but notification failed")
		}
	}
	a.json(w, http.StatusCreated, map[string]string{"id": id, "storage_key": key})
}

func (a *App) DocumentsDownload(w http.ResponseWriter, r *http.Request) {
	if a.Files == nil {
		a.error(w, http.StatusNotImplemented, "no_storage", "file storage is not configured")
		return
	}
	id := chi.URLParam(r, "id")
	row := a.SQL.QueryRow(r.Context(), sqlinline.QSelectDocumentByID, id)
	d, err := a.scanDocument(row)
	if err != nil {
		a.respondDomainErr(w, r, err, "document")
		return
	}
	data, err := a.Files.Load(r.Context(), d.StorageKey)
	if err != nil {
		a.respondDomainErr(w, r, err, "load file")
		return
	}
	mimeType := d.MIMEType
	if mimeType == "" {
		mimeType = "application/octet-stream"
	}
	w.Header().Set("Content-Type", mimeType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", d.FileName))
	_, _ = w.Write(data)
}

// DocumentsArchiveBySponsor bundles every file on record for a sponsor into
// one zip download. Documents whose bytes are missing from the store are
// skipped so one lost file does not block the rest.
func (a *App) DocumentsArchiveBySponsor(w http.ResponseWriter, r *http.Request) {
	if a.Files == nil {
		a.error(w, http.StatusNotImplemented, "no_storage", "file storage is not configured")
		return
	}
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

	var entries []zip.Entry
	for rows.Next() {
		d, err := a.scanDocument(rows)
		if err != nil {
			a.respondDomainErr(w, r, err, "list documents")
			return
		}
		data, err := a.Files.Load(r.Context(), d.StorageKey)
		if err != nil {
			a.Logger.Warn().Err(err).Str("document_id", d.ID).Msg("archive: skipping unreadable file")
			continue
		}
		entries = append(entries, zip.Entry{Filename: d.FileName, Data: data})
	}
	if err := rows.Err(); err != nil {
		a.respondDomainErr(w, r, err, "list documents")
		return
	}
	if len(entries) == 0 {
		a.respondDomainErr(w, r, domain.ErrNotFound, "documents")
		return
	}

	w.Header().Set("Content-Type", "application/zip")
	w.Header().Set("Content-Disposition",
		fmt.Sprintf("attachment; filename=%q", sponsorID.String()+"-documents.zip"))
	_, _ = w.Write(zip.Archive(entries))
}
