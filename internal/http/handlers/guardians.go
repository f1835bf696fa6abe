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

type guardianRequest struct {
	FullName string `json:"full_name"`
	Relation string `json:"relation"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
}

type guardianDTO struct {
	ID        string `json:"id"`
	FullName  string `json:"full_name"`
	Relation  string `json:"relation"`
	Phone     string `json:"phone"`
	Address   string `json:"address"`
	CreatedAt string `json:"created_at"`
}

func guardianToDTO(g *domain.Guardian) guardianDTO {
	return guardianDTO{
		ID:        g.ID,
		FullName:  g.FullName,
		Relation:  g.Relation,
		Phone:     g.Phone,
		Address:   g.Address,
		CreatedAt: g.CreatedAt.Format(time.RFC3339),
	}
}

func (a *App) GuardiansCreate(w http.ResponseWriter, r *http.Request) {
	var req guardianRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid payload")
		return
	}
	if req.FullName == "" || req.Phone == "" {
		a.error(w, http.StatusBadRequest, "bad_request", "full_name and phone are required")
		return
	}
	id := uuid.NewString()
	_, err := a.SQL.Exec(r.Context(), sqlinline.QInsertGuardian,
		id, req.FullName, req.Relation, req.Phone, req.Address)
	if err != nil {
		a.respondDomainErr(w, r, err, "create guardian")
		return
	}
	a.json(w, http.StatusCreated, map[string]string{"id": id})
}

func (a *App) GuardiansGet(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	var g domain.Guardian
	err := a.SQL.QueryRow(r.Context(), sqlinline.QSelectGuardianByID, id).
		Scan(&g.ID, &g.FullName, &g.Relation, &g.Phone, &g.Address, &g.CreatedAt)
	if infra.IsNoRows(err) {
		a.respondDomainErr(w, r, domain.ErrNotFound, "guardian")
		return
	}
	if err != nil {
		a.respondDomainErr(w, r, err, "guardian")
		return
	}
	a.json(w, http.StatusOK, guardianToDTO(&g))
}

func (a *App) GuardiansList(w http.ResponseWriter, r *http.Request) {
	rows, err := a.SQL.Query(r.Context(), sqlinline.QListGuardians,
		queryInt(r, "limit", 50), queryInt(r, "offset", 0))
	if err != nil {
		a.respondDomainErr(w, r, err, "list guardians")
		return
	}
	defer rows.Close()

	items := make([]guardianDTO, 0)
	for rows.Next() {
		var g domain.Guardian
		if err := rows.Scan(&g.ID, &g.FullName, &g.Relation, &g.Phone, &g.Address, &g.CreatedAt); err != nil {
			a.respondDomainErr(w, r, err, "list guardians")
			return
		}
		items = append(items, guardianToDTO(&g))
	}
	if err := rows.Err(); err != nil {
		a.respondDomainErr(w, r, err, "list guardians")
		return
	}
	a.json(w, http.StatusOK, map[string]any{"items": items})
}

func (a *App) GuardiansUpdate(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	var g domain.Guardian
	err := a.SQL.QueryRow(r.Context(), sqlinline.QSelectGuardianByID, id).
		Scan(&g.ID, &g.FullName, &g.Relation, &g.Phone, &g.Address, &g.CreatedAt)
	if infra.IsNoRows(err) {
		a.respondDomainErr(w, r, domain.ErrNotFound, "guardian")
		return
	}
	if err != nil {
		a.respondDomainErr(w, r, err, "guardian")
		return
	}

	var req guardianRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid payload")
		return
	}
	if req.FullName != "" {
		g.FullName = req.FullName
	}
	if req.Relation != "" {
		g.Relation = req.Relation
	}
	if req.Phone != "" {
		g.Phone = req.Phone
	}
	if req.Address != "" {
		g.Address = req.Address
	}
	if _, err := a.SQL.Exec(r.Context(), sqlinline.QUpdateGuardian,
		g.ID, g.FullName, g.Relation, g.Phone, g.Address); err != nil {
		a.respondDomainErr(w, r, err, "update guardian")
		return
	}
	a.json(w, http.StatusOK, guardianToDTO(&g))
}
