package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"maryjoy/internal/domain"
	"maryjoy/internal/sqlinline"
)

type employeeCreateRequest struct {
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

type employeeDTO struct {
	ID        string `json:"id"`
	FullName  string `json:"full_name"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	Active    bool   `json:"active"`
	CreatedAt string `json:"created_at"`
}

func employeeToDTO(e *domain.Employee) employeeDTO {
	return employeeDTO{
		ID:        e.ID,
		FullName:  e.FullName,
		Email:     e.Email,
		Role:      string(e.Role),
		Active:    e.Active,
		CreatedAt: e.CreatedAt.Format(time.RFC3339),
	}
}

func (a *App) EmployeesCreate(w http.ResponseWriter, r *http.Request) {
	var req employeeCreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid payload")
		return
	}
	if req.FullName == "" || req.Email == "" || len(req.Password) < 8 {
		a.error(w, http.StatusBadRequest, "bad_request", "full_name, email and a password of at least 8 characters are required")
		return
	}
	role := domain.EmployeeRole(req.Role)
	if role != domain.RoleAdmin && role != domain.RoleStaff {
		a.error(w, http.StatusBadRequest, "bad_request", "role must be admin or staff")
		return
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		a.respondDomainErr(w, r, err, "hash password")
		return
	}

	id := uuid.NewString()
	_, err = a.SQL.Exec(r.Context(), sqlinline.QInsertEmployee,
		id, req.FullName, req.Email, string(hash), string(role))
	if err != nil {
		a.respondDomainErr(w, r, err, "create employee")
		return
	}
	a.json(w, http.StatusCreated, map[string]string{"id": id})
}

func (a *App) EmployeesList(w http.ResponseWriter, r *http.Request) {
	rows, err := a.SQL.Query(r.Context(), sqlinline.QListEmployees)
	if err != nil {
		a.respondDomainErr(w, r, err, "list employees")
		return
	}
	defer rows.Close()

	items := make([]employeeDTO, 0)
	for rows.Next() {
		var e domain.Employee
		if err := rows.Scan(&e.ID, &e.FullName, &e.Email, &e.PasswordHash,
			&e.Role, &e.Active, &e.CreatedAt, &e.UpdatedAt); err != nil {
			a.respondDomainErr(w, r, err, "list employees")
			return
		}
		items = append(items, employeeToDTO(&e))
	}
	if err := rows.Err(); err != nil {
		a.respondDomainErr(w, r, err, "list employees")
		return
	}
	a.json(w, http.StatusOK, map[string]any{"items": items})
}

type employeeActiveRequest struct {
	Active bool `json:"active"`
}

// EmployeesSetActive enables or disables a staff account. Disabled accounts
// keep their rows so audit references stay intact.
func (a *App) EmployeesSetActive(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	var req employeeActiveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid payload")
		return
	}
	tag, err := a.SQL.Exec(r.Context(), sqlinline.QSetEmployeeActive, id, req.Active)
	if err != nil {
		a.respondDomainErr(w, r, err, "update employee")
		return
	}
	if tag.RowsAffected() == 0 {
		a.respondDomainErr(w, r, domain.ErrNotFound, "employee")
		return
	}
	a.json(w, http.StatusOK, map[string]any{"id": id, "active": req.Active})
}
