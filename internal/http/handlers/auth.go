package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"golang.org/x/crypto/bcrypt"

	"maryjoy/internal/domain"
	"maryjoy/internal/middleware"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token    string      `json:"token"`
	Employee profileDTO `json:"employee"`
}

type profileDTO struct {
	ID       string `json:"id"`
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	Role     string `json:"role"`
}

func (a *App) AuthLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid payload")
		return
	}
	if req.Email == "" || req.Password == "" {
		a.error(w, http.StatusBadRequest, "bad_request", "email and password required")
		return
	}

	employee, err := a.Employees.GetByEmail(r.Context(), req.Email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			// Same response as a wrong password so the endpoint does not
			// reveal which accounts exist.
			a.error(w, http.StatusUnauthorized, "unauthorized", "invalid credentials")
			return
		}
		a.respondDomainErr(w, r, err, "load employee")
		return
	}
	if !employee.Active {
		a.error(w, http.StatusUnauthorized, "unauthorized", "account disabled")
		return
	}
	if err := bcrypt.CompareHashAndPassword([]byte(employee.PasswordHash), []byte(req.Password)); err != nil {
		a.error(w, http.StatusUnauthorized, "unauthorized", "invalid credentials")
		return
	}

	token, err := middleware.SignJWT(a.JWTSecret, middleware.TokenClaims{
		Sub:      employee.ID,
		Role:     string(employee.Role),
		Locale:   middleware.LocaleFromContext(r.Context()),
		Exp:      time.Now().Add(24 * time.Hour).Unix(),
		Issuer:   "maryjoy-admin",
		Audience: "maryjoy-clients",
	})
	if err != nil {
		a.Logger.Error().Err(err).Msg("sign jwt failed")
		a.error(w, http.StatusInternalServerError, "internal", "failed to sign token")
		return
	}

	a.json(w, http.StatusOK, loginResponse{
		Token: token,
		Employee: profileDTO{
			ID:       employee.ID,
			FullName: employee.FullName,
			Email:    employee.Email,
			Role:     string(employee.Role),
		},
	})
}

// Me returns the signed-in employee's profile.
func (a *App) Me(w http.ResponseWriter, r *http.Request) {
	employeeID := a.currentEmployeeID(r)
	if employeeID == "" {
		a.error(w, http.StatusUnauthorized, "unauthorized", "missing employee context")
		return
	}
	employee, err := a.Employees.GetByID(r.Context(), employeeID)
	if err != nil {
		a.respondDomainErr(w, r, err, "employee")
		return
	}
	a.json(w, http.StatusOK, profileDTO{
		ID:       employee.ID,
		FullName: employee.FullName,
		Email:    employee.Email,
		Role:     string(employee.Role),
	})
}
