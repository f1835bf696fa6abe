package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"maryjoy/internal/domain"
	"maryjoy/internal/infra"
	"maryjoy/internal/middleware"
	"maryjoy/internal/notify"
	"maryjoy/internal/reconcile"
	"maryjoy/internal/storage"
)

// SweepRunner triggers one reconciliation pass; satisfied by *reconcile.Sweeper.
type SweepRunner interface {
	Run(ctx context.Context) (reconcile.Result, error)
}

// App carries the shared dependencies for all HTTP handlers.
type App struct {
	SQL       infra.SQLExecutor
	Logger    infra.Logger
	JWTSecret string

	Sponsors      domain.SponsorRepository
	Payments      domain.PaymentRepository
	Notifications domain.NotificationRepository
	Employees     domain.EmployeeRepository
	Notifier      *notify.Service
	Sweeper       SweepRunner
	Files         *storage.FileStore // nil when no storage path is configured
}

func (a *App) json(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func (a *App) error(w http.ResponseWriter, code int, tag, message string) {
	a.json(w, code, map[string]string{"error": tag, "message": message})
}

// sponsorIDFromURL reads the {cluster}/{specific} pair from the route.
func (a *App) sponsorIDFromURL(r *http.Request) (domain.SponsorID, error) {
	return domain.NewSponsorID(chi.URLParam(r, "cluster"), chi.URLParam(r, "specific"))
}

func (a *App) currentEmployeeID(r *http.Request) string {
	return middleware.EmployeeIDFromContext(r.Context())
}

// respondDomainErr maps domain sentinel errors onto HTTP status codes; the
// fallthrough is an internal error, logged with the request id.
func (a *App) respondDomainErr(w http.ResponseWriter, r *http.Request, err error, context string) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		a.error(w, http.StatusNotFound, "not_found", context+" not found")
	case errors.Is(err, domain.ErrInvalidSponsorID):
		a.error(w, http.StatusBadRequest, "invalid_sponsor_id", "sponsor id must be a cluster-specific pair")
	case errors.Is(err, domain.ErrInvalidPeriod):
		a.error(w, http.StatusBadRequest, "invalid_period", "payment period is not a valid month span")
	case errors.Is(err, domain.ErrAlreadyConfirmed):
		a.error(w, http.StatusConflict, "already_confirmed", "payment is already confirmed")
	default:
		a.Logger.Error().Err(err).
			Str("request_id", middleware.RequestIDFromContext(r.Context())).
			Msgf("%s failed", context)
		a.error(w, http.StatusInternalServerError, "internal", "unexpected error")
	}
}
