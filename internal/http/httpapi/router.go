package httpapi

import (
	stdhttp "net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"maryjoy/internal/http/handlers"
	"maryjoy/internal/infra"
	"maryjoy/internal/middleware"
)

// NewRouter wires the admin API. Login and the health probe are public;
// everything else requires a staff token, and the administrative routes
// additionally require the admin role.
func NewRouter(app *handlers.App, cfg *infra.Config, countries middleware.CountryLookup) stdhttp.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.RequestID,
		chimw.RealIP,
		chimw.Recoverer,
		middleware.Logger(app.Logger),
		middleware.CORS(cfg.CORSOrigins),
		middleware.RateLimit(cfg.RateLimitPerMin, time.Minute),
		middleware.I18N("en", countries),
	)

	r.Get("/v1/healthz", app.Health)
	r.Post("/v1/auth/login", app.AuthLogin)

	r.Route("/v1", func(r chi.Router) {
		r.Use(middleware.AuthJWT(app.JWTSecret))

		r.Get("/me", app.Me)

		r.Route("/sponsors", func(r chi.Router) {
			r.Post("/", app.SponsorsCreate)
			r.Get("/", app.SponsorsList)
			r.Route("/{cluster}/{specific}", func(r chi.Router) {
				r.Get("/", app.SponsorsGet)
				r.Put("/", app.SponsorsUpdate)
				r.Put("/status", app.SponsorsSetStatus)
				r.Get("/payments", app.PaymentsListBySponsor)
				r.Get("/sponsorships", app.SponsorshipsListBySponsor)
				r.Get("/documents", app.DocumentsListBySponsor)
				r.Get("/documents/archive", app.DocumentsArchiveBySponsor)
			})
		})

		r.Route("/beneficiaries", func(r chi.Router) {
			r.Post("/", app.BeneficiariesCreate)
			r.Get("/", app.BeneficiariesList)
			r.Get("/{id}", app.BeneficiariesGet)
			r.Get("/{id}/sponsorships", app.SponsorshipsListByBeneficiary)
			r.Put("/{id}", app.BeneficiariesUpdate)
		})

		r.Route("/guardians", func(r chi.Router) {
			r.Post("/", app.GuardiansCreate)
			r.Get("/", app.GuardiansList)
			r.Get("/{id}", app.GuardiansGet)
			r.Put("/{id}", app.GuardiansUpdate)
		})

		r.Route("/sponsorships", func(r chi.Router) {
			r.Post("/", app.SponsorshipsCreate)
			r.Get("/{id}", app.SponsorshipsGet)
			r.Post("/{id}/end", app.SponsorshipsEnd)
		})

		r.Route("/payments", func(r chi.Router) {
			r.Post("/", app.PaymentsCreate)
			r.Post("/{id}/confirm", app.PaymentsConfirm)
		})

		r.Route("/documents", func(r chi.Router) {
			r.Post("/", app.DocumentsCreate)
			r.Post("/upload", app.DocumentsUpload)
			r.Get("/{id}", app.DocumentsGet)
			r.Get("/{id}/download", app.DocumentsDownload)
		})

		r.Route("/notifications", func(r chi.Router) {
			r.Get("/", app.NotificationsList)
			r.Post("/{id}/read", app.NotificationsMarkRead)
		})

		r.Get("/stats/summary", app.StatsSummary)

		// Admin-only surface.
		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireAdmin)

			r.Delete("/beneficiaries/{id}", app.BeneficiariesDelete)
			r.Delete("/documents/{id}", app.DocumentsDelete)
			r.Delete("/notifications/{id}", app.NotificationsDelete)
			r.Post("/notifications/broadcast", app.NotificationsBroadcast)

			r.Route("/employees", func(r chi.Router) {
				r.Post("/", app.EmployeesCreate)
				r.Get("/", app.EmployeesList)
				r.Put("/{id}/active", app.EmployeesSetActive)
			})

			r.Post("/reconcile/run", app.ReconcileRun)
		})
	})

	return r
}
