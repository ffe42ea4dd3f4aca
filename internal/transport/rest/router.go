package rest

import (
	"log/slog"

	"github.com/go-chi/chi"
	chiMiddleware "github.com/go-chi/chi/middleware"

	"github.com/frahmantamala/lead-tracker/internal/employee"
	"github.com/frahmantamala/lead-tracker/internal/lead"
	"github.com/frahmantamala/lead-tracker/internal/session"
	"github.com/frahmantamala/lead-tracker/internal/storage"
	"github.com/frahmantamala/lead-tracker/internal/transport/middleware"
	"github.com/frahmantamala/lead-tracker/internal/transport/swagger"
)

// Dependencies are the collaborators the HTTP surface is built from.
type Dependencies struct {
	Backend         string
	Store           storage.RecordStore
	Sessions        middleware.SessionReader
	SessionHandler  *session.Handler
	EmployeeHandler *employee.Handler
	LeadHandler     *lead.Handler
	AllowedOrigins  string
	Logger          *slog.Logger
}

func RegisterAllRoutes(router *chi.Mux, deps Dependencies) {
	healthHandler := NewHealthHandler(deps.Backend, deps.Store)
	lg := deps.Logger

	// Apply global middleware
	router.Use(middleware.CORS(deps.AllowedOrigins))
	router.Use(chiMiddleware.RequestID)
	router.Use(middleware.RequestID)
	router.Use(middleware.RecoveryMiddleware(lg))
	router.Use(middleware.LoggingMiddleware(lg))

	// OpenAPI document and Swagger UI live outside the API prefix
	router.Get("/openapi.yml", swagger.DocumentHandler)
	router.Handle("/swagger/*", swagger.Handler())

	router.Route("/api/v1", func(r chi.Router) {
		r.Get("/health", healthHandler.healthCheckHandler)
		r.Get("/ping", healthHandler.pingHandler)

		r.Route("/session", func(sr chi.Router) {
			sr.Get("/", deps.SessionHandler.Status)
			sr.Post("/admin/login", deps.SessionHandler.AdminLogin)
			sr.Post("/admin/logout", deps.SessionHandler.AdminLogout)
			sr.Post("/employee/login", deps.SessionHandler.EmployeeLogin)
			sr.Post("/employee/logout", deps.SessionHandler.EmployeeLogout)
		})

		r.Group(func(pr chi.Router) {
			pr.Use(middleware.SessionContext(deps.Sessions, lg))

			// Admin routes
			pr.Group(func(ar chi.Router) {
				ar.Use(middleware.RequireAdmin(lg))
				ar.Get("/employees", deps.EmployeeHandler.ListEmployees)
				ar.Post("/employees", deps.EmployeeHandler.CreateEmployee)
				ar.Get("/employees/{id}", deps.EmployeeHandler.GetEmployee)
				ar.Delete("/employees/{id}", deps.EmployeeHandler.DeleteEmployee)
				ar.Get("/leads", deps.LeadHandler.ListAllLeads)
			})

			pr.Route("/employees/{id}/leads", func(lr chi.Router) {
				// Readable by the admin and the owner
				lr.Group(func(rr chi.Router) {
					rr.Use(middleware.RequireOwnerOrAdmin("id", lg))
					rr.Get("/", deps.LeadHandler.ListLeads)
					rr.Get("/report", deps.LeadHandler.Report)
					rr.Get("/export", deps.LeadHandler.Export)
				})

				// Writable by the owner only
				lr.Group(func(wr chi.Router) {
					wr.Use(middleware.RequireOwner("id", lg))
					wr.Post("/", deps.LeadHandler.CreateLead)
					wr.Put("/{position}", deps.LeadHandler.UpdateLead)
					wr.Delete("/{position}", deps.LeadHandler.DeleteLead)
					wr.Put("/id/{leadID}", deps.LeadHandler.UpdateLeadByID)
					wr.Delete("/id/{leadID}", deps.LeadHandler.DeleteLeadByID)
				})
			})
		})
	})
}
