// internal/handler/router.go
package handler

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/dangerclosesec/sarpa/internal/auth"
	"github.com/dangerclosesec/sarpa/internal/middleware"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// Handlers groups everything the router mounts.
type Handlers struct {
	Auth                  *AuthHandler
	Company               *CompanyHandler
	Asset                 *AssetHandler
	Part                  *PartHandler
	PreventiveMaintenance *PreventiveMaintenanceHandler
	WorkOrder             *WorkOrderHandler
	Upload                *UploadHandler
	Health                *HealthHandler
}

type RouterOptions struct {
	Logger         *slog.Logger
	TokenManager   *auth.TokenManager
	AllowedOrigins []string
	RequestTimeout time.Duration
}

func NewRouter(opts RouterOptions, h Handlers) http.Handler {
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	if opts.RequestTimeout <= 0 {
		opts.RequestTimeout = 30 * time.Second
	}
	if len(opts.AllowedOrigins) == 0 {
		opts.AllowedOrigins = []string{"https://*", "http://*"}
	}

	r := chi.NewRouter()

	// Basic middleware stack
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.Logging(opts.Logger))
	r.Use(middleware.Recovery(opts.Logger))
	r.Use(chimw.Timeout(opts.RequestTimeout))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   opts.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Get("/health", h.Health.Health)

	r.Route("/api", func(r chi.Router) {
		// Public routes
		r.Route("/auth", func(r chi.Router) {
			r.Group(func(r chi.Router) {
				r.Use(chimw.AllowContentType("application/json"))

				r.Post("/register", h.Auth.Register)
				r.Post("/login", h.Auth.Login)
				r.Post("/refresh", h.Auth.Refresh)
				r.Post("/logout", h.Auth.Logout)
			})

			r.With(middleware.Authenticate(opts.TokenManager)).Get("/me", h.Auth.Me)
		})

		// Protected routes
		r.Group(func(r chi.Router) {
			r.Use(middleware.Authenticate(opts.TokenManager))

			r.Get("/files/*", h.Upload.File)
			r.With(chimw.AllowContentType("application/json")).Post("/uploads/presign", h.Upload.Presign)

			r.Route("/companies/{companyID}", func(r chi.Router) {
				r.Use(middleware.CompanyScope)
				r.Use(chimw.AllowContentType("application/json"))

				r.Get("/", h.Company.Get)
				r.Patch("/", h.Company.Rename)

				r.Route("/users", func(r chi.Router) {
					r.Get("/", h.Company.ListUsers)
					r.Get("/{userID}", h.Company.GetUser)
					r.Patch("/{userID}", h.Company.UpdateUser)
				})

				r.Route("/assets", func(r chi.Router) {
					r.Get("/", h.Asset.List)
					r.Post("/", h.Asset.Create)
					r.Get("/{assetID}", h.Asset.Get)
					r.Put("/{assetID}", h.Asset.Update)
					r.Delete("/{assetID}", h.Asset.Delete)
				})

				r.Route("/parts", func(r chi.Router) {
					r.Get("/", h.Part.List)
					r.Post("/", h.Part.Create)
					r.Get("/{partID}", h.Part.Get)
					r.Put("/{partID}", h.Part.Update)
					r.Delete("/{partID}", h.Part.Delete)
				})

				r.Route("/preventive-maintenance", func(r chi.Router) {
					r.Get("/", h.PreventiveMaintenance.List)
					r.Post("/", h.PreventiveMaintenance.Create)
					r.Get("/{pmID}", h.PreventiveMaintenance.Get)
					r.Put("/{pmID}", h.PreventiveMaintenance.Update)
					r.Delete("/{pmID}", h.PreventiveMaintenance.Delete)
				})

				r.Route("/work-orders", func(r chi.Router) {
					r.Get("/", h.WorkOrder.List)
					r.Post("/", h.WorkOrder.Create)
					r.Get("/{workOrderID}", h.WorkOrder.Get)
					r.Put("/{workOrderID}", h.WorkOrder.Update)
					r.Delete("/{workOrderID}", h.WorkOrder.Delete)
				})
			})
		})
	})

	return r
}
