package rest

import (
	"database/sql"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	chiMiddleware "github.com/go-chi/chi/middleware"

	"github.com/docmanpro/docman/internal/auth"
	"github.com/docmanpro/docman/internal/document"
	"github.com/docmanpro/docman/internal/role"
	"github.com/docmanpro/docman/internal/transport/middleware"
	"github.com/docmanpro/docman/internal/transport/swagger"
	"github.com/docmanpro/docman/internal/user"
)

func RegisterAllRoutes(router *chi.Mux, db *sql.DB, authHandler *auth.Handler, userHandler *user.Handler, documentHandler *document.Handler, roleHandler *role.Handler, logger *slog.Logger) {
	healthHandler := NewHealthHandler(db)

	// Apply global middleware
	router.Use(middleware.CORS)
	router.Use(chiMiddleware.RequestID)
	router.Use(middleware.TraceID)
	router.Use(middleware.LoggingMiddleware(logger))
	router.Use(middleware.RecoveryMiddleware(logger))

	// Serve OpenAPI spec at root (outside API prefix)
	router.Get("/openapi.yml", func(w http.ResponseWriter, r *http.Request) {
		http.ServeFile(w, r, "./api/openapi.yml")
	})
	// Swagger UI route at root
	router.Handle("/swagger/*", swagger.Handler())

	// Resource routes live at the root so clients address /documents,
	// /roles and /users directly. Only the welcome message is versioned.
	router.Get("/v1", func(w http.ResponseWriter, req *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{
			"message": "Welcome to DocMan-Pro API",
		})
	})

	// Health check routes
	router.Get("/health", healthHandler.healthCheckHandler)
	router.Get("/ping", healthHandler.pingHandler)

	// Public routes: account creation and login
	router.Post("/users", userHandler.Signup)
	router.Post("/users/login", authHandler.Login)
	router.Post("/users/logout", authHandler.Logout)

	// Everything else requires a signed token
	router.Group(func(pr chi.Router) {
		pr.Use(authHandler.Middleware)

		pr.Route("/users", func(ur chi.Router) {
			ur.Get("/", userHandler.List)
			ur.Get("/{userId}", userHandler.Get)
			ur.Put("/{userId}", userHandler.Update)
			ur.Delete("/{userId}", userHandler.Delete)
			ur.Get("/{userId}/documents", documentHandler.ListForUser)
		})

		pr.Route("/documents", func(dr chi.Router) {
			dr.Post("/", documentHandler.Create)
			dr.Get("/", documentHandler.List)
			dr.Get("/{documentId}", documentHandler.Get)
			dr.Put("/{documentId}", documentHandler.Update)
			dr.Delete("/{documentId}", documentHandler.Delete)
		})

		pr.Route("/roles", func(rr chi.Router) {
			rr.Get("/", roleHandler.List)
			rr.Post("/", roleHandler.Create)
			rr.Delete("/{roleId}", roleHandler.Delete)
		})

		pr.Get("/search/users", userHandler.Search)
		pr.Get("/search/documents", documentHandler.Search)
	})
}
