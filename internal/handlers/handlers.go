package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"jobmetric.dev/internal/config"
	"jobmetric.dev/internal/content"
	"jobmetric.dev/internal/middleware"
	"jobmetric.dev/internal/render"
	"jobmetric.dev/internal/services"
	"jobmetric.dev/pkg/logger"
)

// SetupRoutes configures all routes and returns the router
func SetupRoutes(cfg *config.Config, reg *content.Registry) (http.Handler, error) {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.Recovery)
	r.Use(middleware.Logger)
	r.Use(middleware.CORS)
	r.Use(middleware.Metrics)

	// Initialize services
	contentService := services.NewContentService(reg)
	packageService := services.NewPackageService(reg.Packages)
	projectService := services.NewProjectService(reg.Projects)
	teamService := services.NewTeamService(reg.Team)
	newsletterService := services.NewNewsletterService(cfg.Newsletter.ResetDelay)

	renderer, err := render.New()
	if err != nil {
		return nil, err
	}

	// Initialize handlers
	pageHandler := NewPageHandler(renderer, reg, teamService, newsletterService)
	contentHandler := NewContentHandler(contentService, packageService, projectService, teamService)
	newsletterHandler := NewNewsletterHandler(newsletterService)

	// Pages
	r.Get("/", pageHandler.Home)
	r.Get("/team", pageHandler.Team)

	// API routes
	r.Route("/api", func(r chi.Router) {
		r.Get("/features", contentHandler.ListFeatures)
		r.Get("/packages", contentHandler.ListPackages)
		r.Get("/packages/{name}", contentHandler.GetPackage)
		r.Get("/projects", contentHandler.ListProjects)
		r.Get("/projects/{id}", contentHandler.GetProject)
		r.Get("/stats", contentHandler.ListStats)
		r.Get("/team", contentHandler.ListTeam)
		r.Get("/team/grouped", contentHandler.GroupedTeam)
		r.Get("/testimonials", contentHandler.ListTestimonials)
		r.Get("/blog", contentHandler.ListPosts)

		r.Post("/newsletter", newsletterHandler.Subscribe)
		r.Get("/newsletter/status", newsletterHandler.Status)

		// Health check
		r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
			respondJSON(w, r, http.StatusOK, map[string]string{"status": "ok"})
		})
	})

	// Prometheus metrics
	r.Handle(cfg.HTTP.MetricsPath, promhttp.Handler())

	// Static files
	fileServer := http.FileServer(http.Dir(cfg.StaticDir))
	r.Handle("/static/*", http.StripPrefix("/static", fileServer))

	return r, nil
}

// respondJSON writes a JSON response
func respondJSON(w http.ResponseWriter, r *http.Request, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger.Error(r.Context(), "could not encode response", zap.Error(err))
	}
}

// respondError writes an error JSON response
func respondError(w http.ResponseWriter, r *http.Request, status int, message string) {
	respondJSON(w, r, status, map[string]string{"error": message})
}
