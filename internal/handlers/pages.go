package handlers

import (
	"net/http"

	"go.uber.org/zap"

	"jobmetric.dev/internal/content"
	"jobmetric.dev/internal/render"
	"jobmetric.dev/internal/services"
	"jobmetric.dev/pkg/logger"
)

// PageHandler serves the server-rendered HTML pages
type PageHandler struct {
	renderer          *render.Renderer
	reg               *content.Registry
	teamService       *services.TeamService
	newsletterService *services.NewsletterService
}

// NewPageHandler creates a new PageHandler
func NewPageHandler(
	renderer *render.Renderer,
	reg *content.Registry,
	ts *services.TeamService,
	ns *services.NewsletterService,
) *PageHandler {
	return &PageHandler{
		renderer:          renderer,
		reg:               reg,
		teamService:       ts,
		newsletterService: ns,
	}
}

// Home handles GET /
func (h *PageHandler) Home(w http.ResponseWriter, r *http.Request) {
	data := render.ComposeHome(h.reg, h.newsletterService.Status())

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := h.renderer.HomePage(w, data); err != nil {
		logger.Error(r.Context(), "could not render home page", zap.Error(err))
	}
}

// Team handles GET /team
func (h *PageHandler) Team(w http.ResponseWriter, r *http.Request) {
	data := render.ComposeTeam(h.teamService.Grouped(), h.newsletterService.Status())

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := h.renderer.TeamPage(w, data); err != nil {
		logger.Error(r.Context(), "could not render team page", zap.Error(err))
	}
}
