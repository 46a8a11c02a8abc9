package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"jobmetric.dev/internal/services"
)

// ContentHandler serves the read-only content API
type ContentHandler struct {
	contentService *services.ContentService
	packageService *services.PackageService
	projectService *services.ProjectService
	teamService    *services.TeamService
}

// NewContentHandler creates a new ContentHandler
func NewContentHandler(
	cs *services.ContentService,
	ps *services.PackageService,
	prs *services.ProjectService,
	ts *services.TeamService,
) *ContentHandler {
	return &ContentHandler{
		contentService: cs,
		packageService: ps,
		projectService: prs,
		teamService:    ts,
	}
}

// ListFeatures handles GET /api/features
func (h *ContentHandler) ListFeatures(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, r, http.StatusOK, h.contentService.Features())
}

// ListPackages handles GET /api/packages
func (h *ContentHandler) ListPackages(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, r, http.StatusOK, h.packageService.GetAll())
}

// GetPackage handles GET /api/packages/{name}
func (h *ContentHandler) GetPackage(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")

	pkg, err := h.packageService.GetByName(name)
	if err != nil {
		respondError(w, r, http.StatusNotFound, "Package not found")
		return
	}

	respondJSON(w, r, http.StatusOK, pkg)
}

// ListProjects handles GET /api/projects
func (h *ContentHandler) ListProjects(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, r, http.StatusOK, h.projectService.GetAll())
}

// GetProject handles GET /api/projects/{id}
func (h *ContentHandler) GetProject(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	project, err := h.projectService.GetByID(id)
	if err != nil {
		respondError(w, r, http.StatusNotFound, "Project not found")
		return
	}

	respondJSON(w, r, http.StatusOK, project)
}

// ListStats handles GET /api/stats
func (h *ContentHandler) ListStats(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, r, http.StatusOK, h.contentService.Stats())
}

// ListTeam handles GET /api/team
func (h *ContentHandler) ListTeam(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, r, http.StatusOK, h.teamService.GetAll())
}

// GroupedTeam handles GET /api/team/grouped
func (h *ContentHandler) GroupedTeam(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, r, http.StatusOK, h.teamService.Grouped())
}

// ListTestimonials handles GET /api/testimonials
func (h *ContentHandler) ListTestimonials(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, r, http.StatusOK, h.contentService.Testimonials())
}

// ListPosts handles GET /api/blog
func (h *ContentHandler) ListPosts(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, r, http.StatusOK, h.contentService.Posts())
}
