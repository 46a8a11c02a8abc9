package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"jobmetric.dev/internal/models"
	"jobmetric.dev/internal/services"
)

// NewsletterHandler handles newsletter signup endpoints
type NewsletterHandler struct {
	newsletterService *services.NewsletterService
}

// NewNewsletterHandler creates a new NewsletterHandler
func NewNewsletterHandler(ns *services.NewsletterService) *NewsletterHandler {
	return &NewsletterHandler{newsletterService: ns}
}

// Subscribe handles POST /api/newsletter. It accepts a JSON body or the
// form post from the footer.
func (h *NewsletterHandler) Subscribe(w http.ResponseWriter, r *http.Request) {
	var req models.SubscribeRequest

	ct := r.Header.Get("Content-Type")
	if strings.HasPrefix(ct, "application/json") {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondError(w, r, http.StatusBadRequest, "Invalid request body")
			return
		}
	} else {
		if err := r.ParseForm(); err != nil {
			respondError(w, r, http.StatusBadRequest, "Invalid form body")
			return
		}
		req.Email = r.PostFormValue("email")
	}

	if err := h.newsletterService.Subscribe(req.Email); err != nil {
		respondError(w, r, http.StatusBadRequest, "Invalid email address")
		return
	}

	respondJSON(w, r, http.StatusAccepted, h.newsletterService.Status())
}

// Status handles GET /api/newsletter/status
func (h *NewsletterHandler) Status(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, r, http.StatusOK, h.newsletterService.Status())
}
