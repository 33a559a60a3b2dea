package feed

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"Quill/internal/api/handlers"
	"Quill/internal/core/feeds"
)

// GroupHandler serves a single group's feed
type GroupHandler struct {
	service feeds.Service
}

// NewGroupHandler creates a new group feed handler
func NewGroupHandler(service feeds.Service) *GroupHandler {
	return &GroupHandler{service: service}
}

// HandleGroup handles GET /group/{slug}
// Always recomputed; only the global feed is cached.
func (h *GroupHandler) HandleGroup(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")

	feed, err := h.service.Group(r.Context(), slug, PageParam(r))
	if err != nil {
		handleServiceError(w, err)
		return
	}

	handlers.WriteJSON(w, http.StatusOK, feed)
}
