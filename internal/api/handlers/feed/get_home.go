package feed

import (
	"net/http"
	"strconv"

	"Quill/internal/api/handlers"
	"Quill/internal/core/feeds"
)

// HomeHandler serves the global feed
type HomeHandler struct {
	service feeds.Service
}

// NewHomeHandler creates a new home feed handler
func NewHomeHandler(service feeds.Service) *HomeHandler {
	return &HomeHandler{service: service}
}

// HandleHome handles GET /
// The global feed is the only view that may be answered from the cache.
func (h *HomeHandler) HandleHome(w http.ResponseWriter, r *http.Request) {
	page, err := h.service.Home(r.Context(), PageParam(r))
	if err != nil {
		handleServiceError(w, err)
		return
	}

	handlers.WriteJSON(w, http.StatusOK, page)
}

// PageParam reads the 1-indexed ?page= query parameter.
// Anything unparseable falls back to page 1; out-of-range values are
// clamped by the paginator, not here.
func PageParam(r *http.Request) int {
	raw := r.URL.Query().Get("page")
	if raw == "" {
		return 1
	}
	page, err := strconv.Atoi(raw)
	if err != nil || page < 1 {
		return 1
	}
	return page
}
