package feed

import (
	"net/http"

	"Quill/internal/api/handlers"
	"Quill/internal/api/middleware"
	"Quill/internal/core/feeds"
)

// FollowingHandler serves the follow feed: posts by authors the viewer
// follows
type FollowingHandler struct {
	service feeds.Service
}

// NewFollowingHandler creates a new follow feed handler
func NewFollowingHandler(service feeds.Service) *FollowingHandler {
	return &FollowingHandler{service: service}
}

// HandleFollowing handles GET /follow (auth required)
func (h *FollowingHandler) HandleFollowing(w http.ResponseWriter, r *http.Request) {
	actor := middleware.GetActor(r)

	page, err := h.service.Following(r.Context(), actor.ID, PageParam(r))
	if err != nil {
		handleServiceError(w, err)
		return
	}

	handlers.WriteJSON(w, http.StatusOK, page)
}
