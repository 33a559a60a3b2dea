package profile

import (
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"

	"Quill/internal/api/handlers"
	"Quill/internal/api/handlers/feed"
	"Quill/internal/api/middleware"
	"Quill/internal/core/feeds"
	"Quill/internal/core/follows"
	"Quill/internal/core/posts"
	"Quill/internal/core/users"
)

// Handler serves author profiles: the author's posts plus follow counts
// and, for logged-in viewers, whether they follow this author
type Handler struct {
	userService   users.Service
	feedService   feeds.Service
	followService follows.Service
}

// NewHandler creates a new profile handler
func NewHandler(userService users.Service, feedService feeds.Service, followService follows.Service) *Handler {
	return &Handler{
		userService:   userService,
		feedService:   feedService,
		followService: followService,
	}
}

// HandleGetProfile handles GET /profile/{username}
func (h *Handler) HandleGetProfile(w http.ResponseWriter, r *http.Request) {
	username := chi.URLParam(r, "username")

	user, err := h.userService.GetByUsername(r.Context(), username)
	if err != nil {
		if err == users.ErrNotFound {
			handlers.WriteError(w, http.StatusNotFound, "UserNotFound", "User not found")
			return
		}
		h.internalError(w, err)
		return
	}

	page, err := h.feedService.Author(r.Context(), username, feed.PageParam(r))
	if err != nil {
		if err == posts.ErrAuthorNotFound {
			handlers.WriteError(w, http.StatusNotFound, "UserNotFound", "User not found")
			return
		}
		h.internalError(w, err)
		return
	}

	followerCount, err := h.followService.FollowerCount(r.Context(), user.ID)
	if err != nil {
		h.internalError(w, err)
		return
	}

	followingCount, err := h.followService.FollowingCount(r.Context(), user.ID)
	if err != nil {
		h.internalError(w, err)
		return
	}

	following := false
	if actor := middleware.GetActor(r); actor.Authenticated && actor.ID != user.ID {
		following, err = h.followService.IsFollowing(r.Context(), actor.ID, user.ID)
		if err != nil {
			h.internalError(w, err)
			return
		}
	}

	handlers.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"profile": users.Profile{
			User:           user,
			PostCount:      page.TotalItems,
			FollowerCount:  followerCount,
			FollowingCount: followingCount,
			Following:      following,
		},
		"page": page,
	})
}

func (h *Handler) internalError(w http.ResponseWriter, err error) {
	log.Printf("Unexpected error in profile handler: %v", err)
	handlers.WriteError(w, http.StatusInternalServerError, "InternalServerError",
		"An internal error occurred")
}
