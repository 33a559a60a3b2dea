package follow

import (
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"

	"Quill/internal/api/handlers"
	"Quill/internal/api/middleware"
	"Quill/internal/core/authz"
	"Quill/internal/core/follows"
	"Quill/internal/core/users"
)

// Handler manages follow edges from the profile page
type Handler struct {
	followService follows.Service
	userService   users.Service
}

// NewHandler creates a new follow handler
func NewHandler(followService follows.Service, userService users.Service) *Handler {
	return &Handler{
		followService: followService,
		userService:   userService,
	}
}

// HandleFollow handles POST /profile/{username}/follow (auth required)
// Every outcome short of a missing profile lands back on the profile
// page: success, already-following and self-follow are all silent there.
func (h *Handler) HandleFollow(w http.ResponseWriter, r *http.Request) {
	h.manageEdge(w, r, func(actorID, authorID int64) error {
		return h.followService.Follow(r.Context(), actorID, authorID)
	})
}

// HandleUnfollow handles POST /profile/{username}/unfollow (auth required)
func (h *Handler) HandleUnfollow(w http.ResponseWriter, r *http.Request) {
	h.manageEdge(w, r, func(actorID, authorID int64) error {
		return h.followService.Unfollow(r.Context(), actorID, authorID)
	})
}

func (h *Handler) manageEdge(w http.ResponseWriter, r *http.Request, op func(actorID, authorID int64) error) {
	actor := middleware.GetActor(r)
	username := chi.URLParam(r, "username")

	author, err := h.userService.GetByUsername(r.Context(), username)
	if err != nil {
		if err == users.ErrNotFound {
			handlers.WriteError(w, http.StatusNotFound, "UserNotFound", "User not found")
			return
		}
		log.Printf("Unexpected error in follow handler: %v", err)
		handlers.WriteError(w, http.StatusInternalServerError, "InternalServerError",
			"An internal error occurred")
		return
	}

	profilePath := "/profile/" + author.Username

	if err := authz.CanManageFollow(actor, author.ID); err != nil {
		// Self-follow degrades to a silent redirect, not an error page
		http.Redirect(w, r, profilePath, http.StatusSeeOther)
		return
	}

	if err := op(actor.ID, author.ID); err != nil {
		switch err {
		case authz.ErrSelfFollow:
			http.Redirect(w, r, profilePath, http.StatusSeeOther)
		case follows.ErrNotFollowing:
			handlers.WriteError(w, http.StatusNotFound, "NotFollowing",
				"You do not follow this author")
		default:
			log.Printf("Unexpected error in follow handler: %v", err)
			handlers.WriteError(w, http.StatusInternalServerError, "InternalServerError",
				"An internal error occurred")
		}
		return
	}

	http.Redirect(w, r, profilePath, http.StatusSeeOther)
}
