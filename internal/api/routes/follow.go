package routes

import (
	"github.com/go-chi/chi/v5"

	"Quill/internal/api/handlers/follow"
	"Quill/internal/api/middleware"
	"Quill/internal/core/follows"
	"Quill/internal/core/users"
)

// RegisterFollowRoutes registers the follow/unfollow endpoints
func RegisterFollowRoutes(
	r chi.Router,
	followService follows.Service,
	userService users.Service,
	auth *middleware.SessionAuth,
) {
	handler := follow.NewHandler(followService, userService)

	r.With(auth.RequireAuth).Post("/profile/{username}/follow", handler.HandleFollow)
	r.With(auth.RequireAuth).Post("/profile/{username}/unfollow", handler.HandleUnfollow)
}
