package routes

import (
	"github.com/go-chi/chi/v5"

	"Quill/internal/api/handlers/profile"
	"Quill/internal/api/middleware"
	"Quill/internal/core/feeds"
	"Quill/internal/core/follows"
	"Quill/internal/core/users"
)

// RegisterProfileRoutes registers the author profile view
func RegisterProfileRoutes(
	r chi.Router,
	userService users.Service,
	feedService feeds.Service,
	followService follows.Service,
	auth *middleware.SessionAuth,
) {
	handler := profile.NewHandler(userService, feedService, followService)

	// Public, but WithActor lets the page report the viewer's follow state
	r.With(auth.WithActor).Get("/profile/{username}", handler.HandleGetProfile)
}
