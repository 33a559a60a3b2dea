package routes

import (
	"github.com/go-chi/chi/v5"

	"Quill/internal/api/handlers/feed"
	"Quill/internal/api/middleware"
	"Quill/internal/core/feeds"
)

// RegisterFeedRoutes registers the feed views
func RegisterFeedRoutes(r chi.Router, service feeds.Service, auth *middleware.SessionAuth) {
	homeHandler := feed.NewHomeHandler(service)
	groupHandler := feed.NewGroupHandler(service)
	followingHandler := feed.NewFollowingHandler(service)

	// Public feeds
	r.Get("/", homeHandler.HandleHome)
	r.Get("/group/{slug}", groupHandler.HandleGroup)

	// The follow feed only exists for logged-in users
	r.With(auth.RequireAuth).Get("/follow", followingHandler.HandleFollowing)
}
