package routes

import (
	"github.com/go-chi/chi/v5"

	"Quill/internal/api/handlers/mediafiles"
	"Quill/internal/core/media"
)

// RegisterMediaRoutes registers serving of uploaded post images
func RegisterMediaRoutes(r chi.Router, store *media.DiskStore) {
	serveHandler := mediafiles.NewServeHandler(store)

	r.Get("/media/{key}", serveHandler.HandleServe)
}
