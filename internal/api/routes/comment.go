package routes

import (
	"github.com/go-chi/chi/v5"

	"Quill/internal/api/handlers/comment"
	"Quill/internal/api/middleware"
	"Quill/internal/core/comments"
)

// RegisterCommentRoutes registers the comment endpoint
func RegisterCommentRoutes(r chi.Router, service comments.Service, auth *middleware.SessionAuth) {
	createHandler := comment.NewCreateHandler(service)

	r.With(auth.RequireAuth).Post("/posts/{id}/comment", createHandler.HandleCreate)
}
