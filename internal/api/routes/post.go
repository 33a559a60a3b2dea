package routes

import (
	"github.com/go-chi/chi/v5"

	"Quill/internal/api/handlers/post"
	"Quill/internal/api/middleware"
	"Quill/internal/core/comments"
	"Quill/internal/core/media"
	"Quill/internal/core/posts"
)

// RegisterPostRoutes registers post detail and the mutating post endpoints
func RegisterPostRoutes(
	r chi.Router,
	postService posts.Service,
	commentService comments.Service,
	mediaStore *media.DiskStore,
	auth *middleware.SessionAuth,
) {
	detailHandler := post.NewDetailHandler(postService, commentService)
	createHandler := post.NewCreateHandler(postService, mediaStore)
	updateHandler := post.NewUpdateHandler(postService, mediaStore)
	deleteHandler := post.NewDeleteHandler(postService)

	r.Get("/posts/{id}", detailHandler.HandleGet)

	// Mutations require a session; only authors get past the service's
	// authorization check on edit and delete
	r.With(auth.RequireAuth).Post("/create", createHandler.HandleCreate)
	r.With(auth.RequireAuth).Post("/posts/{id}/edit", updateHandler.HandleUpdate)
	r.With(auth.RequireAuth).Post("/posts/{id}/delete", deleteHandler.HandleDelete)
}
