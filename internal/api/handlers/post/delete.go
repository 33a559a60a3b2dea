package post

import (
	"fmt"
	"net/http"

	"Quill/internal/api/handlers"
	"Quill/internal/api/middleware"
	"Quill/internal/core/authz"
	"Quill/internal/core/posts"
)

// DeleteHandler handles post deletion
type DeleteHandler struct {
	service posts.Service
}

// NewDeleteHandler creates a new delete handler
func NewDeleteHandler(service posts.Service) *DeleteHandler {
	return &DeleteHandler{service: service}
}

// HandleDelete handles POST /posts/{id}/delete (auth required, author only)
// Non-authors are redirected to the post detail page; the post and its
// comments are only removed for the author.
func (h *DeleteHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	actor := middleware.GetActor(r)

	postID, err := PostIDParam(r)
	if err != nil {
		handlers.WriteError(w, http.StatusNotFound, "PostNotFound", "Post not found")
		return
	}

	if err := h.service.Delete(r.Context(), postID, actor.ID); err != nil {
		if err == authz.ErrNotAuthorized {
			http.Redirect(w, r, fmt.Sprintf("/posts/%d", postID), http.StatusSeeOther)
			return
		}
		handleServiceError(w, err)
		return
	}

	http.Redirect(w, r, "/", http.StatusSeeOther)
}
