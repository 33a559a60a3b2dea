package comment

import (
	"fmt"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"Quill/internal/api/handlers"
	"Quill/internal/api/middleware"
	"Quill/internal/core/comments"
)

// CreateHandler handles adding comments to posts
type CreateHandler struct {
	service comments.Service
}

// NewCreateHandler creates a new comment handler
func NewCreateHandler(service comments.Service) *CreateHandler {
	return &CreateHandler{service: service}
}

// HandleCreate handles POST /posts/{id}/comment (auth required)
// On success redirects back to the post detail page the form lives on.
func (h *CreateHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	actor := middleware.GetActor(r)

	postID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		handlers.WriteError(w, http.StatusNotFound, "PostNotFound", "Post not found")
		return
	}

	if err := r.ParseForm(); err != nil {
		handlers.WriteError(w, http.StatusBadRequest, "InvalidRequest", "Invalid form")
		return
	}

	text := strings.TrimSpace(r.PostFormValue("text"))
	if text == "" {
		handlers.WriteError(w, http.StatusBadRequest, "InvalidRequest", "text is required")
		return
	}

	_, err = h.service.Create(r.Context(), comments.CreateCommentRequest{
		Text:     text,
		PostID:   postID,
		AuthorID: actor.ID,
	})
	if err != nil {
		handleServiceError(w, err)
		return
	}

	http.Redirect(w, r, fmt.Sprintf("/posts/%d", postID), http.StatusSeeOther)
}

// handleServiceError maps comment service errors to HTTP responses
func handleServiceError(w http.ResponseWriter, err error) {
	switch {
	case err == comments.ErrPostNotFound:
		handlers.WriteError(w, http.StatusNotFound, "PostNotFound", "Post not found")

	case comments.IsValidationError(err):
		handlers.WriteError(w, http.StatusBadRequest, "InvalidRequest", err.Error())

	default:
		log.Printf("Unexpected error in comment handler: %v", err)
		handlers.WriteError(w, http.StatusInternalServerError, "InternalServerError",
			"An internal error occurred")
	}
}
