package post

import (
	"log"
	"net/http"

	"Quill/internal/api/handlers"
	"Quill/internal/core/posts"
)

// handleServiceError maps post service errors to HTTP responses.
// Authorization failures are handled where the target redirect is known,
// not here.
func handleServiceError(w http.ResponseWriter, err error) {
	switch {
	case err == posts.ErrNotFound:
		handlers.WriteError(w, http.StatusNotFound, "PostNotFound", "Post not found")

	case err == posts.ErrGroupNotFound:
		handlers.WriteError(w, http.StatusNotFound, "GroupNotFound", "Group not found")

	case posts.IsValidationError(err):
		handlers.WriteError(w, http.StatusBadRequest, "InvalidRequest", err.Error())

	default:
		log.Printf("Unexpected error in post handler: %v", err)
		handlers.WriteError(w, http.StatusInternalServerError, "InternalServerError",
			"An internal error occurred")
	}
}
