package feed

import (
	"log"
	"net/http"

	"Quill/internal/api/handlers"
	"Quill/internal/core/posts"
)

// handleServiceError maps feed service errors to HTTP responses
func handleServiceError(w http.ResponseWriter, err error) {
	switch {
	case err == posts.ErrGroupNotFound:
		handlers.WriteError(w, http.StatusNotFound, "GroupNotFound", "Group not found")

	case err == posts.ErrAuthorNotFound:
		handlers.WriteError(w, http.StatusNotFound, "AuthorNotFound", "Author not found")

	default:
		log.Printf("Unexpected error in feed handler: %v", err)
		handlers.WriteError(w, http.StatusInternalServerError, "InternalServerError",
			"An internal error occurred")
	}
}
