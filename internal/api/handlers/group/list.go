package group

import (
	"log"
	"net/http"

	"Quill/internal/api/handlers"
	"Quill/internal/core/groups"
)

// ListHandler serves the group directory
type ListHandler struct {
	service groups.Service
}

// NewListHandler creates a new group list handler
func NewListHandler(service groups.Service) *ListHandler {
	return &ListHandler{service: service}
}

// HandleList handles GET /groups
func (h *ListHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	all, err := h.service.List(r.Context())
	if err != nil {
		log.Printf("Unexpected error in group handler: %v", err)
		handlers.WriteError(w, http.StatusInternalServerError, "InternalServerError",
			"An internal error occurred")
		return
	}

	handlers.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"groups": all,
	})
}
