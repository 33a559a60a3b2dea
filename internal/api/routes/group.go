package routes

import (
	"github.com/go-chi/chi/v5"

	"Quill/internal/api/handlers/group"
	"Quill/internal/core/groups"
)

// RegisterGroupRoutes registers the group directory
func RegisterGroupRoutes(r chi.Router, service groups.Service) {
	listHandler := group.NewListHandler(service)

	r.Get("/groups", listHandler.HandleList)
}
