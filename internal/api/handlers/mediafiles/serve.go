package mediafiles

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"Quill/internal/api/handlers"
	"Quill/internal/core/media"
)

// ServeHandler serves uploaded post images by key
type ServeHandler struct {
	store *media.DiskStore
}

// NewServeHandler creates a new media serving handler
func NewServeHandler(store *media.DiskStore) *ServeHandler {
	return &ServeHandler{store: store}
}

// HandleServe handles GET /media/{key}
func (h *ServeHandler) HandleServe(w http.ResponseWriter, r *http.Request) {
	path, err := h.store.Path(chi.URLParam(r, "key"))
	if err != nil {
		handlers.WriteError(w, http.StatusNotFound, "MediaNotFound", "Media not found")
		return
	}

	http.ServeFile(w, r, path)
}
