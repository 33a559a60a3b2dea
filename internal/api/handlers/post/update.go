package post

import (
	"fmt"
	"net/http"
	"strings"

	"Quill/internal/api/handlers"
	"Quill/internal/api/middleware"
	"Quill/internal/core/authz"
	"Quill/internal/core/media"
	"Quill/internal/core/posts"
)

// UpdateHandler handles post edits
type UpdateHandler struct {
	service posts.Service
	media   *media.DiskStore
}

// NewUpdateHandler creates a new update handler
func NewUpdateHandler(service posts.Service, mediaStore *media.DiskStore) *UpdateHandler {
	return &UpdateHandler{service: service, media: mediaStore}
}

// HandleUpdate handles POST /posts/{id}/edit (auth required, author only)
// Anyone who is not the author is bounced back to the post detail page
// without an error surface, mirroring the read-only view they came from.
func (h *UpdateHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	actor := middleware.GetActor(r)

	postID, err := PostIDParam(r)
	if err != nil {
		handlers.WriteError(w, http.StatusNotFound, "PostNotFound", "Post not found")
		return
	}

	form, err := parsePostForm(r, h.media)
	if err != nil {
		handlers.WriteError(w, http.StatusBadRequest, "InvalidRequest", err.Error())
		return
	}

	if strings.TrimSpace(form.text) == "" {
		handlers.WriteError(w, http.StatusBadRequest, "InvalidRequest", "text is required")
		return
	}

	req := posts.UpdatePostRequest{
		Text:     &form.text,
		ImageKey: form.imageKey,
	}
	if form.groupID != nil {
		req.GroupID = form.groupID
	} else {
		req.RemoveGroup = true
	}

	detailPath := fmt.Sprintf("/posts/%d", postID)

	if _, err := h.service.Update(r.Context(), postID, actor.ID, req); err != nil {
		if err == authz.ErrNotAuthorized {
			http.Redirect(w, r, detailPath, http.StatusSeeOther)
			return
		}
		handleServiceError(w, err)
		return
	}

	http.Redirect(w, r, detailPath, http.StatusSeeOther)
}
