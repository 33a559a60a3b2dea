package post

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"Quill/internal/api/handlers"
	"Quill/internal/api/middleware"
	"Quill/internal/core/media"
	"Quill/internal/core/posts"
)

// Uploaded images plus form fields; generous but bounded
const maxUploadBytes = 10 << 20

// CreateHandler handles post creation
type CreateHandler struct {
	service posts.Service
	media   *media.DiskStore
}

// NewCreateHandler creates a new create handler
func NewCreateHandler(service posts.Service, mediaStore *media.DiskStore) *CreateHandler {
	return &CreateHandler{service: service, media: mediaStore}
}

// HandleCreate handles POST /create (auth required)
// Accepts a form with fields text, group (optional group id) and image
// (optional file). On success redirects to the author's profile, the
// original flow after publishing.
func (h *CreateHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	actor := middleware.GetActor(r)

	form, err := parsePostForm(r, h.media)
	if err != nil {
		handlers.WriteError(w, http.StatusBadRequest, "InvalidRequest", err.Error())
		return
	}

	// Form-level validation: the service itself accepts any text
	if strings.TrimSpace(form.text) == "" {
		handlers.WriteError(w, http.StatusBadRequest, "InvalidRequest", "text is required")
		return
	}

	post, err := h.service.Create(r.Context(), posts.CreatePostRequest{
		Text:     form.text,
		GroupID:  form.groupID,
		ImageKey: form.imageKey,
		AuthorID: actor.ID,
	})
	if err != nil {
		handleServiceError(w, err)
		return
	}

	http.Redirect(w, r, "/profile/"+post.AuthorUsername, http.StatusSeeOther)
}

type postForm struct {
	text     string
	groupID  *int64
	imageKey *string
}

// parsePostForm reads the shared create/edit form. Multipart requests
// may carry an image file, which is stored before the post is written.
func parsePostForm(r *http.Request, mediaStore *media.DiskStore) (*postForm, error) {
	r.Body = http.MaxBytesReader(nil, r.Body, maxUploadBytes)

	form := &postForm{}

	contentType := r.Header.Get("Content-Type")
	if strings.HasPrefix(contentType, "multipart/form-data") {
		if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
			return nil, fmt.Errorf("invalid form: %w", err)
		}

		file, header, err := r.FormFile("image")
		if err == nil {
			defer file.Close()
			key, saveErr := mediaStore.Save(header.Filename, file)
			if saveErr != nil {
				return nil, fmt.Errorf("failed to store image: %w", saveErr)
			}
			form.imageKey = &key
		} else if err != http.ErrMissingFile {
			return nil, fmt.Errorf("invalid image upload: %w", err)
		}
	} else {
		if err := r.ParseForm(); err != nil {
			return nil, fmt.Errorf("invalid form: %w", err)
		}
	}

	form.text = r.PostFormValue("text")

	if rawGroup := r.PostFormValue("group"); rawGroup != "" {
		groupID, err := strconv.ParseInt(rawGroup, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid group id %q", rawGroup)
		}
		form.groupID = &groupID
	}

	return form, nil
}
