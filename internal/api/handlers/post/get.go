package post

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"Quill/internal/api/handlers"
	"Quill/internal/core/comments"
	"Quill/internal/core/posts"
)

// DetailHandler serves a single post with its comments
type DetailHandler struct {
	postService    posts.Service
	commentService comments.Service
}

// NewDetailHandler creates a new post detail handler
func NewDetailHandler(postService posts.Service, commentService comments.Service) *DetailHandler {
	return &DetailHandler{
		postService:    postService,
		commentService: commentService,
	}
}

// HandleGet handles GET /posts/{id}
func (h *DetailHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	postID, err := PostIDParam(r)
	if err != nil {
		handlers.WriteError(w, http.StatusNotFound, "PostNotFound", "Post not found")
		return
	}

	post, err := h.postService.Get(r.Context(), postID)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	postComments, err := h.commentService.ListByPost(r.Context(), postID)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	handlers.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"post":     post,
		"comments": postComments,
	})
}

// PostIDParam parses the {id} path parameter
func PostIDParam(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
}
