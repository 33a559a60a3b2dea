package comments

import (
	"context"
	"fmt"

	"Quill/internal/core/posts"
)

type commentService struct {
	repo     Repository
	postRepo posts.Repository
}

// NewCommentService creates a new comment service
func NewCommentService(repo Repository, postRepo posts.Repository) Service {
	return &commentService{repo: repo, postRepo: postRepo}
}

func (s *commentService) Create(ctx context.Context, req CreateCommentRequest) (*Comment, error) {
	if req.Text == "" {
		return nil, NewValidationError("text", "text is required")
	}

	// The comment form lives on the post detail page, so the post should
	// exist; verify anyway so a stale form maps to a clean 404.
	if _, err := s.postRepo.GetByID(ctx, req.PostID); err != nil {
		if err == posts.ErrNotFound {
			return nil, ErrPostNotFound
		}
		return nil, fmt.Errorf("failed to resolve post: %w", err)
	}

	return s.repo.Create(ctx, &Comment{
		Text:     req.Text,
		PostID:   req.PostID,
		AuthorID: req.AuthorID,
	})
}

func (s *commentService) ListByPost(ctx context.Context, postID int64) ([]*Comment, error) {
	return s.repo.ListByPostID(ctx, postID)
}
