package posts

import (
	"context"
	"fmt"

	"Quill/internal/core/authz"
	"Quill/internal/core/groups"
	"Quill/internal/core/users"
)

type postService struct {
	repo        Repository
	groupRepo   groups.Repository
	userRepo    users.Repository
	invalidator FeedInvalidator
}

// NewPostService creates a new post service. The invalidator is called
// after any write that changes what the home feed shows.
func NewPostService(repo Repository, groupRepo groups.Repository, userRepo users.Repository, invalidator FeedInvalidator) Service {
	return &postService{
		repo:        repo,
		groupRepo:   groupRepo,
		userRepo:    userRepo,
		invalidator: invalidator,
	}
}

func (s *postService) ListAll(ctx context.Context) ([]*Post, error) {
	return s.repo.ListAll(ctx)
}

func (s *postService) ListByGroup(ctx context.Context, slug string) ([]*Post, error) {
	group, err := s.groupRepo.GetBySlug(ctx, slug)
	if err != nil {
		if err == groups.ErrNotFound {
			return nil, ErrGroupNotFound
		}
		return nil, fmt.Errorf("failed to resolve group slug: %w", err)
	}

	return s.repo.ListByGroupID(ctx, group.ID)
}

func (s *postService) ListByAuthor(ctx context.Context, username string) ([]*Post, error) {
	author, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		if err == users.ErrNotFound {
			return nil, ErrAuthorNotFound
		}
		return nil, fmt.Errorf("failed to resolve author username: %w", err)
	}

	return s.repo.ListByAuthorID(ctx, author.ID)
}

func (s *postService) ListByFollowedAuthors(ctx context.Context, userID int64) ([]*Post, error) {
	return s.repo.ListByFollowedAuthors(ctx, userID)
}

func (s *postService) Get(ctx context.Context, id int64) (*Post, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *postService) Create(ctx context.Context, req CreatePostRequest) (*Post, error) {
	if req.GroupID != nil {
		if _, err := s.groupRepo.GetByID(ctx, *req.GroupID); err != nil {
			if err == groups.ErrNotFound {
				return nil, ErrGroupNotFound
			}
			return nil, fmt.Errorf("failed to resolve group: %w", err)
		}
	}

	post, err := s.repo.Create(ctx, &Post{
		Text:     req.Text,
		AuthorID: req.AuthorID,
		GroupID:  req.GroupID,
		ImageKey: req.ImageKey,
	})
	if err != nil {
		return nil, err
	}

	// Conservative: every create changes the global feed
	s.invalidator.Invalidate()

	return post, nil
}

func (s *postService) Update(ctx context.Context, postID, actorID int64, req UpdatePostRequest) (*Post, error) {
	post, err := s.repo.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}

	if err := authz.CanEditOrDelete(authz.User(actorID), post.AuthorID); err != nil {
		return nil, err
	}

	if req.Text != nil {
		post.Text = *req.Text
	}
	if req.RemoveGroup {
		post.GroupID = nil
	} else if req.GroupID != nil {
		if _, err := s.groupRepo.GetByID(ctx, *req.GroupID); err != nil {
			if err == groups.ErrNotFound {
				return nil, ErrGroupNotFound
			}
			return nil, fmt.Errorf("failed to resolve group: %w", err)
		}
		post.GroupID = req.GroupID
	}
	if req.ImageKey != nil {
		post.ImageKey = req.ImageKey
	}

	updated, err := s.repo.Update(ctx, post)
	if err != nil {
		return nil, err
	}

	s.invalidator.Invalidate()

	return updated, nil
}

func (s *postService) Delete(ctx context.Context, postID, actorID int64) error {
	post, err := s.repo.GetByID(ctx, postID)
	if err != nil {
		return err
	}

	if err := authz.CanEditOrDelete(authz.User(actorID), post.AuthorID); err != nil {
		return err
	}

	// Hard delete; comments go with the post via ON DELETE CASCADE
	if err := s.repo.Delete(ctx, postID); err != nil {
		return err
	}

	s.invalidator.Invalidate()

	return nil
}
