package groups

import (
	"context"
	"regexp"
	"strings"
)

// Slugs are lowercase letters, digits and hyphens, matching what the
// router accepts in /group/{slug}/ paths.
var slugPattern = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

type groupService struct {
	repo Repository
}

// NewGroupService creates a new group service
func NewGroupService(repo Repository) Service {
	return &groupService{repo: repo}
}

func (s *groupService) GetBySlug(ctx context.Context, slug string) (*Group, error) {
	return s.repo.GetBySlug(ctx, slug)
}

func (s *groupService) List(ctx context.Context) ([]*Group, error) {
	return s.repo.List(ctx)
}

func (s *groupService) Create(ctx context.Context, req CreateGroupRequest) (*Group, error) {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return nil, NewValidationError("title", "title is required")
	}
	if !slugPattern.MatchString(req.Slug) {
		return nil, NewValidationError("slug", "slug must contain only lowercase letters, digits and hyphens")
	}

	return s.repo.Create(ctx, &Group{
		Title:       title,
		Slug:        req.Slug,
		Description: req.Description,
	})
}

func (s *groupService) Update(ctx context.Context, id int64, req UpdateGroupRequest) (*Group, error) {
	group, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		title := strings.TrimSpace(*req.Title)
		if title == "" {
			return nil, NewValidationError("title", "title is required")
		}
		group.Title = title
	}
	if req.Description != nil {
		group.Description = *req.Description
	}

	return s.repo.Update(ctx, group)
}
