package feeds

import (
	"context"
	"fmt"

	"Quill/internal/core/groups"
	"Quill/internal/core/posts"
)

type feedService struct {
	postService posts.Service
	groupRepo   groups.Repository
	cache       *HomeFeedCache
	pageSize    int
}

// NewFeedService creates a new feed assembly service. pageSize applies
// to every feed view and comes from process configuration.
func NewFeedService(postService posts.Service, groupRepo groups.Repository, cache *HomeFeedCache, pageSize int) Service {
	return &feedService{
		postService: postService,
		groupRepo:   groupRepo,
		cache:       cache,
		pageSize:    pageSize,
	}
}

func (s *feedService) Home(ctx context.Context, page int) (*PostFeed, error) {
	feed, ok := s.cache.Get()
	if !ok {
		var err error
		feed, err = s.postService.ListAll(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to assemble home feed: %w", err)
		}
		s.cache.Set(feed)
	}

	result := Paginate(feed, s.pageSize, page)
	return &result, nil
}

func (s *feedService) Group(ctx context.Context, slug string, page int) (*GroupFeed, error) {
	group, err := s.groupRepo.GetBySlug(ctx, slug)
	if err != nil {
		if err == groups.ErrNotFound {
			return nil, posts.ErrGroupNotFound
		}
		return nil, fmt.Errorf("failed to resolve group: %w", err)
	}

	feed, err := s.postService.ListByGroup(ctx, slug)
	if err != nil {
		return nil, err
	}

	return &GroupFeed{
		Group: group,
		Page:  Paginate(feed, s.pageSize, page),
	}, nil
}

func (s *feedService) Author(ctx context.Context, username string, page int) (*PostFeed, error) {
	feed, err := s.postService.ListByAuthor(ctx, username)
	if err != nil {
		return nil, err
	}

	result := Paginate(feed, s.pageSize, page)
	return &result, nil
}

func (s *feedService) Following(ctx context.Context, userID int64, page int) (*PostFeed, error) {
	feed, err := s.postService.ListByFollowedAuthors(ctx, userID)
	if err != nil {
		return nil, err
	}

	result := Paginate(feed, s.pageSize, page)
	return &result, nil
}
