package follows

import (
	"context"

	"Quill/internal/core/authz"
)

type followService struct {
	repo Repository
}

// NewFollowService creates a new follow graph service
func NewFollowService(repo Repository) Service {
	return &followService{repo: repo}
}

func (s *followService) Follow(ctx context.Context, userID, authorID int64) error {
	if userID == authorID {
		return authz.ErrSelfFollow
	}
	return s.repo.Create(ctx, userID, authorID)
}

func (s *followService) Unfollow(ctx context.Context, userID, authorID int64) error {
	if userID == authorID {
		return authz.ErrSelfFollow
	}
	return s.repo.Delete(ctx, userID, authorID)
}

func (s *followService) IsFollowing(ctx context.Context, userID, authorID int64) (bool, error) {
	return s.repo.Exists(ctx, userID, authorID)
}

func (s *followService) FollowersOf(ctx context.Context, authorID int64) ([]int64, error) {
	return s.repo.ListFollowers(ctx, authorID)
}

func (s *followService) FollowingOf(ctx context.Context, userID int64) ([]int64, error) {
	return s.repo.ListFollowing(ctx, userID)
}

func (s *followService) FollowerCount(ctx context.Context, authorID int64) (int, error) {
	return s.repo.CountFollowers(ctx, authorID)
}

func (s *followService) FollowingCount(ctx context.Context, userID int64) (int, error) {
	return s.repo.CountFollowing(ctx, userID)
}
