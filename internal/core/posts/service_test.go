package posts

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"Quill/internal/core/authz"
	"Quill/internal/core/groups"
	"Quill/internal/core/users"
)

// MockPostRepository is a mock implementation of Repository
type MockPostRepository struct {
	mock.Mock
}

func (m *MockPostRepository) Create(ctx context.Context, post *Post) (*Post, error) {
	args := m.Called(ctx, post)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Post), args.Error(1)
}

func (m *MockPostRepository) GetByID(ctx context.Context, id int64) (*Post, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Post), args.Error(1)
}

func (m *MockPostRepository) Update(ctx context.Context, post *Post) (*Post, error) {
	args := m.Called(ctx, post)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Post), args.Error(1)
}

func (m *MockPostRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockPostRepository) ListAll(ctx context.Context) ([]*Post, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*Post), args.Error(1)
}

func (m *MockPostRepository) ListByGroupID(ctx context.Context, groupID int64) ([]*Post, error) {
	args := m.Called(ctx, groupID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*Post), args.Error(1)
}

func (m *MockPostRepository) ListByAuthorID(ctx context.Context, authorID int64) ([]*Post, error) {
	args := m.Called(ctx, authorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*Post), args.Error(1)
}

func (m *MockPostRepository) ListByFollowedAuthors(ctx context.Context, userID int64) ([]*Post, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*Post), args.Error(1)
}

// MockGroupRepository is a mock implementation of groups.Repository
type MockGroupRepository struct {
	mock.Mock
}

func (m *MockGroupRepository) Create(ctx context.Context, group *groups.Group) (*groups.Group, error) {
	args := m.Called(ctx, group)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*groups.Group), args.Error(1)
}

func (m *MockGroupRepository) GetByID(ctx context.Context, id int64) (*groups.Group, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*groups.Group), args.Error(1)
}

func (m *MockGroupRepository) GetBySlug(ctx context.Context, slug string) (*groups.Group, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*groups.Group), args.Error(1)
}

func (m *MockGroupRepository) List(ctx context.Context) ([]*groups.Group, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*groups.Group), args.Error(1)
}

func (m *MockGroupRepository) Update(ctx context.Context, group *groups.Group) (*groups.Group, error) {
	args := m.Called(ctx, group)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*groups.Group), args.Error(1)
}

// MockUserRepository is a mock implementation of users.Repository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *users.User) (*users.User, error) {
	args := m.Called(ctx, user)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*users.User), args.Error(1)
}

func (m *MockUserRepository) GetByID(ctx context.Context, id int64) (*users.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*users.User), args.Error(1)
}

func (m *MockUserRepository) GetByUsername(ctx context.Context, username string) (*users.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*users.User), args.Error(1)
}

func (m *MockUserRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// countingInvalidator records cache invalidations
type countingInvalidator struct {
	count int
}

func (c *countingInvalidator) Invalidate() {
	c.count++
}

func newTestService(repo Repository, groupRepo groups.Repository, userRepo users.Repository, inv FeedInvalidator) Service {
	if groupRepo == nil {
		groupRepo = new(MockGroupRepository)
	}
	if userRepo == nil {
		userRepo = new(MockUserRepository)
	}
	if inv == nil {
		inv = &countingInvalidator{}
	}
	return NewPostService(repo, groupRepo, userRepo, inv)
}

func TestCreateInvalidatesFeedCache(t *testing.T) {
	repo := new(MockPostRepository)
	inv := &countingInvalidator{}
	service := newTestService(repo, nil, nil, inv)

	created := &Post{ID: 1, Text: "hello", AuthorID: 5, CreatedAt: time.Now()}
	repo.On("Create", mock.Anything, mock.Anything).Return(created, nil)

	post, err := service.Create(context.Background(), CreatePostRequest{Text: "hello", AuthorID: 5})
	require.NoError(t, err)
	assert.Equal(t, created, post)
	assert.Equal(t, 1, inv.count, "create must invalidate the home feed cache")
}

func TestCreateUnknownGroup(t *testing.T) {
	repo := new(MockPostRepository)
	groupRepo := new(MockGroupRepository)
	inv := &countingInvalidator{}
	service := newTestService(repo, groupRepo, nil, inv)

	groupID := int64(99)
	groupRepo.On("GetByID", mock.Anything, groupID).Return(nil, groups.ErrNotFound)

	_, err := service.Create(context.Background(), CreatePostRequest{Text: "x", AuthorID: 5, GroupID: &groupID})
	assert.ErrorIs(t, err, ErrGroupNotFound)
	assert.Equal(t, 0, inv.count, "failed create must not invalidate the cache")
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestUpdateByNonAuthorIsForbidden(t *testing.T) {
	repo := new(MockPostRepository)
	inv := &countingInvalidator{}
	service := newTestService(repo, nil, nil, inv)

	repo.On("GetByID", mock.Anything, int64(1)).Return(&Post{ID: 1, Text: "original", AuthorID: 5}, nil)

	newText := "hijacked"
	_, err := service.Update(context.Background(), 1, 6, UpdatePostRequest{Text: &newText})

	assert.ErrorIs(t, err, authz.ErrNotAuthorized)
	assert.Equal(t, 0, inv.count)
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestUpdateByAuthor(t *testing.T) {
	repo := new(MockPostRepository)
	inv := &countingInvalidator{}
	service := newTestService(repo, nil, nil, inv)

	stored := &Post{ID: 1, Text: "original", AuthorID: 5}
	repo.On("GetByID", mock.Anything, int64(1)).Return(stored, nil)
	repo.On("Update", mock.Anything, mock.MatchedBy(func(p *Post) bool {
		return p.Text == "edited"
	})).Return(&Post{ID: 1, Text: "edited", AuthorID: 5}, nil)

	newText := "edited"
	updated, err := service.Update(context.Background(), 1, 5, UpdatePostRequest{Text: &newText})
	require.NoError(t, err)
	assert.Equal(t, "edited", updated.Text)
	assert.Equal(t, 1, inv.count)
}

func TestUpdateRemoveGroup(t *testing.T) {
	repo := new(MockPostRepository)
	service := newTestService(repo, nil, nil, nil)

	groupID := int64(3)
	repo.On("GetByID", mock.Anything, int64(1)).Return(&Post{ID: 1, AuthorID: 5, GroupID: &groupID}, nil)
	repo.On("Update", mock.Anything, mock.MatchedBy(func(p *Post) bool {
		return p.GroupID == nil
	})).Return(&Post{ID: 1, AuthorID: 5}, nil)

	updated, err := service.Update(context.Background(), 1, 5, UpdatePostRequest{RemoveGroup: true})
	require.NoError(t, err)
	assert.Nil(t, updated.GroupID)
}

func TestDeleteByNonAuthorIsForbidden(t *testing.T) {
	repo := new(MockPostRepository)
	inv := &countingInvalidator{}
	service := newTestService(repo, nil, nil, inv)

	repo.On("GetByID", mock.Anything, int64(1)).Return(&Post{ID: 1, AuthorID: 5}, nil)

	err := service.Delete(context.Background(), 1, 6)

	assert.ErrorIs(t, err, authz.ErrNotAuthorized)
	assert.Equal(t, 0, inv.count)
	repo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestDeleteByAuthorInvalidatesCache(t *testing.T) {
	repo := new(MockPostRepository)
	inv := &countingInvalidator{}
	service := newTestService(repo, nil, nil, inv)

	repo.On("GetByID", mock.Anything, int64(1)).Return(&Post{ID: 1, AuthorID: 5}, nil)
	repo.On("Delete", mock.Anything, int64(1)).Return(nil)

	require.NoError(t, service.Delete(context.Background(), 1, 5))
	assert.Equal(t, 1, inv.count)
}

func TestDeleteUnknownPost(t *testing.T) {
	repo := new(MockPostRepository)
	service := newTestService(repo, nil, nil, nil)

	repo.On("GetByID", mock.Anything, int64(404)).Return(nil, ErrNotFound)

	err := service.Delete(context.Background(), 404, 5)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestListByGroupUnknownSlug(t *testing.T) {
	groupRepo := new(MockGroupRepository)
	service := newTestService(new(MockPostRepository), groupRepo, nil, nil)

	groupRepo.On("GetBySlug", mock.Anything, "missing").Return(nil, groups.ErrNotFound)

	_, err := service.ListByGroup(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrGroupNotFound)
}

func TestListByAuthorUnknownUsername(t *testing.T) {
	userRepo := new(MockUserRepository)
	service := newTestService(new(MockPostRepository), nil, userRepo, nil)

	userRepo.On("GetByUsername", mock.Anything, "ghost").Return(nil, users.ErrNotFound)

	_, err := service.ListByAuthor(context.Background(), "ghost")
	assert.ErrorIs(t, err, ErrAuthorNotFound)
}

func TestListByGroupResolvesSlugToID(t *testing.T) {
	repo := new(MockPostRepository)
	groupRepo := new(MockGroupRepository)
	service := newTestService(repo, groupRepo, nil, nil)

	groupRepo.On("GetBySlug", mock.Anything, "travel").Return(&groups.Group{ID: 7, Slug: "travel"}, nil)
	repo.On("ListByGroupID", mock.Anything, int64(7)).Return([]*Post{{ID: 1}}, nil)

	listed, err := service.ListByGroup(context.Background(), "travel")
	require.NoError(t, err)
	assert.Len(t, listed, 1)
}
