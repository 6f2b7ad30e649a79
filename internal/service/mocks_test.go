package service

import (
	"context"

	"sociagram_22520074/internal/model"
	"sociagram_22520074/internal/queue"
)

// =============================================================================
// MOCK REPOSITORIES
// =============================================================================
//
// In unit tests, we don't want to hit a real database. Instead, we create
// mocks that implement the same interfaces but return controlled responses.
// Because the services depend on the repository INTERFACES (not the concrete
// implementations), we can swap these in. Each test sets only the function
// fields it needs; unset fields return zero-value defaults.

type mockUserRepository struct {
	createFn        func(ctx context.Context, user *model.User) error
	getByUsernameFn func(ctx context.Context, username string) (*model.User, error)
	existsFn        func(ctx context.Context, username string) (bool, error)
	listFn          func(ctx context.Context) ([]model.User, error)
	searchFn        func(ctx context.Context, query string, limit int) ([]model.UserSummary, error)
	getCategoriesFn func(ctx context.Context, username string) ([]string, error)
	getProfileFn    func(ctx context.Context, username string) (*model.Profile, error)
	deleteFn        func(ctx context.Context, username string) error

	createCalls []*model.User
}

func (m *mockUserRepository) Create(ctx context.Context, user *model.User) error {
	m.createCalls = append(m.createCalls, user)
	if m.createFn != nil {
		return m.createFn(ctx, user)
	}
	return nil
}

func (m *mockUserRepository) GetByUsername(ctx context.Context, username string) (*model.User, error) {
	if m.getByUsernameFn != nil {
		return m.getByUsernameFn(ctx, username)
	}
	return nil, model.ErrUserNotFound
}

func (m *mockUserRepository) Exists(ctx context.Context, username string) (bool, error) {
	if m.existsFn != nil {
		return m.existsFn(ctx, username)
	}
	return false, nil
}

func (m *mockUserRepository) List(ctx context.Context) ([]model.User, error) {
	if m.listFn != nil {
		return m.listFn(ctx)
	}
	return nil, nil
}

func (m *mockUserRepository) Search(ctx context.Context, query string, limit int) ([]model.UserSummary, error) {
	if m.searchFn != nil {
		return m.searchFn(ctx, query, limit)
	}
	return nil, nil
}

func (m *mockUserRepository) GetCategories(ctx context.Context, username string) ([]string, error) {
	if m.getCategoriesFn != nil {
		return m.getCategoriesFn(ctx, username)
	}
	return nil, model.ErrUserNotFound
}

func (m *mockUserRepository) GetProfile(ctx context.Context, username string) (*model.Profile, error) {
	if m.getProfileFn != nil {
		return m.getProfileFn(ctx, username)
	}
	return nil, model.ErrUserNotFound
}

func (m *mockUserRepository) Delete(ctx context.Context, username string) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, username)
	}
	return nil
}

type mockFollowRepository struct {
	createFn       func(ctx context.Context, follower, followee string) (bool, error)
	deleteFn       func(ctx context.Context, follower, followee string) error
	existsFn       func(ctx context.Context, follower, followee string) (bool, error)
	getFolloweesFn func(ctx context.Context, username string) ([]string, error)
	listEdgesFn    func(ctx context.Context) ([]model.FollowEdge, error)
}

func (m *mockFollowRepository) Create(ctx context.Context, follower, followee string) (bool, error) {
	if m.createFn != nil {
		return m.createFn(ctx, follower, followee)
	}
	return true, nil
}

func (m *mockFollowRepository) Delete(ctx context.Context, follower, followee string) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, follower, followee)
	}
	return nil
}

func (m *mockFollowRepository) Exists(ctx context.Context, follower, followee string) (bool, error) {
	if m.existsFn != nil {
		return m.existsFn(ctx, follower, followee)
	}
	return false, nil
}

func (m *mockFollowRepository) GetFollowees(ctx context.Context, username string) ([]string, error) {
	if m.getFolloweesFn != nil {
		return m.getFolloweesFn(ctx, username)
	}
	return nil, nil
}

func (m *mockFollowRepository) ListEdges(ctx context.Context) ([]model.FollowEdge, error) {
	if m.listEdgesFn != nil {
		return m.listEdgesFn(ctx)
	}
	return nil, nil
}

type mockPostRepository struct {
	createFn        func(ctx context.Context, post *model.Post) error
	existsFn        func(ctx context.Context, postID int64) (bool, error)
	getAuthorFn     func(ctx context.Context, postID int64) (*string, error)
	getByUserFn     func(ctx context.Context, username string) ([]model.Post, error)
	likeFn          func(ctx context.Context, postID int64, username string) (bool, error)
	unlikeFn        func(ctx context.Context, postID int64, username string) error
	shareFn         func(ctx context.Context, postID int64, username string) (bool, error)
	unshareFn       func(ctx context.Context, postID int64, username string) error
	listAllFn       func(ctx context.Context) ([]model.AdminPost, error)
	listLikeEdgesFn func(ctx context.Context) ([]model.LikeEdge, error)
	deleteFn        func(ctx context.Context, postID int64) error
}

func (m *mockPostRepository) Create(ctx context.Context, post *model.Post) error {
	if m.createFn != nil {
		return m.createFn(ctx, post)
	}
	return nil
}

func (m *mockPostRepository) Exists(ctx context.Context, postID int64) (bool, error) {
	if m.existsFn != nil {
		return m.existsFn(ctx, postID)
	}
	return false, nil
}

func (m *mockPostRepository) GetAuthor(ctx context.Context, postID int64) (*string, error) {
	if m.getAuthorFn != nil {
		return m.getAuthorFn(ctx, postID)
	}
	return nil, model.ErrPostNotFound
}

func (m *mockPostRepository) GetByUser(ctx context.Context, username string) ([]model.Post, error) {
	if m.getByUserFn != nil {
		return m.getByUserFn(ctx, username)
	}
	return nil, nil
}

func (m *mockPostRepository) Like(ctx context.Context, postID int64, username string) (bool, error) {
	if m.likeFn != nil {
		return m.likeFn(ctx, postID, username)
	}
	return true, nil
}

func (m *mockPostRepository) Unlike(ctx context.Context, postID int64, username string) error {
	if m.unlikeFn != nil {
		return m.unlikeFn(ctx, postID, username)
	}
	return nil
}

func (m *mockPostRepository) Share(ctx context.Context, postID int64, username string) (bool, error) {
	if m.shareFn != nil {
		return m.shareFn(ctx, postID, username)
	}
	return true, nil
}

func (m *mockPostRepository) Unshare(ctx context.Context, postID int64, username string) error {
	if m.unshareFn != nil {
		return m.unshareFn(ctx, postID, username)
	}
	return nil
}

func (m *mockPostRepository) ListAll(ctx context.Context) ([]model.AdminPost, error) {
	if m.listAllFn != nil {
		return m.listAllFn(ctx)
	}
	return nil, nil
}

func (m *mockPostRepository) ListLikeEdges(ctx context.Context) ([]model.LikeEdge, error) {
	if m.listLikeEdgesFn != nil {
		return m.listLikeEdgesFn(ctx)
	}
	return nil, nil
}

func (m *mockPostRepository) Delete(ctx context.Context, postID int64) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, postID)
	}
	return nil
}

type mockDiscoverRepository struct {
	getTwoHopCandidatesFn             func(ctx context.Context, username string) ([]model.SuggestionCandidate, error)
	getActivityCountsFn               func(ctx context.Context, usernames []string) (map[string]model.ActivityCounts, error)
	getFollowedAuthorsPostsFn         func(ctx context.Context, username string) ([]model.ExplorePost, error)
	getLikedByFolloweesPostsFn        func(ctx context.Context, username string) ([]model.ExplorePost, error)
	getCategoryMatchedStrangerPostsFn func(ctx context.Context, username string) ([]model.ExplorePost, error)
}

func (m *mockDiscoverRepository) GetTwoHopCandidates(ctx context.Context, username string) ([]model.SuggestionCandidate, error) {
	if m.getTwoHopCandidatesFn != nil {
		return m.getTwoHopCandidatesFn(ctx, username)
	}
	return nil, nil
}

func (m *mockDiscoverRepository) GetActivityCounts(ctx context.Context, usernames []string) (map[string]model.ActivityCounts, error) {
	if m.getActivityCountsFn != nil {
		return m.getActivityCountsFn(ctx, usernames)
	}
	return map[string]model.ActivityCounts{}, nil
}

func (m *mockDiscoverRepository) GetFollowedAuthorsPosts(ctx context.Context, username string) ([]model.ExplorePost, error) {
	if m.getFollowedAuthorsPostsFn != nil {
		return m.getFollowedAuthorsPostsFn(ctx, username)
	}
	return nil, nil
}

func (m *mockDiscoverRepository) GetLikedByFolloweesPosts(ctx context.Context, username string) ([]model.ExplorePost, error) {
	if m.getLikedByFolloweesPostsFn != nil {
		return m.getLikedByFolloweesPostsFn(ctx, username)
	}
	return nil, nil
}

func (m *mockDiscoverRepository) GetCategoryMatchedStrangerPosts(ctx context.Context, username string) ([]model.ExplorePost, error) {
	if m.getCategoryMatchedStrangerPostsFn != nil {
		return m.getCategoryMatchedStrangerPostsFn(ctx, username)
	}
	return nil, nil
}

// mockPublisher records published events so tests can assert on the
// notification side effects of the mutators.
type mockPublisher struct {
	publishFn func(ctx context.Context, stream string, event queue.InteractionEvent) (string, error)

	published []queue.InteractionEvent
}

func (m *mockPublisher) Publish(ctx context.Context, stream string, event queue.InteractionEvent) (string, error) {
	m.published = append(m.published, event)
	if m.publishFn != nil {
		return m.publishFn(ctx, stream, event)
	}
	return "1-0", nil
}
