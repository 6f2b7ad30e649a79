package repository

import (
	"context"

	"sociagram_22520074/internal/model"
)

type UserRepository interface {
	Create(ctx context.Context, user *model.User) error
	GetByUsername(ctx context.Context, username string) (*model.User, error)
	Exists(ctx context.Context, username string) (bool, error)
	List(ctx context.Context) ([]model.User, error)
	Search(ctx context.Context, query string, limit int) ([]model.UserSummary, error)
	// GetCategories returns the user's interest tags, or ErrUserNotFound.
	GetCategories(ctx context.Context, username string) ([]string, error)
	// GetProfile returns the user with counts derived from edge cardinality.
	GetProfile(ctx context.Context, username string) (*model.Profile, error)
	// Delete detaches all relationships and removes the node.
	Delete(ctx context.Context, username string) error
}

type FollowRepository interface {
	// Create inserts a follow edge if absent. Returns whether a new edge was
	// actually inserted; repeats are not an error.
	Create(ctx context.Context, follower, followee string) (bool, error)
	// Delete removes a follow edge if present; removing a missing edge is a no-op.
	Delete(ctx context.Context, follower, followee string) error
	Exists(ctx context.Context, follower, followee string) (bool, error)
	GetFollowees(ctx context.Context, username string) ([]string, error)
	// ListEdges returns every follow edge with both display names (admin view).
	ListEdges(ctx context.Context) ([]model.FollowEdge, error)
}

type PostRepository interface {
	// Create inserts a post. Exactly one of post.Author / post.AuthorLabel is set.
	Create(ctx context.Context, post *model.Post) error
	Exists(ctx context.Context, postID int64) (bool, error)
	// GetAuthor returns the authoring username, or nil for an orphaned post.
	GetAuthor(ctx context.Context, postID int64) (*string, error)
	// GetByUser returns a user's posts newest-first with global like/share counts.
	GetByUser(ctx context.Context, username string) ([]model.Post, error)
	// Like/Share insert an edge if absent and report whether one was inserted.
	// Unlike/Unshare delete if present; removing a missing edge is a no-op.
	Like(ctx context.Context, postID int64, username string) (bool, error)
	Unlike(ctx context.Context, postID int64, username string) error
	Share(ctx context.Context, postID int64, username string) (bool, error)
	Unshare(ctx context.Context, postID int64, username string) error
	ListAll(ctx context.Context) ([]model.AdminPost, error)
	ListLikeEdges(ctx context.Context) ([]model.LikeEdge, error)
	Delete(ctx context.Context, postID int64) error
}

// DiscoverRepository holds the graph traversal queries the two rankers read
// from: the two-hop suggestion pattern and the three explore candidate
// sources. Each source row carries the post, its author framing, global
// like/share counts and the requesting viewer's own flags; priority and
// category matching are applied by the services on top.
type DiscoverRepository interface {
	// GetTwoHopCandidates returns users exactly two FOLLOWS hops from the
	// requester, excluding the requester and anyone they already follow,
	// with the distinct intermediate-friend count per candidate.
	GetTwoHopCandidates(ctx context.Context, username string) ([]model.SuggestionCandidate, error)
	// GetActivityCounts batch-resolves post/follower counts for candidates.
	GetActivityCounts(ctx context.Context, usernames []string) (map[string]model.ActivityCounts, error)

	GetFollowedAuthorsPosts(ctx context.Context, username string) ([]model.ExplorePost, error)
	GetLikedByFolloweesPosts(ctx context.Context, username string) ([]model.ExplorePost, error)
	GetCategoryMatchedStrangerPosts(ctx context.Context, username string) ([]model.ExplorePost, error)
}

type NotificationRepository interface {
	Create(ctx context.Context, recipient, actor, notifType string, postID *int64) error
	// GetRecent returns the newest notifications with actor names joined in,
	// plus the recipient's total unread count.
	GetRecent(ctx context.Context, recipient string, limit int) ([]model.Notification, int, error)
	MarkAllAsRead(ctx context.Context, recipient string) error
}
