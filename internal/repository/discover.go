package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"sociagram_22520074/internal/model"
)

// discoverRepository holds the read-only traversal queries behind the two
// rankers. The FOLLOWS/LIKES/SHARED patterns are expressed as joins over the
// edge tables; no graph engine is involved.
type discoverRepository struct {
	db *sqlx.DB
}

func NewDiscoverRepository(db *sqlx.DB) DiscoverRepository {
	return &discoverRepository{db: db}
}

// GetTwoHopCandidates finds users reachable by exactly two FOLLOWS hops from
// the requester (requester -> friend -> candidate), excluding the requester
// and anyone they already follow. mutual_friends counts the distinct
// intermediates per candidate, not the paths.
func (r *discoverRepository) GetTwoHopCandidates(ctx context.Context, username string) ([]model.SuggestionCandidate, error) {
	query := `
		SELECT s.username, s.name, s.avatar, s.categories,
		       COUNT(DISTINCT f1.followee) AS mutual_friends
		FROM follows f1
		JOIN follows f2 ON f2.follower = f1.followee
		JOIN users s ON s.username = f2.followee
		WHERE f1.follower = $1
		  AND f2.followee <> $1
		  AND NOT EXISTS (
			SELECT 1 FROM follows f3
			WHERE f3.follower = $1 AND f3.followee = f2.followee
		  )
		GROUP BY s.username, s.name, s.avatar, s.categories
	`

	var candidates []model.SuggestionCandidate
	err := r.db.SelectContext(ctx, &candidates, query, username)
	if err != nil {
		return nil, fmt.Errorf("get two-hop candidates: %w", err)
	}

	return candidates, nil
}

// GetActivityCounts batch-resolves post and follower counts for the given
// usernames in one round trip (ANY($1) instead of a query per candidate).
func (r *discoverRepository) GetActivityCounts(ctx context.Context, usernames []string) (map[string]model.ActivityCounts, error) {
	if len(usernames) == 0 {
		return map[string]model.ActivityCounts{}, nil
	}

	query := `
		SELECT u.username,
		       (SELECT COUNT(*) FROM posts p WHERE p.author = u.username) AS post_count,
		       (SELECT COUNT(*) FROM follows f WHERE f.followee = u.username) AS follower_count
		FROM users u
		WHERE u.username = ANY($1)
	`

	type row struct {
		Username      string `db:"username"`
		PostCount     int    `db:"post_count"`
		FollowerCount int    `db:"follower_count"`
	}
	var rows []row
	err := r.db.SelectContext(ctx, &rows, query, pq.Array(usernames))
	if err != nil {
		return nil, fmt.Errorf("get activity counts: %w", err)
	}

	counts := make(map[string]model.ActivityCounts, len(rows))
	for _, r := range rows {
		counts[r.Username] = model.ActivityCounts{
			PostCount:     r.PostCount,
			FollowerCount: r.FollowerCount,
		}
	}
	return counts, nil
}

// exploreColumns is the shared projection for the three explore sources:
// post fields, author framing, global like/share counts and the viewer's own
// flags. $1 is always the requesting username.
const exploreColumns = `
	p.id, p.caption, p.image, p.categories,
	u.username AS author, u.name AS author_name, u.avatar AS author_avatar,
	(SELECT COUNT(*) FROM post_likes pl WHERE pl.post_id = p.id) AS likes,
	(SELECT COUNT(*) FROM post_shares ps WHERE ps.post_id = p.id) AS shares,
	EXISTS(SELECT 1 FROM post_likes pl WHERE pl.post_id = p.id AND pl.username = $1) AS already_liked,
	EXISTS(SELECT 1 FROM post_shares ps WHERE ps.post_id = p.id AND ps.username = $1) AS already_shared`

// GetFollowedAuthorsPosts returns every post authored by someone the
// requester follows.
func (r *discoverRepository) GetFollowedAuthorsPosts(ctx context.Context, username string) ([]model.ExplorePost, error) {
	query := `
		SELECT` + exploreColumns + `
		FROM follows f
		JOIN posts p ON p.author = f.followee
		JOIN users u ON u.username = p.author
		WHERE f.follower = $1
	`

	return r.selectExplorePosts(ctx, query, username, "followed authors")
}

// GetLikedByFolloweesPosts returns posts liked by someone the requester
// follows, restricted to posts with a real author that is not the requester.
// Distinct: several followees liking the same post is still one row.
func (r *discoverRepository) GetLikedByFolloweesPosts(ctx context.Context, username string) ([]model.ExplorePost, error) {
	query := `
		SELECT DISTINCT` + exploreColumns + `
		FROM follows f
		JOIN post_likes fl ON fl.username = f.followee
		JOIN posts p ON p.id = fl.post_id
		JOIN users u ON u.username = p.author
		WHERE f.follower = $1
		  AND p.author <> $1
	`

	return r.selectExplorePosts(ctx, query, username, "liked by followees")
}

// GetCategoryMatchedStrangerPosts returns posts by authors the requester
// neither follows nor is, filtered to posts whose category set overlaps the
// requester's (the && array operator). A requester with no categories, or no
// user row at all, matches nothing.
func (r *discoverRepository) GetCategoryMatchedStrangerPosts(ctx context.Context, username string) ([]model.ExplorePost, error) {
	query := `
		SELECT` + exploreColumns + `
		FROM posts p
		JOIN users u ON u.username = p.author
		WHERE p.author <> $1
		  AND NOT EXISTS (
			SELECT 1 FROM follows f
			WHERE f.follower = $1 AND f.followee = p.author
		  )
		  AND p.categories && (SELECT categories FROM users WHERE username = $1)
	`

	return r.selectExplorePosts(ctx, query, username, "category-matched strangers")
}

func (r *discoverRepository) selectExplorePosts(ctx context.Context, query, username, source string) ([]model.ExplorePost, error) {
	var posts []model.ExplorePost
	err := r.db.SelectContext(ctx, &posts, query, username)
	if err != nil {
		return nil, fmt.Errorf("get %s posts: %w", source, err)
	}
	for i := range posts {
		if posts[i].Categories == nil {
			posts[i].Categories = pq.StringArray{}
		}
	}
	return posts, nil
}
