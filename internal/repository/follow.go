package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"sociagram_22520074/internal/model"
)

type followRepository struct {
	db *sqlx.DB
}

func NewFollowRepository(db *sqlx.DB) FollowRepository {
	return &followRepository{db: db}
}

// Create inserts a follow edge if absent. The edge set has no duplicates:
// repeating an existing follow affects zero rows and reports inserted=false.
func (r *followRepository) Create(ctx context.Context, follower, followee string) (bool, error) {
	query := `
		INSERT INTO follows (follower, followee)
		VALUES ($1, $2)
		ON CONFLICT (follower, followee) DO NOTHING
	`
	result, err := r.db.ExecContext(ctx, query, follower, followee)
	if err != nil {
		return false, fmt.Errorf("failed to create follow: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get rows affected: %w", err)
	}

	return rowsAffected > 0, nil
}

// Delete removes a follow edge. Deleting an edge that does not exist leaves
// the graph unchanged and is not an error.
func (r *followRepository) Delete(ctx context.Context, follower, followee string) error {
	query := `DELETE FROM follows WHERE follower = $1 AND followee = $2`
	_, err := r.db.ExecContext(ctx, query, follower, followee)
	if err != nil {
		return fmt.Errorf("failed to delete follow: %w", err)
	}
	return nil
}

func (r *followRepository) Exists(ctx context.Context, follower, followee string) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM follows WHERE follower = $1 AND followee = $2)`
	var exists bool
	err := r.db.GetContext(ctx, &exists, query, follower, followee)
	if err != nil {
		return false, fmt.Errorf("failed to check follow existence: %w", err)
	}
	return exists, nil
}

// GetFollowees returns the usernames the given user follows.
func (r *followRepository) GetFollowees(ctx context.Context, username string) ([]string, error) {
	query := `SELECT followee FROM follows WHERE follower = $1 ORDER BY followee`

	var followees []string
	err := r.db.SelectContext(ctx, &followees, query, username)
	if err != nil {
		return nil, fmt.Errorf("failed to get followees: %w", err)
	}

	return followees, nil
}

// ListEdges returns every follow edge with display names for the admin view.
func (r *followRepository) ListEdges(ctx context.Context) ([]model.FollowEdge, error) {
	query := `
		SELECT a.username AS follower, a.name AS follower_name,
		       b.username AS following, b.name AS following_name
		FROM follows f
		JOIN users a ON a.username = f.follower
		JOIN users b ON b.username = f.followee
		ORDER BY a.username
	`

	var edges []model.FollowEdge
	err := r.db.SelectContext(ctx, &edges, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list follow edges: %w", err)
	}

	return edges, nil
}
