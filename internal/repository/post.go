package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"sociagram_22520074/internal/model"
)

type postRepository struct {
	db *sqlx.DB
}

func NewPostRepository(db *sqlx.DB) PostRepository {
	return &postRepository{db: db}
}

// Create inserts a post. The caller sets either Author (attributed post) or
// AuthorLabel (orphan ingested without an authoring user).
func (r *postRepository) Create(ctx context.Context, post *model.Post) error {
	query := `
		INSERT INTO posts (id, author, author_label, caption, image, categories, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW())
		RETURNING created_at
	`
	row := r.db.QueryRowxContext(ctx, query,
		post.ID,
		post.Author,
		post.AuthorLabel,
		post.Caption,
		post.Image,
		pq.Array(post.Categories),
	)

	if err := row.Scan(&post.CreatedAt); err != nil {
		return fmt.Errorf("failed to insert post: %w", err)
	}

	return nil
}

// Exists checks if a post exists.
func (r *postRepository) Exists(ctx context.Context, postID int64) (bool, error) {
	var exists bool
	err := r.db.GetContext(ctx, &exists, `SELECT EXISTS(SELECT 1 FROM posts WHERE id = $1)`, postID)
	if err != nil {
		return false, fmt.Errorf("check post exists: %w", err)
	}
	return exists, nil
}

// GetAuthor returns the authoring username, or nil for an orphaned post.
func (r *postRepository) GetAuthor(ctx context.Context, postID int64) (*string, error) {
	var author *string
	err := r.db.GetContext(ctx, &author, `SELECT author FROM posts WHERE id = $1`, postID)
	if err == sql.ErrNoRows {
		return nil, model.ErrPostNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get post author: %w", err)
	}
	return author, nil
}

// GetByUser returns a user's posts newest-first. Like/share counts are the
// cardinality of the incoming edge sets, computed here rather than stored.
func (r *postRepository) GetByUser(ctx context.Context, username string) ([]model.Post, error) {
	query := `
		SELECT p.id, p.caption, p.image, p.categories,
		       (SELECT COUNT(*) FROM post_likes pl WHERE pl.post_id = p.id) AS likes,
		       (SELECT COUNT(*) FROM post_shares ps WHERE ps.post_id = p.id) AS shares
		FROM posts p
		WHERE p.author = $1
		ORDER BY p.id DESC
	`

	var posts []model.Post
	err := r.db.SelectContext(ctx, &posts, query, username)
	if err != nil {
		return nil, fmt.Errorf("get posts by user: %w", err)
	}
	for i := range posts {
		if posts[i].Categories == nil {
			posts[i].Categories = pq.StringArray{}
		}
	}

	return posts, nil
}

// Like inserts a like edge if absent and reports whether one was inserted.
func (r *postRepository) Like(ctx context.Context, postID int64, username string) (bool, error) {
	query := `
		INSERT INTO post_likes (post_id, username)
		VALUES ($1, $2)
		ON CONFLICT (post_id, username) DO NOTHING
	`
	result, err := r.db.ExecContext(ctx, query, postID, username)
	if err != nil {
		return false, fmt.Errorf("insert like: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("get rows affected: %w", err)
	}
	return rows > 0, nil
}

// Unlike deletes a like edge; a missing edge is a no-op.
func (r *postRepository) Unlike(ctx context.Context, postID int64, username string) error {
	query := `DELETE FROM post_likes WHERE post_id = $1 AND username = $2`
	_, err := r.db.ExecContext(ctx, query, postID, username)
	if err != nil {
		return fmt.Errorf("delete like: %w", err)
	}
	return nil
}

// Share inserts a share edge if absent and reports whether one was inserted.
func (r *postRepository) Share(ctx context.Context, postID int64, username string) (bool, error) {
	query := `
		INSERT INTO post_shares (post_id, username)
		VALUES ($1, $2)
		ON CONFLICT (post_id, username) DO NOTHING
	`
	result, err := r.db.ExecContext(ctx, query, postID, username)
	if err != nil {
		return false, fmt.Errorf("insert share: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("get rows affected: %w", err)
	}
	return rows > 0, nil
}

// Unshare deletes a share edge; a missing edge is a no-op.
func (r *postRepository) Unshare(ctx context.Context, postID int64, username string) error {
	query := `DELETE FROM post_shares WHERE post_id = $1 AND username = $2`
	_, err := r.db.ExecContext(ctx, query, postID, username)
	if err != nil {
		return fmt.Errorf("delete share: %w", err)
	}
	return nil
}

// ListAll returns every post for the admin view, orphans included.
func (r *postRepository) ListAll(ctx context.Context) ([]model.AdminPost, error) {
	query := `
		SELECT p.id, p.caption, p.image, p.categories, p.author AS username, p.author_label
		FROM posts p
		ORDER BY p.id DESC
	`

	var posts []model.AdminPost
	err := r.db.SelectContext(ctx, &posts, query)
	if err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}
	for i := range posts {
		if posts[i].Categories == nil {
			posts[i].Categories = pq.StringArray{}
		}
	}

	return posts, nil
}

// ListLikeEdges returns every like edge for the admin view.
func (r *postRepository) ListLikeEdges(ctx context.Context) ([]model.LikeEdge, error) {
	query := `
		SELECT u.username, u.name, p.id AS post_id, p.caption
		FROM post_likes pl
		JOIN users u ON u.username = pl.username
		JOIN posts p ON p.id = pl.post_id
		ORDER BY u.username
	`

	var edges []model.LikeEdge
	err := r.db.SelectContext(ctx, &edges, query)
	if err != nil {
		return nil, fmt.Errorf("list like edges: %w", err)
	}

	return edges, nil
}

// Delete removes a post and detaches its like/share edges (cascade).
func (r *postRepository) Delete(ctx context.Context, postID int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM posts WHERE id = $1`, postID)
	if err != nil {
		return fmt.Errorf("delete post: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("get rows affected: %w", err)
	}
	if rows == 0 {
		return model.ErrPostNotFound
	}

	return nil
}
