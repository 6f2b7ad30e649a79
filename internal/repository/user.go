package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"sociagram_22520074/internal/model"
)

// userRepository implements UserRepository using sqlx
type userRepository struct {
	db *sqlx.DB
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *sqlx.DB) UserRepository {
	return &userRepository{db: db}
}

// Create inserts a new user into the database
func (r *userRepository) Create(ctx context.Context, u *model.User) error {
	query := `
		INSERT INTO users (username, name, bio, avatar, categories, created_at)
		VALUES ($1, $2, $3, $4, $5, NOW())
		RETURNING created_at
	`

	row := r.db.QueryRowxContext(ctx, query,
		u.Username,
		u.Name,
		u.Bio,
		u.Avatar,
		pq.Array(u.Categories),
	)

	if err := row.Scan(&u.CreatedAt); err != nil {
		return fmt.Errorf("failed to insert user: %w", err)
	}

	return nil
}

// GetByUsername retrieves a user by their username
func (r *userRepository) GetByUsername(ctx context.Context, username string) (*model.User, error) {
	query := `
		SELECT username, name, bio, avatar, categories, created_at
		FROM users
		WHERE username = $1
	`

	var u model.User
	err := r.db.GetContext(ctx, &u, query, username)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, model.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user by username: %w", err)
	}
	if u.Categories == nil {
		u.Categories = pq.StringArray{}
	}

	return &u, nil
}

// Exists checks if a username is already taken
func (r *userRepository) Exists(ctx context.Context, username string) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM users WHERE username = $1)`

	var exists bool
	err := r.db.GetContext(ctx, &exists, query, username)
	if err != nil {
		return false, fmt.Errorf("failed to check username existence: %w", err)
	}

	return exists, nil
}

// List returns all users ordered by username.
func (r *userRepository) List(ctx context.Context) ([]model.User, error) {
	query := `
		SELECT username, name, bio, avatar, categories, created_at
		FROM users
		ORDER BY username
	`

	var users []model.User
	err := r.db.SelectContext(ctx, &users, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	for i := range users {
		if users[i].Categories == nil {
			users[i].Categories = pq.StringArray{}
		}
	}

	return users, nil
}

// Search finds users whose username or display name contains the query.
func (r *userRepository) Search(ctx context.Context, query string, limit int) ([]model.UserSummary, error) {
	searchQuery := `
		SELECT username, name, avatar
		FROM users
		WHERE username ILIKE $1 OR name ILIKE $1
		ORDER BY username
		LIMIT $2
	`

	var users []model.UserSummary
	err := r.db.SelectContext(ctx, &users, searchQuery, "%"+query+"%", limit)
	if err != nil {
		return nil, fmt.Errorf("failed to search users: %w", err)
	}

	return users, nil
}

// GetCategories returns a user's interest tags. A user with a NULL category
// set yields an empty slice, not an error.
func (r *userRepository) GetCategories(ctx context.Context, username string) ([]string, error) {
	query := `SELECT categories FROM users WHERE username = $1`

	var categories pq.StringArray
	err := r.db.GetContext(ctx, &categories, query, username)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, model.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user categories: %w", err)
	}

	return []string(categories), nil
}

// GetProfile retrieves a user with following/followers/posts counts. Every
// count is the cardinality of the corresponding edge set at read time.
func (r *userRepository) GetProfile(ctx context.Context, username string) (*model.Profile, error) {
	query := `
		SELECT u.username, u.name, u.bio, u.avatar, u.categories,
		       (SELECT COUNT(*) FROM follows f WHERE f.follower = u.username) AS following_count,
		       (SELECT COUNT(*) FROM follows f WHERE f.followee = u.username) AS followers_count,
		       (SELECT COUNT(*) FROM posts p WHERE p.author = u.username) AS posts_count
		FROM users u
		WHERE u.username = $1
	`

	var p model.Profile
	err := r.db.GetContext(ctx, &p, query, username)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, model.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}
	if p.Categories == nil {
		p.Categories = pq.StringArray{}
	}

	return &p, nil
}

// Delete removes a user node and detaches all its relationships. Follow,
// like and share edges cascade via foreign keys; the user's own posts go
// with the node.
func (r *userRepository) Delete(ctx context.Context, username string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM users WHERE username = $1`, username)
	if err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return model.ErrUserNotFound
	}

	return nil
}
