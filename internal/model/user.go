package model

import (
	"errors"
	"regexp"
	"time"

	"github.com/lib/pq"
)

// User represents a user node. The username is the stable identity; there is
// no numeric surrogate key and no credential material anywhere in the system.
type User struct {
	Username   string         `db:"username" json:"username"`
	Name       string         `db:"name" json:"name"`
	Bio        string         `db:"bio" json:"bio"`
	Avatar     string         `db:"avatar" json:"avatar"`
	Categories pq.StringArray `db:"categories" json:"categories"`
	CreatedAt  time.Time      `db:"created_at" json:"-"`
}

// UserSummary is the lightweight shape returned by user search.
type UserSummary struct {
	Username string `db:"username" json:"username"`
	Name     string `db:"name" json:"name"`
	Avatar   string `db:"avatar" json:"avatar"`
}

// Profile is a user plus their relationship/activity counts. The counts are
// edge-set cardinalities computed at read time; they are never stored.
type Profile struct {
	Username       string         `db:"username" json:"username"`
	Name           string         `db:"name" json:"name"`
	Bio            string         `db:"bio" json:"bio"`
	Avatar         string         `db:"avatar" json:"avatar"`
	Categories     pq.StringArray `db:"categories" json:"categories"`
	FollowingCount int            `db:"following_count" json:"followingCount"`
	FollowersCount int            `db:"followers_count" json:"followersCount"`
	PostsCount     int            `db:"posts_count" json:"postsCount"`
}

// ActivityCounts carries the per-user aggregates the suggestion ranker folds
// into its score.
type ActivityCounts struct {
	PostCount     int `db:"post_count"`
	FollowerCount int `db:"follower_count"`
}

// CreateUserRequest is the body for creating a user.
type CreateUserRequest struct {
	Username   string   `json:"username"`
	Name       string   `json:"name"`
	Bio        string   `json:"bio"`
	Avatar     string   `json:"avatar"`
	Categories []string `json:"categories"`
}

// usernamePattern constrains usernames to lowercase letters, digits, dots and
// underscores, 3-20 characters.
var usernamePattern = regexp.MustCompile(`^[a-z0-9._]{3,20}$`)

// IsValidUsername reports whether username matches the required pattern.
func IsValidUsername(username string) bool {
	return usernamePattern.MatchString(username)
}

var (
	// ErrUserNotFound is returned when a user cannot be found
	ErrUserNotFound = errors.New("user not found")

	// ErrUsernameExists is returned when attempting to create a user with a taken username
	ErrUsernameExists = errors.New("username already exists")

	// ErrInvalidUsername is returned when a username does not match the required pattern
	ErrInvalidUsername = errors.New("username must be 3-20 characters of a-z, 0-9, '.' or '_'")

	// ErrNoCategories is returned when a user is created without interest tags
	ErrNoCategories = errors.New("at least one category is required")

	// ErrUnknownCategory is returned when a category is not in the fixed list
	ErrUnknownCategory = errors.New("unknown category")
)
