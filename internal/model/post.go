package model

import (
	"errors"
	"time"

	"github.com/lib/pq"
)

// Post represents a post node. IDs are assigned from the creation time in
// milliseconds, so numeric descending order is newest-first; they serialize
// as strings on the wire.
//
// A post normally has a real authoring user. Posts ingested through the admin
// path may instead carry only a denormalized author label and no author edge
// (an "orphaned" post); those never surface in the ranked feeds.
type Post struct {
	ID         int64          `db:"id" json:"id,string"`
	Caption    string         `db:"caption" json:"caption"`
	Image      string         `db:"image" json:"image"`
	Categories pq.StringArray `db:"categories" json:"categories"`
	Likes      int            `db:"likes" json:"likes"`
	Shares     int            `db:"shares" json:"shares"`

	// Storage-only author fields; exactly one is set.
	Author      *string `db:"author" json:"-"`
	AuthorLabel *string `db:"author_label" json:"-"`

	CreatedAt time.Time `db:"created_at" json:"-"`
}

// ExplorePost is a post as surfaced by the explore feed: post fields plus
// author framing, global like/share counts and the viewer's own flags.
// Priority and CategoryMatch are ranking signals and stay internal.
type ExplorePost struct {
	ID            int64          `db:"id" json:"id,string"`
	Caption       string         `db:"caption" json:"caption"`
	Image         string         `db:"image" json:"image"`
	Categories    pq.StringArray `db:"categories" json:"categories"`
	Author        string         `db:"author" json:"author"`
	AuthorName    string         `db:"author_name" json:"authorName"`
	AuthorAvatar  string         `db:"author_avatar" json:"authorAvatar"`
	Likes         int            `db:"likes" json:"likes"`
	Shares        int            `db:"shares" json:"shares"`
	AlreadyLiked  bool           `db:"already_liked" json:"alreadyLiked"`
	AlreadyShared bool           `db:"already_shared" json:"alreadyShared"`
	IsUserPost    bool           `db:"-" json:"isUserPost"`

	Priority      int `db:"-" json:"-"`
	CategoryMatch int `db:"-" json:"-"`
}

// AdminPost is the admin listing shape: every post in the store, attributed
// posts and orphans alike.
type AdminPost struct {
	ID          int64          `db:"id" json:"id,string"`
	Caption     string         `db:"caption" json:"caption"`
	Image       string         `db:"image" json:"image"`
	Categories  pq.StringArray `db:"categories" json:"categories"`
	Username    *string        `db:"username" json:"username"`
	AuthorLabel *string        `db:"author_label" json:"exploreAuthor"`
}

// CreatePostRequest is the admin body for creating a post. With a username
// the post gets a real author edge; with only an author label it is ingested
// as an orphan.
type CreatePostRequest struct {
	Username   string   `json:"username"`
	Author     string   `json:"author"`
	Caption    string   `json:"caption"`
	Image      string   `json:"image"`
	Categories []string `json:"categories"`
}

var (
	// ErrPostNotFound is returned when a post cannot be found
	ErrPostNotFound = errors.New("post not found")
)
