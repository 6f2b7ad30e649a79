package model

import "time"

// Follow is a directed FOLLOWS edge between two users. Existence-only: the
// pair is the identity, there is no weight.
type Follow struct {
	Follower  string    `db:"follower" json:"follower"`
	Followee  string    `db:"followee" json:"followee"`
	CreatedAt time.Time `db:"created_at" json:"-"`
}

// FollowEdge is the admin listing shape for a follow edge.
type FollowEdge struct {
	Follower      string `db:"follower" json:"follower"`
	FollowerName  string `db:"follower_name" json:"followerName"`
	Following     string `db:"following" json:"following"`
	FollowingName string `db:"following_name" json:"followingName"`
}

// LikeEdge is the admin listing shape for a like edge.
type LikeEdge struct {
	Username string `db:"username" json:"username"`
	Name     string `db:"name" json:"name"`
	PostID   int64  `db:"post_id" json:"postId,string"`
	Caption  string `db:"caption" json:"caption"`
}

// FollowRequest is the body for follow/unfollow calls.
type FollowRequest struct {
	Follower  string `json:"follower"`
	Following string `json:"following"`
}

// InteractionRequest is the body for like/unlike/share/unshare calls.
// PostID arrives as a string to match the wire shape of post ids.
type InteractionRequest struct {
	Username string `json:"username"`
	PostID   string `json:"postId"`
}
