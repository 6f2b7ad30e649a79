package model

import "github.com/lib/pq"

// SuggestionCandidate is a raw two-hop candidate as produced by the graph
// query: the candidate's profile fields plus the count of distinct
// intermediate friends connecting the requester to them.
type SuggestionCandidate struct {
	Username      string         `db:"username"`
	Name          string         `db:"name"`
	Avatar        string         `db:"avatar"`
	Categories    pq.StringArray `db:"categories"`
	MutualFriends int            `db:"mutual_friends"`
}

// Suggestion is a ranked follow suggestion. Score is the internal ranking
// signal and is not exposed to callers.
type Suggestion struct {
	Username      string   `json:"username"`
	Name          string   `json:"name"`
	Avatar        string   `json:"avatar"`
	Categories    []string `json:"categories"`
	MutualFriends int      `json:"mutualFriends"`
	CategoryMatch int      `json:"categoryMatch"`

	Score int `json:"-"`
}
