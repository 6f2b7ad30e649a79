package service

import (
	"sort"

	"sociagram_22520074/internal/model"
)

const (
	// MaxSuggestions is the cap on the suggestion list
	MaxSuggestions = 8

	// MaxExplorePosts is the cap on the explore feed
	MaxExplorePosts = 60

	// Suggestion score weights. Social proximity dominates, shared interest
	// is secondary, raw activity and popularity act at tiebreak scale.
	mutualFriendsWeight = 15
	categoryMatchWeight = 10
)

// categoryOverlap counts the tags shared between two category sets. Set
// semantics: a tag either matches or it doesn't, duplicates don't add.
func categoryOverlap(mine, theirs []string) int {
	if len(mine) == 0 || len(theirs) == 0 {
		return 0
	}

	set := make(map[string]struct{}, len(mine))
	for _, tag := range mine {
		set[tag] = struct{}{}
	}

	match := 0
	for _, tag := range theirs {
		if _, ok := set[tag]; ok {
			match++
			delete(set, tag)
		}
	}
	return match
}

// suggestionScore computes the internal ranking score for a follow
// suggestion.
func suggestionScore(mutualFriends, categoryMatch, postCount, followerCount int) int {
	return mutualFriends*mutualFriendsWeight +
		categoryMatch*categoryMatchWeight +
		postCount +
		followerCount
}

// sortSuggestions orders suggestions by score descending, breaking score
// ties by mutual friends descending so social proximity wins when the
// additive terms happen to coincide.
func sortSuggestions(suggestions []model.Suggestion) {
	sort.SliceStable(suggestions, func(i, j int) bool {
		a, b := suggestions[i], suggestions[j]
		if a.Score != b.Score {
			return a.Score > b.Score
		}
		return a.MutualFriends > b.MutualFriends
	})
}

// sortExplorePosts orders the merged explore feed: source priority ascending
// (1 beats 2 beats 3), then category match, likes and shares descending, and
// finally post id descending so the newest post wins the last tie.
func sortExplorePosts(posts []model.ExplorePost) {
	sort.SliceStable(posts, func(i, j int) bool {
		a, b := posts[i], posts[j]
		if a.Priority != b.Priority {
			return a.Priority < b.Priority
		}
		if a.CategoryMatch != b.CategoryMatch {
			return a.CategoryMatch > b.CategoryMatch
		}
		if a.Likes != b.Likes {
			return a.Likes > b.Likes
		}
		if a.Shares != b.Shares {
			return a.Shares > b.Shares
		}
		return a.ID > b.ID
	})
}
