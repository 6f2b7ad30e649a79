package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"sociagram_22520074/internal/model"
	"sociagram_22520074/internal/repository"
)

// SuggestService ranks follow suggestions from second-degree follow
// relationships. Stateless: every call recomputes from the live graph.
type SuggestService struct {
	discoverRepo repository.DiscoverRepository
	userRepo     repository.UserRepository
	followRepo   repository.FollowRepository
}

func NewSuggestService(
	discoverRepo repository.DiscoverRepository,
	userRepo repository.UserRepository,
	followRepo repository.FollowRepository,
) *SuggestService {
	return &SuggestService{
		discoverRepo: discoverRepo,
		userRepo:     userRepo,
		followRepo:   followRepo,
	}
}

// Suggestions returns up to MaxSuggestions users the requester might want to
// follow, ranked by relevance.
//
// Flow:
// 1. Load the requester's categories (unknown user -> empty set, not an error)
// 2. Collect two-hop candidates with their mutual-friend counts
// 3. Drop the requester and anyone they already follow
// 4. Batch-resolve post/follower counts for all candidates
// 5. Score, order, truncate
//
// A requester who follows nobody, or whose two-hop neighborhood is empty,
// gets an empty list; that is a normal outcome.
func (s *SuggestService) Suggestions(ctx context.Context, username string) ([]model.Suggestion, error) {
	startTime := time.Now()

	myCategories, err := s.userRepo.GetCategories(ctx, username)
	if err != nil {
		if !errors.Is(err, model.ErrUserNotFound) {
			return nil, fmt.Errorf("get requester categories: %w", err)
		}
		myCategories = nil
	}

	candidates, err := s.discoverRepo.GetTwoHopCandidates(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("get two-hop candidates: %w", err)
	}

	candidates, err = s.excludeSelfAndFollowees(ctx, username, candidates)
	if err != nil {
		return nil, err
	}
	if len(candidates) == 0 {
		log.Printf("[SuggestService] Suggestions OK: user=%s candidates=0 duration=%v",
			username, time.Since(startTime))
		return []model.Suggestion{}, nil
	}

	usernames := make([]string, len(candidates))
	for i, c := range candidates {
		usernames[i] = c.Username
	}

	counts, err := s.discoverRepo.GetActivityCounts(ctx, usernames)
	if err != nil {
		return nil, fmt.Errorf("get activity counts: %w", err)
	}

	suggestions := make([]model.Suggestion, len(candidates))
	for i, c := range candidates {
		activity := counts[c.Username]
		categoryMatch := categoryOverlap(myCategories, c.Categories)

		suggestions[i] = model.Suggestion{
			Username:      c.Username,
			Name:          c.Name,
			Avatar:        c.Avatar,
			Categories:    c.Categories,
			MutualFriends: c.MutualFriends,
			CategoryMatch: categoryMatch,
			Score: suggestionScore(
				c.MutualFriends, categoryMatch,
				activity.PostCount, activity.FollowerCount,
			),
		}
		if suggestions[i].Categories == nil {
			suggestions[i].Categories = []string{}
		}
	}

	sortSuggestions(suggestions)
	if len(suggestions) > MaxSuggestions {
		suggestions = suggestions[:MaxSuggestions]
	}

	log.Printf("[SuggestService] Suggestions OK: user=%s candidates=%d returned=%d duration=%v",
		username, len(candidates), len(suggestions), time.Since(startTime))

	return suggestions, nil
}

// excludeSelfAndFollowees drops the requester and their current followees
// from the candidate list. The candidate query already excludes both; this
// re-checks against the live follow set so a suggested user can never be
// someone the requester already follows, whatever the query returned.
func (s *SuggestService) excludeSelfAndFollowees(ctx context.Context, username string, candidates []model.SuggestionCandidate) ([]model.SuggestionCandidate, error) {
	if len(candidates) == 0 {
		return candidates, nil
	}

	followees, err := s.followRepo.GetFollowees(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("get followees: %w", err)
	}

	excluded := make(map[string]struct{}, len(followees)+1)
	excluded[username] = struct{}{}
	for _, followee := range followees {
		excluded[followee] = struct{}{}
	}

	kept := candidates[:0]
	for _, c := range candidates {
		if _, ok := excluded[c.Username]; ok {
			continue
		}
		kept = append(kept, c)
	}
	return kept, nil
}
