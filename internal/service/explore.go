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

// Explore source priorities; lower is more relevant.
const (
	priorityFollowed = 1
	priorityLiked    = 2
	priorityStranger = 3
)

// ExploreService ranks the multi-source explore feed. Stateless: every call
// recomputes from the live graph, so counts and flags are always fresh.
type ExploreService struct {
	discoverRepo repository.DiscoverRepository
	userRepo     repository.UserRepository
}

func NewExploreService(
	discoverRepo repository.DiscoverRepository,
	userRepo repository.UserRepository,
) *ExploreService {
	return &ExploreService{
		discoverRepo: discoverRepo,
		userRepo:     userRepo,
	}
}

// Explore returns up to MaxExplorePosts posts for the requester, each
// annotated with whether they already liked/shared it.
//
// Flow:
// 1. Load the requester's categories (unknown user -> empty set)
// 2. Fetch the three candidate sources; any source failing fails the whole
//    request, never a partially sourced feed
// 3. Merge with per-post dedup, keeping the lowest priority number when a
//    post is surfaced by more than one source
// 4. Order and truncate
func (s *ExploreService) Explore(ctx context.Context, username string) ([]model.ExplorePost, error) {
	startTime := time.Now()

	myCategories, err := s.userRepo.GetCategories(ctx, username)
	if err != nil {
		if !errors.Is(err, model.ErrUserNotFound) {
			return nil, fmt.Errorf("get requester categories: %w", err)
		}
		myCategories = nil
	}

	followed, err := s.discoverRepo.GetFollowedAuthorsPosts(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("get followed authors posts: %w", err)
	}

	liked, err := s.discoverRepo.GetLikedByFolloweesPosts(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("get liked-by-followees posts: %w", err)
	}

	strangers, err := s.discoverRepo.GetCategoryMatchedStrangerPosts(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("get stranger posts: %w", err)
	}

	feed := s.merge(myCategories, followed, liked, strangers)

	sortExplorePosts(feed)
	if len(feed) > MaxExplorePosts {
		feed = feed[:MaxExplorePosts]
	}
	if feed == nil {
		feed = []model.ExplorePost{}
	}

	log.Printf("[ExploreService] Explore OK: user=%s followed=%d liked=%d strangers=%d returned=%d duration=%v",
		username, len(followed), len(liked), len(strangers), len(feed), time.Since(startTime))

	return feed, nil
}

// merge unions the three sources with explicit post-id deduplication.
// Sources are visited in priority order, so the first sighting of a post id
// wins and carries the lowest priority; the aggregate fields are identical
// across sources (global counts, viewer flags), so dropping later rows loses
// nothing. Zero-overlap stranger posts are filtered here: that source exists
// to avoid an empty feed, not to inject arbitrary content.
func (s *ExploreService) merge(myCategories []string, sources ...[]model.ExplorePost) []model.ExplorePost {
	seen := make(map[int64]struct{})
	var feed []model.ExplorePost

	for i, source := range sources {
		priority := i + 1
		for _, post := range source {
			if _, ok := seen[post.ID]; ok {
				continue
			}

			post.Priority = priority
			post.CategoryMatch = categoryOverlap(myCategories, post.Categories)
			// Every source joins through a real authoring user.
			post.IsUserPost = true

			if priority == priorityStranger && post.CategoryMatch == 0 {
				continue
			}

			seen[post.ID] = struct{}{}
			feed = append(feed, post)
		}
	}

	return feed
}
