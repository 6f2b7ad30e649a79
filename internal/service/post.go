package service

import (
	"context"
	"fmt"
	"log"

	"sociagram_22520074/internal/model"
	"sociagram_22520074/internal/queue"
	"sociagram_22520074/internal/repository"
)

// PostService handles the like/share mutators. Likes and shares are edge
// sets: create-if-absent, delete-if-present, no duplicate edges, no stored
// counters. Counts are always derived from the edges at read time.
type PostService struct {
	postRepo  repository.PostRepository
	userRepo  repository.UserRepository
	publisher queue.Publisher
}

func NewPostService(
	postRepo repository.PostRepository,
	userRepo repository.UserRepository,
	publisher queue.Publisher,
) *PostService {
	return &PostService{
		postRepo:  postRepo,
		userRepo:  userRepo,
		publisher: publisher,
	}
}

// Like adds a like edge from the user to the post. Repeats are no-ops.
func (s *PostService) Like(ctx context.Context, username string, postID int64) error {
	if err := s.checkExists(ctx, username, postID); err != nil {
		return err
	}

	inserted, err := s.postRepo.Like(ctx, postID, username)
	if err != nil {
		return err
	}
	if !inserted {
		return nil
	}

	log.Printf("[PostService] User %s liked post %d", username, postID)
	s.publishInteraction(ctx, queue.EventPostLiked, username, postID)
	return nil
}

// Unlike removes the like edge if present.
func (s *PostService) Unlike(ctx context.Context, username string, postID int64) error {
	return s.postRepo.Unlike(ctx, postID, username)
}

// Share adds a share edge from the user to the post. Repeats are no-ops.
func (s *PostService) Share(ctx context.Context, username string, postID int64) error {
	if err := s.checkExists(ctx, username, postID); err != nil {
		return err
	}

	inserted, err := s.postRepo.Share(ctx, postID, username)
	if err != nil {
		return err
	}
	if !inserted {
		return nil
	}

	log.Printf("[PostService] User %s shared post %d", username, postID)
	s.publishInteraction(ctx, queue.EventPostShared, username, postID)
	return nil
}

// Unshare removes the share edge if present.
func (s *PostService) Unshare(ctx context.Context, username string, postID int64) error {
	return s.postRepo.Unshare(ctx, postID, username)
}

func (s *PostService) checkExists(ctx context.Context, username string, postID int64) error {
	userExists, err := s.userRepo.Exists(ctx, username)
	if err != nil {
		return fmt.Errorf("check user exists: %w", err)
	}
	if !userExists {
		return model.ErrUserNotFound
	}

	postExists, err := s.postRepo.Exists(ctx, postID)
	if err != nil {
		return fmt.Errorf("check post exists: %w", err)
	}
	if !postExists {
		return model.ErrPostNotFound
	}

	return nil
}

// publishInteraction publishes a like/share event for the post's author,
// after the write and best-effort. Orphaned posts have no author to notify,
// and self-interactions are not announced.
func (s *PostService) publishInteraction(ctx context.Context, eventType, actor string, postID int64) {
	if s.publisher == nil {
		return
	}

	author, err := s.postRepo.GetAuthor(ctx, postID)
	if err != nil {
		log.Printf("[PostService] Failed to resolve author for post=%d: %v", postID, err)
		return
	}
	if author == nil || *author == actor {
		return
	}

	event := queue.NewPostInteractionEvent(eventType, actor, *author, postID)
	if _, err := s.publisher.Publish(ctx, queue.StreamInteractions, event); err != nil {
		log.Printf("[PostService] Failed to publish %s event: post=%d err=%v", eventType, postID, err)
	}
}
