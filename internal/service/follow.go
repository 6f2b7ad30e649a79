package service

import (
	"context"
	"fmt"
	"log"

	"sociagram_22520074/internal/model"
	"sociagram_22520074/internal/queue"
	"sociagram_22520074/internal/repository"
)

// FollowService handles the follow/unfollow mutators. Both are idempotent:
// repeating a follow that is already in effect, or an unfollow that isn't,
// leaves the graph unchanged and succeeds. The rankers are what keep self
// out of results; storage does not police it.
type FollowService struct {
	followRepo repository.FollowRepository
	userRepo   repository.UserRepository
	publisher  queue.Publisher
}

func NewFollowService(
	followRepo repository.FollowRepository,
	userRepo repository.UserRepository,
	publisher queue.Publisher,
) *FollowService {
	return &FollowService{
		followRepo: followRepo,
		userRepo:   userRepo,
		publisher:  publisher,
	}
}

func (s *FollowService) Follow(ctx context.Context, follower, followee string) error {
	for _, username := range []string{follower, followee} {
		exists, err := s.userRepo.Exists(ctx, username)
		if err != nil {
			return fmt.Errorf("check user exists: %w", err)
		}
		if !exists {
			return model.ErrUserNotFound
		}
	}

	inserted, err := s.followRepo.Create(ctx, follower, followee)
	if err != nil {
		return err
	}
	if !inserted {
		// Edge already present; nothing changed, nothing to announce.
		return nil
	}

	// Publish event for async notification (after the write, best-effort)
	if s.publisher != nil && follower != followee {
		event := queue.NewUserFollowedEvent(follower, followee)
		msgID, err := s.publisher.Publish(ctx, queue.StreamInteractions, event)
		if err != nil {
			log.Printf("[FollowService] Failed to publish UserFollowed event: follower=%s followee=%s err=%v",
				follower, followee, err)
		} else {
			log.Printf("[FollowService] Published UserFollowed: follower=%s followee=%s msgID=%s",
				follower, followee, msgID)
		}
	}

	return nil
}

func (s *FollowService) Unfollow(ctx context.Context, follower, followee string) error {
	return s.followRepo.Delete(ctx, follower, followee)
}

// IsFollowing reports whether follower currently follows followee.
func (s *FollowService) IsFollowing(ctx context.Context, follower, followee string) (bool, error) {
	return s.followRepo.Exists(ctx, follower, followee)
}
