package service

import (
	"context"
	"fmt"
	"log"
	"strings"

	"sociagram_22520074/internal/model"
	"sociagram_22520074/internal/repository"
)

// UserService handles business logic for user operations
type UserService struct {
	repo     repository.UserRepository
	postRepo repository.PostRepository
}

func NewUserService(repo repository.UserRepository, postRepo repository.PostRepository) *UserService {
	return &UserService{
		repo:     repo,
		postRepo: postRepo,
	}
}

// Create creates a new user account. The username is immutable once created
// and is the user's identity everywhere; categories must be non-empty and
// drawn from the fixed list.
func (s *UserService) Create(ctx context.Context, req *model.CreateUserRequest) (*model.User, error) {
	username := strings.TrimSpace(req.Username)
	if !model.IsValidUsername(username) {
		return nil, model.ErrInvalidUsername
	}

	categories := dedupeCategories(req.Categories)
	if len(categories) == 0 {
		return nil, model.ErrNoCategories
	}
	for _, tag := range categories {
		if !model.IsValidCategory(tag) {
			return nil, fmt.Errorf("%w: %s", model.ErrUnknownCategory, tag)
		}
	}

	exists, err := s.repo.Exists(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("failed to check username: %w", err)
	}
	if exists {
		return nil, model.ErrUsernameExists
	}

	user := &model.User{
		Username:   username,
		Name:       req.Name,
		Bio:        req.Bio,
		Avatar:     req.Avatar,
		Categories: categories,
	}

	if err := s.repo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	log.Printf("[UserService] Created user=%s categories=%d", user.Username, len(user.Categories))
	return user, nil
}

// GetProfile retrieves a user's profile with counts derived on read.
func (s *UserService) GetProfile(ctx context.Context, username string) (*model.Profile, error) {
	return s.repo.GetProfile(ctx, username)
}

// List returns all users.
func (s *UserService) List(ctx context.Context) ([]model.User, error) {
	return s.repo.List(ctx)
}

// Search finds users by username or display name substring.
func (s *UserService) Search(ctx context.Context, query string, limit int) ([]model.UserSummary, error) {
	if limit <= 0 {
		limit = 10
	}
	users, err := s.repo.Search(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	if users == nil {
		users = []model.UserSummary{}
	}
	return users, nil
}

// GetPosts returns a user's posts newest-first.
func (s *UserService) GetPosts(ctx context.Context, username string) ([]model.Post, error) {
	posts, err := s.postRepo.GetByUser(ctx, username)
	if err != nil {
		return nil, err
	}
	if posts == nil {
		posts = []model.Post{}
	}
	return posts, nil
}

// Delete detaches all of a user's relationships and removes the node.
func (s *UserService) Delete(ctx context.Context, username string) error {
	if err := s.repo.Delete(ctx, username); err != nil {
		return err
	}
	log.Printf("[UserService] Deleted user=%s", username)
	return nil
}

// dedupeCategories drops duplicate tags while preserving order.
func dedupeCategories(categories []string) []string {
	seen := make(map[string]struct{}, len(categories))
	out := make([]string, 0, len(categories))
	for _, tag := range categories {
		if _, ok := seen[tag]; ok {
			continue
		}
		seen[tag] = struct{}{}
		out = append(out, tag)
	}
	return out
}
