package service

import (
	"context"
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	"sociagram_22520074/internal/model"
	"sociagram_22520074/internal/repository"
)

// AdminService backs the administrative ingest and inspection endpoints.
// This is the one path that can create orphaned posts (author label only,
// no authoring user); the rankers never surface those.
type AdminService struct {
	userRepo   repository.UserRepository
	postRepo   repository.PostRepository
	followRepo repository.FollowRepository
}

func NewAdminService(
	userRepo repository.UserRepository,
	postRepo repository.PostRepository,
	followRepo repository.FollowRepository,
) *AdminService {
	return &AdminService{
		userRepo:   userRepo,
		postRepo:   postRepo,
		followRepo: followRepo,
	}
}

// CreatePost ingests a post. With a username the post is attributed to that
// user; otherwise it becomes an orphan carrying only the author label.
// IDs default to the creation time in milliseconds, which keeps them
// monotone so numeric descending order is newest-first.
func (s *AdminService) CreatePost(ctx context.Context, req *model.CreatePostRequest) (*model.Post, error) {
	post := &model.Post{
		ID:         time.Now().UnixMilli(),
		Caption:    req.Caption,
		Image:      req.Image,
		Categories: req.Categories,
	}
	if post.Categories == nil {
		post.Categories = []string{}
	}

	username := strings.TrimSpace(req.Username)
	if username != "" {
		exists, err := s.userRepo.Exists(ctx, username)
		if err != nil {
			return nil, fmt.Errorf("check user exists: %w", err)
		}
		if !exists {
			return nil, model.ErrUserNotFound
		}
		post.Author = &username
	} else {
		label := strings.TrimSpace(req.Author)
		if label == "" {
			label = "Unknown User"
		}
		post.AuthorLabel = &label
	}

	if err := s.postRepo.Create(ctx, post); err != nil {
		return nil, err
	}

	log.Printf("[AdminService] Created post=%d attributed=%v", post.ID, post.Author != nil)
	return post, nil
}

// ListPosts returns every post, orphans included.
func (s *AdminService) ListPosts(ctx context.Context) ([]model.AdminPost, error) {
	posts, err := s.postRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	if posts == nil {
		posts = []model.AdminPost{}
	}
	return posts, nil
}

// ListFollows returns every follow edge.
func (s *AdminService) ListFollows(ctx context.Context) ([]model.FollowEdge, error) {
	edges, err := s.followRepo.ListEdges(ctx)
	if err != nil {
		return nil, err
	}
	if edges == nil {
		edges = []model.FollowEdge{}
	}
	return edges, nil
}

// ListLikes returns every like edge.
func (s *AdminService) ListLikes(ctx context.Context) ([]model.LikeEdge, error) {
	edges, err := s.postRepo.ListLikeEdges(ctx)
	if err != nil {
		return nil, err
	}
	if edges == nil {
		edges = []model.LikeEdge{}
	}
	return edges, nil
}

// DeletePost detaches and removes a post.
func (s *AdminService) DeletePost(ctx context.Context, postID int64) error {
	return s.postRepo.Delete(ctx, postID)
}

// ParsePostID parses a wire post id (decimal string).
func ParsePostID(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid post id %q", raw)
	}
	return id, nil
}
