package service

import (
	"context"
	"errors"
	"testing"

	"sociagram_22520074/internal/model"
)

func TestUserService_Create_Success(t *testing.T) {
	mockRepo := &mockUserRepository{
		existsFn: func(ctx context.Context, username string) (bool, error) {
			return false, nil
		},
	}
	svc := NewUserService(mockRepo, &mockPostRepository{})

	req := &model.CreateUserRequest{
		Username:   "new.user_01",
		Name:       "New User",
		Bio:        "hello",
		Categories: []string{"Technology", "Music"},
	}

	user, err := svc.Create(context.Background(), req)
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if user.Username != "new.user_01" {
		t.Errorf("username = %q, want %q", user.Username, "new.user_01")
	}
	if len(mockRepo.createCalls) != 1 {
		t.Fatalf("got %d create calls, want 1", len(mockRepo.createCalls))
	}
}

func TestUserService_Create_InvalidUsername(t *testing.T) {
	svc := NewUserService(&mockUserRepository{}, &mockPostRepository{})

	invalid := []string{
		"ab",                    // too short
		"UPPERCASE",             // uppercase not allowed
		"has space",             // spaces not allowed
		"way.too.long.username.here", // over 20 chars
		"emoji🙂",
		"",
	}

	for _, username := range invalid {
		_, err := svc.Create(context.Background(), &model.CreateUserRequest{
			Username:   username,
			Categories: []string{"Music"},
		})
		if !errors.Is(err, model.ErrInvalidUsername) {
			t.Errorf("username %q: expected ErrInvalidUsername, got: %v", username, err)
		}
	}
}

func TestUserService_Create_CategoriesRequired(t *testing.T) {
	svc := NewUserService(&mockUserRepository{}, &mockPostRepository{})

	_, err := svc.Create(context.Background(), &model.CreateUserRequest{
		Username: "alice",
	})
	if !errors.Is(err, model.ErrNoCategories) {
		t.Fatalf("expected ErrNoCategories, got: %v", err)
	}
}

func TestUserService_Create_UnknownCategoryRejected(t *testing.T) {
	svc := NewUserService(&mockUserRepository{}, &mockPostRepository{})

	_, err := svc.Create(context.Background(), &model.CreateUserRequest{
		Username:   "alice",
		Categories: []string{"Music", "Quantum Basket Weaving"},
	})
	if !errors.Is(err, model.ErrUnknownCategory) {
		t.Fatalf("expected ErrUnknownCategory, got: %v", err)
	}
}

func TestUserService_Create_DuplicateCategoriesCollapsed(t *testing.T) {
	mockRepo := &mockUserRepository{}
	svc := NewUserService(mockRepo, &mockPostRepository{})

	user, err := svc.Create(context.Background(), &model.CreateUserRequest{
		Username:   "alice",
		Categories: []string{"Music", "Music", "Travel", "Music"},
	})
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if len(user.Categories) != 2 {
		t.Errorf("got %d categories, want 2: %v", len(user.Categories), user.Categories)
	}
}

func TestUserService_Create_UsernameTaken(t *testing.T) {
	mockRepo := &mockUserRepository{
		existsFn: func(ctx context.Context, username string) (bool, error) {
			return true, nil
		},
	}
	svc := NewUserService(mockRepo, &mockPostRepository{})

	_, err := svc.Create(context.Background(), &model.CreateUserRequest{
		Username:   "alice",
		Categories: []string{"Music"},
	})
	if !errors.Is(err, model.ErrUsernameExists) {
		t.Fatalf("expected ErrUsernameExists, got: %v", err)
	}
}

func TestUserService_Search_EmptyResultIsNotNil(t *testing.T) {
	svc := NewUserService(&mockUserRepository{}, &mockPostRepository{})

	users, err := svc.Search(context.Background(), "zzz", 10)
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if users == nil {
		t.Fatal("expected empty slice, got nil")
	}
}

func TestUserService_GetPosts_EmptyResultIsNotNil(t *testing.T) {
	svc := NewUserService(&mockUserRepository{}, &mockPostRepository{})

	posts, err := svc.GetPosts(context.Background(), "alice")
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if posts == nil {
		t.Fatal("expected empty slice, got nil")
	}
}
