package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"sociagram_22520074/internal/model"
)

func TestSuggestService_Suggestions_RankedByScore(t *testing.T) {
	// alice follows two people whose circles overlap; scoring should put
	// the socially closest candidate first even when the others have more
	// raw activity.
	mockDiscover := &mockDiscoverRepository{
		getTwoHopCandidatesFn: func(ctx context.Context, username string) ([]model.SuggestionCandidate, error) {
			return []model.SuggestionCandidate{
				{Username: "carol", Name: "Carol", Categories: []string{"Travel"}, MutualFriends: 1},
				{Username: "dave", Name: "Dave", Categories: []string{"Technology"}, MutualFriends: 3},
				{Username: "erin", Name: "Erin", Categories: []string{"Music"}, MutualFriends: 2},
			}, nil
		},
		getActivityCountsFn: func(ctx context.Context, usernames []string) (map[string]model.ActivityCounts, error) {
			return map[string]model.ActivityCounts{
				"carol": {PostCount: 20, FollowerCount: 10}, // score 1*15 + 20 + 10 = 45
				"dave":  {PostCount: 1, FollowerCount: 2},   // score 3*15 + 10 + 1 + 2 = 58
				"erin":  {PostCount: 5, FollowerCount: 5},   // score 2*15 + 5 + 5 = 40
			}, nil
		},
	}
	mockUsers := &mockUserRepository{
		getCategoriesFn: func(ctx context.Context, username string) ([]string, error) {
			return []string{"Technology", "Food"}, nil
		},
	}
	svc := NewSuggestService(mockDiscover, mockUsers, &mockFollowRepository{})

	suggestions, err := svc.Suggestions(context.Background(), "alice")
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	want := []string{"dave", "carol", "erin"}
	if len(suggestions) != len(want) {
		t.Fatalf("got %d suggestions, want %d", len(suggestions), len(want))
	}
	for i, username := range want {
		if suggestions[i].Username != username {
			t.Errorf("position %d = %q, want %q", i, suggestions[i].Username, username)
		}
	}

	// dave shares Technology with alice, the others share nothing
	if suggestions[0].CategoryMatch != 1 {
		t.Errorf("dave categoryMatch = %d, want 1", suggestions[0].CategoryMatch)
	}
	if suggestions[1].CategoryMatch != 0 {
		t.Errorf("carol categoryMatch = %d, want 0", suggestions[1].CategoryMatch)
	}
}

func TestSuggestService_Suggestions_ScoreTieBrokenByMutualFriends(t *testing.T) {
	// Same total score, different composition: the candidate with more
	// mutual friends must come first.
	mockDiscover := &mockDiscoverRepository{
		getTwoHopCandidatesFn: func(ctx context.Context, username string) ([]model.SuggestionCandidate, error) {
			return []model.SuggestionCandidate{
				{Username: "loner", MutualFriends: 1},  // 1*15 + 15 = 30
				{Username: "social", MutualFriends: 2}, // 2*15 + 0 = 30
			}, nil
		},
		getActivityCountsFn: func(ctx context.Context, usernames []string) (map[string]model.ActivityCounts, error) {
			return map[string]model.ActivityCounts{
				"loner":  {PostCount: 10, FollowerCount: 5},
				"social": {PostCount: 0, FollowerCount: 0},
			}, nil
		},
	}
	mockUsers := &mockUserRepository{
		getCategoriesFn: func(ctx context.Context, username string) ([]string, error) {
			return nil, nil
		},
	}
	svc := NewSuggestService(mockDiscover, mockUsers, &mockFollowRepository{})

	suggestions, err := svc.Suggestions(context.Background(), "alice")
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	if len(suggestions) != 2 {
		t.Fatalf("got %d suggestions, want 2", len(suggestions))
	}
	if suggestions[0].Username != "social" {
		t.Errorf("first suggestion = %q, want %q", suggestions[0].Username, "social")
	}
}

func TestSuggestService_Suggestions_CappedAtEight(t *testing.T) {
	mockDiscover := &mockDiscoverRepository{
		getTwoHopCandidatesFn: func(ctx context.Context, username string) ([]model.SuggestionCandidate, error) {
			candidates := make([]model.SuggestionCandidate, 20)
			for i := range candidates {
				candidates[i] = model.SuggestionCandidate{
					Username:      fmt.Sprintf("user%02d", i),
					MutualFriends: i, // user19 scores highest
				}
			}
			return candidates, nil
		},
		getActivityCountsFn: func(ctx context.Context, usernames []string) (map[string]model.ActivityCounts, error) {
			return map[string]model.ActivityCounts{}, nil
		},
	}
	mockUsers := &mockUserRepository{
		getCategoriesFn: func(ctx context.Context, username string) ([]string, error) {
			return nil, nil
		},
	}
	svc := NewSuggestService(mockDiscover, mockUsers, &mockFollowRepository{})

	suggestions, err := svc.Suggestions(context.Background(), "alice")
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	if len(suggestions) != MaxSuggestions {
		t.Fatalf("got %d suggestions, want %d", len(suggestions), MaxSuggestions)
	}
	if suggestions[0].Username != "user19" {
		t.Errorf("first suggestion = %q, want %q", suggestions[0].Username, "user19")
	}
	if suggestions[7].Username != "user12" {
		t.Errorf("last suggestion = %q, want %q", suggestions[7].Username, "user12")
	}
}

func TestSuggestService_Suggestions_NeverSuggestsSelfOrFollowees(t *testing.T) {
	// Even if the candidate query misbehaves and returns the requester or
	// someone they already follow, neither may reach the response.
	mockDiscover := &mockDiscoverRepository{
		getTwoHopCandidatesFn: func(ctx context.Context, username string) ([]model.SuggestionCandidate, error) {
			return []model.SuggestionCandidate{
				{Username: "alice", MutualFriends: 9}, // the requester
				{Username: "bob", MutualFriends: 5},   // already followed
				{Username: "carol", MutualFriends: 1},
			}, nil
		},
		getActivityCountsFn: func(ctx context.Context, usernames []string) (map[string]model.ActivityCounts, error) {
			for _, u := range usernames {
				if u == "alice" || u == "bob" {
					t.Errorf("excluded candidate %q should not reach the counts query", u)
				}
			}
			return map[string]model.ActivityCounts{}, nil
		},
	}
	mockUsers := &mockUserRepository{
		getCategoriesFn: func(ctx context.Context, username string) ([]string, error) {
			return nil, nil
		},
	}
	mockFollows := &mockFollowRepository{
		getFolloweesFn: func(ctx context.Context, username string) ([]string, error) {
			return []string{"bob"}, nil
		},
	}
	svc := NewSuggestService(mockDiscover, mockUsers, mockFollows)

	suggestions, err := svc.Suggestions(context.Background(), "alice")
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	if len(suggestions) != 1 {
		t.Fatalf("got %d suggestions, want 1", len(suggestions))
	}
	if suggestions[0].Username != "carol" {
		t.Errorf("suggestion = %q, want %q", suggestions[0].Username, "carol")
	}
}

func TestSuggestService_Suggestions_AllCandidatesExcluded(t *testing.T) {
	mockDiscover := &mockDiscoverRepository{
		getTwoHopCandidatesFn: func(ctx context.Context, username string) ([]model.SuggestionCandidate, error) {
			return []model.SuggestionCandidate{
				{Username: "bob", MutualFriends: 2},
			}, nil
		},
	}
	mockUsers := &mockUserRepository{
		getCategoriesFn: func(ctx context.Context, username string) ([]string, error) {
			return nil, nil
		},
	}
	mockFollows := &mockFollowRepository{
		getFolloweesFn: func(ctx context.Context, username string) ([]string, error) {
			return []string{"bob"}, nil
		},
	}
	svc := NewSuggestService(mockDiscover, mockUsers, mockFollows)

	suggestions, err := svc.Suggestions(context.Background(), "alice")
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if suggestions == nil {
		t.Fatal("expected empty slice, got nil")
	}
	if len(suggestions) != 0 {
		t.Errorf("got %d suggestions, want 0", len(suggestions))
	}
}

func TestSuggestService_Suggestions_UnknownUserGetsEmptyList(t *testing.T) {
	// An unknown requester is not an error; they simply have no graph
	// neighborhood to draw from.
	mockDiscover := &mockDiscoverRepository{}
	mockUsers := &mockUserRepository{}
	svc := NewSuggestService(mockDiscover, mockUsers, &mockFollowRepository{})

	suggestions, err := svc.Suggestions(context.Background(), "nobody")
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if suggestions == nil {
		t.Fatal("expected empty slice, got nil")
	}
	if len(suggestions) != 0 {
		t.Errorf("got %d suggestions, want 0", len(suggestions))
	}
}

func TestSuggestService_Suggestions_CandidateQueryErrorPropagates(t *testing.T) {
	wantErr := errors.New("connection reset")
	mockDiscover := &mockDiscoverRepository{
		getTwoHopCandidatesFn: func(ctx context.Context, username string) ([]model.SuggestionCandidate, error) {
			return nil, wantErr
		},
	}
	mockUsers := &mockUserRepository{
		getCategoriesFn: func(ctx context.Context, username string) ([]string, error) {
			return []string{"Music"}, nil
		},
	}
	svc := NewSuggestService(mockDiscover, mockUsers, &mockFollowRepository{})

	_, err := svc.Suggestions(context.Background(), "alice")
	if !errors.Is(err, wantErr) {
		t.Fatalf("expected wrapped %v, got: %v", wantErr, err)
	}
}

func TestCategoryOverlap_SetSemantics(t *testing.T) {
	tests := []struct {
		name   string
		mine   []string
		theirs []string
		want   int
	}{
		{"both empty", nil, nil, 0},
		{"no overlap", []string{"Food"}, []string{"Travel"}, 0},
		{"partial overlap", []string{"Food", "Travel", "Art"}, []string{"Travel", "Music", "Art"}, 2},
		{"duplicates don't add", []string{"Food"}, []string{"Food", "Food", "Food"}, 1},
		{"one side empty", []string{"Food"}, nil, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := categoryOverlap(tt.mine, tt.theirs); got != tt.want {
				t.Errorf("categoryOverlap(%v, %v) = %d, want %d", tt.mine, tt.theirs, got, tt.want)
			}
		})
	}
}
