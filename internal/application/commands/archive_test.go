package commands

import (
	"context"
	"errors"
	"testing"

	"orbdyn/internal/adapters/memory"
	"orbdyn/internal/application"
	"orbdyn/internal/domain"
	"orbdyn/internal/repository"
	"orbdyn/internal/storage"
)

type testRepos struct {
	resources  *repository.Resources
	categories *repository.Categories
	store      *storage.Adapter
}

func newTestRepos(t *testing.T) *testRepos {
	t.Helper()
	ctx := context.Background()
	store := storage.New(memory.NewStore(), nil)
	cats := repository.NewCategories(ctx, store)
	return &testRepos{
		resources:  repository.NewResources(ctx, store, cats),
		categories: cats,
		store:      store,
	}
}

func (r *testRepos) note(t *testing.T, title string, tags ...string) domain.Resource {
	t.Helper()
	res, err := r.resources.Create(context.Background(), domain.ResourceInput{
		Title:   title,
		Type:    domain.TypeNote,
		Content: title,
		Tags:    tags,
	})
	if err != nil {
		t.Fatalf("create %q: %v", title, err)
	}
	return res
}

func TestToggleArchiveCommand_Validate(t *testing.T) {
	tests := []struct {
		name    string
		id      string
		wantErr bool
		errMsg  string
	}{
		{
			name:    "valid id",
			id:      "abc",
			wantErr: false,
		},
		{
			name:    "empty id",
			id:      "",
			wantErr: true,
			errMsg:  "ID is required",
		},
		{
			name:    "blank id",
			id:      "   ",
			wantErr: true,
			errMsg:  "ID is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := &ToggleArchiveCommand{ID: tt.id}
			err := cmd.Validate()

			if tt.wantErr {
				if err == nil {
					t.Errorf("expected error containing %q, got nil", tt.errMsg)
					return
				}
				if !contains(err.Error(), tt.errMsg) {
					t.Errorf("expected error containing %q, got %q", tt.errMsg, err.Error())
				}
			} else {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
			}
		})
	}
}

func TestToggleArchiveCommand_Execute(t *testing.T) {
	repos := newTestRepos(t)
	ctx := context.Background()
	res := repos.note(t, "Draft")

	result, err := NewToggleArchiveCommand(repos.resources, res.ID).Execute(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !result.Resource.IsArchived {
		t.Error("expected resource to be archived")
	}
	if !contains(result.Message, "Archived Draft") {
		t.Errorf("unexpected message %q", result.Message)
	}

	result, err = NewToggleArchiveCommand(repos.resources, res.ID).Execute(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Resource.IsArchived {
		t.Error("expected resource to be unarchived")
	}
	if !contains(result.Message, "Unarchived") {
		t.Errorf("unexpected message %q", result.Message)
	}
}

func TestToggleFavoriteCommand_Execute(t *testing.T) {
	repos := newTestRepos(t)
	ctx := context.Background()
	res := repos.note(t, "Keeper")

	result, err := NewToggleFavoriteCommand(repos.resources, res.ID).Execute(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !result.Resource.IsFavorite {
		t.Error("expected resource to be a favorite")
	}

	if _, err := NewToggleFavoriteCommand(repos.resources, "missing").Execute(ctx); !errors.Is(err, application.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestToggleCommands_RefuseTrashed(t *testing.T) {
	repos := newTestRepos(t)
	ctx := context.Background()
	res := repos.note(t, "Binned")

	if err := repos.resources.SoftDelete(ctx, res.ID); err != nil {
		t.Fatalf("soft delete: %v", err)
	}

	if _, err := NewToggleArchiveCommand(repos.resources, res.ID).Execute(ctx); !errors.Is(err, application.ErrInvalidOperation) {
		t.Errorf("archive: expected ErrInvalidOperation, got %v", err)
	}
	if _, err := NewToggleFavoriteCommand(repos.resources, res.ID).Execute(ctx); !errors.Is(err, application.ErrInvalidOperation) {
		t.Errorf("favorite: expected ErrInvalidOperation, got %v", err)
	}
}

func contains(s, substr string) bool {
	return len(s) >= len(substr) && (s == substr || len(substr) == 0 ||
		(len(s) > 0 && len(substr) > 0 && findSubstring(s, substr)))
}

func findSubstring(s, substr string) bool {
	for i := 0; i <= len(s)-len(substr); i++ {
		if s[i:i+len(substr)] == substr {
			return true
		}
	}
	return false
}
