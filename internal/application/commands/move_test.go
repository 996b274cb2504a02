package commands

import (
	"context"
	"errors"
	"testing"

	"orbdyn/internal/application"
)

func TestMoveToCategoryCommand_Validate(t *testing.T) {
	tests := []struct {
		name     string
		category string
		ids      []string
		wantErr  bool
		errMsg   string
	}{
		{
			name:     "valid move",
			category: "Work",
			ids:      []string{"a", "b"},
			wantErr:  false,
		},
		{
			name:     "empty category",
			category: "",
			ids:      []string{"a"},
			wantErr:  true,
			errMsg:   "category name is required",
		},
		{
			name:     "no ids",
			category: "Work",
			wantErr:  true,
			errMsg:   "at least one ID is required",
		},
		{
			name:     "blank ids",
			category: "Work",
			ids:      []string{" ", ""},
			wantErr:  true,
			errMsg:   "at least one ID is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := &MoveToCategoryCommand{
				IDs:          tt.ids,
				CategoryName: tt.category,
			}
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

func TestMoveToCategoryCommand_Execute(t *testing.T) {
	repos := newTestRepos(t)
	ctx := context.Background()

	for _, name := range []string{"Work", "Home"} {
		if _, err := repos.categories.Create(ctx, name, ""); err != nil {
			t.Fatalf("create category: %v", err)
		}
	}
	a := repos.note(t, "Alpha", "Home", "errands")
	b := repos.note(t, "Beta", "Work")
	c := repos.note(t, "Gamma", "Home")

	result, err := NewMoveToCategoryCommand(repos.resources, repos.categories, "work", a.ID, b.ID, "unknown").Execute(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Category != "Work" {
		t.Errorf("expected stored spelling Work, got %q", result.Category)
	}
	if result.Count != 2 {
		t.Errorf("expected 2 moved, got %d", result.Count)
	}

	got, _ := repos.resources.Get(a.ID)
	if len(got.Tags) != 2 || got.Tags[0] != "Work" || got.Tags[1] != "errands" {
		t.Errorf("expected [Work errands], got %v", got.Tags)
	}
	got, _ = repos.resources.Get(b.ID)
	if len(got.Tags) != 1 || got.Tags[0] != "Work" {
		t.Errorf("expected [Work], got %v", got.Tags)
	}
	got, _ = repos.resources.Get(c.ID)
	if len(got.Tags) != 1 || got.Tags[0] != "Home" {
		t.Errorf("unselected resource changed: %v", got.Tags)
	}
}

func TestMoveToCategoryCommand_UnknownCategory(t *testing.T) {
	repos := newTestRepos(t)
	a := repos.note(t, "Alpha")

	_, err := NewMoveToCategoryCommand(repos.resources, repos.categories, "Nowhere", a.ID).Execute(context.Background())
	if !errors.Is(err, application.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}
