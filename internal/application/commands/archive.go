package commands

import (
	"context"
	"fmt"

	"orbdyn/internal/application"
	"orbdyn/internal/domain"
	"orbdyn/internal/ports"
)

// ToggleResult contains the resource after a toggle
type ToggleResult struct {
	Resource domain.Resource
	Message  string
}

// ToggleArchiveCommand archives a live resource or unarchives an archived one
type ToggleArchiveCommand struct {
	repo ports.ResourceRepository
	ID   string
}

// NewToggleArchiveCommand creates a new ToggleArchiveCommand
func NewToggleArchiveCommand(repo ports.ResourceRepository, id string) *ToggleArchiveCommand {
	return &ToggleArchiveCommand{
		repo: repo,
		ID:   id,
	}
}

// Validate checks if the resource can be archived
func (c *ToggleArchiveCommand) Validate() error {
	return application.ValidateRequired("id", c.ID)
}

// Execute runs the toggle archive command
func (c *ToggleArchiveCommand) Execute(ctx context.Context) (*ToggleResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	if err := ensureNotTrashed(c.repo, c.ID, "archive"); err != nil {
		return nil, err
	}

	res, err := c.repo.ToggleArchive(ctx, c.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to archive %s: %w", c.ID, err)
	}

	msg := fmt.Sprintf("Archived %s", res.Title)
	if !res.IsArchived {
		msg = fmt.Sprintf("Unarchived %s", res.Title)
	}
	return &ToggleResult{Resource: res, Message: msg}, nil
}

// ToggleFavoriteCommand flips the favorite flag
type ToggleFavoriteCommand struct {
	repo ports.ResourceRepository
	ID   string
}

// NewToggleFavoriteCommand creates a new ToggleFavoriteCommand
func NewToggleFavoriteCommand(repo ports.ResourceRepository, id string) *ToggleFavoriteCommand {
	return &ToggleFavoriteCommand{
		repo: repo,
		ID:   id,
	}
}

// Validate checks if the resource can be favorited
func (c *ToggleFavoriteCommand) Validate() error {
	return application.ValidateRequired("id", c.ID)
}

// Execute runs the toggle favorite command
func (c *ToggleFavoriteCommand) Execute(ctx context.Context) (*ToggleResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	if err := ensureNotTrashed(c.repo, c.ID, "favorite"); err != nil {
		return nil, err
	}

	res, err := c.repo.ToggleFavorite(ctx, c.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to favorite %s: %w", c.ID, err)
	}

	msg := fmt.Sprintf("Added %s to Favorites", res.Title)
	if !res.IsFavorite {
		msg = fmt.Sprintf("Removed %s from Favorites", res.Title)
	}
	return &ToggleResult{Resource: res, Message: msg}, nil
}

// ensureNotTrashed refuses toggles on recycle-bin items; the bin only offers
// restore and permanent delete
func ensureNotTrashed(repo ports.ResourceRepository, id, action string) error {
	res, err := repo.Get(id)
	if err != nil {
		return err
	}
	if res.IsDeleted {
		return fmt.Errorf("cannot %s %q while it is in the Recycle Bin: %w", action, res.Title, application.ErrInvalidOperation)
	}
	return nil
}
