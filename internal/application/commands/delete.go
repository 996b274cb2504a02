package commands

import (
	"context"
	"fmt"

	"orbdyn/internal/application"
	"orbdyn/internal/ports"
)

// DeleteResult contains the result of a trash or purge operation
type DeleteResult struct {
	Count   int
	Message string
}

// TrashCommand moves resources to the recycle bin
type TrashCommand struct {
	repo ports.ResourceRepository
	IDs  []string
}

// NewTrashCommand creates a new TrashCommand
func NewTrashCommand(repo ports.ResourceRepository, ids ...string) *TrashCommand {
	return &TrashCommand{
		repo: repo,
		IDs:  ids,
	}
}

// Validate checks if the trash operation is valid
func (c *TrashCommand) Validate() error {
	return application.ValidateIDs("ids", c.IDs)
}

// Execute runs the trash command. A single id must exist; for several ids
// unknown ones are skipped.
func (c *TrashCommand) Execute(ctx context.Context) (*DeleteResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	if len(c.IDs) == 1 {
		if err := c.repo.SoftDelete(ctx, c.IDs[0]); err != nil {
			return nil, fmt.Errorf("failed to trash %s: %w", c.IDs[0], err)
		}
		return &DeleteResult{Count: 1, Message: fmt.Sprintf("Moved %s to the Recycle Bin", c.IDs[0])}, nil
	}

	n, err := c.repo.BulkSoftDelete(ctx, c.IDs)
	if err != nil {
		return nil, fmt.Errorf("failed to trash resources: %w", err)
	}

	return &DeleteResult{
		Count:   n,
		Message: fmt.Sprintf("Moved %d resources to the Recycle Bin", n),
	}, nil
}

// PurgeCommand permanently deletes resources from the recycle bin
type PurgeCommand struct {
	repo ports.ResourceRepository
	IDs  []string
}

// NewPurgeCommand creates a new PurgeCommand
func NewPurgeCommand(repo ports.ResourceRepository, ids ...string) *PurgeCommand {
	return &PurgeCommand{
		repo: repo,
		IDs:  ids,
	}
}

// Validate checks if the purge operation is valid
func (c *PurgeCommand) Validate() error {
	return application.ValidateIDs("ids", c.IDs)
}

// Execute runs the purge command. A single live resource is refused; for
// several ids only the trashed ones are removed.
func (c *PurgeCommand) Execute(ctx context.Context) (*DeleteResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	if len(c.IDs) == 1 {
		if err := c.repo.Purge(ctx, c.IDs[0]); err != nil {
			return nil, fmt.Errorf("failed to purge %s: %w", c.IDs[0], err)
		}
		return &DeleteResult{Count: 1, Message: fmt.Sprintf("Permanently deleted %s", c.IDs[0])}, nil
	}

	n, err := c.repo.BulkPurge(ctx, c.IDs)
	if err != nil {
		return nil, fmt.Errorf("failed to purge resources: %w", err)
	}

	return &DeleteResult{
		Count:   n,
		Message: fmt.Sprintf("Permanently deleted %d resources", n),
	}, nil
}

// EmptyRecycleBinCommand purges everything in the recycle bin
type EmptyRecycleBinCommand struct {
	repo ports.ResourceRepository
}

// NewEmptyRecycleBinCommand creates a new EmptyRecycleBinCommand
func NewEmptyRecycleBinCommand(repo ports.ResourceRepository) *EmptyRecycleBinCommand {
	return &EmptyRecycleBinCommand{repo: repo}
}

// Execute runs the empty recycle bin command
func (c *EmptyRecycleBinCommand) Execute(ctx context.Context) (*DeleteResult, error) {
	var ids []string
	for _, r := range c.repo.List() {
		if r.IsDeleted {
			ids = append(ids, r.ID)
		}
	}
	if len(ids) == 0 {
		return &DeleteResult{Message: "Recycle Bin is already empty"}, nil
	}

	n, err := c.repo.BulkPurge(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to empty the Recycle Bin: %w", err)
	}

	return &DeleteResult{
		Count:   n,
		Message: fmt.Sprintf("Permanently deleted %d resources", n),
	}, nil
}

// DeleteCategoryResult contains the result of deleting a category
type DeleteCategoryResult struct {
	Name    string
	Message string
}

// DeleteCategoryCommand removes a category record. Resources keep the tag.
type DeleteCategoryCommand struct {
	repo ports.CategoryRepository
	ID   string
}

// NewDeleteCategoryCommand creates a new DeleteCategoryCommand
func NewDeleteCategoryCommand(repo ports.CategoryRepository, id string) *DeleteCategoryCommand {
	return &DeleteCategoryCommand{
		repo: repo,
		ID:   id,
	}
}

// Validate checks if the delete operation is valid
func (c *DeleteCategoryCommand) Validate() error {
	return application.ValidateRequired("categoryID", c.ID)
}

// Execute runs the delete category command
func (c *DeleteCategoryCommand) Execute(ctx context.Context) (*DeleteCategoryResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	cat, err := c.repo.Get(c.ID)
	if err != nil {
		return nil, err
	}

	if err := c.repo.Delete(ctx, c.ID); err != nil {
		return nil, fmt.Errorf("failed to delete category %s: %w", cat.Name, err)
	}

	return &DeleteCategoryResult{
		Name:    cat.Name,
		Message: fmt.Sprintf("Deleted category %s", cat.Name),
	}, nil
}
