package commands

import (
	"context"
	"fmt"

	"orbdyn/internal/application"
	"orbdyn/internal/ports"
)

// MoveResult contains the result of moving resources into a category
type MoveResult struct {
	Category string
	Count    int
	Message  string
}

// MoveToCategoryCommand makes a category the only category of each selected
// resource. Free tags are kept.
type MoveToCategoryCommand struct {
	resources    ports.ResourceRepository
	categories   ports.CategoryRepository
	IDs          []string
	CategoryName string
}

// NewMoveToCategoryCommand creates a new MoveToCategoryCommand
func NewMoveToCategoryCommand(resources ports.ResourceRepository, categories ports.CategoryRepository, categoryName string, ids ...string) *MoveToCategoryCommand {
	return &MoveToCategoryCommand{
		resources:    resources,
		categories:   categories,
		IDs:          ids,
		CategoryName: categoryName,
	}
}

// Validate checks if the move operation is valid
func (c *MoveToCategoryCommand) Validate() error {
	if err := application.ValidateRequired("categoryName", c.CategoryName); err != nil {
		return err
	}

	return application.ValidateIDs("ids", c.IDs)
}

// Execute runs the move command. The destination must be an existing
// category; its stored spelling is used for the tag.
func (c *MoveToCategoryCommand) Execute(ctx context.Context) (*MoveResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	cat, ok := c.categories.FindByName(c.CategoryName)
	if !ok {
		return nil, &application.NotFoundError{Kind: "category", ID: c.CategoryName}
	}

	n, err := c.resources.BulkMoveToCategory(ctx, c.IDs, cat.Name)
	if err != nil {
		return nil, fmt.Errorf("failed to move resources to %s: %w", cat.Name, err)
	}

	return &MoveResult{
		Category: cat.Name,
		Count:    n,
		Message:  fmt.Sprintf("Moved %d resources to %s", n, cat.Name),
	}, nil
}
