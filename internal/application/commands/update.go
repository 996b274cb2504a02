package commands

import (
	"context"
	"fmt"
	"strings"

	"orbdyn/internal/application"
	"orbdyn/internal/domain"
	"orbdyn/internal/ports"
)

// UpdateResourceResult contains the result of an update
type UpdateResourceResult struct {
	Resource domain.Resource
	Message  string
}

// UpdateResourceCommand merges a patch into an existing resource
type UpdateResourceCommand struct {
	repo  ports.ResourceRepository
	ID    string
	Patch domain.ResourcePatch
}

// NewUpdateResourceCommand creates a new UpdateResourceCommand
func NewUpdateResourceCommand(repo ports.ResourceRepository, id string, patch domain.ResourcePatch) *UpdateResourceCommand {
	return &UpdateResourceCommand{
		repo:  repo,
		ID:    id,
		Patch: patch,
	}
}

// Validate checks if the update operation is valid
func (c *UpdateResourceCommand) Validate() error {
	if err := application.ValidateRequired("id", c.ID); err != nil {
		return err
	}

	if c.Patch.Title != nil {
		if err := application.ValidateRequired("title", *c.Patch.Title); err != nil {
			return err
		}
	}

	return nil
}

// Execute runs the update command. A link keeps requiring a URL.
func (c *UpdateResourceCommand) Execute(ctx context.Context) (*UpdateResourceResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	current, err := c.repo.Get(c.ID)
	if err != nil {
		return nil, err
	}
	if current.Type == domain.TypeLink && c.Patch.URL != nil {
		if err := application.ValidateRequired("url", *c.Patch.URL); err != nil {
			return nil, err
		}
	}

	res, err := c.repo.Update(ctx, c.ID, c.Patch)
	if err != nil {
		return nil, fmt.Errorf("failed to update %s: %w", c.ID, err)
	}

	return &UpdateResourceResult{
		Resource: res,
		Message:  fmt.Sprintf("Updated %s", res.Title),
	}, nil
}

// UpdateCategoryResult contains the result of a category update
type UpdateCategoryResult struct {
	OriginalName string
	Category     domain.Category
	Message      string
}

// UpdateCategoryCommand renames and/or recolors a category. Resource tags
// naming the old category are left alone.
type UpdateCategoryCommand struct {
	repo  ports.CategoryRepository
	ID    string
	Name  string
	Color string
}

// NewUpdateCategoryCommand creates a new UpdateCategoryCommand
func NewUpdateCategoryCommand(repo ports.CategoryRepository, id, name, color string) *UpdateCategoryCommand {
	return &UpdateCategoryCommand{
		repo:  repo,
		ID:    id,
		Name:  name,
		Color: color,
	}
}

// Validate checks if the update operation is valid
func (c *UpdateCategoryCommand) Validate() error {
	if err := application.ValidateRequired("categoryID", c.ID); err != nil {
		return err
	}

	name := strings.TrimSpace(c.Name)
	if name == "" && strings.TrimSpace(c.Color) == "" {
		return &application.ValidationError{
			Field:   "name",
			Message: "nothing to update: give a new name or color",
		}
	}

	if isBuiltinView(name) {
		return &application.ValidationError{
			Field:   "name",
			Message: fmt.Sprintf("%q is reserved for a built-in view", name),
		}
	}

	return nil
}

// Execute runs the update category command
func (c *UpdateCategoryCommand) Execute(ctx context.Context) (*UpdateCategoryResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	before, err := c.repo.Get(c.ID)
	if err != nil {
		return nil, err
	}

	cat, err := c.repo.Update(ctx, c.ID, c.Name, c.Color)
	if err != nil {
		return nil, fmt.Errorf("failed to update category: %w", err)
	}

	msg := fmt.Sprintf("Updated category %s", cat.Name)
	if before.Name != cat.Name {
		msg = fmt.Sprintf("Renamed category %s -> %s", before.Name, cat.Name)
	}

	return &UpdateCategoryResult{
		OriginalName: before.Name,
		Category:     cat,
		Message:      msg,
	}, nil
}
