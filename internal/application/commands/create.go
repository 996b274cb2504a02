package commands

import (
	"context"
	"fmt"
	"strings"

	"orbdyn/internal/application"
	"orbdyn/internal/domain"
	"orbdyn/internal/ports"
)

// CreateResourceResult contains the result of creating a resource
type CreateResourceResult struct {
	Resource domain.Resource
	Message  string
}

// CreateResourceCommand creates a link, note or to-do
type CreateResourceCommand struct {
	repo     ports.ResourceRepository
	Input    domain.ResourceInput
	Category string
}

// NewCreateResourceCommand creates a new CreateResourceCommand. category is
// optional and becomes the first tag.
func NewCreateResourceCommand(repo ports.ResourceRepository, input domain.ResourceInput, category string) *CreateResourceCommand {
	return &CreateResourceCommand{
		repo:     repo,
		Input:    input,
		Category: category,
	}
}

// Validate checks if the create operation is valid
func (c *CreateResourceCommand) Validate() error {
	if err := application.ValidateRequired("title", c.Input.Title); err != nil {
		return err
	}

	if err := application.ValidateResourceType("type", c.Input.Type); err != nil {
		return err
	}

	// A link without a URL has nothing to open
	if c.Input.Type == domain.TypeLink {
		if err := application.ValidateRequired("url", c.Input.URL); err != nil {
			return err
		}
	}

	if c.Input.Type != domain.TypeTodo && (c.Input.Priority != domain.PriorityNone || c.Input.DueDate != "" || c.Input.DueTime != "") {
		return &application.ValidationError{
			Field:   "priority",
			Message: "due date, due time and priority apply to To Do resources only",
		}
	}

	return nil
}

// Execute runs the create resource command
func (c *CreateResourceCommand) Execute(ctx context.Context) (*CreateResourceResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	input := c.Input
	input.Tags = domain.WithCategory(c.Category, input.Tags)

	res, err := c.repo.Create(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("failed to create resource: %w", err)
	}

	return &CreateResourceResult{
		Resource: res,
		Message:  fmt.Sprintf("Created %s: %s", strings.ToLower(res.Type.String()), res.Title),
	}, nil
}

// CreateCategoryResult contains the result of creating a category
type CreateCategoryResult struct {
	Category domain.Category
	Message  string
}

// CreateCategoryCommand creates a category
type CreateCategoryCommand struct {
	repo  ports.CategoryRepository
	Name  string
	Color string
}

// NewCreateCategoryCommand creates a new CreateCategoryCommand
func NewCreateCategoryCommand(repo ports.CategoryRepository, name, color string) *CreateCategoryCommand {
	return &CreateCategoryCommand{
		repo:  repo,
		Name:  name,
		Color: color,
	}
}

// Validate checks if the create operation is valid
func (c *CreateCategoryCommand) Validate() error {
	if err := application.ValidateRequired("name", c.Name); err != nil {
		return err
	}

	if name := strings.TrimSpace(c.Name); isBuiltinView(name) {
		return &application.ValidationError{
			Field:   "name",
			Message: fmt.Sprintf("%q is reserved for a built-in view", name),
		}
	}

	return nil
}

// Execute runs the create category command
func (c *CreateCategoryCommand) Execute(ctx context.Context) (*CreateCategoryResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	cat, err := c.repo.Create(ctx, c.Name, c.Color)
	if err != nil {
		return nil, fmt.Errorf("failed to create category: %w", err)
	}

	return &CreateCategoryResult{
		Category: cat,
		Message:  fmt.Sprintf("Created category: %s (%s)", cat.Name, cat.Color),
	}, nil
}
