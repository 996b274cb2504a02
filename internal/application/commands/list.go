package commands

import (
	"context"
	"strings"

	"orbdyn/internal/domain"
	"orbdyn/internal/ports"
	"orbdyn/internal/query"
)

// ListResult is one page of the dashboard: the matching resources plus the
// per-view counts shown next to each view
type ListResult struct {
	View      string
	Resources []domain.Resource
	Counts    map[string]int
}

// ListResourcesCommand runs a query over the current collection
type ListResourcesCommand struct {
	resources  ports.ResourceRepository
	categories ports.CategorySource
	Options    query.Options
}

// NewListResourcesCommand creates a new ListResourcesCommand
func NewListResourcesCommand(resources ports.ResourceRepository, categories ports.CategorySource, opts query.Options) *ListResourcesCommand {
	return &ListResourcesCommand{
		resources:  resources,
		categories: categories,
		Options:    opts,
	}
}

// Execute runs the list resources command
func (c *ListResourcesCommand) Execute(ctx context.Context) (*ListResult, error) {
	all := c.resources.List()
	cats := c.categories.List()

	return &ListResult{
		View:      query.NormalizeView(c.Options.View),
		Resources: query.Run(all, cats, c.Options),
		Counts:    query.Counts(all, cats),
	}, nil
}

// ListCategoriesCommand lists all categories
type ListCategoriesCommand struct {
	repo ports.CategorySource
}

// NewListCategoriesCommand creates a new ListCategoriesCommand
func NewListCategoriesCommand(repo ports.CategorySource) *ListCategoriesCommand {
	return &ListCategoriesCommand{repo: repo}
}

// Execute runs the list categories command
func (c *ListCategoriesCommand) Execute(ctx context.Context) ([]domain.Category, error) {
	return c.repo.List(), nil
}

// GetResourceCommand fetches a single resource
type GetResourceCommand struct {
	repo ports.ResourceRepository
	ID   string
}

// NewGetResourceCommand creates a new GetResourceCommand
func NewGetResourceCommand(repo ports.ResourceRepository, id string) *GetResourceCommand {
	return &GetResourceCommand{
		repo: repo,
		ID:   id,
	}
}

// Execute runs the get resource command
func (c *GetResourceCommand) Execute(ctx context.Context) (domain.Resource, error) {
	return c.repo.Get(strings.TrimSpace(c.ID))
}

// isBuiltinView reports whether name would open a built-in view instead of
// a category, aliases included
func isBuiltinView(name string) bool {
	return query.IsBuiltinView(name)
}
