package repository

import (
	"context"
	"slices"
	"strings"
	"sync"

	"orbdyn/internal/application"
	"orbdyn/internal/domain"
	"orbdyn/internal/logger"
	"orbdyn/internal/ports"
	"orbdyn/internal/storage"
)

// Categories is the authoritative category collection.
//
// Categories are matched to resources by name only. Renaming or deleting a
// category never rewrites resource tags: a deleted category's name stays on
// its resources as an ordinary tag.
type Categories struct {
	mu    sync.RWMutex
	items []domain.Category
	store *storage.Adapter
	opts  options
}

// Ensure Categories implements CategoryRepository
var _ ports.CategoryRepository = (*Categories)(nil)

// NewCategories loads the persisted categories, promoting the legacy layout
func NewCategories(ctx context.Context, store *storage.Adapter, opts ...Option) *Categories {
	return &Categories{
		items: store.LoadCategories(ctx),
		store: store,
		opts:  buildOptions(opts),
	}
}

// List returns a copy of the categories in creation order
func (c *Categories) List() []domain.Category {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return slices.Clone(c.items)
}

// Get returns the category with id
func (c *Categories) Get(id string) (domain.Category, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	i := c.indexOf(id)
	if i < 0 {
		return domain.Category{}, &application.NotFoundError{Kind: "category", ID: id}
	}
	return c.items[i], nil
}

// FindByName looks a category up by case-insensitive name
func (c *Categories) FindByName(name string) (domain.Category, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return domain.FindCategoryByName(c.items, name)
}

// Create appends a category. Name collisions are allowed at this layer.
func (c *Categories) Create(ctx context.Context, name, color string) (domain.Category, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	name = strings.TrimSpace(name)
	if err := application.ValidateRequired("name", name); err != nil {
		return domain.Category{}, err
	}

	cat := domain.Category{
		ID:    c.opts.newID(),
		Name:  name,
		Color: domain.ResolveColor(color),
	}

	next := append(slices.Clone(c.items), cat)
	if err := c.commit(ctx, next); err != nil {
		return domain.Category{}, err
	}

	c.opts.log.Debug("category created", logger.String("id", cat.ID), logger.String("name", cat.Name))
	return cat, nil
}

// Update changes the name and/or color of a category; blank values keep the
// current one. Resource tags carrying the old name are not rewritten.
func (c *Categories) Update(ctx context.Context, id, name, color string) (domain.Category, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	i := c.indexOf(id)
	if i < 0 {
		return domain.Category{}, &application.NotFoundError{Kind: "category", ID: id}
	}

	cat := c.items[i]
	if name = strings.TrimSpace(name); name != "" {
		cat.Name = name
	}
	if strings.TrimSpace(color) != "" {
		cat.Color = domain.ResolveColor(color)
	}

	next := slices.Clone(c.items)
	next[i] = cat
	if err := c.commit(ctx, next); err != nil {
		return domain.Category{}, err
	}
	return cat, nil
}

// Delete removes the category record only
func (c *Categories) Delete(ctx context.Context, id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	i := c.indexOf(id)
	if i < 0 {
		return &application.NotFoundError{Kind: "category", ID: id}
	}

	next := slices.Delete(slices.Clone(c.items), i, i+1)
	return c.commit(ctx, next)
}

func (c *Categories) commit(ctx context.Context, next []domain.Category) error {
	if err := c.store.SaveCategories(ctx, next); err != nil {
		c.opts.log.Error("failed to persist categories", logger.Error(err))
		return err
	}
	c.items = next
	return nil
}

func (c *Categories) indexOf(id string) int {
	return slices.IndexFunc(c.items, func(cat domain.Category) bool { return cat.ID == id })
}
