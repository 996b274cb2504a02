package ports

import (
	"context"
	"time"

	"orbdyn/internal/domain"
)

// ResourceRepository owns the resource collection.
// Every mutating call persists the whole collection before returning.
type ResourceRepository interface {
	// Reads
	List() []domain.Resource
	Get(id string) (domain.Resource, error)
	IsDuplicateTitle(title, excludingID string) bool

	// Create / update
	Create(ctx context.Context, in domain.ResourceInput) (domain.Resource, error)
	Update(ctx context.Context, id string, patch domain.ResourcePatch) (domain.Resource, error)
	Merge(ctx context.Context, resources []domain.Resource) ([]domain.Resource, []string, error)

	// Lifecycle
	SoftDelete(ctx context.Context, id string) error
	Restore(ctx context.Context, id string) error
	Purge(ctx context.Context, id string) error
	ToggleFavorite(ctx context.Context, id string) (domain.Resource, error)
	ToggleArchive(ctx context.Context, id string) (domain.Resource, error)

	// Bulk operations skip unknown ids
	BulkSoftDelete(ctx context.Context, ids []string) (int, error)
	BulkPurge(ctx context.Context, ids []string) (int, error)
	BulkMoveToCategory(ctx context.Context, ids []string, categoryName string) (int, error)
}

// CategoryRepository owns the category collection
type CategoryRepository interface {
	CategorySource

	Get(id string) (domain.Category, error)
	FindByName(name string) (domain.Category, bool)
	Create(ctx context.Context, name, color string) (domain.Category, error)
	Update(ctx context.Context, id string, name, color string) (domain.Category, error)
	Delete(ctx context.Context, id string) error
}

// CategorySource lists the currently known categories
type CategorySource interface {
	List() []domain.Category
}

// SettingsStore holds user preferences
type SettingsStore interface {
	Theme(ctx context.Context) domain.Theme
	SetTheme(ctx context.Context, theme domain.Theme) error
}

// Clock returns the current time; repositories take one so tests can pin it
type Clock func() time.Time
