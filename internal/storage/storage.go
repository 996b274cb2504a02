// Package storage persists the resource and category collections and the
// theme preference as JSON snapshots in a key-value store.
//
// Loads never fail: an absent key yields an empty collection and a malformed
// value is logged as a ReadError and treated as absent.
package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"orbdyn/internal/domain"
	"orbdyn/internal/logger"
	"orbdyn/internal/ports"
)

// Keys under which the collections are stored
const (
	KeyResources  = "resources"
	KeyCategories = "categories"
	KeyTheme      = "theme"
)

// ReadError describes a persisted value that could not be read or decoded
type ReadError struct {
	Key string
	Err error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("reading %s: %v", e.Key, e.Err)
}

func (e *ReadError) Unwrap() error {
	return e.Err
}

// Adapter serializes whole collections into a ports.KVStore
type Adapter struct {
	kv    ports.KVStore
	log   logger.Logger
	newID func() string
}

// New creates an Adapter over kv
func New(kv ports.KVStore, log logger.Logger) *Adapter {
	if log == nil {
		log = logger.Nop()
	}
	return &Adapter{kv: kv, log: log, newID: domain.NewID}
}

// Close closes the underlying store
func (a *Adapter) Close() error {
	return a.kv.Close()
}

// load decodes the value under key into a T. The boolean is false when the
// key is absent or unreadable.
func load[T any](ctx context.Context, a *Adapter, key string) (T, bool) {
	var zero T

	raw, err := a.kv.Get(ctx, key)
	if errors.Is(err, ports.ErrKeyNotFound) {
		return zero, false
	}
	if err != nil {
		a.logReadError(&ReadError{Key: key, Err: err})
		return zero, false
	}

	var value T
	if err := json.Unmarshal([]byte(raw), &value); err != nil {
		a.logReadError(&ReadError{Key: key, Err: err})
		return zero, false
	}
	return value, true
}

// save serializes value in full under key
func save[T any](ctx context.Context, a *Adapter, key string, value T) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal %s: %w", key, err)
	}
	if err := a.kv.Set(ctx, key, string(data)); err != nil {
		return fmt.Errorf("failed to save %s: %w", key, err)
	}
	a.log.Debug("saved", logger.String("key", key), logger.Int("bytes", len(data)))
	return nil
}

func (a *Adapter) logReadError(err *ReadError) {
	a.log.Warn("ignoring unreadable stored value",
		logger.String("key", err.Key),
		logger.Error(err.Err))
}

// LoadResources returns the stored resources, or an empty collection
func (a *Adapter) LoadResources(ctx context.Context) []domain.Resource {
	resources, ok := load[[]domain.Resource](ctx, a, KeyResources)
	if !ok || resources == nil {
		return []domain.Resource{}
	}
	for i := range resources {
		if resources[i].Tags == nil {
			resources[i].Tags = []string{}
		}
	}
	return resources
}

// SaveResources overwrites the stored resource collection
func (a *Adapter) SaveResources(ctx context.Context, resources []domain.Resource) error {
	return save(ctx, a, KeyResources, resources)
}

// LoadCategories returns the stored categories. Entries persisted as plain
// strings (the legacy layout) are promoted to categories with a fresh id and
// the default color; the promotion is written back on the next save only.
func (a *Adapter) LoadCategories(ctx context.Context) []domain.Category {
	raw, ok := load[[]json.RawMessage](ctx, a, KeyCategories)
	if !ok {
		return []domain.Category{}
	}

	categories := make([]domain.Category, 0, len(raw))
	migrated := 0
	for _, item := range raw {
		var name string
		if err := json.Unmarshal(item, &name); err == nil {
			categories = append(categories, domain.Category{
				ID:    a.newID(),
				Name:  name,
				Color: domain.DefaultCategoryColor,
			})
			migrated++
			continue
		}

		var c domain.Category
		if err := json.Unmarshal(item, &c); err != nil {
			a.logReadError(&ReadError{Key: KeyCategories, Err: err})
			continue
		}
		categories = append(categories, c)
	}

	if migrated > 0 {
		a.log.Info("promoted legacy categories", logger.Int("count", migrated))
	}
	return categories
}

// SaveCategories overwrites the stored category collection
func (a *Adapter) SaveCategories(ctx context.Context, categories []domain.Category) error {
	return save(ctx, a, KeyCategories, categories)
}

// Theme returns the stored theme, DefaultTheme when absent or invalid
func (a *Adapter) Theme(ctx context.Context) domain.Theme {
	raw, err := a.kv.Get(ctx, KeyTheme)
	if err != nil {
		if !errors.Is(err, ports.ErrKeyNotFound) {
			a.logReadError(&ReadError{Key: KeyTheme, Err: err})
		}
		return domain.DefaultTheme
	}

	// Older data stored the bare string, newer data a JSON string.
	var s string
	if json.Unmarshal([]byte(raw), &s) != nil {
		s = raw
	}
	theme, err := domain.ParseTheme(s)
	if err != nil {
		a.logReadError(&ReadError{Key: KeyTheme, Err: err})
		return domain.DefaultTheme
	}
	return theme
}

// SetTheme stores the theme preference as the literal "light" or "dark"
func (a *Adapter) SetTheme(ctx context.Context, theme domain.Theme) error {
	if err := a.kv.Set(ctx, KeyTheme, string(theme)); err != nil {
		return fmt.Errorf("failed to save %s: %w", KeyTheme, err)
	}
	return nil
}
