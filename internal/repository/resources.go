package repository

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"sync"

	"orbdyn/internal/application"
	"orbdyn/internal/domain"
	"orbdyn/internal/logger"
	"orbdyn/internal/ports"
	"orbdyn/internal/storage"
)

// Resources is the authoritative resource collection, newest first.
// Mutations are computed on a copy, persisted, and only then made visible,
// so a failed save leaves memory and store unchanged.
type Resources struct {
	mu         sync.RWMutex
	items      []domain.Resource
	store      *storage.Adapter
	categories ports.CategorySource
	opts       options
}

// Ensure Resources implements ResourceRepository
var _ ports.ResourceRepository = (*Resources)(nil)

// NewResources loads the persisted collection. categories supplies the known
// category names for bulk moves.
func NewResources(ctx context.Context, store *storage.Adapter, categories ports.CategorySource, opts ...Option) *Resources {
	return &Resources{
		items:      store.LoadResources(ctx),
		store:      store,
		categories: categories,
		opts:       buildOptions(opts),
	}
}

// List returns a copy of every resource, trashed ones included
func (r *Resources) List() []domain.Resource {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.Resource, len(r.items))
	for i, item := range r.items {
		out[i] = item.Clone()
	}
	return out
}

// Get returns the resource with id
func (r *Resources) Get(id string) (domain.Resource, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i := r.indexOf(id)
	if i < 0 {
		return domain.Resource{}, notFound(id)
	}
	return r.items[i].Clone(), nil
}

// IsDuplicateTitle checks title against every held resource except excludingID
func (r *Resources) IsDuplicateTitle(title, excludingID string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return domain.IsDuplicateTitle(r.items, title, excludingID)
}

// Create validates and prepends a new resource
func (r *Resources) Create(ctx context.Context, in domain.ResourceInput) (domain.Resource, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	title := strings.TrimSpace(in.Title)
	if err := application.ValidateRequired("title", title); err != nil {
		return domain.Resource{}, err
	}
	if err := application.ValidateResourceType("type", in.Type); err != nil {
		return domain.Resource{}, err
	}
	if domain.IsDuplicateTitle(r.items, title, "") {
		return domain.Resource{}, &application.DuplicateTitleError{Titles: []string{title}}
	}

	res := domain.Resource{
		ID:          r.opts.newID(),
		Title:       title,
		Type:        in.Type,
		Content:     in.Content,
		Description: in.Description,
		CreatedAt:   domain.NewTimestamp(r.opts.now()),
	}
	domain.ResourcePatch{
		Tags:      &in.Tags,
		URL:       &in.URL,
		Images:    &in.Images,
		Documents: &in.Documents,
		DueDate:   &in.DueDate,
		DueTime:   &in.DueTime,
		Priority:  &in.Priority,
	}.Apply(&res)
	defaultContent(&res)

	next := make([]domain.Resource, 0, len(r.items)+1)
	next = append(next, res)
	next = append(next, r.items...)
	if err := r.commit(ctx, next); err != nil {
		return domain.Resource{}, err
	}

	r.opts.log.Debug("resource created", logger.String("id", res.ID), logger.String("type", res.Type.String()))
	return res.Clone(), nil
}

// Update merges patch into the resource with id. ID, Type and CreatedAt never change.
func (r *Resources) Update(ctx context.Context, id string, patch domain.ResourcePatch) (domain.Resource, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		return domain.Resource{}, notFound(id)
	}

	res := r.items[i].Clone()
	patch.Apply(&res)
	if err := application.ValidateRequired("title", res.Title); err != nil {
		return domain.Resource{}, err
	}
	if domain.IsDuplicateTitle(r.items, res.Title, id) {
		return domain.Resource{}, &application.DuplicateTitleError{Titles: []string{res.Title}}
	}
	defaultContent(&res)

	if err := r.replace(ctx, i, res); err != nil {
		return domain.Resource{}, err
	}
	return res.Clone(), nil
}

// SoftDelete moves the resource to the recycle bin. Deleting a trashed
// resource again changes nothing.
func (r *Resources) SoftDelete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		return notFound(id)
	}
	if r.items[i].IsDeleted {
		return nil
	}

	res := r.items[i].Clone()
	r.trash(&res)
	return r.replace(ctx, i, res)
}

// Restore brings a trashed resource back. Restoring a live resource changes nothing.
func (r *Resources) Restore(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		return notFound(id)
	}
	if !r.items[i].IsDeleted {
		return nil
	}

	res := r.items[i].Clone()
	res.IsDeleted = false
	res.DeletedAt = nil
	return r.replace(ctx, i, res)
}

// Purge permanently removes a trashed resource. A live resource is refused
// with ErrNotInRecycleBin and left untouched.
func (r *Resources) Purge(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		return notFound(id)
	}
	if !r.items[i].IsDeleted {
		return fmt.Errorf("cannot purge %q: %w", r.items[i].Title, application.ErrNotInRecycleBin)
	}

	next := slices.Delete(slices.Clone(r.items), i, i+1)
	if err := r.commit(ctx, next); err != nil {
		return err
	}
	r.opts.log.Debug("resource purged", logger.String("id", id))
	return nil
}

// ToggleFavorite flips IsFavorite
func (r *Resources) ToggleFavorite(ctx context.Context, id string) (domain.Resource, error) {
	return r.toggle(ctx, id, func(res *domain.Resource) { res.IsFavorite = !res.IsFavorite })
}

// ToggleArchive flips IsArchived
func (r *Resources) ToggleArchive(ctx context.Context, id string) (domain.Resource, error) {
	return r.toggle(ctx, id, func(res *domain.Resource) { res.IsArchived = !res.IsArchived })
}

func (r *Resources) toggle(ctx context.Context, id string, flip func(*domain.Resource)) (domain.Resource, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		return domain.Resource{}, notFound(id)
	}

	res := r.items[i].Clone()
	flip(&res)
	if err := r.replace(ctx, i, res); err != nil {
		return domain.Resource{}, err
	}
	return res.Clone(), nil
}

// BulkSoftDelete trashes every live resource in ids and returns how many changed
func (r *Resources) BulkSoftDelete(ctx context.Context, ids []string) (int, error) {
	return r.bulkUpdate(ctx, ids, func(res *domain.Resource) bool {
		if res.IsDeleted {
			return false
		}
		r.trash(res)
		return true
	})
}

// BulkPurge permanently removes every trashed resource in ids. Live
// resources in ids are skipped.
func (r *Resources) BulkPurge(ctx context.Context, ids []string) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	selected := idSet(ids)
	next := make([]domain.Resource, 0, len(r.items))
	for _, res := range r.items {
		if selected[res.ID] && res.IsDeleted {
			continue
		}
		next = append(next, res)
	}

	removed := len(r.items) - len(next)
	if removed == 0 {
		return 0, nil
	}
	if err := r.commit(ctx, next); err != nil {
		return 0, err
	}
	return removed, nil
}

// BulkMoveToCategory removes every known category tag from the selected
// resources and prepends categoryName; other tags are kept.
func (r *Resources) BulkMoveToCategory(ctx context.Context, ids []string, categoryName string) (int, error) {
	categoryName = strings.TrimSpace(categoryName)
	if err := application.ValidateRequired("categoryName", categoryName); err != nil {
		return 0, err
	}

	known := map[string]bool{}
	if r.categories != nil {
		known = domain.CategoryNames(r.categories.List())
	}

	return r.bulkUpdate(ctx, ids, func(res *domain.Resource) bool {
		res.Tags = domain.MoveToCategory(res.Tags, known, categoryName)
		return true
	})
}

// Merge prepends already-built resources (typically from an import) in one
// persisted step. Resources whose title collides with a held title or an
// earlier one in the batch are skipped and reported. An id already held or
// already used in the batch is replaced with a fresh one.
func (r *Resources) Merge(ctx context.Context, resources []domain.Resource) ([]domain.Resource, []string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	titles := domain.NewTitleIndex(r.items)
	usedIDs := make(map[string]bool, len(r.items)+len(resources))
	for _, res := range r.items {
		usedIDs[res.ID] = true
	}
	var accepted []domain.Resource
	var duplicates []string

	for _, res := range resources {
		res = res.Clone()
		res.Title = strings.TrimSpace(res.Title)
		if res.Title == "" || titles.Has(res.Title) {
			duplicates = append(duplicates, res.Title)
			continue
		}
		titles.Add(res.Title)

		res.ID = strings.TrimSpace(res.ID)
		for res.ID == "" || usedIDs[res.ID] {
			res.ID = r.opts.newID()
		}
		usedIDs[res.ID] = true
		if res.CreatedAt.IsZero() {
			res.CreatedAt = domain.NewTimestamp(r.opts.now())
		}
		res.Tags = domain.CleanTags(res.Tags)
		res.IsDeleted = false
		res.DeletedAt = nil
		accepted = append(accepted, res)
	}

	if len(accepted) == 0 {
		return nil, duplicates, nil
	}

	next := make([]domain.Resource, 0, len(r.items)+len(accepted))
	next = append(next, accepted...)
	next = append(next, r.items...)
	if err := r.commit(ctx, next); err != nil {
		return nil, nil, err
	}

	r.opts.log.Info("resources merged",
		logger.Int("accepted", len(accepted)),
		logger.Int("duplicates", len(duplicates)))

	out := make([]domain.Resource, len(accepted))
	for i, res := range accepted {
		out[i] = res.Clone()
	}
	return out, duplicates, nil
}

// bulkUpdate applies fn to each selected resource in one pass and persists
// once. fn reports whether it changed the resource.
func (r *Resources) bulkUpdate(ctx context.Context, ids []string, fn func(*domain.Resource) bool) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	selected := idSet(ids)
	next := slices.Clone(r.items)
	changed := 0
	for i := range next {
		if !selected[next[i].ID] {
			continue
		}
		res := next[i].Clone()
		if fn(&res) {
			next[i] = res
			changed++
		}
	}

	if changed == 0 {
		return 0, nil
	}
	if err := r.commit(ctx, next); err != nil {
		return 0, err
	}
	return changed, nil
}

func (r *Resources) trash(res *domain.Resource) {
	at := domain.NewTimestamp(r.opts.now())
	res.IsDeleted = true
	res.DeletedAt = &at
}

func (r *Resources) replace(ctx context.Context, i int, res domain.Resource) error {
	next := slices.Clone(r.items)
	next[i] = res
	return r.commit(ctx, next)
}

// commit persists next and then installs it as the current collection
func (r *Resources) commit(ctx context.Context, next []domain.Resource) error {
	if err := r.store.SaveResources(ctx, next); err != nil {
		r.opts.log.Error("failed to persist resources", logger.Error(err))
		return err
	}
	r.items = next
	return nil
}

func (r *Resources) indexOf(id string) int {
	return slices.IndexFunc(r.items, func(res domain.Resource) bool { return res.ID == id })
}

// defaultContent falls back to the URL when a resource has no content
func defaultContent(res *domain.Resource) {
	if res.Content == "" && res.URL != "" {
		res.Content = res.URL
	}
}

func notFound(id string) error {
	return &application.NotFoundError{Kind: "resource", ID: id}
}

func idSet(ids []string) map[string]bool {
	set := make(map[string]bool, len(ids))
	for _, id := range ids {
		set[id] = true
	}
	return set
}
