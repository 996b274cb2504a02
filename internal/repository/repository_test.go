package repository

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"orbdyn/internal/adapters/memory"
	"orbdyn/internal/application"
	"orbdyn/internal/domain"
	"orbdyn/internal/logger"
	"orbdyn/internal/storage"
)

var t0 = time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC)

// flakyStore fails every Set while failing is true
type flakyStore struct {
	*memory.Store
	failing bool
}

func (s *flakyStore) Set(ctx context.Context, key, value string) error {
	if s.failing {
		return errors.New("disk full")
	}
	return s.Store.Set(ctx, key, value)
}

type fixture struct {
	kv         *flakyStore
	store      *storage.Adapter
	resources  *Resources
	categories *Categories
	now        time.Time
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{kv: &flakyStore{Store: memory.NewStore()}, now: t0}
	f.store = storage.New(f.kv, logger.Nop())

	n := 0
	opts := []Option{
		WithClock(func() time.Time { return f.now }),
		WithIDGenerator(func() string { n++; return fmt.Sprintf("id-%d", n) }),
	}
	f.categories = NewCategories(context.Background(), f.store, opts...)
	f.resources = NewResources(context.Background(), f.store, f.categories, opts...)
	return f
}

func (f *fixture) note(t *testing.T, title string, tags ...string) domain.Resource {
	t.Helper()
	res, err := f.resources.Create(context.Background(), domain.ResourceInput{
		Title: title, Type: domain.TypeNote, Content: title, Tags: tags,
	})
	require.NoError(t, err)
	return res
}

// persisted reloads the collection from the store, bypassing memory
func (f *fixture) persisted() []domain.Resource {
	return f.store.LoadResources(context.Background())
}

func TestCreate_DuplicateTitleAcrossRecycleBin(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	a := f.note(t, "Reading list")
	require.NoError(t, f.resources.SoftDelete(ctx, a.ID))

	_, err := f.resources.Create(ctx, domain.ResourceInput{Title: "  reading LIST ", Type: domain.TypeNote})
	require.Error(t, err)
	assert.True(t, errors.Is(err, application.ErrDuplicateTitle))

	var dup *application.DuplicateTitleError
	require.True(t, errors.As(err, &dup))
	assert.Equal(t, []string{"reading LIST"}, dup.Titles)
	assert.Len(t, f.resources.List(), 1)
}

func TestCreate_NewestFirstAndDefaults(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	f.note(t, "First")
	link, err := f.resources.Create(ctx, domain.ResourceInput{
		Title: " Go ", Type: domain.TypeLink, URL: "https://go.dev", Priority: domain.PriorityHigh,
	})
	require.NoError(t, err)

	assert.Equal(t, "Go", link.Title)
	assert.Equal(t, "https://go.dev", link.Content, "content falls back to the URL")
	assert.Equal(t, domain.PriorityNone, link.Priority, "only to-dos carry a priority")
	assert.Equal(t, []string{}, link.Tags)
	assert.Equal(t, t0.UnixMilli(), link.CreatedAt.UnixMilli())

	list := f.resources.List()
	require.Len(t, list, 2)
	assert.Equal(t, "Go", list[0].Title)
	assert.Equal(t, list, f.persisted())
}

func TestCreate_Validation(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.resources.Create(ctx, domain.ResourceInput{Title: "  ", Type: domain.TypeNote})
	var verr *application.ValidationError
	assert.True(t, errors.As(err, &verr))

	_, err = f.resources.Create(ctx, domain.ResourceInput{Title: "x", Type: "Video"})
	assert.True(t, errors.As(err, &verr))
}

func TestUpdate(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	a := f.note(t, "Alpha")
	f.note(t, "Beta")

	title := "beta"
	_, err := f.resources.Update(ctx, a.ID, domain.ResourcePatch{Title: &title})
	assert.True(t, errors.Is(err, application.ErrDuplicateTitle))

	// renaming to a different case of its own title is fine
	title = "ALPHA"
	updated, err := f.resources.Update(ctx, a.ID, domain.ResourcePatch{Title: &title})
	require.NoError(t, err)
	assert.Equal(t, "ALPHA", updated.Title)
	assert.Equal(t, a.ID, updated.ID)
	assert.Equal(t, a.CreatedAt, updated.CreatedAt)
	assert.Equal(t, a.Type, updated.Type)

	_, err = f.resources.Update(ctx, "nope", domain.ResourcePatch{Title: &title})
	assert.True(t, errors.Is(err, application.ErrNotFound))
}

func TestSoftDeleteRestorePurge(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	a := f.note(t, "Note A")

	f.now = t0.Add(time.Hour)
	require.NoError(t, f.resources.SoftDelete(ctx, a.ID))
	got, _ := f.resources.Get(a.ID)
	require.True(t, got.IsDeleted)
	require.NotNil(t, got.DeletedAt)
	assert.Equal(t, f.now.UnixMilli(), got.DeletedAt.UnixMilli())

	// trashing again keeps the first deletion time
	f.now = t0.Add(2 * time.Hour)
	require.NoError(t, f.resources.SoftDelete(ctx, a.ID))
	got, _ = f.resources.Get(a.ID)
	assert.Equal(t, t0.Add(time.Hour).UnixMilli(), got.DeletedAt.UnixMilli())

	require.NoError(t, f.resources.Restore(ctx, a.ID))
	got, _ = f.resources.Get(a.ID)
	assert.False(t, got.IsDeleted)
	assert.Nil(t, got.DeletedAt)

	err := f.resources.Purge(ctx, a.ID)
	assert.True(t, errors.Is(err, application.ErrNotInRecycleBin))
	assert.Len(t, f.resources.List(), 1)

	require.NoError(t, f.resources.SoftDelete(ctx, a.ID))
	require.NoError(t, f.resources.Purge(ctx, a.ID))
	assert.Empty(t, f.resources.List())
	assert.Empty(t, f.persisted())

	assert.True(t, errors.Is(f.resources.Restore(ctx, a.ID), application.ErrNotFound))
}

func TestToggles(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	a := f.note(t, "Fav")

	res, err := f.resources.ToggleFavorite(ctx, a.ID)
	require.NoError(t, err)
	assert.True(t, res.IsFavorite)

	res, err = f.resources.ToggleFavorite(ctx, a.ID)
	require.NoError(t, err)
	assert.False(t, res.IsFavorite)

	res, err = f.resources.ToggleArchive(ctx, a.ID)
	require.NoError(t, err)
	assert.True(t, res.IsArchived)
	assert.True(t, f.persisted()[0].IsArchived)
}

func TestBulkOperations(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	a := f.note(t, "A")
	b := f.note(t, "B")
	c := f.note(t, "C")

	n, err := f.resources.BulkSoftDelete(ctx, []string{a.ID, b.ID, "unknown"})
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	// already trashed resources are not counted twice
	n, err = f.resources.BulkSoftDelete(ctx, []string{a.ID})
	require.NoError(t, err)
	assert.Equal(t, 0, n)

	// live c is skipped by a bulk purge
	n, err = f.resources.BulkPurge(ctx, []string{a.ID, c.ID})
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	var titles []string
	for _, r := range f.persisted() {
		titles = append(titles, r.Title)
	}
	assert.ElementsMatch(t, []string{"B", "C"}, titles)
}

func TestBulkMoveToCategory_LeavesExactlyOneCategory(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	for _, name := range []string{"Work", "Home"} {
		_, err := f.categories.Create(ctx, name, "")
		require.NoError(t, err)
	}

	a := f.note(t, "A", "Work", "urgent")
	b := f.note(t, "B", "Home", "Work")
	c := f.note(t, "C")

	n, err := f.resources.BulkMoveToCategory(ctx, []string{a.ID, b.ID, c.ID}, "Home")
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	want := map[string][]string{
		"A": {"Home", "urgent"},
		"B": {"Home"},
		"C": {"Home"},
	}
	for _, r := range f.resources.List() {
		assert.Equal(t, want[r.Title], r.Tags, r.Title)
	}

	// moving again is idempotent
	_, err = f.resources.BulkMoveToCategory(ctx, []string{a.ID}, "Home")
	require.NoError(t, err)
	got, _ := f.resources.Get(a.ID)
	assert.Equal(t, []string{"Home", "urgent"}, got.Tags)
}

func TestMerge(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	existing := f.note(t, "Existing")

	accepted, dups, err := f.resources.Merge(ctx, []domain.Resource{
		{ID: existing.ID, Title: "Imported", Type: domain.TypeNote, IsDeleted: true},
		{Title: "existing", Type: domain.TypeNote},
		{Title: "IMPORTED", Type: domain.TypeNote},
	})
	require.NoError(t, err)
	require.Len(t, accepted, 1)
	assert.Equal(t, []string{"existing", "IMPORTED"}, dups)

	got := accepted[0]
	assert.NotEqual(t, existing.ID, got.ID, "a clashing id is replaced")
	assert.False(t, got.IsDeleted, "imports arrive live")
	assert.Equal(t, t0.UnixMilli(), got.CreatedAt.UnixMilli())
	assert.Equal(t, "Imported", f.resources.List()[0].Title, "imports are prepended")
}

func TestMerge_RepeatedIDsInBatch(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	accepted, dups, err := f.resources.Merge(ctx, []domain.Resource{
		{ID: "x", Title: "A", Type: domain.TypeNote},
		{ID: "x", Title: "B", Type: domain.TypeNote},
		{ID: " x ", Title: "C", Type: domain.TypeNote},
	})
	require.NoError(t, err)
	assert.Empty(t, dups)
	require.Len(t, accepted, 3)

	seen := map[string]bool{}
	for _, res := range accepted {
		assert.False(t, seen[res.ID], "id %q handed out twice", res.ID)
		seen[res.ID] = true
	}
	assert.Equal(t, "x", accepted[0].ID, "the first use keeps its id")

	for _, res := range accepted {
		got, err := f.resources.Get(res.ID)
		require.NoError(t, err)
		assert.Equal(t, res.Title, got.Title)
	}

	require.NoError(t, f.resources.SoftDelete(ctx, accepted[1].ID))
	a, _ := f.resources.Get("x")
	b, _ := f.resources.Get(accepted[1].ID)
	assert.False(t, a.IsDeleted)
	assert.True(t, b.IsDeleted)
}

func TestFailedSaveChangesNothing(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	a := f.note(t, "Stable")
	before := f.resources.List()

	f.kv.failing = true
	title := "Changed"

	_, err := f.resources.Create(ctx, domain.ResourceInput{Title: "New", Type: domain.TypeNote})
	assert.Error(t, err)
	_, err = f.resources.Update(ctx, a.ID, domain.ResourcePatch{Title: &title})
	assert.Error(t, err)
	assert.Error(t, f.resources.SoftDelete(ctx, a.ID))
	_, err = f.resources.ToggleFavorite(ctx, a.ID)
	assert.Error(t, err)
	_, err = f.resources.BulkSoftDelete(ctx, []string{a.ID})
	assert.Error(t, err)
	_, err = f.categories.Create(ctx, "Work", "")
	assert.Error(t, err)

	assert.Equal(t, before, f.resources.List())
	assert.Empty(t, f.categories.List())

	f.kv.failing = false
	assert.Equal(t, before, f.persisted())
}

func TestListReturnsCopies(t *testing.T) {
	f := newFixture(t)
	f.note(t, "Original", "tag")

	list := f.resources.List()
	list[0].Title = "Mutated"
	list[0].Tags[0] = "mutated"

	got := f.resources.List()[0]
	assert.Equal(t, "Original", got.Title)
	assert.Equal(t, []string{"tag"}, got.Tags)
}

func TestCategories(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	work, err := f.categories.Create(ctx, " Work ", "blue")
	require.NoError(t, err)
	assert.Equal(t, "Work", work.Name)
	assert.Equal(t, "#3b82f6", work.Color)

	_, err = f.categories.Create(ctx, "", "")
	assert.Error(t, err)

	found, ok := f.categories.FindByName("work")
	require.True(t, ok)
	assert.Equal(t, work.ID, found.ID)

	// blank name keeps the current one
	updated, err := f.categories.Update(ctx, work.ID, "", "green")
	require.NoError(t, err)
	assert.Equal(t, "Work", updated.Name)
	assert.Equal(t, "#22c55e", updated.Color)

	// resources keep the tag after a rename
	a := f.note(t, "Tagged", "Work")
	_, err = f.categories.Update(ctx, work.ID, "Job", "")
	require.NoError(t, err)
	got, _ := f.resources.Get(a.ID)
	assert.Equal(t, []string{"Work"}, got.Tags)

	require.NoError(t, f.categories.Delete(ctx, work.ID))
	assert.Empty(t, f.categories.List())
	assert.True(t, errors.Is(f.categories.Delete(ctx, work.ID), application.ErrNotFound))

	reloaded := NewCategories(ctx, f.store)
	assert.Empty(t, reloaded.List())
}
