package storage

import (
	"context"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"orbdyn/internal/adapters/memory"
	"orbdyn/internal/domain"
	"orbdyn/internal/logger"
)

func fixed() time.Time {
	return time.Date(2024, 6, 1, 9, 30, 0, 0, time.UTC)
}

func itoa(n int64) string {
	return strconv.FormatInt(n, 10)
}

func newObserved() (*Adapter, *memory.Store, *observer.ObservedLogs) {
	core, logs := observer.New(zap.DebugLevel)
	kv := memory.NewStore()
	return New(kv, logger.FromZap(zap.New(core))), kv, logs
}

func TestLoad_AbsentKeysAreEmpty(t *testing.T) {
	ctx := context.Background()
	a, _, logs := newObserved()

	assert.Equal(t, []domain.Resource{}, a.LoadResources(ctx))
	assert.Equal(t, []domain.Category{}, a.LoadCategories(ctx))
	assert.Equal(t, domain.DefaultTheme, a.Theme(ctx))
	assert.Zero(t, logs.FilterMessage("ignoring unreadable stored value").Len())
}

func TestLoad_MalformedValueIsLoggedAndIgnored(t *testing.T) {
	ctx := context.Background()
	a, kv, logs := newObserved()

	require.NoError(t, kv.Set(ctx, KeyResources, `[{"id": "1",`))
	require.NoError(t, kv.Set(ctx, KeyTheme, "sepia"))

	assert.Empty(t, a.LoadResources(ctx))
	assert.Equal(t, domain.ThemeDark, a.Theme(ctx))

	entries := logs.FilterMessage("ignoring unreadable stored value").All()
	require.Len(t, entries, 2)
	assert.Equal(t, KeyResources, entries[0].ContextMap()["key"])
	assert.Equal(t, KeyTheme, entries[1].ContextMap()["key"])
}

func TestResources_RoundTrip(t *testing.T) {
	ctx := context.Background()
	a, kv, _ := newObserved()

	deleted := domain.NewTimestamp(domain.NewTimestamp(fixed()).AddDate(0, 0, 1))
	in := []domain.Resource{
		{ID: "1", Title: "Link", Type: domain.TypeLink, Content: "https://go.dev", URL: "https://go.dev", CreatedAt: domain.NewTimestamp(fixed()), Tags: []string{"Work"}},
		{ID: "2", Title: "Chore", Type: domain.TypeTodo, Content: "x", CreatedAt: domain.NewTimestamp(fixed()), Tags: []string{}, Priority: domain.PriorityHigh, DueDate: "2024-07-01", IsDeleted: true, DeletedAt: &deleted},
	}
	require.NoError(t, a.SaveResources(ctx, in))

	raw, err := kv.Get(ctx, KeyResources)
	require.NoError(t, err)
	assert.Contains(t, raw, `"createdAt":`+itoa(fixed().UnixMilli()))

	assert.Equal(t, in, a.LoadResources(ctx))
}

func TestResources_NilTagsBecomeEmpty(t *testing.T) {
	ctx := context.Background()
	a, kv, _ := newObserved()

	require.NoError(t, kv.Set(ctx, KeyResources, `[{"id":"1","title":"t","type":"Note","content":"c","createdAt":0,"tags":null}]`))
	got := a.LoadResources(ctx)
	require.Len(t, got, 1)
	assert.Equal(t, []string{}, got[0].Tags)
}

func TestCategories_LegacyLayoutIsPromoted(t *testing.T) {
	ctx := context.Background()
	a, kv, logs := newObserved()
	n := 0
	a.newID = func() string { n++; return "new-" + itoa(int64(n)) }

	require.NoError(t, kv.Set(ctx, KeyCategories, `["Work", {"id":"c2","name":"Home","color":"#3b82f6"}, "Reading", 42]`))

	got := a.LoadCategories(ctx)
	assert.Equal(t, []domain.Category{
		{ID: "new-1", Name: "Work", Color: domain.DefaultCategoryColor},
		{ID: "c2", Name: "Home", Color: "#3b82f6"},
		{ID: "new-2", Name: "Reading", Color: domain.DefaultCategoryColor},
	}, got)

	assert.Equal(t, 1, logs.FilterMessage("promoted legacy categories").Len())
	assert.Equal(t, 1, logs.FilterMessage("ignoring unreadable stored value").Len())

	// promotion is not written back until the next save
	raw, _ := kv.Get(ctx, KeyCategories)
	assert.Contains(t, raw, `"Work"`)

	require.NoError(t, a.SaveCategories(ctx, got))
	assert.Equal(t, got, a.LoadCategories(ctx))
}

func TestTheme(t *testing.T) {
	ctx := context.Background()
	a, kv, _ := newObserved()

	require.NoError(t, a.SetTheme(ctx, domain.ThemeLight))
	raw, _ := kv.Get(ctx, KeyTheme)
	assert.Equal(t, "light", raw)
	assert.Equal(t, domain.ThemeLight, a.Theme(ctx))

	// a JSON-encoded string is accepted too
	require.NoError(t, kv.Set(ctx, KeyTheme, `"light"`))
	assert.Equal(t, domain.ThemeLight, a.Theme(ctx))
}
