package query

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"orbdyn/internal/domain"
)

var base = time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)

func res(id, title string, typ domain.ResourceType, mods ...func(*domain.Resource)) domain.Resource {
	r := domain.Resource{
		ID:        id,
		Title:     title,
		Type:      typ,
		Content:   title + " body",
		CreatedAt: domain.NewTimestamp(base),
		Tags:      []string{},
	}
	for _, m := range mods {
		m(&r)
	}
	return r
}

func deleted(r *domain.Resource)  { r.IsDeleted = true }
func archived(r *domain.Resource) { r.IsArchived = true }
func favorite(r *domain.Resource) { r.IsFavorite = true }

func tagged(tags ...string) func(*domain.Resource) {
	return func(r *domain.Resource) { r.Tags = tags }
}

func at(t time.Time) func(*domain.Resource) {
	return func(r *domain.Resource) { r.CreatedAt = domain.NewTimestamp(t) }
}

func priority(p domain.Priority) func(*domain.Resource) {
	return func(r *domain.Resource) { r.Priority = p }
}

func ids(resources []domain.Resource) []string {
	out := make([]string, len(resources))
	for i, r := range resources {
		out[i] = r.ID
	}
	return out
}

func fixture() ([]domain.Resource, []domain.Category) {
	resources := []domain.Resource{
		res("1", "Go blog", domain.TypeLink, tagged("Work", "reading"), favorite),
		res("2", "Groceries", domain.TypeTodo, priority(domain.PriorityLow)),
		res("3", "Design Doc", domain.TypeNote, tagged("Work")),
		res("4", "Old idea", domain.TypeNote, archived),
		res("5", "Trash me", domain.TypeLink, deleted, tagged("Work")),
		res("6", "Archived then trashed", domain.TypeNote, archived, deleted),
	}
	categories := []domain.Category{{ID: "c1", Name: "Work", Color: "#3b82f6"}}
	return resources, categories
}

func TestRun_Views(t *testing.T) {
	resources, categories := fixture()

	tests := []struct {
		view string
		want []string
	}{
		{ViewAll, []string{"1", "2", "3"}},
		{"", []string{"1", "2", "3"}},
		{ViewLinks, []string{"1"}},
		{ViewNotes, []string{"3"}},
		{ViewTodo, []string{"2"}},
		{"todo", []string{"2"}},
		{ViewFavorites, []string{"1"}},
		{ViewArchive, []string{"4"}},
		{ViewRecycleBin, []string{"5", "6"}},
		{"trash", []string{"5", "6"}},
		{"Work", []string{"1", "3"}},
		{"Nonexistent", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.view, func(t *testing.T) {
			got := Run(resources, categories, Options{View: tt.view})
			assert.Equal(t, tt.want, ids(got))
		})
	}
}

func TestRun_RecycleBinPartition(t *testing.T) {
	resources, categories := fixture()

	bin := map[string]bool{}
	for _, r := range Run(resources, categories, Options{View: ViewRecycleBin}) {
		bin[r.ID] = true
	}

	views := append([]string{"Work"}, BuiltinViews...)
	for _, v := range views {
		if v == ViewRecycleBin {
			continue
		}
		for _, r := range Run(resources, categories, Options{View: v}) {
			assert.False(t, bin[r.ID], "resource %s in both %q and the recycle bin", r.ID, v)
		}
	}
}

func TestRun_Search(t *testing.T) {
	resources, categories := fixture()
	resources[1].Description = "milk and EGGS"

	tests := []struct {
		name   string
		search string
		want   []string
	}{
		{"empty matches all", "", []string{"1", "2", "3"}},
		{"title case-insensitive", "go BLOG", []string{"1"}},
		{"description", "eggs", []string{"2"}},
		{"content", "doc body", []string{"3"}},
		{"no match", "zzz", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Run(resources, categories, Options{Search: tt.search})
			assert.Equal(t, tt.want, ids(got))
		})
	}
}

func TestRun_CategoryFilter(t *testing.T) {
	resources, categories := fixture()

	got := Run(resources, categories, Options{View: ViewNotes, Category: "Work"})
	assert.Equal(t, []string{"3"}, ids(got))

	got = Run(resources, categories, Options{View: ViewRecycleBin, Category: "Work"})
	assert.Equal(t, []string{"5"}, ids(got))
}

func TestRun_DateBoundsAreInclusiveDays(t *testing.T) {
	day := time.Date(2024, 5, 20, 0, 0, 0, 0, time.UTC)
	resources := []domain.Resource{
		res("before", "Before", domain.TypeNote, at(day.Add(-time.Millisecond))),
		res("start", "Start", domain.TypeNote, at(day)),
		res("end", "End", domain.TypeNote, at(day.Add(24*time.Hour-time.Millisecond))),
		res("after", "After", domain.TypeNote, at(day.Add(24*time.Hour))),
	}

	noon := day.Add(12 * time.Hour)
	got := Run(resources, nil, Options{From: noon, To: noon})
	assert.Equal(t, []string{"start", "end"}, ids(got))

	got = Run(resources, nil, Options{From: noon})
	assert.Equal(t, []string{"start", "end", "after"}, ids(got))

	got = Run(resources, nil, Options{To: noon})
	assert.Equal(t, []string{"before", "start", "end"}, ids(got))
}

func TestDayBounds(t *testing.T) {
	loc := time.FixedZone("UTC+2", 2*60*60)
	from, to := DayBounds(
		time.Date(2024, 1, 2, 15, 4, 5, 6, loc),
		time.Date(2024, 1, 3, 1, 0, 0, 0, loc),
	)

	assert.Equal(t, time.Date(2024, 1, 2, 0, 0, 0, 0, loc), from)
	assert.Equal(t, time.Date(2024, 1, 3, 23, 59, 59, 999_000_000, loc), to)

	zf, zt := DayBounds(time.Time{}, time.Time{})
	assert.True(t, zf.IsZero())
	assert.True(t, zt.IsZero())
}

func TestRun_FiltersOnlyNarrow(t *testing.T) {
	resources, categories := fixture()

	baseOpts := Options{View: ViewAll}
	narrowers := []Options{
		{View: ViewAll, Search: "o"},
		{View: ViewAll, Category: "Work"},
		{View: ViewAll, From: base.Add(time.Hour)},
		{View: ViewAll, To: base.Add(-48 * time.Hour)},
		{View: ViewAll, Search: "o", Category: "Work", From: base},
	}

	all := len(Run(resources, categories, baseOpts))
	for _, opts := range narrowers {
		assert.LessOrEqual(t, len(Run(resources, categories, opts)), all)
	}
}

func TestRun_DoesNotMutateInput(t *testing.T) {
	resources, categories := fixture()
	before := ids(resources)

	got := Run(resources, categories, Options{Sort: SortTitleAZ})
	require.NotEmpty(t, got)
	got[0].Tags = append(got[0].Tags, "mutated")

	assert.Equal(t, before, ids(resources))
	assert.NotContains(t, resources[0].Tags, "mutated")
}

func TestCounts(t *testing.T) {
	resources, categories := fixture()

	counts := Counts(resources, categories)

	assert.Equal(t, 3, counts[ViewAll])
	assert.Equal(t, 1, counts[ViewLinks])
	assert.Equal(t, 1, counts[ViewNotes])
	assert.Equal(t, 1, counts[ViewTodo])
	assert.Equal(t, 1, counts[ViewFavorites])
	assert.Equal(t, 1, counts[ViewArchive])
	assert.Equal(t, 2, counts[ViewRecycleBin])
	assert.Equal(t, 2, counts["Work"])
}

func TestNormalizeView(t *testing.T) {
	tests := map[string]string{
		"":            ViewAll,
		"  all  ":     ViewAll,
		"Recycle Bin": ViewRecycleBin,
		"favourites":  ViewFavorites,
		"  Work ":     "Work",
		"To Do":       ViewTodo,
	}
	for in, want := range tests {
		assert.Equal(t, want, NormalizeView(in), "NormalizeView(%q)", in)
	}
}

func TestIsBuiltinView(t *testing.T) {
	tests := map[string]bool{
		"Recycle Bin": true,
		"Trash":       true,
		" bin ":       true,
		"todo":        true,
		"Link":        true,
		"archived":    true,
		"Favourites":  true,
		"all":         true,
		"":            false,
		"Work":        false,
		"Trash can":   false,
	}
	for in, want := range tests {
		assert.Equal(t, want, IsBuiltinView(in), "IsBuiltinView(%q)", in)
	}
}

func TestParseDay(t *testing.T) {
	day, err := ParseDay("2024-03-09")
	require.NoError(t, err)
	assert.Equal(t, 9, day.Day())
	assert.Equal(t, time.Local, day.Location())

	empty, err := ParseDay("  ")
	require.NoError(t, err)
	assert.True(t, empty.IsZero())

	_, err = ParseDay("09/03/2024")
	assert.Error(t, err)
}
