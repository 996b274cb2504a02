package render

import (
	"strings"
	"testing"
	"time"

	"orbdyn/internal/domain"
	"orbdyn/internal/query"
)

func sample() (domain.Resource, []domain.Category) {
	res := domain.Resource{
		ID:        "1b9d6bcd-bbfd-4b2d-9b5d-ab8dfbbd4bed",
		Title:     "Ship release",
		Type:      domain.TypeTodo,
		Content:   "Tag and publish",
		CreatedAt: domain.NewTimestamp(time.Date(2024, 6, 1, 9, 0, 0, 0, time.Local)),
		Tags:      []string{"Work", "release"},
		Priority:  domain.PriorityHigh,
		DueDate:   "2024-06-07",
	}
	return res, []domain.Category{{ID: "c1", Name: "Work", Color: "#3b82f6"}}
}

func TestResourceLine(t *testing.T) {
	res, cats := sample()
	res.IsFavorite = true

	line := New(domain.ThemeDark).ResourceLine(res, cats)

	for _, want := range []string{"1b9d6bcd", "Ship release", "Work", "#release", "High", "★"} {
		if !strings.Contains(line, want) {
			t.Errorf("expected %q in %q", want, line)
		}
	}
	if strings.Contains(line, "#Work") {
		t.Errorf("category should render as a badge, not a tag: %q", line)
	}
}

func TestResourceDetail(t *testing.T) {
	res, cats := sample()

	for _, theme := range []domain.Theme{domain.ThemeLight, domain.ThemeDark} {
		out := New(theme).ResourceDetail(res, cats)
		for _, want := range []string{"Ship release", "To Do", "2024-06-07", "Tag and publish"} {
			if !strings.Contains(out, want) {
				t.Errorf("%s: expected %q in detail", theme, want)
			}
		}
	}
}

func TestResourceList_Empty(t *testing.T) {
	out := New(domain.ThemeDark).ResourceList("Favorites", nil, nil)
	if !strings.Contains(out, "Favorites (0)") || !strings.Contains(out, "Nothing here yet") {
		t.Errorf("unexpected empty list rendering: %q", out)
	}
}

func TestViews(t *testing.T) {
	_, cats := sample()
	counts := map[string]int{query.ViewAll: 4, "Work": 2}

	out := New(domain.ThemeDark).Views(cats, counts, "Work")
	for _, v := range query.BuiltinViews {
		if !strings.Contains(out, v) {
			t.Errorf("expected view %q listed", v)
		}
	}
	if !strings.Contains(out, "Work") {
		t.Error("expected the category view listed")
	}
}

func TestShortID(t *testing.T) {
	tests := map[string]string{
		"1b9d6bcd-bbfd-4b2d-9b5d-ab8dfbbd4bed": "1b9d6bcd",
		"legacy":                               "legacy",
		"":                                     "",
	}
	for in, want := range tests {
		if got := ShortID(in); got != want {
			t.Errorf("ShortID(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestPaletteFor(t *testing.T) {
	if PaletteFor(domain.ThemeLight) == PaletteFor(domain.ThemeDark) {
		t.Error("light and dark palettes should differ")
	}
}
