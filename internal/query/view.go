package query

import (
	"strings"

	"orbdyn/internal/domain"
)

// Built-in view names. Any other view name selects the category of that name.
const (
	ViewAll        = "All Resources"
	ViewLinks      = "Links"
	ViewNotes      = "Notes"
	ViewTodo       = "To Do"
	ViewFavorites  = "Favorites"
	ViewArchive    = "Archive"
	ViewRecycleBin = "Recycle Bin"
)

// BuiltinViews lists the fixed views in sidebar order
var BuiltinViews = []string{ViewAll, ViewLinks, ViewNotes, ViewTodo, ViewFavorites, ViewArchive, ViewRecycleBin}

var viewAliases = map[string]string{
	"":              ViewAll,
	"all":           ViewAll,
	"all resources": ViewAll,
	"links":         ViewLinks,
	"link":          ViewLinks,
	"notes":         ViewNotes,
	"note":          ViewNotes,
	"to do":         ViewTodo,
	"todo":          ViewTodo,
	"todos":         ViewTodo,
	"favorites":     ViewFavorites,
	"favourites":    ViewFavorites,
	"archive":       ViewArchive,
	"archived":      ViewArchive,
	"recycle bin":   ViewRecycleBin,
	"bin":           ViewRecycleBin,
	"trash":         ViewRecycleBin,
}

// NormalizeView maps CLI spellings onto the canonical built-in view names;
// anything else is returned trimmed, to be matched against category names.
func NormalizeView(view string) string {
	if canonical, ok := viewAliases[strings.ToLower(strings.TrimSpace(view))]; ok {
		return canonical
	}
	return strings.TrimSpace(view)
}

// IsBuiltinView reports whether name, or any spelling NormalizeView accepts
// for it, selects a built-in view
func IsBuiltinView(name string) bool {
	if strings.TrimSpace(name) == "" {
		return false
	}
	canonical := NormalizeView(name)
	for _, v := range BuiltinViews {
		if strings.EqualFold(v, canonical) {
			return true
		}
	}
	return false
}

// viewPredicate returns the base partition for view. The recycle bin is the
// only view showing deleted resources. A view that is neither built in nor
// an existing category matches nothing.
func viewPredicate(view string, categories []domain.Category) func(*domain.Resource) bool {
	live := func(r *domain.Resource) bool { return !r.IsDeleted && !r.IsArchived }

	switch view {
	case ViewAll:
		return live
	case ViewLinks:
		return ofType(domain.TypeLink, live)
	case ViewNotes:
		return ofType(domain.TypeNote, live)
	case ViewTodo:
		return ofType(domain.TypeTodo, live)
	case ViewFavorites:
		return func(r *domain.Resource) bool { return r.IsFavorite && live(r) }
	case ViewArchive:
		return func(r *domain.Resource) bool { return r.IsArchived && !r.IsDeleted }
	case ViewRecycleBin:
		return func(r *domain.Resource) bool { return r.IsDeleted }
	}

	for _, c := range categories {
		if c.Name == view {
			return func(r *domain.Resource) bool { return r.HasTag(view) && live(r) }
		}
	}
	return func(*domain.Resource) bool { return false }
}

func ofType(t domain.ResourceType, base func(*domain.Resource) bool) func(*domain.Resource) bool {
	return func(r *domain.Resource) bool { return r.Type == t && base(r) }
}
