package domain

import "strings"

// NormalizeTitle is the comparison key for title uniqueness
func NormalizeTitle(title string) string {
	return strings.ToLower(strings.TrimSpace(title))
}

// IsDuplicateTitle reports whether candidate collides case-insensitively with
// any resource title, trashed ones included. The resource with excludingID
// (the one being edited) is ignored; pass "" to check against everything.
func IsDuplicateTitle(resources []Resource, candidate, excludingID string) bool {
	key := NormalizeTitle(candidate)
	for i := range resources {
		if excludingID != "" && resources[i].ID == excludingID {
			continue
		}
		if NormalizeTitle(resources[i].Title) == key {
			return true
		}
	}
	return false
}

// TitleIndex is a set of normalized titles
type TitleIndex map[string]struct{}

// NewTitleIndex indexes the titles of resources
func NewTitleIndex(resources []Resource) TitleIndex {
	idx := make(TitleIndex, len(resources))
	for _, r := range resources {
		idx.Add(r.Title)
	}
	return idx
}

// Has reports whether title is in the index
func (idx TitleIndex) Has(title string) bool {
	_, ok := idx[NormalizeTitle(title)]
	return ok
}

// Add inserts title into the index
func (idx TitleIndex) Add(title string) {
	idx[NormalizeTitle(title)] = struct{}{}
}
