package query

import (
	"fmt"
	"slices"
	"strings"

	"orbdyn/internal/domain"
)

// SortOption selects a comparator
type SortOption string

const (
	SortCustom         SortOption = "custom"
	SortTitleAZ        SortOption = "title-az"
	SortTitleZA        SortOption = "title-za"
	SortDateNewest     SortOption = "date-newest"
	SortDateOldest     SortOption = "date-oldest"
	SortFavoritesFirst SortOption = "favorites-first"
	SortPriorityHigh   SortOption = "priority-high"
	SortType           SortOption = "type"
)

// SortOptions lists every option
var SortOptions = []SortOption{
	SortCustom, SortTitleAZ, SortTitleZA, SortDateNewest, SortDateOldest,
	SortFavoritesFirst, SortPriorityHigh, SortType,
}

// ParseSortOption parses a sort option; empty selects SortCustom
func ParseSortOption(s string) (SortOption, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return SortCustom, nil
	}
	if slices.Contains(SortOptions, SortOption(s)) {
		return SortOption(s), nil
	}
	return "", fmt.Errorf("unknown sort option: %q", s)
}

// Sort orders resources in place. Every comparator is stable, so ties keep
// the collection's natural (newest-first) order.
func Sort(resources []domain.Resource, opt SortOption) {
	cmp := comparator(opt)
	if cmp == nil {
		return
	}
	slices.SortStableFunc(resources, cmp)
}

func comparator(opt SortOption) func(a, b domain.Resource) int {
	switch opt {
	case SortTitleAZ:
		return compareTitles
	case SortTitleZA:
		return func(a, b domain.Resource) int { return compareTitles(b, a) }
	case SortDateNewest:
		return func(a, b domain.Resource) int { return b.CreatedAt.Compare(a.CreatedAt.Time) }
	case SortDateOldest:
		return func(a, b domain.Resource) int { return a.CreatedAt.Compare(b.CreatedAt.Time) }
	case SortFavoritesFirst:
		return func(a, b domain.Resource) int { return boolRank(b.IsFavorite) - boolRank(a.IsFavorite) }
	case SortPriorityHigh:
		return func(a, b domain.Resource) int { return priorityRank(a) - priorityRank(b) }
	case SortType:
		return func(a, b domain.Resource) int { return strings.Compare(string(a.Type), string(b.Type)) }
	default:
		return nil
	}
}

func compareTitles(a, b domain.Resource) int {
	if c := strings.Compare(strings.ToLower(a.Title), strings.ToLower(b.Title)); c != 0 {
		return c
	}
	return strings.Compare(a.Title, b.Title)
}

// priorityRank puts resources that are not To Do after every To Do, set or not
func priorityRank(r domain.Resource) int {
	if r.Type != domain.TypeTodo {
		return 4
	}
	return r.Priority.Rank()
}

func boolRank(b bool) int {
	if b {
		return 1
	}
	return 0
}
