// Package query filters and orders resources for every list surface.
//
// Run is a pure function over a snapshot of the collection: a view selects
// the base partition, then search, category and date predicates narrow it,
// and the chosen comparator orders what is left.
package query

import (
	"fmt"
	"strings"
	"time"

	"orbdyn/internal/domain"
)

// Options describe one query. The zero value lists the All Resources view in
// natural order.
type Options struct {
	View     string
	Search   string
	Category string
	From     time.Time
	To       time.Time
	Sort     SortOption
}

// Run returns the resources matching opts, ordered by opts.Sort.
// The input slice is never modified.
func Run(resources []domain.Resource, categories []domain.Category, opts Options) []domain.Resource {
	match := Predicate(categories, opts)

	out := make([]domain.Resource, 0, len(resources))
	for i := range resources {
		if match(&resources[i]) {
			out = append(out, resources[i].Clone())
		}
	}

	Sort(out, opts.Sort)
	return out
}

// Predicate composes the filters of opts into a single test
func Predicate(categories []domain.Category, opts Options) func(*domain.Resource) bool {
	view := viewPredicate(NormalizeView(opts.View), categories)
	needle := strings.ToLower(strings.TrimSpace(opts.Search))
	category := strings.TrimSpace(opts.Category)
	from, to := DayBounds(opts.From, opts.To)

	return func(r *domain.Resource) bool {
		if !view(r) {
			return false
		}
		if needle != "" && !strings.Contains(strings.ToLower(r.SearchText()), needle) {
			return false
		}
		if category != "" && !r.HasTag(category) {
			return false
		}
		if !from.IsZero() && r.CreatedAt.Before(from) {
			return false
		}
		if !to.IsZero() && r.CreatedAt.After(to) {
			return false
		}
		return true
	}
}

// DayBounds widens from to the start of its day and to to the last
// millisecond of its day, each in its own location. Zero bounds stay zero.
func DayBounds(from, to time.Time) (time.Time, time.Time) {
	if !from.IsZero() {
		y, m, d := from.Date()
		from = time.Date(y, m, d, 0, 0, 0, 0, from.Location())
	}
	if !to.IsZero() {
		y, m, d := to.Date()
		to = time.Date(y, m, d, 23, 59, 59, int(999*time.Millisecond), to.Location())
	}
	return from, to
}

// ParseDay parses a YYYY-MM-DD day in local time. Empty input yields the
// zero time, which leaves that bound open.
func ParseDay(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, nil
	}
	t, err := time.ParseInLocation(time.DateOnly, s, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, expected YYYY-MM-DD", s)
	}
	return t, nil
}

// Counts returns how many resources each built-in view and each category
// view holds, keyed by view name.
func Counts(resources []domain.Resource, categories []domain.Category) map[string]int {
	counts := make(map[string]int, len(BuiltinViews)+len(categories))

	views := make(map[string]func(*domain.Resource) bool, len(BuiltinViews)+len(categories))
	for _, v := range BuiltinViews {
		views[v] = viewPredicate(v, categories)
	}
	for _, c := range categories {
		if _, builtin := views[c.Name]; !builtin {
			views[c.Name] = viewPredicate(c.Name, categories)
		}
	}

	for name, match := range views {
		counts[name] = 0
		for i := range resources {
			if match(&resources[i]) {
				counts[name]++
			}
		}
	}
	return counts
}
