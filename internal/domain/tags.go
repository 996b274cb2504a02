package domain

import "strings"

// CleanTags trims tags, drops blanks and removes exact duplicates while
// keeping the first occurrence order. The result is never nil.
func CleanTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	seen := make(map[string]bool, len(tags))
	for _, t := range tags {
		t = strings.TrimSpace(t)
		if t == "" || seen[t] {
			continue
		}
		seen[t] = true
		out = append(out, t)
	}
	return out
}

// ParseTagList splits a comma-separated tag string
func ParseTagList(s string) []string {
	return CleanTags(strings.Split(s, ","))
}

// WithCategory builds the tag list for a resource placed in category:
// the category name first, then the free tags.
func WithCategory(category string, tags []string) []string {
	category = strings.TrimSpace(category)
	if category == "" {
		return CleanTags(tags)
	}
	return CleanTags(append([]string{category}, tags...))
}

// MoveToCategory strips every tag naming a known category and prepends
// target, so the result references exactly one category.
func MoveToCategory(tags []string, known map[string]bool, target string) []string {
	out := make([]string, 0, len(tags)+1)
	out = append(out, target)
	for _, t := range tags {
		if known[t] || t == target {
			continue
		}
		out = append(out, t)
	}
	return out
}
