package commands

import (
	"context"
	"slices"
	"strings"

	"orbdyn/internal/domain"
	"orbdyn/internal/ports"
)

// MinSearchLength is the shortest query the fuzzy search answers
const MinSearchLength = 2

// SearchResult is a resource with its relevance score
type SearchResult struct {
	domain.Resource
	Score int
}

// SearchCommand ranks live resources by fuzzy relevance. It complements the
// substring filter of a list query: characters only have to appear in order.
type SearchCommand struct {
	repo  ports.ResourceRepository
	Query string
	Limit int
}

// NewSearchCommand creates a new SearchCommand
func NewSearchCommand(repo ports.ResourceRepository, query string, limit int) *SearchCommand {
	return &SearchCommand{
		repo:  repo,
		Query: query,
		Limit: limit,
	}
}

// Execute runs the search command and returns scored, sorted results
func (c *SearchCommand) Execute(ctx context.Context) ([]SearchResult, error) {
	q := strings.TrimSpace(c.Query)
	if len(q) < MinSearchLength {
		return nil, nil
	}

	var live []domain.Resource
	for _, r := range c.repo.List() {
		if !r.IsDeleted {
			live = append(live, r)
		}
	}

	results := FuzzySort(live, q)
	if c.Limit > 0 && len(results) > c.Limit {
		results = results[:c.Limit]
	}
	return results, nil
}

// FuzzyScore calculates a relevance score for how well target matches query
func FuzzyScore(target, query string) int {
	target = strings.ToLower(target)
	query = strings.ToLower(query)

	if len(query) == 0 {
		return 0
	}

	// Exact substring beats any scattered match
	if strings.Contains(target, query) {
		score := 100
		if strings.HasPrefix(target, query) {
			score += 50
		}
		return score
	}

	// Scattered match: every query byte must appear in order
	score := 0
	queryIdx := 0
	prevMatchIdx := -1

	for i := 0; i < len(target) && queryIdx < len(query); i++ {
		if target[i] != query[queryIdx] {
			continue
		}
		if prevMatchIdx == i-1 {
			score += 10 // consecutive
		}
		if i == 0 {
			score += 15
		}
		if i > 0 && isWordBoundary(target[i-1]) {
			score += 10
		}
		score++
		prevMatchIdx = i
		queryIdx++
	}

	if queryIdx == len(query) {
		return score
	}
	return 0
}

func isWordBoundary(b byte) bool {
	return b == ' ' || b == '.' || b == '-' || b == '_' || b == '/'
}

// FuzzySort scores resources against query and returns the matches, best
// first. Title matches get a small bonus over body matches.
func FuzzySort(resources []domain.Resource, query string) []SearchResult {
	scored := make([]SearchResult, 0, len(resources))

	for _, r := range resources {
		title := FuzzyScore(r.Title, query)
		if title > 0 {
			title += 5
		}
		best := max(
			title,
			FuzzyScore(r.Description, query),
			FuzzyScore(r.Content, query),
			FuzzyScore(strings.Join(r.Tags, " "), query),
		)

		if best > 0 {
			scored = append(scored, SearchResult{Resource: r, Score: best})
		}
	}

	slices.SortStableFunc(scored, func(a, b SearchResult) int {
		return b.Score - a.Score
	})

	return scored
}
