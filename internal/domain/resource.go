package domain

import (
	"fmt"
	"slices"
	"strings"
)

// ResourceType is the kind of a saved resource
type ResourceType string

const (
	TypeLink ResourceType = "Link"
	TypeNote ResourceType = "Note"
	TypeTodo ResourceType = "To Do"
)

// ResourceTypes lists every resource type in display order
var ResourceTypes = []ResourceType{TypeLink, TypeNote, TypeTodo}

// String returns the type label
func (t ResourceType) String() string {
	return string(t)
}

// Valid reports whether t is a known resource type
func (t ResourceType) Valid() bool {
	return slices.Contains(ResourceTypes, t)
}

// ParseResourceType accepts the canonical labels plus a few CLI-friendly
// spellings ("link", "note", "todo", "to-do").
func ParseResourceType(s string) (ResourceType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "link", "links":
		return TypeLink, nil
	case "note", "notes":
		return TypeNote, nil
	case "to do", "todo", "to-do", "todos":
		return TypeTodo, nil
	default:
		return "", fmt.Errorf("unknown resource type: %q", s)
	}
}

// Priority applies to To Do resources only
type Priority string

const (
	PriorityNone   Priority = ""
	PriorityLow    Priority = "Low"
	PriorityMedium Priority = "Medium"
	PriorityHigh   Priority = "High"
)

// Rank orders priorities for sorting: High < Medium < Low < unset.
func (p Priority) Rank() int {
	switch p {
	case PriorityHigh:
		return 0
	case PriorityMedium:
		return 1
	case PriorityLow:
		return 2
	default:
		return 3
	}
}

// ParsePriority parses a priority label case-insensitively. Empty input yields PriorityNone.
func ParsePriority(s string) (Priority, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "":
		return PriorityNone, nil
	case "low":
		return PriorityLow, nil
	case "medium":
		return PriorityMedium, nil
	case "high":
		return PriorityHigh, nil
	default:
		return PriorityNone, fmt.Errorf("unknown priority: %q", s)
	}
}

// Resource is a saved link, note or to-do.
//
// Categories are not a separate reference: a resource belongs to a category
// when the category name appears in Tags.
type Resource struct {
	ID          string       `json:"id"`
	Title       string       `json:"title"`
	Type        ResourceType `json:"type"`
	Content     string       `json:"content"`
	Description string       `json:"description,omitempty"`
	CreatedAt   Timestamp    `json:"createdAt"`
	Tags        []string     `json:"tags"`
	URL         string       `json:"url,omitempty"`
	Images      []string     `json:"images,omitempty"`
	Documents   []string     `json:"documents,omitempty"`
	DueDate     string       `json:"dueDate,omitempty"`
	DueTime     string       `json:"dueTime,omitempty"`
	Priority    Priority     `json:"priority,omitempty"`
	IsFavorite  bool         `json:"isFavorite"`
	IsArchived  bool         `json:"isArchived"`
	IsDeleted   bool         `json:"isDeleted"`
	DeletedAt   *Timestamp   `json:"deletedAt,omitempty"`
}

// HasTag reports whether the resource carries tag exactly
func (r *Resource) HasTag(tag string) bool {
	return slices.Contains(r.Tags, tag)
}

// SearchText is the haystack used by free-text search
func (r *Resource) SearchText() string {
	return r.Title + " " + r.Description + " " + r.Content
}

// Clone returns a deep copy so callers cannot mutate repository state
func (r Resource) Clone() Resource {
	r.Tags = slices.Clone(r.Tags)
	r.Images = slices.Clone(r.Images)
	r.Documents = slices.Clone(r.Documents)
	if r.DeletedAt != nil {
		at := *r.DeletedAt
		r.DeletedAt = &at
	}
	return r
}

// ResourceInput carries the fields for creating a resource
type ResourceInput struct {
	Title       string
	Type        ResourceType
	Content     string
	Description string
	Tags        []string
	URL         string
	Images      []string
	Documents   []string
	DueDate     string
	DueTime     string
	Priority    Priority
}

// ResourcePatch carries the fields an update may change. Nil fields are left as is.
// There is no way to change ID, Type or CreatedAt.
type ResourcePatch struct {
	Title       *string
	Content     *string
	Description *string
	Tags        *[]string
	URL         *string
	Images      *[]string
	Documents   *[]string
	DueDate     *string
	DueTime     *string
	Priority    *Priority
}

// Apply merges the patch into r
func (p ResourcePatch) Apply(r *Resource) {
	if p.Title != nil {
		r.Title = strings.TrimSpace(*p.Title)
	}
	if p.Content != nil {
		r.Content = *p.Content
	}
	if p.Description != nil {
		r.Description = *p.Description
	}
	if p.Tags != nil {
		r.Tags = CleanTags(*p.Tags)
	}
	if p.URL != nil {
		r.URL = strings.TrimSpace(*p.URL)
	}
	if p.Images != nil {
		r.Images = compact(*p.Images)
	}
	if p.Documents != nil {
		r.Documents = compact(*p.Documents)
	}
	if r.Type == TypeTodo {
		if p.DueDate != nil {
			r.DueDate = *p.DueDate
		}
		if p.DueTime != nil {
			r.DueTime = *p.DueTime
		}
		if p.Priority != nil {
			r.Priority = *p.Priority
		}
	}
}

// compact drops blank entries and returns nil for an empty result so that
// omitted JSON fields round-trip to the same value.
func compact(values []string) []string {
	var out []string
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}
