package application

import (
	"fmt"
	"strings"

	"orbdyn/internal/domain"
)

// ValidateRequired checks if a string field is non-empty (after trimming whitespace).
// Returns a ValidationError if the field is empty.
func ValidateRequired(fieldName, value string) error {
	if strings.TrimSpace(value) == "" {
		displayName := formatFieldName(fieldName)
		return &ValidationError{
			Field:   fieldName,
			Message: fmt.Sprintf("%s is required", displayName),
		}
	}
	return nil
}

// formatFieldName converts camelCase field names to space-separated words
// for more readable error messages (e.g., "categoryName" -> "category name")
func formatFieldName(fieldName string) string {
	replacements := map[string]string{
		"id":           "ID",
		"ids":          "at least one ID",
		"resourceID":   "resource ID",
		"categoryID":   "category ID",
		"categoryName": "category name",
		"title":        "title",
		"url":          "URL",
		"name":         "name",
		"query":        "query",
	}

	if formatted, ok := replacements[fieldName]; ok {
		return formatted
	}

	return fieldName
}

// ValidateIDs checks that at least one non-blank id was given
func ValidateIDs(fieldName string, ids []string) error {
	for _, id := range ids {
		if strings.TrimSpace(id) != "" {
			return nil
		}
	}
	return &ValidationError{
		Field:   fieldName,
		Message: fmt.Sprintf("%s is required", formatFieldName(fieldName)),
	}
}

// ValidateResourceType checks the type is one of Link, Note, To Do
func ValidateResourceType(fieldName string, t domain.ResourceType) error {
	if !t.Valid() {
		return &ValidationError{
			Field:   fieldName,
			Message: fmt.Sprintf("expected Link, Note or To Do, got: %q", t),
		}
	}
	return nil
}
