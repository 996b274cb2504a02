package codec

import (
	"encoding/json"
	"fmt"
	"strings"

	"orbdyn/internal/domain"
)

const exportTimeLayout = "2006-01-02 15:04"

// Export renders r in format
func Export(r domain.Resource, format Format) (string, error) {
	switch format {
	case FormatJSON:
		return exportJSON(r)
	case FormatMarkdown:
		return exportMarkdown(r), nil
	case FormatPDF:
		return exportPDF(r), nil
	default:
		return "", fmt.Errorf("unsupported format %q", format)
	}
}

func exportJSON(r domain.Resource) (string, error) {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to encode resource: %w", err)
	}
	return string(data), nil
}

func exportMarkdown(r domain.Resource) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s\n\n", r.Title)
	fmt.Fprintf(&b, "Type: %s\n", r.Type)
	if len(r.Tags) > 0 {
		fmt.Fprintf(&b, "Tags: %s\n", strings.Join(r.Tags, ", "))
	}
	if r.Type == domain.TypeTodo {
		writeTodoFields(&b, r)
	}
	b.WriteString("\n")

	if r.Description != "" {
		fmt.Fprintf(&b, "%s\n\n", r.Description)
	}
	b.WriteString(r.Content)
	b.WriteString("\n")

	if r.URL != "" {
		fmt.Fprintf(&b, "\nURL: %s\n", r.URL)
	}
	return b.String()
}

// exportPDF produces the plain-text document a PDF export is built from
func exportPDF(r domain.Resource) string {
	var b strings.Builder

	b.WriteString(r.Title + "\n")
	b.WriteString(strings.Repeat("=", max(len(r.Title), 3)) + "\n\n")
	fmt.Fprintf(&b, "Type: %s\n", r.Type)
	fmt.Fprintf(&b, "Created: %s\n", r.CreatedAt.Format(exportTimeLayout))
	if len(r.Tags) > 0 {
		fmt.Fprintf(&b, "Tags: %s\n", strings.Join(r.Tags, ", "))
	}
	if r.URL != "" {
		fmt.Fprintf(&b, "URL: %s\n", r.URL)
	}
	if r.Type == domain.TypeTodo {
		writeTodoFields(&b, r)
	}
	b.WriteString("\n")

	if r.Description != "" {
		fmt.Fprintf(&b, "Description:\n%s\n\n", r.Description)
	}
	fmt.Fprintf(&b, "Content:\n%s\n", r.Content)
	return b.String()
}

func writeTodoFields(b *strings.Builder, r domain.Resource) {
	if r.Priority != domain.PriorityNone {
		fmt.Fprintf(b, "Priority: %s\n", r.Priority)
	}
	if r.DueDate != "" {
		due := r.DueDate
		if r.DueTime != "" {
			due += " " + r.DueTime
		}
		fmt.Fprintf(b, "Due: %s\n", due)
	}
}
