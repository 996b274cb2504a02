// Package codec converts single resources to and from the exchange formats:
// pretty JSON, Markdown, and a plain-text stand-in for PDF.
package codec

import (
	"fmt"
	"path/filepath"
	"strings"

	"orbdyn/internal/domain"
)

// Format is an import/export file format
type Format string

const (
	FormatJSON     Format = "json"
	FormatMarkdown Format = "md"
	FormatPDF      Format = "pdf"
)

// Formats lists the supported formats
var Formats = []Format{FormatJSON, FormatMarkdown, FormatPDF}

// ParseFormat parses a format name
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimPrefix(strings.TrimSpace(s), ".")) {
	case "json":
		return FormatJSON, nil
	case "md", "markdown":
		return FormatMarkdown, nil
	case "pdf":
		return FormatPDF, nil
	default:
		return "", fmt.Errorf("unsupported format %q: expected json, md or pdf", s)
	}
}

// FormatFromPath infers the format from a file extension
func FormatFromPath(path string) (Format, error) {
	ext := filepath.Ext(path)
	if ext == "" {
		return "", fmt.Errorf("cannot infer format of %q: no extension", path)
	}
	return ParseFormat(ext)
}

// Ext returns the file extension, dot included
func (f Format) Ext() string {
	return "." + string(f)
}

var unsafeFileChars = strings.NewReplacer(
	"/", "-", "\\", "-", ":", "-", "*", "-", "?", "-",
	"\"", "-", "<", "-", ">", "-", "|", "-",
)

// FileName suggests a file name for exporting r as format. Re-importing a
// Markdown or PDF file under this name yields the same title.
func FileName(r domain.Resource, format Format) string {
	name := strings.TrimSpace(unsafeFileChars.Replace(r.Title))
	if name == "" {
		name = "resource"
	}
	return name + format.Ext()
}

// titleFromFileName strips directory and extension
func titleFromFileName(fileName string) string {
	base := filepath.Base(strings.TrimSpace(fileName))
	if base == "." || base == string(filepath.Separator) {
		return ""
	}
	return strings.TrimSpace(strings.TrimSuffix(base, filepath.Ext(base)))
}
