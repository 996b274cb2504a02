package codec

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"orbdyn/internal/application"
	"orbdyn/internal/domain"
)

// Defaults applied to imported JSON records that leave a field out
const (
	DefaultImportTitle   = "Untitled Resource"
	DefaultImportContent = "Imported resource"
	DefaultImportTag     = "Imported"
)

// PartialResource is an imported JSON record before defaults are applied.
// Type stays a plain string so an unknown type can fall back to Note.
type PartialResource struct {
	ID          string            `json:"id"`
	Title       string            `json:"title"`
	Type        string            `json:"type"`
	Content     string            `json:"content"`
	Description string            `json:"description"`
	CreatedAt   *domain.Timestamp `json:"createdAt"`
	Tags        []string          `json:"tags"`
	URL         string            `json:"url"`
	Images      []string          `json:"images"`
	Documents   []string          `json:"documents"`
	DueDate     string            `json:"dueDate"`
	DueTime     string            `json:"dueTime"`
	Priority    string            `json:"priority"`
	IsFavorite  bool              `json:"isFavorite"`
	IsArchived  bool              `json:"isArchived"`
}

// Fill turns p into a complete resource:
//
//   - a blank title becomes DefaultImportTitle
//   - a missing or unknown type becomes Note
//   - blank content becomes the URL, or DefaultImportContent without one
//   - no tags becomes [DefaultImportTag]
//   - a To Do without a valid priority gets Medium; other types never carry
//     due or priority fields
//
// The id and createdAt are kept when present and generated otherwise.
// Imported resources always arrive live.
func Fill(p PartialResource, newID func() string, now time.Time) domain.Resource {
	r := domain.Resource{
		ID:          strings.TrimSpace(p.ID),
		Title:       strings.TrimSpace(p.Title),
		Content:     p.Content,
		Description: p.Description,
		URL:         strings.TrimSpace(p.URL),
		IsFavorite:  p.IsFavorite,
		IsArchived:  p.IsArchived,
	}

	if r.ID == "" {
		r.ID = newID()
	}
	if r.Title == "" {
		r.Title = DefaultImportTitle
	}

	r.Type = domain.TypeNote
	if t, err := domain.ParseResourceType(p.Type); err == nil {
		r.Type = t
	}

	if p.CreatedAt != nil && !p.CreatedAt.IsZero() {
		r.CreatedAt = *p.CreatedAt
	} else {
		r.CreatedAt = domain.NewTimestamp(now)
	}

	if strings.TrimSpace(r.Content) == "" {
		r.Content = r.URL
		if r.Content == "" {
			r.Content = DefaultImportContent
		}
	}

	r.Tags = domain.CleanTags(p.Tags)
	if len(r.Tags) == 0 {
		r.Tags = []string{DefaultImportTag}
	}

	priority, err := domain.ParsePriority(p.Priority)
	if err != nil || priority == domain.PriorityNone {
		priority = domain.PriorityMedium
	}
	domain.ResourcePatch{
		Images:    &p.Images,
		Documents: &p.Documents,
		DueDate:   &p.DueDate,
		DueTime:   &p.DueTime,
		Priority:  &priority,
	}.Apply(&r)

	return r
}

// ImportResult lists the candidates accepted and the titles rejected as duplicates
type ImportResult struct {
	Accepted   []domain.Resource
	Duplicates []string
}

// Importer parses import payloads into candidate resources
type Importer struct {
	NewID func() string
	Now   func() time.Time
}

// NewImporter returns an Importer using random ids and the wall clock
func NewImporter() *Importer {
	return &Importer{NewID: domain.NewID, Now: time.Now}
}

// Import parses raw as format and checks each candidate title against
// existing and against titles accepted earlier in the same batch.
//
// A malformed JSON payload returns an *application.ImportParseError. A
// Markdown or PDF file is a single Note titled after fileName; if that title
// is taken the result lists it as a duplicate and a
// *application.DuplicateTitleError is returned alongside.
func (im *Importer) Import(raw, fileName string, format Format, existing domain.TitleIndex) (*ImportResult, error) {
	if existing == nil {
		existing = domain.TitleIndex{}
	}

	switch format {
	case FormatJSON:
		return im.importJSON(raw, existing)
	case FormatMarkdown, FormatPDF:
		return im.importDocument(raw, fileName, existing)
	default:
		return nil, fmt.Errorf("unsupported format %q", format)
	}
}

func (im *Importer) importJSON(raw string, existing domain.TitleIndex) (*ImportResult, error) {
	records, err := decodeRecords([]byte(raw))
	if err != nil {
		return nil, &application.ImportParseError{Format: string(FormatJSON), Err: err}
	}

	now := im.Now()
	seen := domain.TitleIndex{}
	result := &ImportResult{}

	for _, p := range records {
		r := Fill(p, im.NewID, now)
		if existing.Has(r.Title) || seen.Has(r.Title) {
			result.Duplicates = append(result.Duplicates, r.Title)
			continue
		}
		seen.Add(r.Title)
		result.Accepted = append(result.Accepted, r)
	}
	return result, nil
}

// decodeRecords accepts a single object or an array of objects
func decodeRecords(data []byte) ([]PartialResource, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return nil, fmt.Errorf("empty payload")
	}

	if data[0] == '[' {
		var records []PartialResource
		if err := json.Unmarshal(data, &records); err != nil {
			return nil, err
		}
		return records, nil
	}

	var record PartialResource
	if err := json.Unmarshal(data, &record); err != nil {
		return nil, err
	}
	return []PartialResource{record}, nil
}

func (im *Importer) importDocument(raw, fileName string, existing domain.TitleIndex) (*ImportResult, error) {
	title := titleFromFileName(fileName)
	if title == "" {
		title = DefaultImportTitle
	}

	if existing.Has(title) {
		return &ImportResult{Duplicates: []string{title}},
			&application.DuplicateTitleError{Titles: []string{title}}
	}

	content := raw
	if strings.TrimSpace(content) == "" {
		content = DefaultImportContent
	}

	r := domain.Resource{
		ID:        im.NewID(),
		Title:     title,
		Type:      domain.TypeNote,
		Content:   content,
		CreatedAt: domain.NewTimestamp(im.Now()),
		Tags:      []string{DefaultImportTag},
	}
	return &ImportResult{Accepted: []domain.Resource{r}}, nil
}
