// Package render formats resources and categories for the terminal
package render

import (
	"fmt"
	"strings"

	"orbdyn/internal/domain"
	"orbdyn/internal/query"
)

const dateLayout = "2006-01-02"

// Renderer formats domain values with the styles of one theme
type Renderer struct {
	styles Styles
}

// New creates a Renderer for theme
func New(theme domain.Theme) *Renderer {
	return &Renderer{styles: NewStyles(theme)}
}

// Styles exposes the styles for ad-hoc messages
func (r *Renderer) Styles() Styles {
	return r.styles
}

var typeIcons = map[domain.ResourceType]string{
	domain.TypeLink: "🔗",
	domain.TypeNote: "📝",
	domain.TypeTodo: "☑",
}

// ResourceLine renders one resource on a single line:
// icon, short id, title, category badge, tags, flags
func (r *Renderer) ResourceLine(res domain.Resource, categories []domain.Category) string {
	var b strings.Builder
	s := r.styles

	b.WriteString(typeIcons[res.Type])
	b.WriteString(" ")
	b.WriteString(s.Muted.Render(ShortID(res.ID)))
	b.WriteString(" ")
	b.WriteString(s.Text.Bold(true).Render(res.Title))

	if cat, ok := domain.CategoryOf(&res, categories); ok {
		b.WriteString(" ")
		b.WriteString(s.CategoryBadge(cat))
	}

	if free := freeTags(res, categories); len(free) > 0 {
		b.WriteString(" ")
		b.WriteString(s.Muted.Render("#" + strings.Join(free, " #")))
	}

	if res.Type == domain.TypeTodo && res.Priority != domain.PriorityNone {
		b.WriteString(" ")
		b.WriteString(s.Priority(res.Priority))
	}
	if res.IsFavorite {
		b.WriteString(" ")
		b.WriteString(s.Favorite.Render("★"))
	}
	if res.IsArchived {
		b.WriteString(" ")
		b.WriteString(s.Subtitle.Render("(archived)"))
	}
	if res.IsDeleted && res.DeletedAt != nil {
		b.WriteString(" ")
		b.WriteString(s.Subtitle.Render("deleted " + res.DeletedAt.Format(dateLayout)))
	}

	return b.String()
}

// ResourceList renders a titled list, or a muted placeholder when empty
func (r *Renderer) ResourceList(title string, resources []domain.Resource, categories []domain.Category) string {
	var b strings.Builder

	b.WriteString(r.styles.Title.Render(fmt.Sprintf("%s (%d)", title, len(resources))))
	b.WriteString("\n")

	if len(resources) == 0 {
		b.WriteString(r.styles.Subtitle.Render("Nothing here yet"))
		b.WriteString("\n")
		return b.String()
	}

	for _, res := range resources {
		b.WriteString(r.ResourceLine(res, categories))
		b.WriteString("\n")
	}
	return b.String()
}

// ResourceDetail renders every field of a resource in a bordered box
func (r *Renderer) ResourceDetail(res domain.Resource, categories []domain.Category) string {
	s := r.styles
	var b strings.Builder

	b.WriteString(s.Title.Render(res.Title))
	b.WriteString("\n")
	field := func(label, value string) {
		if value == "" {
			return
		}
		b.WriteString(s.Label.Render(label+":") + " " + value + "\n")
	}

	field("ID", res.ID)
	field("Type", res.Type.String())
	field("Created", res.CreatedAt.Format("2006-01-02 15:04"))
	if cat, ok := domain.CategoryOf(&res, categories); ok {
		field("Category", s.CategoryBadge(cat))
	}
	field("Tags", strings.Join(res.Tags, ", "))
	field("URL", res.URL)
	if res.Type == domain.TypeTodo {
		field("Priority", s.Priority(res.Priority))
		field("Due", strings.TrimSpace(res.DueDate+" "+res.DueTime))
	}
	field("Images", strings.Join(res.Images, ", "))
	field("Documents", strings.Join(res.Documents, ", "))

	var flags []string
	if res.IsFavorite {
		flags = append(flags, "favorite")
	}
	if res.IsArchived {
		flags = append(flags, "archived")
	}
	if res.IsDeleted {
		flags = append(flags, "in Recycle Bin")
	}
	field("Status", strings.Join(flags, ", "))

	if res.Description != "" {
		b.WriteString("\n" + s.Subtitle.Render(res.Description) + "\n")
	}
	b.WriteString("\n" + res.Content)

	return s.Box.Render(b.String())
}

// Categories renders the category list with color chips
func (r *Renderer) Categories(categories []domain.Category, counts map[string]int) string {
	var b strings.Builder
	b.WriteString(r.styles.Title.Render("Categories"))
	b.WriteString("\n")

	if len(categories) == 0 {
		b.WriteString(r.styles.Subtitle.Render("No categories"))
		b.WriteString("\n")
		return b.String()
	}

	for _, c := range categories {
		fmt.Fprintf(&b, "%s %s %s\n",
			r.styles.CategoryBadge(c),
			r.styles.Muted.Render(ShortID(c.ID)),
			r.styles.Muted.Render(fmt.Sprintf("%d", counts[c.Name])))
	}
	return b.String()
}

// Views renders the built-in views followed by the category views, each with its count
func (r *Renderer) Views(categories []domain.Category, counts map[string]int, active string) string {
	var b strings.Builder

	line := func(name string) {
		label := fmt.Sprintf("%-16s %3d", name, counts[name])
		if name == active {
			b.WriteString(r.styles.Title.Render("› " + label))
		} else {
			b.WriteString("  " + r.styles.Text.Render(label))
		}
		b.WriteString("\n")
	}

	for _, v := range query.BuiltinViews {
		line(v)
	}
	if len(categories) > 0 {
		b.WriteString(r.styles.Muted.Render("  ── categories ──"))
		b.WriteString("\n")
		for _, c := range categories {
			line(c.Name)
		}
	}
	return b.String()
}

// ShortID abbreviates a uuid to its first block
func ShortID(id string) string {
	if i := strings.IndexByte(id, '-'); i > 0 {
		return id[:i]
	}
	return id
}

// freeTags are the tags that do not name a category
func freeTags(res domain.Resource, categories []domain.Category) []string {
	names := domain.CategoryNames(categories)
	var out []string
	for _, t := range res.Tags {
		if !names[t] {
			out = append(out, t)
		}
	}
	return out
}
