package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"orbdyn/internal/app"
	"orbdyn/internal/application/commands"
	"orbdyn/internal/codec"
	"orbdyn/internal/domain"
	"orbdyn/internal/query"
)

// RegisterReadTools adds all read-only tools to the MCP server.
func RegisterReadTools(s *server.MCPServer, a *app.App) {
	s.AddTool(listResourcesTool(), listResourcesHandler(a))
	s.AddTool(searchTool(), searchHandler(a))
	s.AddTool(getResourceTool(), getResourceHandler(a))
	s.AddTool(listCategoriesTool(), listCategoriesHandler(a))
	s.AddTool(viewsTool(), viewsHandler(a))
	s.AddTool(exportTool(), exportHandler(a))
}

// --- list_resources ---

func listResourcesTool() mcp.Tool {
	return mcp.NewTool("list_resources",
		mcp.WithDescription("List resources in a view (All Resources, Links, Notes, To Do, Favorites, Archive, Recycle Bin, or a category name), optionally filtered and sorted."),
		mcp.WithString("view",
			mcp.Description("View name. Defaults to All Resources."),
		),
		mcp.WithString("search",
			mcp.Description("Case-insensitive substring matched against title, description and content"),
		),
		mcp.WithString("category",
			mcp.Description("Only resources tagged with this category"),
		),
		mcp.WithString("from",
			mcp.Description("Earliest creation day, YYYY-MM-DD"),
		),
		mcp.WithString("to",
			mcp.Description("Latest creation day, YYYY-MM-DD"),
		),
		mcp.WithString("sort",
			mcp.Description("Sort order"),
			mcp.Enum(sortNames()...),
		),
	)
}

func listResourcesHandler(a *app.App) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		opts, err := queryOptions(req)
		if err != nil {
			return toolError(err)
		}

		result, err := commands.NewListResourcesCommand(a.Resources, a.Categories, opts).Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return formatEntities(result.Resources, formatResource)
	}
}

func queryOptions(req mcp.CallToolRequest) (query.Options, error) {
	opts := query.Options{
		View:     req.GetString("view", ""),
		Search:   req.GetString("search", ""),
		Category: req.GetString("category", ""),
	}

	sort, err := query.ParseSortOption(req.GetString("sort", ""))
	if err != nil {
		return opts, err
	}
	opts.Sort = sort

	if opts.From, err = query.ParseDay(req.GetString("from", "")); err != nil {
		return opts, err
	}
	if opts.To, err = query.ParseDay(req.GetString("to", "")); err != nil {
		return opts, err
	}
	return opts, nil
}

func sortNames() []string {
	names := make([]string, len(query.SortOptions))
	for i, s := range query.SortOptions {
		names[i] = string(s)
	}
	return names
}

// --- search ---

func searchTool() mcp.Tool {
	return mcp.NewTool("search",
		mcp.WithDescription("Fuzzy search over live resources. Returns the best matches first."),
		mcp.WithString("query",
			mcp.Description("Search query, at least two characters"),
			mcp.Required(),
		),
		mcp.WithNumber("limit",
			mcp.Description("Maximum number of results (default 20)"),
		),
	)
}

func searchHandler(a *app.App) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		q := req.GetString("query", "")
		if q == "" {
			return toolError(fmt.Errorf("query is required"))
		}

		results, err := commands.NewSearchCommand(a.Resources, q, req.GetInt("limit", 20)).Execute(ctx)
		if err != nil {
			return toolError(err)
		}

		if len(results) == 0 {
			return mcp.NewToolResultText("No results found."), nil
		}

		var sb strings.Builder
		for _, r := range results {
			fmt.Fprintf(&sb, "%s  %s  [%s]  score %d\n", r.ID, r.Title, r.Type, r.Score)
		}
		return mcp.NewToolResultText(sb.String()), nil
	}
}

// --- get_resource ---

func getResourceTool() mcp.Tool {
	return mcp.NewTool("get_resource",
		mcp.WithDescription("Show every field of one resource as JSON."),
		mcp.WithString("id",
			mcp.Description("Resource ID"),
			mcp.Required(),
		),
	)
}

func getResourceHandler(a *app.App) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		res, err := commands.NewGetResourceCommand(a.Resources, req.GetString("id", "")).Execute(ctx)
		if err != nil {
			return toolError(err)
		}

		out, err := codec.Export(res, codec.FormatJSON)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(out), nil
	}
}

// --- list_categories ---

func listCategoriesTool() mcp.Tool {
	return mcp.NewTool("list_categories",
		mcp.WithDescription("List categories with their colors."),
	)
}

func listCategoriesHandler(a *app.App) server.ToolHandlerFunc {
	return func(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		categories, err := commands.NewListCategoriesCommand(a.Categories).Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return formatEntities(categories, formatCategory)
	}
}

// --- views ---

func viewsTool() mcp.Tool {
	return mcp.NewTool("views",
		mcp.WithDescription("Count the resources in every built-in view and category view."),
	)
}

func viewsHandler(a *app.App) server.ToolHandlerFunc {
	return func(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		categories := a.Categories.List()
		counts := query.Counts(a.Resources.List(), categories)

		var sb strings.Builder
		for _, v := range query.BuiltinViews {
			fmt.Fprintf(&sb, "%s  %d\n", v, counts[v])
		}
		for _, c := range categories {
			fmt.Fprintf(&sb, "%s  %d\n", c.Name, counts[c.Name])
		}
		return mcp.NewToolResultText(sb.String()), nil
	}
}

// --- export_resource ---

func exportTool() mcp.Tool {
	return mcp.NewTool("export_resource",
		mcp.WithDescription("Export one resource as JSON, Markdown or a plain-text PDF body."),
		mcp.WithString("id",
			mcp.Description("Resource ID"),
			mcp.Required(),
		),
		mcp.WithString("format",
			mcp.Description("Export format (default json)"),
			mcp.Enum("json", "md", "pdf"),
		),
	)
}

func exportHandler(a *app.App) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		format, err := codec.ParseFormat(req.GetString("format", string(codec.FormatJSON)))
		if err != nil {
			return toolError(err)
		}

		result, err := commands.NewExportCommand(a.Resources, req.GetString("id", ""), format).Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(result.Content), nil
	}
}

// --- helpers ---

func toolError(err error) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultError(err.Error()), nil
}

func formatEntities[T any](entities []T, format func(T) string) (*mcp.CallToolResult, error) {
	if len(entities) == 0 {
		return mcp.NewToolResultText("No results."), nil
	}
	var sb strings.Builder
	for _, e := range entities {
		sb.WriteString(format(e))
		sb.WriteByte('\n')
	}
	return mcp.NewToolResultText(sb.String()), nil
}

func formatResource(r domain.Resource) string {
	line := fmt.Sprintf("%s  %s  [%s]", r.ID, r.Title, r.Type)
	if len(r.Tags) > 0 {
		line += "  #" + strings.Join(r.Tags, " #")
	}
	if r.IsFavorite {
		line += "  ★"
	}
	return line
}

func formatCategory(c domain.Category) string {
	return fmt.Sprintf("%s  %s  %s", c.ID, c.Name, c.Color)
}
