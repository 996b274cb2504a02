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
)

// RegisterWriteTools adds all mutating tools to the MCP server.
func RegisterWriteTools(s *server.MCPServer, a *app.App) {
	s.AddTool(createResourceTool(), createResourceHandler(a))
	s.AddTool(updateResourceTool(), updateResourceHandler(a))
	s.AddTool(trashTool(), trashHandler(a))
	s.AddTool(restoreTool(), restoreHandler(a))
	s.AddTool(purgeTool(), purgeHandler(a))
	s.AddTool(emptyRecycleBinTool(), emptyRecycleBinHandler(a))
	s.AddTool(toggleFavoriteTool(), toggleFavoriteHandler(a))
	s.AddTool(toggleArchiveTool(), toggleArchiveHandler(a))
	s.AddTool(moveTool(), moveHandler(a))
	s.AddTool(createCategoryTool(), createCategoryHandler(a))
	s.AddTool(updateCategoryTool(), updateCategoryHandler(a))
	s.AddTool(deleteCategoryTool(), deleteCategoryHandler(a))
	s.AddTool(importTool(), importHandler(a))
}

// --- create_resource ---

func createResourceTool() mcp.Tool {
	return mcp.NewTool("create_resource",
		mcp.WithDescription("Create a link, note or to-do. Titles must be unique ignoring case."),
		mcp.WithString("title",
			mcp.Description("Resource title"),
			mcp.Required(),
		),
		mcp.WithString("type",
			mcp.Description("Resource type"),
			mcp.Enum("Link", "Note", "To Do"),
			mcp.Required(),
		),
		mcp.WithString("content", mcp.Description("Body text")),
		mcp.WithString("description", mcp.Description("Short summary")),
		mcp.WithString("url", mcp.Description("Target URL, required for links")),
		mcp.WithString("category", mcp.Description("Category name, stored as the first tag")),
		mcp.WithArray("tags", mcp.Description("Free-form tags"), mcp.WithStringItems()),
		mcp.WithString("due_date", mcp.Description("To Do only, YYYY-MM-DD")),
		mcp.WithString("due_time", mcp.Description("To Do only, HH:MM")),
		mcp.WithString("priority",
			mcp.Description("To Do only"),
			mcp.Enum("Low", "Medium", "High"),
		),
	)
}

func createResourceHandler(a *app.App) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		typ, err := domain.ParseResourceType(req.GetString("type", ""))
		if err != nil {
			return toolError(err)
		}
		priority, err := domain.ParsePriority(req.GetString("priority", ""))
		if err != nil {
			return toolError(err)
		}

		input := domain.ResourceInput{
			Title:       req.GetString("title", ""),
			Type:        typ,
			Content:     req.GetString("content", ""),
			Description: req.GetString("description", ""),
			URL:         req.GetString("url", ""),
			Tags:        req.GetStringSlice("tags", nil),
			DueDate:     req.GetString("due_date", ""),
			DueTime:     req.GetString("due_time", ""),
			Priority:    priority,
		}

		cmd := commands.NewCreateResourceCommand(a.Resources, input, req.GetString("category", ""))
		result, err := cmd.Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(fmt.Sprintf("%s (%s)", result.Message, result.Resource.ID)), nil
	}
}

// --- update_resource ---

func updateResourceTool() mcp.Tool {
	return mcp.NewTool("update_resource",
		mcp.WithDescription("Edit a resource. Only the fields passed are changed; type and creation date never change."),
		mcp.WithString("id",
			mcp.Description("Resource ID"),
			mcp.Required(),
		),
		mcp.WithString("title", mcp.Description("New title")),
		mcp.WithString("content", mcp.Description("New body text")),
		mcp.WithString("description", mcp.Description("New summary")),
		mcp.WithString("url", mcp.Description("New URL")),
		mcp.WithArray("tags", mcp.Description("Replacement tag list"), mcp.WithStringItems()),
		mcp.WithString("due_date", mcp.Description("To Do only")),
		mcp.WithString("due_time", mcp.Description("To Do only")),
		mcp.WithString("priority", mcp.Description("To Do only: Low, Medium, High or empty")),
	)
}

func updateResourceHandler(a *app.App) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		patch, err := patchFromRequest(req)
		if err != nil {
			return toolError(err)
		}

		result, err := commands.NewUpdateResourceCommand(a.Resources, req.GetString("id", ""), patch).Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(result.Message), nil
	}
}

// patchFromRequest sets only the fields present in the call arguments
func patchFromRequest(req mcp.CallToolRequest) (domain.ResourcePatch, error) {
	args := req.GetArguments()
	var patch domain.ResourcePatch

	str := func(key string) *string {
		if _, ok := args[key]; !ok {
			return nil
		}
		v := req.GetString(key, "")
		return &v
	}

	patch.Title = str("title")
	patch.Content = str("content")
	patch.Description = str("description")
	patch.URL = str("url")
	patch.DueDate = str("due_date")
	patch.DueTime = str("due_time")

	if _, ok := args["tags"]; ok {
		tags := req.GetStringSlice("tags", nil)
		patch.Tags = &tags
	}

	if raw := str("priority"); raw != nil {
		p, err := domain.ParsePriority(*raw)
		if err != nil {
			return patch, err
		}
		patch.Priority = &p
	}
	return patch, nil
}

// --- trash_resources ---

func trashTool() mcp.Tool {
	return mcp.NewTool("trash_resources",
		mcp.WithDescription("Move resources to the Recycle Bin. They can be restored later."),
		idsParam(),
	)
}

func trashHandler(a *app.App) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		result, err := commands.NewTrashCommand(a.Resources, req.GetStringSlice("ids", nil)...).Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(result.Message), nil
	}
}

// --- restore_resource ---

func restoreTool() mcp.Tool {
	return mcp.NewTool("restore_resource",
		mcp.WithDescription("Bring resources back from the Recycle Bin."),
		idsParam(),
	)
}

func restoreHandler(a *app.App) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		result, err := commands.NewRestoreCommand(a.Resources, req.GetStringSlice("ids", nil)...).Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(result.Message), nil
	}
}

// --- purge_resources ---

func purgeTool() mcp.Tool {
	return mcp.NewTool("purge_resources",
		mcp.WithDescription("Permanently delete resources. This cannot be undone."),
		idsParam(),
	)
}

func purgeHandler(a *app.App) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		result, err := commands.NewPurgeCommand(a.Resources, req.GetStringSlice("ids", nil)...).Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(result.Message), nil
	}
}

// --- empty_recycle_bin ---

func emptyRecycleBinTool() mcp.Tool {
	return mcp.NewTool("empty_recycle_bin",
		mcp.WithDescription("Permanently delete everything in the Recycle Bin."),
	)
}

func emptyRecycleBinHandler(a *app.App) server.ToolHandlerFunc {
	return func(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		result, err := commands.NewEmptyRecycleBinCommand(a.Resources).Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(result.Message), nil
	}
}

// --- toggle_favorite / toggle_archive ---

func toggleFavoriteTool() mcp.Tool {
	return mcp.NewTool("toggle_favorite",
		mcp.WithDescription("Flip the favorite flag of a resource."),
		mcp.WithString("id", mcp.Description("Resource ID"), mcp.Required()),
	)
}

func toggleFavoriteHandler(a *app.App) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		result, err := commands.NewToggleFavoriteCommand(a.Resources, req.GetString("id", "")).Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(result.Message), nil
	}
}

func toggleArchiveTool() mcp.Tool {
	return mcp.NewTool("toggle_archive",
		mcp.WithDescription("Move a resource into or out of the Archive."),
		mcp.WithString("id", mcp.Description("Resource ID"), mcp.Required()),
	)
}

func toggleArchiveHandler(a *app.App) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		result, err := commands.NewToggleArchiveCommand(a.Resources, req.GetString("id", "")).Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(result.Message), nil
	}
}

// --- move_to_category ---

func moveTool() mcp.Tool {
	return mcp.NewTool("move_to_category",
		mcp.WithDescription("Put resources in a category, replacing whatever category they had."),
		mcp.WithString("category",
			mcp.Description("Existing category name"),
			mcp.Required(),
		),
		idsParam(),
	)
}

func moveHandler(a *app.App) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		cmd := commands.NewMoveToCategoryCommand(a.Resources, a.Categories,
			req.GetString("category", ""), req.GetStringSlice("ids", nil)...)
		result, err := cmd.Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(result.Message), nil
	}
}

// --- categories ---

func createCategoryTool() mcp.Tool {
	return mcp.NewTool("create_category",
		mcp.WithDescription("Create a category. Names are unique ignoring case."),
		mcp.WithString("name", mcp.Description("Category name"), mcp.Required()),
		mcp.WithString("color", mcp.Description("Palette name (orange, red, green, blue, purple, pink, cyan, yellow) or #rrggbb")),
	)
}

func createCategoryHandler(a *app.App) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		cmd := commands.NewCreateCategoryCommand(a.Categories, req.GetString("name", ""), req.GetString("color", ""))
		result, err := cmd.Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(result.Message), nil
	}
}

func updateCategoryTool() mcp.Tool {
	return mcp.NewTool("update_category",
		mcp.WithDescription("Rename or recolor a category. Resources keep their old tag after a rename."),
		mcp.WithString("id", mcp.Description("Category ID"), mcp.Required()),
		mcp.WithString("name", mcp.Description("New name")),
		mcp.WithString("color", mcp.Description("New color")),
	)
}

func updateCategoryHandler(a *app.App) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		cmd := commands.NewUpdateCategoryCommand(a.Categories,
			req.GetString("id", ""), req.GetString("name", ""), req.GetString("color", ""))
		result, err := cmd.Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(result.Message), nil
	}
}

func deleteCategoryTool() mcp.Tool {
	return mcp.NewTool("delete_category",
		mcp.WithDescription("Delete a category. Resources tagged with it are left untouched."),
		mcp.WithString("id", mcp.Description("Category ID"), mcp.Required()),
	)
}

func deleteCategoryHandler(a *app.App) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		result, err := commands.NewDeleteCategoryCommand(a.Categories, req.GetString("id", "")).Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(result.Message), nil
	}
}

// --- import ---

func importTool() mcp.Tool {
	return mcp.NewTool("import",
		mcp.WithDescription("Import resources from a JSON payload (object or array), or one Markdown/PDF document as a note. Duplicate titles are skipped."),
		mcp.WithString("content",
			mcp.Description("Raw file content"),
			mcp.Required(),
		),
		mcp.WithString("file_name",
			mcp.Description("Original file name; a document import takes its title from it"),
		),
		mcp.WithString("format",
			mcp.Description("Payload format; inferred from file_name when omitted"),
			mcp.Enum("json", "md", "pdf"),
		),
	)
}

func importHandler(a *app.App) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var format codec.Format
		if raw := strings.TrimSpace(req.GetString("format", "")); raw != "" {
			f, err := codec.ParseFormat(raw)
			if err != nil {
				return toolError(err)
			}
			format = f
		}

		cmd := commands.NewImportCommand(a.Resources, a.Importer, a.Logger,
			req.GetString("content", ""), req.GetString("file_name", ""), format)
		result, err := cmd.Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(result.Message), nil
	}
}

// --- helpers ---

func idsParam() mcp.ToolOption {
	return mcp.WithArray("ids",
		mcp.Description("Resource IDs"),
		mcp.WithStringItems(),
		mcp.Required(),
	)
}
