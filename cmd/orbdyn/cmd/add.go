package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"orbdyn/internal/application/commands"
	"orbdyn/internal/domain"
)

var (
	resType        string
	resContent     string
	resDescription string
	resURL         string
	resTags        string
	resCategory    string
	resDue         string
	resDueTime     string
	resPriority    string
	useEditor      bool
)

var addCmd = &cobra.Command{
	Use:   "add <title>",
	Short: "Add a link, note or to-do",
	Long: `Add a resource. Titles are unique ignoring case, including the
resources in the recycle bin.

Examples:
  orbdyn add "Go blog" --type link --url https://go.dev/blog --category Reading
  orbdyn add "Meeting notes" --editor --tags work,weekly
  orbdyn add "File taxes" --type todo --due 2024-04-15 --priority high`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		typ, err := domain.ParseResourceType(resType)
		if err != nil {
			return err
		}
		priority, err := domain.ParsePriority(resPriority)
		if err != nil {
			return err
		}

		content := resContent
		if useEditor {
			if content, err = composer.Compose(content); err != nil {
				return err
			}
		}

		input := domain.ResourceInput{
			Title:       args[0],
			Type:        typ,
			Content:     content,
			Description: resDescription,
			Tags:        domain.ParseTagList(resTags),
			URL:         resURL,
			DueDate:     resDue,
			DueTime:     resDueTime,
			Priority:    priority,
		}

		createCmd := commands.NewCreateResourceCommand(GetApp().Resources, input, resCategory)
		result, err := createCmd.Execute(cmd.Context())
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), result.Message)
		return nil
	},
}

var editCmd = &cobra.Command{
	Use:   "edit <id>",
	Short: "Edit a resource",
	Long: `Edit the fields of a resource. Only the flags given are changed.
The type and creation date of a resource never change.

Examples:
  orbdyn edit 1b9d6bcd --title "Go blog (archive)"
  orbdyn edit 1b9d6bcd --editor
  orbdyn edit 1b9d6bcd --tags "" --priority low`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := resolveResource(args[0])
		if err != nil {
			return err
		}

		patch, err := patchFromFlags(cmd, id)
		if err != nil {
			return err
		}

		updateCmd := commands.NewUpdateResourceCommand(GetApp().Resources, id, patch)
		result, err := updateCmd.Execute(cmd.Context())
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), result.Message)
		return nil
	},
}

var editTitle string

// patchFromFlags turns the changed flags into a patch. --editor opens the
// current content for editing.
func patchFromFlags(cmd *cobra.Command, id string) (domain.ResourcePatch, error) {
	var patch domain.ResourcePatch
	flags := cmd.Flags()

	str := func(name string, value string) *string {
		if !flags.Changed(name) {
			return nil
		}
		return &value
	}

	patch.Title = str("title", editTitle)
	patch.Content = str("content", resContent)
	patch.Description = str("description", resDescription)
	patch.URL = str("url", resURL)
	patch.DueDate = str("due", resDue)
	patch.DueTime = str("time", resDueTime)

	if flags.Changed("tags") {
		tags := domain.ParseTagList(resTags)
		patch.Tags = &tags
	}

	if flags.Changed("priority") {
		p, err := domain.ParsePriority(resPriority)
		if err != nil {
			return patch, err
		}
		patch.Priority = &p
	}

	if useEditor {
		current, err := GetApp().Resources.Get(id)
		if err != nil {
			return patch, err
		}
		initial := current.Content
		if patch.Content != nil {
			initial = *patch.Content
		}
		content, err := composer.Compose(initial)
		if err != nil {
			return patch, err
		}
		patch.Content = &content
	}

	return patch, nil
}

func init() {
	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(editCmd)

	addCmd.Flags().StringVarP(&resType, "type", "t", "note", "link, note or todo")
	addCmd.Flags().StringVarP(&resCategory, "category", "c", "", "category name, stored as the first tag")
	editCmd.Flags().StringVar(&editTitle, "title", "", "new title")

	for _, c := range []*cobra.Command{addCmd, editCmd} {
		f := c.Flags()
		f.StringVar(&resContent, "content", "", "body text")
		f.StringVar(&resDescription, "description", "", "short summary")
		f.StringVar(&resURL, "url", "", "target URL (required for links)")
		f.StringVar(&resTags, "tags", "", "comma-separated tags")
		f.StringVar(&resDue, "due", "", "due date YYYY-MM-DD (to-dos only)")
		f.StringVar(&resDueTime, "time", "", "due time HH:MM (to-dos only)")
		f.StringVarP(&resPriority, "priority", "p", "", "low, medium or high (to-dos only)")
		f.BoolVarP(&useEditor, "editor", "e", false, "compose the content in $EDITOR")
	}
}
