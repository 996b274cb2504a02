package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"orbdyn/internal/application/commands"
	"orbdyn/internal/query"
)

var (
	categoryColor string
	categoryName  string
)

var categoryCmd = &cobra.Command{
	Use:     "category",
	Aliases: []string{"cat"},
	Short:   "Manage categories",
	Long: `Create, rename, recolor, delete and list categories.

A resource belongs to a category when the category name is one of its tags.
Renaming or deleting a category leaves the tags on resources untouched.

Colors: orange (default), red, green, blue, purple, pink, cyan, yellow, or #rrggbb.`,
}

var categoryAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Create a category",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		createCmd := commands.NewCreateCategoryCommand(GetApp().Categories, args[0], categoryColor)
		result, err := createCmd.Execute(cmd.Context())
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), result.Message)
		return nil
	},
}

var categoryEditCmd = &cobra.Command{
	Use:   "edit <name-or-id>",
	Short: "Rename or recolor a category",
	Long: `Rename or recolor a category.

Examples:
  orbdyn category edit Work --name Job
  orbdyn category edit Work --color green`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cat, err := resolveCategory(args[0])
		if err != nil {
			return err
		}

		updateCmd := commands.NewUpdateCategoryCommand(GetApp().Categories, cat.ID, categoryName, categoryColor)
		result, err := updateCmd.Execute(cmd.Context())
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), result.Message)
		return nil
	},
}

var categoryDeleteCmd = &cobra.Command{
	Use:   "delete <name-or-id>",
	Short: "Delete a category",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cat, err := resolveCategory(args[0])
		if err != nil {
			return err
		}

		result, err := commands.NewDeleteCategoryCommand(GetApp().Categories, cat.ID).Execute(cmd.Context())
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), result.Message)
		return nil
	},
}

var categoryListCmd = &cobra.Command{
	Use:   "list",
	Short: "List categories",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a := GetApp()
		categories, err := commands.NewListCategoriesCommand(a.Categories).Execute(cmd.Context())
		if err != nil {
			return err
		}

		counts := query.Counts(a.Resources.List(), categories)
		fmt.Fprint(cmd.OutOrStdout(), renderer(cmd).Categories(categories, counts))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(categoryCmd)
	categoryCmd.AddCommand(categoryAddCmd)
	categoryCmd.AddCommand(categoryEditCmd)
	categoryCmd.AddCommand(categoryDeleteCmd)
	categoryCmd.AddCommand(categoryListCmd)

	categoryAddCmd.Flags().StringVar(&categoryColor, "color", "", "palette name or #rrggbb")
	categoryEditCmd.Flags().StringVar(&categoryColor, "color", "", "new color")
	categoryEditCmd.Flags().StringVar(&categoryName, "name", "", "new name")
}
