package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"orbdyn/internal/application/commands"
	"orbdyn/internal/query"
)

var (
	listView     string
	listSearch   string
	listCategory string
	listFrom     string
	listTo       string
	listSort     string
	activeView   string
	searchLimit  int
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List resources in a view",
	Long: `List resources in a built-in view or a category view, narrowed by
search text, category and creation date, in the chosen order.

Views: ` + strings.Join(query.BuiltinViews, ", ") + `, or any category name.
Sort orders: ` + strings.Join(sortNames(), ", ") + `.

Examples:
  orbdyn list
  orbdyn list --view todo --sort priority-high
  orbdyn list --view "Recycle Bin"
  orbdyn list --search kubernetes --from 2024-01-01 --to 2024-03-31`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		opts, err := listOptions()
		if err != nil {
			return err
		}

		a := GetApp()
		result, err := commands.NewListResourcesCommand(a.Resources, a.Categories, opts).Execute(cmd.Context())
		if err != nil {
			return err
		}

		fmt.Fprint(cmd.OutOrStdout(), renderer(cmd).ResourceList(result.View, result.Resources, a.Categories.List()))
		return nil
	},
}

func listOptions() (query.Options, error) {
	opts := query.Options{
		View:     listView,
		Search:   listSearch,
		Category: listCategory,
	}

	var err error
	if opts.Sort, err = query.ParseSortOption(listSort); err != nil {
		return opts, err
	}
	if opts.From, err = query.ParseDay(listFrom); err != nil {
		return opts, err
	}
	if opts.To, err = query.ParseDay(listTo); err != nil {
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

var showCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show every field of a resource",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := resolveResource(args[0])
		if err != nil {
			return err
		}

		a := GetApp()
		res, err := commands.NewGetResourceCommand(a.Resources, id).Execute(cmd.Context())
		if err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), renderer(cmd).ResourceDetail(res, a.Categories.List()))
		return nil
	},
}

var viewsCmd = &cobra.Command{
	Use:   "views",
	Short: "Count the resources in every view",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a := GetApp()
		categories := a.Categories.List()
		counts := query.Counts(a.Resources.List(), categories)

		fmt.Fprint(cmd.OutOrStdout(), renderer(cmd).Views(categories, counts, query.NormalizeView(activeView)))
		return nil
	},
}

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Fuzzy search live resources",
	Long: `Search titles, descriptions, content and tags of live resources.

Results are ranked by relevance using fuzzy matching.

Examples:
  orbdyn search kubernetes
  orbdyn search "grocery list" --limit 5`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a := GetApp()
		results, err := commands.NewSearchCommand(a.Resources, args[0], searchLimit).Execute(cmd.Context())
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if len(results) == 0 {
			fmt.Fprintln(out, "No results found")
			return nil
		}

		r := renderer(cmd)
		categories := a.Categories.List()
		for _, res := range results {
			fmt.Fprintln(out, r.ResourceLine(res.Resource, categories))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(viewsCmd)
	rootCmd.AddCommand(searchCmd)

	f := listCmd.Flags()
	f.StringVarP(&listView, "view", "V", query.ViewAll, "view or category name")
	f.StringVarP(&listSearch, "search", "s", "", "case-insensitive text in title, description or content")
	f.StringVarP(&listCategory, "category", "c", "", "only resources in this category")
	f.StringVar(&listFrom, "from", "", "created on or after this day (YYYY-MM-DD)")
	f.StringVar(&listTo, "to", "", "created on or before this day (YYYY-MM-DD)")
	f.StringVar(&listSort, "sort", string(query.SortCustom), "sort order")

	viewsCmd.Flags().StringVarP(&activeView, "active", "a", "", "highlight this view")

	searchCmd.Flags().IntVarP(&searchLimit, "limit", "n", 20, "maximum number of results")
}
