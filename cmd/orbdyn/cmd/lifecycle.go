package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"orbdyn/internal/application/commands"
)

var purgeAll bool

var trashCmd = &cobra.Command{
	Use:     "trash <id>...",
	Aliases: []string{"rm"},
	Short:   "Move resources to the recycle bin",
	Long: `Move one or more resources to the recycle bin. They keep their
title, so a new resource cannot reuse it until they are purged.

Examples:
  orbdyn trash 1b9d6bcd
  orbdyn trash 1b9d6bcd 7c2e91aa`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ids, err := resolveResources(args)
		if err != nil {
			return err
		}

		result, err := commands.NewTrashCommand(GetApp().Resources, ids...).Execute(cmd.Context())
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), result.Message)
		return nil
	},
}

var restoreCmd = &cobra.Command{
	Use:   "restore <id>...",
	Short: "Restore resources from the recycle bin",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ids, err := resolveResources(args)
		if err != nil {
			return err
		}

		result, err := commands.NewRestoreCommand(GetApp().Resources, ids...).Execute(cmd.Context())
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), result.Message)
		return nil
	},
}

var purgeCmd = &cobra.Command{
	Use:   "purge [id]...",
	Short: "Permanently delete resources in the recycle bin",
	Long: `Permanently delete resources. Only resources already in the recycle
bin can be purged.

Warning: This operation cannot be undone.

Examples:
  orbdyn purge 1b9d6bcd
  orbdyn purge --all     # empty the recycle bin`,
	RunE: func(cmd *cobra.Command, args []string) error {
		a := GetApp()

		if purgeAll {
			if len(args) > 0 {
				return fmt.Errorf("--all takes no ids")
			}
			result, err := commands.NewEmptyRecycleBinCommand(a.Resources).Execute(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), result.Message)
			return nil
		}

		if len(args) == 0 {
			return fmt.Errorf("give at least one id, or --all")
		}
		ids, err := resolveResources(args)
		if err != nil {
			return err
		}

		result, err := commands.NewPurgeCommand(a.Resources, ids...).Execute(cmd.Context())
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), result.Message)
		return nil
	},
}

var favoriteCmd = &cobra.Command{
	Use:     "favorite <id>",
	Aliases: []string{"fav"},
	Short:   "Toggle the favorite flag of a resource",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := resolveResource(args[0])
		if err != nil {
			return err
		}

		result, err := commands.NewToggleFavoriteCommand(GetApp().Resources, id).Execute(cmd.Context())
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), result.Message)
		return nil
	},
}

var archiveCmd = &cobra.Command{
	Use:   "archive <id>",
	Short: "Move a resource into or out of the archive",
	Long: `Toggle the archived flag of a resource. Archived resources only
appear in the Archive view.

Examples:
  orbdyn archive 1b9d6bcd   # archive
  orbdyn archive 1b9d6bcd   # and back again`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := resolveResource(args[0])
		if err != nil {
			return err
		}

		result, err := commands.NewToggleArchiveCommand(GetApp().Resources, id).Execute(cmd.Context())
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), result.Message)
		return nil
	},
}

var moveCmd = &cobra.Command{
	Use:   "move <category> <id>...",
	Short: "Move resources into a category",
	Long: `Move resources into an existing category. Any other category tag
they carry is replaced; free tags are kept.

Examples:
  orbdyn move Reading 1b9d6bcd 7c2e91aa`,
	Args: cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ids, err := resolveResources(args[1:])
		if err != nil {
			return err
		}

		a := GetApp()
		moveCmd := commands.NewMoveToCategoryCommand(a.Resources, a.Categories, args[0], ids...)
		result, err := moveCmd.Execute(cmd.Context())
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), result.Message)
		return nil
	},
}

var openCmd = &cobra.Command{
	Use:   "open <id>",
	Short: "Open the URL of a resource in the browser",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := resolveResource(args[0])
		if err != nil {
			return err
		}

		res, err := GetApp().Resources.Get(id)
		if err != nil {
			return err
		}
		if err := linkOpener.Open(res); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Opened %s\n", res.URL)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(openCmd)
	rootCmd.AddCommand(trashCmd)
	rootCmd.AddCommand(restoreCmd)
	rootCmd.AddCommand(purgeCmd)
	rootCmd.AddCommand(favoriteCmd)
	rootCmd.AddCommand(archiveCmd)
	rootCmd.AddCommand(moveCmd)

	purgeCmd.Flags().BoolVar(&purgeAll, "all", false, "empty the whole recycle bin")
}
