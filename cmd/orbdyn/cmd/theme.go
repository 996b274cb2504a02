package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"orbdyn/internal/application/commands"
)

var themeCmd = &cobra.Command{
	Use:       "theme [light|dark]",
	Short:     "Show or set the color theme",
	Args:      cobra.MaximumNArgs(1),
	ValidArgs: []string{"light", "dark"},
	RunE: func(cmd *cobra.Command, args []string) error {
		a := GetApp()
		out := cmd.OutOrStdout()

		if len(args) == 0 {
			fmt.Fprintln(out, a.Theme(cmd.Context()))
			return nil
		}

		result, err := commands.NewSetThemeCommand(a.Store, args[0]).Execute(cmd.Context())
		if err != nil {
			return err
		}
		fmt.Fprintln(out, renderer(cmd).Styles().Success.Render(result.Message))
		if a.Config.Theme != "" {
			fmt.Fprintf(out, "Note: ORBDYN_THEME=%s overrides the saved theme\n", a.Config.Theme)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(themeCmd)
}
