package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"orbdyn/internal/adapters/browser"
	"orbdyn/internal/adapters/editor"
	"orbdyn/internal/adapters/render"
	"orbdyn/internal/app"
	"orbdyn/internal/config"
	"orbdyn/internal/domain"
	"orbdyn/internal/ports"
)

var (
	dataDir  string
	store    string
	logLevel string

	instance *app.App

	// swapped in tests
	composer   ports.EditorOpener = editor.NewOpener()
	linkOpener ports.URLOpener    = browser.NewOpener()
)

var rootCmd = &cobra.Command{
	Use:   "orbdyn",
	Short: "Organize links, notes and to-dos",
	Long: `orbdyn keeps a personal collection of links, notes and to-dos,
grouped into colored categories.

Resources move through favorites, the archive and the recycle bin, can be
listed through built-in views with search, date and sort filters, and can be
exported to or imported from JSON, Markdown and PDF text.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip initialization for help commands
		if cmd.Name() == "help" || cmd.Name() == "completion" {
			return nil
		}

		cfg, err := config.Load()
		if err != nil {
			return err
		}
		if err := applyFlags(cmd, cfg); err != nil {
			return err
		}

		instance, err = app.New(cmd.Context(), cfg)
		return err
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if instance == nil {
			return nil
		}
		err := instance.Close()
		instance = nil
		return err
	},
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&dataDir, "data", "d", "", "data directory (overrides ORBDYN_DATA)")
	rootCmd.PersistentFlags().StringVar(&store, "store", "", "storage backend: "+strings.Join(config.Stores, ", "))
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "debug, info, warn or error")
}

// applyFlags lets explicit global flags win over the file and environment
func applyFlags(cmd *cobra.Command, cfg *config.Config) error {
	flags := cmd.Flags()
	if flags.Changed("data") {
		cfg.DataDir = dataDir
	}
	if flags.Changed("store") {
		cfg.Store = store
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = logLevel
	}
	return cfg.Validate()
}

// GetApp returns the initialized application
func GetApp() *app.App {
	return instance
}

func renderer(cmd *cobra.Command) *render.Renderer {
	return render.New(GetApp().Theme(cmd.Context()))
}

// resolveResource accepts a full id or an unambiguous id prefix, as printed
// by list
func resolveResource(idOrPrefix string) (string, error) {
	a := GetApp()
	if _, err := a.Resources.Get(idOrPrefix); err == nil {
		return idOrPrefix, nil
	}

	var matches []string
	for _, r := range a.Resources.List() {
		if strings.HasPrefix(r.ID, idOrPrefix) {
			matches = append(matches, r.ID)
		}
	}

	switch len(matches) {
	case 0:
		return idOrPrefix, nil // let the command report not found
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("id prefix %q is ambiguous (%d resources)", idOrPrefix, len(matches))
	}
}

func resolveResources(args []string) ([]string, error) {
	ids := make([]string, 0, len(args))
	for _, arg := range args {
		id, err := resolveResource(arg)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// resolveCategory accepts a category id, id prefix or name
func resolveCategory(ref string) (domain.Category, error) {
	a := GetApp()
	if c, err := a.Categories.Get(ref); err == nil {
		return c, nil
	}
	if c, ok := a.Categories.FindByName(ref); ok {
		return c, nil
	}
	return matchCategoryPrefix(a.Categories.List(), ref)
}

// matchCategoryPrefix returns the single category whose id starts with prefix
func matchCategoryPrefix(categories []domain.Category, prefix string) (domain.Category, error) {
	var matches []domain.Category
	if prefix != "" {
		for _, c := range categories {
			if strings.HasPrefix(c.ID, prefix) {
				matches = append(matches, c)
			}
		}
	}

	switch len(matches) {
	case 0:
		return domain.Category{}, fmt.Errorf("category %q not found", prefix)
	case 1:
		return matches[0], nil
	default:
		return domain.Category{}, fmt.Errorf("id prefix %q is ambiguous (%d categories)", prefix, len(matches))
	}
}
