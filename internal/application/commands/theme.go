package commands

import (
	"context"
	"fmt"

	"orbdyn/internal/application"
	"orbdyn/internal/domain"
	"orbdyn/internal/ports"
)

// ThemeResult contains the active theme
type ThemeResult struct {
	Theme   domain.Theme
	Message string
}

// SetThemeCommand switches between the light and dark theme
type SetThemeCommand struct {
	settings ports.SettingsStore
	Theme    string
}

// NewSetThemeCommand creates a new SetThemeCommand
func NewSetThemeCommand(settings ports.SettingsStore, theme string) *SetThemeCommand {
	return &SetThemeCommand{
		settings: settings,
		Theme:    theme,
	}
}

// Validate checks the theme name
func (c *SetThemeCommand) Validate() error {
	if _, err := domain.ParseTheme(c.Theme); err != nil {
		return &application.ValidationError{Field: "theme", Message: err.Error()}
	}
	return nil
}

// Execute runs the set theme command
func (c *SetThemeCommand) Execute(ctx context.Context) (*ThemeResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	theme, _ := domain.ParseTheme(c.Theme)
	if err := c.settings.SetTheme(ctx, theme); err != nil {
		return nil, fmt.Errorf("failed to save theme: %w", err)
	}

	return &ThemeResult{
		Theme:   theme,
		Message: fmt.Sprintf("Theme set to %s", theme),
	}, nil
}
