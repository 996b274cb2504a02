package app

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"orbdyn/internal/config"
	"orbdyn/internal/domain"
	"orbdyn/internal/logger"
)

func TestNewWithLogger_PersistsAcrossReopen(t *testing.T) {
	ctx := context.Background()

	for _, store := range []string{config.StoreJSONFile, config.StoreSQLite} {
		t.Run(store, func(t *testing.T) {
			cfg := config.Default()
			cfg.Store = store
			cfg.DataDir = t.TempDir()

			a, err := NewWithLogger(ctx, cfg, logger.Nop())
			require.NoError(t, err)

			_, err = a.Categories.Create(ctx, "Work", "blue")
			require.NoError(t, err)
			_, err = a.Resources.Create(ctx, domain.ResourceInput{Title: "Design Doc", Type: domain.TypeNote, Content: "v1", Tags: []string{"Work"}})
			require.NoError(t, err)
			require.NoError(t, a.Store.SetTheme(ctx, domain.ThemeLight))
			require.NoError(t, a.Close())

			b, err := NewWithLogger(ctx, cfg, logger.Nop())
			require.NoError(t, err)
			defer b.Close()

			resources := b.Resources.List()
			require.Len(t, resources, 1)
			assert.Equal(t, "Design Doc", resources[0].Title)
			assert.Equal(t, []string{"Work"}, resources[0].Tags)

			cats := b.Categories.List()
			require.Len(t, cats, 1)
			assert.Equal(t, "#3b82f6", cats[0].Color)

			assert.Equal(t, domain.ThemeLight, b.Theme(ctx))
		})
	}
}

func TestTheme_ConfigOverride(t *testing.T) {
	ctx := context.Background()
	cfg := config.Default()
	cfg.Store = config.StoreMemory
	cfg.Theme = "light"

	a, err := NewWithLogger(ctx, cfg, logger.Nop())
	require.NoError(t, err)
	defer a.Close()

	require.NoError(t, a.Store.SetTheme(ctx, domain.ThemeDark))
	assert.Equal(t, domain.ThemeLight, a.Theme(ctx))
}

func TestOpenStore_Unknown(t *testing.T) {
	cfg := config.Default()
	cfg.Store = "floppy"

	_, err := OpenStore(context.Background(), cfg, logger.Nop())
	assert.Error(t, err)
}
