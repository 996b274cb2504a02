// Package kvtest is a conformance suite every ports.KVStore backend runs
package kvtest

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"orbdyn/internal/ports"
)

// Run exercises store. Keys carry a random suffix so backends shared with
// other data (a postgres table, a redis db) are left as they were.
func Run(t *testing.T, store ports.KVStore) {
	t.Helper()
	ctx := context.Background()
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:12]
	key := func(name string) string { return name + "_" + suffix }

	t.Cleanup(func() {
		for _, name := range []string{"missing", "roundtrip", "overwrite", "delete", "large", "concurrent"} {
			_ = store.Delete(ctx, key(name))
		}
	})

	t.Run("missing key", func(t *testing.T) {
		_, err := store.Get(ctx, key("missing"))
		assert.True(t, errors.Is(err, ports.ErrKeyNotFound), "got %v", err)
	})

	t.Run("round trip", func(t *testing.T) {
		value := `[{"id":"1","title":"Ünïcode ✓","tags":[]}]`
		require.NoError(t, store.Set(ctx, key("roundtrip"), value))

		got, err := store.Get(ctx, key("roundtrip"))
		require.NoError(t, err)
		assert.Equal(t, value, got)
	})

	t.Run("overwrite", func(t *testing.T) {
		require.NoError(t, store.Set(ctx, key("overwrite"), "first"))
		require.NoError(t, store.Set(ctx, key("overwrite"), "second"))

		got, err := store.Get(ctx, key("overwrite"))
		require.NoError(t, err)
		assert.Equal(t, "second", got)
	})

	t.Run("delete", func(t *testing.T) {
		require.NoError(t, store.Set(ctx, key("delete"), "x"))
		require.NoError(t, store.Delete(ctx, key("delete")))

		_, err := store.Get(ctx, key("delete"))
		assert.True(t, errors.Is(err, ports.ErrKeyNotFound))

		// deleting again is not an error
		assert.NoError(t, store.Delete(ctx, key("delete")))
	})

	t.Run("large value", func(t *testing.T) {
		value := strings.Repeat("0123456789", 100_000)
		require.NoError(t, store.Set(ctx, key("large"), value))

		got, err := store.Get(ctx, key("large"))
		require.NoError(t, err)
		assert.Len(t, got, len(value))
	})

	t.Run("concurrent writers", func(t *testing.T) {
		var wg sync.WaitGroup
		for i := 0; i < 8; i++ {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				assert.NoError(t, store.Set(ctx, key("concurrent"), fmt.Sprintf("writer-%d", i)))
			}(i)
		}
		wg.Wait()

		got, err := store.Get(ctx, key("concurrent"))
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(got, "writer-"), "got %q", got)
	})
}
