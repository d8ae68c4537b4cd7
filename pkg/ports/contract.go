package ports

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// RunValueStoreContract runs a suite of tests to verify that a ValueStore implementation
// adheres to the defined interface contract.
func RunValueStoreContract(t *testing.T, store ValueStore) {
	ctx := context.Background()
	key := "contract/" + time.Now().Format("20060102150405")

	t.Run("Save and Load", func(t *testing.T) {
		require.NoError(t, store.Save(ctx, key, "90"))

		val, err := store.Load(ctx, key)
		require.NoError(t, err)
		assert.Equal(t, "90", val)
	})

	t.Run("Overwrite", func(t *testing.T) {
		require.NoError(t, store.Save(ctx, key, "1"))
		require.NoError(t, store.Save(ctx, key, "2"))

		val, err := store.Load(ctx, key)
		require.NoError(t, err)
		assert.Equal(t, "2", val)
	})

	t.Run("Load Non-Existent", func(t *testing.T) {
		_, err := store.Load(ctx, "missing/"+key)
		assert.ErrorIs(t, err, ErrValueNotFound)
	})

	t.Run("Delete", func(t *testing.T) {
		require.NoError(t, store.Save(ctx, key, "x"))
		require.NoError(t, store.Delete(ctx, key))

		_, err := store.Load(ctx, key)
		assert.ErrorIs(t, err, ErrValueNotFound)

		// Deleting again is a no-op.
		assert.NoError(t, store.Delete(ctx, key))
	})

	t.Run("Empty Value", func(t *testing.T) {
		require.NoError(t, store.Save(ctx, key, ""))

		val, err := store.Load(ctx, key)
		require.NoError(t, err)
		assert.Equal(t, "", val)
	})
}
