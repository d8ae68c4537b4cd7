package memory_test

import (
	"context"
	"testing"

	"github.com/aretw0/devconsole/pkg/adapters/memory"
	"github.com/aretw0/devconsole/pkg/ports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore_Contract(t *testing.T) {
	store := memory.NewStore(nil)
	ports.RunValueStoreContract(t, store)
}

func TestMemoryStore_Seed(t *testing.T) {
	seed := map[string]string{"graphics/fov": "110", "audio/volume": "3"}
	store := memory.NewStore(seed)
	seed["graphics/fov"] = "mutated"

	ctx := context.Background()
	v, err := store.Load(ctx, "graphics/fov")
	require.NoError(t, err)
	assert.Equal(t, "110", v)

	keys, err := store.Keys(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"audio/volume", "graphics/fov"}, keys)
}
