package tests

import (
	"testing"

	"github.com/aretw0/devconsole/internal/runtime"
	"github.com/aretw0/devconsole/internal/validator"
	"github.com/aretw0/devconsole/pkg/domain"
	"github.com/aretw0/devconsole/pkg/ports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// RegistryContractTest is a reusable test suite that verifies if a registry complies with ports.Registry.
// Every Property of reg is left at its default afterwards.
func RegistryContractTest(t *testing.T, reg ports.Registry) {
	t.Helper()

	t.Run("Invariants", func(t *testing.T) {
		require.NoError(t, validator.ValidateRegistry(reg))
	})

	t.Run("Visit_Stable", func(t *testing.T) {
		var first, second []string
		runtime.Walk(reg, func(path string, _ ports.Node) { first = append(first, path) })
		runtime.Walk(reg, func(path string, _ ports.Node) { second = append(second, path) })
		assert.Equal(t, first, second, "traversal order must be deterministic")
	})

	t.Run("Find_Every_Path", func(t *testing.T) {
		runtime.Walk(reg, func(path string, n ports.Node) {
			var got ports.Node
			found := runtime.Find(reg, path, func(m ports.Node) { got = m })
			if assert.True(t, found, "path %q not found", path) {
				assert.Equal(t, runtime.Classify(n), runtime.Classify(got), "path %q", path)
			}
		})
	})

	engine := runtime.NewEngine(reg)
	var props []string
	runtime.Walk(reg, func(path string, n ports.Node) {
		if _, ok := n.(ports.Property); ok {
			props = append(props, path)
		}
	})

	t.Run("ResetOne_Restores_Default", func(t *testing.T) {
		for _, path := range props {
			require.True(t, engine.ResetOne(path).IsOk(), path)
			var def string
			runtime.Find(reg, path, func(n ports.Node) { def = n.(ports.Property).Default() })
			assert.Equal(t, domain.Ok(def), engine.Read(path), path)
		}
	})

	t.Run("Write_Read_RoundTrip", func(t *testing.T) {
		for _, path := range props {
			current := engine.Read(path).Value
			require.True(t, engine.Write(path, current).IsOk(), path)
			assert.Equal(t, current, engine.Read(path).Value, path)
		}
	})

	t.Run("ResetAll", func(t *testing.T) {
		assert.Equal(t, domain.Ok("OK"), engine.ResetAll())
		for _, path := range props {
			var def string
			runtime.Find(reg, path, func(n ports.Node) { def = n.(ports.Property).Default() })
			assert.Equal(t, def, engine.Read(path).Value, path)
		}
	})

	t.Run("Dispatch_NotFound", func(t *testing.T) {
		res := engine.Dispatch("\x00no-such-entry", nil, nil)
		assert.ErrorIs(t, res.Err, domain.ErrUnknownCommand)
	})
}
