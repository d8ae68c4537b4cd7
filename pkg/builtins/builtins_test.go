package builtins_test

import (
	"testing"

	"github.com/aretw0/devconsole/internal/runtime"
	"github.com/aretw0/devconsole/pkg/builtins"
	"github.com/aretw0/devconsole/pkg/domain"
	"github.com/aretw0/devconsole/pkg/output"
	"github.com/aretw0/devconsole/pkg/ports"
	"github.com/aretw0/devconsole/pkg/registry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// frontend pairs an output buffer with a resolver.
type frontend struct {
	*output.Buffer
	resolver ports.Resolver
}

func (f *frontend) Resolver() ports.Resolver { return f.resolver }

func setup(extra ...ports.Node) (*frontend, *registry.Prop[int]) {
	fov := registry.Int("fov", "Field of view", 90)
	nodes := append(builtins.Nodes(), registry.NewGroup("graphics", "", fov))
	nodes = append(nodes, extra...)
	engine := runtime.NewEngine(registry.New(nodes...))
	return &frontend{Buffer: output.NewBuffer(domain.DefaultPalette()), resolver: engine}, fov
}

func run(fe *frontend, name string, args ...string) domain.Result {
	return fe.resolver.Dispatch(name, args, fe)
}

func TestHelp(t *testing.T) {
	fe, _ := setup()
	pal := fe.Palette()

	t.Run("All", func(t *testing.T) {
		fe.Clear()
		require.Equal(t, domain.Ok(""), run(fe, "help"))
		spans := fe.Spans()
		require.Len(t, spans, 1)
		assert.Equal(t, pal.Normal, spans[0].Color)
		assert.Equal(t,
			"help [name]:\n\tList all commands and properties\n"+
				"clear:\n\tClear the screen\n"+
				"find <text>:\n\tSearch for matching commands\n"+
				"reset [name]:\n\tSet a property to its default\n"+
				"graphics/fov: 90 (Default: 90)\n\tField of view\n",
			spans[0].Text)
	})

	t.Run("Exact", func(t *testing.T) {
		fe.Clear()
		run(fe, "help", "graphics/fov")
		assert.Equal(t, "graphics/fov: 90 (Default: 90)\n\tField of view\n", fe.Flatten())
	})

	t.Run("Unknown", func(t *testing.T) {
		fe.Clear()
		run(fe, "help", "fov")
		spans := fe.Spans()
		require.Len(t, spans, 1)
		assert.Equal(t, domain.Span{Color: pal.Error, Text: "Unknown property\n"}, spans[0])
	})
}

func TestHelp_EmptyRegistry(t *testing.T) {
	fe := &frontend{Buffer: output.NewBuffer(domain.DefaultPalette())}
	fe.resolver = runtime.NewEngine(registry.New())
	builtins.Help().Invoke(nil, fe)
	assert.Equal(t, "No results\n", fe.Flatten())
}

func TestClear(t *testing.T) {
	fe, _ := setup()
	fe.WriteString("something")
	require.Equal(t, domain.Ok(""), run(fe, "clear", "ignored"))
	assert.Equal(t, 0, fe.Len())
	assert.Equal(t, uint64(1), fe.Epoch())
}

func TestFind(t *testing.T) {
	fe, _ := setup()

	t.Run("Match", func(t *testing.T) {
		fe.Clear()
		run(fe, "find", "fov")
		assert.Equal(t, "graphics/fov: 90 (Default: 90)\n\tField of view\n", fe.Flatten())
	})

	t.Run("Excludes itself", func(t *testing.T) {
		fe.Clear()
		run(fe, "find", "find")
		assert.Equal(t, "No results\n", fe.Flatten())
	})

	t.Run("Empty needle", func(t *testing.T) {
		fe.Clear()
		run(fe, "find", "")
		out := fe.Flatten()
		assert.Contains(t, out, "help [name]:")
		assert.Contains(t, out, "graphics/fov: 90")
		assert.NotContains(t, out, "find <text>:")
	})

	t.Run("No results", func(t *testing.T) {
		fe.Clear()
		run(fe, "find", "zz_no_such_substring")
		assert.Equal(t, []domain.Span{{Color: fe.Palette().Error, Text: "No results\n"}}, fe.Spans())
	})

	t.Run("Usage", func(t *testing.T) {
		fe.Clear()
		assert.Equal(t, domain.Ok(""), run(fe, "find"))
		assert.Equal(t, "Usage: find <name>\n", fe.Flatten())
	})
}

func TestReset(t *testing.T) {
	fe, fov := setup()

	require.NoError(t, fov.Set("120"))
	run(fe, "reset", "graphics/fov")
	assert.Equal(t, 90, fov.Value())
	assert.Equal(t, 0, fe.Len(), "reset of one property prints nothing")

	require.NoError(t, fov.Set("120"))
	run(fe, "reset")
	assert.Equal(t, 90, fov.Value())
	assert.Equal(t, "OK\n", fe.Flatten())

	fe.Clear()
	run(fe, "reset", "help")
	assert.Equal(t, "Unknown property\n", fe.Flatten())
}
