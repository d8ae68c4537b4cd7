package manifest_test

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	internalrt "github.com/aretw0/devconsole/internal/runtime"
	"github.com/aretw0/devconsole/pkg/adapters/manifest"
	"github.com/aretw0/devconsole/pkg/adapters/process"
	"github.com/aretw0/devconsole/pkg/domain"
	"github.com/aretw0/devconsole/pkg/ports/tests"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = `
entries:
  - group: graphics
    description: Rendering
    entries:
      - property: fov
        type: int
        default: 90
        min: 60
        max: 120
        description: Field of view
      - property: gamma
        type: float
        default: 2.2
        min: 0.5
        description: Gamma correction
      - property: vsync
        type: bool
        default: true
      - property: quality
        type: enum
        choices: [low, medium, high]
        default: medium
  - group: net
    entries:
      - property: timeout
        type: duration
        default: 5s
        max: 1m
      - property: host
        default: localhost
  - action: motd
    description: "\nPrint the message of the day"
    echo: Welcome!
`

func TestLoader_Load(t *testing.T) {
	tree, err := manifest.New().Load(context.Background(), []byte(sample))
	require.NoError(t, err)
	assert.Equal(t, 3, tree.Len())

	engine := internalrt.NewEngine(tree)

	assert.Equal(t, domain.Ok("90"), engine.Read("graphics/fov"))
	assert.Equal(t, domain.Ok("2.2"), engine.Read("graphics/gamma"))
	assert.Equal(t, domain.Ok("true"), engine.Read("graphics/vsync"))
	assert.Equal(t, domain.Ok("medium"), engine.Read("graphics/quality"))
	assert.Equal(t, domain.Ok("5s"), engine.Read("net/timeout"))
	assert.Equal(t, domain.Ok("localhost"), engine.Read("net/host"))
	assert.Equal(t, domain.KindAction, engine.Classify("motd"))

	assert.ErrorIs(t, engine.Write("graphics/fov", "10").Err, domain.ErrInvalidValue)
	assert.Equal(t, "Invalid value: 0.1 is below minimum 0.5", engine.Write("graphics/gamma", "0.1").Err.Error())
	assert.Equal(t, "Invalid value: NaN is below minimum 0.5", engine.Write("graphics/gamma", "NaN").Err.Error())
	assert.True(t, engine.Write("graphics/gamma", "100").IsOk(), "no maximum")
	assert.Equal(t, "Invalid value: 2m0s is above maximum 1m0s", engine.Write("net/timeout", "2m").Err.Error())
	assert.ErrorIs(t, engine.Write("graphics/quality", "ultra").Err, domain.ErrInvalidValue)

	assert.Equal(t, "motd:\n\tPrint the message of the day\n", engine.Describe("motd").Value)
}

func TestLoader_Contract(t *testing.T) {
	tree, err := manifest.New().Load(context.Background(), []byte(sample))
	require.NoError(t, err)
	tests.RegistryContractTest(t, tree)
}

func TestLoader_JSON(t *testing.T) {
	tree, err := manifest.New().Load(context.Background(), []byte(`{"entries":[{"property":"n","type":"int","default":3}]}`))
	require.NoError(t, err)
	assert.Equal(t, domain.Ok("3"), internalrt.NewEngine(tree).Read("n"))
}

func TestLoader_Errors(t *testing.T) {
	cases := []struct {
		name string
		doc  string
		want string
	}{
		{"syntax", "entries: [", "failed to parse manifest"},
		{"unknown key", "entries:\n  - property: x\n    colour: red\n", "invalid manifest"},
		{"no kind", "entries:\n  - description: orphan\n", "exactly one of group, property or action"},
		{"two kinds", "entries:\n  - property: x\n    action: y\n", "exactly one of group, property or action"},
		{"bad type", "entries:\n  - property: x\n    type: complex\n", `'x': unknown property type "complex"`},
		{"bad default", "entries:\n  - property: x\n    type: int\n    default: abc\n", "'x': default"},
		{"default out of range", "entries:\n  - property: x\n    type: int\n    default: 1\n    min: 5\n    max: 10\n", "default 1 out of range [5, 10]"},
		{"min above max", "entries:\n  - property: x\n    type: int\n    default: 5\n    min: 10\n    max: 1\n", "min 10 is greater than max 1"},
		{"enum without choices", "entries:\n  - property: x\n    type: enum\n", "enum requires choices"},
		{"enum default", "entries:\n  - property: x\n    type: enum\n    choices: [a]\n    default: b\n", "must be one of [a]"},
		{"nested", "entries:\n  - group: g\n    entries:\n      - property: x\n        type: nope\n", "'g/x'"},
		{"unknown tool", "entries:\n  - action: a\n    tool: ghost\n", "process tool not registered: ghost"},
		{"tool and echo", "entries:\n  - action: a\n    tool: t\n    echo: hi\n", "mutually exclusive"},
	}
	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			_, err := manifest.New().Load(context.Background(), []byte(tt.doc))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestLoader_Tools(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("uses sh")
	}

	doc := `
tools:
  - name: shout
    command: sh
    args: ["-c", "echo \"$1!\"", "shout"]
entries:
  - action: hey
    tool: shout
    description: "<word>\nShout a word"
  - action: external
    tool: preloaded
`
	runner := process.NewRunner()
	runner.Register("preloaded", "echo", "from", "file")

	loader := manifest.New(manifest.WithRunner(runner))
	tree, err := loader.Load(context.Background(), []byte(doc))
	require.NoError(t, err)
	assert.Same(t, runner, loader.Runner())
	assert.Equal(t, []string{"preloaded", "shout"}, runner.Names())

	engine := internalrt.NewEngine(tree)
	assert.Equal(t, "hey <word>:\n\tShout a word\n", engine.Describe("hey").Value)
}

func TestLoader_LoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "console.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sample), 0o644))

	tree, err := manifest.New().LoadFile(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, 3, tree.Len())

	_, err = manifest.New().LoadFile(context.Background(), filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)
}

func TestDecode_Empty(t *testing.T) {
	m, err := manifest.Decode(nil)
	require.NoError(t, err)
	assert.Empty(t, m.Entries)
}
