package reference_test

import (
	"testing"

	"github.com/aretw0/devconsole/internal/presentation/reference"
	"github.com/aretw0/devconsole/pkg/ports"
	"github.com/aretw0/devconsole/pkg/registry"
	"github.com/stretchr/testify/assert"
)

func TestGenerateMarkdown(t *testing.T) {
	tree := registry.New(
		registry.NewGroup("graphics", "Rendering settings",
			registry.Int("fov", "Field of view", 90),
			registry.Enum("mode", "Window mode", "windowed", []string{"windowed", "fullscreen"}),
		),
		registry.NewFunc("greet", "<name>\nSay hello", func([]string, ports.Frontend) {}),
		registry.NewFunc("pipe", "a|b", func([]string, ports.Frontend) {}),
	)

	want := "# Reference\n" +
		"\n## Properties\n\n" +
		"| Path | Value | Default | Description |\n" +
		"| --- | --- | --- | --- |\n" +
		"| `graphics/fov` | 90 | 90 | Field of view |\n" +
		"| `graphics/mode` | windowed | windowed | Window mode |\n" +
		"\n## Commands\n\n" +
		"| Command | Arguments | Description |\n" +
		"| --- | --- | --- |\n" +
		"| `greet` | <name> | Say hello |\n" +
		"| `pipe` |  | a\\|b |\n" +
		"\n## Groups\n\n" +
		"- `graphics`: Rendering settings\n"

	assert.Equal(t, want, reference.GenerateMarkdown(tree, "Reference"))
}

func TestGenerateMarkdown_Empty(t *testing.T) {
	assert.Equal(t, "# Empty\n", reference.GenerateMarkdown(registry.New(), "Empty"))
}
