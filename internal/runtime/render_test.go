package runtime_test

import (
	"testing"

	"github.com/aretw0/devconsole/internal/runtime"
	"github.com/aretw0/devconsole/pkg/ports"
	"github.com/stretchr/testify/assert"
)

func TestDetails(t *testing.T) {
	tests := []struct {
		name string
		path string
		node ports.Node
		want string
	}{
		{
			name: "property",
			path: "graphics/fov",
			node: &intProp{name: "fov", desc: "Field of view", value: 100, def: 90},
			want: "graphics/fov: 100 (Default: 90)\n\tField of view\n",
		},
		{
			name: "action with hint",
			path: "find",
			node: &action{name: "find", desc: "<text>\nSearch for matching commands"},
			want: "find <text>:\n\tSearch for matching commands\n",
		},
		{
			name: "action with empty hint line",
			path: "help",
			node: &action{name: "help", desc: "\nList all commands and properties"},
			want: "help:\n\tList all commands and properties\n",
		},
		{
			name: "action single line",
			path: "quit",
			node: &action{name: "quit", desc: "Exit the game"},
			want: "quit:\n\tExit the game\n",
		},
		{
			name: "action multi-line long description",
			path: "spawn",
			node: &action{name: "spawn", desc: "<entity> [count]\nSpawn entities\nat the cursor"},
			want: "spawn <entity> [count]:\n\tSpawn entities\nat the cursor\n",
		},
		{
			name: "list",
			path: "graphics",
			node: &group{name: "graphics", desc: "Rendering"},
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, runtime.Details(tt.path, tt.node))
		})
	}
}

func TestSplitDescription(t *testing.T) {
	hint, long := runtime.SplitDescription("only line")
	assert.Equal(t, "", hint)
	assert.Equal(t, "only line", long)

	hint, long = runtime.SplitDescription("trailing\n")
	assert.Equal(t, "", hint)
	assert.Equal(t, "trailing", long)

	hint, long = runtime.SplitDescription("[name]\nSet a property to its default")
	assert.Equal(t, "[name]", hint)
	assert.Equal(t, "Set a property to its default", long)
}
