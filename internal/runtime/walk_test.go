package runtime_test

import (
	"testing"

	"github.com/aretw0/devconsole/internal/runtime"
	"github.com/aretw0/devconsole/pkg/domain"
	"github.com/aretw0/devconsole/pkg/ports"
	"github.com/stretchr/testify/assert"
)

func TestWalk_VisitsListsBeforeChildren(t *testing.T) {
	reg, _, _, _, _ := fixture()

	var paths []string
	runtime.Walk(reg, func(path string, _ ports.Node) {
		paths = append(paths, path)
	})

	assert.Equal(t, []string{
		"graphics", "graphics/fov", "graphics/gamma",
		"audio", "audio/volume",
		"quit",
	}, paths)
}

func TestFind(t *testing.T) {
	reg, fov, _, _, quit := fixture()

	var got ports.Node
	assert.True(t, runtime.Find(reg, "graphics/fov", func(n ports.Node) { got = n }))
	assert.Same(t, fov, got)

	assert.True(t, runtime.Find(reg, "quit", func(n ports.Node) { got = n }))
	assert.Same(t, quit, got)

	assert.False(t, runtime.Find(reg, "graphics/missing", func(ports.Node) {}))
	assert.False(t, runtime.Find(reg, "fov", func(ports.Node) {}), "children are not reachable by bare name")
	assert.False(t, runtime.Find(reg, "", func(ports.Node) {}))
}

func TestFind_FirstDuplicateWins(t *testing.T) {
	first := &intProp{name: "dup", value: 1}
	second := &intProp{name: "dup", value: 2}

	var got ports.Node
	runtime.Find(root{first, second}, "dup", func(n ports.Node) { got = n })
	assert.Same(t, first, got)
}

func TestClassify(t *testing.T) {
	assert.Equal(t, domain.KindProperty, runtime.Classify(&intProp{}))
	assert.Equal(t, domain.KindAction, runtime.Classify(&action{}))
	assert.Equal(t, domain.KindList, runtime.Classify(&group{}))
}

func TestJoin(t *testing.T) {
	assert.Equal(t, "fov", runtime.Join("", "fov"))
	assert.Equal(t, "graphics/fov", runtime.Join("graphics", "fov"))
}
