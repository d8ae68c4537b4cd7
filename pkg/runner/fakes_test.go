package runner

import (
	"context"
	"io"

	"github.com/aretw0/devconsole"
	"github.com/aretw0/devconsole/pkg/domain"
	"github.com/aretw0/devconsole/pkg/ports"
	"github.com/aretw0/devconsole/pkg/registry"
)

// scriptedHandler replays inputs and records everything the runner sends back.
type scriptedHandler struct {
	inputs  []string
	frames  []Frame
	notices []string
}

func (h *scriptedHandler) Input(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if len(h.inputs) == 0 {
		return "", io.EOF
	}
	line := h.inputs[0]
	h.inputs = h.inputs[1:]
	return line, nil
}

func (h *scriptedHandler) Render(_ context.Context, frame Frame) error {
	h.frames = append(h.frames, frame)
	return nil
}

func (h *scriptedHandler) Notice(_ context.Context, msg string) error {
	h.notices = append(h.notices, msg)
	return nil
}

func texts(spans []domain.Span) []string {
	out := make([]string, len(spans))
	for i, s := range spans {
		out[i] = s.Text
	}
	return out
}

func newConsole(extra ...ports.Node) *devconsole.Console {
	tree := registry.New(
		registry.NewGroup("graphics", "Rendering",
			registry.Int("fov", "Field of view", 90, registry.Between(60, 120)),
		),
	)
	tree.Add(extra...)
	return devconsole.New(tree)
}
