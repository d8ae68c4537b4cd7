package runner

import (
	"bytes"
	"context"
	"io"
	"testing"
	"time"

	"github.com/aretw0/devconsole/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTextHandler_Render(t *testing.T) {
	out := &bytes.Buffer{}
	h := NewTextHandler(bytes.NewBufferString(""), out)

	err := h.Render(context.Background(), Frame{Spans: []domain.Span{
		{Color: domain.ColorCyan, Text: " > "},
		{Color: domain.ColorWhite, Text: "help\n"},
	}})
	require.NoError(t, err)

	// Not a terminal: plain text
	assert.Equal(t, " > help\n", out.String())
}

func TestTextHandler_Input(t *testing.T) {
	out := &bytes.Buffer{}
	h := NewTextHandler(bytes.NewBufferString("fov 90\nlast"), out)

	line, err := h.Input(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "fov 90\n", line)

	line, err = h.Input(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "last", line, "a final line without newline is still delivered")

	_, err = h.Input(context.Background())
	assert.ErrorIs(t, err, io.EOF)

	assert.Equal(t, "> > > ", out.String())
}

func TestTextHandler_InputCancelled(t *testing.T) {
	r, w := io.Pipe()
	defer w.Close()

	h := NewTextHandler(r, io.Discard)
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := h.Input(ctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestTextHandler_Notice(t *testing.T) {
	out := &bytes.Buffer{}
	h := NewTextHandler(bytes.NewBufferString(""), out)

	require.NoError(t, h.Notice(context.Background(), "Run 'reset'? [y/N]"))
	assert.Equal(t, "[System] Run 'reset'? [y/N]\n", out.String())
}

func TestTextHandler_Close(t *testing.T) {
	h := NewTextHandler(bytes.NewBufferString("first\nsecond\n"), io.Discard)

	line, err := h.Input(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "first\n", line)

	require.NoError(t, h.Close())
	require.NoError(t, h.Close(), "closing twice is fine")

	select {
	case <-h.pumpDone:
	case <-time.After(time.Second):
		t.Fatal("pump still running after Close")
	}

	_, err = h.Input(context.Background())
	assert.ErrorIs(t, err, io.EOF)
}
