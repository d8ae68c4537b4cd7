package output

import (
	"testing"

	"github.com/aretw0/devconsole/pkg/domain"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPainter(t *testing.T) {
	spans := []domain.Span{
		{Color: domain.ColorCyan, Text: PromptMarker},
		{Color: domain.ColorRed, Text: "Unknown command\n"},
	}

	t.Run("Ascii", func(t *testing.T) {
		p := NewPainter(termenv.Ascii)
		assert.Equal(t, " > Unknown command\n", p.Render(spans))
	})

	t.Run("TrueColor", func(t *testing.T) {
		p := NewPainter(termenv.TrueColor)
		out := p.Paint(spans[1])
		assert.Contains(t, out, "38;2;255;0;0")
		assert.Contains(t, out, "Unknown command")
		assert.Equal(t, byte('\n'), out[len(out)-1])
	})

	t.Run("Newline only", func(t *testing.T) {
		p := NewPainter(termenv.TrueColor)
		assert.Equal(t, "\n", p.Paint(domain.Span{Color: domain.ColorWhite, Text: "\n"}))
	})
}

func TestColors(t *testing.T) {
	c, err := ParseColor("#ff0000")
	require.NoError(t, err)
	assert.Equal(t, domain.ColorRed, c)
	assert.Equal(t, "#00ffff", Hex(domain.ColorCyan))

	_, err = ParseColor("red")
	assert.Error(t, err)

	p, err := ParsePalette("", "#00ff00", "")
	require.NoError(t, err)
	assert.Equal(t, domain.ColorWhite, p.Normal)
	assert.Equal(t, domain.Color{0, 1, 0, 1}, p.Error)
	assert.Equal(t, domain.ColorCyan, p.Prompt)

	_, err = ParsePalette("nope", "", "")
	assert.Error(t, err)
}
