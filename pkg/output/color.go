package output

import (
	"fmt"

	"github.com/aretw0/devconsole/pkg/domain"
	"github.com/lucasb-eyer/go-colorful"
)

// ParseColor reads a "#rgb" or "#rrggbb" string as an opaque color.
func ParseColor(hex string) (domain.Color, error) {
	c, err := colorful.Hex(hex)
	if err != nil {
		return domain.Color{}, fmt.Errorf("invalid color %q: %w", hex, err)
	}
	return domain.Color{float32(c.R), float32(c.G), float32(c.B), 1}, nil
}

// Hex renders the RGB components of c as "#rrggbb". Alpha is dropped.
func Hex(c domain.Color) string {
	return colorful.Color{R: float64(c[0]), G: float64(c[1]), B: float64(c[2])}.Clamped().Hex()
}

// ParsePalette builds a palette from hex strings. Empty strings keep the default color.
func ParsePalette(normal, errColor, prompt string) (domain.Palette, error) {
	p := domain.DefaultPalette()
	for _, f := range []struct {
		hex string
		dst *domain.Color
	}{
		{normal, &p.Normal},
		{errColor, &p.Error},
		{prompt, &p.Prompt},
	} {
		if f.hex == "" {
			continue
		}
		c, err := ParseColor(f.hex)
		if err != nil {
			return p, err
		}
		*f.dst = c
	}
	return p, nil
}
