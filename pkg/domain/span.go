package domain

// Color is an RGBA color with components in [0, 1].
type Color [4]float32

// Fixed console colors.
var (
	ColorWhite = Color{1, 1, 1, 1}
	ColorRed   = Color{1, 0, 0, 1}
	ColorCyan  = Color{0, 1, 1, 1}
)

// Span is one colored fragment of console output. Spans are immutable once appended.
type Span struct {
	Color Color  `json:"color"`
	Text  string `json:"text"`
}

// Palette holds the colors used to render console output.
type Palette struct {
	Normal Color `json:"normal"`
	Error  Color `json:"error"`
	Prompt Color `json:"prompt"`
}

// DefaultPalette returns opaque white, red and cyan for normal, error and prompt output.
func DefaultPalette() Palette {
	return Palette{
		Normal: ColorWhite,
		Error:  ColorRed,
		Prompt: ColorCyan,
	}
}
