package tui

import (
	"github.com/charmbracelet/glamour"
)

// Renderer transforms markdown into terminal text.
type Renderer func(markdown string) (string, error)

// NewRenderer returns a Renderer backed by glamour.
// An empty style detects a light or dark background; width 0 keeps the default wrap.
func NewRenderer(style string, width int) (Renderer, error) {
	var opts []glamour.TermRendererOption
	if width > 0 {
		opts = append(opts, glamour.WithWordWrap(width))
	}
	if style == "" {
		opts = append(opts, glamour.WithAutoStyle())
	} else {
		opts = append(opts, glamour.WithStandardStyle(style))
	}

	r, err := glamour.NewTermRenderer(opts...)
	if err != nil {
		return nil, err
	}
	return r.Render, nil
}

// PlainRenderer returns markdown unchanged.
func PlainRenderer() Renderer {
	return func(markdown string) (string, error) {
		return markdown, nil
	}
}
