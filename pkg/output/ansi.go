package output

import (
	"io"
	"strings"

	"github.com/aretw0/devconsole/pkg/domain"
	"github.com/muesli/termenv"
)

// Painter turns spans into terminal text using a termenv color profile.
// With the Ascii profile the output is plain text.
type Painter struct {
	profile termenv.Profile
}

// NewPainter creates a painter for profile.
func NewPainter(profile termenv.Profile) *Painter {
	return &Painter{profile: profile}
}

// NewPainterFor detects the color profile of w.
func NewPainterFor(w io.Writer) *Painter {
	return NewPainter(termenv.NewOutput(w).Profile)
}

// Paint renders one span. A trailing newline is kept outside the escape sequence.
func (p *Painter) Paint(s domain.Span) string {
	body, nl := strings.CutSuffix(s.Text, "\n")
	if body == "" {
		return s.Text
	}
	out := p.profile.String(body).Foreground(p.profile.Color(Hex(s.Color))).String()
	if nl {
		out += "\n"
	}
	return out
}

// Render paints spans in order.
func (p *Painter) Render(spans []domain.Span) string {
	var b strings.Builder
	for _, s := range spans {
		b.WriteString(p.Paint(s))
	}
	return b.String()
}
