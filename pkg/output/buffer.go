package output

import (
	"strings"
	"unicode"

	"github.com/aretw0/devconsole/pkg/domain"
)

// PromptMarker is the text of the span that precedes an echoed command line.
const PromptMarker = " > "

// Buffer is an append-only sequence of spans, cleared only as a whole.
type Buffer struct {
	palette domain.Palette
	spans   []domain.Span
	epoch   uint64
	errors  int
}

// NewBuffer creates an empty buffer rendering with palette.
func NewBuffer(palette domain.Palette) *Buffer {
	return &Buffer{palette: palette}
}

// Palette returns the colors the buffer renders with.
func (b *Buffer) Palette() domain.Palette {
	return b.palette
}

// Append pushes one span as is.
func (b *Buffer) Append(s domain.Span) {
	b.spans = append(b.spans, s)
}

// AppendLine trims trailing whitespace from the span's text and, if anything is left,
// pushes it terminated by a newline. Whitespace-only text is dropped.
func (b *Buffer) AppendLine(s domain.Span) {
	text := strings.TrimRightFunc(s.Text, unicode.IsSpace)
	if text == "" {
		return
	}
	s.Text = text + "\n"
	b.Append(s)
}

// Clear drops every span. It advances the epoch so renderers can tell a clear apart
// from a buffer that simply has not grown.
func (b *Buffer) Clear() {
	b.spans = nil
	b.epoch++
}

// RenderResult appends a success payload in the normal color, or the error message in the error color.
func (b *Buffer) RenderResult(res domain.Result) {
	if res.Err != nil {
		b.WriteError(res.Err)
		return
	}
	b.WriteString(res.Value)
}

// Prompt echoes a submitted line: the prompt marker followed by the line itself.
func (b *Buffer) Prompt(line string) {
	b.Append(domain.Span{Color: b.palette.Prompt, Text: PromptMarker})
	b.Append(domain.Span{Color: b.palette.Normal, Text: line + "\n"})
}

// WriteString appends text in the normal color.
func (b *Buffer) WriteString(text string) {
	b.AppendLine(domain.Span{Color: b.palette.Normal, Text: text})
}

// WriteColored appends text in c.
func (b *Buffer) WriteColored(c domain.Color, text string) {
	b.AppendLine(domain.Span{Color: c, Text: text})
}

// WriteResult is RenderResult.
func (b *Buffer) WriteResult(res domain.Result) {
	b.RenderResult(res)
}

// WriteError appends err's message in the error color.
func (b *Buffer) WriteError(err error) {
	if err == nil {
		return
	}
	b.errors++
	b.AppendLine(domain.Span{Color: b.palette.Error, Text: err.Error()})
}

// Flatten joins the text of every span with newlines, for copy-out.
func (b *Buffer) Flatten() string {
	texts := make([]string, len(b.spans))
	for i, s := range b.spans {
		texts[i] = s.Text
	}
	return strings.Join(texts, "\n")
}

// Spans returns a copy of the current spans.
func (b *Buffer) Spans() []domain.Span {
	return append([]domain.Span(nil), b.spans...)
}

// Since returns a copy of the spans appended after the first mark spans.
// A mark past the end yields nothing.
func (b *Buffer) Since(mark int) []domain.Span {
	if mark < 0 {
		mark = 0
	}
	if mark >= len(b.spans) {
		return nil
	}
	return append([]domain.Span(nil), b.spans[mark:]...)
}

// Len reports the number of spans.
func (b *Buffer) Len() int {
	return len(b.spans)
}

// Epoch counts how many times the buffer has been cleared.
func (b *Buffer) Epoch() uint64 {
	return b.epoch
}

// Errors counts the errors written since the buffer was created. Clearing does not reset it.
func (b *Buffer) Errors() int {
	return b.errors
}
