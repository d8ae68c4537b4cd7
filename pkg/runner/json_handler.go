package runner

import (
	"bufio"
	"context"
	"encoding/json"
	"io"
	"os"
	"strings"

	"github.com/aretw0/devconsole/pkg/domain"
)

// JSONHandler implements the IOHandler interface for JSON-Lines communication.
//
// Each input line is either a JSON string, an object with a "line" field, or raw text.
// Each executed line produces exactly one Frame object on the output.
type JSONHandler struct {
	Reader  *bufio.Reader
	Writer  io.Writer
	Encoder *json.Encoder
}

// Request is the object form of a JSON input line.
type Request struct {
	Line string `json:"line"`
}

// NoticeMessage is the object emitted by Notice.
type NoticeMessage struct {
	Notice string `json:"notice"`
}

// NewJSONHandler creates a handler for JSON IO.
func NewJSONHandler(r io.Reader, w io.Writer) *JSONHandler {
	if r == nil {
		r = os.Stdin
	}
	if w == nil {
		w = os.Stdout
	}
	return &JSONHandler{
		Reader:  bufio.NewReader(r),
		Writer:  w,
		Encoder: json.NewEncoder(w),
	}
}

// Input reads one line. Reads are not interruptible; ctx is checked before reading.
func (h *JSONHandler) Input(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	text, err := h.Reader.ReadString('\n')
	if err != nil && (err != io.EOF || text == "") {
		return "", err
	}

	text = strings.TrimSpace(text)

	var val string
	if err := json.Unmarshal([]byte(text), &val); err == nil {
		return val, nil
	}

	var req Request
	if strings.HasPrefix(text, "{") {
		if err := json.Unmarshal([]byte(text), &req); err == nil {
			return req.Line, nil
		}
	}

	// Fallback: plain text
	return text, nil
}

// Render emits the frame as one JSON line.
func (h *JSONHandler) Render(_ context.Context, frame Frame) error {
	if frame.Spans == nil {
		frame.Spans = []domain.Span{}
	}
	return h.Encoder.Encode(frame)
}

// Notice emits the message as one JSON line.
func (h *JSONHandler) Notice(_ context.Context, msg string) error {
	return h.Encoder.Encode(NoticeMessage{Notice: msg})
}
