package runner

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/aretw0/devconsole/pkg/domain"
	"github.com/aretw0/devconsole/pkg/output"
	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// TextHandler implements the interactive terminal interface.
// Colors and screen clearing are only emitted when Writer is a terminal.
type TextHandler struct {
	Reader  *bufio.Reader
	Writer  io.Writer
	Painter *output.Painter
	Palette domain.Palette

	tty       bool
	term      *termenv.Output
	inputChan chan inputResult
	startOnce sync.Once
	done      chan struct{}
	pumpDone  chan struct{}
	closeOnce sync.Once
}

type inputResult struct {
	text string
	err  error
}

// TextHandlerOption defines configuration for TextHandler.
type TextHandlerOption func(*TextHandler)

// WithTextHandlerPalette configures the prompt color.
func WithTextHandlerPalette(p domain.Palette) TextHandlerOption {
	return func(h *TextHandler) {
		h.Palette = p
	}
}

// WithTextHandlerPainter overrides color detection.
func WithTextHandlerPainter(p *output.Painter) TextHandlerOption {
	return func(h *TextHandler) {
		h.Painter = p
	}
}

// NewTextHandler creates a handler for standard text IO.
func NewTextHandler(r io.Reader, w io.Writer, opts ...TextHandlerOption) *TextHandler {
	if r == nil {
		r = os.Stdin
	}
	if w == nil {
		w = os.Stdout
	}
	h := &TextHandler{
		Reader:  bufio.NewReader(r),
		Writer:  w,
		Palette: domain.DefaultPalette(),
		tty:     isTerminal(w),
		term:    termenv.NewOutput(w),
		done:    make(chan struct{}),
	}

	for _, opt := range opts {
		opt(h)
	}

	if h.Painter == nil {
		if h.tty {
			h.Painter = output.NewPainter(h.term.Profile)
		} else {
			h.Painter = output.NewPainter(termenv.Ascii)
		}
	}
	return h
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func (h *TextHandler) initPump() {
	h.startOnce.Do(func() {
		h.inputChan = make(chan inputResult)
		h.pumpDone = make(chan struct{})
		go h.pump()
	})
}

func (h *TextHandler) pump() {
	defer close(h.pumpDone)
	for {
		text, err := h.Reader.ReadString('\n')

		// If we got text (even with EOF), send it
		if text != "" && !h.send(inputResult{text: text}) {
			return
		}

		if err != nil {
			if err == io.EOF {
				close(h.inputChan)
				return
			}
			if !h.send(inputResult{err: err}) {
				return
			}
			// Backoff to prevent CPU spikes on persistent failure
			time.Sleep(50 * time.Millisecond)
		}
	}
}

// send hands res to Input. It reports false once the handler is closed.
func (h *TextHandler) send(res inputResult) bool {
	select {
	case h.inputChan <- res:
		return true
	case <-h.done:
		return false
	}
}

// Close stops the input pump. A read already blocked on Reader ends the pump
// as soon as it returns. Input reports io.EOF afterwards.
func (h *TextHandler) Close() error {
	h.closeOnce.Do(func() { close(h.done) })
	return nil
}

// Input prints the prompt and waits for one line.
func (h *TextHandler) Input(ctx context.Context) (string, error) {
	h.initPump()

	select {
	case <-h.done:
		return "", io.EOF
	case <-ctx.Done():
		return "", ctx.Err()
	default:
		fmt.Fprint(h.Writer, h.Painter.Paint(domain.Span{Color: h.Palette.Prompt, Text: "> "}))
	}

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case <-h.done:
		return "", io.EOF
	case res, ok := <-h.inputChan:
		if !ok {
			return "", io.EOF
		}
		if res.err != nil {
			return "", res.err
		}
		return res.text, nil
	}
}

// Render paints the frame. A cleared frame wipes the terminal first.
func (h *TextHandler) Render(_ context.Context, frame Frame) error {
	if frame.Cleared && h.tty {
		h.term.ClearScreen()
	}
	_, err := io.WriteString(h.Writer, h.Painter.Render(frame.Spans))
	return err
}

// Notice prints a system message on its own line.
func (h *TextHandler) Notice(_ context.Context, msg string) error {
	_, err := fmt.Fprintf(h.Writer, "[System] %s\n", msg)
	return err
}
