package runner

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/aretw0/devconsole"
	"github.com/aretw0/devconsole/pkg/domain"
	"github.com/aretw0/devconsole/pkg/output"
)

// Runner handles the read-execute-render loop of a console using provided IO.
// It uses an IOHandler strategy to abstract the interaction mode (Text vs JSON).
type Runner struct {
	// Handler is the strategy for IO. If nil, a TextHandler over Stdin/Stdout is used.
	Handler IOHandler

	// Interceptor is a middleware for command policy.
	// If nil, every command is allowed.
	Interceptor Interceptor

	// Logger is used for internal debug logging.
	// If nil, a no-op logger is used.
	Logger *slog.Logger

	// Echo records each line in the buffer after the prompt marker before it runs.
	Echo bool
}

// NewRunner creates a new Runner.
func NewRunner(opts ...Option) *Runner {
	r := &Runner{}
	for _, opt := range opts {
		opt(r)
	}
	if r.Logger == nil {
		r.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return r
}

// Run drives console until the input ends, the user types exit or quit,
// ctx is cancelled or an interrupt arrives. None of those is an error.
// Anything already in the buffer is rendered before the first prompt.
func (r *Runner) Run(ctx context.Context, console *devconsole.Console) error {
	handler := r.resolveHandler()
	if c, ok := handler.(io.Closer); ok && r.Handler == nil {
		defer c.Close()
	}
	interceptor := r.resolveInterceptor()
	buf := console.Buffer()

	signals := NewSignalManager(ctx)
	defer signals.Stop()

	if buf.Len() > 0 {
		if err := handler.Render(ctx, Frame{Spans: buf.Spans()}); err != nil {
			return fmt.Errorf("render error: %w", err)
		}
	}

	for {
		currentCtx := signals.Context()

		line, err := handler.Input(currentCtx)
		if err != nil {
			signals.CheckRace()
			if currentCtx.Err() != nil {
				r.Logger.Debug("runner stopped", "cause", context.Cause(currentCtx))
				return nil
			}
			if errors.Is(err, io.EOF) {
				r.Logger.Debug("input closed")
				return nil
			}
			return fmt.Errorf("input error: %w", err)
		}

		mark, epoch := buf.Len(), buf.Epoch()

		clean, err := SanitizeInput(line)
		if err != nil {
			reportError(console, err)
			if err := r.flush(currentCtx, handler, buf, mark, epoch); err != nil {
				return err
			}
			continue
		}

		if r.isExit(console, clean) {
			r.Logger.Debug("exit requested")
			return nil
		}

		allowed, err := interceptor(currentCtx, clean)
		if err != nil {
			if currentCtx.Err() != nil || errors.Is(err, io.EOF) {
				return nil
			}
			return fmt.Errorf("interceptor error: %w", err)
		}

		if !allowed {
			r.Logger.Info("command denied", "line", clean)
			reportError(console, ErrDenied)
		} else if r.Echo {
			console.Submit(clean)
		} else {
			console.Exec(clean)
		}

		if err := r.flush(currentCtx, handler, buf, mark, epoch); err != nil {
			return err
		}
	}
}

// reportError writes a runner error to the console as a sentence.
func reportError(console *devconsole.Console, err error) {
	msg := err.Error()
	if msg == "" {
		console.WriteError(err)
		return
	}
	first, size := utf8.DecodeRuneInString(msg)
	console.WriteError(errors.New(string(unicode.ToUpper(first)) + msg[size:]))
}

func (r *Runner) flush(ctx context.Context, h IOHandler, buf *output.Buffer, mark int, epoch uint64) error {
	frame := Frame{Spans: buf.Since(mark)}
	if buf.Epoch() != epoch {
		frame = Frame{Spans: buf.Spans(), Cleared: true}
	}
	if err := h.Render(ctx, frame); err != nil {
		return fmt.Errorf("render error: %w", err)
	}
	return nil
}

// isExit reports whether line asks to leave the loop. A registry entry named
// exit or quit takes precedence.
func (r *Runner) isExit(console *devconsole.Console, line string) bool {
	fields := strings.Fields(line)
	if len(fields) != 1 {
		return false
	}
	if fields[0] != "exit" && fields[0] != "quit" {
		return false
	}
	return console.Resolver().Classify(fields[0]) == domain.KindNotFound
}

func (r *Runner) resolveHandler() IOHandler {
	if r.Handler != nil {
		return r.Handler
	}
	return NewTextHandler(os.Stdin, os.Stdout)
}

func (r *Runner) resolveInterceptor() Interceptor {
	if r.Interceptor != nil {
		return r.Interceptor
	}
	return AutoApproveMiddleware()
}
