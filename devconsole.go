package devconsole

import (
	"io"
	"log/slog"
	"strings"

	"github.com/aretw0/devconsole/internal/runtime"
	"github.com/aretw0/devconsole/pkg/builtins"
	"github.com/aretw0/devconsole/pkg/domain"
	"github.com/aretw0/devconsole/pkg/output"
	"github.com/aretw0/devconsole/pkg/ports"
)

// Console is the high-level entry point for the devconsole library.
// It owns the output buffer, resolves command lines against the host registry with
// the built-in commands in front of it, and records history.
//
// A Console is not safe for concurrent use. Hosts with several goroutines serialize
// access to it and to the registry.
type Console struct {
	host     ports.Registry
	builtins []ports.Node
	engine   *runtime.Engine
	buffer   *output.Buffer
	history  []string

	palette      domain.Palette
	hooks        domain.LifecycleHooks
	logger       *slog.Logger
	resetOnStart bool
}

// New creates a console over reg.
func New(reg ports.Registry, opts ...Option) *Console {
	c := &Console{
		host:         reg,
		builtins:     builtins.Nodes(),
		palette:      domain.DefaultPalette(),
		resetOnStart: true,
	}
	for _, opt := range opts {
		opt(c)
	}

	if c.host == nil {
		c.host = ports.VisitorFunc(func(func(ports.Node)) {})
	}
	if c.logger == nil {
		c.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	c.buffer = output.NewBuffer(c.palette)
	c.engine = runtime.NewEngine(c,
		runtime.WithLogger(c.logger),
		runtime.WithLifecycleHooks(c.hooks),
	)

	if c.resetOnStart {
		c.engine.ResetAll()
	}
	return c
}

// Visit presents the built-in commands followed by the host registry.
func (c *Console) Visit(fn func(ports.Node)) {
	for _, n := range c.builtins {
		fn(n)
	}
	c.host.Visit(fn)
}

// Submit echoes line after the prompt marker, then executes it.
func (c *Console) Submit(line string) domain.Result {
	c.buffer.Prompt(line)
	return c.Exec(line)
}

// Exec splits line on whitespace and dispatches the first field with the rest as arguments.
// The result is rendered into the buffer. A blank line does nothing.
func (c *Console) Exec(line string) domain.Result {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return domain.Ok("")
	}
	c.history = append(c.history, line)
	return c.Dispatch(fields[0], fields[1:])
}

// Dispatch runs one command and renders its result into the buffer.
func (c *Console) Dispatch(command string, args []string) domain.Result {
	res := c.engine.Dispatch(command, args, c)
	c.buffer.RenderResult(res)
	return res
}

// Buffer returns the output buffer.
func (c *Console) Buffer() *output.Buffer {
	return c.buffer
}

// Flatten returns the whole output as text, for copy-out.
func (c *Console) Flatten() string {
	return c.buffer.Flatten()
}

// History returns a copy of the executed lines, oldest first.
func (c *Console) History() []string {
	return append([]string(nil), c.history...)
}

// Resolver returns the resolver bound to the console's registry.
func (c *Console) Resolver() ports.Resolver {
	return c.engine
}

// Palette returns the console colors.
func (c *Console) Palette() domain.Palette {
	return c.palette
}

// WriteString appends text in the normal color.
func (c *Console) WriteString(text string) { c.buffer.WriteString(text) }

// WriteColored appends text in col.
func (c *Console) WriteColored(col domain.Color, text string) { c.buffer.WriteColored(col, text) }

// WriteResult appends the rendering of res.
func (c *Console) WriteResult(res domain.Result) { c.buffer.RenderResult(res) }

// WriteError appends err in the error color.
func (c *Console) WriteError(err error) { c.buffer.WriteError(err) }

// Clear empties the output buffer.
func (c *Console) Clear() { c.buffer.Clear() }

var (
	_ ports.Frontend = (*Console)(nil)
	_ ports.Registry = (*Console)(nil)
)
