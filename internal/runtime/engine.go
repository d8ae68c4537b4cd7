package runtime

import (
	"errors"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/aretw0/devconsole/pkg/domain"
	"github.com/aretw0/devconsole/pkg/ports"
)

// Engine resolves command names against one registry.
// It holds the registry for its lifetime and is not safe for concurrent use.
type Engine struct {
	registry ports.Registry
	logger   *slog.Logger
	hooks    domain.LifecycleHooks
	now      func() time.Time
}

// EngineOption configures the Engine.
type EngineOption func(*Engine)

// WithLogger sets the structured logger.
func WithLogger(logger *slog.Logger) EngineOption {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// WithLifecycleHooks registers observability hooks.
func WithLifecycleHooks(hooks domain.LifecycleHooks) EngineOption {
	return func(e *Engine) {
		e.hooks = hooks
	}
}

// WithClock overrides the time source used for event timestamps and durations.
func WithClock(now func() time.Time) EngineOption {
	return func(e *Engine) {
		if now != nil {
			e.now = now
		}
	}
}

// NewEngine creates an engine bound to reg.
func NewEngine(reg ports.Registry, opts ...EngineOption) *Engine {
	e := &Engine{
		registry: reg,
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

var _ ports.Resolver = (*Engine)(nil)

// Classify looks name up as an exact path.
func (e *Engine) Classify(name string) domain.Kind {
	kind := domain.KindNotFound
	Find(e.registry, name, func(n ports.Node) {
		kind = Classify(n)
	})
	return kind
}

// Read returns the current value of the Property at name.
func (e *Engine) Read(name string) domain.Result {
	res := domain.Fail(domain.ErrUnknownProperty)
	Find(e.registry, name, func(n ports.Node) {
		if prop, ok := n.(ports.Property); ok {
			res = domain.Ok(prop.Get())
		}
	})
	return res
}

// Write parses and applies value to the Property at name.
func (e *Engine) Write(name, value string) domain.Result {
	res := domain.Fail(domain.ErrUnknownProperty)
	Find(e.registry, name, func(n ports.Node) {
		prop, ok := n.(ports.Property)
		if !ok {
			return
		}
		if err := prop.Set(value); err != nil {
			if errors.Is(err, ports.ErrStoreUnavailable) {
				e.logger.Error("property store failed", "path", name, "error", err)
				err = ports.ErrStoreUnavailable
			}
			res = domain.Fail(domain.NewInvalidValue(err.Error()))
			return
		}
		res = domain.Ok("")
	})
	return res
}

// Invoke calls the Action at name with args.
// The action runs after the lookup visit has returned, so it may traverse the registry itself.
func (e *Engine) Invoke(name string, args []string, fe ports.Frontend) domain.Result {
	var action ports.Action
	Find(e.registry, name, func(n ports.Node) {
		action, _ = n.(ports.Action)
	})
	if action == nil {
		return domain.Fail(domain.ErrUnknownCommand)
	}

	if fe == nil {
		fe = discardFrontend{resolver: e}
	}
	action.Invoke(args, fe)
	return domain.Ok("")
}

// ResetOne restores the Property at name to its default.
func (e *Engine) ResetOne(name string) domain.Result {
	res := domain.Fail(domain.ErrUnknownProperty)
	Find(e.registry, name, func(n ports.Node) {
		if prop, ok := n.(ports.Property); ok {
			prop.Reset()
			res = domain.Ok("")
		}
	})
	return res
}

// ResetAll restores every Property in the registry to its default.
func (e *Engine) ResetAll() domain.Result {
	count := 0
	Walk(e.registry, func(_ string, n ports.Node) {
		if prop, ok := n.(ports.Property); ok {
			prop.Reset()
			count++
		}
	})
	e.logger.Debug("reset all properties", "count", count)
	return domain.Ok("OK")
}

// Search appends the detail block of every node whose path satisfies match, in traversal order.
func (e *Engine) Search(match func(path string) bool) domain.Result {
	var out strings.Builder
	Walk(e.registry, func(path string, n ports.Node) {
		if match(path) {
			WriteDetails(&out, path, n)
		}
	})
	if out.Len() == 0 {
		return domain.Fail(domain.ErrNoResults)
	}
	return domain.Ok(out.String())
}

// Describe returns the detail block of the node at exactly name.
func (e *Engine) Describe(name string) domain.Result {
	var out strings.Builder
	Find(e.registry, name, func(n ports.Node) {
		WriteDetails(&out, name, n)
	})
	if out.Len() == 0 {
		return domain.Fail(domain.ErrUnknownProperty)
	}
	return domain.Ok(out.String())
}

// Dispatch resolves name and runs the matching operation:
// Property reads (or writes args[0]), Action invokes, List lists its subtree.
func (e *Engine) Dispatch(name string, args []string, fe ports.Frontend) domain.Result {
	start := e.now()
	kind := e.Classify(name)

	var res domain.Result
	switch kind {
	case domain.KindProperty:
		if len(args) > 0 {
			res = e.Write(name, args[0])
		} else {
			res = e.Read(name)
		}
	case domain.KindAction:
		res = e.Invoke(name, args, fe)
	case domain.KindList:
		res = e.Search(func(path string) bool {
			return strings.HasPrefix(path, name)
		})
	default:
		res = domain.Fail(domain.ErrUnknownCommand)
	}

	e.logger.Debug("dispatch",
		"command", name,
		"kind", kind.String(),
		"args", args,
		"outcome", res.Outcome(),
	)

	if e.hooks.OnDispatch != nil {
		e.hooks.OnDispatch(&domain.CommandEvent{
			Timestamp: start,
			Command:   name,
			Args:      args,
			Kind:      kind,
			Outcome:   res.Outcome(),
			Err:       res.Err,
			Duration:  e.now().Sub(start),
		})
	}

	return res
}

// discardFrontend serves actions invoked without a frontend.
type discardFrontend struct {
	resolver ports.Resolver
}

func (discardFrontend) WriteString(string)                {}
func (discardFrontend) WriteColored(domain.Color, string) {}
func (discardFrontend) WriteResult(domain.Result)         {}
func (discardFrontend) WriteError(error)                  {}
func (discardFrontend) Clear()                            {}

func (d discardFrontend) Resolver() ports.Resolver { return d.resolver }
