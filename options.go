package devconsole

import (
	"log/slog"

	"github.com/aretw0/devconsole/pkg/domain"
)

// Option defines a functional option for configuring the Console.
type Option func(*Console)

// WithLogger sets a custom structured logger for the console and its resolver.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Console) {
		c.logger = logger
	}
}

// WithPalette overrides the normal, error and prompt colors.
func WithPalette(p domain.Palette) Option {
	return func(c *Console) {
		c.palette = p
	}
}

// WithLifecycleHooks registers observability hooks fired on every dispatch.
func WithLifecycleHooks(hooks domain.LifecycleHooks) Option {
	return func(c *Console) {
		c.hooks = c.hooks.Merge(hooks)
	}
}

// WithResetOnStart controls whether every property is reset to its default when the
// console is created (default: true).
func WithResetOnStart(reset bool) Option {
	return func(c *Console) {
		c.resetOnStart = reset
	}
}

// WithoutBuiltins hides help, clear, find and reset.
func WithoutBuiltins() Option {
	return func(c *Console) {
		c.builtins = nil
	}
}
