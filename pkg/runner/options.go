package runner

import (
	"log/slog"
)

// Option defines a functional option for configuring the Runner.
type Option func(*Runner)

// WithLogger configures the structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Runner) {
		r.Logger = logger
	}
}

// WithInputHandler configures a custom IOHandler.
func WithInputHandler(handler IOHandler) Option {
	return func(r *Runner) {
		r.Handler = handler
	}
}

// WithInterceptor configures the command policy middleware.
func WithInterceptor(interceptor Interceptor) Option {
	return func(r *Runner) {
		r.Interceptor = interceptor
	}
}

// WithEcho makes the runner echo every line into the console buffer after the prompt
// marker. Useful when the handler does not echo input itself (JSON mode).
func WithEcho(echo bool) Option {
	return func(r *Runner) {
		r.Echo = echo
	}
}
