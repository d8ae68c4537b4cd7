package runner

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
)

// ErrDenied is written to the console when an interceptor blocks a command.
var ErrDenied = errors.New("command denied")

// Interceptor is a middleware that can block a command line before it runs.
// It returns true if execution should proceed.
type Interceptor func(ctx context.Context, line string) (bool, error)

// MultiInterceptor chains multiple interceptors. The first block or error wins.
func MultiInterceptor(interceptors ...Interceptor) Interceptor {
	return func(ctx context.Context, line string) (bool, error) {
		for _, interceptor := range interceptors {
			allowed, err := interceptor(ctx, line)
			if err != nil {
				return false, err
			}
			if !allowed {
				return false, nil
			}
		}
		return true, nil
	}
}

// ConfirmationMiddleware asks the user through handler before running any of commands.
// Other commands pass through untouched.
func ConfirmationMiddleware(handler IOHandler, commands ...string) Interceptor {
	return func(ctx context.Context, line string) (bool, error) {
		fields := strings.Fields(line)
		if len(fields) == 0 || !slices.Contains(commands, fields[0]) {
			return true, nil
		}

		if err := handler.Notice(ctx, fmt.Sprintf("Run '%s'? [y/N]", line)); err != nil {
			return false, err
		}
		input, err := handler.Input(ctx)
		if err != nil {
			return false, err
		}

		input = strings.TrimSpace(strings.ToLower(input))
		return input == "y" || input == "yes", nil
	}
}

// AutoApproveMiddleware allows everything.
func AutoApproveMiddleware() Interceptor {
	return func(context.Context, string) (bool, error) {
		return true, nil
	}
}
