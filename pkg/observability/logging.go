package observability

import (
	"context"
	"log/slog"

	"github.com/aretw0/devconsole/pkg/domain"
)

// LogHooks returns lifecycle hooks that log every dispatched command.
// Successful commands log at Debug, failures at Info.
func LogHooks(logger *slog.Logger) domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnDispatch: func(e *domain.CommandEvent) {
			level := slog.LevelDebug
			if e.Err != nil {
				level = slog.LevelInfo
			}
			logger.Log(context.Background(), level, "command",
				"command", e.Command,
				"args", len(e.Args),
				"kind", e.Kind.String(),
				"outcome", e.Outcome,
				"duration", e.Duration,
			)
		},
	}
}
