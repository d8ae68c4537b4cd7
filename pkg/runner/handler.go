package runner

import (
	"context"

	"github.com/aretw0/devconsole/pkg/domain"
)

// Frame is the output of one executed line.
type Frame struct {
	// Spans appended since the previous frame, or the whole buffer after a clear.
	Spans []domain.Span `json:"spans"`
	// Cleared reports that the buffer was cleared while the line ran.
	Cleared bool `json:"cleared"`
}

// IOHandler defines the strategy for interacting with the user.
// This allows switching between Text (terminal) and JSON (structured) modes.
type IOHandler interface {
	// Input reads one command line. It returns ctx.Err() when ctx is cancelled first.
	Input(ctx context.Context) (string, error)

	// Render presents the output of one executed line.
	Render(ctx context.Context, frame Frame) error

	// Notice presents a meta-message that is not part of the console output,
	// such as a confirmation question.
	Notice(ctx context.Context, msg string) error
}
