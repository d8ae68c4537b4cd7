package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/aretw0/devconsole"
	"github.com/aretw0/devconsole/internal/config"
	"github.com/aretw0/devconsole/internal/presentation/reference"
	"github.com/aretw0/devconsole/internal/presentation/tui"
	"github.com/aretw0/devconsole/internal/validator"
	"github.com/aretw0/devconsole/pkg/adapters/manifest"
	"github.com/aretw0/devconsole/pkg/adapters/process"
	"github.com/aretw0/devconsole/pkg/output"
)

// ErrCommandFailed reports that a one-shot command wrote at least one error.
var ErrCommandFailed = errors.New("command failed")

// Exec runs one command against the configured console and writes its output to w.
// The command name and its arguments are dispatched as given, without re-splitting.
func Exec(ctx context.Context, cfg *config.Config, command string, args []string, w io.Writer) error {
	logger, err := createLogger(cfg.Debug, cfg.LogLevel)
	if err != nil {
		return err
	}

	s, err := NewSession(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer s.Close()

	s.Console.Dispatch(command, args)

	buf := s.Console.Buffer()
	if _, err := io.WriteString(w, output.NewPainterFor(w).Render(buf.Spans())); err != nil {
		return err
	}
	if buf.Errors() > 0 {
		return ErrCommandFailed
	}
	return nil
}

// Validate loads the manifest at path and checks the registry invariants of the
// resulting console, built-in commands included.
func Validate(ctx context.Context, path, toolsPath string) error {
	console, err := loadConsole(ctx, path, toolsPath)
	if err != nil {
		return err
	}
	return validator.ValidateRegistry(console)
}

// DocOptions controls the reference output.
type DocOptions struct {
	// Raw writes markdown without terminal rendering.
	Raw   bool
	Style string
	Width int
}

// Doc writes the command reference of the manifest at path to w.
// Markdown is rendered with glamour when w is a terminal and Raw is unset.
func Doc(ctx context.Context, path, toolsPath string, w io.Writer, opts DocOptions) error {
	console, err := loadConsole(ctx, path, toolsPath)
	if err != nil {
		return err
	}

	md := reference.GenerateMarkdown(console, "Command reference")

	render := tui.PlainRenderer()
	if f, ok := w.(*os.File); ok && !opts.Raw && isTerminal(f) {
		if render, err = tui.NewRenderer(opts.Style, opts.Width); err != nil {
			return err
		}
	}

	out, err := render(md)
	if err != nil {
		return fmt.Errorf("render reference: %w", err)
	}
	_, err = io.WriteString(w, out)
	return err
}

// loadConsole builds a console over the manifest without touching any value store.
func loadConsole(ctx context.Context, path, toolsPath string) (*devconsole.Console, error) {
	tools := map[string]process.ToolConfig{}
	if toolsPath != "" {
		var err error
		if tools, err = process.LoadTools(toolsPath); err != nil {
			return nil, err
		}
	}

	loader := manifest.New(manifest.WithRunner(process.NewRunner(process.WithTools(tools))))
	tree, err := loader.LoadFile(ctx, path)
	if err != nil {
		return nil, err
	}
	return devconsole.New(tree, devconsole.WithResetOnStart(false)), nil
}
