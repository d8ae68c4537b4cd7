package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/aretw0/devconsole"
	httpAdapter "github.com/aretw0/devconsole/internal/adapters/http"
	"github.com/aretw0/devconsole/internal/config"
	"github.com/aretw0/devconsole/internal/presentation/tui"
	"github.com/aretw0/devconsole/pkg/adapters/manifest"
	"github.com/aretw0/devconsole/pkg/adapters/process"
	"github.com/aretw0/devconsole/pkg/adapters/redis"
	"github.com/aretw0/devconsole/pkg/observability"
	"github.com/aretw0/devconsole/pkg/registry"
	"github.com/aretw0/devconsole/pkg/runner"
	"github.com/prometheus/client_golang/prometheus"
)

// Session is a console assembled from configuration.
type Session struct {
	Console *devconsole.Console
	Tree    *registry.Tree
	Metrics *prometheus.Registry

	logger *slog.Logger
	store  *redis.Store
}

// Close releases the value store connection, if any.
func (s *Session) Close() error {
	if s.store == nil {
		return nil
	}
	return s.store.Close()
}

// NewSession loads the manifest named by cfg, binds it to redis when configured
// and creates the console. ctx bounds the tool actions of the manifest.
func NewSession(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Session, error) {
	tools := map[string]process.ToolConfig{}
	if cfg.Tools != "" {
		var err error
		if tools, err = process.LoadTools(cfg.Tools); err != nil {
			return nil, err
		}
	}

	procRunner := process.NewRunner(
		process.WithTools(tools),
		process.WithBaseDir(filepath.Dir(cfg.Manifest)),
		process.WithLogger(logger),
	)
	loader := manifest.New(manifest.WithRunner(procRunner), manifest.WithLogger(logger))

	tree, err := loader.LoadFile(ctx, cfg.Manifest)
	if err != nil {
		return nil, err
	}

	s := &Session{Tree: tree, Metrics: prometheus.NewRegistry(), logger: logger}

	if cfg.Redis.Addr != "" {
		s.store = redis.New(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB, redis.WithPrefix(cfg.Redis.Prefix))
		if err := s.store.Ping(ctx); err != nil {
			s.store.Close()
			return nil, fmt.Errorf("redis %s: %w", cfg.Redis.Addr, err)
		}
		bound := tree.Bind(s.store)
		logger.Info("properties bound to redis", "addr", cfg.Redis.Addr, "count", bound)
	}

	palette, err := cfg.Palette.Palette()
	if err != nil {
		s.Close()
		return nil, err
	}

	metrics, err := observability.NewMetrics(s.Metrics)
	if err != nil {
		s.Close()
		return nil, err
	}

	s.Console = devconsole.New(tree,
		devconsole.WithLogger(logger),
		devconsole.WithPalette(palette),
		devconsole.WithResetOnStart(cfg.ResetOnStart),
		devconsole.WithLifecycleHooks(metrics.Hooks()),
		devconsole.WithLifecycleHooks(observability.LogHooks(logger)),
	)
	return s, nil
}

// RunOptions selects the interaction mode of RunSession.
type RunOptions struct {
	JSON  bool
	Quiet bool
	In    io.Reader
	Out   io.Writer
}

// RunSession runs the interactive console until the user leaves or a signal arrives.
func RunSession(cfg *config.Config, opts RunOptions) error {
	logger, err := createLogger(cfg.Debug, cfg.LogLevel)
	if err != nil {
		return err
	}
	if opts.In == nil {
		opts.In = os.Stdin
	}
	if opts.Out == nil {
		opts.Out = os.Stdout
	}

	sigCtx := NewSignalContext(context.Background())
	defer sigCtx.Cancel()

	s, err := NewSession(sigCtx, cfg, logger)
	if err != nil {
		return err
	}
	defer s.Close()

	serveErr := make(chan error, 1)
	if cfg.Metrics.Addr != "" {
		go func() {
			serveErr <- httpAdapter.Serve(sigCtx, cfg.Metrics.Addr, httpAdapter.NewHandler(s.Metrics), logger)
		}()
	} else {
		serveErr <- nil
	}

	var handler runner.IOHandler
	if opts.JSON {
		handler = runner.NewJSONHandler(opts.In, opts.Out)
	} else {
		if f, ok := opts.Out.(*os.File); ok && !opts.Quiet && isTerminal(f) {
			tui.PrintBanner(f, devconsole.Version)
		}
		text := runner.NewTextHandler(opts.In, opts.Out,
			runner.WithTextHandlerPalette(s.Console.Palette()))
		defer text.Close()
		handler = text
	}

	runnerOpts := []runner.Option{
		runner.WithLogger(logger),
		runner.WithInputHandler(handler),
		runner.WithEcho(opts.JSON),
	}
	if len(cfg.Confirm) > 0 {
		runnerOpts = append(runnerOpts, runner.WithInterceptor(runner.ConfirmationMiddleware(handler, cfg.Confirm...)))
	}

	runErr := runner.NewRunner(runnerOpts...).Run(sigCtx, s.Console)
	if sig := sigCtx.Signal(); sig != nil {
		logger.Info("session interrupted", "signal", sig.String())
	}

	sigCtx.Cancel()
	return errors.Join(runErr, <-serveErr)
}
