package process

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"runtime"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/aretw0/devconsole/pkg/ports"
	"github.com/aretw0/devconsole/pkg/registry"
)

// ErrToolNotRegistered is returned when a tool name is not on the allow-list.
var ErrToolNotRegistered = errors.New("process tool not registered")

// DefaultTimeout bounds a single tool run.
const DefaultTimeout = 30 * time.Second

// gracePeriod is how long a cancelled tool gets between the interrupt and the kill.
const gracePeriod = 2 * time.Second

// Runner executes allow-listed local processes.
// Console arguments are appended to the configured argv; no shell is involved.
type Runner struct {
	registry map[string]ToolConfig
	baseDir  string
	timeout  time.Duration
	logger   *slog.Logger
}

// RunnerOption configures the runner.
type RunnerOption func(*Runner)

// WithTools populates the allow-list from a loaded config.
func WithTools(tools map[string]ToolConfig) RunnerOption {
	return func(r *Runner) {
		for name, tool := range tools {
			tool.Name = name
			r.registry[name] = tool
		}
	}
}

// WithBaseDir sets the working directory for executed processes.
func WithBaseDir(dir string) RunnerOption {
	return func(r *Runner) {
		r.baseDir = dir
	}
}

// WithTimeout bounds every run. Zero disables the bound.
func WithTimeout(d time.Duration) RunnerOption {
	return func(r *Runner) {
		r.timeout = d
	}
}

// WithLogger sets the structured logger.
func WithLogger(logger *slog.Logger) RunnerOption {
	return func(r *Runner) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// NewRunner creates a new process runner.
func NewRunner(opts ...RunnerOption) *Runner {
	r := &Runner{
		registry: make(map[string]ToolConfig),
		timeout:  DefaultTimeout,
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Register adds a trusted command to the allow-list.
func (r *Runner) Register(name, command string, args ...string) {
	r.registry[name] = ToolConfig{Name: name, Command: command, Args: args}
}

// Tool returns the configuration of a registered tool.
func (r *Runner) Tool(name string) (ToolConfig, bool) {
	tool, ok := r.registry[name]
	return tool, ok
}

// Names lists the registered tools in lexical order.
func (r *Runner) Names() []string {
	names := make([]string, 0, len(r.registry))
	for name := range r.registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Run executes the tool with args appended to its configured arguments and returns
// its trimmed standard output. A failing process yields an error carrying its stderr.
func (r *Runner) Run(ctx context.Context, name string, args []string) (string, error) {
	tool, ok := r.registry[name]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrToolNotRegistered, name)
	}

	if r.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.timeout)
		defer cancel()
	}

	argv := append(append([]string(nil), tool.Args...), args...)
	cmd := exec.CommandContext(ctx, tool.Command, argv...)
	cmd.Dir = r.baseDir
	if runtime.GOOS != "windows" {
		cmd.Cancel = func() error { return cmd.Process.Signal(os.Interrupt) }
	}
	cmd.WaitDelay = gracePeriod

	env := cmd.Environ()
	for k, v := range tool.Environment {
		env = append(env, k+"="+v)
	}
	env = append(env, "DEVCONSOLE_TOOL="+name, "DEVCONSOLE_ARGC="+strconv.Itoa(len(args)))
	cmd.Env = env

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	start := time.Now()
	err := cmd.Run()
	r.logger.Debug("tool finished", "tool", name, "args", args, "duration", time.Since(start), "err", err)

	if err != nil {
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return "", fmt.Errorf("%s: %w: %s", name, err, msg)
		}
		return "", fmt.Errorf("%s: %w", name, err)
	}
	return strings.TrimSpace(stdout.String()), nil
}

// Action wraps a registered tool as a console action named name.
// The tool's output is written in the normal color, failures in the error color.
// ctx bounds every invocation.
func (r *Runner) Action(ctx context.Context, name, tool, desc string) (*registry.Func, error) {
	cfg, ok := r.registry[tool]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrToolNotRegistered, tool)
	}
	if desc == "" {
		desc = cfg.Description
	}
	return registry.NewFunc(name, desc, func(args []string, fe ports.Frontend) {
		out, err := r.Run(ctx, tool, args)
		if err != nil {
			fe.WriteError(err)
			return
		}
		fe.WriteString(out)
	}), nil
}
