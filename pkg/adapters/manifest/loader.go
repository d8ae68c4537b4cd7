// Package manifest builds a registry tree from a YAML (or JSON) manifest.
//
//	entries:
//	  - group: graphics
//	    description: Rendering
//	    entries:
//	      - property: fov
//	        type: int
//	        default: 90
//	        min: 60
//	        max: 120
//	        description: Field of view
//	  - action: build
//	    tool: make
//	    description: "<target>\nRun make"
//	tools:
//	  - name: make
//	    command: make
package manifest

import (
	"cmp"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/aretw0/devconsole/internal/dto"
	"github.com/aretw0/devconsole/pkg/adapters/process"
	"github.com/aretw0/devconsole/pkg/ports"
	"github.com/aretw0/devconsole/pkg/registry"
	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// Property types accepted in a manifest.
const (
	TypeInt      = "int"
	TypeFloat    = "float"
	TypeBool     = "bool"
	TypeString   = "string"
	TypeEnum     = "enum"
	TypeDuration = "duration"
)

// Loader turns manifests into registry trees.
type Loader struct {
	runner *process.Runner
	logger *slog.Logger
}

// Option configures the Loader.
type Option func(*Loader)

// WithRunner sets the process runner used for tool actions. Tools declared in a
// manifest are registered on it.
func WithRunner(r *process.Runner) Option {
	return func(l *Loader) {
		l.runner = r
	}
}

// WithLogger sets the structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(l *Loader) {
		if logger != nil {
			l.logger = logger
		}
	}
}

// New creates a loader.
func New(opts ...Option) *Loader {
	l := &Loader{
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(l)
	}
	if l.runner == nil {
		l.runner = process.NewRunner(process.WithLogger(l.logger))
	}
	return l
}

// Runner returns the process runner tool actions execute on.
func (l *Loader) Runner() *process.Runner {
	return l.runner
}

// LoadFile reads and builds the manifest at path.
// ctx bounds the tool actions the tree contains.
func (l *Loader) LoadFile(ctx context.Context, path string) (*registry.Tree, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest: %w", err)
	}
	tree, err := l.Load(ctx, data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	l.logger.Info("manifest loaded", "path", path, "entries", tree.Len())
	return tree, nil
}

// Load builds a tree from manifest bytes. JSON is accepted as a subset of YAML.
func (l *Loader) Load(ctx context.Context, data []byte) (*registry.Tree, error) {
	m, err := Decode(data)
	if err != nil {
		return nil, err
	}

	for _, tool := range m.Tools {
		if tool.Name == "" || tool.Command == "" {
			l.logger.Warn("skipping tool without name or command", "name", tool.Name)
			continue
		}
		l.runner.Register(tool.Name, tool.Command, tool.Args...)
	}

	nodes, err := l.build(ctx, "", m.Entries)
	if err != nil {
		return nil, err
	}
	return registry.New(nodes...), nil
}

// Decode parses manifest bytes without building anything.
func Decode(data []byte) (*dto.Manifest, error) {
	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse manifest: %w", err)
	}

	var m dto.Manifest
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &m,
		WeaklyTypedInput: true,
		ErrorUnused:      true,
	})
	if err != nil {
		return nil, err
	}
	if err := decoder.Decode(raw); err != nil {
		return nil, fmt.Errorf("invalid manifest: %w", err)
	}
	return &m, nil
}

func (l *Loader) build(ctx context.Context, prefix string, entries []dto.Entry) ([]ports.Node, error) {
	nodes := make([]ports.Node, 0, len(entries))
	for i, e := range entries {
		path := e.Name()
		if prefix != "" {
			path = prefix + "/" + path
		}
		if e.Kinds() != 1 {
			return nil, fmt.Errorf("entry %d under '%s': exactly one of group, property or action is required", i, prefix)
		}

		var (
			n   ports.Node
			err error
		)
		switch {
		case e.Group != "":
			var children []ports.Node
			children, err = l.build(ctx, path, e.Entries)
			n = registry.NewGroup(e.Group, e.Description, children...)
		case e.Property != "":
			n, err = property(e)
		default:
			n, err = l.action(ctx, e)
		}
		if err != nil {
			if e.Group != "" {
				return nil, err
			}
			return nil, fmt.Errorf("'%s': %w", path, err)
		}
		nodes = append(nodes, n)
	}
	return nodes, nil
}

func (l *Loader) action(ctx context.Context, e dto.Entry) (ports.Node, error) {
	switch {
	case e.Tool != "" && e.Echo != "":
		return nil, fmt.Errorf("tool and echo are mutually exclusive")
	case e.Tool != "":
		return l.runner.Action(ctx, e.Action, e.Tool, e.Description)
	default:
		text := e.Echo
		return registry.NewFunc(e.Action, e.Description, func(_ []string, fe ports.Frontend) {
			fe.WriteString(text)
		}), nil
	}
}

func property(e dto.Entry) (ports.Node, error) {
	name, desc := e.Property, e.Description

	switch e.Type {
	case TypeInt:
		return typed(e, strconv.Atoi, func(def int, opts ...registry.Option[int]) ports.Node {
			return registry.Int(name, desc, def, opts...)
		})
	case TypeFloat:
		return typed(e, func(s string) (float64, error) { return strconv.ParseFloat(s, 64) },
			func(def float64, opts ...registry.Option[float64]) ports.Node {
				return registry.Float(name, desc, def, opts...)
			})
	case TypeDuration:
		return typed(e, time.ParseDuration, func(def time.Duration, opts ...registry.Option[time.Duration]) ports.Node {
			return registry.Duration(name, desc, def, opts...)
		})
	case TypeBool:
		def := false
		if e.Default != "" {
			v, err := strconv.ParseBool(e.Default)
			if err != nil {
				return nil, fmt.Errorf("default: %w", err)
			}
			def = v
		}
		return registry.Bool(name, desc, def), nil
	case TypeString, "":
		return registry.String(name, desc, e.Default), nil
	case TypeEnum:
		if len(e.Choices) == 0 {
			return nil, fmt.Errorf("enum requires choices")
		}
		def := e.Default
		if def == "" {
			def = e.Choices[0]
		}
		p := registry.Enum(name, desc, def, e.Choices)
		if err := p.Set(def); err != nil {
			return nil, fmt.Errorf("default: %w", err)
		}
		return p, nil
	default:
		return nil, fmt.Errorf("unknown property type %q", e.Type)
	}
}

// typed builds an ordered property, applying min and max when present and checking the default.
func typed[T interface {
	~int | ~int64 | ~float64
}](e dto.Entry, parse func(string) (T, error), mk func(T, ...registry.Option[T]) ports.Node) (ports.Node, error) {
	var def T
	if e.Default != "" {
		v, err := parse(e.Default)
		if err != nil {
			return nil, fmt.Errorf("default: %w", err)
		}
		def = v
	}

	var opts []registry.Option[T]
	switch {
	case e.Min != "" && e.Max != "":
		lo, err := parse(e.Min)
		if err != nil {
			return nil, fmt.Errorf("min: %w", err)
		}
		hi, err := parse(e.Max)
		if err != nil {
			return nil, fmt.Errorf("max: %w", err)
		}
		if cmp.Compare(lo, hi) > 0 {
			return nil, fmt.Errorf("min %v is greater than max %v", lo, hi)
		}
		if cmp.Compare(def, lo) < 0 || cmp.Compare(def, hi) > 0 {
			return nil, fmt.Errorf("default %v out of range [%v, %v]", def, lo, hi)
		}
		opts = append(opts, registry.Between(lo, hi))
	case e.Min != "":
		lo, err := parse(e.Min)
		if err != nil {
			return nil, fmt.Errorf("min: %w", err)
		}
		if cmp.Compare(def, lo) < 0 {
			return nil, fmt.Errorf("default %v is below minimum %v", def, lo)
		}
		opts = append(opts, registry.Check(func(v T) error {
			if cmp.Compare(v, lo) < 0 {
				return fmt.Errorf("%v is below minimum %v", v, lo)
			}
			return nil
		}))
	case e.Max != "":
		hi, err := parse(e.Max)
		if err != nil {
			return nil, fmt.Errorf("max: %w", err)
		}
		// NaN fails every comparison.
		if !(def <= hi) {
			return nil, fmt.Errorf("default %v is above maximum %v", def, hi)
		}
		opts = append(opts, registry.Check(func(v T) error {
			if !(v <= hi) {
				return fmt.Errorf("%v is above maximum %v", v, hi)
			}
			return nil
		}))
	}
	return mk(def, opts...), nil
}
