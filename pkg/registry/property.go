package registry

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/aretw0/devconsole/pkg/ports"
)

// storeTimeout bounds every ValueStore round-trip made by a bound property.
const storeTimeout = 2 * time.Second

// Prop is a typed Property. Its textual form is produced by a fixed formatter, so
// setting a property to its own rendering never changes it.
type Prop[T comparable] struct {
	name, desc string
	def        T

	parse    func(string) (T, error)
	format   func(T) string
	validate []func(T) error

	mu    sync.Mutex
	value T
	store ports.ValueStore
	key   string
}

// Option configures a Prop.
type Option[T comparable] func(*Prop[T])

// Between rejects values outside [lo, hi].
func Between[T cmp.Ordered](lo, hi T) Option[T] {
	return func(p *Prop[T]) {
		p.validate = append(p.validate, func(v T) error {
			if cmp.Compare(v, lo) < 0 || cmp.Compare(v, hi) > 0 {
				return fmt.Errorf("%s out of range [%s, %s]", p.format(v), p.format(lo), p.format(hi))
			}
			return nil
		})
	}
}

// Check adds a custom validation step run after parsing.
func Check[T comparable](fn func(T) error) Option[T] {
	return func(p *Prop[T]) {
		p.validate = append(p.validate, fn)
	}
}

// NewProp creates a property from a parser and a formatter.
// The default is assumed valid; the value starts at the default.
func NewProp[T comparable](name, desc string, def T, parse func(string) (T, error), format func(T) string, opts ...Option[T]) *Prop[T] {
	p := &Prop[T]{
		name:   name,
		desc:   desc,
		def:    def,
		value:  def,
		parse:  parse,
		format: format,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Int creates an integer property.
func Int(name, desc string, def int, opts ...Option[int]) *Prop[int] {
	return NewProp(name, desc, def, func(s string) (int, error) {
		return strconv.Atoi(s)
	}, strconv.Itoa, opts...)
}

// Float creates a float64 property.
func Float(name, desc string, def float64, opts ...Option[float64]) *Prop[float64] {
	return NewProp(name, desc, def, func(s string) (float64, error) {
		return strconv.ParseFloat(s, 64)
	}, func(v float64) string {
		return strconv.FormatFloat(v, 'g', -1, 64)
	}, opts...)
}

// Bool creates a boolean property accepting the strconv.ParseBool forms.
func Bool(name, desc string, def bool, opts ...Option[bool]) *Prop[bool] {
	return NewProp(name, desc, def, strconv.ParseBool, strconv.FormatBool, opts...)
}

// String creates a free text property.
func String(name, desc, def string, opts ...Option[string]) *Prop[string] {
	return NewProp(name, desc, def, func(s string) (string, error) {
		return s, nil
	}, func(s string) string { return s }, opts...)
}

// Duration creates a property parsed with time.ParseDuration.
func Duration(name, desc string, def time.Duration, opts ...Option[time.Duration]) *Prop[time.Duration] {
	return NewProp(name, desc, def, time.ParseDuration, time.Duration.String, opts...)
}

// Enum creates a string property restricted to choices.
func Enum(name, desc, def string, choices []string, opts ...Option[string]) *Prop[string] {
	allowed := slices.Clone(choices)
	check := Check(func(v string) error {
		if !slices.Contains(allowed, v) {
			return fmt.Errorf("%q: must be one of [%s]", v, strings.Join(allowed, ", "))
		}
		return nil
	})
	return String(name, desc, def, append([]Option[string]{check}, opts...)...)
}

func (p *Prop[T]) Name() string        { return p.name }
func (p *Prop[T]) Description() string { return p.desc }

// Default renders the default value.
func (p *Prop[T]) Default() string {
	return p.format(p.def)
}

// Get renders the current value.
func (p *Prop[T]) Get() string {
	return p.format(p.Value())
}

// Value returns the current typed value. A bound property reads through its store and
// falls back to the last known value when the store has nothing usable.
func (p *Prop[T]) Value() T {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.store == nil {
		return p.value
	}

	ctx, cancel := context.WithTimeout(context.Background(), storeTimeout)
	defer cancel()

	raw, err := p.store.Load(ctx, p.key)
	if err != nil {
		return p.value
	}
	v, err := p.check(raw)
	if err != nil {
		return p.value
	}
	p.value = v
	return v
}

// Set parses and validates text, then applies it. The value is unchanged on error.
func (p *Prop[T]) Set(text string) error {
	v, err := p.check(text)
	if err != nil {
		return err
	}
	return p.apply(v)
}

// SetValue applies v after validation.
func (p *Prop[T]) SetValue(v T) error {
	for _, fn := range p.validate {
		if err := fn(v); err != nil {
			return err
		}
	}
	return p.apply(v)
}

// apply stores an already validated value.
func (p *Prop[T]) apply(v T) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.store != nil {
		ctx, cancel := context.WithTimeout(context.Background(), storeTimeout)
		defer cancel()
		if err := p.store.Save(ctx, p.key, p.format(v)); err != nil {
			return fmt.Errorf("%w: %s: %w", ports.ErrStoreUnavailable, p.key, err)
		}
	}
	p.value = v
	return nil
}

// Reset restores the default value. A store failure leaves the local value at the default.
func (p *Prop[T]) Reset() {
	if err := p.SetValue(p.def); err != nil {
		p.mu.Lock()
		p.value = p.def
		p.mu.Unlock()
	}
}

func (p *Prop[T]) check(text string) (T, error) {
	v, err := p.parse(text)
	if err != nil {
		var zero T
		return zero, parseError(err)
	}
	for _, fn := range p.validate {
		if err := fn(v); err != nil {
			var zero T
			return zero, err
		}
	}
	return v, nil
}

func (p *Prop[T]) bind(store ports.ValueStore, key string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.store = store
	p.key = key
}

// parseError strips the strconv function name so messages read `"abc": invalid syntax`.
func parseError(err error) error {
	var numErr *strconv.NumError
	if errors.As(err, &numErr) {
		return fmt.Errorf("%q: %w", numErr.Num, numErr.Err)
	}
	return err
}

var _ ports.Property = (*Prop[int])(nil)
