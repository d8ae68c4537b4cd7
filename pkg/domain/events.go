package domain

import (
	"time"
)

// CommandEvent describes one dispatched command.
type CommandEvent struct {
	Timestamp time.Time     `json:"timestamp"`
	Command   string        `json:"command"`
	Args      []string      `json:"args,omitempty"`
	Kind      Kind          `json:"kind"`
	Outcome   string        `json:"outcome"`
	Err       error         `json:"-"`
	Duration  time.Duration `json:"duration"`
}

// LifecycleHooks defines callbacks for engine observability.
// Hooks run synchronously on the dispatching goroutine.
type LifecycleHooks struct {
	OnDispatch func(*CommandEvent)
}

// Merge returns hooks that fire h and then other.
func (h LifecycleHooks) Merge(other LifecycleHooks) LifecycleHooks {
	switch {
	case h.OnDispatch == nil:
		return other
	case other.OnDispatch == nil:
		return h
	}
	first, second := h.OnDispatch, other.OnDispatch
	return LifecycleHooks{
		OnDispatch: func(e *CommandEvent) {
			first(e)
			second(e)
		},
	}
}
