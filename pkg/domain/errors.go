package domain

import "errors"

// ErrorKind enumerates the failures a console command can produce.
// The taxonomy is flat: a ConsoleError never wraps another ConsoleError.
type ErrorKind int

const (
	// UnknownProperty: the path is absent, or is not a Property, during read/write/reset/describe.
	UnknownProperty ErrorKind = iota + 1
	// UnknownCommand: the path is absent, or is not an Action, during invoke or dispatch.
	UnknownCommand
	// InvalidValue: a Property rejected the supplied text.
	InvalidValue
	// InvalidUsage: an Action rejected the shape of its arguments.
	InvalidUsage
	// NoResults: a listing or search matched nothing.
	NoResults
)

func (k ErrorKind) String() string {
	switch k {
	case UnknownProperty:
		return "unknown_property"
	case UnknownCommand:
		return "unknown_command"
	case InvalidValue:
		return "invalid_value"
	case InvalidUsage:
		return "invalid_usage"
	case NoResults:
		return "no_results"
	default:
		return "unknown"
	}
}

// ConsoleError is a typed command failure.
// Detail is only meaningful for InvalidValue (the parse error) and InvalidUsage (the usage string).
type ConsoleError struct {
	Kind   ErrorKind
	Detail string
}

// Error renders the user-visible message for the failure.
func (e *ConsoleError) Error() string {
	switch e.Kind {
	case UnknownProperty:
		return "Unknown property"
	case UnknownCommand:
		return "Unknown command"
	case InvalidValue:
		return "Invalid value: " + e.Detail
	case InvalidUsage:
		return "Usage: " + e.Detail
	case NoResults:
		return "No results"
	default:
		return "Unknown error"
	}
}

// Is reports kind equality, so errors.Is(err, ErrInvalidValue) matches any detail.
func (e *ConsoleError) Is(target error) bool {
	t, ok := target.(*ConsoleError)
	if !ok {
		return false
	}
	return e.Kind == t.Kind
}

// Sentinels for errors.Is comparisons.
var (
	ErrUnknownProperty = &ConsoleError{Kind: UnknownProperty}
	ErrUnknownCommand  = &ConsoleError{Kind: UnknownCommand}
	ErrInvalidValue    = &ConsoleError{Kind: InvalidValue}
	ErrInvalidUsage    = &ConsoleError{Kind: InvalidUsage}
	ErrNoResults       = &ConsoleError{Kind: NoResults}
)

// NewInvalidValue builds an InvalidValue failure carrying the parse error text.
func NewInvalidValue(detail string) *ConsoleError {
	return &ConsoleError{Kind: InvalidValue, Detail: detail}
}

// NewInvalidUsage builds an InvalidUsage failure carrying the usage string.
func NewInvalidUsage(usage string) *ConsoleError {
	return &ConsoleError{Kind: InvalidUsage, Detail: usage}
}

// KindOf extracts the ErrorKind of err, or 0 if err is not a ConsoleError.
func KindOf(err error) ErrorKind {
	var ce *ConsoleError
	if errors.As(err, &ce) {
		return ce.Kind
	}
	return 0
}
