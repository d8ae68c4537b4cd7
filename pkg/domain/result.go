package domain

// Result is the outcome of one engine operation.
// Exactly one of Value (on success) or Err is meaningful; Value may be empty
// for purely side-effecting commands.
type Result struct {
	Value string
	Err   error
}

// Ok builds a successful result.
func Ok(value string) Result {
	return Result{Value: value}
}

// Fail builds a failed result.
func Fail(err error) Result {
	return Result{Err: err}
}

// IsOk reports whether the result is a success.
func (r Result) IsOk() bool {
	return r.Err == nil
}

// Text returns the payload on success or the rendered error message on failure.
func (r Result) Text() string {
	if r.Err != nil {
		return r.Err.Error()
	}
	return r.Value
}

// Outcome is a short label for logs and metrics ("ok" or the error kind).
func (r Result) Outcome() string {
	if r.Err == nil {
		return "ok"
	}
	return KindOf(r.Err).String()
}
