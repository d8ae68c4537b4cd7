package ports

import "github.com/aretw0/devconsole/pkg/domain"

// Output is the write side of a console frontend.
type Output interface {
	// WriteString appends text in the normal color.
	WriteString(text string)
	// WriteColored appends text in an explicit color.
	WriteColored(c domain.Color, text string)
	// WriteResult appends the colored rendering of a result.
	WriteResult(r domain.Result)
	// WriteError appends any error in the error color.
	WriteError(err error)
	// Clear drops everything written so far.
	Clear()
}

// Frontend is the handle passed to an Action while it runs.
// It gives the action output access and the resolver, so built-in commands can
// recurse into command resolution without capturing the console.
type Frontend interface {
	Output
	Resolver() Resolver
}

// Resolver maps command names to registry operations.
// Implementations are bound to one registry and are not safe for concurrent use.
type Resolver interface {
	Classify(name string) domain.Kind
	Read(name string) domain.Result
	Write(name, value string) domain.Result
	Invoke(name string, args []string, fe Frontend) domain.Result
	ResetOne(name string) domain.Result
	ResetAll() domain.Result
	Search(match func(path string) bool) domain.Result
	Describe(name string) domain.Result
	Dispatch(name string, args []string, fe Frontend) domain.Result
}
