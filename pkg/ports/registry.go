package ports

// Node is one entry of a registry.
// Every concrete node implements exactly one of Property, Action or List.
type Node interface {
	// Name is the node's own path segment.
	Name() string
	// Description is free text. For an Action, an optional first line holds the argument hint.
	Description() string
}

// Property is an adjustable value with a textual rendering and a default.
type Property interface {
	Node
	// Get renders the current value.
	Get() string
	// Default renders the default value.
	Default() string
	// Set parses and applies value. The stored value is unchanged on error.
	Set(value string) error
	// Reset restores the default value.
	Reset()
}

// Action is an entry invocable with arguments.
// Actions report their own output through the Frontend handle.
type Action interface {
	Node
	Invoke(args []string, fe Frontend)
}

// List is a sub-group. It has no value of its own and is descended into by the walker.
type List interface {
	Node
	Registry
}

// Registry is the traversal capability implemented by the host.
// Visit calls fn once per direct child, in a stable order. fn must not retain the node
// past the call, and Visit must not be re-entered from inside fn.
type Registry interface {
	Visit(fn func(Node))
}

// VisitorFunc adapts a function to the Registry interface.
type VisitorFunc func(fn func(Node))

// Visit calls f(fn).
func (f VisitorFunc) Visit(fn func(Node)) {
	f(fn)
}
