// Package registry provides a concrete in-memory registry: an ordered tree of typed
// properties, groups and function actions that the console resolves commands against.
package registry

import (
	"sync"

	"github.com/aretw0/devconsole/internal/runtime"
	"github.com/aretw0/devconsole/pkg/ports"
)

// Tree is the root of a registry.
// Visit iterates over a snapshot, so nodes may be added while a traversal is running.
type Tree struct {
	mu    sync.RWMutex
	nodes []ports.Node
}

// New creates a tree holding nodes in order.
func New(nodes ...ports.Node) *Tree {
	return &Tree{nodes: append([]ports.Node(nil), nodes...)}
}

// Add appends nodes after the existing ones.
func (t *Tree) Add(nodes ...ports.Node) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.nodes = append(t.nodes, nodes...)
}

// Visit calls fn for every top-level node.
func (t *Tree) Visit(fn func(ports.Node)) {
	t.mu.RLock()
	snapshot := append([]ports.Node(nil), t.nodes...)
	t.mu.RUnlock()

	for _, n := range snapshot {
		fn(n)
	}
}

// Len reports the number of top-level nodes.
func (t *Tree) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.nodes)
}

// binder is implemented by properties whose value can live in a ValueStore.
type binder interface {
	bind(store ports.ValueStore, key string)
}

// Bind routes the value of every typed property in the tree through store, keyed by
// the property's full path. It returns the number of properties bound.
// Properties added afterwards are not bound.
func (t *Tree) Bind(store ports.ValueStore) int {
	count := 0
	runtime.Walk(t, func(path string, n ports.Node) {
		if b, ok := n.(binder); ok {
			b.bind(store, path)
			count++
		}
	})
	return count
}

// Group is a List node holding children in order.
type Group struct {
	name, desc string

	mu       sync.RWMutex
	children []ports.Node
}

// NewGroup creates a group named name.
func NewGroup(name, desc string, children ...ports.Node) *Group {
	return &Group{
		name:     name,
		desc:     desc,
		children: append([]ports.Node(nil), children...),
	}
}

func (g *Group) Name() string        { return g.name }
func (g *Group) Description() string { return g.desc }

// Add appends children after the existing ones.
func (g *Group) Add(children ...ports.Node) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.children = append(g.children, children...)
}

// Visit calls fn for every direct child.
func (g *Group) Visit(fn func(ports.Node)) {
	g.mu.RLock()
	snapshot := append([]ports.Node(nil), g.children...)
	g.mu.RUnlock()

	for _, c := range snapshot {
		fn(c)
	}
}

// ActionFunc is the body of a Func action.
type ActionFunc func(args []string, fe ports.Frontend)

// Func is an Action node backed by a function.
// The first line of a multi-line description is shown as the argument hint.
type Func struct {
	name, desc string
	fn         ActionFunc
}

// NewFunc creates an action named name.
func NewFunc(name, desc string, fn ActionFunc) *Func {
	return &Func{name: name, desc: desc, fn: fn}
}

func (f *Func) Name() string        { return f.name }
func (f *Func) Description() string { return f.desc }

// Invoke runs the action body. A nil body does nothing.
func (f *Func) Invoke(args []string, fe ports.Frontend) {
	if f.fn != nil {
		f.fn(args, fe)
	}
}

var (
	_ ports.Registry = (*Tree)(nil)
	_ ports.List     = (*Group)(nil)
	_ ports.Action   = (*Func)(nil)
)
