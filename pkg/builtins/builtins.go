// Package builtins provides the console's own commands: help, clear, find and reset.
//
// They are ordinary Action nodes. Each one reaches the resolver and the output through
// the Frontend handle it is invoked with, so they work against any registry they are
// placed in front of.
package builtins

import (
	"strings"

	"github.com/aretw0/devconsole/pkg/domain"
	"github.com/aretw0/devconsole/pkg/ports"
	"github.com/aretw0/devconsole/pkg/registry"
)

// Command names.
const (
	HelpName  = "help"
	ClearName = "clear"
	FindName  = "find"
	ResetName = "reset"
)

// FindUsage is the usage text reported when find is called without an argument.
const FindUsage = "find <name>"

// Nodes returns fresh instances of every built-in, in help order.
func Nodes() []ports.Node {
	return []ports.Node{Help(), Clear(), Find(), Reset()}
}

// Help describes one entry by exact path, or every entry when called without arguments.
func Help() *registry.Func {
	return registry.NewFunc(HelpName, "[name]\nList all commands and properties", func(args []string, fe ports.Frontend) {
		r := fe.Resolver()
		if len(args) > 0 {
			fe.WriteResult(r.Describe(args[0]))
			return
		}
		fe.WriteResult(r.Search(func(string) bool { return true }))
	})
}

// Clear empties the output buffer.
func Clear() *registry.Func {
	return registry.NewFunc(ClearName, "\nClear the screen", func(_ []string, fe ports.Frontend) {
		fe.Clear()
	})
}

// Find lists every entry whose path contains the argument. It never lists itself.
func Find() *registry.Func {
	return registry.NewFunc(FindName, "<text>\nSearch for matching commands", func(args []string, fe ports.Frontend) {
		if len(args) == 0 {
			fe.WriteResult(domain.Fail(domain.NewInvalidUsage(FindUsage)))
			return
		}
		needle := args[0]
		fe.WriteResult(fe.Resolver().Search(func(path string) bool {
			return strings.Contains(path, needle) && path != FindName
		}))
	})
}

// Reset restores one property, or all of them when called without arguments.
func Reset() *registry.Func {
	return registry.NewFunc(ResetName, "[name]\nSet a property to its default", func(args []string, fe ports.Frontend) {
		r := fe.Resolver()
		if len(args) > 0 {
			fe.WriteResult(r.ResetOne(args[0]))
			return
		}
		fe.WriteResult(r.ResetAll())
	})
}
