package runtime

import (
	"strings"

	"github.com/aretw0/devconsole/pkg/domain"
	"github.com/aretw0/devconsole/pkg/ports"
)

// PathSeparator joins a List's path with the names of its children.
const PathSeparator = "/"

// Join builds the full path of a child named name under prefix.
func Join(prefix, name string) string {
	if prefix == "" {
		return name
	}
	return prefix + PathSeparator + name
}

// Classify reports which of the three concrete kinds node is.
// A value implementing none of them is treated as absent.
func Classify(node ports.Node) domain.Kind {
	switch node.(type) {
	case ports.Property:
		return domain.KindProperty
	case ports.Action:
		return domain.KindAction
	case ports.List:
		return domain.KindList
	default:
		return domain.KindNotFound
	}
}

// Walk calls fn for every node in reg, depth-first in visit order, with its full path.
// A List is reported before its children.
func Walk(reg ports.Registry, fn func(path string, node ports.Node)) {
	walk(reg, "", fn)
}

func walk(reg ports.Registry, prefix string, fn func(string, ports.Node)) {
	reg.Visit(func(n ports.Node) {
		path := Join(prefix, n.Name())
		fn(path, n)
		if list, ok := n.(ports.List); ok {
			walk(list, path, fn)
		}
	})
}

// Find locates the node at exactly path and calls fn with it.
// Only Lists whose path is a prefix of the target are descended into.
// When paths collide, the first node in visit order wins.
func Find(reg ports.Registry, path string, fn func(ports.Node)) bool {
	return find(reg, "", path, fn)
}

func find(reg ports.Registry, prefix, target string, fn func(ports.Node)) bool {
	found := false
	reg.Visit(func(n ports.Node) {
		if found {
			return
		}
		path := Join(prefix, n.Name())
		if path == target {
			fn(n)
			found = true
			return
		}
		if list, ok := n.(ports.List); ok && strings.HasPrefix(target, path+PathSeparator) {
			found = find(list, path, target, fn)
		}
	})
	return found
}
