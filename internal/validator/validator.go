package validator

import (
	"fmt"
	"strings"

	"github.com/aretw0/devconsole/internal/runtime"
	"github.com/aretw0/devconsole/pkg/ports"
)

// ValidateRegistry walks reg and checks the invariants the resolver relies on:
// every node is exactly one of Property, List or Action, names are non-empty and
// free of the path separator, full paths are unique, and every Property accepts
// its own default and current value.
//
// Property values are restored after the check.
func ValidateRegistry(reg ports.Registry) error {
	seen := make(map[string]bool)
	var problems []string

	runtime.Walk(reg, func(path string, n ports.Node) {
		name := n.Name()
		switch {
		case name == "":
			problems = append(problems, fmt.Sprintf("Empty name at '%s'", path))
		case strings.Contains(name, runtime.PathSeparator):
			problems = append(problems, fmt.Sprintf("Name '%s' contains '%s'", name, runtime.PathSeparator))
		}

		if seen[path] {
			problems = append(problems, fmt.Sprintf("Duplicate path: '%s'", path))
		}
		seen[path] = true

		if k := kinds(n); k != 1 {
			problems = append(problems, fmt.Sprintf("Node '%s' implements %d kinds, want exactly 1", path, k))
			return
		}

		if prop, ok := n.(ports.Property); ok {
			if msg := checkProperty(prop); msg != "" {
				problems = append(problems, fmt.Sprintf("Property '%s': %s", path, msg))
			}
		}
	})

	if len(problems) > 0 {
		return fmt.Errorf("found %d errors:\n- %s", len(problems), strings.Join(problems, "\n- "))
	}
	return nil
}

func kinds(n ports.Node) int {
	count := 0
	if _, ok := n.(ports.Property); ok {
		count++
	}
	if _, ok := n.(ports.Action); ok {
		count++
	}
	if _, ok := n.(ports.List); ok {
		count++
	}
	return count
}

func checkProperty(p ports.Property) string {
	current := p.Get()
	defer func() { _ = p.Set(current) }()

	if err := p.Set(p.Default()); err != nil {
		return fmt.Sprintf("default %q rejected: %v", p.Default(), err)
	}
	if err := p.Set(current); err != nil {
		return fmt.Sprintf("current value %q does not round-trip: %v", current, err)
	}
	return ""
}
