package runtime

import (
	"fmt"
	"strings"

	"github.com/aretw0/devconsole/pkg/ports"
)

// WriteDetails appends the human-readable detail block of node to out.
// Lists produce nothing; they are described by their children.
func WriteDetails(out *strings.Builder, path string, node ports.Node) {
	switch n := node.(type) {
	case ports.Property:
		fmt.Fprintf(out, "%s: %s (Default: %s)\n\t%s\n", path, n.Get(), n.Default(), n.Description())
	case ports.Action:
		hint, desc := SplitDescription(n.Description())
		out.WriteString(path)
		if hint != "" {
			out.WriteString(" ")
			out.WriteString(hint)
		}
		fmt.Fprintf(out, ":\n\t%s\n", desc)
	}
}

// Details returns the detail block of node as a string.
func Details(path string, node ports.Node) string {
	var b strings.Builder
	WriteDetails(&b, path, node)
	return b.String()
}

// SplitDescription separates an action description into its argument hint (first line)
// and long description (remaining lines). Without a second line, the whole text is
// the long description and there is no hint.
func SplitDescription(desc string) (hint, long string) {
	first, rest, _ := strings.Cut(desc, "\n")
	if rest == "" {
		return "", first
	}
	return first, rest
}
