// Package reference renders a registry as a Markdown command reference.
package reference

import (
	"fmt"
	"strings"

	"github.com/aretw0/devconsole/internal/runtime"
	"github.com/aretw0/devconsole/pkg/ports"
)

// GenerateMarkdown produces a Markdown document describing every entry of reg,
// grouped into properties, commands and groups, in traversal order.
// Sections without entries are omitted.
func GenerateMarkdown(reg ports.Registry, title string) string {
	var props, actions, lists strings.Builder

	runtime.Walk(reg, func(path string, n ports.Node) {
		switch node := n.(type) {
		case ports.Property:
			fmt.Fprintf(&props, "| `%s` | %s | %s | %s |\n",
				path, cell(node.Get()), cell(node.Default()), cell(node.Description()))
		case ports.Action:
			hint, desc := runtime.SplitDescription(node.Description())
			fmt.Fprintf(&actions, "| `%s` | %s | %s |\n", path, cell(hint), cell(desc))
		case ports.List:
			fmt.Fprintf(&lists, "- `%s`", path)
			if desc := node.Description(); desc != "" {
				fmt.Fprintf(&lists, ": %s", strings.ReplaceAll(desc, "\n", " "))
			}
			lists.WriteString("\n")
		}
	})

	var sb strings.Builder
	fmt.Fprintf(&sb, "# %s\n", title)

	if props.Len() > 0 {
		sb.WriteString("\n## Properties\n\n")
		sb.WriteString("| Path | Value | Default | Description |\n")
		sb.WriteString("| --- | --- | --- | --- |\n")
		sb.WriteString(props.String())
	}
	if actions.Len() > 0 {
		sb.WriteString("\n## Commands\n\n")
		sb.WriteString("| Command | Arguments | Description |\n")
		sb.WriteString("| --- | --- | --- |\n")
		sb.WriteString(actions.String())
	}
	if lists.Len() > 0 {
		sb.WriteString("\n## Groups\n\n")
		sb.WriteString(lists.String())
	}
	return sb.String()
}

// cell escapes text for a single table cell.
func cell(s string) string {
	s = strings.ReplaceAll(s, "|", `\|`)
	return strings.ReplaceAll(s, "\n", "<br>")
}
