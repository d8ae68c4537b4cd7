/*
Package devconsole is a developer-console command engine: it resolves single-line commands
against a tree of live, typed entries and renders the outcome as colored text spans.

A registry is a tree of three kinds of nodes:

  - Property: a value with a textual rendering and a default. Typing its path reads it;
    typing its path followed by a value sets it.
  - Action: a command invoked with the remaining words as arguments.
  - List: a group. Typing its path lists every entry beneath it.

The console puts four built-in actions in front of the host registry: help, clear, find
and reset. Failures are typed (see domain.ConsoleError) and rendered in the error color;
nothing is silently ignored.

# Usage

	tree := registry.New(
		registry.NewGroup("graphics", "Rendering",
			registry.Int("fov", "Field of view", 90, registry.Between(60, 120)),
		),
		registry.NewFunc("quit", "\nExit the game", func(args []string, fe ports.Frontend) {
			fe.WriteString("bye")
		}),
	)

	console := devconsole.New(tree)
	console.Submit("graphics/fov 100")
	console.Submit("help graphics/fov")

	for _, span := range console.Buffer().Spans() {
		draw(span.Color, span.Text)
	}

The console is synchronous and not safe for concurrent use. pkg/runner drives it from a
terminal or an NDJSON stream.
*/
package devconsole
