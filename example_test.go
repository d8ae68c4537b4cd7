package devconsole_test

import (
	"fmt"
	"strings"

	"github.com/aretw0/devconsole"
	"github.com/aretw0/devconsole/pkg/ports"
	"github.com/aretw0/devconsole/pkg/registry"
)

// ExampleNew demonstrates a console over an in-memory registry.
func ExampleNew() {
	tree := registry.New(
		registry.NewGroup("graphics", "Rendering",
			registry.Int("fov", "Field of view", 90, registry.Between(60, 120)),
		),
		registry.NewFunc("greet", "<name>\nSay hello", func(args []string, fe ports.Frontend) {
			fe.WriteString("hello " + strings.Join(args, " "))
		}),
	)

	console := devconsole.New(tree)
	console.Exec("graphics/fov 100")
	console.Exec("graphics/fov")
	console.Exec("graphics/fov 500")
	console.Exec("greet gopher")
	console.Exec("help greet")

	for _, span := range console.Buffer().Spans() {
		fmt.Print(span.Text)
	}
	// Output:
	// 100
	// Invalid value: 500 out of range [60, 120]
	// hello gopher
	// greet <name>:
	// 	Say hello
}
