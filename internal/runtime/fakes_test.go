package runtime_test

import (
	"strconv"

	"github.com/aretw0/devconsole/pkg/domain"
	"github.com/aretw0/devconsole/pkg/ports"
)

type intProp struct {
	name, desc string
	value, def int
}

func (p *intProp) Name() string        { return p.name }
func (p *intProp) Description() string { return p.desc }
func (p *intProp) Get() string         { return strconv.Itoa(p.value) }
func (p *intProp) Default() string     { return strconv.Itoa(p.def) }
func (p *intProp) Reset()              { p.value = p.def }

func (p *intProp) Set(value string) error {
	v, err := strconv.Atoi(value)
	if err != nil {
		return err
	}
	p.value = v
	return nil
}

// brokenProp fails every Set with err.
type brokenProp struct {
	intProp
	err error
}

func (p *brokenProp) Set(string) error { return p.err }

type action struct {
	name, desc string
	calls      [][]string
	fn         func(args []string, fe ports.Frontend)
}

func (a *action) Name() string        { return a.name }
func (a *action) Description() string { return a.desc }

func (a *action) Invoke(args []string, fe ports.Frontend) {
	a.calls = append(a.calls, args)
	if a.fn != nil {
		a.fn(args, fe)
	}
}

type group struct {
	name, desc string
	children   []ports.Node
}

func (g *group) Name() string        { return g.name }
func (g *group) Description() string { return g.desc }

func (g *group) Visit(fn func(ports.Node)) {
	for _, c := range g.children {
		fn(c)
	}
}

type root []ports.Node

func (r root) Visit(fn func(ports.Node)) {
	for _, n := range r {
		fn(n)
	}
}

// recorder is a Frontend that keeps every write.
type recorder struct {
	resolver ports.Resolver
	results  []domain.Result
	text     []string
	cleared  int
}

func (r *recorder) WriteString(text string)                  { r.text = append(r.text, text) }
func (r *recorder) WriteColored(_ domain.Color, text string) { r.text = append(r.text, text) }
func (r *recorder) WriteResult(res domain.Result)            { r.results = append(r.results, res) }
func (r *recorder) WriteError(err error)                     { r.text = append(r.text, err.Error()) }
func (r *recorder) Clear()                                   { r.cleared++ }
func (r *recorder) Resolver() ports.Resolver                 { return r.resolver }

// fixture builds the registry used across engine tests:
//
//	graphics/fov, graphics/gamma, audio/volume, quit
func fixture() (root, *intProp, *intProp, *intProp, *action) {
	fov := &intProp{name: "fov", desc: "Field of view", value: 90, def: 90}
	gamma := &intProp{name: "gamma", desc: "Gamma", value: 2, def: 2}
	volume := &intProp{name: "volume", desc: "Master volume", value: 80, def: 80}
	quit := &action{name: "quit", desc: "\nExit the game"}

	reg := root{
		&group{name: "graphics", desc: "Rendering", children: []ports.Node{fov, gamma}},
		&group{name: "audio", desc: "Sound", children: []ports.Node{volume}},
		quit,
	}
	return reg, fov, gamma, volume, quit
}
