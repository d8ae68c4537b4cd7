package dto

import "github.com/aretw0/devconsole/pkg/adapters/process"

// Manifest is the decoded form of a registry manifest file.
// It uses "mapstructure" tags so loosely typed YAML scalars (default: 90) decode into strings.
type Manifest struct {
	Entries []Entry              `json:"entries" mapstructure:"entries"`
	Tools   []process.ToolConfig `json:"tools" mapstructure:"tools"`
}

// Entry declares one registry node. Exactly one of Group, Property or Action names it.
type Entry struct {
	Group    string `json:"group" mapstructure:"group"`
	Property string `json:"property" mapstructure:"property"`
	Action   string `json:"action" mapstructure:"action"`

	Description string `json:"description" mapstructure:"description"`

	// Property settings
	Type    string   `json:"type" mapstructure:"type"`
	Default string   `json:"default" mapstructure:"default"`
	Min     string   `json:"min" mapstructure:"min"`
	Max     string   `json:"max" mapstructure:"max"`
	Choices []string `json:"choices" mapstructure:"choices"`

	// Action settings
	Tool string `json:"tool" mapstructure:"tool"`
	Echo string `json:"echo" mapstructure:"echo"`

	// Group children
	Entries []Entry `json:"entries" mapstructure:"entries"`
}

// Name returns whichever of Group, Property or Action is set.
func (e Entry) Name() string {
	switch {
	case e.Group != "":
		return e.Group
	case e.Property != "":
		return e.Property
	default:
		return e.Action
	}
}

// Kinds counts how many of Group, Property and Action are set.
func (e Entry) Kinds() int {
	n := 0
	for _, s := range []string{e.Group, e.Property, e.Action} {
		if s != "" {
			n++
		}
	}
	return n
}
