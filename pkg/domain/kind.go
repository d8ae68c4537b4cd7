package domain

// Kind classifies a registry entry as seen by the resolver.
type Kind int

const (
	// KindNotFound is returned when a path resolves to nothing.
	// It never describes an actual registry node.
	KindNotFound Kind = iota
	// KindProperty is an entry with a current and a default textual value.
	KindProperty
	// KindList is a sub-group, only descended into or listed by prefix.
	KindList
	// KindAction is an entry invocable with string arguments.
	KindAction
)

func (k Kind) String() string {
	switch k {
	case KindProperty:
		return "property"
	case KindList:
		return "list"
	case KindAction:
		return "action"
	default:
		return "not_found"
	}
}
