package scope

import "prism/internal/elem"

// LayerKind names the declaration layer one chain link contributes.
type LayerKind uint8

const (
	LayerInvalid LayerKind = iota
	// LayerModule is the outermost layer, seeded from the owning library.
	LayerModule
	// LayerTypeParams holds a type declaration's type parameters.
	LayerTypeParams
	// LayerMembers holds a type declaration's members.
	LayerMembers
	// LayerParams holds an executable's formal parameters.
	LayerParams
	// LayerFuncType is contributed by a function-type alias.
	LayerFuncType
)

func (k LayerKind) String() string {
	switch k {
	case LayerModule:
		return "module"
	case LayerTypeParams:
		return "type parameters"
	case LayerMembers:
		return "members"
	case LayerParams:
		return "parameters"
	case LayerFuncType:
		return "function type"
	default:
		return "invalid"
	}
}

// Link is one layer of a scope chain, from innermost outward. A link never
// changes after construction, so outer tails can be shared freely between
// contexts and between goroutines.
//
// Link does not perform name lookup. It records which declaration element
// contributed the layer; a consumer resolving an identifier walks Outer()
// innermost-first and interprets Owner() against the element graph.
type Link struct {
	kind  LayerKind
	owner elem.ElementID
	outer *Link
}

func newLink(kind LayerKind, owner elem.ElementID, outer *Link) *Link {
	return &Link{kind: kind, owner: owner, outer: outer}
}

func (l *Link) Kind() LayerKind {
	return l.kind
}

// Owner is the element whose declaration produced this layer: the library
// for module layers, the type for type-parameter/member layers, the
// executable for parameter layers, the alias for function-type layers.
func (l *Link) Owner() elem.ElementID {
	return l.owner
}

// Outer returns the next layer outward, or nil at the module boundary.
func (l *Link) Outer() *Link {
	return l.outer
}

// Depth counts layers from this link to the module boundary, inclusive.
func (l *Link) Depth() int {
	n := 0
	for cur := l; cur != nil; cur = cur.outer {
		n++
	}
	return n
}
