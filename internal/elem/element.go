package elem

import (
	"prism/internal/ast"
	"prism/internal/source"
)

// ElementKind classifies semantic symbols produced by the binding pass.
type ElementKind uint8

const (
	ElemInvalid ElementKind = iota
	ElemLibrary
	ElemUnit
	ElemType
	ElemAlias
	ElemFunction
	ElemMethod
	ElemConstructor
	ElemParameter
	ElemTypeParameter
	ElemField
)

func (k ElementKind) String() string {
	switch k {
	case ElemLibrary:
		return "library"
	case ElemUnit:
		return "unit"
	case ElemType:
		return "type"
	case ElemAlias:
		return "alias"
	case ElemFunction:
		return "function"
	case ElemMethod:
		return "method"
	case ElemConstructor:
		return "constructor"
	case ElemParameter:
		return "parameter"
	case ElemTypeParameter:
		return "type parameter"
	case ElemField:
		return "field"
	default:
		return "invalid"
	}
}

// Element is one bound symbol. The scope layer only ever reads these; the
// binding pass owns construction and wiring.
type Element struct {
	Kind ElementKind
	Name source.StringID
	// Library points at the owning library element. The binding pass sets
	// it on unit elements; a unit without one cannot seed a module scope.
	Library ElementID
	// Enclosing is the lexical owner: the unit for top-level declarations,
	// the type for members and type parameters, the executable for formal
	// parameters.
	Enclosing  ElementID
	TypeParams []ElementID
	Members    []ElementID
	Params     []ElementID
	// Decl points back at the declaration node this element was bound to,
	// when there is one.
	Decl ast.NodeID
}

// IsExecutable reports whether the element carries formal parameters.
func (e *Element) IsExecutable() bool {
	switch e.Kind {
	case ElemFunction, ElemMethod, ElemConstructor:
		return true
	default:
		return false
	}
}
