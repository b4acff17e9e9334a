package ast

import "prism/internal/source"

// NodeKind is the closed set of node shapes the scope layer distinguishes.
// Anything the parser produces beyond these arrives as NodeOther and is
// transparent to scope construction.
type NodeKind uint8

const (
	NodeOther NodeKind = iota
	NodeUnit
	NodeTypeDecl
	NodeTypeAlias
	// NodeFuncAlias is a type alias whose right-hand side is a function
	// type; it contributes a function-type scope layer instead of the
	// type-parameter/member pair.
	NodeFuncAlias
	NodeCtorDecl
	NodeFuncDecl
	NodeMethodDecl
)

func (k NodeKind) String() string {
	switch k {
	case NodeUnit:
		return "unit"
	case NodeTypeDecl:
		return "type"
	case NodeTypeAlias:
		return "alias"
	case NodeFuncAlias:
		return "function alias"
	case NodeCtorDecl:
		return "constructor"
	case NodeFuncDecl:
		return "function"
	case NodeMethodDecl:
		return "method"
	default:
		return "other"
	}
}

// IsDeclaration reports whether nodes of this kind are expected to carry a
// bound element once the binding pass has run.
func (k NodeKind) IsDeclaration() bool {
	switch k {
	case NodeUnit, NodeTypeDecl, NodeTypeAlias, NodeFuncAlias, NodeCtorDecl, NodeFuncDecl, NodeMethodDecl:
		return true
	default:
		return false
	}
}

// Node is one syntax-tree entry. Parent is NoNodeID only for tree roots;
// every other node must point at an earlier allocation.
type Node struct {
	Kind   NodeKind
	Parent NodeID
	Span   source.Span
}
