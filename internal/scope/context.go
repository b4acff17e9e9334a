package scope

import (
	"prism/internal/ast"
	"prism/internal/elem"
)

// Context is the read-only result of one resolution request: the scope
// chain visible around the target node plus the structural landmarks
// collected during the same traversal.
//
// When construction succeeds, Unit is always set (every successful walk
// passes through the compilation-unit base case) and TypeNode/TypeElement
// are either both set or both absent.
type Context struct {
	// Scope is the innermost link of the assembled chain.
	Scope *Link
	// Unit is the element of the nearest enclosing compilation unit.
	Unit elem.ElementID
	// TypeNode is the nearest enclosing type declaration, NoNodeID when
	// the target sits outside any type.
	TypeNode ast.NodeID
	// TypeElement mirrors TypeNode on the element side.
	TypeElement elem.ElementID
}
