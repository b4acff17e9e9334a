package scope

import (
	"fmt"

	"prism/internal/ast"
	"prism/internal/diag"
)

// StructuralError means the input tree is malformed relative to this
// layer's assumptions: a missing parent link, an unreachable or unbound
// compilation unit, a unit without an owning library. It always signals a
// defect in the producer pipeline, never a steady-state condition.
type StructuralError struct {
	Code diag.Code
	Node ast.NodeID
	Msg  string
}

func (e *StructuralError) Error() string {
	if e.Node.IsValid() {
		return fmt.Sprintf("scope: %s (node #%d)", e.Msg, e.Node)
	}
	return "scope: " + e.Msg
}

func structural(code diag.Code, node ast.NodeID, msg string) *StructuralError {
	return &StructuralError{Code: code, Node: node, Msg: msg}
}

// UnresolvedDeclError means a declaration ancestor has no bound element:
// the binding pass has not run yet, or failed upstream. Distinct from a
// structural defect; callers typically retry after binding completes.
type UnresolvedDeclError struct {
	Node ast.NodeID
	Kind ast.NodeKind
}

func (e *UnresolvedDeclError) Error() string {
	switch e.Kind {
	case ast.NodeTypeDecl, ast.NodeTypeAlias:
		return "scope: cannot build scope for an unresolved type"
	case ast.NodeCtorDecl:
		return "scope: cannot build scope for an unresolved constructor"
	case ast.NodeMethodDecl:
		return "scope: cannot build scope for an unresolved method"
	default:
		return "scope: cannot build scope for an unresolved function"
	}
}

// DiagCode maps the failure onto its diagnostic code.
func (e *UnresolvedDeclError) DiagCode() diag.Code {
	switch e.Kind {
	case ast.NodeTypeDecl, ast.NodeTypeAlias:
		return diag.ScopeUnresolvedType
	default:
		return diag.ScopeUnresolvedExec
	}
}
