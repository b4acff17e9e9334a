// Package scope assembles the chain of lexically visible name-binding
// layers around a syntax-tree node, together with the enclosing unit and
// type landmarks a resolver needs. It only builds the chain; name lookup
// over it belongs to consumers.
//
// The builder walks parent links upward, layering one link per
// declaration-bearing ancestor. The chain for a node deliberately excludes
// any layer the node itself would introduce for its children: while
// elaborating a type's own header, the type's members are not yet in
// scope.
package scope

import (
	"prism/internal/ast"
	"prism/internal/diag"
	"prism/internal/elem"
)

// DefaultMaxDepth bounds the ancestor walk. Well-formed trees are orders
// of magnitude shallower; hitting the bound means the producer wired a
// parent cycle.
const DefaultMaxDepth = 1 << 16

// Options tune one resolution request.
type Options struct {
	// MaxDepth overrides DefaultMaxDepth when positive.
	MaxDepth int
}

// builder carries the per-call traversal state: the borrowed inputs and
// the enclosing-unit/type accumulator. A fresh builder per call keeps
// ContextFor re-entrant and safe for concurrent use over a shared tree.
type builder struct {
	tree     *ast.Tree
	graph    *elem.Graph
	maxDepth int

	unit     elem.ElementID
	typeNode ast.NodeID
	typeElem elem.ElementID
}

// ContextFor computes the resolution context for target with default
// options.
func ContextFor(tree *ast.Tree, graph *elem.Graph, target ast.NodeID) (Context, error) {
	return ContextForOpts(tree, graph, target, Options{})
}

// ContextForOpts computes the scope chain visible around target and the
// enclosing unit/type landmarks. It fails with *StructuralError when the
// tree is malformed (no parent path to a bound compilation unit) and with
// *UnresolvedDeclError when a declaration ancestor has no bound element.
// No partial context is ever returned.
func ContextForOpts(tree *ast.Tree, graph *elem.Graph, target ast.NodeID, opts Options) (Context, error) {
	if !target.IsValid() {
		return Context{}, structural(diag.ScopeNullTarget, ast.NoNodeID, "cannot build context: node is null")
	}
	b := &builder{
		tree:     tree,
		graph:    graph,
		maxDepth: opts.MaxDepth,
	}
	if b.maxDepth <= 0 {
		b.maxDepth = DefaultMaxDepth
	}
	link, err := b.outerScope(target)
	if err != nil {
		return Context{}, err
	}
	return Context{
		Scope:       link,
		Unit:        b.unit,
		TypeNode:    b.typeNode,
		TypeElement: b.typeElem,
	}, nil
}

// outerScope resolves the scope surrounding id: the module scope directly
// when id is a compilation unit, otherwise the inner scope of its parent.
// The asymmetry against innerScope is what keeps a declaration's own
// layers out of its own header.
func (b *builder) outerScope(id ast.NodeID) (*Link, error) {
	node := b.tree.Node(id)
	if node == nil {
		return nil, structural(diag.ScopeUnrooted, id, "node is not rooted in a compilation unit")
	}
	if node.Kind == ast.NodeUnit {
		return b.innerScope(id, 0)
	}
	if !node.Parent.IsValid() {
		return nil, structural(diag.ScopeUnrooted, id, "node is not rooted in a compilation unit")
	}
	return b.innerScope(node.Parent, 0)
}

// innerScope resolves the scope visible to children of id, recursing to
// the compilation-unit base case and wrapping one layer per declaration
// kind on the way back down. Ancestors are therefore processed outermost
// first, so the accumulator fields end up holding the nearest enclosing
// unit and type.
func (b *builder) innerScope(id ast.NodeID, depth int) (*Link, error) {
	if depth >= b.maxDepth {
		return nil, structural(diag.ScopeDepthExceeded, id, "ancestor chain exceeds depth limit")
	}
	node := b.tree.Node(id)
	if node == nil {
		return nil, structural(diag.ScopeUnrooted, id, "node is not rooted in a compilation unit")
	}

	if node.Kind == ast.NodeUnit {
		el := b.graph.DeclaredElement(id)
		if !el.IsValid() {
			return nil, structural(diag.ScopeUnitUnbound, id, "compilation unit is not bound")
		}
		lib := b.graph.OwningLibrary(el)
		if !lib.IsValid() {
			return nil, structural(diag.ScopeNoLibrary, id, "compilation unit has no owning library")
		}
		b.unit = el
		return newLink(LayerModule, lib, nil), nil
	}

	if !node.Parent.IsValid() {
		return nil, structural(diag.ScopeUnrooted, id, "node is not rooted in a compilation unit")
	}
	outer, err := b.innerScope(node.Parent, depth+1)
	if err != nil {
		return nil, err
	}

	switch node.Kind {
	case ast.NodeTypeDecl, ast.NodeTypeAlias:
		el := b.graph.DeclaredElement(id)
		if !el.IsValid() {
			return nil, &UnresolvedDeclError{Node: id, Kind: node.Kind}
		}
		b.typeNode = id
		b.typeElem = el
		typeParams := newLink(LayerTypeParams, el, outer)
		return newLink(LayerMembers, el, typeParams), nil

	case ast.NodeCtorDecl, ast.NodeFuncDecl, ast.NodeMethodDecl:
		el := b.graph.DeclaredElement(id)
		if !el.IsValid() {
			return nil, &UnresolvedDeclError{Node: id, Kind: node.Kind}
		}
		return newLink(LayerParams, el, outer), nil

	case ast.NodeFuncAlias:
		// The element graph already guarantees whatever is bound here;
		// no unresolved-declaration check beyond that.
		return newLink(LayerFuncType, b.graph.DeclaredElement(id), outer), nil

	case ast.NodeUnit:
		// Handled by the base case above.
		return outer, nil

	case ast.NodeOther:
		return outer, nil
	}
	return outer, nil
}
