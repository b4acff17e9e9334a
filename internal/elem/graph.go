package elem

import (
	"fmt"
	"sort"

	"fortio.org/safecast"

	"prism/internal/ast"
	"prism/internal/source"
)

// Hints provide optional capacity suggestions for the element arena.
type Hints struct{ Elements uint }

// Binding records the element attached to one declaration node.
type Binding struct {
	Node    ast.NodeID
	Element ElementID
}

// Graph aggregates the elements of one analyzed program plus the
// node-to-element bindings the prior pass produced. The scope layer treats
// it as read-only; a missing binding on a declaration node is surfaced by
// the scope builder, never repaired here.
type Graph struct {
	elements *ast.Arena[Element]
	Strings  *source.Interner
	decls    map[ast.NodeID]ElementID
}

// NewGraph builds an empty graph. If strings is nil, a fresh interner is
// allocated.
func NewGraph(h Hints, strings *source.Interner) *Graph {
	if _, err := safecast.Conv[uint32](h.Elements); err != nil {
		panic(fmt.Errorf("element capacity overflow: %w", err))
	}
	if strings == nil {
		strings = source.NewInterner()
	}
	return &Graph{
		elements: ast.NewArena[Element](h.Elements),
		Strings:  strings,
		decls:    make(map[ast.NodeID]ElementID),
	}
}

// New allocates an element and returns its ID.
func (g *Graph) New(el Element) ElementID {
	return ElementID(g.elements.Allocate(el))
}

// Get returns the element for id, or nil for an absent/unknown ID.
func (g *Graph) Get(id ElementID) *Element {
	return g.elements.Get(uint32(id))
}

func (g *Graph) Len() uint32 {
	return g.elements.Len()
}

// Elements exposes element storage in allocation order. Read-only.
func (g *Graph) Elements() []Element {
	return g.elements.Slice()
}

// Bind attaches an element to a declaration node, mirroring what the
// binding pass does after it resolves the declaration.
func (g *Graph) Bind(node ast.NodeID, id ElementID) {
	if !node.IsValid() {
		return
	}
	g.decls[node] = id
	if el := g.Get(id); el != nil && !el.Decl.IsValid() {
		el.Decl = node
	}
}

// DeclaredElement returns the element bound to node, or NoElementID when
// binding has not run or failed for it.
func (g *Graph) DeclaredElement(node ast.NodeID) ElementID {
	return g.decls[node]
}

// OwningLibrary resolves the library element a unit element belongs to.
func (g *Graph) OwningLibrary(id ElementID) ElementID {
	el := g.Get(id)
	if el == nil {
		return NoElementID
	}
	return el.Library
}

// Bindings returns every node-to-element binding sorted by node ID, for
// deterministic serialization.
func (g *Graph) Bindings() []Binding {
	out := make([]Binding, 0, len(g.decls))
	for node, el := range g.decls {
		out = append(out, Binding{Node: node, Element: el})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Node < out[j].Node })
	return out
}

// Name returns the spelling of the element's name, or "" for anonymous or
// absent elements.
func (g *Graph) Name(id ElementID) string {
	el := g.Get(id)
	if el == nil {
		return ""
	}
	s, _ := g.Strings.Lookup(el.Name)
	return s
}
