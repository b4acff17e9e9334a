// Package snapshot serializes an AST tree plus its element graph so the
// CLI and tests can consume trees produced by an external frontend without
// linking one in. The format is an internal fixture/transport encoding,
// not a public wire protocol.
package snapshot

import (
	"fmt"

	"fortio.org/safecast"

	"prism/internal/ast"
	"prism/internal/elem"
	"prism/internal/source"
)

// Schema is the current payload version. Bump when any record layout
// changes; Restore refuses other versions.
const Schema uint16 = 1

// Node is the serialized form of one tree node.
type Node struct {
	Kind   uint8
	Parent uint32
	File   uint32
	Start  uint32
	End    uint32
}

// Element is the serialized form of one graph element.
type Element struct {
	Kind       uint8
	Name       uint32
	Library    uint32
	Enclosing  uint32
	TypeParams []uint32
	Members    []uint32
	Params     []uint32
	Decl       uint32
}

// Binding pairs a declaration node with its bound element.
type Binding struct {
	Node    uint32
	Element uint32
}

// Snapshot is the full serializable state of one analyzed program slice.
type Snapshot struct {
	Schema   uint16
	Strings  []string
	Nodes    []Node
	Elements []Element
	Bindings []Binding
}

// Capture flattens a tree and graph into a Snapshot.
func Capture(tree *ast.Tree, graph *elem.Graph) *Snapshot {
	s := &Snapshot{
		Schema:  Schema,
		Strings: graph.Strings.Snapshot(),
	}

	nodes := tree.Nodes()
	s.Nodes = make([]Node, len(nodes))
	for i, n := range nodes {
		s.Nodes[i] = Node{
			Kind:   uint8(n.Kind),
			Parent: uint32(n.Parent),
			File:   uint32(n.Span.File),
			Start:  n.Span.Start,
			End:    n.Span.End,
		}
	}

	elements := graph.Elements()
	s.Elements = make([]Element, len(elements))
	for i, el := range elements {
		s.Elements[i] = Element{
			Kind:       uint8(el.Kind),
			Name:       uint32(el.Name),
			Library:    uint32(el.Library),
			Enclosing:  uint32(el.Enclosing),
			TypeParams: idList(el.TypeParams),
			Members:    idList(el.Members),
			Params:     idList(el.Params),
			Decl:       uint32(el.Decl),
		}
	}

	for _, b := range graph.Bindings() {
		s.Bindings = append(s.Bindings, Binding{
			Node:    uint32(b.Node),
			Element: uint32(b.Element),
		})
	}
	return s
}

// Restore rebuilds the tree and graph from a snapshot, validating the
// schema version and every cross-reference before handing anything back.
func (s *Snapshot) Restore() (*ast.Tree, *elem.Graph, error) {
	if s.Schema != Schema {
		return nil, nil, fmt.Errorf("snapshot schema %d is not supported (want %d)", s.Schema, Schema)
	}

	nodeCount, err := safecast.Conv[uint32](len(s.Nodes))
	if err != nil {
		return nil, nil, fmt.Errorf("node count overflow: %w", err)
	}
	elemCount, err := safecast.Conv[uint32](len(s.Elements))
	if err != nil {
		return nil, nil, fmt.Errorf("element count overflow: %w", err)
	}
	stringCount := uint32(len(s.Strings))

	tree := ast.NewTree(uint(nodeCount))
	for i, n := range s.Nodes {
		if n.Parent > nodeCount {
			return nil, nil, fmt.Errorf("node #%d: parent %d out of range", i+1, n.Parent)
		}
		tree.Add(ast.NodeKind(n.Kind), ast.NodeID(n.Parent), source.Span{
			File:  source.FileID(n.File),
			Start: n.Start,
			End:   n.End,
		})
	}
	if err := tree.Validate(); err != nil {
		return nil, nil, err
	}

	graph := elem.NewGraph(elem.Hints{Elements: uint(elemCount)}, source.Restore(s.Strings))
	for i, rec := range s.Elements {
		if rec.Name >= stringCount && rec.Name != 0 {
			return nil, nil, fmt.Errorf("element #%d: name %d out of range", i+1, rec.Name)
		}
		if rec.Library > elemCount || rec.Enclosing > elemCount {
			return nil, nil, fmt.Errorf("element #%d: owner reference out of range", i+1)
		}
		if rec.Decl > nodeCount {
			return nil, nil, fmt.Errorf("element #%d: declaration node %d out of range", i+1, rec.Decl)
		}
		typeParams, err := elemList(rec.TypeParams, elemCount)
		if err != nil {
			return nil, nil, fmt.Errorf("element #%d: %w", i+1, err)
		}
		members, err := elemList(rec.Members, elemCount)
		if err != nil {
			return nil, nil, fmt.Errorf("element #%d: %w", i+1, err)
		}
		params, err := elemList(rec.Params, elemCount)
		if err != nil {
			return nil, nil, fmt.Errorf("element #%d: %w", i+1, err)
		}
		graph.New(elem.Element{
			Kind:       elem.ElementKind(rec.Kind),
			Name:       source.StringID(rec.Name),
			Library:    elem.ElementID(rec.Library),
			Enclosing:  elem.ElementID(rec.Enclosing),
			TypeParams: typeParams,
			Members:    members,
			Params:     params,
			Decl:       ast.NodeID(rec.Decl),
		})
	}

	for _, b := range s.Bindings {
		if b.Node == 0 || b.Node > nodeCount {
			return nil, nil, fmt.Errorf("binding: node %d out of range", b.Node)
		}
		if b.Element == 0 || b.Element > elemCount {
			return nil, nil, fmt.Errorf("binding: element %d out of range", b.Element)
		}
		graph.Bind(ast.NodeID(b.Node), elem.ElementID(b.Element))
	}
	return tree, graph, nil
}

func idList(ids []elem.ElementID) []uint32 {
	if len(ids) == 0 {
		return nil
	}
	out := make([]uint32, len(ids))
	for i, id := range ids {
		out[i] = uint32(id)
	}
	return out
}

func elemList(ids []uint32, max uint32) ([]elem.ElementID, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	out := make([]elem.ElementID, len(ids))
	for i, id := range ids {
		if id == 0 || id > max {
			return nil, fmt.Errorf("element reference %d out of range", id)
		}
		out[i] = elem.ElementID(id)
	}
	return out, nil
}
