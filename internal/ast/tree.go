package ast

import (
	"fmt"

	"fortio.org/safecast"

	"prism/internal/source"
)

// Tree is the borrowed, read-mostly view of parser output the scope layer
// walks: arena-allocated nodes with parent links already wired. Producers
// (the parser, the snapshot decoder, tests) fill it once; consumers only
// read.
type Tree struct {
	nodes *Arena[Node]
}

// NewTree allocates a tree with room for capHint nodes.
func NewTree(capHint uint) *Tree {
	if _, err := safecast.Conv[uint32](capHint); err != nil {
		panic(fmt.Errorf("tree capacity overflow: %w", err))
	}
	return &Tree{nodes: NewArena[Node](capHint)}
}

// Add appends a node and returns its ID. Parent links are taken as given;
// acyclicity is the producer's contract, not enforced here.
func (t *Tree) Add(kind NodeKind, parent NodeID, span source.Span) NodeID {
	return NodeID(t.nodes.Allocate(Node{
		Kind:   kind,
		Parent: parent,
		Span:   span,
	}))
}

// Node returns the node for id, or nil when id is absent or out of range.
func (t *Tree) Node(id NodeID) *Node {
	return t.nodes.Get(uint32(id))
}

// Parent returns the parent of id, or NoNodeID at a root or for an unknown
// id.
func (t *Tree) Parent(id NodeID) NodeID {
	node := t.Node(id)
	if node == nil {
		return NoNodeID
	}
	return node.Parent
}

// Kind returns the kind of id; unknown IDs read as NodeOther.
func (t *Tree) Kind(id NodeID) NodeKind {
	node := t.Node(id)
	if node == nil {
		return NodeOther
	}
	return node.Kind
}

func (t *Tree) Len() uint32 {
	return t.nodes.Len()
}

// Nodes exposes the node storage in allocation order. Read-only.
func (t *Tree) Nodes() []Node {
	return t.nodes.Slice()
}

// Validate checks that every parent link points at an earlier node, which
// rules out cycles for trees built front to back (the snapshot decoder
// relies on this).
func (t *Tree) Validate() error {
	for idx, node := range t.nodes.Slice() {
		id := NodeID(idx + 1)
		if node.Parent >= id && node.Parent.IsValid() {
			return fmt.Errorf("node #%d references parent #%d allocated later", id, node.Parent)
		}
	}
	return nil
}
