package ast

import (
	"testing"

	"prism/internal/source"
)

func TestTreeAddAndLookup(t *testing.T) {
	tree := NewTree(0)
	span := source.Span{File: 1}

	unit := tree.Add(NodeUnit, NoNodeID, span)
	decl := tree.Add(NodeTypeDecl, unit, span)

	if !unit.IsValid() || !decl.IsValid() {
		t.Fatalf("expected valid node IDs")
	}
	if tree.Parent(decl) != unit {
		t.Fatalf("parent link lost: got %d", tree.Parent(decl))
	}
	if tree.Kind(unit) != NodeUnit {
		t.Fatalf("kind lost: got %v", tree.Kind(unit))
	}
}

func TestTreeUnknownID(t *testing.T) {
	tree := NewTree(0)
	if tree.Node(NodeID(42)) != nil {
		t.Fatalf("out-of-range lookup must return nil")
	}
	if tree.Parent(NoNodeID) != NoNodeID {
		t.Fatalf("absent node must have no parent")
	}
}

func TestTreeValidateRejectsForwardParent(t *testing.T) {
	tree := NewTree(0)
	span := source.Span{File: 1}

	// Parent link to a node that is only allocated afterwards.
	tree.Add(NodeOther, NodeID(2), span)
	tree.Add(NodeUnit, NoNodeID, span)

	if err := tree.Validate(); err == nil {
		t.Fatalf("expected validation failure for forward parent link")
	}
}

func TestTreeValidateAcceptsWellFormed(t *testing.T) {
	tree := NewTree(4)
	span := source.Span{File: 1}

	unit := tree.Add(NodeUnit, NoNodeID, span)
	decl := tree.Add(NodeTypeDecl, unit, span)
	tree.Add(NodeMethodDecl, decl, span)

	if err := tree.Validate(); err != nil {
		t.Fatalf("validate: %v", err)
	}
}
