package driver

import (
	"context"
	"testing"

	"prism/internal/ast"
	"prism/internal/diag"
	"prism/internal/elem"
	"prism/internal/scope"
	"prism/internal/source"
)

func buildProgram(t *testing.T) (*ast.Tree, *elem.Graph) {
	t.Helper()
	tree := ast.NewTree(8)
	graph := elem.NewGraph(elem.Hints{}, nil)
	span := source.Span{File: 1}

	unit := tree.Add(ast.NodeUnit, ast.NoNodeID, span)
	typeDecl := tree.Add(ast.NodeTypeDecl, unit, span)
	method := tree.Add(ast.NodeMethodDecl, typeDecl, span)
	tree.Add(ast.NodeOther, method, span)
	tree.Add(ast.NodeOther, method, span)
	tree.Add(ast.NodeOther, unit, span)

	lib := graph.New(elem.Element{Kind: elem.ElemLibrary, Name: graph.Strings.Intern("demo")})
	unitElem := graph.New(elem.Element{Kind: elem.ElemUnit, Library: lib})
	typeElem := graph.New(elem.Element{Kind: elem.ElemType, Name: graph.Strings.Intern("C")})
	methodElem := graph.New(elem.Element{Kind: elem.ElemMethod, Enclosing: typeElem})

	graph.Bind(unit, unitElem)
	graph.Bind(typeDecl, typeElem)
	graph.Bind(method, methodElem)
	return tree, graph
}

func allNodes(tree *ast.Tree) []ast.NodeID {
	targets := make([]ast.NodeID, 0, tree.Len())
	for i := uint32(1); i <= tree.Len(); i++ {
		targets = append(targets, ast.NodeID(i))
	}
	return targets
}

func TestResolveAllMatchesSerial(t *testing.T) {
	tree, graph := buildProgram(t)
	targets := allNodes(tree)

	parallel, err := ResolveAll(context.Background(), tree, graph, targets, 4, scope.Options{})
	if err != nil {
		t.Fatalf("ResolveAll: %v", err)
	}
	if len(parallel) != len(targets) {
		t.Fatalf("got %d results for %d targets", len(parallel), len(targets))
	}

	for i, target := range targets {
		want, wantErr := scope.ContextFor(tree, graph, target)
		got := parallel[i]
		if got.Target != target {
			t.Fatalf("result %d is for node %d, want %d", i, got.Target, target)
		}
		if (got.Err == nil) != (wantErr == nil) {
			t.Fatalf("node %d: parallel error %v, serial error %v", target, got.Err, wantErr)
		}
		if wantErr != nil {
			continue
		}
		if got.Ctx.Unit != want.Unit || got.Ctx.TypeNode != want.TypeNode {
			t.Fatalf("node %d: parallel context differs from serial", target)
		}
		for a, b := got.Ctx.Scope, want.Scope; a != nil || b != nil; a, b = a.Outer(), b.Outer() {
			if a == nil || b == nil || a.Kind() != b.Kind() || a.Owner() != b.Owner() {
				t.Fatalf("node %d: chains differ", target)
			}
		}
	}
}

func TestReportCollectsFailures(t *testing.T) {
	tree, graph := buildProgram(t)
	span := source.Span{File: 1, Start: 5, End: 9}
	unbound := tree.Add(ast.NodeTypeDecl, ast.NodeID(1), span)
	inner := tree.Add(ast.NodeOther, unbound, span)

	results, err := ResolveAll(context.Background(), tree, graph,
		[]ast.NodeID{inner, ast.NodeID(4)}, 0, scope.Options{})
	if err != nil {
		t.Fatalf("ResolveAll: %v", err)
	}

	bag := diag.NewBag(16)
	failures := Report(results, tree, diag.NewBagReporter(bag))
	if failures != 1 {
		t.Fatalf("expected 1 failure, got %d", failures)
	}
	if bag.Len() != 1 {
		t.Fatalf("expected 1 diagnostic, got %d", bag.Len())
	}
	d := bag.Items()[0]
	if d.Code != diag.ScopeUnresolvedType {
		t.Fatalf("wrong code: %v", d.Code)
	}
	if d.Primary != span {
		t.Fatalf("diagnostic span %v, want %v", d.Primary, span)
	}
}

func TestResolveAllCanceled(t *testing.T) {
	tree, graph := buildProgram(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := ResolveAll(ctx, tree, graph, allNodes(tree), 1, scope.Options{}); err == nil {
		t.Fatalf("expected cancellation error")
	}
}
