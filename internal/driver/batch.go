// Package driver orchestrates scope resolution over many targets. The core
// builder is a pure function of its inputs, so targets fan out across
// workers with no synchronization beyond the read-only tree and graph.
package driver

import (
	"context"
	"errors"
	"runtime"

	"golang.org/x/sync/errgroup"

	"prism/internal/ast"
	"prism/internal/diag"
	"prism/internal/elem"
	"prism/internal/scope"
	"prism/internal/source"
)

// Result is the outcome of resolving one target node. Exactly one of Ctx
// and Err is meaningful.
type Result struct {
	Target ast.NodeID
	Ctx    scope.Context
	Err    error
}

// ResolveAll resolves every target in parallel with at most jobs workers
// (0 = GOMAXPROCS-sized). Results come back indexed like targets. Per-node
// failures land in Result.Err; the returned error is reserved for context
// cancellation.
func ResolveAll(ctx context.Context, tree *ast.Tree, graph *elem.Graph, targets []ast.NodeID, jobs int, opts scope.Options) ([]Result, error) {
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}
	results := make([]Result, len(targets))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(jobs)
	for i, target := range targets {
		i, target := i, target
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			c, err := scope.ContextForOpts(tree, graph, target, opts)
			results[i] = Result{Target: target, Ctx: c, Err: err}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// Report maps every failed result onto a diagnostic and returns the
// failure count. Spans come from the node the error names, falling back to
// the target node for null-target failures.
func Report(results []Result, tree *ast.Tree, r diag.Reporter) int {
	failures := 0
	for _, res := range results {
		if res.Err == nil {
			continue
		}
		failures++

		code := diag.UnknownCode
		at := res.Target
		var structural *scope.StructuralError
		var unresolved *scope.UnresolvedDeclError
		switch {
		case errors.As(res.Err, &structural):
			code = structural.Code
			if structural.Node.IsValid() {
				at = structural.Node
			}
		case errors.As(res.Err, &unresolved):
			code = unresolved.DiagCode()
			at = unresolved.Node
		}

		var span source.Span
		if node := tree.Node(at); node != nil {
			span = node.Span
		} else if node := tree.Node(res.Target); node != nil {
			span = node.Span
		}
		diag.ReportError(r, code, span, res.Err.Error())
	}
	return failures
}
