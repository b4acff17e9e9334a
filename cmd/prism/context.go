package main

import (
	"fmt"
	"strconv"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"prism/internal/ast"
	"prism/internal/elem"
	"prism/internal/scope"
	"prism/internal/snapshot"
)

var (
	layerColor = color.New(color.FgCyan)
	ownerColor = color.New(color.FgYellow)
	errColor   = color.New(color.FgRed, color.Bold)
)

var contextCmd = &cobra.Command{
	Use:   "context <snapshot.mp> <node-id>",
	Short: "Resolve the scope chain visible around one node",
	Long:  `Load an AST/element snapshot and print the lexical scope chain, innermost first, for the given node`,
	Args:  cobra.ExactArgs(2),
	RunE:  runContext,
}

func init() {
	contextCmd.Flags().Int("depth-limit", 0, "max ancestor walk depth (0=default)")
}

func runContext(cmd *cobra.Command, args []string) error {
	raw, err := strconv.ParseUint(args[1], 10, 32)
	if err != nil {
		return fmt.Errorf("invalid node id %q: %w", args[1], err)
	}
	target := ast.NodeID(raw)

	depthLimit, err := cmd.Flags().GetInt("depth-limit")
	if err != nil {
		return fmt.Errorf("failed to get depth-limit flag: %w", err)
	}

	manifest, hasManifest, err := loadProjectManifest("")
	if err != nil {
		return err
	}
	manifestColor := ""
	if hasManifest {
		manifestColor = manifest.Config.Output.Color
		if depthLimit == 0 {
			depthLimit = manifest.Config.Resolve.DepthLimit
		}
	}
	if err := setupColor(cmd, manifestColor); err != nil {
		return err
	}

	snap, err := snapshot.Load(args[0])
	if err != nil {
		return err
	}
	tree, graph, err := snap.Restore()
	if err != nil {
		return err
	}

	ctx, err := scope.ContextForOpts(tree, graph, target, scope.Options{MaxDepth: depthLimit})
	if err != nil {
		errColor.Fprintln(cmd.ErrOrStderr(), err)
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "node #%d (%s)\n", target, tree.Kind(target))
	for link := ctx.Scope; link != nil; link = link.Outer() {
		fmt.Fprintf(out, "  %s scope", layerColor.Sprint(link.Kind()))
		if name := ownerName(graph, link.Owner()); name != "" {
			fmt.Fprintf(out, "  %s", ownerColor.Sprint(name))
		}
		fmt.Fprintln(out)
	}
	fmt.Fprintf(out, "enclosing unit:  element #%d\n", ctx.Unit)
	if ctx.TypeNode.IsValid() {
		fmt.Fprintf(out, "enclosing type:  node #%d, element #%d (%s)\n",
			ctx.TypeNode, ctx.TypeElement, graph.Name(ctx.TypeElement))
	} else {
		fmt.Fprintln(out, "enclosing type:  none")
	}
	return nil
}

func ownerName(graph *elem.Graph, id elem.ElementID) string {
	el := graph.Get(id)
	if el == nil {
		return ""
	}
	name := graph.Name(id)
	if name == "" {
		return el.Kind.String()
	}
	return fmt.Sprintf("%s %q", el.Kind, name)
}
