package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"prism/internal/ast"
	"prism/internal/diag"
	"prism/internal/driver"
	"prism/internal/scope"
	"prism/internal/snapshot"
)

var batchCmd = &cobra.Command{
	Use:   "batch <snapshot.mp>",
	Short: "Resolve every node in a snapshot and report failures",
	Args:  cobra.ExactArgs(1),
	RunE:  runBatch,
}

func init() {
	batchCmd.Flags().Int("jobs", 0, "max parallel workers (0=auto)")
	batchCmd.Flags().Int("depth-limit", 0, "max ancestor walk depth (0=default)")
	batchCmd.Flags().Int("max-diagnostics", 100, "maximum number of diagnostics to show")
}

func runBatch(cmd *cobra.Command, args []string) error {
	jobs, err := cmd.Flags().GetInt("jobs")
	if err != nil {
		return fmt.Errorf("failed to get jobs flag: %w", err)
	}
	depthLimit, err := cmd.Flags().GetInt("depth-limit")
	if err != nil {
		return fmt.Errorf("failed to get depth-limit flag: %w", err)
	}
	maxDiagnostics, err := cmd.Flags().GetInt("max-diagnostics")
	if err != nil {
		return fmt.Errorf("failed to get max-diagnostics flag: %w", err)
	}
	quiet, err := cmd.Root().PersistentFlags().GetBool("quiet")
	if err != nil {
		return fmt.Errorf("failed to get quiet flag: %w", err)
	}

	manifest, hasManifest, err := loadProjectManifest("")
	if err != nil {
		return err
	}
	manifestColor := ""
	if hasManifest {
		manifestColor = manifest.Config.Output.Color
		if jobs == 0 {
			jobs = manifest.Config.Resolve.Jobs
		}
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

	targets := make([]ast.NodeID, 0, tree.Len())
	for i := uint32(1); i <= tree.Len(); i++ {
		targets = append(targets, ast.NodeID(i))
	}

	results, err := driver.ResolveAll(cmd.Context(), tree, graph, targets, jobs,
		scope.Options{MaxDepth: depthLimit})
	if err != nil {
		return err
	}

	bag := diag.NewBag(maxDiagnostics)
	failures := driver.Report(results, tree, diag.NewBagReporter(bag))
	bag.Sort()

	out := cmd.OutOrStdout()
	if !quiet {
		for _, d := range bag.Items() {
			errColor.Fprintf(out, "%s ", d.Severity)
			fmt.Fprintf(out, "%s at %s: %s\n", d.Code.ID(), d.Primary, d.Message)
		}
	}
	fmt.Fprintf(out, "%d nodes resolved, %d failed\n", len(results)-failures, failures)
	if failures > 0 {
		return fmt.Errorf("%d nodes failed to resolve", failures)
	}
	return nil
}
