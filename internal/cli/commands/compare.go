package commands

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/kabitools/kabidiff/internal/cli/output"
	"github.com/kabitools/kabidiff/internal/compare"
	"github.com/kabitools/kabidiff/internal/corpus"
	"github.com/kabitools/kabidiff/internal/format"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

// NewCompareCommand creates the compare command.
func NewCompareCommand() *cobra.Command {
	var watch bool

	cmd := &cobra.Command{
		Use:   "compare <dir-a> <dir-b>",
		Short: "Compare the exported type surface of two builds",
		Long: `Load the symtypes files of two build trees and report structural
differences between the type declarations reachable from their
exports. Exports present on only one side are reported by presence.

Output adapts to environment:
  - Terminal: Styled output with colors
  - Piped/Scripted: Markdown format (agent-friendly)`,
		Example: `  # Compare two build trees
  kabidiff compare build-old/ build-new/

  # Output as JSON
  kabidiff compare build-old/ build-new/ --output json

  # Re-run the comparison whenever either tree changes
  kabidiff compare build-old/ build-new/ --watch`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCompare(cmd, args[0], args[1], watch)
		},
	}

	cmd.Flags().BoolVarP(&watch, "watch", "w", false, "Re-run the comparison when either tree changes")

	return cmd
}

func runCompare(cmd *cobra.Command, dirA, dirB string, watch bool) error {
	cmdCtx := NewCommandContext(cmd)

	if err := compareOnce(cmdCtx, dirA, dirB); err != nil {
		return err
	}
	if watch {
		return watchAndCompare(cmd, cmdCtx, dirA, dirB)
	}
	return nil
}

func compareOnce(cmdCtx *CommandContext, dirA, dirB string) error {
	// The two corpora are independent write-once structures, so the
	// loads can run concurrently.
	var corpusA, corpusB *corpus.Corpus
	var g errgroup.Group
	g.Go(func() error {
		var err error
		corpusA, err = cmdCtx.LoadCorpus(dirA)
		return err
	})
	g.Go(func() error {
		var err error
		corpusB, err = cmdCtx.LoadCorpus(dirB)
		return err
	})
	if err := g.Wait(); err != nil {
		return err
	}

	report, err := compare.Compare(corpusA, corpusB)
	if err != nil {
		return err
	}

	r := cmdCtx.Renderer
	switch r.EffectiveMode() {
	case output.ModeJSON:
		return compareJSON(r, report)
	case output.ModeMarkdown:
		return compareMarkdown(r, report)
	default:
		return compareText(r, report)
	}
}

// compareText outputs the report in styled text format.
func compareText(r *output.Renderer, report *compare.Report) error {
	styles := r.Styles()

	for _, name := range report.OnlyInA {
		r.Printf("Export %s is present in A but not in B\n", styles.TypeName.Render(name))
	}
	for _, name := range report.OnlyInB {
		r.Printf("Export %s is present in B but not in A\n", styles.TypeName.Render(name))
	}

	for _, change := range report.Changes.All() {
		r.Println(styles.Header2.Render(change.Name))
		diff := format.UnifiedDiff(change.Name, format.Pretty(change.A), format.Pretty(change.B))
		for _, line := range diff {
			switch {
			case strings.HasPrefix(line, "+"):
				r.Println(styles.Added.Render(line))
			case strings.HasPrefix(line, "-"):
				r.Println(styles.Removed.Render(line))
			case strings.HasPrefix(line, "@@"):
				r.Println(styles.Hunk.Render(line))
			default:
				r.Println(line)
			}
		}
	}

	r.Println(styles.Muted.Render(fmt.Sprintf("Total: %d changed types, %d exports only in A, %d only in B",
		report.Changes.Len(), len(report.OnlyInA), len(report.OnlyInB))))

	return nil
}

// compareMarkdown outputs the report in markdown format.
func compareMarkdown(r *output.Renderer, report *compare.Report) error {
	r.Println(output.FormatHeader(1, "Symtypes Comparison"))
	r.Println("")

	if len(report.OnlyInA) > 0 || len(report.OnlyInB) > 0 {
		r.Println(output.FormatHeader(2, "Export Presence"))
		for _, name := range report.OnlyInA {
			r.Printf("- `%s` present in A but not in B\n", name)
		}
		for _, name := range report.OnlyInB {
			r.Printf("- `%s` present in B but not in A\n", name)
		}
		r.Println("")
	}

	for _, change := range report.Changes.All() {
		r.Println(output.FormatHeader(2, change.Name))
		diff := format.UnifiedDiff(change.Name, format.Pretty(change.A), format.Pretty(change.B))
		r.Println(output.FormatCodeBlock("diff", diff))
		r.Println("")
	}

	r.Println(output.FormatHeader(2, "Summary"))
	r.Println(output.FormatKeyValue("Changed Types", fmt.Sprintf("%d", report.Changes.Len())))
	r.Println(output.FormatKeyValue("Exports only in A", fmt.Sprintf("%d", len(report.OnlyInA))))
	r.Println(output.FormatKeyValue("Exports only in B", fmt.Sprintf("%d", len(report.OnlyInB))))

	return nil
}

// compareJSON outputs the report in JSON format.
func compareJSON(r *output.Renderer, report *compare.Report) error {
	out := output.CompareOutput{
		OnlyInA: report.OnlyInA,
		OnlyInB: report.OnlyInB,
		Changes: make([]output.ChangeOutput, 0, report.Changes.Len()),
	}

	for _, change := range report.Changes.All() {
		prettyA := format.Pretty(change.A)
		prettyB := format.Pretty(change.B)
		out.Changes = append(out.Changes, output.ChangeOutput{
			Name: change.Name,
			A:    prettyA,
			B:    prettyB,
			Diff: format.UnifiedDiff(change.Name, prettyA, prettyB),
		})
	}

	enc := json.NewEncoder(r.Writer())
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
