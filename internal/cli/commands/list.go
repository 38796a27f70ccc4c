package commands

import (
	"encoding/json"
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/kabitools/kabidiff/internal/cli/output"
	"github.com/kabitools/kabidiff/internal/corpus"
	"github.com/spf13/cobra"
)

// NewListCommand creates the list command.
func NewListCommand() *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List loaded symtypes files and their declaration counts",
		Long: `Load a build tree and summarize every symtypes file: path, number of
declarations and number of exports.

Use --output to override the format: auto, text, markdown, json`,
		Example: `  # Summarize a build tree
  kabidiff list --dir build/

  # As JSON
  kabidiff list --dir build/ --output json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runList(cmd, dir)
		},
	}

	cmd.Flags().StringVarP(&dir, "dir", "d", ".", "Build tree to load")

	return cmd
}

func runList(cmd *cobra.Command, dir string) error {
	cmdCtx := NewCommandContext(cmd)

	c, err := cmdCtx.LoadCorpus(dir)
	if err != nil {
		return err
	}

	r := cmdCtx.Renderer
	switch r.EffectiveMode() {
	case output.ModeJSON:
		return listJSON(r, c)
	case output.ModeMarkdown:
		return listMarkdown(r, c)
	default:
		return listText(r, c)
	}
}

func fileSummary(c *corpus.Corpus) []output.FileOutput {
	files := make([]output.FileOutput, 0, len(c.Files))
	for i, f := range c.Files {
		exports := 0
		for name := range f.Records {
			if !corpus.IsRefName(name) && c.Exports[name] == i {
				exports++
			}
		}
		files = append(files, output.FileOutput{
			Path:         f.Path,
			Declarations: len(f.Records),
			Exports:      exports,
		})
	}
	return files
}

// listText outputs the summary as a table.
func listText(r *output.Renderer, c *corpus.Corpus) error {
	styles := r.Styles()

	t := table.NewWriter()
	t.SetOutputMirror(r.Writer())
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"File", "Declarations", "Exports"})
	for _, f := range fileSummary(c) {
		t.AppendRow(table.Row{f.Path, f.Declarations, f.Exports})
	}
	t.Render()

	r.Println(styles.Muted.Render(fmt.Sprintf("Total: %d files, %d distinct types, %d exports",
		len(c.Files), c.Types.Len(), len(c.Exports))))

	return nil
}

// listMarkdown outputs the summary in markdown format.
func listMarkdown(r *output.Renderer, c *corpus.Corpus) error {
	r.Println(output.FormatHeader(1, "Symtypes Files"))
	r.Println("")
	r.Println("| File | Declarations | Exports |")
	r.Println("|------|--------------|---------|")
	for _, f := range fileSummary(c) {
		r.Printf("| %s | %d | %d |\n", f.Path, f.Declarations, f.Exports)
	}
	r.Println("")
	r.Println(output.FormatHeader(2, "Summary"))
	r.Println(output.FormatKeyValue("Files", fmt.Sprintf("%d", len(c.Files))))
	r.Println(output.FormatKeyValue("Distinct Types", fmt.Sprintf("%d", c.Types.Len())))
	r.Println(output.FormatKeyValue("Exports", fmt.Sprintf("%d", len(c.Exports))))

	return nil
}

// listJSON outputs the summary in JSON format.
func listJSON(r *output.Renderer, c *corpus.Corpus) error {
	out := output.ListOutput{
		Files:      fileSummary(c),
		TotalTypes: c.Types.Len(),
	}

	enc := json.NewEncoder(r.Writer())
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
