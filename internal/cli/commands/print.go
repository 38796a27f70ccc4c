package commands

import (
	"github.com/kabitools/kabidiff/internal/cli/output"
	"github.com/spf13/cobra"
)

// NewPrintCommand creates the print command.
func NewPrintCommand() *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:   "print <name>",
		Short: "Print a type and everything it references",
		Long: `Print the declaration of a type or export for every loaded file that
contains it, expanding referenced types depth-first before their
referrer. Each referenced type is printed at most once per file.`,
		Example: `  # Print an exported symbol
  kabidiff print vfs_read --dir build/

  # Print an internal struct declaration
  kabidiff print 's#file_operations' --dir build/`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPrint(cmd, dir, args[0])
		},
	}

	cmd.Flags().StringVarP(&dir, "dir", "d", ".", "Build tree to load")

	return cmd
}

func runPrint(cmd *cobra.Command, dir, name string) error {
	cmdCtx := NewCommandContext(cmd)

	c, err := cmdCtx.LoadCorpus(dir)
	if err != nil {
		return err
	}

	r := cmdCtx.Renderer
	styles := r.Styles()
	markdown := r.EffectiveMode() == output.ModeMarkdown

	files := c.FilesWithType(name)
	if len(files) == 0 {
		r.Printf("Type %s not found\n", name)
		return nil
	}

	for _, file := range files {
		lines, err := c.ExpandType(file, name)
		if err != nil {
			return err
		}
		if markdown {
			r.Printf("Found type `%s` in `%s`:\n\n", name, file.Path)
			r.Println(output.FormatCodeBlock("", lines))
			r.Println("")
			continue
		}
		r.Printf("Found type %s in %s:\n", styles.TypeName.Render(name), styles.FilePath.Render(file.Path))
		for _, line := range lines {
			r.Println(line)
		}
	}

	return nil
}
