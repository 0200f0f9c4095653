package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/aretw0/latextree/internal/presentation/graph"
	"github.com/aretw0/latextree/pkg/latex"
	"github.com/spf13/cobra"
)

type renderOptions struct {
	Files    []string
	Dir      string
	Name     string
	Format   string
	Encoding string
	Stdout   bool
	In       io.Reader
	Out      io.Writer
}

var renderCmd = &cobra.Command{
	Use:   "render [files...]",
	Short: "Render tree definitions into a LaTeX document",
	Long: `Reads tree definitions from the given files (or stdin) and writes one LaTeX document
with one diagram per tree. By default the document is written to latex/latex_tree.tex.`,
	Example: `  latextree render tree.yaml
  latextree render a.yaml b.json --out trees.tex
  echo '{label: A, children: [B, null]}' | latextree render --stdout`,
	RunE: func(cmd *cobra.Command, args []string) error {
		dir, _ := cmd.Flags().GetString("dir")
		name, _ := cmd.Flags().GetString("out")
		format, _ := cmd.Flags().GetString("format")
		stdout, _ := cmd.Flags().GetBool("stdout")
		encoding, _ := cmd.Flags().GetString("input-encoding")

		return runRender(renderOptions{
			Files:    args,
			Dir:      dir,
			Name:     name,
			Format:   format,
			Encoding: encoding,
			Stdout:   stdout,
			In:       cmd.InOrStdin(),
			Out:      cmd.OutOrStdout(),
		})
	},
}

func init() {
	rootCmd.AddCommand(renderCmd)
	renderCmd.Flags().StringP("out", "o", latex.DefaultFileName, "Output file name inside --dir (no extension is added)")
	renderCmd.Flags().StringP("format", "f", "latex", "Output format (latex, mermaid); mermaid implies --stdout")
	renderCmd.Flags().Bool("stdout", false, "Print the document instead of writing a file")
}

func runRender(opts renderOptions) error {
	if opts.In == nil {
		opts.In = os.Stdin
	}

	roots, err := loadTrees(opts.Files, opts.In, opts.Encoding)
	if err != nil {
		return err
	}
	if len(roots) == 0 {
		return fmt.Errorf("no trees found in input")
	}

	switch opts.Format {
	case "", "latex":
	case "mermaid":
		var sb strings.Builder
		for _, root := range roots {
			sb.WriteString(graph.GenerateMermaid(root))
		}
		_, err := io.WriteString(opts.Out, sb.String())
		return err
	default:
		return fmt.Errorf("unknown format %q", opts.Format)
	}

	doc := latex.NewDocument(roots...)
	if opts.Stdout {
		_, err := io.WriteString(opts.Out, doc.String())
		return err
	}

	w := latex.NewWriter(latex.WithDir(opts.Dir), latex.WithLogger(slog.Default()))
	if err := w.WriteDocument(doc, opts.Name); err != nil {
		return err
	}
	fmt.Fprintf(opts.Out, "Wrote %s (%d trees)\n", w.Path(opts.Name), doc.Len())
	return nil
}
