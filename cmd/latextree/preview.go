package main

import (
	"fmt"
	"os"

	"github.com/aretw0/latextree/internal/presentation/graph"
	"github.com/aretw0/latextree/internal/presentation/tui"
	"github.com/aretw0/latextree/pkg/latex"
	"github.com/spf13/cobra"
)

var previewCmd = &cobra.Command{
	Use:   "preview [files...]",
	Short: "Preview the generated document in the terminal",
	Long:  `Renders the trees and shows the LaTeX source (and optionally a Mermaid view) with syntax highlighting.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		withMermaid, _ := cmd.Flags().GetBool("mermaid")
		plain, _ := cmd.Flags().GetBool("plain")
		encoding, _ := cmd.Flags().GetString("input-encoding")

		roots, err := loadTrees(args, cmd.InOrStdin(), encoding)
		if err != nil {
			return err
		}

		sections := []tui.Section{{
			Title:    "LaTeX",
			Language: "latex",
			Source:   latex.NewDocument(roots...).String(),
		}}
		if withMermaid {
			for i, root := range roots {
				sections = append(sections, tui.Section{
					Title:    fmt.Sprintf("Tree %d", i+1),
					Language: "mermaid",
					Source:   graph.GenerateMermaid(root),
				})
			}
		}

		styled := !plain && tui.IsTerminal(os.Stdout)
		if styled {
			tui.PrintBanner(cmd.OutOrStdout())
		}
		return tui.Preview(cmd.OutOrStdout(), styled, sections...)
	},
}

func init() {
	rootCmd.AddCommand(previewCmd)
	previewCmd.Flags().Bool("mermaid", false, "Also show a Mermaid flowchart per tree")
	previewCmd.Flags().Bool("plain", false, "Disable terminal styling")
}
