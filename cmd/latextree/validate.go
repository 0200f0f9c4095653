package main

import (
	"fmt"
	"io"

	"github.com/aretw0/latextree/internal/validator"
	"github.com/aretw0/latextree/pkg/latex"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate [files...]",
	Short: "Check tree definitions before rendering",
	Long: `Parses the definitions and reports labels that would break the generated LaTeX
(special characters, control characters, invalid UTF-8) and trees nested too deeply to render.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		maxDepth, _ := cmd.Flags().GetInt("max-depth")
		encoding, _ := cmd.Flags().GetString("input-encoding")
		return runValidate(args, cmd.InOrStdin(), cmd.OutOrStdout(), encoding, maxDepth)
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
	validateCmd.Flags().Int("max-depth", validator.DefaultMaxDepth, "Maximum tree depth")
}

func runValidate(files []string, in io.Reader, out io.Writer, encoding string, maxDepth int) error {
	roots, err := loadTrees(files, in, encoding)
	if err != nil {
		return err
	}

	issues := validator.ValidateTrees(roots, maxDepth)
	if err := validator.Err(issues); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	for i, root := range roots {
		s := latex.Measure(root)
		fmt.Fprintf(out, "tree[%d]: %d nodes, %d placeholders, depth %d\n", i, s.Nodes, s.Placeholders, s.Depth)
	}
	fmt.Fprintln(out, "Trees are valid! ✅")
	return nil
}
