package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/aretw0/latextree/internal/logging"
	"github.com/aretw0/latextree/pkg/latex"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "latextree",
	Short: "latextree draws trees as LaTeX tikz-qtree diagrams",
	Long: `latextree turns tree definitions (YAML or JSON) into LaTeX documents built with
the tikz-qtree package. Missing children are drawn as empty-set leaves.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		levelName, _ := cmd.Flags().GetString("log-level")
		format, _ := cmd.Flags().GetString("log-format")

		level, err := logging.ParseLevel(levelName)
		if err != nil {
			return err
		}
		slog.SetDefault(logging.New(level, format))
		return nil
	},
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().String("dir", latex.DefaultDir, "Output directory for generated documents")
	rootCmd.PersistentFlags().String("log-level", envOr("LATEXTREE_LOG_LEVEL", "info"), "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().String("log-format", "text", "Log format (text, json)")
	rootCmd.PersistentFlags().String("input-encoding", "utf-8", "Charset of definition files (utf-8, latin1, iso-8859-15, windows-1252)")
}

func envOr(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}
