package main

import (
	"log"
	"log/slog"
	"os"

	"github.com/aretw0/latextree/pkg/adapters/mcp"
	"github.com/spf13/cobra"
)

// mcpCmd represents the mcp command
var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Run the Model Context Protocol (MCP) server",
	Long: `Starts latextree as an MCP Server over Standard Input/Output.
This allows AI agents to render trees and store documents as tools.

Tools:
- render_tree: render a definition as a diagram block (or Mermaid flowchart)
- write_document: render one or more trees into a stored LaTeX document`,
	RunE: func(cmd *cobra.Command, args []string) error {
		// Ensure logs don't corrupt JSON-RPC on Stdout
		log.SetOutput(os.Stderr)

		store, closeStore, err := openStore(cmd.Context(), cmd, nil)
		if err != nil {
			return err
		}
		defer closeStore()

		srv := mcp.NewServer(store, nil, mcp.WithLogger(slog.Default()))
		slog.Info("Starting latextree MCP Server (Stdio)...")
		if err := srv.ServeStdio(); err != nil {
			slog.Error("MCP Server execution failed", "error", err)
			return err
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
	addStoreFlags(mcpCmd)
}
