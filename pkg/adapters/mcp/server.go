package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/aretw0/latextree"
	"github.com/aretw0/latextree/internal/logging"
	"github.com/aretw0/latextree/internal/metrics"
	"github.com/aretw0/latextree/internal/presentation/graph"
	"github.com/aretw0/latextree/pkg/domain"
	"github.com/aretw0/latextree/pkg/latex"
	"github.com/aretw0/latextree/pkg/ports"
	"github.com/aretw0/latextree/pkg/schema"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// RenderResponse is the structured result of render_tree.
type RenderResponse struct {
	Markup       string `json:"markup" jsonschema_description:"The rendered diagram"`
	Nodes        int    `json:"nodes" jsonschema_description:"Number of concrete nodes"`
	Placeholders int    `json:"placeholders" jsonschema_description:"Number of absent-child placeholders"`
	Depth        int    `json:"depth" jsonschema_description:"Depth of the tree"`
}

// WriteResponse is the structured result of write_document.
type WriteResponse struct {
	Name  string `json:"name" jsonschema_description:"Stored document name"`
	Trees int    `json:"trees" jsonschema_description:"Number of diagram blocks in the document"`
	Bytes int    `json:"bytes" jsonschema_description:"Size of the document"`
}

// Server exposes tree rendering as an MCP Server.
type Server struct {
	store     ports.DocumentStore
	metrics   *metrics.Collectors
	logger    *slog.Logger
	mcpServer *server.MCPServer
}

// Option configures the Server.
type Option func(*Server)

// WithLogger sets the logger for tool failures. Logs are discarded by default.
func WithLogger(l *slog.Logger) Option {
	return func(s *Server) {
		if l != nil {
			s.logger = l
		}
	}
}

// NewServer creates a new MCP Server instance. m may be nil.
func NewServer(store ports.DocumentStore, m *metrics.Collectors, opts ...Option) *Server {
	s := &Server{
		store:     store,
		metrics:   m,
		logger:    logging.NewNop(),
		mcpServer: server.NewMCPServer("latextree-mcp", latextree.Version),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.registerTools()
	s.registerResources()
	return s
}

// ServeStdio starts the server on Stdin/Stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}

func (s *Server) registerTools() {
	// TOOL: render_tree
	renderTool := mcp.NewTool("render_tree",
		mcp.WithDescription("Render a tree definition (YAML or JSON: {label, children}) as a tikz-qtree diagram block. A null child is drawn as an empty-set placeholder."),
		mcp.WithString("tree", mcp.Required(), mcp.Description("Tree definition, e.g. {label: A, children: [B, null]}")),
		mcp.WithString("format", mcp.Description("Output format: latex (default) or mermaid")),
		mcp.WithOutputSchema[RenderResponse](),
	)
	s.mcpServer.AddTool(renderTool, mcp.NewStructuredToolHandler(s.handleRender))

	// TOOL: write_document
	writeTool := mcp.NewTool("write_document",
		mcp.WithDescription("Render one or more trees (a YAML stream separated by ---) into a complete LaTeX document and store it."),
		mcp.WithString("tree", mcp.Required(), mcp.Description("Tree definitions")),
		mcp.WithString("file_name", mcp.Description("Document name (default latex_tree.tex)")),
		mcp.WithOutputSchema[WriteResponse](),
	)
	s.mcpServer.AddTool(writeTool, mcp.NewStructuredToolHandler(s.handleWrite))
}

func (s *Server) handleRender(ctx context.Context, request mcp.CallToolRequest, args map[string]interface{}) (RenderResponse, error) {
	text, _ := args["tree"].(string)
	format, _ := args["format"].(string)

	root, err := schema.Parse([]byte(text))
	if err != nil {
		return RenderResponse{}, err
	}

	stats := latex.Measure(root)
	if s.metrics != nil {
		s.metrics.ObserveRender("mcp", stats)
	}

	resp := RenderResponse{Nodes: stats.Nodes, Placeholders: stats.Placeholders, Depth: stats.Depth}
	switch format {
	case "", "latex":
		resp.Markup = latex.RenderTree(root)
	case "mermaid":
		resp.Markup = graph.GenerateMermaid(root)
	default:
		return RenderResponse{}, fmt.Errorf("unknown format %q", format)
	}
	return resp, nil
}

func (s *Server) handleWrite(ctx context.Context, request mcp.CallToolRequest, args map[string]interface{}) (WriteResponse, error) {
	text, _ := args["tree"].(string)
	name, _ := args["file_name"].(string)
	if name == "" {
		name = latex.DefaultFileName
	}

	roots, err := schema.ParseAll([]byte(text))
	if err != nil {
		return WriteResponse{}, err
	}
	if len(roots) == 0 {
		roots = []domain.Child{domain.Absent()}
	}

	doc := latex.NewDocument()
	for _, root := range roots {
		if s.metrics != nil {
			s.metrics.ObserveRender("mcp", latex.Measure(root))
		}
		doc.AddTree(root)
	}
	content := doc.String()

	if err := s.store.Save(ctx, name, content); err != nil {
		s.logger.Error("MCP write_document failed", "error", err, "name", name)
		return WriteResponse{}, fmt.Errorf("store failed: %w", err)
	}

	return WriteResponse{Name: name, Trees: doc.Len(), Bytes: len(content)}, nil
}

func (s *Server) registerResources() {
	// EXPOSE: latextree://documents
	s.mcpServer.AddResource(mcp.NewResource("latextree://documents", "Stored Documents",
		mcp.WithMIMEType("application/json"),
	), func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		names, err := s.store.List(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to list documents: %w", err)
		}
		jsonBytes, _ := json.Marshal(names)

		return []mcp.ResourceContents{
			mcp.TextResourceContents{
				URI:      "latextree://documents",
				MIMEType: "application/json",
				Text:     string(jsonBytes),
			},
		}, nil
	})
}
