package mcp

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/aretw0/latextree/internal/logging"
	"github.com/aretw0/latextree/internal/metrics"
	"github.com/aretw0/latextree/pkg/adapters/memory"
	"github.com/aretw0/latextree/pkg/domain"
	"github.com/aretw0/latextree/pkg/latex"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandleRender(t *testing.T) {
	s := NewServer(memory.NewStore(), metrics.New())

	resp, err := s.handleRender(context.Background(), mcp.CallToolRequest{}, map[string]interface{}{
		"tree": "{label: A, children: [B, null]}",
	})

	require.NoError(t, err)
	assert.Equal(t, latex.TreeHeader+"[ .A [ .B  ] "+latex.NullSymbol+" ]"+latex.TreeFooter, resp.Markup)
	assert.Equal(t, 2, resp.Nodes)
	assert.Equal(t, 1, resp.Placeholders)
	assert.Equal(t, 2, resp.Depth)
}

func TestHandleRender_Mermaid(t *testing.T) {
	s := NewServer(memory.NewStore(), nil)

	resp, err := s.handleRender(context.Background(), mcp.CallToolRequest{}, map[string]interface{}{
		"tree":   "label: A",
		"format": "mermaid",
	})

	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(resp.Markup, "graph TD"))
}

func TestHandleRender_Invalid(t *testing.T) {
	s := NewServer(memory.NewStore(), nil)

	_, err := s.handleRender(context.Background(), mcp.CallToolRequest{}, map[string]interface{}{
		"tree": "children: []",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidDefinition)

	_, err = s.handleRender(context.Background(), mcp.CallToolRequest{}, map[string]interface{}{
		"tree":   "label: a",
		"format": "pdf",
	})
	assert.ErrorContains(t, err, "unknown format")
}

func TestHandleWrite(t *testing.T) {
	store := memory.NewStore()
	s := NewServer(store, nil)
	ctx := context.Background()

	resp, err := s.handleWrite(ctx, mcp.CallToolRequest{}, map[string]interface{}{
		"tree": "label: one\n---\nlabel: two\n",
	})
	require.NoError(t, err)
	assert.Equal(t, latex.DefaultFileName, resp.Name)
	assert.Equal(t, 2, resp.Trees)

	stored, err := store.Load(ctx, latex.DefaultFileName)
	require.NoError(t, err)
	assert.Equal(t, resp.Bytes, len(stored))
	assert.Contains(t, stored, "[ .two  ]")
}

func TestHandleWrite_CustomNameAndEmptyTree(t *testing.T) {
	store := memory.NewStore()
	s := NewServer(store, nil)

	resp, err := s.handleWrite(context.Background(), mcp.CallToolRequest{}, map[string]interface{}{
		"tree":      "",
		"file_name": "empty.tex",
	})
	require.NoError(t, err)
	assert.Equal(t, 1, resp.Trees)

	stored, err := store.Load(context.Background(), "empty.tex")
	require.NoError(t, err)
	assert.Contains(t, stored, latex.NullSymbol)
}

type failingStore struct{ *memory.Store }

func (failingStore) Save(context.Context, string, string) error { return errors.New("disk full") }

func TestHandleWrite_StoreFailureLogged(t *testing.T) {
	var buf bytes.Buffer
	s := NewServer(failingStore{memory.NewStore()}, nil, WithLogger(logging.NewWithWriter(&buf, slog.LevelInfo, "json")))

	_, err := s.handleWrite(context.Background(), mcp.CallToolRequest{}, map[string]interface{}{
		"tree":      "label: a",
		"file_name": "a.tex",
	})
	assert.ErrorContains(t, err, "disk full")
	assert.Contains(t, buf.String(), "MCP write_document failed")
	assert.Contains(t, buf.String(), `"name":"a.tex"`)
}
