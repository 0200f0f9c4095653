package tui

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/glamour"
	"golang.org/x/term"
)

// NewRenderer returns a function that renders markdown using glamour.
// It detects a light or dark background automatically.
func NewRenderer() (func(string) (string, error), error) {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(0),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create markdown renderer: %w", err)
	}

	return func(markdown string) (string, error) {
		return r.Render(markdown)
	}, nil
}

// IsTerminal reports whether f is attached to a terminal.
func IsTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// Section is one titled code listing in a preview.
type Section struct {
	Title    string
	Language string // fenced code language, e.g. "latex" or "mermaid"
	Source   string
}

// Markdown assembles sections into a markdown document with fenced code blocks.
func Markdown(sections ...Section) string {
	var sb strings.Builder
	for i, s := range sections {
		if i > 0 {
			sb.WriteString("\n")
		}
		if s.Title != "" {
			fmt.Fprintf(&sb, "## %s\n\n", s.Title)
		}
		fmt.Fprintf(&sb, "```%s\n%s", s.Language, s.Source)
		if !strings.HasSuffix(s.Source, "\n") {
			sb.WriteString("\n")
		}
		sb.WriteString("```\n")
	}
	return sb.String()
}

// Preview writes sections to w. When styled is set the markdown is rendered
// with glamour; otherwise the raw sources are written one after another.
func Preview(w io.Writer, styled bool, sections ...Section) error {
	if !styled {
		for _, s := range sections {
			if _, err := io.WriteString(w, s.Source); err != nil {
				return err
			}
		}
		return nil
	}

	render, err := NewRenderer()
	if err != nil {
		return err
	}
	out, err := render(Markdown(sections...))
	if err != nil {
		return fmt.Errorf("failed to render preview: %w", err)
	}
	_, err = io.WriteString(w, out)
	return err
}
