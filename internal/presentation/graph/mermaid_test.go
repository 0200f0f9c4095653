package graph_test

import (
	"strings"
	"testing"

	"github.com/aretw0/latextree/internal/presentation/graph"
	"github.com/aretw0/latextree/pkg/domain"
)

func TestGenerateMermaid(t *testing.T) {
	tests := []struct {
		name     string
		root     domain.Child
		contains []string
		excludes []string
	}{
		{
			name:     "Root Shape",
			root:     domain.Of(domain.Leaf("solo")),
			contains: []string{`n0(("solo"))`},
			excludes: []string{"-->", "classDef"},
		},
		{
			name: "Inner And Leaf Shapes",
			root: domain.Of(domain.Branch("r",
				domain.Of(domain.Branch("inner", domain.Of(domain.Leaf("leaf")))),
			)),
			contains: []string{
				`n1["inner"]`,
				`n2(["leaf"])`,
				"n0 --> n1",
				"n1 --> n2",
			},
		},
		{
			name: "Absent Slot",
			root: domain.Of(domain.Branch("A", domain.Of(domain.Leaf("B")), domain.Absent())),
			contains: []string{
				`n2(("∅")):::absent`,
				"n0 --> n2",
				"classDef absent",
			},
		},
		{
			name:     "Absent Root",
			root:     domain.Absent(),
			contains: []string{`n0(("∅")):::absent`},
			excludes: []string{"-->"},
		},
		{
			name:     "Label Escaping",
			root:     domain.Of(domain.Leaf(`say "hi"`)),
			contains: []string{`n0(("say 'hi'"))`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := graph.GenerateMermaid(tt.root)
			if !strings.HasPrefix(got, "graph TD\n") {
				t.Errorf("GenerateMermaid() missing header:\n%v", got)
			}
			for _, want := range tt.contains {
				if !strings.Contains(got, want) {
					t.Errorf("GenerateMermaid() = \n%v\nWant substring: %v", got, want)
				}
			}
			for _, unwanted := range tt.excludes {
				if strings.Contains(got, unwanted) {
					t.Errorf("GenerateMermaid() = \n%v\nUnexpected substring: %v", got, unwanted)
				}
			}
		})
	}
}

func TestGenerateMermaid_PreOrderIDs(t *testing.T) {
	root := domain.Of(domain.Branch("a",
		domain.Of(domain.Branch("b", domain.Of(domain.Leaf("c")))),
		domain.Of(domain.Leaf("d")),
	))
	got := graph.GenerateMermaid(root)

	order := []string{`n0(("a"))`, `n1["b"]`, `n2(["c"])`, `n3(["d"])`}
	last := -1
	for _, decl := range order {
		idx := strings.Index(got, decl)
		if idx <= last {
			t.Fatalf("expected %q after position %d in:\n%s", decl, last, got)
		}
		last = idx
	}
}
