package dsl

import (
	"testing"

	"github.com/aretw0/latextree/pkg/domain"
	"github.com/aretw0/latextree/pkg/latex"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuilder_SimpleTree(t *testing.T) {
	root := New("A").
		Leaf("B").
		Absent().
		Build()

	assert.Equal(t, "A", root.Label())
	require.Len(t, root.Children(), 2)
	assert.Equal(t, "B", root.Children()[0].Node().Label())
	assert.True(t, root.Children()[1].IsAbsent())

	assert.Equal(t, "[ .A [ .B  ] "+latex.NullSymbol+" ]", latex.RenderNode(domain.Of(root)))
}

func TestBuilder_Nested(t *testing.T) {
	root := New("+").
		Child("*").Leaf("2").Leaf("x").Up().
		Leaf("1").
		Build()

	assert.Equal(t, "[ .+ [ .* [ .2  ] [ .x  ] ] [ .1  ] ]", latex.RenderNode(domain.Of(root)))
}

func TestBuilder_BuildFromDeepBuilder(t *testing.T) {
	deep := New("root").Child("a").Child("b")
	root := deep.Build()

	assert.Equal(t, "root", root.Label())
	assert.Equal(t, 3, latex.Measure(domain.Of(root)).Depth)
}

func TestBuilder_UpOnRoot(t *testing.T) {
	b := New("r")
	assert.Same(t, b, b.Up())
}

func TestBuilder_Attach(t *testing.T) {
	sub := domain.Branch("s", domain.Absent())
	var missing *domain.Basic
	root := New("r").Attach(sub).Attach(nil).Attach(missing).Build()

	require.Len(t, root.Children(), 3)
	assert.Same(t, domain.Node(sub), root.Children()[0].Node())
	assert.True(t, root.Children()[1].IsAbsent())
	assert.True(t, root.Children()[2].IsAbsent(), "typed nil must be absent")
}

func TestSearchTree(t *testing.T) {
	tests := []struct {
		name   string
		values []int
		want   string
	}{
		{
			name: "Empty",
			want: latex.NullSymbol,
		},
		{
			name:   "Single",
			values: []int{5},
			want:   "[ .5  ]",
		},
		{
			name:   "Left Only",
			values: []int{5, 3},
			want:   "[ .5 [ .3  ] " + latex.NullSymbol + " ]",
		},
		{
			name:   "Right Only",
			values: []int{5, 8},
			want:   "[ .5 " + latex.NullSymbol + " [ .8  ] ]",
		},
		{
			name:   "Balanced",
			values: []int{5, 3, 8},
			want:   "[ .5 [ .3  ] [ .8  ] ]",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, latex.RenderNode(SearchTree(tt.values...)))
		})
	}
}

func TestSearchTree_Strings(t *testing.T) {
	root := SearchTree("m", "c", "x", "a")
	stats := latex.Measure(root)

	assert.Equal(t, 4, stats.Nodes)
	assert.Equal(t, 1, stats.Placeholders) // c has a but no right child
	assert.Equal(t, 3, stats.Depth)
}
