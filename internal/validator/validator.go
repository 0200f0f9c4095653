package validator

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/aretw0/latextree/pkg/domain"
	"golang.org/x/text/unicode/norm"
)

// DefaultMaxDepth bounds the walk. Rendering recurses once per level, so deeper
// trees (or accidental cycles) are reported instead of being followed.
const DefaultMaxDepth = 1000

// markupChars have meaning inside a qtree label and usually need latex.Escape.
const markupChars = `[]{}\$%&#_^~`

// Issue is a single finding in a tree.
type Issue struct {
	Path   string // e.g. "tree[0].children[1]"
	Label  string
	Reason string
}

func (i Issue) String() string {
	return fmt.Sprintf("%s (%q): %s", i.Path, i.Label, i.Reason)
}

// ValidateTrees walks every tree breadth-first and reports labels that would
// corrupt the generated markup, plus subtrees nested deeper than maxDepth.
// A maxDepth of 0 uses DefaultMaxDepth.
func ValidateTrees(roots []domain.Child, maxDepth int) []Issue {
	if maxDepth <= 0 {
		maxDepth = DefaultMaxDepth
	}

	type item struct {
		slot  domain.Child
		path  string
		depth int
	}

	var issues []Issue
	var queue []item
	for i, r := range roots {
		queue = append(queue, item{slot: r, path: fmt.Sprintf("tree[%d]", i), depth: 1})
	}

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		if current.slot.IsAbsent() {
			continue // Placeholder
		}

		n := current.slot.Node()
		label := n.Label()
		issues = append(issues, checkLabel(current.path, label)...)

		if current.depth >= maxDepth {
			if len(n.Children()) > 0 {
				issues = append(issues, Issue{
					Path:   current.path,
					Label:  label,
					Reason: fmt.Sprintf("exceeds max depth %d (deep or cyclic tree)", maxDepth),
				})
			}
			continue
		}

		for i, c := range n.Children() {
			queue = append(queue, item{
				slot:  c,
				path:  fmt.Sprintf("%s.children[%d]", current.path, i),
				depth: current.depth + 1,
			})
		}
	}

	return issues
}

func checkLabel(path, label string) []Issue {
	var issues []Issue
	add := func(reason string) {
		issues = append(issues, Issue{Path: path, Label: label, Reason: reason})
	}

	if !utf8.ValidString(label) {
		add("invalid UTF-8")
	} else if !norm.NFC.IsNormalString(label) {
		add("not in Unicode NFC form; accents may typeset as separate marks")
	}
	if strings.IndexFunc(label, unicode.IsControl) >= 0 {
		add("contains control characters")
	}
	if strings.ContainsAny(label, markupChars) && !strings.HasPrefix(label, "$") {
		add("contains LaTeX special characters; escape the label or wrap it in math mode")
	}
	return issues
}

// Err folds issues into a single error, or nil when there are none.
func Err(issues []Issue) error {
	if len(issues) == 0 {
		return nil
	}
	lines := make([]string, len(issues))
	for i, is := range issues {
		lines[i] = is.String()
	}
	return fmt.Errorf("found %d issues:\n- %s", len(issues), strings.Join(lines, "\n- "))
}
