package dsl

import (
	"cmp"
	"fmt"

	"github.com/aretw0/latextree/pkg/domain"
)

type searchNode[T cmp.Ordered] struct {
	value       T
	left, right *searchNode[T]
}

func (s *searchNode[T]) Label() string {
	return fmt.Sprint(s.value)
}

// Children returns no slots for a leaf and exactly two slots otherwise.
func (s *searchNode[T]) Children() []domain.Child {
	if s.left == nil && s.right == nil {
		return nil
	}
	return []domain.Child{slot(s.left), slot(s.right)}
}

func slot[T cmp.Ordered](s *searchNode[T]) domain.Child {
	if s == nil {
		return domain.Absent()
	}
	return domain.Of(s)
}

// SearchTree inserts values into an unbalanced binary search tree, in order,
// and returns its root. Duplicates go to the right. No values yields the absent marker.
func SearchTree[T cmp.Ordered](values ...T) domain.Child {
	var root *searchNode[T]
	for _, v := range values {
		root = insert(root, v)
	}
	return slot(root)
}

func insert[T cmp.Ordered](s *searchNode[T], v T) *searchNode[T] {
	if s == nil {
		return &searchNode[T]{value: v}
	}
	if v < s.value {
		s.left = insert(s.left, v)
	} else {
		s.right = insert(s.right, v)
	}
	return s
}
