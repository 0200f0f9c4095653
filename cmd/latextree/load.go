package main

import (
	"fmt"
	"io"

	"github.com/aretw0/latextree/pkg/domain"
	"github.com/aretw0/latextree/pkg/schema"
)

// loadTrees reads every tree from files, in order, or from in when no file is given.
// A file may hold several trees as a YAML stream. encoding names the input charset.
func loadTrees(files []string, in io.Reader, encoding string) ([]domain.Child, error) {
	if len(files) == 0 {
		roots, err := schema.ReadAll(in, encoding)
		if err != nil {
			return nil, fmt.Errorf("stdin: %w", err)
		}
		return roots, nil
	}

	var roots []domain.Child
	for _, f := range files {
		trees, err := schema.LoadFileEncoded(f, encoding)
		if err != nil {
			return nil, err
		}
		roots = append(roots, trees...)
	}
	return roots, nil
}
