package file

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/aretw0/latextree/pkg/domain"
	"github.com/aretw0/latextree/pkg/latex"
)

// Store implements ports.DocumentStore on top of a latex.Writer.
// Documents are plain files inside the writer's output directory.
type Store struct {
	writer *latex.Writer
}

// New creates a Store writing through w. A nil writer uses latex.NewWriter defaults.
func New(w *latex.Writer) *Store {
	if w == nil {
		w = latex.NewWriter()
	}
	return &Store{writer: w}
}

// Dir returns the directory documents are stored in.
func (s *Store) Dir() string {
	return s.writer.Dir()
}

func (s *Store) path(name string) (string, error) {
	if name == "" {
		return "", domain.ErrEmptyName
	}
	if name != filepath.Base(name) || name == "." || name == ".." {
		return "", fmt.Errorf("%w: %q", domain.ErrInvalidName, name)
	}
	return s.writer.Path(name), nil
}

// Save writes content to the named file, replacing it if it exists.
func (s *Store) Save(ctx context.Context, name string, content string) error {
	if _, err := s.path(name); err != nil {
		return err
	}
	return s.writer.WriteFile(name, content)
}

// Load reads the named file.
func (s *Store) Load(ctx context.Context, name string) (string, error) {
	path, err := s.path(name)
	if err != nil {
		return "", err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", domain.ErrDocumentNotFound
		}
		return "", fmt.Errorf("failed to read document: %w", err)
	}
	return string(data), nil
}

// Delete removes the named file.
func (s *Store) Delete(ctx context.Context, name string) error {
	path, err := s.path(name)
	if err != nil {
		return err
	}

	if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to delete document: %w", err)
	}
	return nil
}

// List returns the names of all regular files in the output directory.
func (s *Store) List(ctx context.Context) ([]string, error) {
	entries, err := os.ReadDir(s.writer.Dir())
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return []string{}, nil
		}
		return nil, fmt.Errorf("failed to list documents: %w", err)
	}

	names := []string{}
	for _, entry := range entries {
		if entry.Type().IsRegular() {
			names = append(names, entry.Name())
		}
	}
	return names, nil
}
