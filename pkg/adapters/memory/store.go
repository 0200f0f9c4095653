package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/aretw0/latextree/pkg/domain"
)

// Store implements ports.DocumentStore in memory.
// Safe for concurrent use.
type Store struct {
	data map[string]string
	mu   sync.RWMutex
}

// NewStore creates a new in-memory store.
func NewStore() *Store {
	return &Store{
		data: make(map[string]string),
	}
}

// Save stores the document in memory.
func (s *Store) Save(ctx context.Context, name string, content string) error {
	if name == "" {
		return domain.ErrEmptyName
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[name] = content
	return nil
}

// Load retrieves the document from memory.
func (s *Store) Load(ctx context.Context, name string) (string, error) {
	if name == "" {
		return "", domain.ErrEmptyName
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	content, ok := s.data[name]
	if !ok {
		return "", domain.ErrDocumentNotFound
	}
	return content, nil
}

// Delete removes the document.
func (s *Store) Delete(ctx context.Context, name string) error {
	if name == "" {
		return domain.ErrEmptyName
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, name)
	return nil
}

// List returns all stored names, sorted.
func (s *Store) List(ctx context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	names := make([]string, 0, len(s.data))
	for name := range s.data {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}
