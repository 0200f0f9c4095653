package ports

import "context"

// DocumentStore persists rendered LaTeX documents by name.
// Saving an existing name overwrites it.
type DocumentStore interface {
	// Save stores content under name.
	// Returns domain.ErrEmptyName if name is empty.
	Save(ctx context.Context, name string, content string) error

	// Load retrieves the content stored under name.
	// Returns domain.ErrDocumentNotFound if the document does not exist.
	Load(ctx context.Context, name string) (string, error)

	// Delete removes the document. Deleting a missing document is not an error.
	// Returns domain.ErrEmptyName if name is empty.
	Delete(ctx context.Context, name string) error

	// List returns the names of all stored documents.
	List(ctx context.Context) ([]string, error)
}
