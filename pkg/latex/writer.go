package latex

import (
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/aretw0/latextree/pkg/domain"
)

// Writer persists documents under an output directory.
//
// Writes to the same path are not synchronized; the last writer wins.
type Writer struct {
	dir    string
	mode   fs.FileMode
	logger *slog.Logger
}

// Option configures a Writer.
type Option func(*Writer)

// WithDir sets the output directory. Defaults to DefaultDir.
func WithDir(dir string) Option {
	return func(w *Writer) {
		w.dir = dir
	}
}

// WithFileMode sets the permission bits for newly created files.
func WithFileMode(mode fs.FileMode) Option {
	return func(w *Writer) {
		w.mode = mode
	}
}

// WithLogger attaches a logger for debug output. Defaults to a no-op logger.
func WithLogger(logger *slog.Logger) Option {
	return func(w *Writer) {
		w.logger = logger
	}
}

// NewWriter creates a Writer with the given options.
func NewWriter(opts ...Option) *Writer {
	w := &Writer{
		dir:    DefaultDir,
		mode:   0o644,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(w)
	}
	if w.dir == "" {
		w.dir = DefaultDir
	}
	return w
}

// Dir returns the output directory.
func (w *Writer) Dir() string {
	return w.dir
}

// Path returns the location a document named name is written to.
// An empty name resolves to DefaultFileName. No extension is appended.
func (w *Writer) Path(name string) string {
	if name == "" {
		name = DefaultFileName
	}
	return filepath.Join(w.dir, name)
}

// WriteTree renders root as a single-diagram document and writes it.
func (w *Writer) WriteTree(root domain.Child, name string) error {
	return w.WriteBlock(RenderTree(root), name)
}

// WriteBlock wraps a pre-rendered diagram block with the file boilerplate and writes it.
func (w *Writer) WriteBlock(block, name string) error {
	return w.WriteFile(name, FileHeader+block+FileFooter)
}

// WriteDocument writes doc.
func (w *Writer) WriteDocument(doc *Document, name string) error {
	return w.WriteFile(name, doc.String())
}

// WriteFile writes content verbatim, creating the output directory when missing
// and truncating any existing file. The file is closed on every path.
func (w *Writer) WriteFile(name, content string) (err error) {
	if err := os.MkdirAll(w.dir, 0o755); err != nil {
		return fmt.Errorf("failed to ensure output directory: %w", err)
	}

	path := w.Path(name)
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, w.mode)
	if err != nil {
		return fmt.Errorf("failed to open output file: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close output file: %w", cerr)
		}
	}()

	n, err := io.WriteString(f, content)
	if err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}

	w.logger.Debug("Document written", "path", path, "bytes", n)
	return nil
}
