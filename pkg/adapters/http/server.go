package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"mime"
	"net/http"

	"github.com/aretw0/latextree"
	"github.com/aretw0/latextree/internal/logging"
	"github.com/aretw0/latextree/internal/metrics"
	"github.com/aretw0/latextree/internal/presentation/graph"
	"github.com/aretw0/latextree/pkg/domain"
	"github.com/aretw0/latextree/pkg/latex"
	"github.com/aretw0/latextree/pkg/ports"
	"github.com/aretw0/latextree/pkg/schema"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// MaxBodyBytes caps the size of tree definitions accepted by the API.
const MaxBodyBytes = 1 << 20

// Server exposes rendering and document storage over HTTP.
type Server struct {
	Store   ports.DocumentStore
	Metrics *metrics.Collectors
	Logger  *slog.Logger
}

// Option configures the Server.
type Option func(*Server)

// WithMetrics records render statistics and serves them on /metrics.
// Store failures are counted by the store middleware, not here.
func WithMetrics(m *metrics.Collectors) Option {
	return func(s *Server) {
		s.Metrics = m
	}
}

// WithLogger sets the request logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		s.Logger = logger
	}
}

// NewHandler creates a new HTTP handler backed by store.
func NewHandler(store ports.DocumentStore, opts ...Option) http.Handler {
	s := &Server{
		Store:  store,
		Logger: logging.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Get("/health", s.GetHealth)
	r.Post("/render", s.Render)
	r.Route("/documents", func(r chi.Router) {
		r.Get("/", s.ListDocuments)
		r.Put("/{name}", s.PutDocument)
		r.Get("/{name}", s.GetDocument)
		r.Delete("/{name}", s.DeleteDocument)
	})
	if s.Metrics != nil {
		r.Handle("/metrics", promhttp.HandlerFor(s.Metrics.Registry, promhttp.HandlerOpts{}))
	}

	return r
}

// Render handles POST /render. The body is one tree definition; the response is the
// diagram block, or a Mermaid flowchart when ?format=mermaid.
func (s *Server) Render(w http.ResponseWriter, r *http.Request) {
	roots, err := s.decodeTrees(w, r)
	if err != nil {
		s.writeError(w, "Render", err)
		return
	}
	if len(roots) != 1 {
		s.writeError(w, "Render", fmt.Errorf("%w: expected exactly one tree, got %d", domain.ErrInvalidDefinition, len(roots)))
		return
	}
	root := roots[0]
	s.observe(root)

	var out string
	switch format := r.URL.Query().Get("format"); format {
	case "", "latex":
		out = latex.RenderTree(root)
	case "mermaid":
		out = graph.GenerateMermaid(root)
	default:
		http.Error(w, fmt.Sprintf("Unknown format %q", format), http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	io.WriteString(w, out)
}

// DocumentInfo describes a stored document.
type DocumentInfo struct {
	Name  string `json:"name"`
	Trees int    `json:"trees"`
	Bytes int    `json:"bytes"`
}

// PutDocument handles PUT /documents/{name}. Every tree in the body becomes one
// diagram block of the stored document, in order.
func (s *Server) PutDocument(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")

	roots, err := s.decodeTrees(w, r)
	if err != nil {
		s.writeError(w, "PutDocument", err)
		return
	}

	doc := latex.NewDocument()
	for _, root := range roots {
		s.observe(root)
		doc.AddTree(root)
	}
	content := doc.String()

	if err := s.Store.Save(r.Context(), name, content); err != nil {
		s.writeError(w, "PutDocument", err)
		return
	}
	s.Logger.Info("Document stored", "name", name, "trees", doc.Len())

	writeJSON(w, http.StatusCreated, DocumentInfo{Name: name, Trees: doc.Len(), Bytes: len(content)})
}

// GetDocument handles GET /documents/{name}.
func (s *Server) GetDocument(w http.ResponseWriter, r *http.Request) {
	content, err := s.Store.Load(r.Context(), chi.URLParam(r, "name"))
	if err != nil {
		s.writeError(w, "GetDocument", err)
		return
	}

	w.Header().Set("Content-Type", "application/x-tex; charset=utf-8")
	io.WriteString(w, content)
}

// DeleteDocument handles DELETE /documents/{name}.
func (s *Server) DeleteDocument(w http.ResponseWriter, r *http.Request) {
	if err := s.Store.Delete(r.Context(), chi.URLParam(r, "name")); err != nil {
		s.writeError(w, "DeleteDocument", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ListDocuments handles GET /documents.
func (s *Server) ListDocuments(w http.ResponseWriter, r *http.Request) {
	names, err := s.Store.List(r.Context())
	if err != nil {
		s.writeError(w, "ListDocuments", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string][]string{"documents": names})
}

// GetHealth handles the GET /health request.
func (s *Server) GetHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"version": latextree.Version,
	})
}

// decodeTrees reads the body as JSON (a tree or an array of trees) when the
// content type says so, and as a YAML stream otherwise.
func (s *Server) decodeTrees(w http.ResponseWriter, r *http.Request) ([]domain.Child, error) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, MaxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrInvalidDefinition, err)
	}

	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType != "application/json" {
		return schema.ParseAll(body)
	}

	raw, err := schema.UnmarshalJSON(body)
	if err != nil {
		return nil, err
	}
	items, ok := raw.([]any)
	if !ok {
		items = []any{raw}
	}

	roots := make([]domain.Child, 0, len(items))
	for i, item := range items {
		root, err := schema.Decode(item)
		if err != nil {
			return nil, fmt.Errorf("tree %d: %w", i, err)
		}
		roots = append(roots, root)
	}
	return roots, nil
}

func (s *Server) observe(root domain.Child) {
	if s.Metrics != nil {
		s.Metrics.ObserveRender("http", latex.Measure(root))
	}
}

func (s *Server) writeError(w http.ResponseWriter, op string, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, domain.ErrInvalidDefinition),
		errors.Is(err, domain.ErrInvalidName),
		errors.Is(err, domain.ErrEmptyName):
		status = http.StatusBadRequest
	case errors.Is(err, domain.ErrDocumentNotFound):
		status = http.StatusNotFound
	}

	if status == http.StatusInternalServerError {
		s.Logger.Error(op+" failed", "error", err)
	} else {
		s.Logger.Warn(op+" rejected", "error", err)
	}
	http.Error(w, err.Error(), status)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("Response encode failed", "error", err)
	}
}
