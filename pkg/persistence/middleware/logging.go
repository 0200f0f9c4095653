package middleware

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/aretw0/latextree/pkg/domain"
	"github.com/aretw0/latextree/pkg/ports"
)

// ErrorObserver is notified of every failed store operation. Rejected names
// and missing documents are caller errors and are not reported.
// *metrics.Collectors satisfies it.
type ErrorObserver interface {
	ObserveStoreError(op string)
}

type loggingMiddleware struct {
	next     ports.DocumentStore
	logger   *slog.Logger
	observer ErrorObserver
}

// NewLoggingMiddleware logs each store operation at debug level and failures at warn.
// observer may be nil.
func NewLoggingMiddleware(logger *slog.Logger, observer ErrorObserver) Middleware {
	if logger == nil {
		logger = slog.Default()
	}
	return func(next ports.DocumentStore) ports.DocumentStore {
		return &loggingMiddleware{next: next, logger: logger, observer: observer}
	}
}

func (m *loggingMiddleware) Save(ctx context.Context, name string, content string) error {
	start := time.Now()
	err := m.next.Save(ctx, name, content)
	m.record(ctx, "save", name, start, err, slog.Int("bytes", len(content)))
	return err
}

func (m *loggingMiddleware) Load(ctx context.Context, name string) (string, error) {
	start := time.Now()
	content, err := m.next.Load(ctx, name)
	m.record(ctx, "load", name, start, err)
	return content, err
}

func (m *loggingMiddleware) Delete(ctx context.Context, name string) error {
	start := time.Now()
	err := m.next.Delete(ctx, name)
	m.record(ctx, "delete", name, start, err)
	return err
}

func (m *loggingMiddleware) List(ctx context.Context) ([]string, error) {
	start := time.Now()
	names, err := m.next.List(ctx)
	m.record(ctx, "list", "", start, err, slog.Int("count", len(names)))
	return names, err
}

func (m *loggingMiddleware) record(ctx context.Context, op, name string, start time.Time, err error, extra ...slog.Attr) {
	attrs := append([]slog.Attr{
		slog.String("op", op),
		slog.Duration("elapsed", time.Since(start)),
	}, extra...)
	if name != "" {
		attrs = append(attrs, slog.String("document", name))
	}

	if err == nil || errors.Is(err, domain.ErrDocumentNotFound) {
		m.logger.LogAttrs(ctx, slog.LevelDebug, "Store operation", attrs...)
		return
	}
	if isCallerError(err) {
		m.logger.LogAttrs(ctx, slog.LevelDebug, "Store operation rejected", append(attrs, slog.Any("error", err))...)
		return
	}

	if m.observer != nil {
		m.observer.ObserveStoreError(op)
	}
	m.logger.LogAttrs(ctx, slog.LevelWarn, "Store operation failed", append(attrs, slog.Any("error", err))...)
}

func isCallerError(err error) bool {
	return errors.Is(err, domain.ErrEmptyName) || errors.Is(err, domain.ErrInvalidName)
}
