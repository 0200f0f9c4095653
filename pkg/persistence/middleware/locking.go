package middleware

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/aretw0/latextree/internal/logging"
	"github.com/aretw0/latextree/pkg/ports"
)

// DefaultLockTTL bounds how long a crashed holder can block a document.
const DefaultLockTTL = 30 * time.Second

// lockEntry holds the mutex and the reference count.
type lockEntry struct {
	mu   sync.Mutex
	refs int
}

// Locks serializes access to documents by name.
// Entries are reference counted and removed once nobody holds or waits on them.
type Locks struct {
	mu    sync.Mutex
	locks map[string]*lockEntry

	locker ports.DistributedLocker
	ttl    time.Duration
	logger *slog.Logger
}

// LockOption configures Locks.
type LockOption func(*Locks)

// WithLocker adds a distributed lock on top of the in-process one.
func WithLocker(locker ports.DistributedLocker) LockOption {
	return func(l *Locks) {
		l.locker = locker
	}
}

// WithLockTTL sets the distributed lock expiry.
func WithLockTTL(ttl time.Duration) LockOption {
	return func(l *Locks) {
		l.ttl = ttl
	}
}

// WithLockLogger configures a logger for release failures.
func WithLockLogger(logger *slog.Logger) LockOption {
	return func(l *Locks) {
		l.logger = logger
	}
}

// NewLocks creates an empty lock table.
func NewLocks(opts ...LockOption) *Locks {
	l := &Locks{
		locks:  make(map[string]*lockEntry),
		ttl:    DefaultLockTTL,
		logger: logging.NewNop(),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// acquire gets or creates a lock entry and increments its reference count.
// The caller MUST lock entry.mu, and call release(name) after unlocking.
func (l *Locks) acquire(name string) *lockEntry {
	l.mu.Lock()
	defer l.mu.Unlock()

	entry, ok := l.locks[name]
	if !ok {
		entry = &lockEntry{}
		l.locks[name] = entry
	}
	entry.refs++
	return entry
}

// release decrements the reference count and deletes the entry when it reaches zero.
func (l *Locks) release(name string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	entry, ok := l.locks[name]
	if !ok {
		return
	}
	entry.refs--
	if entry.refs <= 0 {
		delete(l.locks, name)
	}
}

// Len reports how many names currently have a lock entry.
func (l *Locks) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.locks)
}

// WithLock runs fn while holding the lock for name.
func (l *Locks) WithLock(ctx context.Context, name string, fn func(context.Context) error) error {
	entry := l.acquire(name)
	entry.mu.Lock()
	defer func() {
		entry.mu.Unlock()
		l.release(name)
	}()

	if l.locker != nil {
		unlock, err := l.locker.Lock(ctx, name, l.ttl)
		if err != nil {
			return fmt.Errorf("failed to acquire distributed lock: %w", err)
		}
		defer func() {
			// Use a fresh context so a cancelled request still releases its lock.
			releaseCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 5*time.Second)
			defer cancel()
			if err := unlock(releaseCtx); err != nil {
				l.logger.Warn("Failed to release distributed lock (will expire via TTL)",
					"document", name,
					"err", err,
				)
			}
		}()
	}

	return fn(ctx)
}

type lockingMiddleware struct {
	next  ports.DocumentStore
	locks *Locks
}

// NewLockingMiddleware serializes Save, Load and Delete on the same document name.
func NewLockingMiddleware(locks *Locks) Middleware {
	if locks == nil {
		locks = NewLocks()
	}
	return func(next ports.DocumentStore) ports.DocumentStore {
		return &lockingMiddleware{next: next, locks: locks}
	}
}

func (m *lockingMiddleware) Save(ctx context.Context, name string, content string) error {
	return m.locks.WithLock(ctx, name, func(ctx context.Context) error {
		return m.next.Save(ctx, name, content)
	})
}

func (m *lockingMiddleware) Load(ctx context.Context, name string) (string, error) {
	var content string
	err := m.locks.WithLock(ctx, name, func(ctx context.Context) error {
		var err error
		content, err = m.next.Load(ctx, name)
		return err
	})
	return content, err
}

func (m *lockingMiddleware) Delete(ctx context.Context, name string) error {
	return m.locks.WithLock(ctx, name, func(ctx context.Context) error {
		return m.next.Delete(ctx, name)
	})
}

func (m *lockingMiddleware) List(ctx context.Context) ([]string, error) {
	return m.next.List(ctx)
}
