package middleware_test

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/aretw0/latextree/pkg/adapters/memory"
	"github.com/aretw0/latextree/pkg/persistence/middleware"
	"github.com/aretw0/latextree/pkg/ports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// overlapStore fails if two Saves for the same name overlap.
type overlapStore struct {
	*memory.Store
	active  atomic.Int32
	overlap atomic.Bool
}

func (s *overlapStore) Save(ctx context.Context, name, content string) error {
	if s.active.Add(1) > 1 {
		s.overlap.Store(true)
	}
	time.Sleep(time.Millisecond)
	s.active.Add(-1)
	return s.Store.Save(ctx, name, content)
}

func TestLockingMiddleware_SerializesSameName(t *testing.T) {
	ctx := context.Background()
	inner := &overlapStore{Store: memory.NewStore()}
	locks := middleware.NewLocks()
	store := middleware.NewLockingMiddleware(locks)(inner)

	var wg sync.WaitGroup
	for i := range 20 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.NoError(t, store.Save(ctx, "shared.tex", fmt.Sprint(i)))
		}()
	}
	wg.Wait()

	assert.False(t, inner.overlap.Load(), "saves on the same document overlapped")
	assert.Zero(t, locks.Len())
}

func TestLocks_NoLeak(t *testing.T) {
	ctx := context.Background()
	locks := middleware.NewLocks()
	store := middleware.NewLockingMiddleware(locks)(memory.NewStore())

	for i := range 1000 {
		name := fmt.Sprintf("doc-%d.tex", i)
		require.NoError(t, store.Save(ctx, name, "x"))
		require.NoError(t, store.Delete(ctx, name))
	}
	assert.Zero(t, locks.Len(), "lock entries should be released")
}

type fakeLocker struct {
	locked   []string
	released []string
	fail     error
}

func (f *fakeLocker) Lock(ctx context.Context, key string, ttl time.Duration) (ports.UnlockFunc, error) {
	if f.fail != nil {
		return nil, f.fail
	}
	f.locked = append(f.locked, key)
	return func(ctx context.Context) error {
		f.released = append(f.released, key)
		return nil
	}, nil
}

func TestLocks_DistributedLocker(t *testing.T) {
	ctx := context.Background()
	fl := &fakeLocker{}
	store := middleware.NewLockingMiddleware(middleware.NewLocks(middleware.WithLocker(fl)))(memory.NewStore())

	require.NoError(t, store.Save(ctx, "a.tex", "x"))
	assert.Equal(t, []string{"a.tex"}, fl.locked)
	assert.Equal(t, []string{"a.tex"}, fl.released)

	fl.fail = errors.New("redis down")
	err := store.Save(ctx, "a.tex", "y")
	assert.ErrorContains(t, err, "failed to acquire distributed lock")
}

func TestLockingMiddleware_Contract(t *testing.T) {
	ports.RunDocumentStoreContract(t, middleware.NewLockingMiddleware(nil)(memory.NewStore()))
}
