package main

import (
	"context"
	"encoding/base64"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/aretw0/latextree/pkg/adapters/file"
	"github.com/aretw0/latextree/pkg/adapters/redis"
	"github.com/aretw0/latextree/pkg/latex"
	"github.com/aretw0/latextree/pkg/persistence/middleware"
	"github.com/aretw0/latextree/pkg/ports"
	"github.com/spf13/cobra"
)

// addStoreFlags registers the flags selecting a document store.
func addStoreFlags(cmd *cobra.Command) {
	cmd.Flags().String("redis-addr", envOr("LATEXTREE_REDIS_ADDR", ""), "Redis address; documents are kept in --dir when empty")
	cmd.Flags().String("redis-password", envOr("LATEXTREE_REDIS_PASSWORD", ""), "Redis password")
	cmd.Flags().Int("redis-db", 0, "Redis database")
	cmd.Flags().String("redis-prefix", "latextree:", "Redis key prefix")
	cmd.Flags().Duration("redis-ttl", 0, "Document expiry in Redis (0 keeps documents forever)")
	cmd.Flags().String("encryption-key", envOr("LATEXTREE_ENCRYPTION_KEY", ""), "Base64 AES-256 key encrypting stored documents")
	cmd.Flags().StringSlice("fallback-keys", nil, "Base64 keys tried when the active key cannot decrypt (key rotation)")
}

// openStore returns the configured store wrapped with logging and per-document locking,
// plus encryption when a key is set. Failed operations are reported to observer, which may be nil.
func openStore(ctx context.Context, cmd *cobra.Command, observer middleware.ErrorObserver) (ports.DocumentStore, func() error, error) {
	base, locker, closeStore, err := openBaseStore(ctx, cmd)
	if err != nil {
		return nil, nil, err
	}

	lockOpts := []middleware.LockOption{middleware.WithLockLogger(slog.Default())}
	if locker != nil {
		lockOpts = append(lockOpts, middleware.WithLocker(locker))
	}
	mws := []middleware.Middleware{
		middleware.NewLoggingMiddleware(slog.Default(), observer),
		middleware.NewLockingMiddleware(middleware.NewLocks(lockOpts...)),
	}
	enc, err := encryptionFromFlags(cmd)
	if err != nil {
		_ = closeStore()
		return nil, nil, err
	}
	if enc != nil {
		mws = append(mws, enc)
		slog.Info("Document encryption enabled")
	}
	return middleware.Chain(base, mws...), closeStore, nil
}

func encryptionFromFlags(cmd *cobra.Command) (middleware.Middleware, error) {
	active, _ := cmd.Flags().GetString("encryption-key")
	if active == "" {
		return nil, nil
	}
	fallbacks, _ := cmd.Flags().GetStringSlice("fallback-keys")

	cfg := middleware.EncryptionConfig{}
	key, err := decodeKey(active)
	if err != nil {
		return nil, fmt.Errorf("invalid --encryption-key: %w", err)
	}
	cfg.ActiveKey = key
	for i, f := range fallbacks {
		key, err := decodeKey(f)
		if err != nil {
			return nil, fmt.Errorf("invalid fallback key %d: %w", i, err)
		}
		cfg.FallbackKeys = append(cfg.FallbackKeys, key)
	}
	return middleware.NewEncryptionMiddleware(cfg)
}

func decodeKey(s string) ([]byte, error) {
	return base64.StdEncoding.DecodeString(strings.TrimSpace(s))
}

// openBaseStore returns the backend selected by flags, its distributed locker if any,
// and a function releasing it.
func openBaseStore(ctx context.Context, cmd *cobra.Command) (ports.DocumentStore, ports.DistributedLocker, func() error, error) {
	addr, _ := cmd.Flags().GetString("redis-addr")
	if addr == "" {
		dir, _ := cmd.Flags().GetString("dir")
		store := file.New(latex.NewWriter(latex.WithDir(dir), latex.WithLogger(slog.Default())))
		slog.Info("Using file store", "dir", store.Dir())
		return store, nil, func() error { return nil }, nil
	}

	password, _ := cmd.Flags().GetString("redis-password")
	db, _ := cmd.Flags().GetInt("redis-db")
	prefix, _ := cmd.Flags().GetString("redis-prefix")
	ttl, _ := cmd.Flags().GetDuration("redis-ttl")

	store := redis.New(addr, password, db, redis.WithPrefix(prefix), redis.WithTTL(ttl))

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := store.Ping(pingCtx); err != nil {
		_ = store.Close()
		return nil, nil, nil, fmt.Errorf("failed to connect to redis at %s: %w", addr, err)
	}
	slog.Info("Using redis store", "addr", addr, "prefix", prefix, "ttl", ttl)
	return store, store.Locker(), store.Close, nil
}
