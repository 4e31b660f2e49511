// Filmscout - Content-Based Film Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/filmscout

package enrich

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/redis/go-redis/v9"
)

// cacheKeyPrefix namespaces OMDb payloads in shared stores.
const cacheKeyPrefix = "omdb:response:"

// Cache backend names accepted by NewResponseCache.
const (
	BackendBadger = "badger"
	BackendRedis  = "redis"
	BackendNone   = "none"
)

// ResponseCache stores raw OMDb payloads by lookup key. Get reports a miss
// with ok == false and a nil error.
type ResponseCache interface {
	Get(ctx context.Context, key string) (payload []byte, ok bool, err error)
	Set(ctx context.Context, key string, payload []byte) error
	Close() error
}

// LookupKey builds the cache key of a lookup. Titles are case-folded.
func LookupKey(method, value, year string) string {
	key := cacheKeyPrefix + method + ":" + strings.ToLower(strings.TrimSpace(value))
	if year != "" {
		key += ":" + year
	}
	return key
}

// OpenBadger opens the enrichment store at path. An empty path opens an
// in-memory store.
func OpenBadger(path string) (*badger.DB, error) {
	opts := badger.DefaultOptions(path).WithLogger(nil)
	if path == "" {
		opts = opts.WithInMemory(true)
	}
	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open enrichment store: %w", err)
	}
	return db, nil
}

// BadgerCache keeps payloads in an embedded Badger database.
type BadgerCache struct {
	db  *badger.DB
	ttl time.Duration
}

// NewBadgerCache caches in db. A zero ttl keeps entries forever. The
// caller owns db; Close is a no-op.
func NewBadgerCache(db *badger.DB, ttl time.Duration) *BadgerCache {
	return &BadgerCache{db: db, ttl: ttl}
}

// Get returns the payload stored under key.
func (c *BadgerCache) Get(_ context.Context, key string) ([]byte, bool, error) {
	var payload []byte
	err := c.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(key))
		if err != nil {
			return err
		}
		payload, err = item.ValueCopy(nil)
		return err
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("badger cache get: %w", err)
	}
	return payload, true, nil
}

// Set stores payload under key.
func (c *BadgerCache) Set(_ context.Context, key string, payload []byte) error {
	return c.db.Update(func(txn *badger.Txn) error {
		e := badger.NewEntry([]byte(key), payload)
		if c.ttl > 0 {
			e = e.WithTTL(c.ttl)
		}
		return txn.SetEntry(e)
	})
}

// Close does nothing; the database belongs to the caller.
func (c *BadgerCache) Close() error { return nil }

// RedisCache keeps payloads in Redis, shared between machines.
type RedisCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisCache connects to addr and verifies the connection.
func NewRedisCache(ctx context.Context, addr, password string, db int, ttl time.Duration) (*RedisCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("connect redis %s: %w", addr, err)
	}
	return &RedisCache{client: client, ttl: ttl}, nil
}

// Get returns the payload stored under key.
func (c *RedisCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	val, err := c.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("redis cache get: %w", err)
	}
	return val, true, nil
}

// Set stores payload under key.
func (c *RedisCache) Set(ctx context.Context, key string, payload []byte) error {
	return c.client.Set(ctx, key, payload, c.ttl).Err()
}

// Close closes the Redis connection pool.
func (c *RedisCache) Close() error {
	return c.client.Close()
}

// CacheOptions selects and configures a response cache backend.
type CacheOptions struct {
	Backend       string
	TTL           time.Duration
	RedisAddr     string
	RedisPassword string
	RedisDB       int
}

// NewResponseCache builds the configured backend. db is used by the badger
// backend. The none backend returns a nil cache.
//
//nolint:gocritic // hugeParam: options are read once
func NewResponseCache(ctx context.Context, opts CacheOptions, db *badger.DB) (ResponseCache, error) {
	switch opts.Backend {
	case "", BackendBadger:
		if db == nil {
			return nil, fmt.Errorf("badger cache requires an open store")
		}
		return NewBadgerCache(db, opts.TTL), nil
	case BackendRedis:
		return NewRedisCache(ctx, opts.RedisAddr, opts.RedisPassword, opts.RedisDB, opts.TTL)
	case BackendNone:
		return nil, nil
	default:
		return nil, fmt.Errorf("unknown cache backend %q", opts.Backend)
	}
}
