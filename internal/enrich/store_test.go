// Filmscout - Content-Based Film Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/filmscout

package enrich

import (
	"context"
	"net"
	"os"
	"testing"
	"time"

	"github.com/dgraph-io/badger/v4"
)

func openTestDB(t *testing.T) *badger.DB {
	t.Helper()
	db, err := OpenBadger("")
	if err != nil {
		t.Fatalf("OpenBadger() error = %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestBadgerProgress(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	p := NewBadgerProgress(openTestDB(t))

	t.Run("returns nil when nothing saved", func(t *testing.T) {
		got, err := p.Load(ctx, "absent.csv")
		if err != nil || got != nil {
			t.Errorf("Load() = %v, %v", got, err)
		}
	})

	t.Run("saves loads and clears", func(t *testing.T) {
		saved := &Progress{
			Input:     "films.csv",
			Total:     100,
			Done:      2,
			Rows:      []RowResult{{Found: true, Fields: map[string]string{"omdb_title": "Heat"}}, {Found: false}},
			Succeeded: 1,
			Failed:    1,
			StartTime: time.Now().Add(-time.Minute).UTC(),
		}
		if err := p.Save(ctx, saved); err != nil {
			t.Fatalf("Save() error = %v", err)
		}

		loaded, err := p.Load(ctx, "films.csv")
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}
		if loaded.Total != 100 || loaded.Done != 2 || len(loaded.Rows) != 2 {
			t.Errorf("loaded = %+v", loaded)
		}
		if loaded.Rows[0].Fields["omdb_title"] != "Heat" {
			t.Errorf("row fields = %v", loaded.Rows[0].Fields)
		}
		if !loaded.StartTime.Equal(saved.StartTime) {
			t.Errorf("StartTime = %v, want %v", loaded.StartTime, saved.StartTime)
		}

		if err := p.Clear(ctx, "films.csv"); err != nil {
			t.Fatalf("Clear() error = %v", err)
		}
		if got, _ := p.Load(ctx, "films.csv"); got != nil {
			t.Error("Load() after Clear() should return nil")
		}
		if err := p.Clear(ctx, "films.csv"); err != nil {
			t.Errorf("second Clear() error = %v", err)
		}
	})
}

func TestInMemoryProgress_ReturnsCopies(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	p := NewInMemoryProgress()
	orig := &Progress{Input: "a", Rows: []RowResult{{Found: true}}}
	if err := p.Save(ctx, orig); err != nil {
		t.Fatal(err)
	}
	orig.Rows[0].Found = false

	got, err := p.Load(ctx, "a")
	if err != nil {
		t.Fatal(err)
	}
	if !got.Rows[0].Found {
		t.Error("saved progress shares memory with the caller")
	}
}

func TestBadgerCache(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	c := NewBadgerCache(openTestDB(t), time.Hour)

	if _, ok, err := c.Get(ctx, "missing"); ok || err != nil {
		t.Errorf("Get(missing) = %v, %v", ok, err)
	}
	if err := c.Set(ctx, "k", []byte(`{"Response":"True"}`)); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	got, ok, err := c.Get(ctx, "k")
	if err != nil || !ok || string(got) != `{"Response":"True"}` {
		t.Errorf("Get(k) = %q, %v, %v", got, ok, err)
	}
	if err := c.Close(); err != nil {
		t.Errorf("Close() error = %v", err)
	}
}

func TestLookupKey(t *testing.T) {
	t.Parallel()

	tests := []struct {
		method, value, year, want string
	}{
		{MethodIMDbID, "tt0133093", "", "omdb:response:imdb_id:tt0133093"},
		{MethodTitle, " The Matrix ", "1999", "omdb:response:title:the matrix:1999"},
		{MethodTitle, "HEAT", "", "omdb:response:title:heat"},
	}
	for _, tt := range tests {
		if got := LookupKey(tt.method, tt.value, tt.year); got != tt.want {
			t.Errorf("LookupKey(%q, %q, %q) = %q, want %q", tt.method, tt.value, tt.year, got, tt.want)
		}
	}
}

func TestNewResponseCache(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	db := openTestDB(t)

	c, err := NewResponseCache(ctx, CacheOptions{Backend: BackendBadger}, db)
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := c.(*BadgerCache); !ok {
		t.Errorf("badger backend = %T", c)
	}

	c, err = NewResponseCache(ctx, CacheOptions{Backend: BackendNone}, db)
	if err != nil || c != nil {
		t.Errorf("none backend = %v, %v", c, err)
	}

	if _, err := NewResponseCache(ctx, CacheOptions{Backend: BackendBadger}, nil); err == nil {
		t.Error("expected error for badger without a store")
	}
	if _, err := NewResponseCache(ctx, CacheOptions{Backend: "memcached"}, db); err == nil {
		t.Error("expected error for unknown backend")
	}
}

// TestRedisCache runs against a live server named by FILMSCOUT_TEST_REDIS.
func TestRedisCache(t *testing.T) {
	addr := os.Getenv("FILMSCOUT_TEST_REDIS")
	if addr == "" {
		t.Skip("FILMSCOUT_TEST_REDIS not set")
	}

	ctx := context.Background()
	c, err := NewRedisCache(ctx, addr, "", 0, time.Minute)
	if err != nil {
		t.Fatalf("NewRedisCache() error = %v", err)
	}
	defer func() { _ = c.Close() }()

	key := LookupKey(MethodTitle, "redis test film", "")
	if err := c.Set(ctx, key, notFoundPayload); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	got, ok, err := c.Get(ctx, key)
	if err != nil || !ok || string(got) != string(notFoundPayload) {
		t.Errorf("Get() = %q, %v, %v", got, ok, err)
	}
	if _, ok, err := c.Get(ctx, key+":absent"); ok || err != nil {
		t.Errorf("Get(absent) = %v, %v", ok, err)
	}
}

func TestRedisCache_Unreachable(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := NewRedisCache(ctx, closedAddr(t), "", 0, 0); err == nil {
		t.Error("expected connection error")
	}
}

// closedAddr returns a local address nothing listens on.
func closedAddr(t *testing.T) string {
	t.Helper()
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatal(err)
	}
	addr := ln.Addr().String()
	_ = ln.Close()
	return addr
}
