// Filmscout - Content-Based Film Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/filmscout

package supervisor

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"sync/atomic"
	"testing"
	"time"
)

// mockService counts starts and fails a configured number of times before
// running until canceled.
type mockService struct {
	name      string
	starts    atomic.Int32
	failsLeft atomic.Int32
}

func newMockService(name string) *mockService {
	return &mockService{name: name}
}

func (m *mockService) Serve(ctx context.Context) error {
	m.starts.Add(1)
	if m.failsLeft.Load() > 0 {
		m.failsLeft.Add(-1)
		return errors.New("simulated failure")
	}
	<-ctx.Done()
	return ctx.Err()
}

func (m *mockService) String() string { return m.name }

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
}

// waitFor polls cond until it holds or the timeout passes.
func waitFor(t *testing.T, timeout time.Duration, cond func() bool) bool {
	t.Helper()
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if cond() {
			return true
		}
		time.Sleep(5 * time.Millisecond)
	}
	return cond()
}

func TestNewSupervisorTree(t *testing.T) {
	t.Parallel()

	t.Run("keeps explicit values", func(t *testing.T) {
		t.Parallel()
		tree, err := NewSupervisorTree(quietLogger(), TreeConfig{
			FailureThreshold: 3,
			FailureBackoff:   time.Second,
			ShutdownTimeout:  2 * time.Second,
		})
		if err != nil {
			t.Fatalf("NewSupervisorTree() error = %v", err)
		}
		if tree.Root() == nil {
			t.Fatal("root supervisor is nil")
		}
		if tree.config.FailureThreshold != 3 || tree.config.FailureBackoff != time.Second {
			t.Errorf("config = %+v", tree.config)
		}
		if tree.config.FailureDecay != 30 {
			t.Errorf("FailureDecay = %v, want default 30", tree.config.FailureDecay)
		}
	})

	t.Run("zero config selects defaults", func(t *testing.T) {
		t.Parallel()
		tree, err := NewSupervisorTree(nil, TreeConfig{})
		if err != nil {
			t.Fatalf("NewSupervisorTree() error = %v", err)
		}
		if tree.config != DefaultTreeConfig() {
			t.Errorf("config = %+v, want %+v", tree.config, DefaultTreeConfig())
		}
		if tree.logger == nil {
			t.Error("nil logger was not replaced")
		}
	})
}

func TestSupervisorTree_StartsEveryLayer(t *testing.T) {
	t.Parallel()

	tree, err := NewSupervisorTree(quietLogger(), TreeConfig{ShutdownTimeout: time.Second})
	if err != nil {
		t.Fatal(err)
	}

	catalogSvc := newMockService("catalog")
	maintenanceSvc := newMockService("maintenance")
	apiSvc := newMockService("api")
	tree.AddCatalogService(catalogSvc)
	tree.AddMaintenanceService(maintenanceSvc)
	tree.AddAPIService(apiSvc)

	ctx, cancel := context.WithCancel(context.Background())
	errCh := tree.ServeBackground(ctx)

	for _, svc := range []*mockService{catalogSvc, maintenanceSvc, apiSvc} {
		svc := svc
		if !waitFor(t, 2*time.Second, func() bool { return svc.starts.Load() > 0 }) {
			t.Errorf("%s service was not started", svc.name)
		}
	}

	cancel()
	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, context.Canceled) {
			t.Errorf("unexpected error: %v", err)
		}
	case <-time.After(3 * time.Second):
		t.Fatal("tree did not shut down in time")
	}

	report, err := tree.UnstoppedServiceReport()
	if err != nil {
		t.Fatalf("UnstoppedServiceReport() error = %v", err)
	}
	if len(report) != 0 {
		t.Errorf("unstopped services: %v", report)
	}
}

func TestSupervisorTree_RestartIsolation(t *testing.T) {
	t.Parallel()

	tree, err := NewSupervisorTree(quietLogger(), TreeConfig{
		FailureThreshold: 10,
		FailureBackoff:   10 * time.Millisecond,
		ShutdownTimeout:  time.Second,
	})
	if err != nil {
		t.Fatal(err)
	}

	failing := newMockService("flaky-reload")
	failing.failsLeft.Store(2)
	stable := newMockService("http")
	tree.AddCatalogService(failing)
	tree.AddAPIService(stable)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	errCh := tree.ServeBackground(ctx)

	if !waitFor(t, 2*time.Second, func() bool { return failing.starts.Load() >= 3 }) {
		t.Errorf("failing service started %d times, want at least 3", failing.starts.Load())
	}
	if got := stable.starts.Load(); got != 1 {
		t.Errorf("stable service started %d times, want 1", got)
	}

	cancel()
	<-errCh
}

func TestDefaultTreeConfig(t *testing.T) {
	t.Parallel()

	config := DefaultTreeConfig()
	if config.FailureThreshold != 5.0 || config.FailureDecay != 30.0 ||
		config.FailureBackoff != 15*time.Second || config.ShutdownTimeout != 10*time.Second {
		t.Errorf("DefaultTreeConfig() = %+v", config)
	}
}
