package cache

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/itbasis/go-clock"
)

func TestStoreGetSet(t *testing.T) {
	c := clock.NewMock()
	s := New(60*time.Second, c)

	if _, ok := s.Get("missing"); ok {
		t.Error("expected a miss for an unknown key")
	}

	s.Set("k", "v1")
	if v, ok := s.Get("k"); !ok || v != "v1" {
		t.Errorf("expected v1, got: %v (hit=%t)", v, ok)
	}

	// Entries are replaced whole.
	s.Set("k", "v2")
	if v, _ := s.Get("k"); v != "v2" {
		t.Errorf("expected v2, got: %v", v)
	}

	s.Delete("k")
	if _, ok := s.Get("k"); ok {
		t.Error("expected a miss after delete")
	}
}

func TestStoreTTL(t *testing.T) {
	c := clock.NewMock()
	s := New(60*time.Second, c)

	s.Set("k", "v")

	c.Add(59 * time.Second)
	if _, ok := s.Get("k"); !ok {
		t.Error("entry expired before its ttl")
	}

	c.Add(1 * time.Second)
	if _, ok := s.Get("k"); ok {
		t.Error("entry survived past its ttl")
	}
}

func TestStoreZeroTTL(t *testing.T) {
	c := clock.NewMock()
	s := New(0, c)

	s.Set("k", "v")
	c.Add(24 * time.Hour)
	if _, ok := s.Get("k"); !ok {
		t.Error("zero ttl should disable expiry")
	}
}

func TestGetOrLoad(t *testing.T) {
	c := clock.NewMock()
	s := New(60*time.Second, c)
	ctx := context.Background()

	calls := 0
	loader := func(ctx context.Context) (any, error) {
		calls++
		return "loaded", nil
	}

	v, err := s.GetOrLoad(ctx, "k", loader)
	if err != nil {
		t.Fatalf("error loading: %v", err)
	}
	if v != "loaded" {
		t.Errorf("unexpected value: %v", v)
	}

	// Inside the ttl window the loader must not run again.
	if _, err := s.GetOrLoad(ctx, "k", loader); err != nil {
		t.Fatalf("error on cached load: %v", err)
	}
	if calls != 1 {
		t.Errorf("expected 1 loader call, got: %d", calls)
	}

	// After expiry the loader runs again and replaces the entry.
	c.Add(61 * time.Second)
	if _, err := s.GetOrLoad(ctx, "k", loader); err != nil {
		t.Fatalf("error on reload: %v", err)
	}
	if calls != 2 {
		t.Errorf("expected 2 loader calls, got: %d", calls)
	}
}

func TestGetOrLoad_errorNotCached(t *testing.T) {
	c := clock.NewMock()
	s := New(60*time.Second, c)
	ctx := context.Background()

	wantErr := errors.New("upstream down")
	if _, err := s.GetOrLoad(ctx, "k", func(ctx context.Context) (any, error) {
		return nil, wantErr
	}); !errors.Is(err, wantErr) {
		t.Fatalf("expected the loader error, got: %v", err)
	}

	// A failed load leaves nothing behind; the next call loads fresh.
	v, err := s.GetOrLoad(ctx, "k", func(ctx context.Context) (any, error) {
		return "ok", nil
	})
	if err != nil {
		t.Fatalf("error on retry: %v", err)
	}
	if v != "ok" {
		t.Errorf("unexpected value: %v", v)
	}
}

func TestGetOrLoad_singleFlight(t *testing.T) {
	c := clock.NewMock()
	s := New(60*time.Second, c)
	ctx := context.Background()

	var calls atomic.Int32
	gate := make(chan struct{})
	loader := func(ctx context.Context) (any, error) {
		calls.Add(1)
		<-gate
		return "shared", nil
	}

	const workers = 8
	var wg sync.WaitGroup
	results := make([]any, workers)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			v, err := s.GetOrLoad(ctx, "k", loader)
			if err != nil {
				t.Errorf("error loading: %v", err)
				return
			}
			results[i] = v
		}(i)
	}

	// Give the goroutines a moment to pile up on the flight group before
	// releasing the one loader that should be running.
	time.Sleep(50 * time.Millisecond)
	close(gate)
	wg.Wait()

	if got := calls.Load(); got != 1 {
		t.Errorf("expected one shared loader call, got: %d", got)
	}
	for i, v := range results {
		if v != "shared" {
			t.Errorf("worker %d got unexpected value: %v", i, v)
		}
	}
}
