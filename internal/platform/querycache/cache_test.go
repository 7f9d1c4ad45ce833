package querycache

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/rs/zerolog"
)

func newTestCache(ttl time.Duration) *Cache {
	return New(ttl, zerolog.Nop())
}

func waitFor(t *testing.T, cond func() bool, msg string) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal(msg)
}

func TestConcurrentIdenticalKeysSingleFetch(t *testing.T) {
	c := newTestCache(time.Minute)
	key := ListKey("doctors", 1, 10, "")

	var calls atomic.Int32
	started := make(chan struct{})
	release := make(chan struct{})
	fetch := func(ctx context.Context) (any, error) {
		calls.Add(1)
		close(started)
		<-release
		return "result", nil
	}

	var wg sync.WaitGroup
	results := make([]any, 2)
	wg.Add(1)
	go func() {
		defer wg.Done()
		results[0], _ = c.Get(context.Background(), key, fetch)
	}()
	<-started
	wg.Add(1)
	go func() {
		defer wg.Done()
		results[1], _ = c.Get(context.Background(), key, fetch)
	}()
	time.Sleep(20 * time.Millisecond) // let the second caller attach
	close(release)
	wg.Wait()

	if got := calls.Load(); got != 1 {
		t.Errorf("fetch calls = %d, want exactly one for identical concurrent keys", got)
	}
	if results[0] != "result" || results[1] != "result" {
		t.Errorf("results = %v", results)
	}
}

func TestKeyIsolationBySearch(t *testing.T) {
	c := newTestCache(time.Minute)
	var calls atomic.Int32
	fetch := func(ctx context.Context) (any, error) {
		return int(calls.Add(1)), nil
	}

	a, _ := c.Get(context.Background(), ListKey("doctors", 1, 10, "rao"), fetch)
	b, _ := c.Get(context.Background(), ListKey("doctors", 1, 10, "shah"), fetch)
	if a == b {
		t.Errorf("different search values shared a cached result: %v", a)
	}
}

func TestFreshEntryServedWithoutRefetch(t *testing.T) {
	c := newTestCache(time.Minute)
	key := ListKey("patients", 1, 20, "")
	var calls atomic.Int32
	fetch := func(ctx context.Context) (any, error) {
		calls.Add(1)
		return "v", nil
	}

	for i := 0; i < 3; i++ {
		if _, err := c.Get(context.Background(), key, fetch); err != nil {
			t.Fatalf("Get: %v", err)
		}
	}
	if got := calls.Load(); got != 1 {
		t.Errorf("fetch calls = %d, want 1 within the staleness window", got)
	}
}

func TestZeroTTLAlwaysRefetches(t *testing.T) {
	c := newTestCache(0)
	key := GetKey("doctors", "3")
	var calls atomic.Int32
	fetch := func(ctx context.Context) (any, error) {
		calls.Add(1)
		return "v", nil
	}

	c.Get(context.Background(), key, fetch)
	c.Get(context.Background(), key, fetch)
	if got := calls.Load(); got != 2 {
		t.Errorf("fetch calls = %d, want 2 with zero ttl", got)
	}
}

func TestInvalidateMarksStaleAndRefetchesInBackground(t *testing.T) {
	c := newTestCache(time.Minute)
	key := ListKey("medicines", 1, 10, "")
	var calls atomic.Int32
	fetch := func(ctx context.Context) (any, error) {
		return int(calls.Add(1)), nil
	}

	first, _ := c.Get(context.Background(), key, fetch)
	if first != 1 {
		t.Fatalf("first = %v", first)
	}

	c.Invalidate("medicines")
	waitFor(t, func() bool { return calls.Load() >= 2 }, "background refetch never fired")

	waitFor(t, func() bool {
		v, _ := c.Get(context.Background(), key, fetch)
		return v.(int) >= 2
	}, "read after invalidation did not observe refreshed value")
}

func TestInvalidateOnlyNamedResource(t *testing.T) {
	c := newTestCache(time.Minute)
	var docCalls, patCalls atomic.Int32
	docKey := ListKey("doctors", 1, 10, "")
	patKey := ListKey("patients", 1, 10, "")

	c.Get(context.Background(), docKey, func(ctx context.Context) (any, error) {
		docCalls.Add(1)
		return "d", nil
	})
	c.Get(context.Background(), patKey, func(ctx context.Context) (any, error) {
		patCalls.Add(1)
		return "p", nil
	})

	c.Invalidate("doctors")
	waitFor(t, func() bool { return docCalls.Load() >= 2 }, "doctors refetch never fired")
	if got := patCalls.Load(); got != 1 {
		t.Errorf("patients fetch calls = %d, unrelated resource must stay cached", got)
	}
}

func TestMutateInvalidatesOnSuccessOnly(t *testing.T) {
	c := newTestCache(time.Minute)
	key := ListKey("appointments", 1, 10, "")
	var calls atomic.Int32
	fetch := func(ctx context.Context) (any, error) {
		calls.Add(1)
		return "v", nil
	}
	c.Get(context.Background(), key, fetch)

	boom := errors.New("backend rejected")
	err := c.Mutate(context.Background(), func(ctx context.Context) error { return boom }, "appointments")
	if !errors.Is(err, boom) {
		t.Fatalf("Mutate error = %v", err)
	}
	time.Sleep(30 * time.Millisecond)
	if got := calls.Load(); got != 1 {
		t.Errorf("failed mutation must not invalidate, fetch calls = %d", got)
	}

	if err := c.Mutate(context.Background(), func(ctx context.Context) error { return nil }, "appointments"); err != nil {
		t.Fatalf("Mutate: %v", err)
	}
	waitFor(t, func() bool { return calls.Load() >= 2 }, "successful mutation must invalidate")
}

func TestSupersededFetchDiscarded(t *testing.T) {
	c := newTestCache(time.Minute)
	key := ListKey("payments", 1, 10, "")

	inFetch := make(chan struct{})
	release := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		c.Get(context.Background(), key, func(ctx context.Context) (any, error) {
			close(inFetch)
			<-release
			return "late", nil
		})
	}()
	<-inFetch

	// The key moves on while the fetch is still in flight.
	c.Invalidate("payments")
	close(release)
	wg.Wait()

	// The late result must not have been stored as a fresh entry.
	var calls atomic.Int32
	v, _ := c.Get(context.Background(), key, func(ctx context.Context) (any, error) {
		calls.Add(1)
		return "current", nil
	})
	if v != "current" {
		t.Errorf("value = %v, superseded result leaked into the cache", v)
	}
	if calls.Load() != 1 {
		t.Errorf("fetch calls = %d, want a fresh fetch after supersession", calls.Load())
	}
}

func TestQueryTyped(t *testing.T) {
	c := newTestCache(time.Minute)
	got, err := Query(context.Background(), c, GetKey("doctors", "1"), func(ctx context.Context) ([]string, error) {
		return []string{"a"}, nil
	})
	if err != nil {
		t.Fatalf("Query: %v", err)
	}
	if len(got) != 1 || got[0] != "a" {
		t.Errorf("got = %v", got)
	}

	_, err = Query(context.Background(), c, GetKey("doctors", "2"), func(ctx context.Context) ([]string, error) {
		return nil, errors.New("nope")
	})
	if err == nil {
		t.Error("expected error to propagate")
	}
}
