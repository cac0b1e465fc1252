package cache

import (
	"context"
	"testing"
	"time"
)

type clock struct{ t time.Time }

func (c *clock) now() time.Time { return c.t }

func newTestSet(size int, ttl time.Duration) (*RecentSet, *clock) {
	c := &clock{t: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
	s := NewRecentSet(size, ttl)
	s.now = c.now
	return s, c
}

func TestRecentSetAdd(t *testing.T) {
	s, _ := newTestSet(10, time.Minute)
	if !s.Add("a") {
		t.Fatal("first add should succeed")
	}
	if s.Add("a") {
		t.Fatal("second add should report duplicate")
	}
	if !s.Contains("a") || s.Contains("b") {
		t.Fatal("unexpected membership")
	}
}

func TestRecentSetExpiry(t *testing.T) {
	s, c := newTestSet(10, time.Minute)
	s.Add("a")
	c.t = c.t.Add(2 * time.Minute)
	if s.Contains("a") {
		t.Fatal("expired key reported present")
	}
	if !s.Add("a") {
		t.Fatal("expired key should be re-addable")
	}

	s.Add("b")
	c.t = c.t.Add(2 * time.Minute)
	if n := s.Prune(); n != 2 {
		t.Fatalf("Prune removed %d, want 2", n)
	}
	if s.Len() != 0 {
		t.Fatalf("Len = %d after prune", s.Len())
	}
}

func TestRecentSetEvictsOldest(t *testing.T) {
	s, _ := newTestSet(2, time.Hour)
	s.Add("a")
	s.Add("b")
	s.Add("c")
	if s.Contains("a") {
		t.Fatal("oldest key should be evicted")
	}
	if !s.Contains("b") || !s.Contains("c") || s.Len() != 2 {
		t.Fatal("newest keys should remain")
	}
}

func TestRecentSetForget(t *testing.T) {
	s, _ := newTestSet(2, time.Hour)
	s.Add("a")
	s.Forget("a")
	if !s.Add("a") {
		t.Fatal("forgotten key should be re-addable")
	}
}

func TestPruneEveryStopsOnCancel(t *testing.T) {
	s := NewRecentSet(1, time.Millisecond)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		s.PruneEvery(ctx, time.Millisecond)
		close(done)
	}()
	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("PruneEvery did not return after cancel")
	}
}
