// Package cache keeps a bounded, expiring set of recently seen keys.
package cache

import (
	"container/list"
	"context"
	"sync"
	"time"
)

// RecentSet remembers at most maxSize keys for ttl each, evicting the
// least recently added key first. Safe for concurrent use.
type RecentSet struct {
	mu      sync.Mutex
	maxSize int
	ttl     time.Duration
	items   map[string]*list.Element
	order   *list.List
	now     func() time.Time
}

type entry struct {
	key       string
	expiresAt time.Time
}

// NewRecentSet returns an empty set. maxSize below 1 is treated as 1.
func NewRecentSet(maxSize int, ttl time.Duration) *RecentSet {
	if maxSize < 1 {
		maxSize = 1
	}
	return &RecentSet{
		maxSize: maxSize,
		ttl:     ttl,
		items:   make(map[string]*list.Element),
		order:   list.New(),
		now:     time.Now,
	}
}

// Add inserts key and reports whether it was absent (or expired).
func (s *RecentSet) Add(key string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	if elem, ok := s.items[key]; ok {
		if now.Before(elem.Value.(*entry).expiresAt) {
			return false
		}
		s.remove(elem)
	}

	s.items[key] = s.order.PushFront(&entry{key: key, expiresAt: now.Add(s.ttl)})
	if s.order.Len() > s.maxSize {
		s.remove(s.order.Back())
	}
	return true
}

// Forget removes key, so a later Add of it succeeds.
func (s *RecentSet) Forget(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if elem, ok := s.items[key]; ok {
		s.remove(elem)
	}
}

// Contains reports whether key is present and not expired.
func (s *RecentSet) Contains(key string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	elem, ok := s.items[key]
	return ok && s.now().Before(elem.Value.(*entry).expiresAt)
}

func (s *RecentSet) remove(elem *list.Element) {
	delete(s.items, elem.Value.(*entry).key)
	s.order.Remove(elem)
}

// Prune drops expired keys and returns how many were removed.
func (s *RecentSet) Prune() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	var expired []*list.Element
	for elem := s.order.Front(); elem != nil; elem = elem.Next() {
		if !now.Before(elem.Value.(*entry).expiresAt) {
			expired = append(expired, elem)
		}
	}
	for _, elem := range expired {
		s.remove(elem)
	}
	return len(expired)
}

// Len returns the number of stored keys, expired ones included.
func (s *RecentSet) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.items)
}

// PruneEvery runs Prune on each tick until ctx is done.
func (s *RecentSet) PruneEvery(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.Prune()
		}
	}
}
