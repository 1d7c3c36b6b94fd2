package session

import (
	"context"
	"sync"
	"time"
)

const janitorInterval = time.Minute

// MemoryStore keeps sessions in a process-local map. Expired entries are
// evicted by a background janitor loop.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]*Session
	stopCh   chan struct{}
	stopOnce sync.Once
}

// NewMemoryStore creates an in-memory session store and starts its janitor.
func NewMemoryStore() *MemoryStore {
	s := &MemoryStore{
		sessions: make(map[string]*Session),
		stopCh:   make(chan struct{}),
	}

	go s.janitor()

	return s
}

func (s *MemoryStore) Create(_ context.Context, userID string, ttl time.Duration) (*Session, error) {
	sess := newSession(userID, ttl)

	s.mu.Lock()
	s.sessions[sess.Token] = sess
	s.mu.Unlock()

	copied := *sess
	return &copied, nil
}

func (s *MemoryStore) Get(_ context.Context, token string) (*Session, error) {
	s.mu.RLock()
	sess, ok := s.sessions[token]
	s.mu.RUnlock()

	if !ok || sess.Expired() {
		return nil, ErrNotFound
	}

	copied := *sess
	return &copied, nil
}

func (s *MemoryStore) Destroy(_ context.Context, token string) error {
	s.mu.Lock()
	delete(s.sessions, token)
	s.mu.Unlock()

	return nil
}

// Close stops the janitor loop.
func (s *MemoryStore) Close() {
	s.stopOnce.Do(func() {
		close(s.stopCh)
	})
}

func (s *MemoryStore) janitor() {
	ticker := time.NewTicker(janitorInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.evictExpired()
		case <-s.stopCh:
			return
		}
	}
}

func (s *MemoryStore) evictExpired() {
	now := time.Now()

	s.mu.Lock()
	defer s.mu.Unlock()

	for token, sess := range s.sessions {
		if now.After(sess.ExpiresAt) {
			delete(s.sessions, token)
		}
	}
}
