package session

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/ottermq/mbconsole/internal/client"
)

var ErrSessionNotFound = errors.New("session not found or expired")

// Session is one logged in operator. Credentials never leave the server.
type Session struct {
	ID          string
	Credentials client.Credentials
	CreatedAt   time.Time
	ExpiresAt   time.Time
}

type Store struct {
	sessions map[string]Session
	ttl      time.Duration
	mu       sync.RWMutex
	ticker   *time.Ticker
	done     chan struct{}
	once     sync.Once
	now      func() time.Time
}

// NewStore keeps sessions for ttl and sweeps expired ones every sweepEvery.
func NewStore(ttl, sweepEvery time.Duration) *Store {
	if sweepEvery <= 0 {
		sweepEvery = time.Hour
	}
	s := &Store{
		sessions: make(map[string]Session),
		ttl:      ttl,
		ticker:   time.NewTicker(sweepEvery),
		done:     make(chan struct{}),
		now:      time.Now,
	}

	go func() {
		for {
			select {
			case <-s.done:
				return
			case <-s.ticker.C:
				s.Sweep()
			}
		}
	}()

	return s
}

func (s *Store) Create(creds client.Credentials) Session {
	now := s.now()
	sess := Session{
		ID:          uuid.New().String(),
		Credentials: creds,
		CreatedAt:   now,
		ExpiresAt:   now.Add(s.ttl),
	}

	s.mu.Lock()
	s.sessions[sess.ID] = sess
	s.mu.Unlock()

	return sess
}

func (s *Store) Get(id string) (Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sess, ok := s.sessions[id]
	if !ok || !s.now().Before(sess.ExpiresAt) {
		return Session{}, ErrSessionNotFound
	}
	return sess, nil
}

func (s *Store) Delete(id string) {
	s.mu.Lock()
	delete(s.sessions, id)
	s.mu.Unlock()
}

// Sweep drops expired sessions and returns how many it removed.
func (s *Store) Sweep() int {
	now := s.now()
	removed := 0

	s.mu.Lock()
	for id, sess := range s.sessions {
		if !now.Before(sess.ExpiresAt) {
			delete(s.sessions, id)
			removed++
		}
	}
	s.mu.Unlock()

	return removed
}

func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

func (s *Store) Close() error {
	s.once.Do(func() {
		s.ticker.Stop()
		close(s.done)
	})
	return nil
}
