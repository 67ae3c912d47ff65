package redis

import (
	"context"
	"sync"
	"time"

	"guidance-service/internal/assessment"
	"github.com/redis/go-redis/v9"
)

// SessionStore is a Redis-aware implementation of app.SessionRepository.
// Notes:
//   - Sessions stay in a local in-memory map; the state machine and its
//     mutex live in-process.
//   - Redis marks session liveness so operators can see active assessments
//     (and it could be extended to route sessions across instances).
type SessionStore struct {
	client   *redis.Client
	ttl      time.Duration
	mu       sync.RWMutex
	sessions map[string]*assessment.Session
}

func NewSessionStore(client *redis.Client, ttl time.Duration) *SessionStore {
	return &SessionStore{
		client:   client,
		ttl:      ttl,
		sessions: make(map[string]*assessment.Session),
	}
}

func (s *SessionStore) Put(session *assessment.Session) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[session.ID()] = session
	// best-effort liveness marker
	_ = s.client.Set(context.Background(), s.key(session.ID()), session.UserID(), s.ttl).Err()
}

func (s *SessionStore) Get(sessionID string) (*assessment.Session, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	session, ok := s.sessions[sessionID]
	return session, ok
}

func (s *SessionStore) Delete(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, sessionID)
	_ = s.client.Del(context.Background(), s.key(sessionID)).Err()
}

func (s *SessionStore) key(sessionID string) string {
	return "assessment:session:" + sessionID
}
