package dashboard

import (
	"context"
	"sync"
	"time"
)

type session struct {
	router   *Router
	lastSeen time.Time
	// inUse counts requests holding the router through Acquire.
	inUse int
}

// Sessions keeps one Router per user so concurrent users never share an active feature.
type Sessions struct {
	mu        sync.Mutex
	sessions  map[uint]*session
	newRouter func() *Router
	now       func() time.Time
}

// NewSessions creates a session table building routers with factory.
func NewSessions(factory func() *Router) *Sessions {
	return &Sessions{
		sessions:  make(map[uint]*session),
		newRouter: factory,
		now:       time.Now,
	}
}

// Router returns the router of userID, creating it on first use. Use Acquire
// when the router is about to be activated.
func (s *Sessions) Router(userID uint) *Router {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.touch(userID).router
}

// Acquire returns the router of userID and keeps Sweep away from it until
// release is called.
func (s *Sessions) Acquire(userID uint) (router *Router, release func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess := s.touch(userID)
	sess.inUse++
	var once sync.Once
	return sess.router, func() {
		once.Do(func() {
			s.mu.Lock()
			defer s.mu.Unlock()
			sess.inUse--
			sess.lastSeen = s.now()
		})
	}
}

func (s *Sessions) touch(userID uint) *session {
	sess, ok := s.sessions[userID]
	if !ok {
		sess = &session{router: s.newRouter()}
		s.sessions[userID] = sess
	}
	sess.lastSeen = s.now()
	return sess
}

// Len returns the number of open sessions.
func (s *Sessions) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

// Close cleans up and forgets the session of userID.
func (s *Sessions) Close(ctx context.Context, userID uint) {
	s.mu.Lock()
	sess, ok := s.sessions[userID]
	delete(s.sessions, userID)
	s.mu.Unlock()

	if ok {
		sess.router.Close(ctx)
	}
}

// Sweep closes sessions idle for longer than idle and returns how many it closed.
// Sessions held through Acquire are never idle.
func (s *Sessions) Sweep(ctx context.Context, idle time.Duration) int {
	cutoff := s.now().Add(-idle)

	s.mu.Lock()
	var stale []*Router
	for id, sess := range s.sessions {
		if sess.inUse == 0 && sess.lastSeen.Before(cutoff) {
			stale = append(stale, sess.router)
			delete(s.sessions, id)
		}
	}
	s.mu.Unlock()

	for _, r := range stale {
		r.Close(ctx)
	}
	return len(stale)
}

// CloseAll closes every session, waiting for in-flight initialisations.
func (s *Sessions) CloseAll(ctx context.Context) {
	s.mu.Lock()
	all := s.sessions
	s.sessions = make(map[uint]*session)
	s.mu.Unlock()

	for _, sess := range all {
		sess.router.Close(ctx)
		sess.router.Wait()
	}
}
