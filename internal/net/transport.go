package net

import (
	"sync"
)

// SessionManager tracks the open browser sessions of a Server.
type SessionManager struct {
	sessions map[*session]struct{}
	mu       sync.RWMutex
}

func NewSessionManager() *SessionManager {
	return &SessionManager{
		sessions: make(map[*session]struct{}),
	}
}

func (sm *SessionManager) Add(s *session) {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.sessions[s] = struct{}{}
}

func (sm *SessionManager) Remove(s *session) {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	delete(sm.sessions, s)
}

// Count returns the number of open sessions.
func (sm *SessionManager) Count() int {
	sm.mu.RLock()
	defer sm.mu.RUnlock()
	return len(sm.sessions)
}

// Each calls fn for every open session.
func (sm *SessionManager) Each(fn func(*session)) {
	sm.mu.RLock()
	defer sm.mu.RUnlock()
	for s := range sm.sessions {
		fn(s)
	}
}
