// internal/game/session.go
//
// The single process-wide game session. There is exactly one secret
// shared by every connected player; replacing it affects everyone.
// The slot is guarded by an RWMutex so scoring reads and renewal
// writes can interleave safely.

package game

import "sync"

// Session holds the currently active secret word.
// The zero value is an empty session ("not ready").
type Session struct {
	mu   sync.RWMutex
	word string
}

// Reset overwrites the current secret unconditionally.
func (s *Session) Reset(word string) {
	s.mu.Lock()
	s.word = word
	s.mu.Unlock()
}

// Peek returns the current secret and whether one is set.
func (s *Session) Peek() (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.word, s.word != ""
}
