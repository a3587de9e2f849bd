package memory

import (
	"sync"

	"github.com/phonekart/phonekart-agent/internal/domain"
)

// SessionStore keeps per-conversation turn history in a mutex-guarded map.
// History is append-only for the process lifetime; conversations are created
// implicitly on first append.
type SessionStore struct {
	mu    sync.RWMutex
	turns map[domain.ConversationID][]domain.ConversationTurn
}

func NewSessionStore() *SessionStore {
	return &SessionStore{
		turns: make(map[domain.ConversationID][]domain.ConversationTurn),
	}
}

// AppendTurns applies all turns in a single critical section, so a user turn
// and its assistant reply land atomically even under concurrent messages on
// the same conversation.
func (s *SessionStore) AppendTurns(id domain.ConversationID, turns ...domain.ConversationTurn) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.turns[id] = append(s.turns[id], turns...)
	return nil
}

// History returns a copy of the last limit turns for the conversation, or all
// turns when limit <= 0. Unknown conversations yield an empty history.
func (s *SessionStore) History(id domain.ConversationID, limit int) ([]domain.ConversationTurn, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	turns := s.turns[id]
	if limit > 0 && len(turns) > limit {
		turns = turns[len(turns)-limit:]
	}

	out := make([]domain.ConversationTurn, len(turns))
	copy(out, turns)
	return out, nil
}
