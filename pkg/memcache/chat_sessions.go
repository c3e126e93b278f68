package mem

import (
	"sync"
	"time"
)

// ChatTurn is one prior exchange kept for concierge context.
type ChatTurn struct {
	Question string
	Answer   string
}

// ChatSessionStore keeps short-lived concierge conversation history per
// account so follow-up questions stay coherent. Single-node and ephemeral
// on purpose; losing it only costs conversational context.
type ChatSessionStore interface {
	Append(accountID string, turn ChatTurn, ttl time.Duration)
	History(accountID string) []ChatTurn
	Clear(accountID string)
}

type chatSession struct {
	turns     []ChatTurn
	expiresAt time.Time
}

type ChatSessions struct {
	mu       sync.RWMutex
	data     map[string]chatSession
	maxTurns int
}

func NewChatSessions() *ChatSessions {
	return &ChatSessions{
		data:     make(map[string]chatSession),
		maxTurns: 6,
	}
}

func (s *ChatSessions) Append(accountID string, turn ChatTurn, ttl time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.data[accountID]
	if !ok || time.Now().After(sess.expiresAt) {
		sess = chatSession{}
	}

	sess.turns = append(sess.turns, turn)
	if len(sess.turns) > s.maxTurns {
		sess.turns = sess.turns[len(sess.turns)-s.maxTurns:]
	}
	sess.expiresAt = time.Now().Add(ttl)
	s.data[accountID] = sess
}

func (s *ChatSessions) History(accountID string) []ChatTurn {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sess, ok := s.data[accountID]
	if !ok || time.Now().After(sess.expiresAt) {
		return nil
	}

	out := make([]ChatTurn, len(sess.turns))
	copy(out, sess.turns)
	return out
}

func (s *ChatSessions) Clear(accountID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, accountID)
}
