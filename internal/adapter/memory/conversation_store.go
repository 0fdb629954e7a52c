package memory

import (
	"sync"

	"github.com/arhansuba/tg-trading-bot/internal/core/domain"
)

// ConversationStore is a process-wide, mutex-guarded map of per-user
// conversation state. Entries are never evicted — acceptable for a
// single-process deployment with a modest user count, and a documented
// scaling limit rather than a bug. State does not survive a restart.
type ConversationStore struct {
	mu     sync.RWMutex
	states map[string]domain.ConversationState
}

// NewConversationStore creates an empty store.
func NewConversationStore() *ConversationStore {
	return &ConversationStore{states: make(map[string]domain.ConversationState)}
}

// Get returns the state for ownerID, or the zero value if absent.
func (s *ConversationStore) Get(ownerID string) domain.ConversationState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.states[ownerID]
}

// Update shallow-merges patch into the owner's state, creating it if absent.
// The merge happens under the write lock, so two concurrent patches to
// different fields both survive.
func (s *ConversationStore) Update(ownerID string, patch domain.StatePatch) {
	s.mu.Lock()
	defer s.mu.Unlock()
	state := s.states[ownerID]
	patch.Apply(&state)
	s.states[ownerID] = state
}

// Clear resets the owner's state to idle.
func (s *ConversationStore) Clear(ownerID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.states, ownerID)
}
