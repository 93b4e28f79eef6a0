package session

import (
	"sync"
	"time"

	"github.com/Vodeneev/livescores/internal/pkg/models"
)

// Session is the caller-owned UI session container. It holds the state the
// dashboard renders between interactions; right now that is the live matches
// list. Safe for concurrent use: readers always get a copy.
type Session struct {
	mu          sync.RWMutex
	id          string
	liveMatches []models.DisplayMatch
	updatedAt   time.Time
}

func New(id string) *Session {
	if id == "" {
		id = "default"
	}
	return &Session{id: id}
}

func (s *Session) ID() string {
	return s.id
}

// SetLiveMatches replaces the live matches list with a copy of matches.
// The previous list is discarded entirely, including when matches is empty.
func (s *Session) SetLiveMatches(matches []models.DisplayMatch) {
	copied := make([]models.DisplayMatch, len(matches))
	copy(copied, matches)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.liveMatches = copied
	s.updatedAt = time.Now()
}

// LiveMatches returns a copy of the current live matches list.
func (s *Session) LiveMatches() []models.DisplayMatch {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.DisplayMatch, len(s.liveMatches))
	copy(out, s.liveMatches)
	return out
}

func (s *Session) UpdatedAt() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.updatedAt
}

// State is the serializable snapshot of a session used for persistence.
type State struct {
	ID          string                `json:"id"`
	LiveMatches []models.DisplayMatch `json:"live_matches"`
	UpdatedAt   time.Time             `json:"updated_at"`
}

func (s *Session) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()

	matches := make([]models.DisplayMatch, len(s.liveMatches))
	copy(matches, s.liveMatches)
	return State{
		ID:          s.id,
		LiveMatches: matches,
		UpdatedAt:   s.updatedAt,
	}
}

// Restore overwrites the session content from a persisted state.
// The session keeps its own ID.
func (s *Session) Restore(st State) {
	matches := make([]models.DisplayMatch, len(st.LiveMatches))
	copy(matches, st.LiveMatches)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.liveMatches = matches
	s.updatedAt = st.UpdatedAt
}
