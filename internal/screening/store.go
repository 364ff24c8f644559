package screening

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// Store keeps sessions in memory and forgets the ones left idle past ttl
type Store struct {
	mu       sync.Mutex
	sessions map[uuid.UUID]*storedSession
	ttl      time.Duration
	now      func() time.Time
}

type storedSession struct {
	session  *Session
	lastSeen time.Time
}

func NewStore(ttl time.Duration) *Store {
	return &Store{
		sessions: make(map[uuid.UUID]*storedSession),
		ttl:      ttl,
		now:      time.Now,
	}
}

// Create starts a fresh session
func (st *Store) Create() *Session {
	s := newSession()
	st.mu.Lock()
	st.sessions[s.ID] = &storedSession{session: s, lastSeen: st.now()}
	st.mu.Unlock()
	return s
}

// Get returns the session for id and marks it as used, or nil if unknown
func (st *Store) Get(id uuid.UUID) *Session {
	st.mu.Lock()
	defer st.mu.Unlock()
	entry, ok := st.sessions[id]
	if !ok {
		return nil
	}
	entry.lastSeen = st.now()
	return entry.session
}

// Len reports how many sessions are held
func (st *Store) Len() int {
	st.mu.Lock()
	defer st.mu.Unlock()
	return len(st.sessions)
}

// Sweep drops idle sessions, aborting anything they still have in flight
func (st *Store) Sweep() int {
	cutoff := st.now().Add(-st.ttl)

	st.mu.Lock()
	var expired []*Session
	for id, entry := range st.sessions {
		if entry.lastSeen.Before(cutoff) {
			expired = append(expired, entry.session)
			delete(st.sessions, id)
		}
	}
	st.mu.Unlock()

	for _, s := range expired {
		s.abortAll()
	}
	return len(expired)
}

// Run sweeps periodically until ctx is done
func (st *Store) Run(ctx context.Context) {
	interval := st.ttl / 4
	if interval < time.Minute {
		interval = time.Minute
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := st.Sweep(); n > 0 {
				log.Info().Int("expired", n).Int("active", st.Len()).Msg("Swept idle sessions")
			}
		}
	}
}
